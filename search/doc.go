// Package search connects user input to the lookup pipeline.
//
// A Debouncer collapses bursts of input into one call. A Pipeline runs a
// single search: Waiting, lookup, normalize, then one of Found, NotFound
// or Error. A Session ties the two to a view for interactive use.
package search
