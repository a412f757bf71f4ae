// Package view holds the widget's visible surface and its state machine.
//
// A Model stands in for the page: named regions that are shown or hidden
// (waiting, movie, extended), a plot expansion flag, an image source,
// one value per layout element, and a banner container. The Controller is
// the only writer. Each transition hands a Snapshot to a Renderer.
//
// Every transition after Waiting carries the Ticket returned by
// EnterWaiting. With the stale guard on, a ticket from a superseded run is
// refused, so a slow response cannot overwrite a newer one.
package view
