package search

import "fmt"

// MalformedError indicates a reply whose Response field was missing or
// held an unknown value.
type MalformedError struct {
	Reason string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed lookup response: %s", e.Reason)
}
