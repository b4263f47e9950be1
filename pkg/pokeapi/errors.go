package pokeapi

import "fmt"

// ParseError represents a malformed payload from the upstream source.
type ParseError struct {
	Resource string // "pokemon" or "pokemon-species"
	ID       int
	Err      error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s payload for id %d: %v", e.Resource, e.ID, e.Err)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *ParseError) Unwrap() error {
	return e.Err
}
