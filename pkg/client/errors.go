package client

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the upstream reports 404 for an identifier.
var ErrNotFound = errors.New("resource not found")

// APIError represents a PokeAPI-specific error with additional context.
type APIError struct {
	StatusCode int
	ErrorClass ErrorClass
	Message    string
	Err        error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("pokeapi %s error (status %d): %s: %v",
			e.ErrorClass, e.StatusCode, e.Message, e.Err)
	}
	return fmt.Sprintf("pokeapi %s error (status %d): %s",
		e.ErrorClass, e.StatusCode, e.Message)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *APIError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	if e.StatusCode == 404 {
		return ErrNotFound
	}
	return nil
}
