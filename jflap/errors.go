package jflap

import "errors"

var (
	// ErrNoInitialState The document has no state marked initial.
	ErrNoInitialState = errors.New("jflap: no initial state")

	// ErrNoFinalState The document has no state marked final.
	ErrNoFinalState = errors.New("jflap: no final state")

	// ErrInvalidDocument The document is not well-formed or does not match the schema.
	ErrInvalidDocument = errors.New("jflap: invalid document")
)
