package domain

import "go.trai.ch/zerr"

var (
	// ErrTransport is returned when a request fails at the transport level
	// (timeout, connection failure, 5xx) after the retry budget is spent.
	ErrTransport = zerr.New("request failed")

	// ErrMalformedPayload is returned when a response body is not JSON or the
	// envelope is missing required fields. Never retried.
	ErrMalformedPayload = zerr.New("malformed response payload")

	// ErrBudgetExhausted is returned when a load's attempt counter passes its
	// budget. The counter resets so a later manual retry starts fresh.
	ErrBudgetExhausted = zerr.New("analysis load attempt budget exhausted")

	// ErrLoadInProgress is returned when an analysis load is requested while
	// another load for the same culture is still running. Not a failure.
	ErrLoadInProgress = zerr.New("analysis load already in progress")

	// ErrIncompleteData is returned when the server responds successfully but
	// the analysis payload fails the completeness check.
	ErrIncompleteData = zerr.New("incomplete analysis data")

	// ErrCultureNotFound is returned when the server reports an unknown
	// culture id.
	ErrCultureNotFound = zerr.New("culture not found")

	// ErrInvalidCultureType is returned when a culture type is neither soja
	// nor cana.
	ErrInvalidCultureType = zerr.New("invalid culture type, expected 'soja' or 'cana'")

	// ErrInvalidIdentity is returned when an identity string does not parse
	// as prefix_sequence.
	ErrInvalidIdentity = zerr.New("invalid culture identity")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read configuration file")

	// ErrConfigParseFailed is returned when the config file is not valid YAML.
	ErrConfigParseFailed = zerr.New("failed to parse configuration file")

	// ErrStoreWriteFailed is returned when the analysis store cannot persist.
	ErrStoreWriteFailed = zerr.New("failed to write analysis store")

	// ErrValidationFailed is returned when a create/update/generate request
	// fails field validation.
	ErrValidationFailed = zerr.New("request validation failed")

	// ErrServerRejected is returned when the server answers with an error
	// envelope.
	ErrServerRejected = zerr.New("server rejected request")
)
