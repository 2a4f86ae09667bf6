package domain

import (
	"bytes"
	"encoding/json"
)

// Envelope statuses used by the REST service.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Envelope is the uniform {status, message, data} wrapper around every API
// response. It is constructed exactly once, at the executor boundary;
// everything downstream consumes only this normalized shape.
type Envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// IsSuccess reports whether the envelope carries a successful result.
func (e *Envelope) IsSuccess() bool {
	return e.Status == StatusSuccess
}

// DecodeEnvelope parses a response body into the normalized envelope. Bodies
// that are JSON objects with a status field are taken as-is. A 2xx body
// without a status field is treated as an implicit success with the whole
// body as data, matching the service's looser historical responses.
func DecodeEnvelope(body []byte) (*Envelope, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return &Envelope{Status: StatusSuccess}, nil
	}

	if !json.Valid(trimmed) {
		return nil, ErrMalformedPayload
	}

	// Non-object bodies (arrays, scalars) and objects without a status field
	// both normalize to an implicit success carrying the whole body as data.
	var env Envelope
	if err := json.Unmarshal(trimmed, &env); err != nil || env.Status == "" {
		env = Envelope{Status: StatusSuccess, Data: json.RawMessage(trimmed)}
	}
	return &env, nil
}
