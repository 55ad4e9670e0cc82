package audit

import (
	"errors"
	"fmt"
)

// MalformedResponseError indicates the inference output contained no
// parseable JSON object.
type MalformedResponseError struct {
	Reason string
}

func (e MalformedResponseError) Error() string {
	return "malformed audit response: " + e.Reason
}

// StoreError indicates a write or delete against the record store failed.
type StoreError struct {
	Op  string
	Key string
	Err error
}

func (e StoreError) Error() string {
	return fmt.Sprintf("record store %s key=%s: %v", e.Op, e.Key, e.Err)
}

func (e StoreError) Unwrap() error { return e.Err }

// ErrUnrecoverable marks the double-failure case: a stage failed and the
// failure-path record write failed too, so no terminal record exists for the
// key.
var ErrUnrecoverable = errors.New("failure record write failed")
