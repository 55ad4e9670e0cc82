package llm

import (
	"context"
	"errors"
	"fmt"
)

// Client abstracts the text-generation inference service.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// InferenceError indicates the model invocation failed, timed out, or returned
// an envelope without usable content.
type InferenceError struct {
	Model string
	Err   error
}

func (e InferenceError) Error() string {
	if e.Model == "" {
		return fmt.Sprintf("inference: %v", e.Err)
	}
	return fmt.Sprintf("inference model=%s: %v", e.Model, e.Err)
}

func (e InferenceError) Unwrap() error { return e.Err }

// ErrNotImplemented is returned by the placeholder client.
var ErrNotImplemented = errors.New("LLM not implemented")

// PlaceholderClient is a stub implementation until provider wiring is added.
type PlaceholderClient struct{}

// Complete returns ErrNotImplemented.
func (PlaceholderClient) Complete(ctx context.Context, prompt string) (string, error) {
	_ = ctx
	_ = prompt
	return "", InferenceError{Err: ErrNotImplemented}
}
