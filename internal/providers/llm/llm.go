package llm

import (
	"context"
	"encoding/json"
	"fmt"
)

// Provider sends one single-turn prompt upstream and returns the completion
// payload ({"candidates":[{"content":{"parts":[{"text":...}]}}]}) untouched.
type Provider interface {
	Generate(ctx context.Context, prompt string) (json.RawMessage, error)
	Close() error
}

// UpstreamError carries what the provider answered. It is meant for
// server-side logs only and must never be echoed to a client.
type UpstreamError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	switch {
	case e.Err != nil && e.StatusCode != 0:
		return fmt.Sprintf("upstream status %d: %v", e.StatusCode, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("upstream: %v", e.Err)
	default:
		return fmt.Sprintf("upstream status %d: %s", e.StatusCode, e.Body)
	}
}

func (e *UpstreamError) Unwrap() error { return e.Err }
