// Package llm abstracts the remote generative-model boundary.
package llm

import (
	"context"
	"errors"
)

// Client wraps one request/response interaction with a generative model.
// No retry is built in; callers decide whether a failed call is worth
// repeating.
type Client interface {
	Generate(ctx context.Context, prompt string, opts Options) (string, error)
}

// Options carries generation parameters for a single call. Zero values
// mean "use the provider default" for that parameter.
type Options struct {
	Temperature float32
	TopP        float32
	TopK        int32
}

// ErrEmptyReply is returned when the model call succeeds but carries no
// usable text payload.
var ErrEmptyReply = errors.New("empty model reply")
