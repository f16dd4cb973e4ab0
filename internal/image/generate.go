package image

import (
	"context"
	"errors"
)

// ErrGenerationFailed is returned for every unsuccessful request, whatever
// the cause.
var ErrGenerationFailed = errors.New("failed to generate image")

type Generator interface {
	Generate(ctx context.Context, prompt string) ([]byte, error)
}
