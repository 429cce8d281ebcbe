package ports

import (
	"context"
	"errors"
	"fmt"
)

// ErrGenerationFailed indicates the generative collaborator did not return text.
var ErrGenerationFailed = errors.New("generation failed")

// Generation failure reasons.
const (
	GenerationQuota     = "quota"
	GenerationTimeout   = "timeout"
	GenerationTransport = "transport"
)

// GenerationError carries the reason a generation attempt failed so the
// composer can log it; every reason is recovered the same way, with a
// locally templated response.
type GenerationError struct {
	Reason string
	Err    error
}

func (e *GenerationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("generation failed (%s)", e.Reason)
	}
	return fmt.Sprintf("generation failed (%s): %v", e.Reason, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// TextGenerator is the generative-text collaborator: prompt in, prose out.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
