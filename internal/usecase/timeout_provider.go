package usecase

import (
	"context"
	"time"

	"swot-core/internal/domain/entity"
	"swot-core/internal/domain/repository"
)

// TimeoutProvider caps every generation with its own deadline so one slow
// upstream call cannot hang the server. It deliberately does not retry:
// provider failures surface to the caller, and retrying is the caller's
// call.
type TimeoutProvider struct {
	inner   repository.CompletionProvider
	timeout time.Duration
}

func NewTimeoutProvider(inner repository.CompletionProvider) *TimeoutProvider {
	return &TimeoutProvider{
		inner:   inner,
		timeout: 25 * time.Second, // Global cap per generation
	}
}

func (t *TimeoutProvider) Generate(ctx context.Context, prompt string) (*entity.GenerationResult, error) {
	genCtx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	return t.inner.Generate(genCtx, prompt)
}
