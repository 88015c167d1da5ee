package repository

import (
	"context"

	"swot-core/internal/domain/entity"
)

// RateLimiter checks and advances the request counter for one client
// identifier as a single atomic step.
type RateLimiter interface {
	Check(ctx context.Context, identifier string) (entity.RateDecision, error)
}

// CompletionProvider wraps the upstream LLM call. It may be slow or
// unavailable; callers decide how to guard it.
type CompletionProvider interface {
	Generate(ctx context.Context, prompt string) (*entity.GenerationResult, error)
}
