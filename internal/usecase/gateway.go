package usecase

import (
	"context"
	"log"
	"time"

	"swot-core/internal/domain/entity"
	"swot-core/internal/domain/repository"
)

// Gateway is the server-side insight generation pipeline: rate check,
// field validation, demo short-circuit, then the real provider call.
type Gateway struct {
	limiter  repository.RateLimiter
	provider repository.CompletionProvider

	demoMode  bool
	demoDelay time.Duration
}

func NewGateway(limiter repository.RateLimiter, provider repository.CompletionProvider, demoMode bool) *Gateway {
	return &Gateway{
		limiter:  limiter,
		provider: provider,
		demoMode: demoMode,
		// Simulates provider latency so the demo feels like the real thing.
		demoDelay: time.Second,
	}
}

func (g *Gateway) Execute(ctx context.Context, req entity.GenerationRequest, clientID string) (*entity.GenerationResult, error) {
	// 1. Rate limit first. The counter advances even for requests that
	// later fail validation.
	decision, err := g.limiter.Check(ctx, clientID)
	if err != nil {
		log.Printf("[GATEWAY] rate limiter check failed for %s: %v", clientID, err)
		return nil, entity.ErrProviderFailure
	}
	if !decision.Allowed {
		return nil, &entity.RateLimitError{ResetAt: decision.ResetAt}
	}

	// 2. Validate required fields
	if req.Prompt == "" || req.Segment == "" || req.Product == "" || req.Objective == "" || req.PromptType == "" {
		return nil, entity.ErrMissingFields
	}

	// 3. Demo mode never reaches the provider
	if g.demoMode {
		if g.demoDelay > 0 {
			select {
			case <-time.After(g.demoDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
		return demoResult(req.PromptType), nil
	}

	// 4. Call the provider and normalize
	result, err := g.provider.Generate(ctx, req.Prompt)
	if err != nil {
		log.Printf("[GATEWAY] provider generation failed: %v", err)
		return nil, entity.ErrProviderFailure
	}

	return result, nil
}
