package entity

import (
	"errors"
	"fmt"
	"time"
)

// Standard domain errors
var (
	ErrMissingFields   = errors.New("Missing required fields")
	ErrProviderFailure = errors.New("Failed to generate insight. Check configuration and retry.")
)

// RateLimitError carries the end of the current window so the delivery
// layer can expose it as a reset hint.
type RateLimitError struct {
	ResetAt time.Time
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded, retry after %s", e.ResetAt.UTC().Format(time.RFC3339))
}
