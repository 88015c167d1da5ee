package entity

import "time"

// Reference data, loaded once at startup and never mutated.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type BusinessObjective struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Segment struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// PromptType identifies one of the fixed analysis categories. The prompt
// text itself is rendered by the catalog package from the type's ID, so no
// executable template lives in the data.
type PromptType struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// GenerationRequest is the body of POST /v1/generate. Transient, built per
// call, never stored.
type GenerationRequest struct {
	Prompt     string `json:"prompt"`
	Segment    string `json:"segment"`
	Product    string `json:"product"`
	Objective  string `json:"objective"`
	PromptType string `json:"promptType"`
}

// Usage reports token consumption for a single generation.
type Usage struct {
	TotalTokens int `json:"total_tokens"`
}

// GenerationResult is the normalized server-side answer returned to clients.
type GenerationResult struct {
	Insight string `json:"insight"`
	Usage   Usage  `json:"usage"`
}

// InsightResponse is one cached insight held by the client-side store.
// At most one live entry exists per (SegmentID, PromptTypeID) pair.
type InsightResponse struct {
	ID           string `json:"id"`
	SegmentID    string `json:"segmentId"`
	PromptTypeID string `json:"promptTypeId"`
	Content      string `json:"content"`
	Timestamp    string `json:"timestamp"` // RFC 3339
	Product      string `json:"product"`
	Objective    string `json:"objective"`
}

// RateDecision is the outcome of a limiter check. ResetAt is only
// meaningful when Allowed is false.
type RateDecision struct {
	Allowed bool
	ResetAt time.Time
}
