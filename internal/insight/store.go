// Package insight is the client side of the explorer: an in-memory store of
// generated insights keyed by (segment, prompt type), with usage counters
// for display. It talks to the gateway over HTTP and owns no state beyond
// the current session.
package insight

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"swot-core/internal/domain/entity"
)

// ErrNetwork marks transport-level failures, surfaced distinctly from
// gateway rejections.
var ErrNetwork = errors.New("network error")

// perRequestCost is a rough estimate used for the displayed running total.
const perRequestCost = 0.0002

const defaultRequestQuota = 10

// UsageStats mirrors what the UI shows next to the results. Remaining is an
// optimistic local estimate; the server-side limiter stays authoritative
// and this figure never gates a request.
type UsageStats struct {
	TotalRequests     int
	RemainingRequests int
	EstimatedCost     float64
}

type Store struct {
	baseURL    string
	httpClient *http.Client

	mu         sync.Mutex
	generating bool
	responses  []entity.InsightResponse
	lastErr    string
	total      int
	remaining  int
}

func NewStore(baseURL string) *Store {
	return &Store{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		remaining:  defaultRequestQuota,
	}
}

// Generate asks the gateway for one insight and upserts it into the store.
// Only one generation runs at a time for the whole store: a call made while
// another is in flight is dropped as a no-op. Failures are recorded as the
// current error message and never touch the response collection.
func (s *Store) Generate(ctx context.Context, product entity.Product, objective entity.BusinessObjective, segment entity.Segment, promptTypeID, prompt string) error {
	s.mu.Lock()
	if s.generating {
		s.mu.Unlock()
		return nil
	}
	s.generating = true
	s.lastErr = ""
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.generating = false
		s.mu.Unlock()
	}()

	result, err := s.post(ctx, entity.GenerationRequest{
		Prompt:     prompt,
		Segment:    segment.Name,
		Product:    product.Name,
		Objective:  objective.Name,
		PromptType: promptTypeID,
	})
	if err != nil {
		s.mu.Lock()
		s.lastErr = err.Error()
		s.mu.Unlock()
		return err
	}

	resp := entity.InsightResponse{
		ID:           uuid.NewString(),
		SegmentID:    segment.ID,
		PromptTypeID: promptTypeID,
		Content:      result.Insight,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		Product:      product.Name,
		Objective:    objective.Name,
	}

	s.mu.Lock()
	s.upsertLocked(resp)
	s.total++
	if s.remaining > 0 {
		s.remaining--
	}
	s.mu.Unlock()

	return nil
}

func (s *Store) post(ctx context.Context, genReq entity.GenerationRequest) (*entity.GenerationResult, error) {
	body, err := json.Marshal(genReq)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v1/generate", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	httpResp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode == http.StatusTooManyRequests {
		return nil, errors.New(rateLimitMessage(httpResp.Header.Get("X-RateLimit-Reset")))
	}
	if httpResp.StatusCode != http.StatusOK {
		var gw struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(httpResp.Body).Decode(&gw); decodeErr == nil && gw.Error != "" {
			return nil, errors.New(gw.Error)
		}
		return nil, fmt.Errorf("failed to generate insight (status %d)", httpResp.StatusCode)
	}

	var result entity.GenerationResult
	if err := json.NewDecoder(httpResp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	if result.Insight == "" {
		result.Insight = "No insight generated"
	}
	return &result, nil
}

// rateLimitMessage turns the reset header (epoch ms) into a human
// countdown. A missing or malformed header falls back to one minute.
func rateLimitMessage(resetHeader string) string {
	resetAt := time.Now().Add(time.Minute)
	if ms, err := strconv.ParseInt(resetHeader, 10, 64); err == nil {
		resetAt = time.UnixMilli(ms)
	}
	secondsLeft := int(math.Ceil(time.Until(resetAt).Seconds()))
	if secondsLeft < 0 {
		secondsLeft = 0
	}
	return fmt.Sprintf("Rate limit exceeded. Please wait %d seconds before trying again.", secondsLeft)
}

// upsertLocked replaces any prior entry for the same (segment, prompt type)
// pair. Caller holds s.mu.
func (s *Store) upsertLocked(resp entity.InsightResponse) {
	filtered := s.responses[:0]
	for _, r := range s.responses {
		if r.SegmentID == resp.SegmentID && r.PromptTypeID == resp.PromptTypeID {
			continue
		}
		filtered = append(filtered, r)
	}
	s.responses = append(filtered, resp)
}

// Lookup returns the live response for one (segment, prompt type) pair.
func (s *Store) Lookup(segmentID, promptTypeID string) (entity.InsightResponse, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.responses {
		if r.SegmentID == segmentID && r.PromptTypeID == promptTypeID {
			return r, true
		}
	}
	return entity.InsightResponse{}, false
}

// Responses returns a snapshot of the collection in insertion order.
func (s *Store) Responses() []entity.InsightResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.InsightResponse, len(s.responses))
	copy(out, s.responses)
	return out
}

// Clear discards all responses and the current error. Usage counters keep
// counting across clears.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses = nil
	s.lastErr = ""
}

// Err returns the current error message, empty when there is none.
func (s *Store) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *Store) ClearErr() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = ""
}

func (s *Store) Usage() UsageStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return UsageStats{
		TotalRequests:     s.total,
		RemainingRequests: s.remaining,
		EstimatedCost:     float64(s.total) * perRequestCost,
	}
}
