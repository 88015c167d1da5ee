package insight

import (
	"context"
	"log"
	"time"

	"swot-core/internal/catalog"
	"swot-core/internal/domain/entity"
)

// Orchestrator drives bulk generation: every (segment, prompt type) pair in
// turn, with a short pause between calls so a batch does not burst through
// the gateway's rate limit.
type Orchestrator struct {
	store *Store
	pause time.Duration
}

func NewOrchestrator(store *Store) *Orchestrator {
	return &Orchestrator{
		store: store,
		pause: 100 * time.Millisecond,
	}
}

// GenerateAll walks segments x prompt types sequentially. A failed pair is
// logged and skipped; the batch carries on, so partial completion is normal
// and visible through the completed/total ratio.
func (o *Orchestrator) GenerateAll(ctx context.Context, product entity.Product, objective entity.BusinessObjective, segments []entity.Segment, promptTypes []entity.PromptType) (completed, total int) {
	total = len(segments) * len(promptTypes)

	for _, segment := range segments {
		for _, pt := range promptTypes {
			prompt, err := catalog.RenderPrompt(pt.ID, segment.Name, product.Name, objective.Name)
			if err != nil {
				log.Printf("[BULK] skipping %s/%s: %v", segment.ID, pt.ID, err)
				continue
			}

			if err := o.store.Generate(ctx, product, objective, segment, pt.ID, prompt); err != nil {
				log.Printf("[BULK] generation failed for %s/%s: %v", segment.ID, pt.ID, err)
				continue
			}
			completed++

			select {
			case <-time.After(o.pause):
			case <-ctx.Done():
				return completed, total
			}
		}
	}

	return completed, total
}
