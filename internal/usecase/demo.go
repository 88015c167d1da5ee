package usecase

import "swot-core/internal/domain/entity"

// Canned insights served in demo mode, keyed by prompt-type id. Only the
// four SWOT categories have dedicated copy; everything else gets the
// generic placeholder.
var demoInsights = map[string]string{
	"strengths": `• Strong brand recognition among early adopters in this segment
• Product features align closely with the segment's stated priorities
• Competitive pricing relative to the alternatives this segment considers
• Existing advocates within the segment amplify organic reach`,
	"weaknesses": `• Limited awareness beyond the early-adopter core of this segment
• Onboarding friction that this segment has low tolerance for
• Perceived gap between marketing claims and day-to-day experience
• Support channels not matched to how this segment prefers to communicate`,
	"opportunities": `• Partner with voices this segment already trusts to build credibility
• Tailor messaging to the segment's dominant purchase triggers
• Bundle offerings around the jobs this segment hires the product for
• Capture demand from competitors underserving this segment`,
	"threats": `• Established competitors with deeper reach into this segment
• Shifting preferences that could erode the segment's interest
• Price sensitivity limiting willingness to upgrade or renew
• Negative word of mouth spreading quickly within the segment's community`,
}

const demoFallback = `• Demo mode is active, so this is a canned response
• Configure provider credentials and disable demo mode for live insights
• All nine analysis categories are available against the real provider`

// demoTotalTokens is the fixed mock usage figure reported for canned
// responses.
const demoTotalTokens = 150

func demoResult(promptTypeID string) *entity.GenerationResult {
	content, ok := demoInsights[promptTypeID]
	if !ok {
		content = demoFallback
	}
	return &entity.GenerationResult{
		Insight: content,
		Usage:   entity.Usage{TotalTokens: demoTotalTokens},
	}
}
