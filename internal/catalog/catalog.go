// Package catalog holds the immutable reference data driving the explorer:
// products, business objectives, customer segments and the nine analysis
// prompt types. Prompt text is rendered by RenderPrompt from a prompt-type
// id rather than stored as a function value in the data.
package catalog

import (
	"fmt"
	"strings"

	"swot-core/internal/domain/entity"
)

var Products = []entity.Product{
	{ID: "electric-cars", Name: "Electric Cars", Description: "Sustainable electric vehicle solutions"},
	{ID: "coffee", Name: "Coffee", Description: "Premium coffee products and services"},
	{ID: "fitness-app", Name: "Fitness App", Description: "Digital fitness and wellness platform"},
	{ID: "saas-platform", Name: "SaaS Platform", Description: "Business automation software solution"},
}

var BusinessObjectives = []entity.BusinessObjective{
	{ID: "increase-awareness", Name: "Increase Awareness", Description: "Build brand recognition and visibility"},
	{ID: "increase-consideration", Name: "Increase Consideration", Description: "Drive evaluation and interest"},
	{ID: "increase-sales", Name: "Increase Sales", Description: "Convert prospects to customers"},
	{ID: "improve-retention", Name: "Improve Retention", Description: "Enhance customer loyalty and lifetime value"},
}

var Segments = []entity.Segment{
	{ID: "gen-z-creators", Name: "Gen Z Creators", Description: "Young content creators and influencers (18-26)"},
	{ID: "urban-climate-advocates", Name: "Urban Climate Advocates", Description: "Environmentally conscious urban professionals"},
	{ID: "cost-sensitive-smb", Name: "Cost-Sensitive SMB Owners", Description: "Small business owners focused on value and ROI"},
	{ID: "retired-diyers", Name: "Retired DIYers", Description: "Active retirees who enjoy hands-on projects"},
	{ID: "enterprise-it-leaders", Name: "Enterprise IT Leaders", Description: "Technology decision-makers in large organizations"},
}

var PromptTypes = []entity.PromptType{
	{ID: "marketing-okrs", Name: "Marketing OKRs", Description: "Measurable marketing objectives and key results", Icon: "Target"},
	{ID: "strengths", Name: "Strengths", Description: "Product strengths that matter to this segment", Icon: "TrendingUp"},
	{ID: "weaknesses", Name: "Weaknesses", Description: "Concerns and potential dislikes", Icon: "TrendingDown"},
	{ID: "opportunities", Name: "Opportunities", Description: "Product and brand opportunities to unlock", Icon: "Lightbulb"},
	{ID: "threats", Name: "Threats", Description: "Risks preventing adoption or loyalty", Icon: "AlertTriangle"},
	{ID: "market-positioning", Name: "Market Positioning", Description: "How to position the product effectively", Icon: "Crosshair"},
	{ID: "buyer-persona", Name: "Buyer Persona", Description: "Detailed customer persona profile", Icon: "User"},
	{ID: "investment-opportunities", Name: "Investment Opportunities", Description: "Strategic value from growth perspective", Icon: "DollarSign"},
	{ID: "channels-distribution", Name: "Channels & Distribution", Description: "How to reach and activate the segment", Icon: "Share2"},
}

// RenderPrompt formats the natural-language question for one prompt type.
// Objectives are phrased as verbs ("Increase Sales"), so they are lowercased
// when embedded mid-sentence.
func RenderPrompt(promptTypeID, segment, product, objective string) (string, error) {
	obj := strings.ToLower(objective)
	switch promptTypeID {
	case "marketing-okrs":
		return fmt.Sprintf("What are 3 measurable marketing OKRs to %s for %s in the %s segment?", obj, product, segment), nil
	case "strengths":
		return fmt.Sprintf("What %s strengths matter most to %s when trying to %s?", product, segment, obj), nil
	case "weaknesses":
		return fmt.Sprintf("What would %s be concerned about or dislike when considering %s to %s?", segment, product, obj), nil
	case "opportunities":
		return fmt.Sprintf("What %s opportunities can we unlock by targeting %s to %s?", product, segment, obj), nil
	case "threats":
		return fmt.Sprintf("What risks might prevent %s from adopting or staying loyal to %s when trying to %s?", segment, product, obj), nil
	case "market-positioning":
		return fmt.Sprintf("How should we position %s to resonate with %s to %s?", product, segment, obj), nil
	case "buyer-persona":
		return fmt.Sprintf("Write a sample persona for a typical %s customer interested in %s to %s.", segment, product, obj), nil
	case "investment-opportunities":
		return fmt.Sprintf("Why is %s strategically valuable from a growth/investment perspective for %s when trying to %s?", segment, product, obj), nil
	case "channels-distribution":
		return fmt.Sprintf("How should we reach and activate %s for %s to %s?", segment, product, obj), nil
	default:
		return "", fmt.Errorf("unknown prompt type %q", promptTypeID)
	}
}

func ProductByID(id string) (entity.Product, bool) {
	for _, p := range Products {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Product{}, false
}

func ObjectiveByID(id string) (entity.BusinessObjective, bool) {
	for _, o := range BusinessObjectives {
		if o.ID == id {
			return o, true
		}
	}
	return entity.BusinessObjective{}, false
}

func SegmentByID(id string) (entity.Segment, bool) {
	for _, s := range Segments {
		if s.ID == id {
			return s, true
		}
	}
	return entity.Segment{}, false
}

func PromptTypeByID(id string) (entity.PromptType, bool) {
	for _, t := range PromptTypes {
		if t.ID == id {
			return t, true
		}
	}
	return entity.PromptType{}, false
}
