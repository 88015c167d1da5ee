package client

import (
	"context"

	"google.golang.org/genai"

	"swot-core/internal/domain/entity"
)

// systemInstruction frames every generation; the prompt itself carries the
// segment/product/objective specifics.
const systemInstruction = `You are a strategic marketing analyst. Provide clear, actionable insights for SWOT analysis.
Format your response with bullet points or numbered lists when appropriate.
Be specific and practical in your recommendations.
Keep responses concise but comprehensive (3-5 key points).`

type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(ctx context.Context, projectID, location, model string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  projectID,
		Location: location,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, err
	}
	return &GeminiClient{client: client, model: model}, nil
}

func NewGeminiClientFromClient(c *genai.Client, model string) *GeminiClient {
	return &GeminiClient{
		client: c,
		model:  model,
	}
}

func (g *GeminiClient) Generate(ctx context.Context, prompt string) (*entity.GenerationResult, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		Temperature:       genai.Ptr[float32](0.7),
		MaxOutputTokens:   500,
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), cfg)
	if err != nil {
		return nil, err
	}

	res := &entity.GenerationResult{Insight: result.Text()}
	if result.UsageMetadata != nil {
		res.Usage.TotalTokens = int(result.UsageMetadata.TotalTokenCount)
	}
	return res, nil
}
