package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPrompt(t *testing.T) {
	tests := []struct {
		promptType string
		want       string
	}{
		{
			"strengths",
			"What Coffee strengths matter most to Gen Z Creators when trying to increase sales?",
		},
		{
			"marketing-okrs",
			"What are 3 measurable marketing OKRs to increase sales for Coffee in the Gen Z Creators segment?",
		},
		{
			"buyer-persona",
			"Write a sample persona for a typical Gen Z Creators customer interested in Coffee to increase sales.",
		},
		{
			"channels-distribution",
			"How should we reach and activate Gen Z Creators for Coffee to increase sales?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.promptType, func(t *testing.T) {
			got, err := RenderPrompt(tt.promptType, "Gen Z Creators", "Coffee", "Increase Sales")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderPromptCoversEveryPromptType(t *testing.T) {
	for _, pt := range PromptTypes {
		prompt, err := RenderPrompt(pt.ID, "Gen Z Creators", "Coffee", "Increase Sales")
		require.NoError(t, err, "prompt type %s must render", pt.ID)
		assert.NotEmpty(t, prompt)
	}
}

func TestRenderPromptUnknownType(t *testing.T) {
	_, err := RenderPrompt("swot-matrix", "Gen Z Creators", "Coffee", "Increase Sales")
	assert.Error(t, err)
}

func TestCatalogIDsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, pt := range PromptTypes {
		assert.False(t, seen[pt.ID], "duplicate prompt type id %s", pt.ID)
		seen[pt.ID] = true
	}
	assert.Len(t, PromptTypes, 9)
	assert.Len(t, Products, 4)
	assert.Len(t, BusinessObjectives, 4)
	assert.Len(t, Segments, 5)
}

func TestLookups(t *testing.T) {
	p, ok := ProductByID("coffee")
	require.True(t, ok)
	assert.Equal(t, "Coffee", p.Name)

	o, ok := ObjectiveByID("improve-retention")
	require.True(t, ok)
	assert.Equal(t, "Improve Retention", o.Name)

	s, ok := SegmentByID("retired-diyers")
	require.True(t, ok)
	assert.Equal(t, "Retired DIYers", s.Name)

	pt, ok := PromptTypeByID("threats")
	require.True(t, ok)
	assert.Equal(t, "Threats", pt.Name)

	_, ok = SegmentByID("nonexistent")
	assert.False(t, ok)
}
