package prompts_test

import (
	"testing"

	"journal-service/internal/prompts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogIsNonEmptyAndComplete(t *testing.T) {
	catalog := prompts.Catalog()

	require.NotEmpty(t, catalog)
	seen := make(map[string]bool)
	for _, p := range catalog {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Title)
		assert.NotEmpty(t, p.Text)
		assert.False(t, seen[p.ID], "duplicate prompt id %q", p.ID)
		seen[p.ID] = true
	}
}

func TestByID(t *testing.T) {
	prompt, ok := prompts.ByID("three-good-things")
	require.True(t, ok)
	assert.Equal(t, "Three good things", prompt.Title)

	_, ok = prompts.ByID("nonexistent")
	assert.False(t, ok)
}

func TestCatalogReturnsCopy(t *testing.T) {
	first := prompts.Catalog()
	first[0].Title = "mutated"

	second := prompts.Catalog()
	assert.NotEqual(t, "mutated", second[0].Title)
}
