package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	settings := &Settings{}
	settings.ApplyDefaults()

	assert.Equal(t, 0.6, settings.BM25Weight)
	assert.Equal(t, 0.4, settings.FuzzyWeight)
	assert.Equal(t, 0.5, settings.TextWeight)
	assert.Equal(t, 0.5, settings.ImageWeight)
	assert.Equal(t, 20, settings.DefaultLimit)
	assert.Equal(t, 0.1, settings.MinScore)
	assert.Equal(t, 0.5, settings.MinSimilarity)
	assert.Equal(t, 0.7, settings.FuzzyThreshold)
	assert.Equal(t, 30, settings.Provider.TextTimeoutSeconds)
	assert.Equal(t, 60, settings.Provider.ImageTimeoutSeconds)
	assert.Equal(t, "8080", settings.Port)
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	settings := &Settings{BM25Weight: 0.8, FuzzyWeight: 0.2, DefaultLimit: 5}
	settings.ApplyDefaults()

	assert.Equal(t, 0.8, settings.BM25Weight)
	assert.Equal(t, 0.2, settings.FuzzyWeight)
	assert.Equal(t, 5, settings.DefaultLimit)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Settings)
		conflict string
	}{
		{
			"negative bm25 weight",
			func(s *Settings) { s.BM25Weight = -1 },
			"bm25_weight and fuzzy_weight must be non-negative",
		},
		{
			"min similarity out of range",
			func(s *Settings) { s.MinSimilarity = 2 },
			"min_similarity must be within [-1, 1]",
		},
		{
			"fuzzy threshold out of range",
			func(s *Settings) { s.FuzzyThreshold = 1.5 },
			"fuzzy_threshold must be within [0, 1]",
		},
		{
			"negative limit",
			func(s *Settings) { s.DefaultLimit = -1 },
			"default_limit must be non-negative",
		},
		{
			"empty synonym key",
			func(s *Settings) { s.Synonyms = map[string][]string{" ": {"hoodie"}} },
			"synonym keys cannot be empty or whitespace-only",
		},
		{
			"multi-character keyboard key",
			func(s *Settings) { s.Keyboard = map[string][]string{"ab": {"c"}} },
			"keyboard keys must be single characters, got 'ab'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := &Settings{}
			settings.ApplyDefaults()
			tt.mutate(settings)

			assert.Contains(t, settings.Validate(), tt.conflict)
		})
	}
}

func TestValidateCleanSettings(t *testing.T) {
	settings := &Settings{}
	settings.ApplyDefaults()
	assert.Empty(t, settings.Validate())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
bm25_weight: 0.7
fuzzy_weight: 0.3
default_limit: 10
provider:
  endpoint: http://embeddings.local/embed
  api_key_env: EMBED_API_KEY
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	settings, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.7, settings.BM25Weight)
	assert.Equal(t, 0.3, settings.FuzzyWeight)
	assert.Equal(t, 10, settings.DefaultLimit)
	assert.Equal(t, "http://embeddings.local/embed", settings.Provider.Endpoint)

	// Unset fields still pick up defaults.
	assert.Equal(t, 0.1, settings.MinScore)
	assert.Equal(t, "8080", settings.Port)
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("min_similarity: 5\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "min_similarity")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestAPIKey(t *testing.T) {
	settings := &Settings{}
	assert.Empty(t, settings.APIKey())

	settings.Provider.APIKeyEnv = "SEARCH_TEST_API_KEY"
	t.Setenv("SEARCH_TEST_API_KEY", "secret")
	assert.Equal(t, "secret", settings.APIKey())
}
