// Package config provides configuration for the search engine: scoring
// weights, result limits, acceptance thresholds, the synonym and keyboard
// tables, and the embedding provider connection.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ProviderSettings configures the embedding provider connection.
type ProviderSettings struct {
	Endpoint            string `yaml:"endpoint"`              // Embedding service URL
	APIKeyEnv           string `yaml:"api_key_env"`           // Name of the env var holding the API key
	TextTimeoutSeconds  int    `yaml:"text_timeout_seconds"`  // Deadline for text embedding calls
	ImageTimeoutSeconds int    `yaml:"image_timeout_seconds"` // Deadline for image embedding calls (incl. download)
}

// Settings contains all tunables for the search pipeline. Zero values are
// replaced by ApplyDefaults; the defaults reproduce the documented scoring
// contract (0.6 BM25 + 0.4 fuzzy, 0.5/0.5 hybrid weights, limit 20).
type Settings struct {
	BM25Weight     float64 `yaml:"bm25_weight"`     // Text blend weight for the BM25 component
	FuzzyWeight    float64 `yaml:"fuzzy_weight"`    // Text blend weight for the fuzzy component
	TextWeight     float64 `yaml:"text_weight"`     // Hybrid fusion weight for the text branch
	ImageWeight    float64 `yaml:"image_weight"`    // Hybrid fusion weight for the image branch
	DefaultLimit   int     `yaml:"default_limit"`   // Result count when the caller does not set one
	MinScore       float64 `yaml:"min_score"`       // Text search score cutoff
	MinSimilarity  float64 `yaml:"min_similarity"`  // Vector search cosine cutoff
	FuzzyThreshold float64 `yaml:"fuzzy_threshold"` // Per-word similarity acceptance for fuzzy matching

	Synonyms map[string][]string `yaml:"synonyms,omitempty"` // Overrides the built-in fashion table when set
	Keyboard map[string][]string `yaml:"keyboard,omitempty"` // Overrides the built-in Arabic adjacency table when set

	Provider ProviderSettings `yaml:"provider"`
	Port     string           `yaml:"port"`
}

// ApplyDefaults fills in zero-valued settings.
func (s *Settings) ApplyDefaults() {
	if s.BM25Weight == 0 && s.FuzzyWeight == 0 {
		s.BM25Weight = 0.6
		s.FuzzyWeight = 0.4
	}
	if s.TextWeight == 0 && s.ImageWeight == 0 {
		s.TextWeight = 0.5
		s.ImageWeight = 0.5
	}
	if s.DefaultLimit == 0 {
		s.DefaultLimit = 20
	}
	if s.MinScore == 0 {
		s.MinScore = 0.1
	}
	if s.MinSimilarity == 0 {
		s.MinSimilarity = 0.5
	}
	if s.FuzzyThreshold == 0 {
		s.FuzzyThreshold = 0.7
	}
	if s.Provider.TextTimeoutSeconds == 0 {
		s.Provider.TextTimeoutSeconds = 30
	}
	if s.Provider.ImageTimeoutSeconds == 0 {
		s.Provider.ImageTimeoutSeconds = 60
	}
	if s.Port == "" {
		s.Port = "8080"
	}
}

// Validate checks the settings for inconsistencies and returns a list of
// human-readable conflicts. An empty list means the settings are usable.
func (s *Settings) Validate() []string {
	var conflicts []string

	if s.BM25Weight < 0 || s.FuzzyWeight < 0 {
		conflicts = append(conflicts, "bm25_weight and fuzzy_weight must be non-negative")
	}
	if s.TextWeight < 0 || s.ImageWeight < 0 {
		conflicts = append(conflicts, "text_weight and image_weight must be non-negative")
	}
	if s.MinSimilarity < -1 || s.MinSimilarity > 1 {
		conflicts = append(conflicts, "min_similarity must be within [-1, 1]")
	}
	if s.FuzzyThreshold < 0 || s.FuzzyThreshold > 1 {
		conflicts = append(conflicts, "fuzzy_threshold must be within [0, 1]")
	}
	if s.DefaultLimit < 0 {
		conflicts = append(conflicts, "default_limit must be non-negative")
	}
	for canonical, variants := range s.Synonyms {
		if strings.TrimSpace(canonical) == "" {
			conflicts = append(conflicts, "synonym keys cannot be empty or whitespace-only")
		}
		for _, variant := range variants {
			if strings.TrimSpace(variant) == "" {
				conflicts = append(conflicts, "synonym variants for '"+canonical+"' cannot be empty")
			}
		}
	}
	for key := range s.Keyboard {
		if len([]rune(key)) != 1 {
			conflicts = append(conflicts, "keyboard keys must be single characters, got '"+key+"'")
		}
	}

	return conflicts
}

// APIKey resolves the provider API key from the configured environment
// variable. Empty when unset; the provider may not require one.
func (s *Settings) APIKey() string {
	if s.Provider.APIKeyEnv == "" {
		return ""
	}
	return os.Getenv(s.Provider.APIKeyEnv)
}

// Load reads settings from a YAML file, applies defaults, and validates.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	settings := &Settings{}
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	settings.ApplyDefaults()
	if conflicts := settings.Validate(); len(conflicts) > 0 {
		return nil, fmt.Errorf("invalid config: %s", strings.Join(conflicts, "; "))
	}
	return settings, nil
}
