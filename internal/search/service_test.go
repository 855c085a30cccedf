package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/souqlane/search-engine/config"
	"github.com/souqlane/search-engine/index"
	"github.com/souqlane/search-engine/model"
)

func newTestService(t *testing.T, embedder Embedder) *Service {
	t.Helper()
	settings := &config.Settings{}
	settings.ApplyDefaults()

	service, err := NewService(settings, embedder)
	require.NoError(t, err)
	return service
}

func floatPtr(v float64) *float64 { return &v }

func TestNewServiceRequiresSettings(t *testing.T) {
	_, err := NewService(nil, nil)
	assert.Error(t, err)
}

func TestSearchTextRanksAndCorrects(t *testing.T) {
	service := newTestService(t, nil)
	products := []model.Product{
		{ID: "1", Name: "Red Hoodie"},
		{ID: "2", Name: "Blue Jeans"},
	}

	result, err := service.SearchText(context.Background(), "hodie", products, TextOptions{})
	require.NoError(t, err)

	// Only the hoodie clears the score cutoff, carried by fuzzy similarity.
	require.Len(t, result.Results, 1)
	assert.Equal(t, "1", result.Results[0].Product.ID)
	assert.Equal(t, model.MatchFuzzy, result.Results[0].MatchType)
	assert.Zero(t, result.Results[0].Breakdown.BM25Score)
	assert.Greater(t, result.Results[0].Breakdown.FuzzyScore, 0.7)

	// The typo is corrected against the corpus dictionary, but scoring used
	// the query as typed.
	assert.Equal(t, "hoodie", result.CorrectedQuery)
	require.Len(t, result.Corrections, 1)
	assert.Equal(t, "hodie", result.Corrections[0].Original)

	assert.Equal(t, 2, result.Debug.CorpusSize)
	assert.Equal(t, 2, result.Debug.FilteredSize)
	assert.NotEmpty(t, result.Debug.QueryID)
}

func TestSearchTextArabicVariantSpelling(t *testing.T) {
	service := newTestService(t, nil)
	products := []model.Product{
		{ID: "1", Name: "هودي أسود"},
		{ID: "2", Name: "Blue Jeans"},
	}

	// The alef maksura spelling normalizes to the indexed form, so this is a
	// straight BM25 term hit, not a fuzzy rescue.
	result, err := service.SearchText(context.Background(), "هودى", products, TextOptions{})
	require.NoError(t, err)

	require.NotEmpty(t, result.Results)
	assert.Equal(t, "1", result.Results[0].Product.ID)
	assert.Equal(t, model.MatchExact, result.Results[0].MatchType)
	assert.Contains(t, result.Results[0].MatchedTerms, "هودي")
	assert.Greater(t, result.Results[0].Breakdown.BM25Score, 0.0)
	assert.Empty(t, result.CorrectedQuery)
}

func TestSearchTextExpansionIsInformational(t *testing.T) {
	service := newTestService(t, nil)
	products := []model.Product{{ID: "1", Name: "Cozy Hoodie"}}

	// The Arabic query expands to "hoodie", but expansion never feeds
	// scoring, so the cross-script query finds nothing.
	result, err := service.SearchText(context.Background(), "هودي", products, TextOptions{})
	require.NoError(t, err)

	assert.Empty(t, result.Results)
	assert.Contains(t, result.Debug.ExpandedTerms, "hoodie")
	assert.Contains(t, result.Debug.ExpandedTerms, "هودي")
}

func TestSearchTextMinScoreCutoff(t *testing.T) {
	service := newTestService(t, nil)
	products := []model.Product{
		{ID: "1", Name: "Red Hoodie"},
		{ID: "2", Name: "Blue Jeans"},
	}

	result, err := service.SearchText(context.Background(), "hoodie", products, TextOptions{
		MinScore: floatPtr(999),
	})
	require.NoError(t, err)
	assert.Empty(t, result.Results)
}

func TestSearchTextEmptyQueryAndCorpus(t *testing.T) {
	service := newTestService(t, nil)

	result, err := service.SearchText(context.Background(), "", []model.Product{{ID: "1", Name: "Hoodie"}}, TextOptions{})
	require.NoError(t, err)
	assert.Empty(t, result.Results)

	result, err = service.SearchText(context.Background(), "hoodie", nil, TextOptions{})
	require.NoError(t, err)
	assert.Empty(t, result.Results)
	assert.Equal(t, 0, result.Debug.CorpusSize)
}

func TestSearchTextLimit(t *testing.T) {
	service := newTestService(t, nil)
	products := []model.Product{
		{ID: "1", Name: "Hoodie One"},
		{ID: "2", Name: "Hoodie Two"},
		{ID: "3", Name: "Hoodie Three"},
	}

	result, err := service.SearchText(context.Background(), "hoodie", products, TextOptions{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, result.Results, 2)
}

func TestSearchTextFilters(t *testing.T) {
	price := func(v float64) *float64 { return &v }
	products := []model.Product{
		{ID: "1", Name: "Red Hoodie", Category: "Hoodies", Color: "Red", Price: price(30)},
		{ID: "2", Name: "Black Hoodie", Category: "Hoodies", Color: "Black", Price: price(80)},
		{ID: "3", Name: "Hoodie Dress", Category: "Dresses", Color: "Red", Price: price(30)},
		{ID: "4", Name: "Gift Hoodie", Category: "Hoodies", Color: "Red"},
	}
	service := newTestService(t, nil)

	t.Run("category", func(t *testing.T) {
		result, err := service.SearchText(context.Background(), "hoodie", products, TextOptions{
			Filters: &Filters{Category: "hoodies"},
		})
		require.NoError(t, err)
		ids := resultIDs(result.Results)
		assert.ElementsMatch(t, []string{"1", "2", "4"}, ids)
	})

	t.Run("price range excludes products without a price", func(t *testing.T) {
		result, err := service.SearchText(context.Background(), "hoodie", products, TextOptions{
			Filters: &Filters{PriceRange: &PriceRange{Min: 20, Max: 50}},
		})
		require.NoError(t, err)
		ids := resultIDs(result.Results)
		assert.ElementsMatch(t, []string{"1", "3"}, ids)
	})

	t.Run("colors", func(t *testing.T) {
		result, err := service.SearchText(context.Background(), "hoodie", products, TextOptions{
			Filters: &Filters{Colors: []string{"Black"}},
		})
		require.NoError(t, err)
		ids := resultIDs(result.Results)
		assert.Equal(t, []string{"2"}, ids)
	})

	t.Run("combined", func(t *testing.T) {
		result, err := service.SearchText(context.Background(), "hoodie", products, TextOptions{
			Filters: &Filters{Category: "Hoodies", Colors: []string{"red"}, PriceRange: &PriceRange{Min: 0, Max: 100}},
		})
		require.NoError(t, err)
		ids := resultIDs(result.Results)
		assert.Equal(t, []string{"1"}, ids)
	})
}

func TestSearchTextIndexedMatchesDirect(t *testing.T) {
	service := newTestService(t, nil)
	products := []model.Product{
		{ID: "1", Name: "Red Hoodie", Description: "Warm cotton hoodie"},
		{ID: "2", Name: "Blue Jeans"},
		{ID: "3", Name: "Black Hoodie"},
	}
	ix := index.Build(products)

	direct, err := service.SearchText(context.Background(), "black hoodie", products, TextOptions{})
	require.NoError(t, err)

	indexed, err := service.SearchText(context.Background(), "black hoodie", products, TextOptions{Index: ix})
	require.NoError(t, err)

	require.Equal(t, len(direct.Results), len(indexed.Results))
	for i := range direct.Results {
		assert.Equal(t, direct.Results[i].Product.ID, indexed.Results[i].Product.ID)
		assert.InDelta(t, direct.Results[i].Score, indexed.Results[i].Score, 1e-12)
		assert.Equal(t, direct.Results[i].MatchType, indexed.Results[i].MatchType)
	}
}

func TestSearchTextCustomSynonyms(t *testing.T) {
	settings := &config.Settings{
		Synonyms: map[string][]string{"كنزه": {"jumper"}},
	}
	settings.ApplyDefaults()
	service, err := NewService(settings, nil)
	require.NoError(t, err)

	result, err := service.SearchText(context.Background(), "كنزه", []model.Product{{ID: "1", Name: "Jumper"}}, TextOptions{})
	require.NoError(t, err)
	assert.Contains(t, result.Debug.ExpandedTerms, "jumper")
}

func TestSpellCheckStandalone(t *testing.T) {
	service := newTestService(t, nil)
	products := []model.Product{
		{ID: "1", Name: "Red Hoodie"},
		{ID: "2", Name: "Blue Jeans"},
	}

	check := service.SpellCheck("hodie jens", products)
	assert.Equal(t, "hoodie jeans", check.Corrected)
	assert.Len(t, check.Corrections, 2)
	assert.Less(t, check.Confidence, 1.0)
}

func resultIDs(results []model.SearchResult) []string {
	ids := make([]string, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.Product.ID)
	}
	return ids
}
