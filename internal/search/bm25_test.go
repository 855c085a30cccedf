package search

import (
	"math"
	"testing"

	"github.com/souqlane/search-engine/index"
	"github.com/souqlane/search-engine/model"
)

func makeDoc(p *model.Product, tokens ...string) *document {
	terms := make(map[string]bool, len(tokens))
	for _, token := range tokens {
		terms[token] = true
	}
	return &document{product: p, tokens: tokens, terms: terms, length: len(tokens)}
}

func TestBM25ScoreZeroWhenTermAbsent(t *testing.T) {
	docs := []*document{
		makeDoc(&model.Product{ID: "1"}, "red", "hoodie"),
		makeDoc(&model.Product{ID: "2"}, "blue", "jeans"),
	}
	ranker := NewBM25Ranker(docs, nil)

	score, matched := ranker.Score([]string{"skirt"}, docs[0])
	if score != 0 {
		t.Errorf("expected zero score for absent term, got %f", score)
	}
	if len(matched) != 0 {
		t.Errorf("expected no matched terms, got %v", matched)
	}
}

func TestBM25ScoreIncreasesWithTermFrequency(t *testing.T) {
	// Same length, same document frequency for the term; only tf differs.
	docs := []*document{
		makeDoc(&model.Product{ID: "1"}, "hoodie", "cap"),
		makeDoc(&model.Product{ID: "2"}, "hoodie", "hoodie"),
	}
	ranker := NewBM25Ranker(docs, nil)

	scoreOnce, _ := ranker.Score([]string{"hoodie"}, docs[0])
	scoreTwice, _ := ranker.Score([]string{"hoodie"}, docs[1])

	if scoreTwice <= scoreOnce {
		t.Errorf("score should grow with term frequency: tf=2 %f <= tf=1 %f", scoreTwice, scoreOnce)
	}
}

func TestBM25RareTermOutweighsCommonTerm(t *testing.T) {
	// "hoodie" appears everywhere, "cap" in one document.
	docs := []*document{
		makeDoc(&model.Product{ID: "1"}, "hoodie", "cap"),
		makeDoc(&model.Product{ID: "2"}, "hoodie", "red"),
		makeDoc(&model.Product{ID: "3"}, "hoodie", "blue"),
	}
	ranker := NewBM25Ranker(docs, nil)

	commonScore, _ := ranker.Score([]string{"hoodie"}, docs[0])
	rareScore, _ := ranker.Score([]string{"cap"}, docs[0])

	if rareScore <= commonScore {
		t.Errorf("rare term should outweigh common term: %f <= %f", rareScore, commonScore)
	}
}

func TestBM25IDFFormula(t *testing.T) {
	docs := []*document{
		makeDoc(&model.Product{ID: "1"}, "hoodie"),
		makeDoc(&model.Product{ID: "2"}, "jeans"),
	}
	ranker := NewBM25Ranker(docs, nil)

	// N=2, n_t=1, doc length 1 == average length, tf=1:
	// idf = ln((2-1+0.5)/(1+0.5)+1) = ln(2); norm = 1 + k1; contribution =
	// idf * tf * (k1+1) / norm = ln(2).
	score, matched := ranker.Score([]string{"hoodie"}, docs[0])
	want := math.Log(2)
	if math.Abs(score-want) > 1e-9 {
		t.Errorf("score = %f, want %f", score, want)
	}
	if len(matched) != 1 || matched[0] != "hoodie" {
		t.Errorf("matched = %v, want [hoodie]", matched)
	}
}

func TestBM25DuplicateQueryTermsCountOnce(t *testing.T) {
	docs := []*document{
		makeDoc(&model.Product{ID: "1"}, "hoodie", "red"),
		makeDoc(&model.Product{ID: "2"}, "jeans"),
	}
	ranker := NewBM25Ranker(docs, nil)

	once, _ := ranker.Score([]string{"hoodie"}, docs[0])
	repeated, _ := ranker.Score([]string{"hoodie", "hoodie", "hoodie"}, docs[0])

	if once != repeated {
		t.Errorf("duplicate query terms should not inflate the score: %f != %f", once, repeated)
	}
}

func TestBM25LengthNormalization(t *testing.T) {
	// Same tf, but one document is much longer.
	docs := []*document{
		makeDoc(&model.Product{ID: "1"}, "hoodie", "red"),
		makeDoc(&model.Product{ID: "2"}, "hoodie", "soft", "cotton", "winter", "warm", "fleece"),
	}
	ranker := NewBM25Ranker(docs, nil)

	shortScore, _ := ranker.Score([]string{"hoodie"}, docs[0])
	longScore, _ := ranker.Score([]string{"hoodie"}, docs[1])

	if shortScore <= longScore {
		t.Errorf("shorter document should score higher at equal tf: %f <= %f", shortScore, longScore)
	}
}

func TestBM25IndexedFrequenciesMatchScan(t *testing.T) {
	products := []model.Product{
		{ID: "1", Name: "Red Hoodie"},
		{ID: "2", Name: "Blue Jeans"},
		{ID: "3", Name: "Black Hoodie"},
	}
	ix := index.Build(products)

	docs := make([]*document, 0, len(products))
	for i := range products {
		tokens, _ := ix.Tokens(products[i].ID)
		docs = append(docs, makeDoc(&products[i], tokens...))
	}

	scanned := NewBM25Ranker(docs, nil)
	indexed := NewBM25Ranker(docs, ix.DocFrequency)

	for _, term := range []string{"hoodie", "jeans", "red", "missing"} {
		for i := range docs {
			a, _ := scanned.Score([]string{term}, docs[i])
			b, _ := indexed.Score([]string{term}, docs[i])
			if a != b {
				t.Errorf("term %q doc %d: scanned %f != indexed %f", term, i, a, b)
			}
		}
	}
}
