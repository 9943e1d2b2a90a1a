package extractor

import (
	"math"
	"sort"
	"strings"

	"trendscope/internal/domain"
)

const (
	maxNGram        = 3
	minDocFrequency = 2
	maxVocabulary   = 100
	minTokenLength  = 2
)

// document is one content item projected into term space. Vectors are
// sparse tf-idf maps, l2-normalized so cosine similarity is a plain dot
// product.
type document struct {
	id     int64
	source string
	vector map[string]float64
}

// tokenize lowercases the text, splits on non-alphanumeric runs and drops
// stopwords and short or purely numeric tokens.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !isAlnum(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) < minTokenLength || isStopword(f) || isNumeric(f) {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

func isAlnum(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// terms expands a token stream into 1..maxNGram grams joined by spaces.
func terms(tokens []string) []string {
	out := make([]string, 0, len(tokens)*maxNGram)
	for i := range tokens {
		for n := 1; n <= maxNGram && i+n <= len(tokens); n++ {
			out = append(out, strings.Join(tokens[i:i+n], " "))
		}
	}
	return out
}

// buildDocuments converts content items into normalized tf-idf vectors over
// a bounded vocabulary. Terms seen in fewer than minDocFrequency items are
// dropped; the vocabulary is capped at maxVocabulary terms, keeping the
// most widespread ones. Items whose text yields no vocabulary terms are
// omitted from the result.
func buildDocuments(items []domain.ContentItem) []document {
	freqs := make([]map[string]float64, len(items))
	df := make(map[string]int)

	for i := range items {
		tf := make(map[string]float64)
		for _, term := range terms(tokenize(items[i].Text())) {
			tf[term]++
		}
		for term := range tf {
			df[term]++
		}
		freqs[i] = tf
	}

	vocab := selectVocabulary(df)
	if len(vocab) == 0 {
		return nil
	}

	total := float64(len(items))
	docs := make([]document, 0, len(items))
	for i := range items {
		vector := make(map[string]float64)
		for term, tf := range freqs[i] {
			dfCount, ok := vocab[term]
			if !ok {
				continue
			}
			idf := math.Log((total+1)/(float64(dfCount)+1)) + 1
			vector[term] = tf * idf
		}
		if len(vector) == 0 {
			continue
		}
		norm := vectorNorm(vector)
		for term, w := range vector {
			vector[term] = w / norm
		}
		docs = append(docs, document{
			id:     items[i].ID,
			source: items[i].Source,
			vector: vector,
		})
	}
	return docs
}

// selectVocabulary keeps terms appearing in at least minDocFrequency
// documents, capped at maxVocabulary by document frequency. Ties break
// alphabetically so the vocabulary is stable for identical input.
func selectVocabulary(df map[string]int) map[string]int {
	candidates := make([]string, 0, len(df))
	for term, count := range df {
		if count >= minDocFrequency {
			candidates = append(candidates, term)
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		if df[candidates[i]] != df[candidates[j]] {
			return df[candidates[i]] > df[candidates[j]]
		}
		return candidates[i] < candidates[j]
	})
	if len(candidates) > maxVocabulary {
		candidates = candidates[:maxVocabulary]
	}

	vocab := make(map[string]int, len(candidates))
	for _, term := range candidates {
		vocab[term] = df[term]
	}
	return vocab
}

// dot and vectorNorm reduce in sorted term order: map iteration order is
// randomized per run, and float summation order must be fixed for the
// extractor's determinism guarantee to hold.
func dot(a, b map[string]float64) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var sum float64
	for _, term := range sortedTerms(a) {
		sum += a[term] * b[term]
	}
	return sum
}

func vectorNorm(v map[string]float64) float64 {
	var sum float64
	for _, term := range sortedTerms(v) {
		sum += v[term] * v[term]
	}
	return math.Sqrt(sum)
}

func sortedTerms(v map[string]float64) []string {
	terms := make([]string, 0, len(v))
	for term := range v {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}
