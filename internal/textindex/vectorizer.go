// Package textindex builds reusable TF-IDF vector spaces over small
// text corpora and answers cosine-similarity queries against them. It
// is the shared backbone of department routing and FAQ retrieval.
package textindex

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// Tokens of two or more word characters, lowercased.
var tokenRe = regexp.MustCompile(`\b\w\w+\b`)

// Match pairs a document with its cosine similarity to a query. Doc is
// the position in the ORIGINAL input slice, blanks included, so callers
// can map straight back to their source rows.
type Match struct {
	Doc   int
	Score float64
}

// Index is a fitted TF-IDF vector space. Immutable after Build; safe
// for concurrent queries.
type Index struct {
	vocab map[string]int
	idf   []float64
	docs  []sparseVec
	// docIDs maps fitted row -> original input position
	docIDs []int
	// queries go through the same analyzer the corpus was fitted with
	stopWords map[string]struct{}
}

type sparseVec map[int]float64

// Build fits an index over texts. Blank entries are skipped but keep
// their original positions for Match.Doc. Feature parameters adapt to
// corpus size: tiny corpora (fewer than 3 usable texts) keep every term
// so a handful of custom FAQs still produces a usable, if noisy, index;
// larger corpora require a term in at least 2 documents and drop
// English stop words.
func Build(texts []string) *Index {
	docIDs := make([]int, 0, len(texts))
	kept := make([]string, 0, len(texts))
	for i, text := range texts {
		if strings.TrimSpace(text) == "" {
			continue
		}
		docIDs = append(docIDs, i)
		kept = append(kept, text)
	}

	minDF := 2
	var stopWords map[string]struct{} = englishStopWords
	if len(kept) < 3 {
		minDF = 1
		stopWords = nil
	}

	tokenized := make([][]string, len(kept))
	for i, text := range kept {
		tokenized[i] = ngrams(tokenize(text, stopWords))
	}

	// document frequencies
	df := map[string]int{}
	for _, terms := range tokenized {
		seen := map[string]struct{}{}
		for _, term := range terms {
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			df[term]++
		}
	}

	ix := &Index{vocab: map[string]int{}, docIDs: docIDs, stopWords: stopWords}
	terms := make([]string, 0, len(df))
	for term, freq := range df {
		if freq >= minDF {
			terms = append(terms, term)
		}
	}
	sort.Strings(terms)
	for _, term := range terms {
		ix.vocab[term] = len(ix.vocab)
	}

	n := float64(len(kept))
	ix.idf = make([]float64, len(ix.vocab))
	for term, id := range ix.vocab {
		// smoothed idf, matching the conventional ln((1+n)/(1+df))+1
		ix.idf[id] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	ix.docs = make([]sparseVec, len(kept))
	for i, terms := range tokenized {
		ix.docs[i] = ix.vectorize(terms)
	}
	return ix
}

// Len is the number of usable (non-blank) documents in the index.
func (ix *Index) Len() int {
	return len(ix.docs)
}

// Similarities returns the cosine similarity of the query against every
// fitted document, in fit order, with Doc holding original positions.
func (ix *Index) Similarities(query string) []Match {
	qv := ix.vectorize(ngrams(tokenize(query, ix.stopWords)))
	out := make([]Match, len(ix.docs))
	for i, doc := range ix.docs {
		out[i] = Match{Doc: ix.docIDs[i], Score: dot(qv, doc)}
	}
	return out
}

// TopK returns the k best matches ordered by score descending. Ties
// resolve to the earlier document, so the first-inserted entry wins.
func (ix *Index) TopK(query string, k int) []Match {
	matches := ix.Similarities(query)
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if k > len(matches) {
		k = len(matches)
	}
	return matches[:k]
}

// Best returns the single best match, or false for an empty index.
func (ix *Index) Best(query string) (Match, bool) {
	top := ix.TopK(query, 1)
	if len(top) == 0 {
		return Match{}, false
	}
	return top[0], true
}

// vectorize builds an l2-normalized tf-idf vector over the fitted
// vocabulary. Unknown terms are ignored.
func (ix *Index) vectorize(terms []string) sparseVec {
	vec := sparseVec{}
	for _, term := range terms {
		if id, ok := ix.vocab[term]; ok {
			vec[id]++
		}
	}
	var norm float64
	for id, tf := range vec {
		weighted := tf * ix.idf[id]
		vec[id] = weighted
		norm += weighted * weighted
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for id, value := range vec {
			vec[id] = value / norm
		}
	}
	return vec
}

func tokenize(text string, stopWords map[string]struct{}) []string {
	tokens := tokenRe.FindAllString(strings.ToLower(text), -1)
	if stopWords == nil {
		return tokens
	}
	kept := tokens[:0]
	for _, token := range tokens {
		if _, ok := stopWords[token]; ok {
			continue
		}
		kept = append(kept, token)
	}
	return kept
}

// ngrams appends bigrams to the unigram stream.
func ngrams(tokens []string) []string {
	out := make([]string, 0, len(tokens)*2)
	out = append(out, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		out = append(out, tokens[i]+" "+tokens[i+1])
	}
	return out
}

// dot of two l2-normalized sparse vectors is their cosine similarity.
func dot(a, b sparseVec) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var sum float64
	for id, value := range a {
		if other, ok := b[id]; ok {
			sum += value * other
		}
	}
	return sum
}
