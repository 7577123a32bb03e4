// Package ranking scores normalized candidate texts against an ideal profile
// with TF-IDF vectors and cosine similarity.
package ranking

import (
	"errors"
	"math"
	"sort"
	"strings"
)

// ErrEmptyCorpus is returned when vectorization has nothing to fit: no
// documents at all, or every document and the profile normalize to empty
// text. Scores over such a corpus would be meaningless, so this surfaces
// loudly instead.
var ErrEmptyCorpus = errors.New("empty corpus: no usable text to vectorize")

// DefaultMaxFeatures bounds the fitted vocabulary size.
const DefaultMaxFeatures = 100

// Corpus is the joint input to vectorization. The profile is a named field so
// its vector is retrieved by origin, never by position inside a shared slice.
type Corpus struct {
	// Docs are the normalized candidate texts, in enumeration order.
	Docs []string
	// Profile is the normalized ideal-profile text.
	Profile string
}

// Fitted holds one vector per corpus entry, all in the same feature space.
// Valid only against the vocabulary of the run that produced it.
type Fitted struct {
	// DocVecs are the candidate vectors, index-aligned with Corpus.Docs.
	DocVecs [][]float64
	// ProfileVec is the ideal-profile vector.
	ProfileVec []float64
	// Vocabulary maps each kept term to its vector index.
	Vocabulary map[string]int
}

// Vectorizer fits a bounded-vocabulary TF-IDF model over one corpus. Feature
// units are unigrams and adjacent bigrams; the vocabulary keeps the
// MaxFeatures most frequent terms across the whole corpus.
type Vectorizer struct {
	MaxFeatures int
}

func NewVectorizer(maxFeatures int) *Vectorizer {
	if maxFeatures <= 0 {
		maxFeatures = DefaultMaxFeatures
	}
	return &Vectorizer{MaxFeatures: maxFeatures}
}

// FitTransform fits the vocabulary and IDF weights over the corpus (docs and
// profile together) and returns the L2-normalized TF-IDF vectors.
func (v *Vectorizer) FitTransform(c Corpus) (*Fitted, error) {
	if len(c.Docs) == 0 {
		return nil, ErrEmptyCorpus
	}

	all := make([][]string, 0, len(c.Docs)+1)
	for _, d := range c.Docs {
		all = append(all, terms(d))
	}
	all = append(all, terms(c.Profile))

	vocab := buildVocabulary(all, v.MaxFeatures)
	if len(vocab) == 0 {
		return nil, ErrEmptyCorpus
	}

	idf := inverseDocFreq(all, vocab)

	fitted := &Fitted{
		DocVecs:    make([][]float64, len(c.Docs)),
		Vocabulary: vocab,
	}
	for i := range c.Docs {
		fitted.DocVecs[i] = vectorize(all[i], vocab, idf)
	}
	fitted.ProfileVec = vectorize(all[len(all)-1], vocab, idf)

	return fitted, nil
}

// terms expands a normalized text into its feature units: every token plus
// every adjacent token pair.
func terms(doc string) []string {
	if doc == "" {
		return nil
	}
	tokens := strings.Split(doc, " ")
	out := make([]string, 0, 2*len(tokens))
	out = append(out, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		out = append(out, tokens[i]+" "+tokens[i+1])
	}
	return out
}

// buildVocabulary keeps the max most frequent terms by total corpus count.
// Count ties break alphabetically so the fitted space is deterministic.
func buildVocabulary(docs [][]string, max int) map[string]int {
	counts := make(map[string]int)
	for _, doc := range docs {
		for _, t := range doc {
			counts[t]++
		}
	}

	kept := make([]string, 0, len(counts))
	for t := range counts {
		kept = append(kept, t)
	}
	sort.Slice(kept, func(i, j int) bool {
		if counts[kept[i]] != counts[kept[j]] {
			return counts[kept[i]] > counts[kept[j]]
		}
		return kept[i] < kept[j]
	})

	if len(kept) > max {
		kept = kept[:max]
	}

	vocab := make(map[string]int, len(kept))
	// Index by term order, not frequency order; the space itself is
	// unordered and this keeps vectors stable under equal-count shuffles.
	sort.Strings(kept)
	for i, t := range kept {
		vocab[t] = i
	}
	return vocab
}

// inverseDocFreq computes smoothed IDF weights: ln((1+n)/(1+df)) + 1.
func inverseDocFreq(docs [][]string, vocab map[string]int) []float64 {
	df := make([]float64, len(vocab))
	for _, doc := range docs {
		seen := make(map[int]struct{})
		for _, t := range doc {
			idx, ok := vocab[t]
			if !ok {
				continue
			}
			if _, dup := seen[idx]; dup {
				continue
			}
			seen[idx] = struct{}{}
			df[idx]++
		}
	}

	n := float64(len(docs))
	idf := make([]float64, len(vocab))
	for i, d := range df {
		idf[i] = math.Log((1+n)/(1+d)) + 1
	}
	return idf
}

// vectorize builds the L2-normalized TF-IDF vector for one document.
func vectorize(doc []string, vocab map[string]int, idf []float64) []float64 {
	vec := make([]float64, len(vocab))
	for _, t := range doc {
		if idx, ok := vocab[t]; ok {
			vec[idx]++
		}
	}

	var norm float64
	for i := range vec {
		vec[i] *= idf[i]
		norm += vec[i] * vec[i]
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}
