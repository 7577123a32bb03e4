package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitTransformEmptyCorpus(t *testing.T) {
	v := NewVectorizer(100)

	_, err := v.FitTransform(Corpus{})
	assert.ErrorIs(t, err, ErrEmptyCorpus)

	_, err = v.FitTransform(Corpus{Docs: []string{"", ""}, Profile: ""})
	assert.ErrorIs(t, err, ErrEmptyCorpus)
}

func TestFitTransformShapes(t *testing.T) {
	v := NewVectorizer(100)

	fitted, err := v.FitTransform(Corpus{
		Docs:    []string{"python datos", "docencia tutorías"},
		Profile: "python docencia",
	})
	require.NoError(t, err)

	require.Len(t, fitted.DocVecs, 2)
	dim := len(fitted.Vocabulary)
	assert.Len(t, fitted.ProfileVec, dim)
	for _, vec := range fitted.DocVecs {
		assert.Len(t, vec, dim)
	}
}

func TestTermsIncludeBigrams(t *testing.T) {
	got := terms("python datos estadística")
	assert.ElementsMatch(t, []string{
		"python", "datos", "estadística",
		"python datos", "datos estadística",
	}, got)

	assert.Nil(t, terms(""))
	assert.Equal(t, []string{"python"}, terms("python"))
}

func TestVocabularyCap(t *testing.T) {
	v := NewVectorizer(3)

	corpus := Corpus{
		// "python" appears in every doc and wins; rare terms compete for
		// the remaining slots.
		Docs:    []string{"python datos", "python estadística", "python tutorías"},
		Profile: "python",
	}
	fitted, err := v.FitTransform(corpus)
	require.NoError(t, err)

	assert.Len(t, fitted.Vocabulary, 3)
	assert.Contains(t, fitted.Vocabulary, "python")
}

func TestVocabularyDeterministicUnderTies(t *testing.T) {
	corpus := Corpus{
		Docs:    []string{"zeta alfa", "beta gamma"},
		Profile: "delta",
	}
	first, err := NewVectorizer(4).FitTransform(corpus)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := NewVectorizer(4).FitTransform(corpus)
		require.NoError(t, err)
		assert.Equal(t, first.Vocabulary, again.Vocabulary)
	}
}

func TestVectorsAreL2Normalized(t *testing.T) {
	fitted, err := NewVectorizer(100).FitTransform(Corpus{
		Docs:    []string{"python datos estadística"},
		Profile: "python",
	})
	require.NoError(t, err)

	var norm float64
	for _, x := range fitted.DocVecs[0] {
		norm += x * x
	}
	assert.InDelta(t, 1.0, norm, 1e-9)
}

func TestEmptyDocGetsZeroVector(t *testing.T) {
	fitted, err := NewVectorizer(100).FitTransform(Corpus{
		Docs:    []string{"", "python datos"},
		Profile: "python",
	})
	require.NoError(t, err)

	for _, x := range fitted.DocVecs[0] {
		assert.Zero(t, x)
	}
}
