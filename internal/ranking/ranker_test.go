package ranking

import (
	"testing"

	"github.com/jcamilor/cv-ranker/internal/candidate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCandidates(texts ...string) *candidate.Candidates {
	c := &candidate.Candidates{}
	for i, text := range texts {
		c.Add(&candidate.Candidate{
			File: string(rune('a'+i)) + ".pdf",
			Name: "Candidato " + string(rune('A'+i)),
			Text: text,
		})
	}
	return c
}

func TestRankOrdersByScoreDescending(t *testing.T) {
	cands := testCandidates(
		"experiencia ventas mercadeo publicidad",
		"python estadística datos docencia tutorías monitorías",
		"python datos",
	)

	r, err := Rank(cands, "monitor con python estadística datos docencia tutorías", Options{})
	require.NoError(t, err)
	require.Equal(t, 3, r.Len())

	for i := 0; i+1 < r.Len(); i++ {
		assert.GreaterOrEqual(t, r.Entries[i].Score, r.Entries[i+1].Score)
	}
	assert.Equal(t, "b.pdf", r.Top().File)
}

func TestRankScoresWithinUnitInterval(t *testing.T) {
	cands := testCandidates(
		"python datos estadística",
		"diseño gráfico ilustración",
		"python datos estadística docencia",
	)

	r, err := Rank(cands, "python datos estadística docencia", Options{})
	require.NoError(t, err)

	for _, e := range r.Entries {
		assert.GreaterOrEqual(t, e.Score, 0.0)
		assert.LessOrEqual(t, e.Score, 1.0)
	}
}

func TestRankEmptyTextScoresZero(t *testing.T) {
	cands := testCandidates(
		"python datos estadística",
		"", // nothing survived normalization
	)

	r, err := Rank(cands, "python datos", Options{})
	require.NoError(t, err)

	for _, e := range r.Entries {
		if e.File == "b.pdf" {
			assert.Zero(t, e.Score)
		}
	}
	// And the empty candidate sorts last.
	assert.Equal(t, "b.pdf", r.Entries[r.Len()-1].File)
}

func TestRankTiesKeepEnumerationOrder(t *testing.T) {
	// Identical texts tie exactly; the stable sort must keep a before b.
	cands := testCandidates(
		"python datos estadística",
		"python datos estadística",
	)

	r, err := Rank(cands, "python datos", Options{})
	require.NoError(t, err)
	require.Equal(t, 2, r.Len())

	assert.Equal(t, r.Entries[0].Score, r.Entries[1].Score)
	assert.Equal(t, "a.pdf", r.Entries[0].File)
	assert.Equal(t, "b.pdf", r.Entries[1].File)
}

func TestRankEmptyCorpusFails(t *testing.T) {
	_, err := Rank(&candidate.Candidates{}, "perfil", Options{})
	assert.ErrorIs(t, err, ErrEmptyCorpus)

	_, err = Rank(testCandidates("", ""), "", Options{})
	assert.ErrorIs(t, err, ErrEmptyCorpus)
}

func TestRankNormalizesBothSides(t *testing.T) {
	// Same content with different casing and punctuation must score as a
	// near-duplicate of the profile.
	cands := testCandidates("PYTHON, Datos; ESTADÍSTICA!!")

	r, err := Rank(cands, "python datos estadística", Options{})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, r.Top().Score, 1e-9)
}

func TestCosine(t *testing.T) {
	assert.InDelta(t, 1.0, Cosine([]float64{1, 2, 3}, []float64{2, 4, 6}), 1e-9)
	assert.Zero(t, Cosine([]float64{1, 0}, []float64{0, 1}))
	assert.Zero(t, Cosine([]float64{0, 0}, []float64{1, 1}))
	assert.Zero(t, Cosine([]float64{1, 1}, []float64{0, 0}))
}

func TestRankingStats(t *testing.T) {
	r := &Ranking{Entries: []*Scored{
		{Candidate: &candidate.Candidate{Name: "A"}, Score: 0.8},
		{Candidate: &candidate.Candidate{Name: "B"}, Score: 0.4},
	}}

	assert.InDelta(t, 0.6, r.Mean(), 1e-9)
	assert.InDelta(t, 0.8, r.Max(), 1e-9)
	assert.InDelta(t, 0.4, r.Min(), 1e-9)
	assert.Equal(t, "A", r.Top().Name)

	empty := &Ranking{}
	assert.Nil(t, empty.Top())
	assert.Zero(t, empty.Mean())
}
