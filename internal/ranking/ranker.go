package ranking

import (
	"math"
	"sort"

	"github.com/jcamilor/cv-ranker/internal/candidate"
	"github.com/jcamilor/cv-ranker/internal/textproc"
)

// Scored pairs a candidate with its similarity against the ideal profile.
// Scores are only comparable within the run that produced them.
type Scored struct {
	*candidate.Candidate
	Score float64
}

// Ranking is the final ordered result: scores descending, candidates with
// equal scores keep their original enumeration order.
type Ranking struct {
	Entries []*Scored
}

// Options configures one ranking run.
type Options struct {
	// MaxFeatures caps the fitted vocabulary; zero means DefaultMaxFeatures.
	MaxFeatures int
}

// Rank scores every candidate against the profile text and sorts the result.
// It is a pure function of its inputs: both sides go through the shared
// normalizer, one TF-IDF space is fitted over all of them together, and each
// candidate's score is the cosine of its vector against the profile vector.
func Rank(cands *candidate.Candidates, profile string, opts Options) (*Ranking, error) {
	corpus := Corpus{
		Docs:    make([]string, 0, cands.Len()),
		Profile: textproc.Normalize(profile),
	}
	for _, c := range cands.Items {
		corpus.Docs = append(corpus.Docs, textproc.Normalize(c.Text))
	}

	fitted, err := NewVectorizer(opts.MaxFeatures).FitTransform(corpus)
	if err != nil {
		return nil, err
	}

	r := &Ranking{Entries: make([]*Scored, 0, cands.Len())}
	for i, c := range cands.Items {
		r.Entries = append(r.Entries, &Scored{
			Candidate: c,
			Score:     Cosine(fitted.ProfileVec, fitted.DocVecs[i]),
		})
	}

	sort.SliceStable(r.Entries, func(i, j int) bool {
		return r.Entries[i].Score > r.Entries[j].Score
	})

	return r, nil
}

// Cosine returns the cosine similarity of u and v, or 0 when either vector
// has zero norm. For non-negative vectors the result lies in [0, 1].
func Cosine(u, v []float64) float64 {
	var dot, nu, nv float64
	for i := range u {
		dot += u[i] * v[i]
		nu += u[i] * u[i]
		nv += v[i] * v[i]
	}
	if nu == 0 || nv == 0 {
		return 0
	}
	sim := dot / (math.Sqrt(nu) * math.Sqrt(nv))
	// Guard against float drift past the closed interval.
	return math.Min(1, math.Max(0, sim))
}

func (r *Ranking) Len() int {
	return len(r.Entries)
}

// Top returns the highest-scored entry, or nil for an empty ranking.
func (r *Ranking) Top() *Scored {
	if len(r.Entries) == 0 {
		return nil
	}
	return r.Entries[0]
}

// Mean returns the average score across all entries.
func (r *Ranking) Mean() float64 {
	if len(r.Entries) == 0 {
		return 0
	}
	var sum float64
	for _, e := range r.Entries {
		sum += e.Score
	}
	return sum / float64(len(r.Entries))
}

// Max returns the highest score.
func (r *Ranking) Max() float64 {
	if len(r.Entries) == 0 {
		return 0
	}
	return r.Entries[0].Score
}

// Min returns the lowest score.
func (r *Ranking) Min() float64 {
	if len(r.Entries) == 0 {
		return 0
	}
	return r.Entries[len(r.Entries)-1].Score
}
