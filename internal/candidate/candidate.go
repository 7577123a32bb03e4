// Package candidate holds the per-résumé data that flows through one run.
package candidate

// Candidate is one successfully extracted résumé. Immutable after creation.
type Candidate struct {
	// File is the source file name inside the input folder.
	File string
	// Name is the resolved display name for the person.
	Name string
	// Text is the normalized résumé text; may be empty when the whole
	// document was stop-words and noise.
	Text string
}

// Candidates is the ordered collection built during one run. Order is the
// enumeration order of the input folder and is the tie-breaking order of the
// final ranking.
type Candidates struct {
	Items []*Candidate
}

func (c *Candidates) Len() int {
	return len(c.Items)
}

func (c *Candidates) Add(cand *Candidate) {
	c.Items = append(c.Items, cand)
}

// Names returns the display names in enumeration order.
func (c *Candidates) Names() []string {
	names := make([]string, 0, len(c.Items))
	for _, cand := range c.Items {
		names = append(names, cand.Name)
	}
	return names
}

// Texts returns the normalized texts in enumeration order.
func (c *Candidates) Texts() []string {
	texts := make([]string, 0, len(c.Items))
	for _, cand := range c.Items {
		texts = append(texts, cand.Text)
	}
	return texts
}
