package planner

import (
	"regexp"
	"strings"
)

var freeTextSplit = regexp.MustCompile(`[\s,]+`)

// Scorer turns tags and free text into a query and scores catalog places
// against it.
type Scorer struct {
	index      *Index
	expansions map[string]string
	vocabulary []string
}

func NewScorer(index *Index, tables *Tables) *Scorer {
	return &Scorer{
		index:      index,
		expansions: tables.Expansions,
		vocabulary: tables.TagVocabulary(),
	}
}

// DetectTags returns the vocabulary tags that contain, or are contained by,
// any word of the free text. Results follow vocabulary order.
func DetectTags(freeText string, vocabulary []string) []string {
	freeText = strings.TrimSpace(freeText)
	if freeText == "" {
		return nil
	}
	tokens := freeTextSplit.Split(freeText, -1)

	var out []string
	for _, tag := range vocabulary {
		for _, tok := range tokens {
			if tok == "" {
				continue
			}
			if strings.Contains(tag, tok) || strings.Contains(tok, tag) {
				out = append(out, tag)
				break
			}
		}
	}
	return out
}

// BuildQuery merges the selected tags with tags detected in the free text,
// expands every tag with its synonym phrase and appends the free text. The
// selected tags keep their order and detected tags follow.
func (s *Scorer) BuildQuery(selected []string, freeText string) (string, []string) {
	seen := make(map[string]struct{})
	var merged []string
	add := func(tag string) {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			return
		}
		if _, ok := seen[tag]; ok {
			return
		}
		seen[tag] = struct{}{}
		merged = append(merged, tag)
	}
	for _, t := range selected {
		add(t)
	}
	for _, t := range DetectTags(freeText, s.vocabulary) {
		add(t)
	}

	parts := make([]string, 0, len(merged)*2+1)
	for _, t := range merged {
		parts = append(parts, t)
		if exp, ok := s.expansions[t]; ok {
			parts = append(parts, exp)
		}
	}
	if freeText != "" {
		parts = append(parts, freeText)
	}
	return strings.Join(parts, " "), merged
}

// Score returns one similarity per place, in the order given.
func (s *Scorer) Score(query string, places []*Place) []Candidate {
	q := s.index.Transform(query)
	out := make([]Candidate, len(places))
	for i, p := range places {
		out[i] = Candidate{Place: p, Similarity: s.index.Similarity(q, p.ID)}
	}
	return out
}
