package planner

import (
	"errors"
	"math"
	"regexp"
	"strings"
)

var ErrEmptyVocabulary = errors.New("tfidf: corpus has no tokens")

// Word runs of Unicode letters, digits and underscores, so Hangul syllables
// tokenize the same way Latin words do. Single-character tokens are kept.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

func Tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}

// Vector is a sparse, L2-normalized TF-IDF row keyed by term index.
type Vector map[int]float64

func (v Vector) Dot(o Vector) float64 {
	if len(o) < len(v) {
		v, o = o, v
	}
	var sum float64
	for term, w := range v {
		sum += w * o[term]
	}
	return sum
}

// Index is a TF-IDF model fitted over a fixed corpus. It uses raw term
// counts, smoothed idf ln((1+n)/(1+df))+1 and L2 row normalization.
type Index struct {
	vocab map[string]int
	idf   []float64
	docs  []Vector
}

func FitIndex(corpus []string) (*Index, error) {
	vocab := make(map[string]int)
	var df []int
	tokenized := make([][]string, len(corpus))

	for i, doc := range corpus {
		tokens := Tokenize(doc)
		tokenized[i] = tokens
		seen := make(map[int]struct{}, len(tokens))
		for _, tok := range tokens {
			id, ok := vocab[tok]
			if !ok {
				id = len(vocab)
				vocab[tok] = id
				df = append(df, 0)
			}
			if _, dup := seen[id]; !dup {
				seen[id] = struct{}{}
				df[id]++
			}
		}
	}
	if len(vocab) == 0 {
		return nil, ErrEmptyVocabulary
	}

	n := float64(len(corpus))
	idf := make([]float64, len(df))
	for id, d := range df {
		idf[id] = math.Log((1+n)/(1+float64(d))) + 1
	}

	ix := &Index{vocab: vocab, idf: idf, docs: make([]Vector, len(corpus))}
	for i, tokens := range tokenized {
		ix.docs[i] = ix.vectorize(tokens)
	}
	return ix, nil
}

func (ix *Index) Len() int { return len(ix.docs) }

func (ix *Index) VocabularySize() int { return len(ix.vocab) }

// Transform projects text into the fitted space; unknown tokens are dropped.
func (ix *Index) Transform(text string) Vector {
	return ix.vectorize(Tokenize(text))
}

// Similarity is the cosine similarity between q and document doc, clamped
// to [0,1].
func (ix *Index) Similarity(q Vector, doc int) float64 {
	if doc < 0 || doc >= len(ix.docs) {
		return 0
	}
	s := q.Dot(ix.docs[doc])
	return math.Max(0, math.Min(1, s))
}

func (ix *Index) vectorize(tokens []string) Vector {
	v := make(Vector)
	for _, tok := range tokens {
		if id, ok := ix.vocab[tok]; ok {
			v[id]++
		}
	}
	var norm float64
	for id, tf := range v {
		w := tf * ix.idf[id]
		v[id] = w
		norm += w * w
	}
	if norm == 0 {
		return v
	}
	norm = math.Sqrt(norm)
	for id := range v {
		v[id] /= norm
	}
	return v
}
