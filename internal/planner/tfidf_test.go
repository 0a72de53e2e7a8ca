package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	assert.Equal(t,
		[]string{"제주", "바다", "ocean_view", "2박3일", "a"},
		Tokenize("제주 바다, Ocean_View 2박3일! (a)"))
	assert.Empty(t, Tokenize("  ,.!  "))
}

func TestFitIndex_SmoothedIDF(t *testing.T) {
	ix, err := FitIndex([]string{"a b", "a"})
	require.NoError(t, err)
	assert.Equal(t, 2, ix.VocabularySize())

	// idf(a) = 1, idf(b) = ln(3/2)+1; doc 0 is normalized over both.
	q := ix.Transform("b")
	assert.InDelta(t, 0.814802, ix.Similarity(q, 0), 1e-5)
	assert.InDelta(t, 0.0, ix.Similarity(q, 1), 1e-12)

	q = ix.Transform("a")
	assert.InDelta(t, 0.579739, ix.Similarity(q, 0), 1e-5)
	assert.InDelta(t, 1.0, ix.Similarity(q, 1), 1e-9)
}

func TestIndex_IdenticalDocumentScoresOne(t *testing.T) {
	ix, err := FitIndex([]string{"자연 숲 오름", "흑돼지 맛집", ""})
	require.NoError(t, err)

	q := ix.Transform("자연 숲 오름")
	assert.InDelta(t, 1.0, ix.Similarity(q, 0), 1e-9)
	assert.Zero(t, ix.Similarity(q, 1))
	assert.Zero(t, ix.Similarity(q, 2))
	assert.Zero(t, ix.Similarity(q, 7))
}

func TestIndex_OutOfVocabularyTokensAreIgnored(t *testing.T) {
	ix, err := FitIndex([]string{"자연 숲", "바다"})
	require.NoError(t, err)

	assert.Empty(t, ix.Transform("우주 여행"))
	assert.Equal(t, ix.Transform("바다"), ix.Transform("바다 우주"))
}

func TestFitIndex_EmptyVocabulary(t *testing.T) {
	_, err := FitIndex([]string{"", " ,"})
	assert.ErrorIs(t, err, ErrEmptyVocabulary)
}
