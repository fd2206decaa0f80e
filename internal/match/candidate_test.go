package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRank(t *testing.T) {
	ranked := Rank("ownedElemnt", []string{"member", "ownedMember", "ownedElement", "ownedElement"})

	require.Len(t, ranked, 3, "duplicates are scored once")
	assert.Equal(t, "ownedElement", ranked.Best().Name)

	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}
}

func TestRank_TiesByName(t *testing.T) {
	ranked := Rank("x", []string{"b", "a"})

	require.Len(t, ranked, 2)
	assert.Equal(t, "a", ranked[0].Name)
	assert.Equal(t, "b", ranked[1].Name)
}

func TestCandidateList_Best(t *testing.T) {
	assert.Nil(t, CandidateList{}.Best())
	assert.Equal(t, "a", CandidateList{{Name: "a", Score: 1}}.Best().Name)
}

func TestCandidateList_HighConfidence(t *testing.T) {
	tests := []struct {
		name       string
		candidates CandidateList
		want       string
	}{
		{"empty", nil, ""},
		{"single above threshold", CandidateList{{Name: "a", Score: 0.9}}, "a"},
		{"single below threshold", CandidateList{{Name: "a", Score: 0.5}}, ""},
		{"clear winner", CandidateList{{Name: "a", Score: 0.9}, {Name: "b", Score: 0.7}}, "a"},
		{"ambiguous", CandidateList{{Name: "a", Score: 0.9}, {Name: "b", Score: 0.85}}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.candidates.HighConfidence(DefaultMinScore, DefaultMinGap)
			if tt.want == "" {
				assert.Nil(t, got)
				return
			}

			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.Name)
		})
	}
}

func TestSuggest(t *testing.T) {
	name, ok := Suggest("ownedElemnt", []string{"member", "ownedMember", "ownedElement"})
	assert.True(t, ok)
	assert.Equal(t, "ownedElement", name)

	_, ok = Suggest("zzz", []string{"member", "ownedElement"})
	assert.False(t, ok, "nothing similar")

	_, ok = Suggest("abcd", []string{"abce", "abcf"})
	assert.False(t, ok, "two equally close names")

	_, ok = Suggest("member", nil)
	assert.False(t, ok)
}
