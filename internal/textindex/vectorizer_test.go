package textindex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildTinyCorpusKeepsEveryTerm(t *testing.T) {
	ix := Build([]string{"loan status", "atm card stuck"})
	require.Equal(t, 2, ix.Len())

	// below 3 documents no stop words are removed and single-document
	// terms survive, so an exact question still scores 1.0
	best, ok := ix.Best("what is my loan status")
	require.True(t, ok)
	require.Equal(t, 0, best.Doc)
	require.InDelta(t, 1.0, best.Score, 1e-9)
}

func TestBuildLargeCorpusDropsRareTerms(t *testing.T) {
	ix := Build([]string{
		"reset my online banking password",
		"change my online banking password",
		"update kyc documents",
		"apply for a personal loan",
	})
	require.Equal(t, 4, ix.Len())

	// "kyc" appears in one document only, so with min document
	// frequency 2 the query has no usable terms left
	best, ok := ix.Best("kyc update")
	require.True(t, ok)
	require.Zero(t, best.Score)

	// shared terms still match
	best, ok = ix.Best("banking password")
	require.True(t, ok)
	require.Greater(t, best.Score, 0.0)
}

func TestBuildSkipsBlanksButKeepsPositions(t *testing.T) {
	ix := Build([]string{"", "card blocked", "   ", "transfer failed"})
	require.Equal(t, 2, ix.Len())

	best, ok := ix.Best("my transfer failed today")
	require.True(t, ok)
	// Doc points at the original slice position, blanks included
	require.Equal(t, 3, best.Doc)
}

func TestBuildEmptyCorpus(t *testing.T) {
	ix := Build(nil)
	require.Zero(t, ix.Len())
	_, ok := ix.Best("anything")
	require.False(t, ok)
}

func TestTopKTieBreakPrefersFirstDocument(t *testing.T) {
	// identical documents tie exactly; the earlier one must win
	ix := Build([]string{"check balance", "check balance"})
	best, ok := ix.Best("check balance")
	require.True(t, ok)
	require.Equal(t, 0, best.Doc)

	top := ix.TopK("check balance", 5)
	require.Len(t, top, 2)
	require.Equal(t, 0, top[0].Doc)
	require.Equal(t, 1, top[1].Doc)
}

func TestTopKOrdering(t *testing.T) {
	ix := Build([]string{"atm ate my card", "loan interest rate"})
	top := ix.TopK("atm card problem", 2)
	require.Len(t, top, 2)
	require.GreaterOrEqual(t, top[0].Score, top[1].Score)
	require.Equal(t, 0, top[0].Doc)
}

func TestBigramsContribute(t *testing.T) {
	ix := Build([]string{"mobile money transfer", "money market account"})
	// "money transfer" as a phrase only exists in the first document
	best, ok := ix.Best("money transfer")
	require.True(t, ok)
	require.Equal(t, 0, best.Doc)
}
