package proof

import (
	"testing"

	"github.com/dogaozden/prop-bench-go/formula"
	"github.com/stretchr/testify/require"
)

func TestIsContradiction(t *testing.T) {
	require.True(t, IsContradiction(formula.Contradiction{}))
	require.True(t, IsContradiction(formula.MustParse("P & ~P")))
	require.True(t, IsContradiction(formula.MustParse("~P & P")))
	require.False(t, IsContradiction(formula.MustParse("P & Q")))
	require.False(t, IsContradiction(formula.MustParse("P & ~Q")))
}

func TestConditionalProofGetConclusion(t *testing.T) {
	assumption := formula.MustParse("P")
	derived := formula.MustParse("Q")
	conclusion, ok := ConditionalProof.GetConclusion(assumption, derived)
	require.True(t, ok)
	require.True(t, formula.Equal(conclusion, formula.MustParse("P -> Q")))
}

func TestIndirectProofGetConclusionRequiresContradiction(t *testing.T) {
	assumption := formula.MustParse("P")
	_, ok := IndirectProof.GetConclusion(assumption, formula.MustParse("Q"))
	require.False(t, ok, "derived formula is not a contradiction")

	conclusion, ok := IndirectProof.GetConclusion(assumption, formula.MustParse("Q & ~Q"))
	require.True(t, ok)
	require.True(t, formula.Equal(conclusion, formula.MustParse("~P")))
}

func TestIndirectProofCollapsesNegatedAssumption(t *testing.T) {
	assumption := formula.MustParse("~P")
	conclusion, ok := IndirectProof.GetConclusion(assumption, formula.MustParse("Q & ~Q"))
	require.True(t, ok)
	require.True(t, formula.Equal(conclusion, formula.MustParse("P")))
}

func TestVerifyConclusion(t *testing.T) {
	assumption := formula.MustParse("P")
	derived := formula.MustParse("Q")
	require.True(t, ConditionalProof.VerifyConclusion(assumption, derived, formula.MustParse("P -> Q")))
	require.False(t, ConditionalProof.VerifyConclusion(assumption, derived, formula.MustParse("Q -> P")))
}

func TestRequiresContradiction(t *testing.T) {
	require.False(t, ConditionalProof.RequiresContradiction())
	require.True(t, IndirectProof.RequiresContradiction())
}
