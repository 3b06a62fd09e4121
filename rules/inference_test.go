package rules

import (
	"testing"

	"github.com/dogaozden/prop-bench-go/formula"
	"github.com/stretchr/testify/require"
)

func TestModusPonensOrderIndependent(t *testing.T) {
	pImpliesQ := formula.MustParse("P -> Q")
	p := formula.MustParse("P")
	q := formula.MustParse("Q")

	require.True(t, ModusPonens.Verify([]formula.Formula{pImpliesQ, p}, q, nil))
	require.True(t, ModusPonens.Verify([]formula.Formula{p, pImpliesQ}, q, nil))
}

func TestModusTollens(t *testing.T) {
	pImpliesQ := formula.MustParse("P -> Q")
	notQ := formula.MustParse("~Q")
	notP := formula.MustParse("~P")
	require.True(t, ModusTollens.Verify([]formula.Formula{pImpliesQ, notQ}, notP, nil))
}

func TestDisjunctiveSyllogismBothSides(t *testing.T) {
	pOrQ := formula.MustParse("P | Q")
	require.True(t, DisjunctiveSyllogism.Verify([]formula.Formula{pOrQ, formula.MustParse("~P")}, formula.MustParse("Q"), nil))
	require.True(t, DisjunctiveSyllogism.Verify([]formula.Formula{pOrQ, formula.MustParse("~Q")}, formula.MustParse("P"), nil))
}

func TestSimplificationYieldsBothConjuncts(t *testing.T) {
	pAndQ := formula.MustParse("P & Q")
	conclusions := Simplification.AllConclusions([]formula.Formula{pAndQ}, nil)
	require.Len(t, conclusions, 2)
	require.True(t, Simplification.Verify([]formula.Formula{pAndQ}, formula.MustParse("P"), nil))
	require.True(t, Simplification.Verify([]formula.Formula{pAndQ}, formula.MustParse("Q"), nil))
}

func TestConjunctionPreservesOrder(t *testing.T) {
	p, q := formula.MustParse("P"), formula.MustParse("Q")
	want := formula.MustParse("P & Q")
	require.True(t, Conjunction.Verify([]formula.Formula{p, q}, want, nil))
	require.False(t, Conjunction.Verify([]formula.Formula{p, q}, formula.MustParse("Q & P"), nil))
}

func TestHypotheticalSyllogism(t *testing.T) {
	pq := formula.MustParse("P -> Q")
	qr := formula.MustParse("Q -> R")
	pr := formula.MustParse("P -> R")
	require.True(t, HypotheticalSyllogism.Verify([]formula.Formula{pq, qr}, pr, nil))
}

func TestAdditionBothPlacements(t *testing.T) {
	p := formula.MustParse("P")
	q := formula.MustParse("Q")
	require.True(t, Addition.Verify([]formula.Formula{p}, formula.MustParse("P | Q"), q))
	require.True(t, Addition.Verify([]formula.Formula{p}, formula.MustParse("Q | P"), q))
}

func TestConstructiveDilemmaAnyPermutation(t *testing.T) {
	pOrQ := formula.MustParse("P | Q")
	pImpliesR := formula.MustParse("P -> R")
	qImpliesS := formula.MustParse("Q -> S")
	want := formula.MustParse("R | S")

	require.True(t, ConstructiveDilemma.Verify([]formula.Formula{pOrQ, pImpliesR, qImpliesS}, want, nil))
	require.True(t, ConstructiveDilemma.Verify([]formula.Formula{qImpliesS, pOrQ, pImpliesR}, want, nil))
}

func TestNegationElimination(t *testing.T) {
	p := formula.MustParse("P")
	notP := formula.MustParse("~P")
	require.True(t, NegationElimination.Verify([]formula.Formula{p, notP}, formula.Contradiction{}, nil))
	require.True(t, NegationElimination.Verify([]formula.Formula{notP, p}, formula.Contradiction{}, nil))
}

func TestStructuralNotSemanticMatching(t *testing.T) {
	// P⊃Q and ¬P∨Q are truth-table equivalent but structurally distinct:
	// MP must not fire against the Or-shaped premise.
	orForm := formula.MustParse("~P | Q")
	p := formula.MustParse("P")
	require.False(t, ModusPonens.Verify([]formula.Formula{orForm, p}, formula.MustParse("Q"), nil))
}

func TestVerifyIffInAllConclusions(t *testing.T) {
	// Universal invariant #6 (spec §8).
	premises := []formula.Formula{formula.MustParse("P -> Q"), formula.MustParse("P")}
	for _, r := range AllInferenceRules {
		if r.PremiseCount() != len(premises) {
			continue
		}
		all := r.AllConclusions(premises, nil)
		for _, c := range all {
			require.True(t, r.Verify(premises, c, nil))
		}
	}
}
