package proof

import (
	"testing"

	"github.com/dogaozden/prop-bench-go/difficulty"
	"github.com/dogaozden/prop-bench-go/formula"
	"github.com/dogaozden/prop-bench-go/rules"
	"github.com/dogaozden/prop-bench-go/theorem"
	"github.com/stretchr/testify/require"
)

func simpleTheorem() theorem.Theorem {
	return theorem.New(
		[]formula.Formula{formula.MustParse("P -> Q"), formula.MustParse("P")},
		formula.MustParse("Q"),
		difficulty.LegacyEasy,
	)
}

func TestNewProofHasPremises(t *testing.T) {
	p := New(simpleTheorem())
	require.Len(t, p.Lines, 2)
	require.IsType(t, Premise{}, p.Lines[0].Justification)
	require.IsType(t, Premise{}, p.Lines[1].Justification)
}

func TestAddLine(t *testing.T) {
	p := New(simpleTheorem())
	p.AddLine(formula.MustParse("Q"), Inference{Rule: rules.ModusPonens, Lines: []int{1, 2}})
	require.Len(t, p.Lines, 3)
	require.Equal(t, 3, p.Lines[2].LineNumber)
}

func TestSubproof(t *testing.T) {
	p := New(simpleTheorem())

	p.OpenSubproof(formula.MustParse("R"), ConditionalProof)
	require.Equal(t, 1, p.CurrentDepth())
	require.Len(t, p.Lines, 3)

	p.AddLine(formula.MustParse("Q"), Inference{Rule: rules.ModusPonens, Lines: []int{1, 2}})
	require.Equal(t, 1, p.Lines[3].Depth)
}

func TestIPSubproofWithPAndNotP(t *testing.T) {
	// Grounded on the original implementation's test_ip_subproof_with_p_and_not_p:
	// open an IP subproof, derive a syntactic contradiction, close with the
	// negation of the assumption.
	p := New(simpleTheorem())

	assumption := formula.MustParse("~(R v S) & (R v S)")
	p.OpenSubproof(assumption, IndirectProof)
	require.Equal(t, 1, p.CurrentDepth())
	require.True(t, p.ScopeManager.HasOpenScopes())

	p.AddLine(formula.MustParse("R v S"), Inference{Rule: rules.Simplification, Lines: []int{3}})
	p.AddLine(formula.MustParse("~(R v S)"), Inference{Rule: rules.Simplification, Lines: []int{3}})
	p.AddLine(formula.MustParse("~(R v S) & (R v S)"), Inference{Rule: rules.Conjunction, Lines: []int{5, 4}})

	require.True(t, p.ScopeManager.HasOpenScopes())
	_, ok := p.ScopeManager.CurrentScope()
	require.True(t, ok)

	conclusion := formula.MustParse("~[~(R v S) & (R v S)]")
	_, ok = p.CloseSubproof(conclusion, IndirectProof)
	require.True(t, ok)
	require.False(t, p.ScopeManager.HasOpenScopes())
}

func TestRemoveLastLineCannotTouchPremises(t *testing.T) {
	p := New(simpleTheorem())
	_, ok := p.RemoveLastLine()
	require.False(t, ok)
}

func TestRemoveLastLineUndoesAssumptionScope(t *testing.T) {
	p := New(simpleTheorem())
	p.OpenSubproof(formula.MustParse("R"), ConditionalProof)
	require.Equal(t, 1, p.CurrentDepth())

	removed, ok := p.RemoveLastLine()
	require.True(t, ok)
	require.IsType(t, Assumption{}, removed.Justification)
	require.Equal(t, 0, p.CurrentDepth())
	require.False(t, p.ScopeManager.HasOpenScopes())
}

func TestCheckCompleteRequiresConclusionAtDepthZero(t *testing.T) {
	p := New(simpleTheorem())
	require.False(t, p.CheckComplete(), "conclusion not derived yet")

	p.AddLine(formula.MustParse("Q"), Inference{Rule: rules.ModusPonens, Lines: []int{1, 2}})
	require.True(t, p.CheckComplete())
}

func TestCheckCompleteFailsWithOpenScope(t *testing.T) {
	p := New(simpleTheorem())
	p.AddLine(formula.MustParse("Q"), Inference{Rule: rules.ModusPonens, Lines: []int{1, 2}})
	p.OpenSubproof(formula.MustParse("R"), ConditionalProof)
	require.False(t, p.CheckComplete())
}

func TestGetAutoCloseConclusionCP(t *testing.T) {
	p := New(simpleTheorem())
	p.OpenSubproof(formula.MustParse("R"), ConditionalProof)
	p.AddLine(formula.MustParse("Q"), Inference{Rule: rules.ModusPonens, Lines: []int{1, 2}})

	technique, conclusion, ok := p.GetAutoCloseConclusion()
	require.True(t, ok)
	require.Equal(t, ConditionalProof, technique)
	require.True(t, formula.Equal(conclusion, formula.MustParse("R -> Q")))
}

func TestGetAutoCloseConclusionIPFindsContradictionMidScope(t *testing.T) {
	p := New(simpleTheorem())
	assumption := formula.MustParse("~Q")
	p.OpenSubproof(assumption, IndirectProof)
	p.AddLine(formula.MustParse("Q & ~Q"), Inference{Rule: rules.Conjunction, Lines: []int{2, 3}})
	p.AddLine(formula.MustParse("R"), Inference{Rule: rules.Addition, Lines: []int{4}})

	technique, conclusion, ok := p.GetAutoCloseConclusion()
	require.True(t, ok)
	require.Equal(t, IndirectProof, technique)
	require.True(t, formula.Equal(conclusion, formula.MustParse("Q")))
}

func TestGetAutoCloseConclusionIPFalseWithoutContradiction(t *testing.T) {
	p := New(simpleTheorem())
	p.OpenSubproof(formula.MustParse("~Q"), IndirectProof)
	p.AddLine(formula.MustParse("R"), Inference{Rule: rules.Addition, Lines: []int{2}})

	_, _, ok := p.GetAutoCloseConclusion()
	require.False(t, ok)
}

func TestAccessibleLinesExcludesClosedSubproofInterior(t *testing.T) {
	p := New(simpleTheorem())
	p.OpenSubproof(formula.MustParse("R"), ConditionalProof)
	p.AddLine(formula.MustParse("Q"), Inference{Rule: rules.ModusPonens, Lines: []int{1, 2}})
	p.CloseSubproof(formula.MustParse("R -> Q"), ConditionalProof)

	accessible := p.AccessibleLines()
	require.Contains(t, accessible, 1)
	require.Contains(t, accessible, 2)
	require.NotContains(t, accessible, 3, "assumption line is inside the now-closed subproof")
	require.NotContains(t, accessible, 4, "derived line is inside the now-closed subproof")
}

func TestJustificationDisplayStrings(t *testing.T) {
	require.Equal(t, "Premise", Premise{}.DisplayString())
	require.Equal(t, "Assumption (CP)", Assumption{Technique: ConditionalProof}.DisplayString())
	require.Equal(t, "MP 1, 2", Inference{Rule: rules.ModusPonens, Lines: []int{1, 2}}.DisplayString())
	require.Equal(t, "DN 3", Equivalence{Rule: rules.DoubleNegation, Line: 3}.DisplayString())
	require.Equal(t, "CP 3-7", SubproofConclusion{Technique: ConditionalProof, SubproofStart: 3, SubproofEnd: 7}.DisplayString())
}
