package proof

import (
	"testing"

	"github.com/dogaozden/prop-bench-go/formula"
	"github.com/stretchr/testify/require"
)

func TestOpenScope(t *testing.T) {
	m := NewScopeManager()
	id := m.OpenScope(1, formula.MustParse("P"), ConditionalProof)
	require.Equal(t, 1, m.CurrentDepth())
	require.NotNil(t, m.CurrentScopeID())
	require.Equal(t, id, *m.CurrentScopeID())
}

func TestCloseScope(t *testing.T) {
	m := NewScopeManager()
	m.OpenScope(1, formula.MustParse("P"), ConditionalProof)
	_, ok := m.CloseScope(3)
	require.True(t, ok)
	require.Equal(t, 0, m.CurrentDepth())
	require.False(t, m.HasOpenScopes())
}

func TestNestedScopes(t *testing.T) {
	m := NewScopeManager()
	outer := m.OpenScope(1, formula.MustParse("P"), ConditionalProof)
	inner := m.OpenScope(2, formula.MustParse("Q"), ConditionalProof)

	require.Equal(t, 2, m.CurrentDepth())
	require.Equal(t, inner, *m.CurrentScopeID())

	m.CloseScope(4)
	require.Equal(t, 1, m.CurrentDepth())
	require.Equal(t, outer, *m.CurrentScopeID())
}

func TestAccessibility(t *testing.T) {
	m := NewScopeManager()
	m.OpenScope(2, formula.MustParse("P"), ConditionalProof)
	m.CloseScope(4)

	require.True(t, m.IsAccessible(5, 1), "line before scope is accessible")
	require.False(t, m.IsAccessible(5, 3), "line inside closed scope is not accessible")
}

func TestPopScopeUndoesOpenAssumption(t *testing.T) {
	m := NewScopeManager()
	m.OpenScope(3, formula.MustParse("P"), IndirectProof)
	_, ok := m.PopScope(3)
	require.True(t, ok)
	require.False(t, m.HasOpenScopes())
	require.Equal(t, 0, m.CurrentDepth())
}

func TestPopScopeFailsOnceClosed(t *testing.T) {
	m := NewScopeManager()
	m.OpenScope(3, formula.MustParse("P"), IndirectProof)
	m.CloseScope(5)
	_, ok := m.PopScope(3)
	require.False(t, ok)
}

func TestIsSubproofAccessibleFromMainLevel(t *testing.T) {
	m := NewScopeManager()
	m.OpenScope(2, formula.MustParse("P"), ConditionalProof)
	m.CloseScope(4)

	require.True(t, m.IsSubproofAccessible(5, 2, 4))
	require.False(t, m.IsSubproofAccessible(3, 2, 4), "not yet past end_line")
}

func TestReset(t *testing.T) {
	m := NewScopeManager()
	m.OpenScope(1, formula.MustParse("P"), ConditionalProof)
	m.Reset()
	require.False(t, m.HasOpenScopes())
	require.Equal(t, 0, m.CurrentDepth())
	require.Empty(t, m.AllScopes())
}
