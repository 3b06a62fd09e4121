package formula

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestEqualStructural(t *testing.T) {
	p := Atom{Name: "P"}
	q := Atom{Name: "Q"}

	require.True(t, Equal(And{Left: p, Right: q}, And{Left: p, Right: q}))
	require.False(t, Equal(And{Left: p, Right: q}, And{Left: q, Right: p}))

	// P⊃Q and ¬P∨Q are semantically equal but structurally distinct.
	implies := Implies{Left: p, Right: q}
	orForm := Or{Left: Not{Inner: p}, Right: q}
	require.False(t, Equal(implies, orForm))
}

func TestCloneIsDeepAndIndependent(t *testing.T) {
	original := And{Left: Atom{Name: "P"}, Right: Not{Inner: Atom{Name: "Q"}}}
	cloned := Clone(original)

	require.True(t, Equal(original, cloned))
	if diff := cmp.Diff(original, cloned); diff != "" {
		t.Fatalf("clone diverged structurally (-want +got):\n%s", diff)
	}
}

func TestAtomsSortedAndDeduplicated(t *testing.T) {
	f := MustParse("(Q & P) | (P > Q)")
	require.Equal(t, []string{"P", "Q"}, Atoms(f))
}

func TestDepth(t *testing.T) {
	require.Equal(t, 0, Depth(Atom{Name: "P"}))
	require.Equal(t, 0, Depth(Contradiction{}))
	require.Equal(t, 1, Depth(Not{Inner: Atom{Name: "P"}}))
	require.Equal(t, 3, Depth(MustParse("~~~P")))
	require.Equal(t, 2, Depth(MustParse("P & (Q | R)")))
}

func TestNodeCount(t *testing.T) {
	require.Equal(t, 1, NodeCount(Atom{Name: "P"}))
	require.Equal(t, 3, NodeCount(MustParse("P & Q")))
	require.Equal(t, 5, NodeCount(MustParse("(P & Q) | R")))
}

func TestSubstituteReplacesEveryOccurrence(t *testing.T) {
	f := MustParse("P & (P | ~P)")
	got := Substitute(f, "P", Atom{Name: "Q"})
	want := MustParse("Q & (Q | ~Q)")
	require.True(t, Equal(got, want))
}
