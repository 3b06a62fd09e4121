package formula

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubformulasWithPathsDistinguishesIdenticalSubtrees(t *testing.T) {
	f := MustParse("P & P")
	pairs := SubformulasWithPaths(f)

	// root, left P, right P = 3 nodes.
	require.Len(t, pairs, 3)
	require.NotEqual(t, pairs[1].Path, pairs[2].Path)
	require.True(t, Equal(pairs[1].Formula, pairs[2].Formula))
}

func TestReplaceAtPathRoundTrip(t *testing.T) {
	f := MustParse("(P & Q) > R")
	for _, pf := range SubformulasWithPaths(f) {
		got := ReplaceAtPath(f, pf.Path, pf.Formula)
		require.Truef(t, Equal(got, f), "round-trip failed at path %v", pf.Path)
	}
}

func TestReplaceAtPathSingleOccurrence(t *testing.T) {
	f := MustParse("P & P")
	pairs := SubformulasWithPaths(f)
	replaced := ReplaceAtPath(f, pairs[1].Path, Atom{Name: "Q"})
	want := MustParse("Q & P")
	require.True(t, Equal(replaced, want))
}

func TestReplaceAtPathMismatchedShapeIsNoop(t *testing.T) {
	f := Atom{Name: "P"}
	got := ReplaceAtPath(f, Path{Left}, Atom{Name: "Q"})
	require.True(t, Equal(got, f))
}

func TestAt(t *testing.T) {
	f := MustParse("P & Q")
	require.True(t, Equal(At(f, Path{Left}), Atom{Name: "P"}))
	require.True(t, Equal(At(f, Path{Right}), Atom{Name: "Q"}))
	require.Nil(t, At(f, Path{Inner}))
}
