package formula

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePrecedence(t *testing.T) {
	// ≡ < ⊃ < ∨ < ∧ < ~ < atomic
	f, err := Parse("P & Q | R > S <-> T")
	require.NoError(t, err)
	want := Biconditional{
		Left: Implies{
			Left:  Or{Left: And{Left: Atom{Name: "P"}, Right: Atom{Name: "Q"}}, Right: Atom{Name: "R"}},
			Right: Atom{Name: "S"},
		},
		Right: Atom{Name: "T"},
	}
	require.True(t, Equal(f, want))
}

func TestParseImplicationRightAssociative(t *testing.T) {
	f, err := Parse("P > Q > R")
	require.NoError(t, err)
	want := Implies{Left: Atom{Name: "P"}, Right: Implies{Left: Atom{Name: "Q"}, Right: Atom{Name: "R"}}}
	require.True(t, Equal(f, want))
}

func TestParseAlternateSymbols(t *testing.T) {
	cases := []string{
		"P -> Q", "P => Q", "P ⊃ Q", "P > Q",
	}
	for _, s := range cases {
		f, err := Parse(s)
		require.NoErrorf(t, err, "input %q", s)
		require.Truef(t, Equal(f, Implies{Left: Atom{Name: "P"}, Right: Atom{Name: "Q"}}), "input %q", s)
	}

	andCases := []string{"P & Q", "P · Q", "P . Q", "P ^ Q", "P * Q"}
	for _, s := range andCases {
		f, err := Parse(s)
		require.NoErrorf(t, err, "input %q", s)
		require.Truef(t, Equal(f, And{Left: Atom{Name: "P"}, Right: Atom{Name: "Q"}}), "input %q", s)
	}

	orCases := []string{"P | Q", "P ∨ Q", "P v Q", "P V Q"}
	for _, s := range orCases {
		f, err := Parse(s)
		require.NoErrorf(t, err, "input %q", s)
		require.Truef(t, Equal(f, Or{Left: Atom{Name: "P"}, Right: Atom{Name: "Q"}}), "input %q", s)
	}

	bicondCases := []string{"P <-> Q", "P <=> Q", "P ≡ Q"}
	for _, s := range bicondCases {
		f, err := Parse(s)
		require.NoErrorf(t, err, "input %q", s)
		require.Truef(t, Equal(f, Biconditional{Left: Atom{Name: "P"}, Right: Atom{Name: "Q"}}), "input %q", s)
	}

	notCases := []string{"~P", "!P", "¬P", "-P"}
	for _, s := range notCases {
		f, err := Parse(s)
		require.NoErrorf(t, err, "input %q", s)
		require.Truef(t, Equal(f, Not{Inner: Atom{Name: "P"}}), "input %q", s)
	}

	contraCases := []string{"_|_", "⊥", "#"}
	for _, s := range contraCases {
		f, err := Parse(s)
		require.NoErrorf(t, err, "input %q", s)
		require.Truef(t, Equal(f, Contradiction{}), "input %q", s)
	}
}

func TestParseBrackets(t *testing.T) {
	f, err := Parse("[P & Q] > {R | S}")
	require.NoError(t, err)
	want := Implies{
		Left:  And{Left: Atom{Name: "P"}, Right: Atom{Name: "Q"}},
		Right: Or{Left: Atom{Name: "R"}, Right: Atom{Name: "S"}},
	}
	require.True(t, Equal(f, want))
}

func TestParseAtomNameCharset(t *testing.T) {
	f, err := Parse("Alpha_1' & Beta")
	require.NoError(t, err)
	want := And{Left: Atom{Name: "Alpha_1'"}, Right: Atom{Name: "Beta"}}
	require.True(t, Equal(f, want))
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("P & ")
	require.Error(t, err)
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	require.ErrorIs(t, err, ErrEmptyAtom)

	_, err = Parse("(P & Q")
	require.ErrorIs(t, err, ErrUnmatchedBracket)

	_, err = Parse("P & Q)")
	require.ErrorIs(t, err, ErrUnmatchedBracket)

	_, err = Parse("P @ Q")
	require.ErrorIs(t, err, ErrUnexpectedChar)

	_, err = Parse("P & Q extra")
	require.ErrorIs(t, err, ErrTrailingInput)
}

func TestParseLengthExceeded(t *testing.T) {
	huge := strings.Repeat("P", MaxInputLength+1)
	_, err := Parse(huge)
	require.ErrorIs(t, err, ErrLengthExceeded)
}

func TestParseDepthExceeded(t *testing.T) {
	huge := strings.Repeat("~", MaxDepth+2) + "P"
	_, err := Parse(huge)
	require.ErrorIs(t, err, ErrDepthExceeded)
}

func TestParseOrAtomAmbiguityPositional(t *testing.T) {
	// "v" between two atoms is the OR connective.
	f, err := Parse("P v Q")
	require.NoError(t, err)
	require.True(t, Equal(f, Or{Left: Atom{Name: "P"}, Right: Atom{Name: "Q"}}))

	// "v" as a standalone operand is an atom named v.
	f, err = Parse("~v")
	require.NoError(t, err)
	require.True(t, Equal(f, Not{Inner: Atom{Name: "v"}}))
}
