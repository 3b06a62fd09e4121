package truthtable

import (
	"testing"

	"github.com/dogaozden/prop-bench-go/formula"
	"github.com/stretchr/testify/require"
)

func TestIsTautologyDynamicRoutesCorrectly(t *testing.T) {
	ok, err := IsTautologyDynamic(formula.MustParse("P v ~P"))
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = IsTautologyDynamic(formula.MustParse("Alpha v ~Alpha"))
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = IsTautologyDynamic(formula.MustParse("P & Q"))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestAreEquivalentDynamic(t *testing.T) {
	ok, err := AreEquivalentDynamic(formula.MustParse("P > Q"), formula.MustParse("~P v Q"))
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = AreEquivalentDynamic(formula.MustParse("P"), formula.MustParse("~~P"))
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = AreEquivalentDynamic(formula.MustParse("P"), formula.MustParse("Q"))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestEntailsDynamic(t *testing.T) {
	premises := []formula.Formula{formula.MustParse("P > Q"), formula.MustParse("P")}
	ok, err := EntailsDynamic(premises, formula.MustParse("Q"))
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = EntailsDynamic(premises, formula.MustParse("~Q"))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestEntailsDynamicMixedAtomSets(t *testing.T) {
	premises := []formula.Formula{formula.MustParse("Alpha > Beta"), formula.MustParse("Alpha")}
	ok, err := EntailsDynamic(premises, formula.MustParse("Beta"))
	require.NoError(t, err)
	require.True(t, ok)
}
