package truthtable

import "github.com/dogaozden/prop-bench-go/formula"

// IsTautologyDynamic is the engine-selection façade named in spec §4.2: it
// routes to the 32-bit fast path when f's atoms are a subset of
// {P,Q,R,S,T}, and to the dynamic bitvector engine otherwise, so that a
// generator configured for more than five variables is still checked
// correctly. Every semantic check in package semantics goes through this
// façade (or its sibling functions below) rather than calling Evaluate32
// directly.
func IsTautologyDynamic(f formula.Formula) (bool, error) {
	if isFiveVarCompatible(f) {
		return IsTautology32(f), nil
	}
	t, err := EvaluateDyn(f)
	if err != nil {
		return false, err
	}
	return t.IsTautology(), nil
}

// IsContradictionDynamic is IsTautologyDynamic's contradiction-checking twin.
func IsContradictionDynamic(f formula.Formula) (bool, error) {
	if isFiveVarCompatible(f) {
		return IsContradiction32(f), nil
	}
	t, err := EvaluateDyn(f)
	if err != nil {
		return false, err
	}
	return t.IsContradiction(), nil
}

// AreEquivalentDynamic reports whether f and g share a truth table over
// the union of their atoms, routing through the façade above.
func AreEquivalentDynamic(f, g formula.Formula) (bool, error) {
	if isFiveVarCompatible(f) && isFiveVarCompatible(g) {
		return Evaluate32(f) == Evaluate32(g), nil
	}
	tables, err := EvaluateAllDyn(f, g)
	if err != nil {
		return false, err
	}
	return tables[0].Equal(tables[1]), nil
}

// EntailsDynamic reports whether the conjunction of premises' truth tables
// entails conclusion: AND of all premise tables, AND'd with the complement
// of conclusion's table, is zero (spec §4.3).
func EntailsDynamic(premises []formula.Formula, conclusion formula.Formula) (bool, error) {
	all := append(append([]formula.Formula{}, premises...), conclusion)
	compatible := true
	for _, f := range all {
		if !isFiveVarCompatible(f) {
			compatible = false
			break
		}
	}
	if compatible {
		acc := Tautology32
		for _, p := range premises {
			acc &= Evaluate32(p)
		}
		concl := Evaluate32(conclusion)
		return acc & ^concl == Contradiction32, nil
	}

	tables, err := EvaluateAllDyn(all...)
	if err != nil {
		return false, err
	}
	numVars := int(tables[0].NumVars)
	acc := TautologyDyn(numVars)
	for _, t := range tables[:len(tables)-1] {
		acc = acc.and(t)
	}
	conclTable := tables[len(tables)-1]
	residual := acc.and(conclTable.not())
	return residual.IsContradiction(), nil
}
