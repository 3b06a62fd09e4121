// Package semantics implements SemanticOracle: the truth-table-driven
// predicates (tautology, contradiction, equivalence, entailment, the
// "forcing" checks that steer proof-technique selection) and the
// degeneracy-validation pipeline that rejects trivial or malformed
// theorems before they are ever handed to a solver.
//
// The tautology, contradiction, equivalence and entailment predicates are
// defined purely in terms of truthtable equality over the union of atoms of
// their participating formulas. The forcing checks (ForcesCP,
// ForcesCaseSplit, ForcesIP) and the explosion check additionally inspect
// the outer shape of the premises and conclusion.
package semantics
