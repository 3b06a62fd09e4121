// Package rules implements the two propositional rule families used by
// both the generator and the verifier:
//
//	• InferenceRules  — nine argument forms (MP, MT, DS, Simp, Conj, HS,
//	                     Add, CD, NegE), each a pure function from a fixed
//	                     number of premises to every conclusion the rule
//	                     licenses.
//	• EquivalenceRules — ten rewrite-rule families (DN, DeM, Comm, Assoc,
//	                     Dist, Contra, Impl, Exp, Taut, Equiv), each
//	                     enumerating every immediate root-level rewrite of
//	                     a formula, plus ReplaceSubformula, the
//	                     all-occurrences structural replacement primitive
//	                     the verifier uses for equivalence-justified lines.
//
// Both families use full structural (deep) equality, never truth-table
// equality, to decide whether a premise or subformula matches a pattern:
// P⊃Q and ¬P∨Q are different inference inputs even though they agree on
// every row of their truth table (spec §4.4).
package rules
