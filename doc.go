// Package probench roots a library for generating and verifying
// propositional-logic proof exercises.
//
// The pipeline: difficulty.Spec (or a named difficulty.Tier) drives
// generator.Obfuscate, which produces a theorem.Theorem — a tautological
// conclusion wrapped in syntactic noise so the reasoning it takes to see
// through it matches the requested difficulty. A learner (or another
// program) then builds a proof.Proof line by line, opening proof.Scope
// subproofs for Conditional/Indirect Proof as needed, and verify.VerifyLine
// checks each line's stated rules.InferenceRule or rules.EquivalenceRule
// justification by structural matching on the formula.Formula AST and the
// proof's subproof scopes.
//
// Everything here is organized the way lvlath (this module's ancestor)
// organizes a graph library: one flat top-level package per concern, each
// with its own doc.go and colocated _test.go files; formula, truthtable,
// semantics, difficulty, generator and verify also keep their error or
// result types in an errors.go.
//
//	formula/    — Formula AST, parser, path-addressed replace, ASCII printer
//	truthtable/ — fixed 32-bit and dynamic bitvector truth-table engines
//	semantics/  — tautology/contradiction/equivalence/entailment oracle
//	rules/      — the nine inference forms and ten equivalence families
//	difficulty/ — DifficultySpec, named tiers, legacy 1-100 bridge
//	generator/  — the obfuscation pipeline that produces theorems
//	theorem/    — the Theorem record and its JSON wire format
//	proof/      — nested subproof scopes and the line-by-line Proof
//	verify/     — re-derives each proof line against its justification
package probench
