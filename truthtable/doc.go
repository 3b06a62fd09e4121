// Package truthtable implements the two-tier semantic evaluator used as
// ground truth for every tautology, contradiction, equivalence, and
// entailment check in this module.
//
// 🧮 Two tiers, one contract
//
//	• Table32    — fixed 32-bit masks for the classical 5-variable case
//	               {P,Q,R,S,T}; a micro-optimised fast path.
//	• TableDyn   — a dense 2^n-bit bitvector for arbitrary atom sets,
//	               n ≤ 20, variables ordered by sorted atom name.
//
// Both tiers are pure functional folds over a formula.Formula: there is no
// shared mutable state, and a given formula always evaluates to the same
// table value. facade.go provides IsTautologyDynamic, the single entry
// point package semantics and generator.Obfuscate use, so that formulas with
// more than five atoms are still checked correctly instead of silently
// misrouted to the fast path.
//
// Resource bound: TableDyn rejects more than 20 variables (2^20 bits ≈
// 128 KiB), per spec §5.
package truthtable
