// Package difficulty describes how hard a generated theorem should be to
// prove: the ten named tiers from Baby through Mind, the DifficultySpec
// knobs a tier expands to (variable count, pass count, rewrite budget per
// pass, substitution depth, bridge-atom count, gnarly-combo flag), and the
// legacy 1-100 bridge that maps a single scalar onto an equivalent spec for
// callers that predate the tier system.
package difficulty
