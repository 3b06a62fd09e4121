package generator

import "errors"

// Error policy: Obfuscate never returns an error for ordinary exhaustion of
// its rewrite budget — a pass that can't find `transforms_per_pass` legal
// rewrites simply returns fewer (spec §4.6, "Failure semantics"). These
// sentinels cover only the cases where the pipeline cannot proceed at all.
var (
	// ErrEmptyAtomPool is returned when the caller supplies fewer distinct
	// atoms than the chosen template needs.
	ErrEmptyAtomPool = errors.New("generator: atom pool too small for template")
	// ErrNotATautology is returned when the wrapped base argument, or (with
	// the debug assertion on) the final formula, is not a tautology: any
	// violation indicates a bug in the templates or rule tables, not bad luck.
	ErrNotATautology = errors.New("generator: formula is not a tautology")
)
