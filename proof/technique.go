package proof

import "github.com/dogaozden/prop-bench-go/formula"

// Technique identifies one of the two subproof strategies: Conditional
// Proof (assume P, derive Q, conclude P -> Q) and Indirect Proof (assume P,
// derive a contradiction, conclude ~P).
type Technique int

const (
	ConditionalProof Technique = iota
	IndirectProof
)

// Name returns the technique's full display name.
func (t Technique) Name() string {
	switch t {
	case ConditionalProof:
		return "Conditional Proof"
	case IndirectProof:
		return "Indirect Proof"
	default:
		return "Unknown"
	}
}

// Abbreviation returns the short form used in proof-line justifications
// (e.g. "CP 3-7").
func (t Technique) Abbreviation() string {
	switch t {
	case ConditionalProof:
		return "CP"
	case IndirectProof:
		return "IP"
	default:
		return "?"
	}
}

// RequiresContradiction reports whether closing a subproof under t requires
// the last derived line to be a syntactic contradiction. Only IP does; CP
// closes on whatever the subproof last derived.
func (t Technique) RequiresContradiction() bool {
	return t == IndirectProof
}

// IsContradiction reports whether f is syntactically ⊥, or P & ~P / ~P & P
// for some P. This is a structural check, not a semantic one: the two
// conjuncts must be syntactically negations of each other, not merely
// jointly unsatisfiable.
func IsContradiction(f formula.Formula) bool {
	if _, ok := f.(formula.Contradiction); ok {
		return true
	}
	and, ok := f.(formula.And)
	if !ok {
		return false
	}
	if not, ok := and.Left.(formula.Not); ok && formula.Equal(not.Inner, and.Right) {
		return true
	}
	if not, ok := and.Right.(formula.Not); ok && formula.Equal(not.Inner, and.Left) {
		return true
	}
	return false
}

// GetConclusion returns the formula a subproof started under assumption and
// ending with derived would discharge to, or false if the technique's
// precondition isn't met (IP requires derived to be a contradiction).
//
// CP always succeeds: assumption -> derived.
// IP requires is_contradiction(derived); the conclusion negates assumption,
// collapsing a leading negation rather than double-negating it.
func (t Technique) GetConclusion(assumption, derived formula.Formula) (formula.Formula, bool) {
	switch t {
	case ConditionalProof:
		return formula.Implies{Left: assumption, Right: derived}, true
	case IndirectProof:
		if !IsContradiction(derived) {
			return nil, false
		}
		if not, ok := assumption.(formula.Not); ok {
			return not.Inner, true
		}
		return formula.Not{Inner: assumption}, true
	default:
		return nil, false
	}
}

// VerifyConclusion reports whether conclusion matches what GetConclusion
// would produce for this technique, assumption and derived.
func (t Technique) VerifyConclusion(assumption, derived, conclusion formula.Formula) bool {
	expected, ok := t.GetConclusion(assumption, derived)
	if !ok {
		return false
	}
	return formula.Equal(expected, conclusion)
}
