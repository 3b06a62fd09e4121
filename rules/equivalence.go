package rules

import "github.com/dogaozden/prop-bench-go/formula"

// EquivalenceRule identifies one of the ten truth-preserving rewrite
// families.
type EquivalenceRule int

const (
	DoubleNegation EquivalenceRule = iota
	DeMorgan
	Commutation
	Association
	Distribution
	Contraposition
	Implication
	Exportation
	Tautology
	Equivalence
)

// AllEquivalenceRules lists every EquivalenceRule in declaration order.
var AllEquivalenceRules = []EquivalenceRule{
	DoubleNegation, DeMorgan, Commutation, Association, Distribution,
	Contraposition, Implication, Exportation, Tautology, Equivalence,
}

// Name returns the rule's full display name.
func (r EquivalenceRule) Name() string {
	switch r {
	case DoubleNegation:
		return "Double Negation"
	case DeMorgan:
		return "DeMorgan's Theorem"
	case Commutation:
		return "Commutation"
	case Association:
		return "Association"
	case Distribution:
		return "Distribution"
	case Contraposition:
		return "Contraposition"
	case Implication:
		return "Implication"
	case Exportation:
		return "Exportation"
	case Tautology:
		return "Tautology"
	case Equivalence:
		return "Equivalence"
	default:
		return "Unknown"
	}
}

// Abbreviation returns the short form used in proof-line justifications
// (e.g. "DN 3").
func (r EquivalenceRule) Abbreviation() string {
	switch r {
	case DoubleNegation:
		return "DN"
	case DeMorgan:
		return "DeM"
	case Commutation:
		return "Comm"
	case Association:
		return "Assoc"
	case Distribution:
		return "Dist"
	case Contraposition:
		return "Contra"
	case Implication:
		return "Impl"
	case Exportation:
		return "Exp"
	case Tautology:
		return "Taut"
	case Equivalence:
		return "Equiv"
	default:
		return "?"
	}
}

// EquivalentForms enumerates every immediate rewrite of f this rule
// licenses at the root, in both directions where the rule is symmetric.
// Every returned formula is truth-table equivalent to f (spec §4.5
// invariant) — this is exercised as a property test.
func (r EquivalenceRule) EquivalentForms(f formula.Formula) []formula.Formula {
	var out []formula.Formula

	switch r {
	case DeMorgan:
		if not, ok := f.(formula.Not); ok {
			if and, ok := not.Inner.(formula.And); ok {
				out = append(out, formula.Or{Left: formula.Not{Inner: and.Left}, Right: formula.Not{Inner: and.Right}})
			}
			if or, ok := not.Inner.(formula.Or); ok {
				out = append(out, formula.And{Left: formula.Not{Inner: or.Left}, Right: formula.Not{Inner: or.Right}})
			}
		}
		if or, ok := f.(formula.Or); ok {
			if l, ok := or.Left.(formula.Not); ok {
				if rr, ok := or.Right.(formula.Not); ok {
					out = append(out, formula.Not{Inner: formula.And{Left: l.Inner, Right: rr.Inner}})
				}
			}
		}
		if and, ok := f.(formula.And); ok {
			if l, ok := and.Left.(formula.Not); ok {
				if rr, ok := and.Right.(formula.Not); ok {
					out = append(out, formula.Not{Inner: formula.Or{Left: l.Inner, Right: rr.Inner}})
				}
			}
		}

	case Commutation:
		switch v := f.(type) {
		case formula.And:
			out = append(out, formula.And{Left: v.Right, Right: v.Left})
		case formula.Or:
			out = append(out, formula.Or{Left: v.Right, Right: v.Left})
		}

	case Association:
		switch v := f.(type) {
		case formula.And:
			if inner, ok := v.Left.(formula.And); ok {
				out = append(out, formula.And{Left: inner.Left, Right: formula.And{Left: inner.Right, Right: v.Right}})
			}
			if inner, ok := v.Right.(formula.And); ok {
				out = append(out, formula.And{Left: formula.And{Left: v.Left, Right: inner.Left}, Right: inner.Right})
			}
		case formula.Or:
			if inner, ok := v.Left.(formula.Or); ok {
				out = append(out, formula.Or{Left: inner.Left, Right: formula.Or{Left: inner.Right, Right: v.Right}})
			}
			if inner, ok := v.Right.(formula.Or); ok {
				out = append(out, formula.Or{Left: formula.Or{Left: v.Left, Right: inner.Left}, Right: inner.Right})
			}
		}

	case Distribution:
		if and, ok := f.(formula.And); ok {
			if or, ok := and.Right.(formula.Or); ok {
				out = append(out, formula.Or{
					Left:  formula.And{Left: and.Left, Right: or.Left},
					Right: formula.And{Left: and.Left, Right: or.Right},
				})
			}
		}
		if or, ok := f.(formula.Or); ok {
			if l, ok := or.Left.(formula.And); ok {
				if r, ok := or.Right.(formula.And); ok && formula.Equal(l.Left, r.Left) {
					out = append(out, formula.And{Left: l.Left, Right: formula.Or{Left: l.Right, Right: r.Right}})
				}
			}
		}
		if or, ok := f.(formula.Or); ok {
			if and, ok := or.Right.(formula.And); ok {
				out = append(out, formula.And{
					Left:  formula.Or{Left: or.Left, Right: and.Left},
					Right: formula.Or{Left: or.Left, Right: and.Right},
				})
			}
		}
		if and, ok := f.(formula.And); ok {
			if l, ok := and.Left.(formula.Or); ok {
				if r, ok := and.Right.(formula.Or); ok && formula.Equal(l.Left, r.Left) {
					out = append(out, formula.Or{Left: l.Left, Right: formula.And{Left: l.Right, Right: r.Right}})
				}
			}
		}

	case Contraposition:
		if impl, ok := f.(formula.Implies); ok {
			out = append(out, formula.Implies{Left: formula.Not{Inner: impl.Right}, Right: formula.Not{Inner: impl.Left}})
		}
		if impl, ok := f.(formula.Implies); ok {
			if notQ, ok := impl.Left.(formula.Not); ok {
				if notP, ok := impl.Right.(formula.Not); ok {
					out = append(out, formula.Implies{Left: notP.Inner, Right: notQ.Inner})
				}
			}
		}

	case Implication:
		if impl, ok := f.(formula.Implies); ok {
			out = append(out, formula.Or{Left: formula.Not{Inner: impl.Left}, Right: impl.Right})
		}
		if or, ok := f.(formula.Or); ok {
			if not, ok := or.Left.(formula.Not); ok {
				out = append(out, formula.Implies{Left: not.Inner, Right: or.Right})
			}
		}

	case Equivalence:
		if bicond, ok := f.(formula.Biconditional); ok {
			out = append(out, formula.And{
				Left:  formula.Implies{Left: bicond.Left, Right: bicond.Right},
				Right: formula.Implies{Left: bicond.Right, Right: bicond.Left},
			})
		}
		if and, ok := f.(formula.And); ok {
			if i1, ok := and.Left.(formula.Implies); ok {
				if i2, ok := and.Right.(formula.Implies); ok {
					if formula.Equal(i1.Left, i2.Right) && formula.Equal(i1.Right, i2.Left) {
						out = append(out, formula.Biconditional{Left: i1.Left, Right: i1.Right})
					}
				}
			}
		}

	case Exportation:
		if impl, ok := f.(formula.Implies); ok {
			if and, ok := impl.Left.(formula.And); ok {
				out = append(out, formula.Implies{Left: and.Left, Right: formula.Implies{Left: and.Right, Right: impl.Right}})
			}
		}
		if impl, ok := f.(formula.Implies); ok {
			if inner, ok := impl.Right.(formula.Implies); ok {
				out = append(out, formula.Implies{Left: formula.And{Left: impl.Left, Right: inner.Left}, Right: inner.Right})
			}
		}

	case Tautology:
		// Expansion (both directions always offered).
		out = append(out, formula.And{Left: f, Right: f}, formula.Or{Left: f, Right: f})
		// Contraction.
		if and, ok := f.(formula.And); ok && formula.Equal(and.Left, and.Right) {
			out = append(out, and.Left)
		}
		if or, ok := f.(formula.Or); ok && formula.Equal(or.Left, or.Right) {
			out = append(out, or.Left)
		}

	case DoubleNegation:
		out = append(out, formula.Not{Inner: formula.Not{Inner: f}})
		if not, ok := f.(formula.Not); ok {
			if inner, ok := not.Inner.(formula.Not); ok {
				out = append(out, inner.Inner)
			}
		}
	}

	return out
}

// ReplaceSubformula returns a copy of f in which every structural
// occurrence of target has been replaced by replacement. Unlike
// formula.ReplaceAtPath (single occurrence, by position), this is the
// all-occurrences primitive the verifier uses when checking whether a
// target formula can be reached by applying an equivalence rule to some
// subformula of the source (spec §9).
func ReplaceSubformula(f, target, replacement formula.Formula) formula.Formula {
	if formula.Equal(f, target) {
		return replacement
	}
	switch v := f.(type) {
	case formula.Not:
		return formula.Not{Inner: ReplaceSubformula(v.Inner, target, replacement)}
	case formula.And:
		return formula.And{Left: ReplaceSubformula(v.Left, target, replacement), Right: ReplaceSubformula(v.Right, target, replacement)}
	case formula.Or:
		return formula.Or{Left: ReplaceSubformula(v.Left, target, replacement), Right: ReplaceSubformula(v.Right, target, replacement)}
	case formula.Implies:
		return formula.Implies{Left: ReplaceSubformula(v.Left, target, replacement), Right: ReplaceSubformula(v.Right, target, replacement)}
	case formula.Biconditional:
		return formula.Biconditional{Left: ReplaceSubformula(v.Left, target, replacement), Right: ReplaceSubformula(v.Right, target, replacement)}
	default:
		return f
	}
}

// Subformulas returns every subformula occurrence of f (including f itself,
// repeated subformulas included once per occurrence), without positional
// information — used by the verifier's equivalence check, which only needs
// the structural candidates, not their paths.
func Subformulas(f formula.Formula) []formula.Formula {
	var out []formula.Formula
	var walk func(formula.Formula)
	walk = func(n formula.Formula) {
		out = append(out, n)
		switch v := n.(type) {
		case formula.Not:
			walk(v.Inner)
		case formula.And:
			walk(v.Left)
			walk(v.Right)
		case formula.Or:
			walk(v.Left)
			walk(v.Right)
		case formula.Implies:
			walk(v.Left)
			walk(v.Right)
		case formula.Biconditional:
			walk(v.Left)
			walk(v.Right)
		}
	}
	walk(f)
	return out
}
