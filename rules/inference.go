package rules

import "github.com/dogaozden/prop-bench-go/formula"

// InferenceRule identifies one of the nine classical argument forms.
type InferenceRule int

const (
	ModusPonens InferenceRule = iota
	ModusTollens
	DisjunctiveSyllogism
	Simplification
	Conjunction
	HypotheticalSyllogism
	Addition
	ConstructiveDilemma
	NegationElimination
)

// AllInferenceRules lists every InferenceRule in declaration order.
var AllInferenceRules = []InferenceRule{
	ModusPonens, ModusTollens, DisjunctiveSyllogism, Simplification,
	Conjunction, HypotheticalSyllogism, Addition, ConstructiveDilemma,
	NegationElimination,
}

// Name returns the rule's full display name.
func (r InferenceRule) Name() string {
	switch r {
	case ModusPonens:
		return "Modus Ponens"
	case ModusTollens:
		return "Modus Tollens"
	case DisjunctiveSyllogism:
		return "Disjunctive Syllogism"
	case Simplification:
		return "Simplification"
	case Conjunction:
		return "Conjunction"
	case HypotheticalSyllogism:
		return "Hypothetical Syllogism"
	case Addition:
		return "Addition"
	case ConstructiveDilemma:
		return "Constructive Dilemma"
	case NegationElimination:
		return "Contradiction Introduction"
	default:
		return "Unknown"
	}
}

// Abbreviation returns the short form used in proof-line justifications
// (e.g. "MP 1,2").
func (r InferenceRule) Abbreviation() string {
	switch r {
	case ModusPonens:
		return "MP"
	case ModusTollens:
		return "MT"
	case DisjunctiveSyllogism:
		return "DS"
	case Simplification:
		return "Simp"
	case Conjunction:
		return "Conj"
	case HypotheticalSyllogism:
		return "HS"
	case Addition:
		return "Add"
	case ConstructiveDilemma:
		return "CD"
	case NegationElimination:
		return "NegE"
	default:
		return "?"
	}
}

// PremiseCount returns the number of premises the rule consumes.
func (r InferenceRule) PremiseCount() int {
	switch r {
	case ModusPonens, ModusTollens, DisjunctiveSyllogism, Conjunction, HypotheticalSyllogism, NegationElimination:
		return 2
	case Simplification, Addition:
		return 1
	case ConstructiveDilemma:
		return 3
	default:
		return 0
	}
}

// RequiresFormulaInput reports whether the rule needs an "additional"
// formula beyond its premises. Only Addition does: the disjunct it
// introduces cannot be derived from the premise alone.
func (r InferenceRule) RequiresFormulaInput() bool {
	return r == Addition
}

// AllConclusions returns every formula this rule licenses from premises
// (and, for Addition, additional), trying every permutation of premise
// roles. Matching is structural, not semantic.
func (r InferenceRule) AllConclusions(premises []formula.Formula, additional formula.Formula) []formula.Formula {
	var out []formula.Formula

	switch r {
	case ModusPonens:
		if len(premises) != 2 {
			return out
		}
		for _, pair := range [][2]int{{0, 1}, {1, 0}} {
			i, j := pair[0], pair[1]
			if impl, ok := premises[i].(formula.Implies); ok {
				if formula.Equal(impl.Left, premises[j]) {
					out = append(out, impl.Right)
				}
			}
		}

	case ModusTollens:
		if len(premises) != 2 {
			return out
		}
		for _, pair := range [][2]int{{0, 1}, {1, 0}} {
			i, j := pair[0], pair[1]
			impl, ok := premises[i].(formula.Implies)
			if !ok {
				continue
			}
			notP, ok := premises[j].(formula.Not)
			if !ok {
				continue
			}
			if formula.Equal(impl.Right, notP.Inner) {
				out = append(out, formula.Not{Inner: impl.Left})
			}
		}

	case DisjunctiveSyllogism:
		if len(premises) != 2 {
			return out
		}
		for _, pair := range [][2]int{{0, 1}, {1, 0}} {
			i, j := pair[0], pair[1]
			or, ok := premises[i].(formula.Or)
			if !ok {
				continue
			}
			not, ok := premises[j].(formula.Not)
			if !ok {
				continue
			}
			if formula.Equal(not.Inner, or.Left) {
				out = append(out, or.Right)
			}
			if formula.Equal(not.Inner, or.Right) {
				out = append(out, or.Left)
			}
		}

	case Simplification:
		if len(premises) != 1 {
			return out
		}
		if and, ok := premises[0].(formula.And); ok {
			out = append(out, and.Left, and.Right)
		}

	case Conjunction:
		if len(premises) != 2 {
			return out
		}
		out = append(out, formula.And{Left: premises[0], Right: premises[1]})

	case HypotheticalSyllogism:
		if len(premises) != 2 {
			return out
		}
		for _, pair := range [][2]int{{0, 1}, {1, 0}} {
			i, j := pair[0], pair[1]
			first, ok := premises[i].(formula.Implies)
			if !ok {
				continue
			}
			second, ok := premises[j].(formula.Implies)
			if !ok {
				continue
			}
			if formula.Equal(first.Right, second.Left) {
				out = append(out, formula.Implies{Left: first.Left, Right: second.Right})
			}
		}

	case Addition:
		if len(premises) != 1 || additional == nil {
			return out
		}
		out = append(out,
			formula.Or{Left: premises[0], Right: additional},
			formula.Or{Left: additional, Right: premises[0]},
		)

	case ConstructiveDilemma:
		if len(premises) != 3 {
			return out
		}
		for _, perm := range [][3]int{
			{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
		} {
			or, ok := premises[perm[0]].(formula.Or)
			if !ok {
				continue
			}
			impl1, ok := premises[perm[1]].(formula.Implies)
			if !ok {
				continue
			}
			impl2, ok := premises[perm[2]].(formula.Implies)
			if !ok {
				continue
			}
			if formula.Equal(or.Left, impl1.Left) && formula.Equal(or.Right, impl2.Left) {
				out = append(out, formula.Or{Left: impl1.Right, Right: impl2.Right})
			}
		}

	case NegationElimination:
		if len(premises) != 2 {
			return out
		}
		for _, pair := range [][2]int{{0, 1}, {1, 0}} {
			i, j := pair[0], pair[1]
			not, ok := premises[i].(formula.Not)
			if !ok {
				continue
			}
			if formula.Equal(not.Inner, premises[j]) {
				out = append(out, formula.Contradiction{})
			}
		}
	}

	return out
}

// Verify reports whether conclusion is among AllConclusions(premises, additional).
func (r InferenceRule) Verify(premises []formula.Formula, conclusion formula.Formula, additional formula.Formula) bool {
	for _, c := range r.AllConclusions(premises, additional) {
		if formula.Equal(c, conclusion) {
			return true
		}
	}
	return false
}
