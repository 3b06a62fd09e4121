package semantics

import (
	"github.com/dogaozden/prop-bench-go/formula"
	"github.com/dogaozden/prop-bench-go/rules"
	"github.com/dogaozden/prop-bench-go/truthtable"
)

// IsTautology reports whether f's truth table is all-ones.
func IsTautology(f formula.Formula) (bool, error) {
	return truthtable.IsTautologyDynamic(f)
}

// IsContradiction reports whether f's truth table is all-zeros.
func IsContradiction(f formula.Formula) (bool, error) {
	return truthtable.IsContradictionDynamic(f)
}

// AreEquivalent reports whether f and g share a truth table.
func AreEquivalent(f, g formula.Formula) (bool, error) {
	return truthtable.AreEquivalentDynamic(f, g)
}

// Entails reports whether the conjunction of premises entails conclusion.
func Entails(premises []formula.Formula, conclusion formula.Formula) (bool, error) {
	return truthtable.EntailsDynamic(premises, conclusion)
}

// SinglePremiseEntailsCheck reports whether some individual premise, alone,
// entails conclusion.
func SinglePremiseEntailsCheck(premises []formula.Formula, conclusion formula.Formula) (bool, error) {
	for _, p := range premises {
		ok, err := Entails([]formula.Formula{p}, conclusion)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// ConclusionNegationAvailable reports whether some premise is
// truth-table-equivalent to the negation of conclusion.
func ConclusionNegationAvailable(premises []formula.Formula, conclusion formula.Formula) (bool, error) {
	negated := formula.Not{Inner: conclusion}
	for _, p := range premises {
		ok, err := AreEquivalent(p, negated)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// antecedentChain unwraps the outer Implies chain of f, returning every
// left-hand antecedent in outer-to-inner order: for A1 ⊃ (A2 ⊃ (... ⊃ Z)),
// returns [A1, A2, ...].
func antecedentChain(f formula.Formula) []formula.Formula {
	var out []formula.Formula
	for {
		impl, ok := f.(formula.Implies)
		if !ok {
			return out
		}
		out = append(out, impl.Left)
		f = impl.Right
	}
}

// ConditionalTrivialViaExplosionCheck reports whether, unwrapping the outer
// antecedent chain of conclusion, some antecedent's negation is equivalent
// to a premise — the conclusion would then follow from that premise and ex
// falso quodlibet alone, without the rest of the argument doing any work.
func ConditionalTrivialViaExplosionCheck(premises []formula.Formula, conclusion formula.Formula) (bool, error) {
	for _, antecedent := range antecedentChain(conclusion) {
		ok, err := ConclusionNegationAvailable(premises, antecedent)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// HasRedundantPremises reports whether any two premises share a truth table.
func HasRedundantPremises(premises []formula.Formula) (bool, error) {
	for i := 0; i < len(premises); i++ {
		for j := i + 1; j < len(premises); j++ {
			ok, err := AreEquivalent(premises[i], premises[j])
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
	}
	return false, nil
}

// AllPremisesNecessary reports whether removing any single premise breaks
// entailment of conclusion.
func AllPremisesNecessary(premises []formula.Formula, conclusion formula.Formula) (bool, error) {
	for i := range premises {
		rest := make([]formula.Formula, 0, len(premises)-1)
		rest = append(rest, premises[:i]...)
		rest = append(rest, premises[i+1:]...)
		ok, err := Entails(rest, conclusion)
		if err != nil {
			return false, err
		}
		if ok {
			return false, nil
		}
	}
	return true, nil
}

// ForcesCP reports whether conclusion is A⊃B and the premises do not
// already entail B outright — i.e. a Conditional Proof is actually needed.
func ForcesCP(premises []formula.Formula, conclusion formula.Formula) (bool, error) {
	impl, ok := conclusion.(formula.Implies)
	if !ok {
		return false, nil
	}
	entailsB, err := Entails(premises, impl.Right)
	if err != nil {
		return false, err
	}
	return !entailsB, nil
}

// ForcesCaseSplit reports whether some premise is A∨B and neither ¬A nor
// ¬B is available among the other premises — i.e. Constructive Dilemma (or
// a manual case split) is actually needed rather than a direct
// Disjunctive Syllogism.
func ForcesCaseSplit(premises []formula.Formula) (bool, error) {
	for _, p := range premises {
		or, ok := p.(formula.Or)
		if !ok {
			continue
		}
		negALeftAvailable, err := ConclusionNegationAvailable(premises, or.Left)
		if err != nil {
			return false, err
		}
		negARightAvailable, err := ConclusionNegationAvailable(premises, or.Right)
		if err != nil {
			return false, err
		}
		if !negALeftAvailable && !negARightAvailable {
			return true, nil
		}
	}
	return false, nil
}

// ForcesIP reports whether conclusion is atomic or a negation, and is not
// derivable from the premises in one step by Modus Ponens, Modus Tollens,
// Simplification, Disjunctive Syllogism, or a Double Negation rewrite —
// i.e. Indirect Proof is actually needed.
func ForcesIP(premises []formula.Formula, conclusion formula.Formula) bool {
	switch conclusion.(type) {
	case formula.Atom, formula.Not:
	default:
		return false
	}
	return !derivableInOneStep(premises, conclusion)
}

func derivableInOneStep(premises []formula.Formula, conclusion formula.Formula) bool {
	for _, r := range []rules.InferenceRule{rules.ModusPonens, rules.ModusTollens, rules.DisjunctiveSyllogism} {
		if len(premises) < r.PremiseCount() {
			continue
		}
		if oneStepInference(premises, r, conclusion) {
			return true
		}
	}
	for _, p := range premises {
		if rules.Simplification.Verify([]formula.Formula{p}, conclusion, nil) {
			return true
		}
		for _, g := range rules.DoubleNegation.EquivalentForms(p) {
			if formula.Equal(g, conclusion) {
				return true
			}
		}
	}
	return false
}

// oneStepInference tries every pair (for arity-2 rules) of premises.
func oneStepInference(premises []formula.Formula, r rules.InferenceRule, conclusion formula.Formula) bool {
	for i := range premises {
		for j := range premises {
			if i == j {
				continue
			}
			if r.Verify([]formula.Formula{premises[i], premises[j]}, conclusion, nil) {
				return true
			}
		}
	}
	return false
}

// ValidateTheorem runs the nine base degeneracy checks in the order spec
// §4.3/§7 declares, returning the first failure (wrapped as a
// *DegeneracyError) or nil if the theorem is non-degenerate.
func ValidateTheorem(premises []formula.Formula, conclusion formula.Formula) (*DegeneracyError, error) {
	conj, err := conjoin(premises)
	if err != nil {
		return nil, err
	}
	if conj != nil {
		contradictory, err := IsContradiction(conj)
		if err != nil {
			return nil, err
		}
		if contradictory {
			return &DegeneracyError{Kind: ContradictoryPremises}, nil
		}
	}

	for _, p := range premises {
		taut, err := IsTautology(p)
		if err != nil {
			return nil, err
		}
		if taut {
			return &DegeneracyError{Kind: TautologicalPremise}, nil
		}
	}

	taut, err := IsTautology(conclusion)
	if err != nil {
		return nil, err
	}
	if taut {
		return &DegeneracyError{Kind: TautologicalConclusion}, nil
	}

	single, err := SinglePremiseEntailsCheck(premises, conclusion)
	if err != nil {
		return nil, err
	}
	if single {
		return &DegeneracyError{Kind: SinglePremiseEntails}, nil
	}

	negAvail, err := ConclusionNegationAvailable(premises, conclusion)
	if err != nil {
		return nil, err
	}
	if negAvail {
		return &DegeneracyError{Kind: NegationOfConclusionAvailable}, nil
	}

	explosion, err := ConditionalTrivialViaExplosionCheck(premises, conclusion)
	if err != nil {
		return nil, err
	}
	if explosion {
		return &DegeneracyError{Kind: ConditionalTrivialViaExplosion}, nil
	}

	redundant, err := HasRedundantPremises(premises)
	if err != nil {
		return nil, err
	}
	if redundant {
		return &DegeneracyError{Kind: RedundantPremises}, nil
	}

	necessary, err := AllPremisesNecessary(premises, conclusion)
	if err != nil {
		return nil, err
	}
	if !necessary {
		return &DegeneracyError{Kind: UnnecessaryPremise}, nil
	}

	entailed, err := Entails(premises, conclusion)
	if err != nil {
		return nil, err
	}
	if !entailed {
		return &DegeneracyError{Kind: InvalidTheorem}, nil
	}

	return nil, nil
}

func conjoin(fs []formula.Formula) (formula.Formula, error) {
	if len(fs) == 0 {
		return nil, nil
	}
	acc := fs[0]
	for _, f := range fs[1:] {
		acc = formula.And{Left: acc, Right: f}
	}
	return acc, nil
}

// TechniqueRequirement names which proof technique a generated theorem is
// meant to force, for the supplementary forcing checks below.
type TechniqueRequirement int

const (
	RequireCP TechniqueRequirement = iota
	RequireCaseSplit
	RequireIP
)

// ValidateForcesTechnique supplements ValidateTheorem for theorems the
// generator built from a template meant to require a specific proof
// technique (NestedCP → RequireCP, CDFull → RequireCaseSplit, etc.): it
// fails with DoesNotForceCP/DoesNotForceCaseSplit/DoesNotForceIP if the
// theorem turns out to be solvable without that technique, and with
// TooEasy if the theorem's difficulty score is below minDifficulty.
func ValidateForcesTechnique(premises []formula.Formula, conclusion formula.Formula, want TechniqueRequirement, minDifficulty, actualDifficulty int) (*DegeneracyError, error) {
	if actualDifficulty < minDifficulty {
		return &DegeneracyError{Kind: TooEasy, Min: minDifficulty, Actual: actualDifficulty}, nil
	}
	switch want {
	case RequireCP:
		ok, err := ForcesCP(premises, conclusion)
		if err != nil {
			return nil, err
		}
		if !ok {
			return &DegeneracyError{Kind: DoesNotForceCP}, nil
		}
	case RequireCaseSplit:
		ok, err := ForcesCaseSplit(premises)
		if err != nil {
			return nil, err
		}
		if !ok {
			return &DegeneracyError{Kind: DoesNotForceCaseSplit}, nil
		}
	case RequireIP:
		if !ForcesIP(premises, conclusion) {
			return &DegeneracyError{Kind: DoesNotForceIP}, nil
		}
	}
	return nil, nil
}
