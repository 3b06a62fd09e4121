// Package generator implements ObfuscateGenerator: the pipeline that turns
// a difficulty.Spec into a theorem of the form ⊢ T, where T is a tautology
// built by obfuscating one of ten simple valid argument templates.
//
// The pipeline runs in six stages, each re-checking that the formula is
// still a tautology before moving on:
//
//	base template  --(atom substitution)-->  compound formula
//	             --(wrap as conditional)-->  A ⊃ conclusion
//	             --(gnarly combos)-->        paired rewrite chains
//	             --(weighted rewrite loop)-->  obfuscated tautology
//	             --(repeat for Spec.Passes)-->
//	             --(¬¬ collapse)-->          final formula
//
// Every rewrite is an EquivalenceRule application at a random subformula
// path; a rewrite that would break the tautology property is rejected and
// the loop tries again, up to a fixed attempt budget.
package generator
