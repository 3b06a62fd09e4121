package verify

import (
	"fmt"

	"github.com/dogaozden/prop-bench-go/formula"
	"github.com/dogaozden/prop-bench-go/proof"
	"github.com/dogaozden/prop-bench-go/rules"
)

// VerifyLine checks line's justification against p, returning whether it
// holds and, if not, why.
func VerifyLine(line proof.Line, p *proof.Proof) VerificationResult {
	switch j := line.Justification.(type) {
	case proof.Premise:
		return verifyPremise(line, p)
	case proof.Assumption:
		return verifyAssumption(line, j, p)
	case proof.Inference:
		return verifyInference(line, j, p)
	case proof.Equivalence:
		return verifyEquivalence(line, j, p)
	case proof.SubproofConclusion:
		return verifySubproofConclusion(line, j, p)
	default:
		return Invalid("unrecognized justification")
	}
}

func verifyPremise(line proof.Line, p *proof.Proof) VerificationResult {
	for _, premise := range p.Theorem.Premises {
		if formula.Equal(premise, line.Formula) {
			return Valid()
		}
	}
	return Invalid("Formula is not a premise of the theorem")
}

// verifyAssumption always holds: the technique only records the subproof's
// purpose, not a constraint on the assumed formula itself.
func verifyAssumption(proof.Line, proof.Assumption, *proof.Proof) VerificationResult {
	return Valid()
}

func verifyInference(line proof.Line, j proof.Inference, p *proof.Proof) VerificationResult {
	if len(j.Lines) != j.Rule.PremiseCount() {
		return Invalid(fmt.Sprintf(
			"%s requires %d premise(s), but %d were provided",
			j.Rule.Name(), j.Rule.PremiseCount(), len(j.Lines),
		))
	}

	premises := make([]formula.Formula, 0, len(j.Lines))
	for _, refLine := range j.Lines {
		if refLine >= line.LineNumber {
			return Invalid(fmt.Sprintf(
				"Cannot reference line %d from line %d (must reference earlier lines)",
				refLine, line.LineNumber,
			))
		}
		if !p.IsLineAccessible(line.LineNumber, refLine) {
			return Invalid(fmt.Sprintf(
				"Line %d is not accessible from line %d (different scope)",
				refLine, line.LineNumber,
			))
		}
		referenced, ok := p.GetLine(refLine)
		if !ok {
			return Invalid(fmt.Sprintf("Referenced line %d does not exist", refLine))
		}
		if !referenced.IsValid {
			return Invalid(fmt.Sprintf("Referenced line %d is invalid", refLine))
		}
		premises = append(premises, referenced.Formula)
	}

	var additional formula.Formula
	if j.Rule.RequiresFormulaInput() {
		additional = additionalFormulaFor(premises, line.Formula)
	}

	if j.Rule.Verify(premises, line.Formula, additional) {
		return Valid()
	}
	return Invalid(fmt.Sprintf("The formula does not follow from the given premises using %s", j.Rule.Name()))
}

// additionalFormulaFor recovers Addition's introduced disjunct from the
// conclusion: if the conclusion is P v X or X v P for the single premise P,
// the additional formula is X.
func additionalFormulaFor(premises []formula.Formula, conclusion formula.Formula) formula.Formula {
	or, ok := conclusion.(formula.Or)
	if !ok || len(premises) != 1 {
		return nil
	}
	if formula.Equal(premises[0], or.Left) {
		return or.Right
	}
	if formula.Equal(premises[0], or.Right) {
		return or.Left
	}
	return nil
}

func verifyEquivalence(line proof.Line, j proof.Equivalence, p *proof.Proof) VerificationResult {
	if j.Line >= line.LineNumber {
		return Invalid(fmt.Sprintf(
			"Cannot reference line %d from line %d (must reference earlier lines)",
			j.Line, line.LineNumber,
		))
	}
	if !p.IsLineAccessible(line.LineNumber, j.Line) {
		return Invalid(fmt.Sprintf(
			"Line %d is not accessible from line %d (different scope)",
			j.Line, line.LineNumber,
		))
	}
	source, ok := p.GetLine(j.Line)
	if !ok {
		return Invalid(fmt.Sprintf("Referenced line %d does not exist", j.Line))
	}
	if !source.IsValid {
		return Invalid(fmt.Sprintf("Referenced line %d is invalid", j.Line))
	}

	if isValidEquivalenceApplication(source.Formula, line.Formula, j.Rule) {
		return Valid()
	}
	if isValidEquivalenceApplicationCaseInsensitive(source.Formula, line.Formula, j.Rule) {
		return Invalid(fmt.Sprintf(
			"Cannot derive the formula using %s. Note: Propositional logic is case-sensitive (e.g., 'P' vs 'p'). Check your casing.",
			j.Rule.Name(),
		))
	}
	return Invalid(fmt.Sprintf("Cannot derive the formula from line %d using %s", j.Line, j.Rule.Name()))
}

func isValidEquivalenceApplication(source, target formula.Formula, rule rules.EquivalenceRule) bool {
	for _, f := range rule.EquivalentForms(source) {
		if formula.Equal(f, target) {
			return true
		}
	}
	return checkSubformulaEquivalence(source, target, rule)
}

func checkSubformulaEquivalence(source, target formula.Formula, rule rules.EquivalenceRule) bool {
	for _, sub := range rules.Subformulas(source) {
		for _, equivalent := range rule.EquivalentForms(sub) {
			transformed := rules.ReplaceSubformula(source, sub, equivalent)
			if formula.Equal(transformed, target) {
				return true
			}
		}
	}
	return false
}

func isValidEquivalenceApplicationCaseInsensitive(source, target formula.Formula, rule rules.EquivalenceRule) bool {
	lowerSource := toLowercaseFormula(source)
	lowerTarget := toLowercaseFormula(target)

	for _, f := range rule.EquivalentForms(lowerSource) {
		if formula.Equal(toLowercaseFormula(f), lowerTarget) {
			return true
		}
	}
	for _, sub := range rules.Subformulas(lowerSource) {
		for _, equivalent := range rule.EquivalentForms(sub) {
			transformed := rules.ReplaceSubformula(lowerSource, sub, equivalent)
			if formula.Equal(toLowercaseFormula(transformed), lowerTarget) {
				return true
			}
		}
	}
	return false
}

func toLowercaseFormula(f formula.Formula) formula.Formula {
	switch v := f.(type) {
	case formula.Atom:
		return formula.Atom{Name: toLower(v.Name)}
	case formula.Not:
		return formula.Not{Inner: toLowercaseFormula(v.Inner)}
	case formula.And:
		return formula.And{Left: toLowercaseFormula(v.Left), Right: toLowercaseFormula(v.Right)}
	case formula.Or:
		return formula.Or{Left: toLowercaseFormula(v.Left), Right: toLowercaseFormula(v.Right)}
	case formula.Implies:
		return formula.Implies{Left: toLowercaseFormula(v.Left), Right: toLowercaseFormula(v.Right)}
	case formula.Biconditional:
		return formula.Biconditional{Left: toLowercaseFormula(v.Left), Right: toLowercaseFormula(v.Right)}
	default:
		return f
	}
}

func toLower(s string) string {
	out := []rune(s)
	for i, r := range out {
		if r >= 'A' && r <= 'Z' {
			out[i] = r + ('a' - 'A')
		}
	}
	return string(out)
}

func verifySubproofConclusion(line proof.Line, j proof.SubproofConclusion, p *proof.Proof) VerificationResult {
	startLine, ok := p.GetLine(j.SubproofStart)
	if !ok {
		return Invalid(fmt.Sprintf("Subproof start line %d does not exist", j.SubproofStart))
	}
	endLine, ok := p.GetLine(j.SubproofEnd)
	if !ok {
		return Invalid(fmt.Sprintf("Subproof end line %d does not exist", j.SubproofEnd))
	}

	assumption, ok := startLine.Justification.(proof.Assumption)
	if !ok {
		return Invalid(fmt.Sprintf("Line %d is not an assumption", j.SubproofStart))
	}
	if assumption.Technique != j.Technique {
		return Invalid(fmt.Sprintf(
			"Assumption technique (%s) does not match conclusion technique (%s)",
			assumption.Technique.Name(), j.Technique.Name(),
		))
	}

	if !p.ScopeManager.IsSubproofAccessible(line.LineNumber, j.SubproofStart, j.SubproofEnd) {
		return Invalid(fmt.Sprintf(
			"Subproof lines %d-%d are not accessible from line %d",
			j.SubproofStart, j.SubproofEnd, line.LineNumber,
		))
	}

	if j.Technique.VerifyConclusion(startLine.Formula, endLine.Formula, line.Formula) {
		return Valid()
	}
	return Invalid(fmt.Sprintf("The conclusion does not follow from the subproof using %s", j.Technique.Name()))
}

// VerifyProof checks every line of p against its justification, recording
// each outcome onto the line's IsValid/ValidationMessage fields.
func VerifyProof(p *proof.Proof) {
	for i := range p.Lines {
		result := VerifyLine(p.Lines[i], p)
		message := result.Message
		if message == "" {
			p.Lines[i].SetValid(result.IsValid, nil)
		} else {
			p.Lines[i].SetValid(result.IsValid, &message)
		}
	}
}
