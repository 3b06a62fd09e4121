package proof

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dogaozden/prop-bench-go/formula"
	"github.com/dogaozden/prop-bench-go/rules"
	"github.com/dogaozden/prop-bench-go/theorem"
	"github.com/google/uuid"
)

// Justification is why a proof line is allowed to appear: a premise, an
// assumption opening a subproof, an inference rule applied to earlier
// lines, an equivalence rewrite of a single earlier line, or the
// conclusion discharging a subproof. Every concrete type in this file
// implements it.
type Justification interface {
	isJustification()
	// DisplayString renders the justification the way a human-readable
	// proof line cites it, e.g. "MP 1, 2" or "CP 3-7".
	DisplayString() string
	// ReferencedLines lists the earlier line numbers this justification
	// cites, in citation order.
	ReferencedLines() []int
}

// Premise marks a line as one of the theorem's given premises.
type Premise struct{}

// Assumption marks a line as the opening hypothesis of a subproof under
// Technique.
type Assumption struct {
	Technique Technique
}

// Inference marks a line as derived from Lines by applying Rule.
type Inference struct {
	Rule  rules.InferenceRule
	Lines []int
}

// Equivalence marks a line as a rewrite of Line by applying Rule.
type Equivalence struct {
	Rule rules.EquivalenceRule
	Line int
}

// SubproofConclusion marks a line as discharging the subproof spanning
// [SubproofStart, SubproofEnd] under Technique.
type SubproofConclusion struct {
	Technique      Technique
	SubproofStart  int
	SubproofEnd    int
}

func (Premise) isJustification()            {}
func (Assumption) isJustification()         {}
func (Inference) isJustification()          {}
func (Equivalence) isJustification()        {}
func (SubproofConclusion) isJustification() {}

func (Premise) DisplayString() string { return "Premise" }
func (Premise) ReferencedLines() []int { return nil }

func (a Assumption) DisplayString() string {
	return fmt.Sprintf("Assumption (%s)", a.Technique.Abbreviation())
}
func (Assumption) ReferencedLines() []int { return nil }

func (i Inference) DisplayString() string {
	parts := make([]string, len(i.Lines))
	for n, l := range i.Lines {
		parts[n] = strconv.Itoa(l)
	}
	return fmt.Sprintf("%s %s", i.Rule.Abbreviation(), strings.Join(parts, ", "))
}
func (i Inference) ReferencedLines() []int { return i.Lines }

func (e Equivalence) DisplayString() string {
	return fmt.Sprintf("%s %d", e.Rule.Abbreviation(), e.Line)
}
func (e Equivalence) ReferencedLines() []int { return []int{e.Line} }

func (s SubproofConclusion) DisplayString() string {
	return fmt.Sprintf("%s %d-%d", s.Technique.Abbreviation(), s.SubproofStart, s.SubproofEnd)
}
func (s SubproofConclusion) ReferencedLines() []int {
	return []int{s.SubproofStart, s.SubproofEnd}
}

// Line is a single step of a Proof: a formula together with why it's
// allowed to appear, the nesting depth it sits at, and the scope (if any)
// it belongs to.
type Line struct {
	ID                 string
	LineNumber         int
	Formula            formula.Formula
	Justification      Justification
	Depth              int
	ScopeID            *string
	IsValid            bool
	ValidationMessage  *string
}

func newLine(lineNumber int, f formula.Formula, j Justification, depth int, scopeID *string) Line {
	return Line{
		ID:         uuid.NewString(),
		LineNumber: lineNumber,
		Formula:    f,
		Justification: j,
		Depth:      depth,
		ScopeID:    scopeID,
		IsValid:    true,
	}
}

// SetValid records a line's validation outcome.
func (l *Line) SetValid(valid bool, message *string) {
	l.IsValid = valid
	l.ValidationMessage = message
}

// Proof is an in-progress or completed derivation of a Theorem's
// conclusion from its premises, built up one Line at a time.
type Proof struct {
	ID           string
	Theorem      theorem.Theorem
	Lines        []Line
	ScopeManager *ScopeManager
	IsComplete   bool
}

// New starts a Proof for th, seeding it with one Premise line per premise.
func New(th theorem.Theorem) *Proof {
	p := &Proof{
		ID:           uuid.NewString(),
		Theorem:      th,
		ScopeManager: NewScopeManager(),
	}
	for _, premise := range th.Premises {
		lineNumber := len(p.Lines) + 1
		p.Lines = append(p.Lines, newLine(lineNumber, premise, Premise{}, 0, nil))
	}
	return p
}

// CurrentLineNumber returns the number of the last line written.
func (p *Proof) CurrentLineNumber() int {
	return len(p.Lines)
}

// NextLineNumber returns the line number the next AddLine/OpenSubproof call
// will assign.
func (p *Proof) NextLineNumber() int {
	return len(p.Lines) + 1
}

// CurrentDepth returns the number of currently open subproof scopes.
func (p *Proof) CurrentDepth() int {
	return p.ScopeManager.CurrentDepth()
}

// GetLine returns the line with the given number, or false if there is
// none.
func (p *Proof) GetLine(lineNumber int) (Line, bool) {
	for _, l := range p.Lines {
		if l.LineNumber == lineNumber {
			return l, true
		}
	}
	return Line{}, false
}

// GetLineMut returns a pointer to the line with the given number, or nil
// if there is none, so callers can mark it valid/invalid in place.
func (p *Proof) GetLineMut(lineNumber int) *Line {
	for i := range p.Lines {
		if p.Lines[i].LineNumber == lineNumber {
			return &p.Lines[i]
		}
	}
	return nil
}

// AddLine appends an ordinary (non-assumption, non-subproof-closing) line
// at the current depth and scope, and returns it.
func (p *Proof) AddLine(f formula.Formula, j Justification) Line {
	lineNumber := p.NextLineNumber()
	depth := p.CurrentDepth()
	scopeID := p.ScopeManager.CurrentScopeID()

	line := newLine(lineNumber, f, j, depth, scopeID)
	p.Lines = append(p.Lines, line)
	return p.Lines[len(p.Lines)-1]
}

// OpenSubproof starts a new subproof assuming assumption under technique,
// opening a scope one level deeper than the current one.
func (p *Proof) OpenSubproof(assumption formula.Formula, technique Technique) Line {
	lineNumber := p.NextLineNumber()
	scopeID := p.ScopeManager.OpenScope(lineNumber, assumption, technique)
	depth := p.CurrentDepth()

	line := newLine(lineNumber, assumption, Assumption{Technique: technique}, depth, &scopeID)
	p.Lines = append(p.Lines, line)
	return p.Lines[len(p.Lines)-1]
}

// CloseSubproof discharges the current subproof, appending conclusion at
// the parent scope's level with a SubproofConclusion justification.
// Returns false if no scope is currently open.
func (p *Proof) CloseSubproof(conclusion formula.Formula, technique Technique) (Line, bool) {
	scope, ok := p.ScopeManager.CurrentScope()
	if !ok {
		return Line{}, false
	}
	subproofStart := scope.StartLine

	endLine := p.NextLineNumber()
	p.ScopeManager.CloseScope(endLine - 1)

	depth := p.CurrentDepth()
	scopeID := p.ScopeManager.CurrentScopeID()

	line := newLine(endLine, conclusion, SubproofConclusion{
		Technique:     technique,
		SubproofStart: subproofStart,
		SubproofEnd:   endLine - 1,
	}, depth, scopeID)
	p.Lines = append(p.Lines, line)
	return p.Lines[len(p.Lines)-1], true
}

// RemoveLastLine pops the most recently added line, undoing the scope it
// opened if it was an Assumption. Premises can never be removed: it
// returns false once only the seeded premise lines remain.
func (p *Proof) RemoveLastLine() (Line, bool) {
	if len(p.Lines) <= len(p.Theorem.Premises) {
		return Line{}, false
	}

	removed := p.Lines[len(p.Lines)-1]
	p.Lines = p.Lines[:len(p.Lines)-1]

	if _, ok := removed.Justification.(Assumption); ok {
		p.ScopeManager.PopScope(removed.LineNumber)
	}
	return removed, true
}

// IsLineAccessible reports whether toLine can be cited from fromLine.
func (p *Proof) IsLineAccessible(fromLine, toLine int) bool {
	return p.ScopeManager.IsAccessible(fromLine, toLine)
}

// CheckComplete reports (and records) whether the proof is done: no open
// scopes, the theorem's conclusion appears at depth 0, and every line is
// valid.
func (p *Proof) CheckComplete() bool {
	if p.ScopeManager.HasOpenScopes() {
		p.IsComplete = false
		return false
	}

	hasConclusion := false
	allValid := true
	for _, l := range p.Lines {
		if !l.IsValid {
			allValid = false
		}
		if l.Depth == 0 && l.IsValid && formula.Equal(l.Formula, p.Theorem.Conclusion) {
			hasConclusion = true
		}
	}

	p.IsComplete = hasConclusion && allValid
	return p.IsComplete
}

// AccessibleLines returns every line number citable as justification for
// the next line to be added.
func (p *Proof) AccessibleLines() []int {
	current := p.NextLineNumber()
	var out []int
	for line := 1; line < current; line++ {
		if p.IsLineAccessible(current, line) {
			out = append(out, line)
		}
	}
	return out
}

// GetAutoCloseConclusion reports whether the current subproof can be
// closed right now and, if so, what technique and conclusion that close
// would produce. For CP, the conclusion wraps the assumption around the
// subproof's last line. For IP, it searches backward from the end of the
// subproof for the first syntactic contradiction and concludes the
// assumption's negation (or, for an assumption ¬X, X itself); it returns
// false if no contradiction has been derived yet.
func (p *Proof) GetAutoCloseConclusion() (Technique, formula.Formula, bool) {
	scope, ok := p.ScopeManager.CurrentScope()
	if !ok {
		return 0, nil, false
	}
	assumption := scope.Assumption
	technique := scope.Technique
	scopeStart := scope.StartLine

	if technique.RequiresContradiction() {
		for i := len(p.Lines) - 1; i >= 0; i-- {
			line := p.Lines[i]
			if line.LineNumber < scopeStart {
				break
			}
			if IsContradiction(line.Formula) {
				conclusion, ok := technique.GetConclusion(assumption, line.Formula)
				if !ok {
					return 0, nil, false
				}
				return technique, conclusion, true
			}
		}
		return 0, nil, false
	}

	var lastInScope *Line
	for i := len(p.Lines) - 1; i >= 0; i-- {
		if p.Lines[i].LineNumber >= scopeStart {
			lastInScope = &p.Lines[i]
			break
		}
	}
	if lastInScope == nil {
		return 0, nil, false
	}
	conclusion, ok := technique.GetConclusion(assumption, lastInScope.Formula)
	if !ok {
		return 0, nil, false
	}
	return technique, conclusion, true
}
