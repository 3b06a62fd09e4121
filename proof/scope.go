package proof

import (
	"fmt"

	"github.com/dogaozden/prop-bench-go/formula"
)

// Scope is one subproof: the assumption it opened under, the technique
// governing how it can close, and the line range it spans. EndLine is nil
// while the scope is open.
type Scope struct {
	ID            string
	StartLine     int
	EndLine       *int
	Assumption    formula.Formula
	Technique     Technique
	Depth         int
	ParentScopeID *string
}

// IsOpen reports whether the scope has not yet been closed.
func (s Scope) IsOpen() bool {
	return s.EndLine == nil
}

// ContainsLine reports whether lineNumber falls within the scope's span.
// An open scope extends to infinity.
func (s Scope) ContainsLine(lineNumber int) bool {
	if s.EndLine != nil {
		return lineNumber >= s.StartLine && lineNumber <= *s.EndLine
	}
	return lineNumber >= s.StartLine
}

// ScopeManager tracks the nested stack of subproof scopes opened over the
// course of a proof and answers accessibility queries against them.
type ScopeManager struct {
	scopes      []Scope
	nextScopeID int
}

// NewScopeManager returns an empty ScopeManager ready to open scopes.
func NewScopeManager() *ScopeManager {
	return &ScopeManager{nextScopeID: 1}
}

// OpenScope starts a new subproof at startLine under assumption, nested
// inside whatever scope is currently innermost-open (if any), and returns
// the new scope's ID.
func (m *ScopeManager) OpenScope(startLine int, assumption formula.Formula, technique Technique) string {
	depth := m.CurrentDepth() + 1
	parentID := m.CurrentScopeID()
	scopeID := fmt.Sprintf("scope-%d", m.nextScopeID)
	m.nextScopeID++

	m.scopes = append(m.scopes, Scope{
		ID:            scopeID,
		StartLine:     startLine,
		Assumption:    assumption,
		Technique:     technique,
		Depth:         depth,
		ParentScopeID: parentID,
	})
	return scopeID
}

// CloseScope closes the innermost open scope at endLine and returns it, or
// false if no scope is open.
func (m *ScopeManager) CloseScope(endLine int) (Scope, bool) {
	for i := len(m.scopes) - 1; i >= 0; i-- {
		if m.scopes[i].IsOpen() {
			end := endLine
			m.scopes[i].EndLine = &end
			return m.scopes[i], true
		}
	}
	return Scope{}, false
}

// PopScope removes the open scope that starts at startLine, used to undo an
// assumption line that's being retracted. Returns false if no such open
// scope exists.
func (m *ScopeManager) PopScope(startLine int) (Scope, bool) {
	for i := len(m.scopes) - 1; i >= 0; i-- {
		if m.scopes[i].StartLine == startLine && m.scopes[i].IsOpen() {
			popped := m.scopes[i]
			m.scopes = append(m.scopes[:i], m.scopes[i+1:]...)
			return popped, true
		}
	}
	return Scope{}, false
}

// CurrentDepth returns the number of currently open scopes.
func (m *ScopeManager) CurrentDepth() int {
	n := 0
	for _, s := range m.scopes {
		if s.IsOpen() {
			n++
		}
	}
	return n
}

// CurrentScopeID returns the innermost open scope's ID, or nil if none is
// open.
func (m *ScopeManager) CurrentScopeID() *string {
	for i := len(m.scopes) - 1; i >= 0; i-- {
		if m.scopes[i].IsOpen() {
			id := m.scopes[i].ID
			return &id
		}
	}
	return nil
}

// CurrentScope returns the innermost open scope, or false if none is open.
func (m *ScopeManager) CurrentScope() (Scope, bool) {
	for i := len(m.scopes) - 1; i >= 0; i-- {
		if m.scopes[i].IsOpen() {
			return m.scopes[i], true
		}
	}
	return Scope{}, false
}

// GetScope looks up a scope by ID.
func (m *ScopeManager) GetScope(scopeID string) (Scope, bool) {
	for _, s := range m.scopes {
		if s.ID == scopeID {
			return s, true
		}
	}
	return Scope{}, false
}

// DepthAtLine returns how many scopes contain lineNumber.
func (m *ScopeManager) DepthAtLine(lineNumber int) int {
	n := 0
	for _, s := range m.scopes {
		if s.ContainsLine(lineNumber) {
			n++
		}
	}
	return n
}

// IsAccessible reports whether toLine can be cited as justification from
// fromLine: toLine must precede fromLine, and every scope containing toLine
// must either still be open or also contain fromLine (i.e. citing a line
// from inside a scope that has since closed without fromLine being inside
// it too is rejected).
func (m *ScopeManager) IsAccessible(fromLine, toLine int) bool {
	if toLine >= fromLine {
		return false
	}

	for _, s := range m.scopes {
		if !s.ContainsLine(toLine) {
			continue
		}
		if s.EndLine != nil && *s.EndLine < fromLine {
			return false
		}
		if !s.ContainsLine(fromLine) {
			return false
		}
	}
	return true
}

// IsSubproofAccessible reports whether the closed subproof spanning
// [startLine, endLine] can be cited as a unit (e.g. for a
// SubproofConclusion's "technique start-end" reference) from fromLine.
func (m *ScopeManager) IsSubproofAccessible(fromLine, startLine, endLine int) bool {
	if endLine >= fromLine {
		return false
	}

	var subproof Scope
	found := false
	for _, s := range m.scopes {
		if s.StartLine == startLine && s.EndLine != nil && *s.EndLine == endLine {
			subproof = s
			found = true
			break
		}
	}
	if !found {
		return false
	}

	if subproof.ParentScopeID != nil {
		if parent, ok := m.GetScope(*subproof.ParentScopeID); ok {
			return parent.ContainsLine(fromLine)
		}
	}

	if m.DepthAtLine(fromLine) == 0 {
		return true
	}
	for _, s := range m.scopes {
		if s.ContainsLine(fromLine) && s.Depth < subproof.Depth {
			return true
		}
	}
	return false
}

// AllScopes returns every scope ever opened, in opening order.
func (m *ScopeManager) AllScopes() []Scope {
	return m.scopes
}

// HasOpenScopes reports whether any scope is currently open.
func (m *ScopeManager) HasOpenScopes() bool {
	for _, s := range m.scopes {
		if s.IsOpen() {
			return true
		}
	}
	return false
}

// Reset clears every scope, returning the manager to its initial state.
func (m *ScopeManager) Reset() {
	m.scopes = nil
	m.nextScopeID = 1
}
