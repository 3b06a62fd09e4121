// Package proof implements the scope-tracking proof assembly layer: a
// ScopeManager that tracks nested Conditional/Indirect Proof subproofs and
// their accessibility, and a Proof that owns the ordered lines built atop
// it. Nothing here checks validity — that is verify's job; Proof only
// enforces the bookkeeping invariants (premises can't be removed, an
// Assumption's scope closes with it, depth tracks open-scope count).
package proof
