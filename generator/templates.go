package generator

import "github.com/dogaozden/prop-bench-go/formula"

// Template names one of the ten base argument forms ObfuscateGenerator can
// start from (spec §4.6, step 1).
type Template int

const (
	TemplateMP Template = iota
	TemplateMT
	TemplateHS
	TemplateDS
	TemplateSimp
	TemplateConj
	TemplateCDSimple
	TemplateCDFull
	TemplateNestedCP
	TemplateChain4
)

// SimpleTemplates are eligible when a Spec's BaseComplexity is Simple.
var SimpleTemplates = []Template{TemplateMP, TemplateMT, TemplateHS, TemplateDS, TemplateSimp, TemplateConj, TemplateCDSimple}

// HardTemplates are the only templates eligible when a Spec's
// BaseComplexity is Complex (spec §4.6: "restrict to the hard templates").
var HardTemplates = []Template{TemplateCDFull, TemplateNestedCP, TemplateChain4}

// AtomsNeeded reports how many distinct atoms a template requires.
func (t Template) AtomsNeeded() int {
	switch t {
	case TemplateMP, TemplateMT, TemplateDS, TemplateSimp, TemplateConj:
		return 2
	case TemplateHS, TemplateCDSimple, TemplateNestedCP:
		return 3
	case TemplateCDFull, TemplateChain4:
		return 4
	default:
		return 2
	}
}

func (t Template) String() string {
	switch t {
	case TemplateMP:
		return "MP"
	case TemplateMT:
		return "MT"
	case TemplateHS:
		return "HS"
	case TemplateDS:
		return "DS"
	case TemplateSimp:
		return "Simp"
	case TemplateConj:
		return "Conj"
	case TemplateCDSimple:
		return "CDSimple"
	case TemplateCDFull:
		return "CDFull"
	case TemplateNestedCP:
		return "NestedCP"
	case TemplateChain4:
		return "Chain4"
	default:
		return "Unknown"
	}
}

// Instantiate builds the (premises, conclusion) pair for t using atoms
// drawn from pool, in order. pool must have at least t.AtomsNeeded() atoms.
func (t Template) Instantiate(pool []string) (premises []formula.Formula, conclusion formula.Formula) {
	atom := func(i int) formula.Formula { return formula.Atom{Name: pool[i]} }
	not := func(f formula.Formula) formula.Formula { return formula.Not{Inner: f} }
	and := func(a, b formula.Formula) formula.Formula { return formula.And{Left: a, Right: b} }
	or := func(a, b formula.Formula) formula.Formula { return formula.Or{Left: a, Right: b} }
	implies := func(a, b formula.Formula) formula.Formula { return formula.Implies{Left: a, Right: b} }

	switch t {
	case TemplateMP:
		p, q := atom(0), atom(1)
		return []formula.Formula{implies(p, q), p}, q
	case TemplateMT:
		p, q := atom(0), atom(1)
		return []formula.Formula{implies(p, q), not(q)}, not(p)
	case TemplateHS:
		p, q, r := atom(0), atom(1), atom(2)
		return []formula.Formula{implies(p, q), implies(q, r)}, implies(p, r)
	case TemplateDS:
		p, q := atom(0), atom(1)
		return []formula.Formula{or(p, q), not(p)}, q
	case TemplateSimp:
		p, q := atom(0), atom(1)
		return []formula.Formula{and(p, q)}, p
	case TemplateConj:
		p, q := atom(0), atom(1)
		return []formula.Formula{p, q}, and(p, q)
	case TemplateCDSimple:
		// Both disjuncts lead to the same consequent: derivable by
		// Simplification-style case analysis without a genuine split.
		p, q, r := atom(0), atom(1), atom(2)
		return []formula.Formula{or(p, q), implies(p, r), implies(q, r)}, r
	case TemplateCDFull:
		// Genuine Constructive Dilemma: the two consequents differ, so
		// forces_case_split holds (no premise negates either disjunct).
		p, q, r, s := atom(0), atom(1), atom(2), atom(3)
		return []formula.Formula{or(p, q), implies(p, r), implies(q, s)}, or(r, s)
	case TemplateNestedCP:
		// The premise is the inner conditional Q ⊃ R; the conclusion nests
		// it under a further antecedent P.
		p, q, r := atom(0), atom(1), atom(2)
		return []formula.Formula{implies(q, r)}, implies(p, implies(q, r))
	case TemplateChain4:
		p, q, r, s := atom(0), atom(1), atom(2), atom(3)
		return []formula.Formula{implies(p, q), implies(q, r), implies(r, s)}, implies(p, s)
	default:
		p, q := atom(0), atom(1)
		return []formula.Formula{implies(p, q), p}, q
	}
}
