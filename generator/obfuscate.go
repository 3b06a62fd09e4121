package generator

import (
	"math/rand"

	"github.com/dogaozden/prop-bench-go/difficulty"
	"github.com/dogaozden/prop-bench-go/formula"
	"github.com/dogaozden/prop-bench-go/rules"
	"github.com/dogaozden/prop-bench-go/semantics"
	"github.com/dogaozden/prop-bench-go/theorem"
)

// gnarlyPairs are the paired rule chains step 4 of the pipeline applies
// before the main rewrite loop (spec §4.6): each pair is applied back to
// back at one randomly chosen subformula.
var gnarlyPairs = [][2]rules.EquivalenceRule{
	{rules.Contraposition, rules.DeMorgan},
	{rules.Implication, rules.Distribution},
	{rules.Exportation, rules.DoubleNegation},
	{rules.Equivalence, rules.DeMorgan},
}

// ruleWeight is the sampling weight for the main rewrite loop: size-
// exploding rules are de-weighted to discourage runaway formula growth.
func ruleWeight(r rules.EquivalenceRule) float64 {
	if r == rules.Distribution || r == rules.Equivalence {
		return 0.2
	}
	return 1.0
}

// Obfuscate runs the full ObfuscateGenerator pipeline for spec and returns
// a theorem whose conclusion is the resulting tautology (spec §4.6).
func Obfuscate(spec difficulty.Spec, opts ...Option) (theorem.Theorem, error) {
	cfg := newConfig(opts...)
	pool := cfg.poolFor(spec)
	if len(pool) < 2 {
		return theorem.Theorem{}, ErrEmptyAtomPool
	}

	templates := SimpleTemplates
	if spec.BaseComplexity == difficulty.Complex {
		templates = HardTemplates
	}
	template := pickEligibleTemplate(cfg.rng, templates, len(pool))
	if template < 0 {
		return theorem.Theorem{}, ErrEmptyAtomPool
	}
	premises, conclusion := template.Instantiate(pool)

	if spec.SubstitutionDepth > 0 {
		premises, conclusion = substituteAtoms(cfg.rng, pool, premises, conclusion, spec)
	}

	current, err := wrapAsTautology(premises, conclusion)
	if err != nil {
		return theorem.Theorem{}, err
	}

	for pass := uint16(0); pass < spec.Passes; pass++ {
		if spec.GnarlyCombos {
			current = applyGnarlyCombos(cfg.rng, current)
		}
		current = runMainRewriteLoop(cfg.rng, current, int(spec.TransformsPerPass))

		if uint32(formula.Depth(current)) >= spec.EffectiveMaxFormulaDepth() {
			break
		}
		if uint32(formula.NodeCount(current)) >= spec.EffectiveMaxFormulaNodes() {
			break
		}
	}

	current = collapseDoubleNegations(current)

	if cfg.debugAssertTautology {
		ok, err := semantics.IsTautology(current)
		if err != nil {
			return theorem.Theorem{}, err
		}
		if !ok {
			return theorem.Theorem{}, ErrNotATautology
		}
	}

	return theorem.NewFromSpec(nil, current, spec), nil
}

func pickEligibleTemplate(rng *rand.Rand, candidates []Template, poolSize int) Template {
	eligible := make([]Template, 0, len(candidates))
	for _, t := range candidates {
		if t.AtomsNeeded() <= poolSize {
			eligible = append(eligible, t)
		}
	}
	if len(eligible) == 0 {
		return -1
	}
	return eligible[rng.Intn(len(eligible))]
}

func wrapAsTautology(premises []formula.Formula, conclusion formula.Formula) (formula.Formula, error) {
	wrapped := conclusion
	if len(premises) > 0 {
		acc := premises[0]
		for _, p := range premises[1:] {
			acc = formula.And{Left: acc, Right: p}
		}
		wrapped = formula.Implies{Left: acc, Right: conclusion}
	}
	if !stillTautology(wrapped) {
		return nil, ErrNotATautology
	}
	return wrapped, nil
}

// substituteAtoms implements spec §4.6 step 2: partition the pool beyond
// the base template's own atoms into one group per base atom (optionally
// promoting BridgeAtoms of them into two groups), build a random compound
// replacement for each base atom from its group plus itself, and
// substitute uniformly.
func substituteAtoms(rng *rand.Rand, pool []string, premises []formula.Formula, conclusion formula.Formula, spec difficulty.Spec) ([]formula.Formula, formula.Formula) {
	baseAtoms := formula.Atoms(wrapConjunction(premises, conclusion))
	if len(baseAtoms) == 0 {
		return premises, conclusion
	}
	remaining := remainingAtoms(pool, baseAtoms)
	groups := partitionAtoms(rng, remaining, len(baseAtoms), int(spec.BridgeAtoms))

	result := make([]formula.Formula, len(premises))
	copy(result, premises)
	resultConclusion := conclusion

	for i, base := range baseAtoms {
		replacement := buildCompound(rng, formula.Atom{Name: base}, groups[i], int(spec.SubstitutionDepth))
		for j, p := range result {
			result[j] = formula.Substitute(p, base, replacement)
		}
		resultConclusion = formula.Substitute(resultConclusion, base, replacement)
	}
	return result, resultConclusion
}

func wrapConjunction(premises []formula.Formula, conclusion formula.Formula) formula.Formula {
	acc := conclusion
	for _, p := range premises {
		acc = formula.And{Left: acc, Right: p}
	}
	return acc
}

func remainingAtoms(pool []string, used []string) []string {
	usedSet := make(map[string]bool, len(used))
	for _, u := range used {
		usedSet[u] = true
	}
	var out []string
	for _, p := range pool {
		if !usedSet[p] {
			out = append(out, p)
		}
	}
	return out
}

func partitionAtoms(rng *rand.Rand, remaining []string, groupCount int, bridgeAtoms int) [][]string {
	groups := make([][]string, groupCount)
	if groupCount == 0 {
		return groups
	}
	for i, atom := range remaining {
		g := i % groupCount
		groups[g] = append(groups[g], atom)
		if i < bridgeAtoms {
			bridge := (g + 1) % groupCount
			groups[bridge] = append(groups[bridge], atom)
		}
	}
	_ = rng
	return groups
}

// buildCompound builds a random formula of the given depth that always
// includes self somewhere, drawing additional operands from extras.
func buildCompound(rng *rand.Rand, self formula.Formula, extras []string, depth int) formula.Formula {
	if depth <= 0 || len(extras) == 0 {
		return self
	}
	other := formula.Atom{Name: extras[rng.Intn(len(extras))]}
	rest := extras
	if len(extras) > 1 {
		rest = extras[1:]
	}
	switch rng.Intn(4) {
	case 0:
		return formula.And{Left: self, Right: buildCompound(rng, other, rest, depth-1)}
	case 1:
		return formula.Or{Left: self, Right: buildCompound(rng, other, rest, depth-1)}
	case 2:
		return formula.Implies{Left: buildCompound(rng, other, rest, depth-1), Right: self}
	default:
		return formula.And{Left: self, Right: formula.Not{Inner: buildCompound(rng, other, rest, depth-1)}}
	}
}

// applyGnarlyCombos applies 2-3 paired rule chains from gnarlyPairs, each
// at one randomly chosen subformula path, skipping any pair whose result
// is no longer a tautology.
func applyGnarlyCombos(rng *rand.Rand, current formula.Formula) formula.Formula {
	count := 2 + rng.Intn(2)
	for i := 0; i < count; i++ {
		pair := gnarlyPairs[rng.Intn(len(gnarlyPairs))]
		subs := formula.SubformulasWithPaths(current)
		target := subs[rng.Intn(len(subs))]
		first := pair[0].EquivalentForms(target.Formula)
		if len(first) == 0 {
			continue
		}
		local, ok := applyRuleAtRandomPath(rng, first[rng.Intn(len(first))], pair[1])
		if !ok {
			continue
		}
		candidate2 := formula.ReplaceAtPath(current, target.Path, local)
		if stillTautology(candidate2) {
			current = candidate2
		}
	}
	return current
}

// runMainRewriteLoop implements spec §4.6 step 5: attempt
// transformsPerPass successful rewrites, bounded by 10x that many total
// attempts.
func runMainRewriteLoop(rng *rand.Rand, current formula.Formula, transformsPerPass int) formula.Formula {
	maxAttempts := 10 * transformsPerPass
	done := 0
	for attempt := 0; attempt < maxAttempts && done < transformsPerPass; attempt++ {
		subs := formula.SubformulasWithPaths(current)
		if len(subs) == 0 {
			break
		}
		target := subs[rng.Intn(len(subs))]

		rule := weightedRuleChoice(rng)
		candidates := filterCandidates(rule, target.Formula, rule.EquivalentForms(target.Formula))
		if len(candidates) == 0 {
			continue
		}
		replacement := candidates[rng.Intn(len(candidates))]
		next := formula.ReplaceAtPath(current, target.Path, replacement)
		if stillTautology(next) {
			current = next
			done++
		}
	}
	return current
}

func weightedRuleChoice(rng *rand.Rand) rules.EquivalenceRule {
	total := 0.0
	for _, r := range rules.AllEquivalenceRules {
		total += ruleWeight(r)
	}
	target := rng.Float64() * total
	for _, r := range rules.AllEquivalenceRules {
		target -= ruleWeight(r)
		if target <= 0 {
			return r
		}
	}
	return rules.AllEquivalenceRules[len(rules.AllEquivalenceRules)-1]
}

// filterCandidates drops the Tautology rule's expansion direction (to
// prevent unbounded duplication) and DoubleNegation introductions when the
// subformula already carries two or more leading negations.
func filterCandidates(rule rules.EquivalenceRule, original formula.Formula, candidates []formula.Formula) []formula.Formula {
	out := candidates[:0:0]
	leadingNegations := countLeadingNegations(original)
	originalSize := formula.NodeCount(original)
	for _, c := range candidates {
		if rule == rules.Tautology && formula.NodeCount(c) > originalSize {
			continue // expansion direction
		}
		if rule == rules.DoubleNegation && leadingNegations >= 2 && formula.NodeCount(c) > originalSize {
			continue // introduction while already doubly negated
		}
		out = append(out, c)
	}
	return out
}

func countLeadingNegations(f formula.Formula) int {
	n := 0
	for {
		not, ok := f.(formula.Not)
		if !ok {
			return n
		}
		n++
		f = not.Inner
	}
}

// applyRuleAtRandomPath tries a handful of random subformula paths and, at
// the first one where rule has any equivalent form, replaces that
// subformula with one of those forms chosen at random.
func applyRuleAtRandomPath(rng *rand.Rand, current formula.Formula, rule rules.EquivalenceRule) (formula.Formula, bool) {
	subs := formula.SubformulasWithPaths(current)
	if len(subs) == 0 {
		return current, false
	}
	const maxTries = 5
	for i := 0; i < maxTries; i++ {
		target := subs[rng.Intn(len(subs))]
		candidates := rule.EquivalentForms(target.Formula)
		if len(candidates) == 0 {
			continue
		}
		replacement := candidates[rng.Intn(len(candidates))]
		return formula.ReplaceAtPath(current, target.Path, replacement), true
	}
	return current, false
}

func stillTautology(f formula.Formula) bool {
	ok, err := semantics.IsTautology(f)
	return err == nil && ok
}

// collapseDoubleNegations implements spec §4.6 step 7: collapse every ¬¬X
// to X throughout the formula (¬¬¬X becomes ¬X).
func collapseDoubleNegations(f formula.Formula) formula.Formula {
	switch x := f.(type) {
	case formula.Not:
		inner := collapseDoubleNegations(x.Inner)
		if nn, ok := inner.(formula.Not); ok {
			return nn.Inner
		}
		return formula.Not{Inner: inner}
	case formula.And:
		return formula.And{Left: collapseDoubleNegations(x.Left), Right: collapseDoubleNegations(x.Right)}
	case formula.Or:
		return formula.Or{Left: collapseDoubleNegations(x.Left), Right: collapseDoubleNegations(x.Right)}
	case formula.Implies:
		return formula.Implies{Left: collapseDoubleNegations(x.Left), Right: collapseDoubleNegations(x.Right)}
	case formula.Biconditional:
		return formula.Biconditional{Left: collapseDoubleNegations(x.Left), Right: collapseDoubleNegations(x.Right)}
	default:
		return f
	}
}
