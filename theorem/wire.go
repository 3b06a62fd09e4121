package theorem

import (
	"encoding/json"
	"fmt"

	"github.com/dogaozden/prop-bench-go/difficulty"
	"github.com/dogaozden/prop-bench-go/formula"
)

// wireSpec is difficulty.Spec's JSON shape (spec §6): optional fields are
// omitted rather than zero-valued so a bare legacy theorem round-trips
// without ever mentioning the extended generation knobs.
type wireSpec struct {
	Variables         uint8  `json:"variables"`
	Passes            uint16 `json:"passes"`
	TransformsPerPass uint16 `json:"transforms_per_pass"`
	BaseComplexity    string `json:"base_complexity"`
	SubstitutionDepth uint16 `json:"substitution_depth"`
	BridgeAtoms       *uint8 `json:"bridge_atoms,omitempty"`
	GnarlyCombos      *bool  `json:"gnarly_combos,omitempty"`
	MaxFormulaNodes   *uint32 `json:"max_formula_nodes,omitempty"`
	MaxFormulaDepth   *uint32 `json:"max_formula_depth,omitempty"`
}

// wireTheorem is the JSON document shape a Theorem marshals to and from.
type wireTheorem struct {
	ID              string    `json:"id"`
	Premises        []string  `json:"premises"`
	Conclusion      string    `json:"conclusion"`
	Difficulty      string    `json:"difficulty"`
	DifficultyValue uint8     `json:"difficulty_value"`
	DifficultySpec  *wireSpec `json:"difficulty_spec,omitempty"`
}

func legacyLabel(tier *difficulty.Tier, d difficulty.LegacyDifficulty) string {
	if tier != nil {
		return tier.String()
	}
	switch d {
	case difficulty.LegacyEasy:
		return "Easy"
	case difficulty.LegacyMedium:
		return "Medium"
	case difficulty.LegacyHard:
		return "Hard"
	default:
		return "Expert"
	}
}

// MarshalJSON renders t as the wire format from spec §6.
func (t Theorem) MarshalJSON() ([]byte, error) {
	premises := make([]string, len(t.Premises))
	for i, p := range t.Premises {
		premises[i] = formula.ASCIIBracketed(p)
	}

	w := wireTheorem{
		ID:              t.ID,
		Premises:        premises,
		Conclusion:      formula.ASCIIBracketed(t.Conclusion),
		Difficulty:      legacyLabel(t.Tier, t.Difficulty),
		DifficultyValue: t.DifficultyValue,
	}
	if t.Spec != nil {
		w.DifficultySpec = toWireSpec(*t.Spec)
	}
	return json.Marshal(w)
}

func toWireSpec(s difficulty.Spec) *wireSpec {
	ws := &wireSpec{
		Variables:         s.Variables,
		Passes:            s.Passes,
		TransformsPerPass: s.TransformsPerPass,
		BaseComplexity:    s.BaseComplexity.String(),
		SubstitutionDepth: s.SubstitutionDepth,
	}
	if s.BridgeAtoms != 0 {
		v := s.BridgeAtoms
		ws.BridgeAtoms = &v
	}
	if s.GnarlyCombos {
		v := true
		ws.GnarlyCombos = &v
	}
	if s.MaxFormulaNodes != 0 {
		v := s.MaxFormulaNodes
		ws.MaxFormulaNodes = &v
	}
	if s.MaxFormulaDepth != 0 {
		v := s.MaxFormulaDepth
		ws.MaxFormulaDepth = &v
	}
	return ws
}

// UnmarshalJSON parses t from the wire format from spec §6, parsing each
// premise and the conclusion with formula.Parse.
func (t *Theorem) UnmarshalJSON(data []byte) error {
	var w wireTheorem
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	premises := make([]formula.Formula, len(w.Premises))
	for i, s := range w.Premises {
		f, err := formula.Parse(s)
		if err != nil {
			return fmt.Errorf("theorem: premise %d: %w", i, err)
		}
		premises[i] = f
	}
	conclusion, err := formula.Parse(w.Conclusion)
	if err != nil {
		return fmt.Errorf("theorem: conclusion: %w", err)
	}

	tier, hasTier := difficulty.TierFromName(w.Difficulty)
	legacy, err := parseLegacyLabel(w.Difficulty)
	if err != nil && !hasTier {
		return err
	}
	if hasTier {
		legacy = tier.ToLegacy()
	}

	*t = Theorem{
		ID:              w.ID,
		Premises:        premises,
		Conclusion:      conclusion,
		Difficulty:      legacy,
		DifficultyValue: w.DifficultyValue,
	}
	if hasTier {
		t.Tier = &tier
	}
	if w.DifficultySpec != nil {
		spec := fromWireSpec(*w.DifficultySpec)
		t.Spec = &spec
	}
	return nil
}

func parseLegacyLabel(s string) (difficulty.LegacyDifficulty, error) {
	switch s {
	case "Easy":
		return difficulty.LegacyEasy, nil
	case "Medium":
		return difficulty.LegacyMedium, nil
	case "Hard":
		return difficulty.LegacyHard, nil
	case "Expert":
		return difficulty.LegacyExpert, nil
	default:
		return 0, fmt.Errorf("theorem: unknown difficulty label %q", s)
	}
}

func fromWireSpec(w wireSpec) difficulty.Spec {
	s := difficulty.Spec{
		Variables:         w.Variables,
		Passes:            w.Passes,
		TransformsPerPass: w.TransformsPerPass,
		SubstitutionDepth: w.SubstitutionDepth,
	}
	if w.BaseComplexity == "complex" {
		s.BaseComplexity = difficulty.Complex
	}
	if w.BridgeAtoms != nil {
		s.BridgeAtoms = *w.BridgeAtoms
	}
	if w.GnarlyCombos != nil {
		s.GnarlyCombos = *w.GnarlyCombos
	}
	if w.MaxFormulaNodes != nil {
		s.MaxFormulaNodes = *w.MaxFormulaNodes
	}
	if w.MaxFormulaDepth != nil {
		s.MaxFormulaDepth = *w.MaxFormulaDepth
	}
	return s
}
