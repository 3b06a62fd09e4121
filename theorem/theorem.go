package theorem

import (
	"github.com/dogaozden/prop-bench-go/difficulty"
	"github.com/dogaozden/prop-bench-go/formula"
	"github.com/google/uuid"
)

// Theorem is a claim `premises ⊢ conclusion` along with the difficulty
// metadata that produced it.
type Theorem struct {
	ID             string
	Premises       []formula.Formula
	Conclusion     formula.Formula
	Difficulty     difficulty.LegacyDifficulty
	DifficultyValue uint8
	Tier           *difficulty.Tier
	Spec           *difficulty.Spec
}

// New builds a Theorem from the legacy four-level preset, assigning a
// fresh UUID and the preset's representative difficulty_value.
func New(premises []formula.Formula, conclusion formula.Formula, d difficulty.LegacyDifficulty) Theorem {
	return NewWithValue(premises, conclusion, d, difficulty.DefaultValueForLegacy(d))
}

// NewWithValue builds a Theorem from the legacy preset and an explicit
// 1-100 difficulty_value (e.g. one drawn at random from the preset's
// range).
func NewWithValue(premises []formula.Formula, conclusion formula.Formula, d difficulty.LegacyDifficulty, value uint8) Theorem {
	return Theorem{
		ID:              uuid.NewString(),
		Premises:        premises,
		Conclusion:      conclusion,
		Difficulty:      d,
		DifficultyValue: value,
	}
}

// NewFromTier builds a Theorem generated from a named difficulty.Tier.
// difficulty_value is fixed at 100: tier-based generation is driven by the
// tier's full Spec, not the legacy scalar, and 100 documents that the
// scalar should not be read as meaningful here.
func NewFromTier(premises []formula.Formula, conclusion formula.Formula, tier difficulty.Tier) Theorem {
	spec := difficulty.SpecForTier(tier)
	return Theorem{
		ID:              uuid.NewString(),
		Premises:        premises,
		Conclusion:      conclusion,
		Difficulty:      tier.ToLegacy(),
		DifficultyValue: 100,
		Tier:            &tier,
		Spec:            &spec,
	}
}

// NewFromSpec builds a Theorem generated from an explicit difficulty.Spec
// not tied to a named tier (e.g. a caller-supplied or legacy-bridged
// Spec). The legacy difficulty label is derived heuristically from the
// spec's own shape, since an arbitrary Spec carries no tier of its own.
func NewFromSpec(premises []formula.Formula, conclusion formula.Formula, spec difficulty.Spec) Theorem {
	return Theorem{
		ID:              uuid.NewString(),
		Premises:        premises,
		Conclusion:      conclusion,
		Difficulty:      legacyLabelForSpec(spec),
		DifficultyValue: 100,
		Spec:            &spec,
	}
}

func legacyLabelForSpec(spec difficulty.Spec) difficulty.LegacyDifficulty {
	if spec.BaseComplexity == difficulty.Simple {
		if spec.Variables <= 2 {
			return difficulty.LegacyEasy
		}
		return difficulty.LegacyMedium
	}
	if spec.Variables <= 4 {
		return difficulty.LegacyHard
	}
	return difficulty.LegacyExpert
}
