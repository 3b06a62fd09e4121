package difficulty

import "errors"

// Error policy: Spec.Validate returns one of these sentinels unwrapped;
// callers can compare against the sentinel directly or with errors.Is.
var (
	// ErrTooFewVariables is returned when a Spec declares fewer than the
	// minimum 2 atoms a generated formula needs to be nontrivial.
	ErrTooFewVariables = errors.New("difficulty: variables below minimum of 2")
	// ErrTooManyVariables is returned when a Spec exceeds the 20-variable
	// ceiling truthtable.TableDyn can address.
	ErrTooManyVariables = errors.New("difficulty: variables above maximum of 20")
	// ErrNoPasses is returned when Passes is zero.
	ErrNoPasses = errors.New("difficulty: passes must be at least 1")
	// ErrNoTransforms is returned when TransformsPerPass is zero.
	ErrNoTransforms = errors.New("difficulty: transforms_per_pass must be at least 1")
)
