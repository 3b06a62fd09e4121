package generator

import (
	"math/rand"

	"github.com/dogaozden/prop-bench-go/difficulty"
)

// Option customizes an Obfuscate run. It mutates the config before
// generation begins.
//
// As a rule, option constructors never panic at runtime, and ignore nil
// inputs.
type Option func(cfg *config)

// config holds the configurable parameters for Obfuscate:
//   - rng:   source of randomness (nil means a fresh fixed-seed source).
//   - pool:  the atom names available for base-template instantiation and
//     substitution (nil means the default letter pool).
//   - debugAssertTautology: whether the final-formula tautology recheck
//     (spec §4.6, "debug assertion") runs and returns ErrNotATautology on
//     failure, or is skipped for throughput.
//
// config is not safe for concurrent mutation; each Obfuscate invocation
// builds its own via newConfig.
type config struct {
	rng                  *rand.Rand
	pool                 []string
	debugAssertTautology bool
}

// defaultAtomPool is used when no WithAtomPool option is given: 20
// single-letter atoms (truthtable's MaxDynVars), starting with the 32-bit
// fast path's P/Q/R/S/T so that specs of up to five variables stay on it.
var defaultAtomPool = []string{
	"P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y",
	"A", "B", "C", "D", "E", "F", "G", "H", "I", "J",
}

// newConfig returns a config initialized with defaults, then applies each
// provided Option in order. If opts is empty, returns defaults: an RNG
// seeded with a fixed value (reproducible unless overridden via WithSeed/
// WithRand), defaultAtomPool, and debug assertions on.
func newConfig(opts ...Option) *config {
	cfg := &config{
		rng:                  rand.New(rand.NewSource(1)),
		pool:                 defaultAtomPool,
		debugAssertTautology: true,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithRand injects an explicit *rand.Rand source for randomness. If rng is
// nil, this option is a no-op and leaves the original source in place.
func WithRand(rng *rand.Rand) Option {
	return func(cfg *config) {
		if rng != nil {
			cfg.rng = rng
		}
	}
}

// WithSeed creates a new *rand.Rand seeded with the given value and
// assigns it as the RNG source. Use this for reproducible generation runs.
func WithSeed(seed int64) Option {
	return func(cfg *config) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}

// WithAtomPool overrides the atom names available to the generator. If
// pool is empty, this option is a no-op.
func WithAtomPool(pool []string) Option {
	return func(cfg *config) {
		if len(pool) > 0 {
			cfg.pool = pool
		}
	}
}

// WithDebugAssertTautology toggles the final tautology recheck described
// in spec §4.6; disabling it trades a correctness guarantee for speed and
// should only be done once the rule tables are trusted.
func WithDebugAssertTautology(on bool) Option {
	return func(cfg *config) {
		cfg.debugAssertTautology = on
	}
}

// poolFor returns the first spec.Variables atoms of cfg.pool, or the whole
// pool when it holds fewer; it does not check the result's size.
func (cfg *config) poolFor(spec difficulty.Spec) []string {
	n := int(spec.Variables)
	if n > len(cfg.pool) {
		n = len(cfg.pool)
	}
	return cfg.pool[:n]
}
