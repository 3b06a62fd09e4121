package truthtable

import "github.com/dogaozden/prop-bench-go/formula"

// Table32 is a 32-bit truth table: bit r is set iff the formula evaluates
// to true under the row-r assignment of the canonical 5-variable ordering
// P,Q,R,S,T.
type Table32 uint32

const (
	// Tautology32 is the truth table of any tautology: every row set.
	Tautology32 Table32 = 0xFFFFFFFF
	// Contradiction32 is the truth table of any contradiction: no row set.
	Contradiction32 Table32 = 0
)

// Fixed column masks for the five named variables, spanning all 32 rows of
// the canonical 5-variable truth table. Unknown atom names reuse the P
// mask — a documented legacy quirk (spec §4.2/§9), not a bug to "fix": any
// direct use of Evaluate32 on a formula with atoms outside {P,Q,R,S,T} is a
// caller error. Use IsTautologyDynamic (facade.go), which routes such
// formulas to the dynamic engine instead.
const (
	maskP Table32 = 0x0000FFFF
	maskQ Table32 = 0x00FF00FF
	maskR Table32 = 0x0F0F0F0F
	maskS Table32 = 0x33333333
	maskT Table32 = 0x55555555
)

func atomMask32(name string) Table32 {
	switch name {
	case "P":
		return maskP
	case "Q":
		return maskQ
	case "R":
		return maskR
	case "S":
		return maskS
	case "T":
		return maskT
	default:
		return maskP
	}
}

// Evaluate32 folds f into its 32-bit truth table using the fixed
// P/Q/R/S/T masks. See the isFiveVarCompatible precondition below, which
// the façade in facade.go checks before taking this path.
func Evaluate32(f formula.Formula) Table32 {
	switch v := f.(type) {
	case formula.Atom:
		return atomMask32(v.Name)
	case formula.Contradiction:
		return Contradiction32
	case formula.Not:
		return ^Evaluate32(v.Inner)
	case formula.And:
		return Evaluate32(v.Left) & Evaluate32(v.Right)
	case formula.Or:
		return Evaluate32(v.Left) | Evaluate32(v.Right)
	case formula.Implies:
		return ^Evaluate32(v.Left) | Evaluate32(v.Right)
	case formula.Biconditional:
		left, right := Evaluate32(v.Left), Evaluate32(v.Right)
		return ^(left ^ right)
	default:
		return Contradiction32
	}
}

// IsTautology32 reports whether f's 32-bit table is all-ones.
func IsTautology32(f formula.Formula) bool { return Evaluate32(f) == Tautology32 }

// IsContradiction32 reports whether f's 32-bit table is all-zeros.
func IsContradiction32(f formula.Formula) bool { return Evaluate32(f) == Contradiction32 }

// fiveVarAtoms is the canonical atom set handled by the fast path.
var fiveVarAtoms = map[string]struct{}{"P": {}, "Q": {}, "R": {}, "S": {}, "T": {}}

// isFiveVarCompatible reports whether every atom in f is one of P,Q,R,S,T.
func isFiveVarCompatible(f formula.Formula) bool {
	for _, name := range formula.Atoms(f) {
		if _, ok := fiveVarAtoms[name]; !ok {
			return false
		}
	}
	return true
}
