// SPDX-License-Identifier: MIT
package truthtable

import "errors"

// ErrTooManyVariables indicates a formula's atom set exceeds MaxDynVars
// (20) and cannot be evaluated by the dynamic bitvector engine.
var ErrTooManyVariables = errors.New("truthtable: too many distinct atoms for dynamic engine")
