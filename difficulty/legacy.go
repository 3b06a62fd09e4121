package difficulty

// SpecFromLegacyValue bridges the legacy 1-100 scalar difficulty value onto
// an equivalent Spec, for callers that predate the named-tier system. The
// breakpoints and the piecewise transforms-per-pass ramp are load-bearing:
// they reproduce the original generator's interpolation exactly so a saved
// difficulty_value keeps producing theorems of the same rough shape.
func SpecFromLegacyValue(value uint8) Spec {
	d := int(value)
	if d < 1 {
		d = 1
	}
	if d > 100 {
		d = 100
	}

	var variables uint8
	switch {
	case d <= 40:
		variables = 2
	case d <= 60:
		variables = 3
	case d <= 80:
		variables = 4
	default:
		variables = 5
	}

	var transforms int
	switch {
	case d <= 25:
		transforms = 1 + (d-1)*2/24
	case d <= 45:
		transforms = 3 + (d-26)*3/19
	case d <= 70:
		transforms = 6 + (d-46)*5/24
	case d <= 85:
		transforms = 11 + (d-71)*5/14
	case d <= 95:
		transforms = 16 + (d-86)*4/9
	default:
		transforms = 20 + (d-96)*4/4
	}

	var substitutionDepth uint16
	switch {
	case d <= 69:
		substitutionDepth = 0
	case d <= 84:
		substitutionDepth = 1
	default:
		substitutionDepth = 2
	}

	baseComplexity := Simple
	if d >= 70 {
		baseComplexity = Complex
	}

	return Spec{
		Variables:         variables,
		Passes:            1,
		TransformsPerPass: uint16(transforms),
		BaseComplexity:    baseComplexity,
		SubstitutionDepth: substitutionDepth,
	}
}
