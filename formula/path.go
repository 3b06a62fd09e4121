package formula

// PathStep is a single positional move into a Formula node.
type PathStep int

const (
	// Inner selects the operand of a Not node.
	Inner PathStep = iota
	// Left selects the left operand of a binary connective.
	Left
	// Right selects the right operand of a binary connective.
	Right
)

// Path is an ordered sequence of PathStep addressing a node positionally,
// root-relative. The empty path denotes the root itself. Two structurally
// identical subtrees occupying different positions receive different
// Paths — this is what lets the generator target one occurrence at a time
// (spec §9: "positional vs structural replacement").
type Path []PathStep

// PathedFormula pairs a Formula node with the Path at which it occurs in
// some enclosing tree.
type PathedFormula struct {
	Path    Path
	Formula Formula
}

// SubformulasWithPaths returns every node of f, including f itself,
// together with its positional path, in pre-order.
func SubformulasWithPaths(f Formula) []PathedFormula {
	var out []PathedFormula
	walkPaths(f, nil, &out)
	return out
}

func walkPaths(f Formula, prefix Path, out *[]PathedFormula) {
	*out = append(*out, PathedFormula{Path: append(Path(nil), prefix...), Formula: f})
	switch v := f.(type) {
	case Not:
		walkPaths(v.Inner, append(append(Path(nil), prefix...), Inner), out)
	case And:
		walkPaths(v.Left, append(append(Path(nil), prefix...), Left), out)
		walkPaths(v.Right, append(append(Path(nil), prefix...), Right), out)
	case Or:
		walkPaths(v.Left, append(append(Path(nil), prefix...), Left), out)
		walkPaths(v.Right, append(append(Path(nil), prefix...), Right), out)
	case Implies:
		walkPaths(v.Left, append(append(Path(nil), prefix...), Left), out)
		walkPaths(v.Right, append(append(Path(nil), prefix...), Right), out)
	case Biconditional:
		walkPaths(v.Left, append(append(Path(nil), prefix...), Left), out)
		walkPaths(v.Right, append(append(Path(nil), prefix...), Right), out)
	}
}

// ReplaceAtPath returns a new Formula in which the node at path has been
// replaced by replacement. If path does not match the shape of f (e.g. it
// names Left on a Not node, or runs past a leaf), f is returned unchanged,
// per spec §4.1.
func ReplaceAtPath(f Formula, path Path, replacement Formula) Formula {
	if len(path) == 0 {
		return replacement
	}
	step, rest := path[0], path[1:]
	switch v := f.(type) {
	case Not:
		if step != Inner {
			return f
		}
		return Not{Inner: ReplaceAtPath(v.Inner, rest, replacement)}
	case And:
		switch step {
		case Left:
			return And{Left: ReplaceAtPath(v.Left, rest, replacement), Right: v.Right}
		case Right:
			return And{Left: v.Left, Right: ReplaceAtPath(v.Right, rest, replacement)}
		default:
			return f
		}
	case Or:
		switch step {
		case Left:
			return Or{Left: ReplaceAtPath(v.Left, rest, replacement), Right: v.Right}
		case Right:
			return Or{Left: v.Left, Right: ReplaceAtPath(v.Right, rest, replacement)}
		default:
			return f
		}
	case Implies:
		switch step {
		case Left:
			return Implies{Left: ReplaceAtPath(v.Left, rest, replacement), Right: v.Right}
		case Right:
			return Implies{Left: v.Left, Right: ReplaceAtPath(v.Right, rest, replacement)}
		default:
			return f
		}
	case Biconditional:
		switch step {
		case Left:
			return Biconditional{Left: ReplaceAtPath(v.Left, rest, replacement), Right: v.Right}
		case Right:
			return Biconditional{Left: v.Left, Right: ReplaceAtPath(v.Right, rest, replacement)}
		default:
			return f
		}
	default:
		// Atom or Contradiction: no children, path cannot descend further.
		return f
	}
}

// At returns the subformula located at path, or nil if path does not match
// the shape of f.
func At(f Formula, path Path) Formula {
	if len(path) == 0 {
		return f
	}
	step, rest := path[0], path[1:]
	switch v := f.(type) {
	case Not:
		if step != Inner {
			return nil
		}
		return At(v.Inner, rest)
	case And:
		if step == Left {
			return At(v.Left, rest)
		} else if step == Right {
			return At(v.Right, rest)
		}
		return nil
	case Or:
		if step == Left {
			return At(v.Left, rest)
		} else if step == Right {
			return At(v.Right, rest)
		}
		return nil
	case Implies:
		if step == Left {
			return At(v.Left, rest)
		} else if step == Right {
			return At(v.Right, rest)
		}
		return nil
	case Biconditional:
		if step == Left {
			return At(v.Left, rest)
		} else if step == Right {
			return At(v.Right, rest)
		}
		return nil
	default:
		return nil
	}
}
