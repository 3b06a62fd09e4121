// Package formula implements the propositional-logic term algebra: an
// immutable AST for propositional formulas, a recursive-descent parser
// tolerant of several classical notations, positional paths for
// single-occurrence rewriting, and the ASCII bracketed printer.
//
// 📐 What is formula?
//
//	A small, dependency-free value-type AST:
//
//	  • Atom, Not, And, Or, Implies, Biconditional, Contradiction
//	  • Structural equality and deep Clone — no shared subterms
//	  • Path / PathStep for positional (non-structural) addressing
//	  • A multi-symbol parser and the ASCII "bracket-cycling" printer
//
// Two distinct replacement primitives live on top of this package:
// ReplaceAtPath replaces exactly the node named by a Path (used by the
// generator, which must rewrite one occurrence at a time to preserve
// output diversity), while structural replacement of every occurrence of
// a subformula lives in package rules, next to the equivalence rules that
// need it.
//
// Grammar (descending precedence):
//
//	biconditional ::= implication ("<->" implication)*
//	implication   ::= disjunction ("->" implication)?
//	disjunction   ::= conjunction ("|" conjunction)*
//	conjunction   ::= negation ("&" negation)*
//	negation      ::= "~" negation | atom
//	atom          ::= identifier | "(" biconditional ")" | "[" ... "]" |
//	                   "{" ... "}" | contradiction-symbol
//
// Implication is right-associative; surface forms for each connective are
// accepted liberally (see parser.go for the full symbol table).
package formula
