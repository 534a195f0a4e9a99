package ltl

import "strings"

const (
	opAnd     = " & "
	opOr      = " | "
	opImplies = " -> "
	opIff     = " <-> "
)

// Not prefixes p with a negation, without grouping.
func Not(p string) string { return "!" + p }

// NotGroup negates the grouped p: "!(p)".
func NotGroup(p string) string { return "!(" + p + ")" }

// Group wraps p in parentheses.
func Group(p string) string { return "(" + p + ")" }

// And joins ps with " & ". An empty list yields "".
func And(ps ...string) string { return strings.Join(ps, opAnd) }

// Or joins ps with " | ". An empty list yields "".
func Or(ps ...string) string { return strings.Join(ps, opOr) }

// Implies renders "a -> b".
func Implies(a, b string) string { return a + opImplies + b }

// Iff renders "a <-> b".
func Iff(a, b string) string { return a + opIff + b }

// Next renders "X(p)".
func Next(p string) string { return unary("X", p) }

// Yesterday renders "Y(p)".
func Yesterday(p string) string { return unary("Y", p) }

// Historically renders "H(p)".
func Historically(p string) string { return unary("H", p) }

// Once renders "O(p)".
func Once(p string) string { return unary("O", p) }

// Eventually renders "F(p)".
func Eventually(p string) string { return unary("F", p) }

// Always renders "G(p)".
func Always(p string) string { return unary("G", p) }

func unary(op, p string) string {
	return op + "(" + p + ")"
}
