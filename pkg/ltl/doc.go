/*
Package ltl renders propositional temporal-logic formulas as text and compiles
the two formula families every domain encoding relies on.

The output grammar is consumed verbatim by downstream synthesis tools, so the
helpers here are textual: they never re-parenthesize or normalise their
arguments. Callers decide where grouping goes.

# Operators

	!p        negation            Not, NotGroup
	p & q     conjunction         And
	p | q     disjunction         Or
	p -> q    implication         Implies
	p <-> q   biconditional       Iff
	X(p)      next                Next
	Y(p)      previous            Yesterday
	H(p)      historically        Historically
	O(p)      once                Once
	F(p)      eventually          Eventually
	G(p)      always              Always

# Compilers

  - MutualExclusion: the "any of" disjunction and the pairwise-exclusion conjunction.
  - FrameAxiom / FrameAxioms: fluent persistence from add/delete lists.
*/
package ltl
