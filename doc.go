/*
Package plangen generates benchmark encodings of planning domains as
pure-past linear temporal logic (PPLTL) formulas.

Each run takes a single size parameter and emits two things: a partition of
the propositions into environment-controlled inputs and agent-controlled
outputs, and one closed formula conjoining the initial state, the transition
and frame constraints, the mutual exclusions and the goal. The output is meant
for synthesis tools that read F(pLTL) specifications.

# Domains

  - grid: an N×N slippery grid world with moves l, r, u and d.
  - tireworld: the triangle tireworld with N layers, roads and flat tires.

# Usage

	package main

	import (
		"context"
		"log"
		"os"

		"github.com/aretw0/plangen"
		"github.com/aretw0/plangen/pkg/encoding"
	)

	func main() {
		gen := plangen.New()

		enc, err := gen.Generate(context.Background(), "tireworld", 3)
		if err != nil {
			log.Fatal(err)
		}

		// .inputs / .outputs lines followed by the formula
		if err := encoding.Write(os.Stdout, enc, encoding.FormatPartition); err != nil {
			log.Fatal(err)
		}
	}

# Pipeline

Every domain runs the same pure pipeline: build locations and their
adjacency, name the propositions, build the action model, compile mutual
exclusions and frame axioms, and assemble the formula. Nothing is mutated
after construction, so regenerating with the same size yields byte-identical
output.
*/
package plangen
