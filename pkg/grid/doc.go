/*
Package grid encodes the slippery grid world.

An agent moves on an N×N board with the actions l, r, u and d. Movement is
slippery: a move may carry the agent one or two cells in the chosen
direction. Rows r1..rN and columns c1..cN are environment propositions; a
location is the conjunction of one row and one column and is never
materialized as its own proposition.

Moves are gated structurally (no move off the board), so the grid compiles
its transitions directly from index arithmetic instead of add/delete lists.
*/
package grid
