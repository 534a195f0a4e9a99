/*
Package tireworld encodes the triangle tireworld.

A car drives over a triangular road network. Layer L of the triangle holds L
locations; a location is identified by its depth from the left and from the
right edge. Every move may leave the car with a flat tire, which can only be
changed where a spare is available.

The car's position, the spare tires and the flat tire are fluents governed by
frame axioms compiled from the actions' add/delete lists. Roads never change
and are asserted historically.
*/
package tireworld
