package domain

import "fmt"

// Location identifies a cell of the grid or a node of the triangle.
// For the grid I is the row index and J the column index; for the triangle
// I is the depth from the left edge and J the depth from the right edge.
// Both coordinates are 1-based.
type Location struct {
	I int `json:"i" yaml:"i"`
	J int `json:"j" yaml:"j"`
}

// String renders the location as "(i,j)" for logs and diagrams.
func (l Location) String() string {
	return fmt.Sprintf("(%d,%d)", l.I, l.J)
}

// Edge is a directed road between two locations.
type Edge struct {
	From Location `json:"from" yaml:"from"`
	To   Location `json:"to" yaml:"to"`
}
