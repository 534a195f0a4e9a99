package tireworld

import "github.com/aretw0/plangen/pkg/domain"

// MinLayers is the smallest triangle the encoding supports.
const MinLayers = 2

// Layers builds the triangle, top layer first. Layer L holds the locations
// (i, L-i+1) for i = 1..L, so both coordinates sum to L+1.
func Layers(n int) [][]domain.Location {
	layers := make([][]domain.Location, n)
	for l := 1; l <= n; l++ {
		layer := make([]domain.Location, l)
		for i := 1; i <= l; i++ {
			layer[i-1] = domain.Location{I: i, J: l - i + 1}
		}
		layers[l-1] = layer
	}
	return layers
}

// Flatten lists the locations layer by layer.
func Flatten(layers [][]domain.Location) []domain.Location {
	var out []domain.Location
	for _, layer := range layers {
		out = append(out, layer...)
	}
	return out
}

// layerGrid offers bounds-checked lookups into the triangle.
type layerGrid [][]domain.Location

// at returns the location at (layer, pos), both 0-based, or false if the
// probe falls outside the triangle.
func (g layerGrid) at(layer, pos int) (domain.Location, bool) {
	if layer < 0 || layer >= len(g) {
		return domain.Location{}, false
	}
	if pos < 0 || pos >= len(g[layer]) {
		return domain.Location{}, false
	}
	return g[layer][pos], true
}

// probes are the neighbour offsets (layer, pos) tried from every cell, in
// order: right, left, upper-right, upper-left, lower-right, lower-left.
var probes = [][2]int{
	{0, +1},
	{0, -1},
	{-1, 0},
	{-1, -1},
	{+1, +1},
	{+1, 0},
}

// Roads derives the directed road relation. Cells are visited layer by layer
// and each probe outside the triangle is discarded.
func Roads(layers [][]domain.Location) []domain.Edge {
	g := layerGrid(layers)
	seen := make(map[domain.Edge]bool)

	var edges []domain.Edge
	for li, layer := range layers {
		for pi, from := range layer {
			for _, p := range probes {
				to, ok := g.at(li+p[0], pi+p[1])
				if !ok {
					continue
				}
				e := domain.Edge{From: from, To: to}
				if seen[e] {
					continue
				}
				seen[e] = true
				edges = append(edges, e)
			}
		}
	}
	return edges
}
