package tireworld

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/plangen/pkg/domain"
)

func loc(i, j int) domain.Location { return domain.Location{I: i, J: j} }

func TestLayers(t *testing.T) {
	layers := Layers(3)
	require.Len(t, layers, 3)
	assert.Equal(t, []domain.Location{loc(1, 1)}, layers[0])
	assert.Equal(t, []domain.Location{loc(1, 2), loc(2, 1)}, layers[1])
	assert.Equal(t, []domain.Location{loc(1, 3), loc(2, 2), loc(3, 1)}, layers[2])

	for n := 1; n <= 8; n++ {
		assert.Len(t, Flatten(Layers(n)), n*(n+1)/2, "n=%d", n)
	}
}

func TestLayerGrid_At(t *testing.T) {
	g := layerGrid(Layers(2))

	l, ok := g.at(1, 1)
	assert.True(t, ok)
	assert.Equal(t, loc(2, 1), l)

	for _, probe := range [][2]int{{-1, 0}, {0, 1}, {2, 0}, {1, -1}, {1, 2}} {
		_, ok := g.at(probe[0], probe[1])
		assert.False(t, ok, "probe %v", probe)
	}
}

func TestRoads_TwoLayers(t *testing.T) {
	roads := Roads(Layers(2))
	assert.Equal(t, []domain.Edge{
		{From: loc(1, 1), To: loc(2, 1)},
		{From: loc(1, 1), To: loc(1, 2)},
		{From: loc(1, 2), To: loc(2, 1)},
		{From: loc(1, 2), To: loc(1, 1)},
		{From: loc(2, 1), To: loc(1, 2)},
		{From: loc(2, 1), To: loc(1, 1)},
	}, roads)
}

func TestRoads_SymmetricAndUnique(t *testing.T) {
	for n := 2; n <= 7; n++ {
		roads := Roads(Layers(n))

		set := make(map[domain.Edge]bool, len(roads))
		for _, e := range roads {
			assert.False(t, set[e], "duplicate edge %v", e)
			assert.NotEqual(t, e.From, e.To)
			set[e] = true
		}
		for _, e := range roads {
			assert.True(t, set[domain.Edge{From: e.To, To: e.From}], "edge %v has no reverse", e)
		}

		// Each of the n(n-1)/2 small upward triangles contributes three
		// undirected sides, all distinct: 3n(n-1)/2 sides, doubled for direction.
		assert.Len(t, roads, 3*n*(n-1), "n=%d", n)
	}
}
