package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/plangen/pkg/domain"
	"github.com/aretw0/plangen/pkg/encoding"
)

func TestDefault(t *testing.T) {
	r := Default()
	assert.Equal(t, []string{"grid", "tireworld"}, r.Names())

	g, err := r.Lookup("tireworld")
	require.NoError(t, err)
	assert.Equal(t, "layers", g.SizeName)
	assert.Equal(t, 2, g.MinSize)

	in, err := g.Build(3)
	require.NoError(t, err)
	enc, err := g.Encode(in, encoding.ModePPLTL)
	require.NoError(t, err)
	assert.Equal(t, "tireworld", enc.Domain)
	assert.Equal(t, 3, enc.Size)
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Default().Lookup("blocksworld")
	assert.ErrorIs(t, err, domain.ErrUnknownDomain)
}

func TestRegister_Overwrites(t *testing.T) {
	r := NewRegistry()
	r.Register(Generator{Name: "toy", Summary: "first"})
	r.Register(Generator{Name: "toy", Summary: "second"})

	g, err := r.Lookup("toy")
	require.NoError(t, err)
	assert.Equal(t, "second", g.Summary)
	assert.Equal(t, []string{"toy"}, r.Names())
}

func TestStartOf(t *testing.T) {
	r := Default()

	g, err := r.Lookup("grid")
	require.NoError(t, err)
	in, err := g.Build(2)
	require.NoError(t, err)
	start, ok := g.StartOf(in)
	assert.True(t, ok)
	assert.Equal(t, domain.Location{I: 1, J: 1}, start)

	toy := Generator{Name: "toy"}
	start, ok = toy.StartOf(&domain.Instance{Locations: []domain.Location{{I: 2, J: 5}, {I: 1, J: 1}}})
	assert.True(t, ok)
	assert.Equal(t, domain.Location{I: 2, J: 5}, start)

	_, ok = toy.StartOf(&domain.Instance{})
	assert.False(t, ok)
}
