package tireworld

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/plangen/pkg/domain"
	"github.com/aretw0/plangen/pkg/encoding"
	"github.com/aretw0/plangen/pkg/ltl"
)

func TestBuild_TwoLayers(t *testing.T) {
	in, err := Build(2)
	require.NoError(t, err)
	require.NoError(t, in.Validate())

	assert.Equal(t, []domain.Location{loc(1, 1), loc(1, 2), loc(2, 1)}, in.Locations)
	assert.Equal(t, []string{
		"vehicleat_11", "vehicleat_12", "vehicleat_21",
		"sparein_11", "sparein_12", "sparein_21",
		"road_11_21", "road_11_12", "road_12_21", "road_12_11", "road_21_12", "road_21_11",
		"flattire",
	}, in.Partition.Inputs)
	assert.Equal(t, []string{
		"movecar_11_21", "movecar_11_12", "movecar_12_21", "movecar_12_11", "movecar_21_12", "movecar_21_11",
		"changetire_11", "changetire_12", "changetire_21",
	}, in.Partition.Outputs)
	assert.Equal(t, []string{"!flattire", "vehicleat_11", "sparein_12", "sparein_11", "sparein_21"}, in.Init)
	assert.Equal(t, []string{"vehicleat_21"}, in.Goal)
	assert.Contains(t, in.Partition.Outputs, "movecar_11_12")
	assert.Contains(t, in.Partition.Outputs, "movecar_12_11")
}

func TestBuild_InvalidSize(t *testing.T) {
	for _, n := range []int{-1, 0, 1} {
		_, err := Build(n)
		assert.ErrorIs(t, err, domain.ErrInvalidSize, "n=%d", n)
	}
}

func TestBuild_RoadsAndMovesInBijection(t *testing.T) {
	for n := 2; n <= 6; n++ {
		in, err := Build(n)
		require.NoError(t, err)

		assert.Len(t, in.Locations, n*(n+1)/2)

		moves := make(map[domain.Edge]int)
		for _, a := range in.Actions {
			if a.ID.Kind == domain.KindMoveCar {
				moves[domain.Edge{From: a.ID.From, To: a.ID.To}]++
			}
		}
		assert.Len(t, moves, len(in.Edges))
		for _, e := range in.Edges {
			assert.Equal(t, 1, moves[e], "edge %v", e)
		}
	}
}

func TestActions_Model(t *testing.T) {
	in, err := Build(2)
	require.NoError(t, err)

	move, ok := in.Action(domain.ActionID{Kind: domain.KindMoveCar, From: loc(1, 1), To: loc(1, 2)})
	require.True(t, ok)
	assert.Equal(t, "movecar_11_12", move.Name)
	assert.Equal(t, "(vehicleat_11 & road_11_12 & !flattire)", move.Precondition)
	assert.Equal(t, []string{"vehicleat_12"}, move.Add)
	assert.Equal(t, []string{"vehicleat_11"}, move.Del)

	change, ok := in.Action(domain.ActionID{Kind: domain.KindChangeTire, From: loc(2, 1)})
	require.True(t, ok)
	assert.Equal(t, "changetire_21", change.Name)
	assert.Equal(t, "(sparein_21 & vehicleat_21 & flattire)", change.Precondition)
	assert.Empty(t, change.Add)
	assert.Equal(t, []string{"sparein_21", "flattire"}, change.Del)
	assert.False(t, change.Deletes("vehicleat_21"))
}

func TestEncode_FrameAxioms_TwoLayers(t *testing.T) {
	enc, err := Generate(2, encoding.ModePPLTL)
	require.NoError(t, err)

	byFluent := make(map[string]ltl.Axiom)
	for _, a := range enc.Axioms {
		_, dup := byFluent[a.Fluent]
		assert.False(t, dup, "fluent %s compiled twice", a.Fluent)
		byFluent[a.Fluent] = a
	}
	assert.Len(t, byFluent, 7)

	assert.Equal(t, ltl.ShapeDecay, byFluent["sparein_11"].Shape)
	assert.Equal(t,
		"(sparein_11 <-> Y(sparein_11 & (!((changetire_11 & (sparein_11 & vehicleat_11 & flattire))))))",
		byFluent["sparein_11"].Formula)

	assert.Equal(t, ltl.ShapeBoth, byFluent["vehicleat_11"].Shape)
	assert.Equal(t,
		"(vehicleat_11 <-> (Y((movecar_12_11 & (vehicleat_12 & road_12_11 & !flattire)) | "+
			"(movecar_21_11 & (vehicleat_21 & road_21_11 & !flattire))) | "+
			"Y(vehicleat_11 & (!((movecar_11_21 & (vehicleat_11 & road_11_21 & !flattire)) | "+
			"(movecar_11_12 & (vehicleat_11 & road_11_12 & !flattire)))))))",
		byFluent["vehicleat_11"].Formula)

	assert.Equal(t, ltl.ShapeDecay, byFluent["flattire"].Shape)
	assert.Equal(t,
		"(flattire <-> Y(flattire & (!((changetire_11 & (sparein_11 & vehicleat_11 & flattire)) | "+
			"(changetire_12 & (sparein_12 & vehicleat_12 & flattire)) | "+
			"(changetire_21 & (sparein_21 & vehicleat_21 & flattire))))))",
		byFluent["flattire"].Formula)
}

func TestEncode_PPLTL_Shape(t *testing.T) {
	enc, err := Generate(2, encoding.ModePPLTL)
	require.NoError(t, err)

	acts, actPairs := ltl.MutualExclusion(enc.Partition.Outputs)
	assert.True(t, strings.HasPrefix(enc.Formula, "F(H(("+acts+") & "+actPairs+") & ((!flattire & vehicleat_11 & sparein_12 & sparein_11 & sparein_21) & H(((vehicleat_11 | vehicleat_12 | vehicleat_21) & !(vehicleat_11 & vehicleat_12) & !(vehicleat_11 & vehicleat_21) & !(vehicleat_12 & vehicleat_21)) & ("))
	assert.True(t, strings.HasSuffix(enc.Formula,
		") & H(road_11_21 & road_11_12 & road_12_21 & road_12_11 & road_21_12 & road_21_11))) -> (O(vehicleat_21)))"))
	assert.Equal(t, 36, strings.Count(actPairs, "!("))
	assert.Equal(t, strings.Count(enc.Formula, "("), strings.Count(enc.Formula, ")"))

	for _, a := range enc.Axioms {
		assert.Contains(t, enc.Formula, a.Formula)
	}
	assert.Equal(t, "O(vehicleat_21)", enc.Sections.Goal)
}

func TestEncode_PPLTL_Golden(t *testing.T) {
	for _, layers := range []int{2, 3} {
		t.Run(fmt.Sprintf("layers=%d", layers), func(t *testing.T) {
			want, err := os.ReadFile(filepath.Join("testdata", fmt.Sprintf("ppltl_%d.txt", layers)))
			require.NoError(t, err)

			enc, err := Generate(layers, encoding.ModePPLTL)
			require.NoError(t, err)
			got, err := encoding.Render(enc, encoding.FormatArgs)
			require.NoError(t, err)
			assert.Equal(t, string(want), got)
		})
	}
}

func TestEncode_LTLf_TwoLayers(t *testing.T) {
	enc, err := Generate(2, encoding.ModeLTLf)
	require.NoError(t, err)

	assert.Contains(t, enc.Sections.Agent, "(!(vehicleat_11 & road_11_21 & !flattire) -> X(!movecar_11_21))")
	assert.Contains(t, enc.Sections.Agent, "(!(sparein_12 & vehicleat_12 & flattire) -> X(!changetire_12))")
	assert.Contains(t, enc.Sections.Environment, "(vehicleat_12 -> X(movecar_12_21 -> (vehicleat_21 & (flattire | !flattire))))")
	assert.Contains(t, enc.Sections.Environment, "(sparein_11 & vehicleat_11 -> X(changetire_11 -> (!sparein_11 & !flattire & vehicleat_11)))")
	assert.Contains(t, enc.Sections.Environment, "G((!sparein_11 -> X(!sparein_11)) & ((sparein_11 & !changetire_11) -> X(sparein_11)) & ")
	assert.Contains(t, enc.Sections.Environment, "G(road_11_21 & ")
	assert.Equal(t, "F(vehicleat_21)", enc.Sections.Goal)
	assert.Empty(t, enc.Axioms)
	assert.Equal(t, strings.Count(enc.Formula, "("), strings.Count(enc.Formula, ")"))
}

func TestEncode_Idempotent(t *testing.T) {
	a, err := Generate(5, encoding.ModePPLTL)
	require.NoError(t, err)
	b, err := Generate(5, encoding.ModePPLTL)
	require.NoError(t, err)

	ra, err := encoding.Render(a, encoding.FormatPartition)
	require.NoError(t, err)
	rb, err := encoding.Render(b, encoding.FormatPartition)
	require.NoError(t, err)
	assert.Equal(t, ra, rb)
}

func TestBuild_WideTriangleStaysInjective(t *testing.T) {
	in, err := Build(12)
	require.NoError(t, err)
	assert.NoError(t, in.Validate())
	assert.Contains(t, in.Partition.Inputs, "vehicleat_0101")
	assert.Equal(t, []string{"vehicleat_0201"}, in.Goal)
}
