package analysis

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/almostsurely/tsculpt/internal/core"
)

func TestComputeMapStats_MatchesSequentialPass(t *testing.T) {
	m, err := core.NewMap(6, 4)
	require.NoError(t, err)

	m.Tiles[0][0] = core.Tile{Active: true, TileType: 1, U: -1, V: -1}
	m.Tiles[0][1] = core.Tile{Active: true, TileType: 1, U: -1, V: -1, WireRed: true}
	m.Tiles[3][2] = core.Tile{Active: true, TileType: 2, U: -1, V: -1, LiquidType: core.LiquidWater, LiquidAmount: core.Some(uint8(200))}

	got, err := ComputeMapStats(m)
	require.NoError(t, err)
	require.Len(t, got.Columns, 6)

	var want MapStats
	for x, column := range m.Tiles {
		want.Columns = append(want.Columns, columnStats(x, column))
	}

	require.Equal(t, want, *got)
}

func TestMapStats_Totals(t *testing.T) {
	m, err := core.NewMap(2, 2)
	require.NoError(t, err)
	m.Tiles[0][0] = core.Tile{Active: true, TileType: 5, U: -1, V: -1}
	m.Tiles[1][1] = core.Tile{Active: true, TileType: 5, U: -1, V: -1}

	stats, err := ComputeMapStats(m)
	require.NoError(t, err)

	totals := stats.Totals()
	require.Equal(t, 2, totals.ActiveTiles)
	require.Equal(t, 2, totals.DistinctKind[5])
}
