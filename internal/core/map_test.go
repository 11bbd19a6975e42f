package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewMap_Dimensions(t *testing.T) {
	m, err := NewMap(4, 3)
	require.NoError(t, err)
	require.Len(t, m.Tiles, 4)
	for _, col := range m.Tiles {
		require.Len(t, col, 3)
	}
	require.True(t, m.Valid())
}

func TestNewMap_RejectsBadDimensions(t *testing.T) {
	_, err := NewMap(0, 10)
	require.Error(t, err)

	_, err = NewMap(10, -1)
	require.Error(t, err)
}

func TestMap_SaveLoad_RoundTrip(t *testing.T) {
	importance := makeImportance(2, 1)

	m, err := NewMap(3, 2)
	require.NoError(t, err)
	m.Tiles[1][0] = Tile{Active: true, TileType: 1, U: 4, V: 5}

	data, err := m.Save(importance)
	require.NoError(t, err)

	got, err := LoadMap(NewReader(data), 3, 2, importance)
	require.NoError(t, err)
	require.Equal(t, m.Tiles, got.Tiles)
}

func TestMap_Valid_RejectsRaggedGrid(t *testing.T) {
	m := &Map{XTiles: 2, YTiles: 2, Tiles: [][]Tile{{NewTile(), NewTile()}, {NewTile()}}}
	require.False(t, m.Valid())
}
