package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeColumn_RoundTrip(t *testing.T) {
	importance := makeImportance(2)

	empty := NewTile()
	dirt := Tile{Active: true, TileType: 1, U: -1, V: -1}

	column := make([]Tile, 0, 20)
	for i := 0; i < 10; i++ {
		column = append(column, empty)
	}
	for i := 0; i < 10; i++ {
		column = append(column, dirt)
	}

	w := NewWriter()
	require.NoError(t, EncodeColumn(w, column, importance))

	got, err := DecodeColumn(NewReader(w.Bytes()), len(column), importance)
	require.NoError(t, err)
	require.Equal(t, column, got)
}

func TestEncodeColumn_RLEOptimality(t *testing.T) {
	// A column of k identical tiles encodes as one header block plus
	// one or two count bytes, regardless of k.
	importance := makeImportance(1)
	tile := NewTile()

	for _, k := range []int{1, 255, 256, 65536} {
		column := make([]Tile, k)
		for i := range column {
			column[i] = tile
		}

		w := NewWriter()
		require.NoError(t, EncodeColumn(w, column, importance))

		blocks := k / (0xFFFF + 1)
		if k%(0xFFFF+1) != 0 {
			blocks++
		}
		if blocks == 0 {
			blocks = 1
		}
		// Each block is 1 header byte plus either 0, 1, or 2 count
		// bytes; an all-empty tile never needs extended header bytes.
		require.LessOrEqual(t, w.Len(), blocks*3)
	}
}

func TestDecodeColumn_RunOverflowIsCorrupt(t *testing.T) {
	importance := makeImportance(1)
	tile := NewTile()

	w := NewWriter()
	require.NoError(t, EncodeTile(w, tile, 10, importance))

	_, err := DecodeColumn(NewReader(w.Bytes()), 5, importance)
	require.Error(t, err)
}

func TestDecodeColumn_ProducesExactYTiles(t *testing.T) {
	importance := makeImportance(1)

	for _, yTiles := range []int{1, 7, 300} {
		w := NewWriter()
		require.NoError(t, EncodeColumn(w, make([]Tile, yTiles), importance))

		got, err := DecodeColumn(NewReader(w.Bytes()), yTiles, importance)
		require.NoError(t, err)
		require.Len(t, got, yTiles)
	}
}
