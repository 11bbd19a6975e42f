package core

import "github.com/almostsurely/tsculpt/internal/utils"

// EncodeColumn writes one X column's y_tiles cells, coalescing
// structurally-equal adjacent tiles into runs. A run of up to 255
// additional repeats gets a one-byte count and a longer one a two-byte
// count; encodeRun splits runs that exceed a two-byte count. Runs never
// cross column boundaries.
func EncodeColumn(w *Writer, column []Tile, importance []bool) error {
	i := 0
	for i < len(column) {
		tile := column[i]
		run := 0
		j := i + 1
		for j < len(column) && column[j] == tile {
			run++
			j++
		}

		if err := encodeRun(w, tile, run, importance); err != nil {
			return err
		}

		i = j
	}
	return nil
}

// encodeRun splits a run longer than 65535 additional repeats into
// multiple tile blocks, since a single block's count field tops out at
// a 16-bit value; ordinary worlds never approach this, but the codec
// must not silently truncate a pathological one.
func encodeRun(w *Writer, tile Tile, run int, importance []bool) error {
	const maxRun = 0xFFFF
	for run > maxRun {
		if err := encodeTileBlock(w, tile, maxRun, importance); err != nil {
			return err
		}
		// The block just written covers the tile plus maxRun repeats.
		run -= maxRun + 1
	}
	return encodeTileBlock(w, tile, run, importance)
}

// encodeTileBlock writes one tile's header-and-run block through a
// pooled scratch buffer instead of appending straight into the
// column's growing output. A world's map section runs through
// millions of these tiny per-tile blocks, so reusing one small buffer
// per call avoids a matching number of small heap allocations.
func encodeTileBlock(w *Writer, tile Tile, run int, importance []bool) error {
	scratch := utils.GetBuffer(0)
	defer utils.ReleaseBuffer(scratch)

	sw := &Writer{buf: scratch}
	if err := EncodeTile(sw, tile, run, importance); err != nil {
		return err
	}
	w.WriteBytes(sw.buf)
	return nil
}

// DecodeColumn reads tiles until it has produced exactly yTiles cells,
// expanding each block's run count into cloned tiles. Underflow or
// overflow of the produced count is a CorruptFormat error.
func DecodeColumn(r *Reader, yTiles int, importance []bool) ([]Tile, error) {
	column := make([]Tile, 0, yTiles)

	for len(column) < yTiles {
		tile, run, err := DecodeTile(r, importance)
		if err != nil {
			return nil, err
		}

		column = append(column, tile)
		for k := 0; k < run; k++ {
			if len(column) >= yTiles {
				return nil, utils.Corrupt("column run overflowed y_tiles")
			}
			column = append(column, tile.Clone())
		}
	}

	if len(column) != yTiles {
		return nil, utils.Corrupt("column produced wrong tile count")
	}

	return column, nil
}
