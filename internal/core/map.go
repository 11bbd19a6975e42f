package core

import "github.com/almostsurely/tsculpt/internal/utils"

// Map is the two-dimensional tile grid, indexed [x][y], with
// dimensions inherited from the header.
type Map struct {
	XTiles, YTiles int32
	Tiles          [][]Tile // Tiles[x][y]
}

// NewMap returns an xTiles*yTiles grid of default (empty, inactive)
// tiles, which the column codec will encode compactly.
func NewMap(xTiles, yTiles int32) (*Map, error) {
	if _, err := utils.ValidateGridDimensions(xTiles, yTiles); err != nil {
		return nil, err
	}

	m := &Map{XTiles: xTiles, YTiles: yTiles}
	m.Tiles = make([][]Tile, xTiles)
	for x := range m.Tiles {
		col := make([]Tile, yTiles)
		for y := range col {
			col[y] = NewTile()
		}
		m.Tiles[x] = col
	}
	return m, nil
}

// LoadMap decodes the map section, column by column, Y ascending
// within each column.
func LoadMap(r *Reader, xTiles, yTiles int32, importance []bool) (*Map, error) {
	if _, err := utils.ValidateGridDimensions(xTiles, yTiles); err != nil {
		return nil, err
	}

	m := &Map{XTiles: xTiles, YTiles: yTiles, Tiles: make([][]Tile, xTiles)}
	for x := int32(0); x < xTiles; x++ {
		col, err := DecodeColumn(r, int(yTiles), importance)
		if err != nil {
			return nil, err
		}
		m.Tiles[x] = col
	}
	return m, nil
}

// Save encodes the map section, column by column.
func (m *Map) Save(importance []bool) ([]byte, error) {
	w := NewWriter()
	for x := int32(0); x < m.XTiles; x++ {
		if err := EncodeColumn(w, m.Tiles[x], importance); err != nil {
			return nil, err
		}
	}
	return w.Bytes(), nil
}

// Valid reports whether the grid is fully rectangular and every cell
// is a valid Tile.
func (m *Map) Valid() bool {
	if m.XTiles <= 0 || m.YTiles <= 0 {
		return false
	}
	if len(m.Tiles) != int(m.XTiles) {
		return false
	}
	for _, col := range m.Tiles {
		if len(col) != int(m.YTiles) {
			return false
		}
		for _, t := range col {
			if !t.Valid() {
				return false
			}
		}
	}
	return true
}
