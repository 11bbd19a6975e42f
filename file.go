// Package tsculpt provides a pure Go implementation for reading and
// writing Terraria world-save files. It supports format version 102,
// with read and write access to the world header, tile map, chests,
// signs, and NPCs.
package tsculpt

import (
	"os"

	"github.com/almostsurely/tsculpt/internal/core"
	"github.com/almostsurely/tsculpt/internal/utils"
)

// World is the root aggregate of a decoded world save.
type World = core.World

// Header is the world's fixed-schema metadata record.
type Header = core.Header

// Map is the world's two-dimensional tile grid.
type Map = core.Map

// Tile is a single cell of a Map.
type Tile = core.Tile

// Chests, Signs, and NPCs are the remaining world sections.
type (
	Chests = core.Chests
	Signs  = core.Signs
	NPCs   = core.NPCs
	Footer = core.Footer
)

// NewWorld returns an empty World with DefaultTileTypeCount entries in
// its tile-importance bitmap, ready to be populated by a caller.
func NewWorld() *World {
	return core.NewWorld()
}

// Load decodes a complete world save from an in-memory byte slice.
func Load(data []byte) (*World, error) {
	return core.Load(data)
}

// Save encodes w into a byte slice. Save refuses to serialise a world
// that fails Valid.
func Save(w *World) ([]byte, error) {
	return core.Save(w)
}

// LoadFile reads path and decodes it as a world save.
func LoadFile(path string) (*World, error) {
	//nolint:gosec // G304: caller-provided path is the point of this function
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, utils.WrapError(utils.KindInvalidArgument, "reading world file", err)
	}
	return Load(data)
}

// SaveFile encodes w and writes it to path, creating or truncating the
// file as needed.
func SaveFile(path string, w *World) error {
	data, err := Save(w)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return utils.WrapError(utils.KindInvalidArgument, "writing world file", err)
	}
	return nil
}
