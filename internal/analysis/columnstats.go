// Package analysis provides read-only inspection helpers over a loaded
// World: per-column tile statistics and structural diffing between two
// worlds.
package analysis

import (
	"golang.org/x/sync/errgroup"

	"github.com/almostsurely/tsculpt/internal/core"
)

// ColumnStats summarizes one X column of a Map.
type ColumnStats struct {
	X            int
	ActiveTiles  int
	LiquidTiles  int
	WiredTiles   int
	DistinctKind map[uint16]int
}

// MapStats aggregates ColumnStats across an entire Map.
type MapStats struct {
	Columns []ColumnStats
}

// columnStats computes the stats for a single column; pulled out of
// ComputeMapStats so each goroutine has a self-contained unit of work.
// columnStats only tallies active cells, so LiquidTiles/WiredTiles miss
// liquid or wire sitting on an otherwise-empty (inactive) tile; fine for
// a summary count, not a substitute for walking the column directly.
func columnStats(x int, column []core.Tile) ColumnStats {
	stats := ColumnStats{X: x, DistinctKind: make(map[uint16]int)}
	for _, tile := range column {
		if !tile.Active {
			continue
		}
		stats.ActiveTiles++
		stats.DistinctKind[tile.TileType]++
		if tile.LiquidType != core.LiquidNone {
			stats.LiquidTiles++
		}
		if tile.WireRed || tile.WireGreen || tile.WireBlue {
			stats.WiredTiles++
		}
	}
	return stats
}

// ComputeMapStats computes per-column statistics for every column of m
// concurrently, one goroutine per column, fanned out with an
// errgroup.Group the way minitrd's boot sequence parallelizes its
// independent setup steps.
func ComputeMapStats(m *core.Map) (*MapStats, error) {
	columns := make([]ColumnStats, len(m.Tiles))

	var eg errgroup.Group
	for x, column := range m.Tiles {
		x, column := x, column
		eg.Go(func() error {
			columns[x] = columnStats(x, column)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return &MapStats{Columns: columns}, nil
}

// Totals sums every column's statistics into a single summary.
func (s *MapStats) Totals() ColumnStats {
	total := ColumnStats{X: -1, DistinctKind: make(map[uint16]int)}
	for _, col := range s.Columns {
		total.ActiveTiles += col.ActiveTiles
		total.LiquidTiles += col.LiquidTiles
		total.WiredTiles += col.WiredTiles
		for kind, count := range col.DistinctKind {
			total.DistinctKind[kind] += count
		}
	}
	return total
}
