package analysis

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/almostsurely/tsculpt/internal/core"
)

// DiffWorlds returns a human-readable structural diff between two
// worlds, or "" if they are identical. Map tiles are compared cell by
// cell; unexported fields on Header/Footer (the populated flag) are
// ignored since they carry no semantic content of their own.
func DiffWorlds(a, b *core.World) string {
	opts := []cmp.Option{
		cmpopts.IgnoreUnexported(core.Header{}, core.Footer{}),
	}
	return cmp.Diff(a, b, opts...)
}

// DiffHeaders returns a human-readable diff of just the header section.
func DiffHeaders(a, b *core.Header) string {
	return cmp.Diff(a, b, cmpopts.IgnoreUnexported(core.Header{}))
}
