package tsculpt

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/almostsurely/tsculpt/internal/core"
)

func smallValidWorld(t *testing.T) *World {
	t.Helper()

	h := &Header{WorldName: "Tiny", WorldID: 1, XTiles: 2, YTiles: 2}
	h.MarkPopulated()

	m, err := core.NewMap(2, 2)
	require.NoError(t, err)

	f := &Footer{Validity: true, Title: "Tiny", WorldID: 1}
	f.MarkPopulated()

	w := NewWorld()
	w.Header = h
	w.Map = m
	w.Footer = f
	require.True(t, w.Valid())
	return w
}

func TestLoadSave_RoundTrip(t *testing.T) {
	w := smallValidWorld(t)

	data, err := Save(w)
	require.NoError(t, err)

	got, err := Load(data)
	require.NoError(t, err)
	require.Equal(t, w.Header, got.Header)
}

func TestSaveFileLoadFile_RoundTrip(t *testing.T) {
	w := smallValidWorld(t)
	path := filepath.Join(t.TempDir(), "world.wld")

	require.NoError(t, SaveFile(path, w))

	got, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, w.Header, got.Header)
}

func TestLoadFile_MissingFileReturnsError(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "does-not-exist.wld"))
	require.Error(t, err)
}

func TestSave_RejectsIncompleteWorld(t *testing.T) {
	w := smallValidWorld(t)
	w.Footer = &Footer{}

	_, err := Save(w)
	require.Error(t, err)
}
