package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func smallValidWorld(t *testing.T) *World {
	t.Helper()

	h := &Header{WorldName: "Tiny", WorldID: 1, XTiles: 2, YTiles: 2}
	h.MarkPopulated()

	m, err := NewMap(2, 2)
	require.NoError(t, err)

	f := &Footer{Validity: true, Title: "Tiny", WorldID: 1}
	f.MarkPopulated()

	w := &World{
		Version:        SupportedVersion,
		TileTypeCount:  int16(DefaultTileTypeCount),
		TileImportance: make([]bool, DefaultTileTypeCount),
		Header:         h,
		Map:            m,
		Chests:         &Chests{},
		Signs:          &Signs{},
		NPCs:           &NPCs{},
		Footer:         f,
	}
	require.True(t, w.Valid())
	return w
}

func TestWorld_SaveLoad_RoundTrip(t *testing.T) {
	w := smallValidWorld(t)

	data, err := Save(w)
	require.NoError(t, err)

	got, err := Load(data)
	require.NoError(t, err)

	require.Equal(t, w.Header, got.Header)
	require.Equal(t, w.Map, got.Map)
	require.Equal(t, w.Chests, got.Chests)
	require.Equal(t, w.Signs, got.Signs)
	require.Equal(t, w.NPCs, got.NPCs)
	require.Equal(t, w.Footer, got.Footer)

	roundTripped, err := Save(got)
	require.NoError(t, err)
	require.Equal(t, data, roundTripped, "save(load(bytes)) must be byte-identical to bytes")
}

func TestWorld_Save_SectionPointerConsistency(t *testing.T) {
	w := smallValidWorld(t)

	data, err := Save(w)
	require.NoError(t, err)

	got, err := Load(data)
	require.NoError(t, err)

	// pointer[0] must point exactly at the first byte past the preamble.
	expected := preambleLen(len(w.TileImportance))
	require.Equal(t, expected, int(got.SectionPointers[0]))

	// pointer[1] must equal pointer[0] plus the header section's
	// encoded length.
	headerBytes, err := got.Header.Save()
	require.NoError(t, err)
	require.Equal(t, expected+len(headerBytes), int(got.SectionPointers[1]))
}

func TestWorld_Save_RejectsIncompleteWorld(t *testing.T) {
	w := smallValidWorld(t)
	w.Footer = &Footer{}

	_, err := Save(w)
	require.Error(t, err)
}

func TestWorld_Save_RejectsWrongTileImportanceLength(t *testing.T) {
	w := smallValidWorld(t)
	w.TileImportance = make([]bool, 10)
	w.TileTypeCount = 10

	_, err := Save(w)
	require.Error(t, err)
}

func TestLoad_RejectsUnsupportedVersion(t *testing.T) {
	w := NewWriter()
	w.WriteI32(101)
	_, err := Load(w.Bytes())
	require.Error(t, err)
}

func TestLoad_RejectsPointerMismatch(t *testing.T) {
	w := smallValidWorld(t)
	data, err := Save(w)
	require.NoError(t, err)

	// Corrupt the first section pointer so it no longer matches where
	// the header section actually begins.
	corrupt := make([]byte, len(data))
	copy(corrupt, data)
	corrupt[6] ^= 0xFF

	_, err = Load(corrupt)
	require.Error(t, err)
}

func TestWorld_TitleMatchesWorldName(t *testing.T) {
	w := smallValidWorld(t)
	require.True(t, w.TitleMatchesWorldName())

	w.Footer.Title = "Different"
	require.False(t, w.TitleMatchesWorldName())
}

func TestPackUnpackImportance_RoundTrip(t *testing.T) {
	importance := makeImportance(20, 0, 5, 19)
	packed := packImportance(importance)
	require.Equal(t, importance, unpackImportance(packed, len(importance)))
}
