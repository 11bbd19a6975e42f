package core

import "github.com/almostsurely/tsculpt/internal/utils"

// SupportedVersion is the only on-disk layout version this codec
// writes; MinSupportedVersion is the floor this codec will read.
const (
	SupportedVersion    int32 = 102
	MinSupportedVersion int32 = 102
	sectionCount        int16 = 10

	// DefaultTileTypeCount is the tile-type count this codec writes on
	// save; Save refuses a world whose tile-importance bitmap has any
	// other length, including a loaded world that reported another count.
	DefaultTileTypeCount int = 340
)

// World is the root aggregate: format version, section-pointer table,
// tile-importance bitmap, and the six section records.
type World struct {
	Version         int32
	SectionPointers [10]int32
	TileTypeCount   int16
	TileImportance  []bool

	Header *Header
	Map    *Map
	Chests *Chests
	Signs  *Signs
	NPCs   *NPCs
	Footer *Footer
}

// NewWorld returns an empty World ready to be populated, with a
// tile-importance bitmap of DefaultTileTypeCount entries (all false).
func NewWorld() *World {
	return &World{
		Version:        SupportedVersion,
		TileTypeCount:  int16(DefaultTileTypeCount),
		TileImportance: make([]bool, DefaultTileTypeCount),
		Header:         &Header{},
		Chests:         &Chests{},
		Signs:          &Signs{},
		NPCs:           &NPCs{},
		Footer:         &Footer{},
	}
}

// preambleLen is the size, in bytes, of everything before section 0:
// version(4) + section_count(2) + 10 pointers(40) + tile_type_count(2)
// + the packed importance bitmap.
func preambleLen(tileTypeCount int) int {
	bitmapLen := (tileTypeCount + 7) / 8
	return 4 + 2 + int(sectionCount)*4 + 2 + bitmapLen
}

// packImportance packs the tile-importance bitmap into
// ceil(n/8) bytes, bit i of byte i/8, LSB first.
func packImportance(importance []bool) []byte {
	out := make([]byte, (len(importance)+7)/8)
	for i, v := range importance {
		if v {
			out[i/8] |= 1 << uint(i%8)
		}
	}
	return out
}

// unpackImportance reverses packImportance for n booleans.
func unpackImportance(packed []byte, n int) []bool {
	out := make([]bool, n)
	for i := range out {
		out[i] = packed[i/8]&(1<<uint(i%8)) != 0
	}
	return out
}

// Load parses a byte stream into a World. Every section transition
// asserts that the cursor position equals the declared pointer.
func Load(data []byte) (*World, error) {
	r := NewReader(data)
	w := &World{}

	version, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	if version < MinSupportedVersion {
		return nil, utils.UnsupportedVersion(version, MinSupportedVersion)
	}
	w.Version = version

	secCount, err := r.ReadI16()
	if err != nil {
		return nil, err
	}
	if secCount < 6 || int(secCount) > utils.MaxSectionCount {
		return nil, utils.Corrupt("implausible section count")
	}

	pointers := make([]int32, secCount)
	for i := range pointers {
		if pointers[i], err = r.ReadI32(); err != nil {
			return nil, err
		}
	}
	for i := 0; i < len(w.SectionPointers) && i < len(pointers); i++ {
		w.SectionPointers[i] = pointers[i]
	}

	tileTypeCount, err := r.ReadI16()
	if err != nil {
		return nil, err
	}
	if tileTypeCount < 0 {
		return nil, utils.Corrupt("negative tile type count")
	}
	w.TileTypeCount = tileTypeCount

	bitmapLen := (int(tileTypeCount) + 7) / 8
	packed, err := r.ReadBytes(bitmapLen)
	if err != nil {
		return nil, err
	}
	w.TileImportance = unpackImportance(packed, int(tileTypeCount))

	if r.Pos() != int(pointers[0]) {
		return nil, utils.PointerMismatch("header", int(pointers[0]), r.Pos())
	}
	if w.Header, err = LoadHeader(r); err != nil {
		return nil, err
	}

	if r.Pos() != int(pointers[1]) {
		return nil, utils.PointerMismatch("map", int(pointers[1]), r.Pos())
	}
	if w.Map, err = LoadMap(r, w.Header.XTiles, w.Header.YTiles, w.TileImportance); err != nil {
		return nil, err
	}

	if r.Pos() != int(pointers[2]) {
		return nil, utils.PointerMismatch("chests", int(pointers[2]), r.Pos())
	}
	if w.Chests, err = LoadChests(r); err != nil {
		return nil, err
	}

	if r.Pos() != int(pointers[3]) {
		return nil, utils.PointerMismatch("signs", int(pointers[3]), r.Pos())
	}
	if w.Signs, err = LoadSigns(r); err != nil {
		return nil, err
	}

	if r.Pos() != int(pointers[4]) {
		return nil, utils.PointerMismatch("npcs", int(pointers[4]), r.Pos())
	}
	if w.NPCs, err = LoadNPCs(r); err != nil {
		return nil, err
	}

	if r.Pos() != int(pointers[5]) {
		return nil, utils.PointerMismatch("footer", int(pointers[5]), r.Pos())
	}
	if w.Footer, err = LoadFooter(r); err != nil {
		return nil, err
	}

	return w, nil
}

// Valid reports whether every required attribute is populated and
// every child aggregate is itself valid. Save refuses to emit an
// invalid world.
func (w *World) Valid() bool {
	if w.Version == 0 {
		return false
	}
	if len(w.TileImportance) == 0 || len(w.TileImportance) != int(w.TileTypeCount) {
		return false
	}
	if w.Header == nil || !w.Header.Valid() {
		return false
	}
	if w.Map == nil || !w.Map.Valid() {
		return false
	}
	if w.Chests == nil || !w.Chests.Valid() {
		return false
	}
	if w.Signs == nil || !w.Signs.Valid() {
		return false
	}
	if w.NPCs == nil || !w.NPCs.Valid() {
		return false
	}
	if w.Footer == nil || !w.Footer.Valid() {
		return false
	}
	return true
}

// TitleMatchesWorldName reports whether the footer's title equals the
// header's world name, the cross-section check the game itself
// enforces but the codec only surfaces.
func (w *World) TitleMatchesWorldName() bool {
	if w.Header == nil || w.Footer == nil {
		return false
	}
	return w.Footer.Title == w.Header.WorldName
}

// Save serialises the World into a byte stream. Each section is
// serialised independently into its own buffer; the section-pointer
// table is then computed from the preamble length plus the cumulative
// section lengths, mirroring the teacher's end-of-file sequential
// allocator (internal/writer/allocator.go in scigolib/hdf5): every
// offset is assigned once, in order, and never revisited.
func Save(w *World) ([]byte, error) {
	if !w.Valid() {
		return nil, utils.InvalidArgument("save of an unvalidated or incomplete world")
	}
	if len(w.TileImportance) != DefaultTileTypeCount {
		return nil, utils.InvalidArgument("tile-importance bitmap must cover exactly DefaultTileTypeCount entries")
	}

	headerBytes, err := w.Header.Save()
	if err != nil {
		return nil, err
	}
	mapBytes, err := w.Map.Save(w.TileImportance)
	if err != nil {
		return nil, err
	}
	chestBytes, err := w.Chests.Save()
	if err != nil {
		return nil, err
	}
	signBytes, err := w.Signs.Save()
	if err != nil {
		return nil, err
	}
	npcBytes, err := w.NPCs.Save()
	if err != nil {
		return nil, err
	}
	footerBytes, err := w.Footer.Save()
	if err != nil {
		return nil, err
	}

	sections := [][]byte{headerBytes, mapBytes, chestBytes, signBytes, npcBytes, footerBytes}

	importanceBytes := packImportance(w.TileImportance)
	cursor := preambleLen(len(w.TileImportance))

	var pointers [10]int32
	for i, sec := range sections {
		pointers[i] = int32(cursor)
		cursor += len(sec)
	}
	// Pointers 6-9 are reserved and always written as zero.

	out := NewWriter()
	out.WriteI32(SupportedVersion)
	out.WriteI16(sectionCount)
	for _, p := range pointers {
		out.WriteI32(p)
	}
	out.WriteI16(int16(len(w.TileImportance)))
	out.WriteBytes(importanceBytes)
	for _, sec := range sections {
		out.WriteBytes(sec)
	}

	return out.Bytes(), nil
}
