package core

// Header is the fixed-schema record holding the world's ~75 world-level
// fields, in serialisation order. Every field must be populated before
// the record is valid for write; since Load always fills every field in
// one pass and the only other legitimate construction path is filling
// the fields and then calling MarkPopulated, a single populated flag
// captures that invariant without
// wrapping all ~75 fields in Optional.
type Header struct {
	WorldName string
	WorldID   int32
	X, W      int32
	Y, H      int32
	YTiles    int32
	XTiles    int32
	MoonType  uint8

	TreeX     [3]int32
	TreeStyle [4]int32

	CaveBackX     [3]int32
	CaveBackStyle [4]int32

	IceBackStyle    int32
	JungleBackStyle int32
	HellBackStyle   int32

	SpawnX, SpawnY int32
	SurfaceLevel   float64
	RockLayer      float64
	TempTime       float64

	IsDay        bool
	MoonPhase    int32
	IsBloodMoon  bool
	IsEclipse    bool
	DungeonX     int32
	DungeonY     int32
	IsCrimson    bool

	IsBoss1Dead    bool
	IsBoss2Dead    bool
	IsBoss3Dead    bool
	IsQueenBeeDead bool
	IsMech1Dead    bool
	IsMech2Dead    bool
	IsMech3Dead    bool
	IsAnyMechDead  bool
	IsPlantDead    bool
	IsGolemDead    bool

	IsGoblinSaved   bool
	IsWizardSaved   bool
	IsMechanicSaved bool

	IsGoblinsBeat bool
	IsClownBeat   bool
	IsFrostBeat   bool
	IsPiratesBeat bool

	IsOrbSmashed    bool
	IsMeteorSpawned bool
	OrbSmashCount   uint8
	AltarCount      int32
	IsHardMode      bool

	InvasionDelay int32
	InvasionSize  int32
	InvasionType  int32
	InvasionX     float64

	IsTempRaining bool
	TempRainTime  int32
	TempMaxRain   float32

	OreTier1 int32
	OreTier2 int32
	OreTier3 int32

	BgTree       uint8
	BgCorruption uint8
	BgJungle     uint8
	BgSnow       uint8
	BgHallow     uint8
	BgCrimson    uint8
	BgDesert     uint8
	BgOcean      uint8

	CloudBgActive int32
	NumClouds     int16
	WindSpeedSet  float32

	NumAnglers     int32
	IsAnglerSaved  bool
	AnglerQuest    int32

	populated bool
}

// Valid reports whether every required field has been populated.
func (h *Header) Valid() bool {
	return h.populated
}

// LoadHeader decodes the header section fields in their on-disk order.
func LoadHeader(r *Reader) (*Header, error) {
	h := &Header{}

	var err error
	if h.WorldName, err = r.ReadPString(); err != nil {
		return nil, err
	}
	if h.WorldID, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if h.X, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if h.W, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if h.Y, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if h.H, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if h.YTiles, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if h.XTiles, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if h.MoonType, err = r.ReadU8(); err != nil {
		return nil, err
	}
	for i := range h.TreeX {
		if h.TreeX[i], err = r.ReadI32(); err != nil {
			return nil, err
		}
	}
	for i := range h.TreeStyle {
		if h.TreeStyle[i], err = r.ReadI32(); err != nil {
			return nil, err
		}
	}
	for i := range h.CaveBackX {
		if h.CaveBackX[i], err = r.ReadI32(); err != nil {
			return nil, err
		}
	}
	for i := range h.CaveBackStyle {
		if h.CaveBackStyle[i], err = r.ReadI32(); err != nil {
			return nil, err
		}
	}
	if h.IceBackStyle, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if h.JungleBackStyle, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if h.HellBackStyle, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if h.SpawnX, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if h.SpawnY, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if h.SurfaceLevel, err = r.ReadF64(); err != nil {
		return nil, err
	}
	if h.RockLayer, err = r.ReadF64(); err != nil {
		return nil, err
	}
	if h.TempTime, err = r.ReadF64(); err != nil {
		return nil, err
	}
	if h.IsDay, err = r.ReadBool(); err != nil {
		return nil, err
	}
	if h.MoonPhase, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if h.IsBloodMoon, err = r.ReadBool(); err != nil {
		return nil, err
	}
	if h.IsEclipse, err = r.ReadBool(); err != nil {
		return nil, err
	}
	if h.DungeonX, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if h.DungeonY, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if h.IsCrimson, err = r.ReadBool(); err != nil {
		return nil, err
	}
	for _, f := range []*bool{
		&h.IsBoss1Dead, &h.IsBoss2Dead, &h.IsBoss3Dead, &h.IsQueenBeeDead,
		&h.IsMech1Dead, &h.IsMech2Dead, &h.IsMech3Dead, &h.IsAnyMechDead,
		&h.IsPlantDead, &h.IsGolemDead,
		&h.IsGoblinSaved, &h.IsWizardSaved, &h.IsMechanicSaved,
		&h.IsGoblinsBeat, &h.IsClownBeat, &h.IsFrostBeat, &h.IsPiratesBeat,
	} {
		if *f, err = r.ReadBool(); err != nil {
			return nil, err
		}
	}
	if h.IsOrbSmashed, err = r.ReadBool(); err != nil {
		return nil, err
	}
	if h.IsMeteorSpawned, err = r.ReadBool(); err != nil {
		return nil, err
	}
	if h.OrbSmashCount, err = r.ReadU8(); err != nil {
		return nil, err
	}
	if h.AltarCount, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if h.IsHardMode, err = r.ReadBool(); err != nil {
		return nil, err
	}
	if h.InvasionDelay, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if h.InvasionSize, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if h.InvasionType, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if h.InvasionX, err = r.ReadF64(); err != nil {
		return nil, err
	}
	if h.IsTempRaining, err = r.ReadBool(); err != nil {
		return nil, err
	}
	if h.TempRainTime, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if h.TempMaxRain, err = r.ReadF32(); err != nil {
		return nil, err
	}
	if h.OreTier1, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if h.OreTier2, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if h.OreTier3, err = r.ReadI32(); err != nil {
		return nil, err
	}
	for _, f := range []*uint8{
		&h.BgTree, &h.BgCorruption, &h.BgJungle, &h.BgSnow,
		&h.BgHallow, &h.BgCrimson, &h.BgDesert, &h.BgOcean,
	} {
		if *f, err = r.ReadU8(); err != nil {
			return nil, err
		}
	}
	if h.CloudBgActive, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if h.NumClouds, err = r.ReadI16(); err != nil {
		return nil, err
	}
	if h.WindSpeedSet, err = r.ReadF32(); err != nil {
		return nil, err
	}
	if h.NumAnglers, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if h.IsAnglerSaved, err = r.ReadBool(); err != nil {
		return nil, err
	}
	if h.AnglerQuest, err = r.ReadI32(); err != nil {
		return nil, err
	}

	h.populated = true
	return h, nil
}

// Save encodes the header section in field order.
func (h *Header) Save() ([]byte, error) {
	w := NewWriter()

	if err := w.WritePString(h.WorldName); err != nil {
		return nil, err
	}
	w.WriteI32(h.WorldID)
	w.WriteI32(h.X)
	w.WriteI32(h.W)
	w.WriteI32(h.Y)
	w.WriteI32(h.H)
	w.WriteI32(h.YTiles)
	w.WriteI32(h.XTiles)
	w.WriteU8(h.MoonType)
	for _, v := range h.TreeX {
		w.WriteI32(v)
	}
	for _, v := range h.TreeStyle {
		w.WriteI32(v)
	}
	for _, v := range h.CaveBackX {
		w.WriteI32(v)
	}
	for _, v := range h.CaveBackStyle {
		w.WriteI32(v)
	}
	w.WriteI32(h.IceBackStyle)
	w.WriteI32(h.JungleBackStyle)
	w.WriteI32(h.HellBackStyle)
	w.WriteI32(h.SpawnX)
	w.WriteI32(h.SpawnY)
	w.WriteF64(h.SurfaceLevel)
	w.WriteF64(h.RockLayer)
	w.WriteF64(h.TempTime)
	w.WriteBool(h.IsDay)
	w.WriteI32(h.MoonPhase)
	w.WriteBool(h.IsBloodMoon)
	w.WriteBool(h.IsEclipse)
	w.WriteI32(h.DungeonX)
	w.WriteI32(h.DungeonY)
	w.WriteBool(h.IsCrimson)
	for _, f := range []bool{
		h.IsBoss1Dead, h.IsBoss2Dead, h.IsBoss3Dead, h.IsQueenBeeDead,
		h.IsMech1Dead, h.IsMech2Dead, h.IsMech3Dead, h.IsAnyMechDead,
		h.IsPlantDead, h.IsGolemDead,
		h.IsGoblinSaved, h.IsWizardSaved, h.IsMechanicSaved,
		h.IsGoblinsBeat, h.IsClownBeat, h.IsFrostBeat, h.IsPiratesBeat,
	} {
		w.WriteBool(f)
	}
	w.WriteBool(h.IsOrbSmashed)
	w.WriteBool(h.IsMeteorSpawned)
	w.WriteU8(h.OrbSmashCount)
	w.WriteI32(h.AltarCount)
	w.WriteBool(h.IsHardMode)
	w.WriteI32(h.InvasionDelay)
	w.WriteI32(h.InvasionSize)
	w.WriteI32(h.InvasionType)
	w.WriteF64(h.InvasionX)
	w.WriteBool(h.IsTempRaining)
	w.WriteI32(h.TempRainTime)
	w.WriteF32(h.TempMaxRain)
	w.WriteI32(h.OreTier1)
	w.WriteI32(h.OreTier2)
	w.WriteI32(h.OreTier3)
	for _, f := range []uint8{
		h.BgTree, h.BgCorruption, h.BgJungle, h.BgSnow,
		h.BgHallow, h.BgCrimson, h.BgDesert, h.BgOcean,
	} {
		w.WriteU8(f)
	}
	w.WriteI32(h.CloudBgActive)
	w.WriteI16(h.NumClouds)
	w.WriteF32(h.WindSpeedSet)
	w.WriteI32(h.NumAnglers)
	w.WriteBool(h.IsAnglerSaved)
	w.WriteI32(h.AnglerQuest)

	return w.Bytes(), nil
}

// MarkPopulated flags the header as fully populated. Used by callers
// constructing a Header field-by-field (e.g. world generation, out of
// this codec's scope) once every field has a meaningful value.
func (h *Header) MarkPopulated() {
	h.populated = true
}
