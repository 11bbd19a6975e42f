package core

import "github.com/almostsurely/tsculpt/internal/utils"

// Primary header byte (h1) bit layout, LSB to MSB.
const (
	h1Extended  = 1 << 0
	h1Active    = 1 << 1
	h1HasWall   = 1 << 2
	h1LiquidLo  = 1 << 3
	h1LiquidHi  = 1 << 4
	h1LiquidMsk = h1LiquidLo | h1LiquidHi
	h1WideType  = 1 << 5
	h1RLELo     = 1 << 6
	h1RLEHi     = 1 << 7
	h1RLEMsk    = h1RLELo | h1RLEHi
)

// Secondary header byte (h2) bit layout.
const (
	h2Extended2 = 1 << 0
	h2WireRed   = 1 << 1
	h2WireGreen = 1 << 2
	h2WireBlue  = 1 << 3
	h2BrickShft = 4
	h2BrickMsk  = 0x07 << h2BrickShft
)

// Tertiary header byte (h3) bit layout.
const (
	h3Actuator         = 1 << 1
	h3ActuatorInactive = 1 << 2
	h3HasColor         = 1 << 3
	h3HasWallColor     = 1 << 4
)

// packedHeader is the pure, side-effect-free representation of a
// tile's three cascading header bytes, built separately from the I/O
// that reads/writes the payload bytes they describe.
type packedHeader struct {
	h1, h2, h3 byte
	wideType   bool
	rleBytes   int // 0, 1, or 2
}

// packTileHeader computes the three header bytes and the run-length
// encoding the encoder should use for a tile repeated `run` additional
// times.
func packTileHeader(t Tile, run int) packedHeader {
	var p packedHeader

	switch {
	case run == 0:
		p.rleBytes = 0
	case run <= 255:
		p.h1 |= h1RLELo
		p.rleBytes = 1
	default:
		p.h1 |= h1RLEHi
		p.rleBytes = 2
	}

	if t.Active {
		p.h1 |= h1Active
		if t.TileType > 255 {
			p.h1 |= h1WideType
			p.wideType = true
		}
	}

	if t.Wall.Valid {
		p.h1 |= h1HasWall
	}

	p.h1 |= byte(t.LiquidType) & h1LiquidMsk

	if t.WireRed {
		p.h2 |= h2WireRed
	}
	if t.WireGreen {
		p.h2 |= h2WireGreen
	}
	if t.WireBlue {
		p.h2 |= h2WireBlue
	}
	p.h2 |= (t.BrickStyle << h2BrickShft) & h2BrickMsk

	if t.Actuator {
		p.h3 |= h3Actuator
	}
	if t.ActuatorInactive {
		p.h3 |= h3ActuatorInactive
	}
	if t.Color.Valid {
		p.h3 |= h3HasColor
	}
	if t.WallColor.Valid {
		p.h3 |= h3HasWallColor
	}

	if p.h3 != 0 {
		p.h2 |= h2Extended2
	}
	if p.h2 != 0 {
		p.h1 |= h1Extended
	}

	return p
}

// EncodeTile writes one tile's header block plus payload, given the
// tile-importance bitmap and a run count (additional identical tiles
// immediately below it in the column).
func EncodeTile(w *Writer, t Tile, run int, importance []bool) error {
	if t.WallColor.Valid && !t.Wall.Valid {
		return utils.InvalidArgument("wall_color present without wall")
	}

	p := packTileHeader(t, run)

	w.WriteU8(p.h1)
	if p.h1&h1Extended != 0 {
		w.WriteU8(p.h2)
	}
	if p.h2&h2Extended2 != 0 {
		w.WriteU8(p.h3)
	}

	if t.Active {
		if p.wideType {
			w.WriteU16(t.TileType)
		} else {
			w.WriteU8(uint8(t.TileType))
		}

		important := int(t.TileType) < len(importance) && importance[t.TileType]
		if important {
			w.WriteI16(t.U)
			w.WriteI16(t.V)
		}
	}

	if t.Color.Valid {
		w.WriteU8(t.Color.Value)
	}

	if t.Wall.Valid {
		w.WriteU8(t.Wall.Value)
		if t.WallColor.Valid {
			w.WriteU8(t.WallColor.Value)
		}
	}

	if t.LiquidType != LiquidNone {
		amount := uint8(0)
		if t.LiquidAmount.Valid {
			amount = t.LiquidAmount.Value
		}
		w.WriteU8(amount)
	}

	switch p.rleBytes {
	case 1:
		w.WriteU8(uint8(run))
	case 2:
		w.WriteU16(uint16(run))
	}

	return nil
}

// DecodeTile reads one tile's header block plus payload, returning the
// tile and the number of additional times it repeats down the column.
func DecodeTile(r *Reader, importance []bool) (Tile, int, error) {
	t := NewTile()

	h1, err := r.ReadU8()
	if err != nil {
		return t, 0, err
	}

	var h2, h3 byte
	if h1&h1Extended != 0 {
		h2, err = r.ReadU8()
		if err != nil {
			return t, 0, err
		}
		if h2&h2Extended2 != 0 {
			h3, err = r.ReadU8()
			if err != nil {
				return t, 0, err
			}
		}
	}

	// active is set whenever h1 bit 1 is set, matching the encoder.
	if h1&h1Active != 0 {
		t.Active = true

		var tileType uint16
		if h1&h1WideType != 0 {
			tileType, err = r.ReadU16()
		} else {
			var b uint8
			b, err = r.ReadU8()
			tileType = uint16(b)
		}
		if err != nil {
			return t, 0, err
		}
		t.TileType = tileType

		if int(tileType) >= len(importance) {
			return t, 0, utils.Corrupt("tile_type beyond importance bitmap")
		}
		if importance[tileType] {
			t.U, err = r.ReadI16()
			if err != nil {
				return t, 0, err
			}
			t.V, err = r.ReadI16()
			if err != nil {
				return t, 0, err
			}
		} else {
			t.U, t.V = -1, -1
		}
	}

	if h3&h3HasColor != 0 {
		c, cerr := r.ReadU8()
		if cerr != nil {
			return t, 0, cerr
		}
		t.Color = Some(c)
	}

	if h1&h1HasWall != 0 {
		wall, werr := r.ReadU8()
		if werr != nil {
			return t, 0, werr
		}
		t.Wall = Some(wall)

		if h3&h3HasWallColor != 0 {
			wc, wcerr := r.ReadU8()
			if wcerr != nil {
				return t, 0, wcerr
			}
			t.WallColor = Some(wc)
		}
	}

	t.LiquidType = LiquidType(h1 & h1LiquidMsk)
	if t.LiquidType != LiquidNone {
		amt, aerr := r.ReadU8()
		if aerr != nil {
			return t, 0, aerr
		}
		t.LiquidAmount = Some(amt)
	}

	if h2 != 0 {
		t.WireRed = h2&h2WireRed != 0
		t.WireGreen = h2&h2WireGreen != 0
		t.WireBlue = h2&h2WireBlue != 0
		t.BrickStyle = (h2 & h2BrickMsk) >> h2BrickShft
	}

	if h3 != 0 {
		t.Actuator = h3&h3Actuator != 0
		t.ActuatorInactive = h3&h3ActuatorInactive != 0
	}

	// rle_kind 2 and 3 are both treated as a 2-byte count on read,
	// matching the game client's `rle_type != 1` check, even though
	// this encoder only ever emits 0, 1, or 2.
	rleKind := (h1 & h1RLEMsk) >> 6
	var run int
	switch rleKind {
	case 0:
		run = 0
	case 1:
		b, rerr := r.ReadU8()
		if rerr != nil {
			return t, 0, rerr
		}
		run = int(b)
	default: // 2 or 3
		v, rerr := r.ReadU16()
		if rerr != nil {
			return t, 0, rerr
		}
		run = int(v)
	}

	return t, run, nil
}
