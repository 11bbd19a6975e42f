package core

import "github.com/almostsurely/tsculpt/internal/utils"

// Sign is a placed sign's text and position.
type Sign struct {
	Text string
	X, Y int32
}

// Valid reports whether the sign's text is non-empty.
func (s Sign) Valid() bool {
	return s.Text != ""
}

// Signs is the section holding total_signs and the ordered sign sequence.
type Signs struct {
	Signs []Sign
}

// Valid reports whether every sign in the section is valid.
func (s *Signs) Valid() bool {
	for _, sign := range s.Signs {
		if !sign.Valid() {
			return false
		}
	}
	return true
}

// LoadSigns decodes the signs section.
func LoadSigns(r *Reader) (*Signs, error) {
	total, err := r.ReadI16()
	if err != nil {
		return nil, err
	}

	s := &Signs{}
	if total > 0 {
		s.Signs = make([]Sign, 0, total)
	}
	for i := int16(0); i < total; i++ {
		var sign Sign
		if sign.Text, err = r.ReadPString(); err != nil {
			return nil, err
		}
		if sign.X, err = r.ReadI32(); err != nil {
			return nil, err
		}
		if sign.Y, err = r.ReadI32(); err != nil {
			return nil, err
		}
		s.Signs = append(s.Signs, sign)
	}

	return s, nil
}

// Save encodes the signs section.
func (s *Signs) Save() ([]byte, error) {
	if len(s.Signs) > int(^uint16(0)>>1) {
		return nil, utils.InvalidArgument("too many signs for a 16-bit count")
	}

	w := NewWriter()
	w.WriteI16(int16(len(s.Signs)))
	for _, sign := range s.Signs {
		if err := w.WritePString(sign.Text); err != nil {
			return nil, err
		}
		w.WriteI32(sign.X)
		w.WriteI32(sign.Y)
	}

	return w.Bytes(), nil
}
