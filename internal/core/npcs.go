package core

// NPC is one world-resident NPC. Unlike Tile's fields, NPC's position
// fields are plain (non-Optional) — the only meaningful invariant the
// original source enforces is that Name and DisplayName are non-empty
// by the time an NPC reaches validation.
type NPC struct {
	Name, DisplayName string
	X, Y              float32
	IsHomeless        bool
	HomeX, HomeY      int32
}

// Valid reports whether the NPC's name and display name are set.
func (n NPC) Valid() bool {
	return n.Name != "" && n.DisplayName != ""
}

// NPCs is the unbounded sequence terminated by a zero boolean
// sentinel.
type NPCs struct {
	NPCs []NPC
}

// Valid reports whether every NPC in the section is valid.
func (n *NPCs) Valid() bool {
	for _, npc := range n.NPCs {
		if !npc.Valid() {
			return false
		}
	}
	return true
}

// LoadNPCs decodes the NPC section, reading records until the
// terminating false boolean sentinel.
func LoadNPCs(r *Reader) (*NPCs, error) {
	out := &NPCs{}

	for {
		present, err := r.ReadBool()
		if err != nil {
			return nil, err
		}
		if !present {
			break
		}

		var npc NPC
		if npc.Name, err = r.ReadPString(); err != nil {
			return nil, err
		}
		if npc.DisplayName, err = r.ReadPString(); err != nil {
			return nil, err
		}
		if npc.X, err = r.ReadF32(); err != nil {
			return nil, err
		}
		if npc.Y, err = r.ReadF32(); err != nil {
			return nil, err
		}
		if npc.IsHomeless, err = r.ReadBool(); err != nil {
			return nil, err
		}
		if npc.HomeX, err = r.ReadI32(); err != nil {
			return nil, err
		}
		if npc.HomeY, err = r.ReadI32(); err != nil {
			return nil, err
		}

		out.NPCs = append(out.NPCs, npc)
	}

	return out, nil
}

// Save encodes the NPC section, terminating with a false sentinel.
func (n *NPCs) Save() ([]byte, error) {
	w := NewWriter()

	for _, npc := range n.NPCs {
		w.WriteBool(true)
		if err := w.WritePString(npc.Name); err != nil {
			return nil, err
		}
		if err := w.WritePString(npc.DisplayName); err != nil {
			return nil, err
		}
		w.WriteF32(npc.X)
		w.WriteF32(npc.Y)
		w.WriteBool(npc.IsHomeless)
		w.WriteI32(npc.HomeX)
		w.WriteI32(npc.HomeY)
	}

	w.WriteBool(false)
	return w.Bytes(), nil
}
