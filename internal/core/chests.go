package core

import "github.com/almostsurely/tsculpt/internal/utils"

// ItemSlot is one slot in a chest's item sequence. ItemID and Prefix
// are present iff StackSize > 0.
type ItemSlot struct {
	StackSize int16
	ItemID    Optional[int32]
	Prefix    Optional[uint8]
}

// Chest holds a position, name, and a fixed-length item sequence.
type Chest struct {
	X, Y  int32
	Name  string
	Items []ItemSlot
}

// Valid reports whether the chest has at least one item slot and every
// non-empty slot carries both an item id and a prefix.
func (c Chest) Valid() bool {
	if len(c.Items) == 0 {
		return false
	}
	for _, it := range c.Items {
		if it.StackSize > 0 && (!it.ItemID.Valid || !it.Prefix.Valid) {
			return false
		}
	}
	return true
}

// Chests is the section holding total_chests, max_items, and the
// ordered chest sequence.
type Chests struct {
	MaxItems int16
	Chests   []Chest
}

// Valid reports whether every chest in the section is valid.
func (c *Chests) Valid() bool {
	for _, chest := range c.Chests {
		if !chest.Valid() {
			return false
		}
	}
	return true
}

// LoadChests decodes the chests section.
func LoadChests(r *Reader) (*Chests, error) {
	totalChests, err := r.ReadI16()
	if err != nil {
		return nil, err
	}
	maxItems, err := r.ReadI16()
	if err != nil {
		return nil, err
	}

	c := &Chests{MaxItems: maxItems}
	if totalChests > 0 {
		c.Chests = make([]Chest, 0, totalChests)
	}

	for i := int16(0); i < totalChests; i++ {
		var chest Chest
		if chest.X, err = r.ReadI32(); err != nil {
			return nil, err
		}
		if chest.Y, err = r.ReadI32(); err != nil {
			return nil, err
		}
		if chest.Name, err = r.ReadPString(); err != nil {
			return nil, err
		}

		chest.Items = make([]ItemSlot, maxItems)
		for j := int16(0); j < maxItems; j++ {
			stackSize, serr := r.ReadI16()
			if serr != nil {
				return nil, serr
			}
			slot := ItemSlot{StackSize: stackSize}
			if stackSize > 0 {
				id, ierr := r.ReadI32()
				if ierr != nil {
					return nil, ierr
				}
				prefix, perr := r.ReadU8()
				if perr != nil {
					return nil, perr
				}
				slot.ItemID = Some(id)
				slot.Prefix = Some(prefix)
			}
			chest.Items[j] = slot
		}

		c.Chests = append(c.Chests, chest)
	}

	return c, nil
}

// Save encodes the chests section.
func (c *Chests) Save() ([]byte, error) {
	if len(c.Chests) > int(^uint16(0)>>1) {
		return nil, utils.InvalidArgument("too many chests for a 16-bit count")
	}

	w := NewWriter()
	w.WriteI16(int16(len(c.Chests)))
	w.WriteI16(c.MaxItems)

	for _, chest := range c.Chests {
		w.WriteI32(chest.X)
		w.WriteI32(chest.Y)
		if err := w.WritePString(chest.Name); err != nil {
			return nil, err
		}
		for _, item := range chest.Items {
			w.WriteI16(item.StackSize)
			if item.StackSize > 0 {
				w.WriteI32(item.ItemID.Value)
				w.WriteU8(item.Prefix.Value)
			}
		}
	}

	return w.Bytes(), nil
}
