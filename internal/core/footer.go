package core

// Footer is the world's trailing validity marker, title, and id.
// Like Header, its "every field populated" invariant is tracked with
// a single flag rather than per-field Optional, because the footer's
// title/world_id must additionally satisfy the cross-checks below, not
// merely be present.
type Footer struct {
	Validity bool
	Title    string
	WorldID  int32

	populated bool
}

// NewFooter returns an empty footer (valid-flag false, no title, zero
// world id), ready to be filled in by a caller that then calls
// MarkPopulated.
func NewFooter() *Footer {
	return &Footer{}
}

// Valid reports whether the footer's valid-flag is true, its title is
// non-empty, and its world id is nonzero. Note that the footer's title
// equaling the header's world name is a cross-section check the codec
// surfaces but does not itself enforce — see World.TitleMatchesWorldName.
func (f *Footer) Valid() bool {
	return f.populated && f.Validity && f.Title != "" && f.WorldID != 0
}

// MarkPopulated flags the footer as fully populated.
func (f *Footer) MarkPopulated() {
	f.populated = true
}

// LoadFooter decodes the footer section.
func LoadFooter(r *Reader) (*Footer, error) {
	f := &Footer{}

	var err error
	if f.Validity, err = r.ReadBool(); err != nil {
		return nil, err
	}
	if f.Title, err = r.ReadPString(); err != nil {
		return nil, err
	}
	if f.WorldID, err = r.ReadI32(); err != nil {
		return nil, err
	}

	f.populated = true
	return f, nil
}

// Save encodes the footer section. The valid-flag must be true on
// save; the codec itself does not force it to true — that is a
// caller-visible precondition checked by World.Valid via Footer.Valid.
func (f *Footer) Save() ([]byte, error) {
	w := NewWriter()
	w.WriteBool(f.Validity)
	if err := w.WritePString(f.Title); err != nil {
		return nil, err
	}
	w.WriteI32(f.WorldID)
	return w.Bytes(), nil
}
