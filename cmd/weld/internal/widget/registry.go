package widget

// slotRegistry tracks container attachment points discovered during the
// tree walk. Entries keep insertion order so the generated dispatcher and
// the capability synthesis are deterministic.

type slotEntry struct {
	// Named is false for the default attachment point.
	Named bool
	Slot  string

	Widget string
	Type   string
	Kind   Kind
}

type slotRegistry struct {
	entries []slotEntry
	seen    map[string]bool
}

func newSlotRegistry() *slotRegistry {
	return &slotRegistry{seen: make(map[string]bool)}
}

func slotKey(named bool, slot string) string {
	if !named {
		return "\x00default"
	}
	return "n:" + slot
}

// register records an attachment point. Registering the same slot twice,
// including two defaults, is a fatal diagnostic.
func (r *slotRegistry) register(named bool, slot, widget, typ string, kind Kind) error {
	key := slotKey(named, slot)
	if r.seen[key] {
		return errDuplicateSlot(widget, named, slot)
	}
	r.seen[key] = true
	r.entries = append(r.entries, slotEntry{
		Named:  named,
		Slot:   slot,
		Widget: widget,
		Type:   typ,
		Kind:   kind,
	})
	return nil
}

func (r *slotRegistry) defaultEntry() (slotEntry, bool) {
	for _, e := range r.entries {
		if !e.Named {
			return e, true
		}
	}
	return slotEntry{}, false
}

// all returns every entry in insertion order.
func (r *slotRegistry) all() []slotEntry {
	return r.entries
}

func (r *slotRegistry) len() int {
	return len(r.entries)
}
