package eaxefx

// FXSlotIndex is a value type holding an optional slot index in [0,3],
// per §4.4.
type FXSlotIndex struct {
	hasValue bool
	index    int
}

// HasValue reports whether the index is populated.
func (i FXSlotIndex) HasValue() bool { return i.hasValue }

// Index returns the slot index. Only meaningful when HasValue is true.
func (i FXSlotIndex) Index() int { return i.index }

// Require returns the index or an invalid_operation error if empty,
// per §4.4: "an empty index is an error where a slot is required."
func (i FXSlotIndex) Require() (int, error) {
	if !i.hasValue {
		return 0, errInvalidOperation("fx_slot_index", "no slot resolved")
	}
	return i.index, nil
}

// resolveFXSlotIndex finds the 0..3 index of a slot GUID by linear search
// over the eight recognized GUIDs (four per version), per §4.4.
func resolveFXSlotIndex(g GUID) FXSlotIndex {
	for i := 0; i < 4; i++ {
		if fxSlot40GUIDs[i] == g || fxSlot50GUIDs[i] == g {
			return FXSlotIndex{hasValue: true, index: i}
		}
	}
	return FXSlotIndex{}
}

// fxSlotGUIDForVersion returns the recognized slot GUID for index i under
// the given EAX version (4 or 5).
func fxSlotGUIDForVersion(version uint32, i int) GUID {
	if version >= 5 {
		return fxSlot50GUIDs[i]
	}
	return fxSlot40GUIDs[i]
}

// FXSlotGUID returns the property-set GUID a game's wrapper layer uses to
// address FX slot i (0..3) under the given session version (5=EAX4,
// 6=EAX5, matching Session.Version), so a caller never needs its own
// copy of the per-version slot GUID table.
func FXSlotGUID(sessionVersion uint32, index int) (GUID, error) {
	if index < 0 || index > 3 {
		return GUID{}, errInvalidOperation("fx_slot_index", "index %d out of range [0,3]", index)
	}
	if sessionVersion >= SessionEAX50 {
		return fxSlot50GUIDs[index], nil
	}
	return fxSlot40GUIDs[index], nil
}
