package eaxefx

// FXSlots is the fixed four-slot array every context owns, per §3 ("FX
// slot (×4, indices 0..3)") and §4.8 ("own EaxxFxSlots").
type FXSlots struct {
	slots [4]*FXSlot
}

func NewFXSlots(version uint32) *FXSlots {
	var s FXSlots
	for i := range s.slots {
		s.slots[i] = NewFXSlot(i, version)
	}
	return &s
}

// Init allocates every slot's EFX resources, per §4.9 step 3.
func (s *FXSlots) Init(alx alxSlotBackend) error {
	for _, slot := range s.slots {
		if err := slot.Init(alx); err != nil {
			return err
		}
	}
	return nil
}

func (s *FXSlots) At(i int) (*FXSlot, error) {
	if i < 0 || i >= len(s.slots) {
		return nil, errInvalidOperation("fx_slot_index", "index %d out of range [0,3]", i)
	}
	return s.slots[i], nil
}

// Handle returns the EFX aux-slot handle at index i, used by a source
// when it rebinds an aux-send filter, per §4.7.
func (s *FXSlots) Handle(i int) AuxSlotHandle {
	if i < 0 || i >= len(s.slots) {
		return 0
	}
	return s.slots[i].aux
}

// ResolvePrimary resolves the EAX_Primary sentinel against the
// context's current primary_fx_slot_id, per §9 ("Primary slot").
func (s *FXSlots) ResolvePrimary(primaryID GUID) FXSlotIndex {
	if primaryID.IsNull() {
		return FXSlotIndex{}
	}
	return resolveFXSlotIndex(primaryID)
}
