package eaxefx

import "unsafe"

// PropertySetKind identifies which object a call's property-set GUID
// routes to, per §4.1.
type PropertySetKind int

const (
	PropertySetContext PropertySetKind = iota
	PropertySetFXSlot
	PropertySetFXSlotEffect
	PropertySetSource
)

// propertySetEntry is one row of the static GUID dispatch table described
// in §9 ("Runtime type dispatch by GUID"): a table of
// (guid, kind, version, slotIndex) built once from struct literals. The
// table is not sorted; lookupPropertySet searches it linearly.
type propertySetEntry struct {
	guid      GUID
	kind      PropertySetKind
	version   uint32
	slotIndex FXSlotIndex
}

var propertySetTable = buildPropertySetTable()

func buildPropertySetTable() []propertySetEntry {
	t := []propertySetEntry{
		{ContextGUID40, PropertySetContext, 4, FXSlotIndex{}},
		{ContextGUID50, PropertySetContext, 5, FXSlotIndex{}},
		{SourceGUID40, PropertySetSource, 4, FXSlotIndex{}},
		{SourceGUID50, PropertySetSource, 5, FXSlotIndex{}},

		// v2/v3 legacy listener and buffer property sets compatibility-map
		// onto the v4 context/source sets, per §4.1 step 2.
		{ListenerGUID20, PropertySetContext, 4, FXSlotIndex{}},
		{ListenerGUID30, PropertySetContext, 4, FXSlotIndex{}},
		{BufferGUID20, PropertySetSource, 4, FXSlotIndex{}},
		{BufferGUID30, PropertySetSource, 4, FXSlotIndex{}},
	}
	for i := 0; i < 4; i++ {
		t = append(t, propertySetEntry{fxSlot40GUIDs[i], PropertySetFXSlot, 4, FXSlotIndex{hasValue: true, index: i}})
		t = append(t, propertySetEntry{fxSlot50GUIDs[i], PropertySetFXSlot, 5, FXSlotIndex{hasValue: true, index: i}})
	}
	return t
}

func lookupPropertySet(g GUID) (propertySetEntry, bool) {
	for _, e := range propertySetTable {
		if e.guid == g {
			return e, true
		}
	}
	return propertySetEntry{}, false
}

// isEffectGUID reports whether g names one of the 13 effect types.
// fx_slot_effect calls carry their slot index separately: the caller
// passes it as the explicit slotIndex argument of EAXSetEffect/
// EAXGetEffect (see engine.go).
func isEffectGUID(g GUID) bool {
	_, ok := effectTypeByGUID(g)
	return ok
}

// EAXCall is the parsed representation of one eax_set/eax_get invocation,
// per §4.1.
type EAXCall struct {
	IsGet              bool
	Version            uint32
	PropertySetID      PropertySetKind
	FXSlotIndex        FXSlotIndex
	EffectGUID         GUID // set only when PropertySetID == PropertySetFXSlotEffect
	PropertyID         uint32
	PropertyTargetName uint32 // AL source name, when PropertySetID == PropertySetSource
	Buffer             []byte
}

// NewEAXCall builds a call descriptor from the raw arguments a game passes
// to eax_set/eax_get, per §4.1's four construction steps.
func NewEAXCall(isGet bool, setGUID GUID, propertyID uint32, targetName uint32, buffer []byte) (*EAXCall, error) {
	if setGUID.IsNull() {
		return nil, errInvalidOperation("set_guid", "property-set GUID is null")
	}

	if effGUID, ok := effectTypeByGUID(setGUID); ok {
		_ = effGUID
		return nil, errInvalidOperation("set_guid", "effect GUIDs are not routed directly; use fx_slot_effect dispatch")
	}

	entry, ok := lookupPropertySet(setGUID)
	if !ok {
		return nil, errInvalidOperation("set_guid", "unrecognized property-set GUID %s", setGUID)
	}

	return &EAXCall{
		IsGet:              isGet,
		Version:            entry.version,
		PropertySetID:      entry.kind,
		FXSlotIndex:        entry.slotIndex,
		PropertyID:         propertyID,
		PropertyTargetName: targetName,
		Buffer:             buffer,
	}, nil
}

// NewFXSlotEffectCall builds a call descriptor targeting the effect
// currently loaded in an FX slot, where the slot index is encoded
// out-of-band (the real wire protocol folds it into the GUID; this port
// keeps the index explicit since Go has no anonymous-struct GUID packing
// convention worth emulating).
func NewFXSlotEffectCall(isGet bool, effectGUID GUID, version uint32, slotIndex int, propertyID uint32, buffer []byte) (*EAXCall, error) {
	if effectGUID.IsNull() {
		return nil, errInvalidOperation("effect_guid", "effect GUID is null")
	}
	if _, ok := effectTypeByGUID(effectGUID); !ok {
		return nil, errUnknownEffect("effect_guid", "unrecognized effect GUID %s", effectGUID)
	}
	if slotIndex < 0 || slotIndex > 3 {
		return nil, errInvalidValue("fx_slot_index", "slot index %d out of range [0,3]", slotIndex)
	}
	return &EAXCall{
		IsGet:         isGet,
		Version:       version,
		PropertySetID: PropertySetFXSlotEffect,
		FXSlotIndex:   FXSlotIndex{hasValue: true, index: slotIndex},
		EffectGUID:    effectGUID,
		PropertyID:    propertyID,
		Buffer:        buffer,
	}, nil
}

// Value reads a fixed-size value of type T from the call's buffer. It
// mirrors the reference's templated value<T>(): the buffer must be
// present and at least sizeof(T) bytes.
func Value[T any](c *EAXCall) (T, error) {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if c.Buffer == nil || len(c.Buffer) < size {
		return zero, errInvalidValue("buffer", "need at least %d bytes, have %d", size, len(c.Buffer))
	}
	return *(*T)(unsafe.Pointer(&c.Buffer[0])), nil
}

// Values returns the number of whole T values the call's buffer holds,
// mirroring the reference's values<T>().
func Values[T any](c *EAXCall) int {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 || c.Buffer == nil {
		return 0
	}
	return len(c.Buffer) / size
}

// SetValue writes v into the call's buffer, failing if the buffer is
// absent or undersized, mirroring the reference's set_value<T>().
func SetValue[T any](c *EAXCall, v T) error {
	size := int(unsafe.Sizeof(v))
	if c.Buffer == nil || len(c.Buffer) < size {
		return errInvalidValue("buffer", "need at least %d bytes, have %d", size, len(c.Buffer))
	}
	*(*T)(unsafe.Pointer(&c.Buffer[0])) = v
	return nil
}
