package eaxefx

// EffectHandle, FilterHandle and AuxSlotHandle are opaque AL object names,
// owned exclusively by whichever holder (effect, source, FX slot) created
// them, per §5 and §9's "pointer-owned handle wrappers" note. Go has no
// destructors, so ownership is expressed by never copying a holder value
// across a boundary that outlives it and by an explicit Delete* call
// (DeleteEffect, DeleteFilter, DeleteAuxSlot) on the backend that
// created it.
type (
	EffectHandle  uint32
	FilterHandle  uint32
	AuxSlotHandle uint32
)

// NullFilter is the AL_FILTER_NULL sentinel used to clear a direct or
// send filter binding, per I5.
const NullFilter FilterHandle = 0

// alxEffectBackend is the subset of the driver's EFX entry points an
// Effect needs to apply its shadow state, per §4.6 step 3. It is
// satisfied by internal/alx (the real purego-backed driver) and by
// internal/alxfake (an in-memory stand-in used by tests, grounded on the
// teacher's own headless-backend pattern).
type alxEffectBackend interface {
	EffectType(h EffectHandle, effectType uint32) error
	Effectf(h EffectHandle, param uint32, value float32) error
	Effecti(h EffectHandle, param uint32, value int32) error
	Effectfv(h EffectHandle, param uint32, values []float32) error
}

// alxSlotBackend is the subset needed by an FX slot.
type alxSlotBackend interface {
	alxEffectBackend
	GenEffect() (EffectHandle, error)
	DeleteEffect(h EffectHandle) error
	GenAuxSlot() (AuxSlotHandle, error)
	DeleteAuxSlot(h AuxSlotHandle) error
	AuxSlotf(h AuxSlotHandle, param uint32, value float32) error
	AuxSloti(h AuxSlotHandle, param uint32, value int32) error
	BindEffectToAuxSlot(slot AuxSlotHandle, effect EffectHandle) error
}

// alxSourceBackend is the subset needed by a source to (re)bind its
// direct and auxiliary-send filters, per §4.7 and I5.
type alxSourceBackend interface {
	GenFilter() (FilterHandle, error)
	DeleteFilter(h FilterHandle) error
	Filteri(h FilterHandle, param uint32, value int32) error
	Filterf(h FilterHandle, param uint32, value float32) error
	SetDirectFilter(sourceName uint32, filter FilterHandle) error
	SetAuxSendFilter(sourceName uint32, send int, slot AuxSlotHandle, filter FilterHandle) error
}

// EFX and AL parameter tokens used by this engine. Values match the
// published AL/EFX headers; only a subset of the full symbol table is
// referenced directly by the core (the rest is exported pass-through,
// out of scope per §1).
const (
	alFilterType       uint32 = 0x8001
	alFilterLowpass    uint32 = 0x0001
	alLowpassGain      uint32 = 0x0001
	alLowpassGainHF    uint32 = 0x0002

	alEffectType uint32 = 0x8001

	alEffectNull             uint32 = 0x0000
	alEffectEAXReverb        uint32 = 0x8000
	alEffectChorus           uint32 = 0x0002
	alEffectDistortion       uint32 = 0x0003
	alEffectEcho             uint32 = 0x0004
	alEffectFlanger          uint32 = 0x0005
	alEffectFrequencyShifter uint32 = 0x0006
	alEffectVocalMorpher     uint32 = 0x0007
	alEffectPitchShifter     uint32 = 0x0008
	alEffectRingModulator    uint32 = 0x0009
	alEffectAutowah          uint32 = 0x000A
	alEffectCompressor       uint32 = 0x000B
	alEffectEqualizer        uint32 = 0x000C

	alAuxiliaryEffectSlotEffect        uint32 = 0x0001
	alAuxiliaryEffectSlotGain          uint32 = 0x0002
	alAuxiliaryEffectSlotAuxSendAuto   uint32 = 0x0003

	alDirectFilter          uint32 = 0x20005
	alAuxiliarySendFilter   uint32 = 0x20006
)

// alEffectTypeFor maps an EffectType to its AL_EFFECT_* token.
func alEffectTypeFor(t EffectType) uint32 {
	switch t {
	case EffectReverb:
		return alEffectEAXReverb
	case EffectChorus:
		return alEffectChorus
	case EffectAutowah:
		return alEffectAutowah
	case EffectCompressor:
		return alEffectCompressor
	case EffectDistortion:
		return alEffectDistortion
	case EffectEcho:
		return alEffectEcho
	case EffectEqualizer:
		return alEffectEqualizer
	case EffectFlanger:
		return alEffectFlanger
	case EffectFrequencyShifter:
		return alEffectFrequencyShifter
	case EffectPitchShifter:
		return alEffectPitchShifter
	case EffectRingModulator:
		return alEffectRingModulator
	case EffectVocalMorpher:
		return alEffectVocalMorpher
	default:
		return alEffectNull
	}
}
