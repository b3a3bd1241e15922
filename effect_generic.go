package eaxefx

import "math"

// genericEffect is the shared dispatch engine for the 11 non-reverb,
// non-null effect types. Reverb gets its own file (effect_reverb.go)
// for its typed ReverbProperties struct and ENVIRONMENT presets;
// the null effect gets its own file because it carries no properties at
// all. The other 11 share an identical template per §4.6 (shadow +
// defaults + convert-and-apply + validate/defer/apply_deferred
// dispatch), so this file parameterizes that template on a per-type
// field table instead of repeating it 11 times.
//
// Field values are carried internally as float32 even for the few
// fields whose EAX struct is an enum/int (waveform, phase, direction):
// the wire-exact struct layout is out of scope (§1: "bit-exact
// reproduction of the original EAX DSP" is a non-goal, "only the
// parameter mapping is specified"), and every one of these fields is
// small-integer-valued, so a float32 carries it losslessly.
type genericFieldKind int

const (
	fieldFloat genericFieldKind = iota
	fieldInt
)

type genericFieldSpec struct {
	name     string
	kind     genericFieldKind
	min, max float32
	def      float32
	efxToken uint32
}

type genericEffectSpec struct {
	effectType EffectType
	fields     []genericFieldSpec
}

// genericEffect is the shadow+EFX pairing for any effect described by a
// genericEffectSpec.
type genericEffect struct {
	spec     *genericEffectSpec
	shadow   []float32
	deferred []float32
	dirty    dirtySet[genericProperty]
}

// genericProperty is the dirty-bit/property-id type for generic
// effects: field i of spec.fields has property id i+2 (0 = none, 1 =
// ALLPARAMETERS), matching the convention used by reverb and fx_slot.
type genericProperty = uint32

func newGenericEffect(t EffectType, _ uint32) Effect {
	spec := genericSpecFor(t)
	values := make([]float32, len(spec.fields))
	for i, f := range spec.fields {
		values[i] = f.def
	}
	return &genericEffect{
		spec:     spec,
		shadow:   values,
		deferred: append([]float32(nil), values...),
	}
}

func (e *genericEffect) Type() EffectType { return e.spec.effectType }

func (e *genericEffect) fieldIndex(propertyID uint32) (int, bool) {
	if propertyID < 2 {
		return 0, false
	}
	i := int(propertyID) - 2
	if i < 0 || i >= len(e.spec.fields) {
		return 0, false
	}
	return i, true
}

func (e *genericEffect) Dispatch(alx alxEffectBackend, handle EffectHandle, call *EAXCall) error {
	if call.IsGet {
		return e.dispatchGet(call)
	}
	return e.dispatchSet(alx, handle, call)
}

func (e *genericEffect) dispatchGet(call *EAXCall) error {
	if call.PropertyID == 1 {
		return copyFloat32Slice(call, e.shadow, false)
	}
	i, ok := e.fieldIndex(call.PropertyID)
	if !ok {
		return errInvalidOperation("property_id", "unrecognized %s property %d", e.spec.effectType, call.PropertyID)
	}
	return SetValue(call, e.shadow[i])
}

func (e *genericEffect) dispatchSet(alx alxEffectBackend, handle EffectHandle, call *EAXCall) error {
	copy(e.deferred, e.shadow)

	if call.PropertyID == 1 {
		incoming := make([]float32, len(e.spec.fields))
		if err := copyFloat32Slice(call, incoming, true); err != nil {
			return err
		}
		for i, f := range e.spec.fields {
			if err := validateRangeF32(f.name, incoming[i], f.min, f.max); err != nil {
				return err
			}
		}
		for i, v := range incoming {
			if v != e.shadow[i] {
				e.dirty.mark(uint32(i))
			}
		}
		copy(e.deferred, incoming)
		return e.applyDeferred(alx, handle)
	}

	i, ok := e.fieldIndex(call.PropertyID)
	if !ok {
		return errInvalidOperation("property_id", "unrecognized %s property %d", e.spec.effectType, call.PropertyID)
	}
	v, err := Value[float32](call)
	if err != nil {
		return err
	}
	f := e.spec.fields[i]
	if err := validateRangeF32(f.name, v, f.min, f.max); err != nil {
		return err
	}
	e.deferred[i] = v
	if v != e.shadow[i] {
		e.dirty.mark(uint32(i))
	}
	return e.applyDeferred(alx, handle)
}

func (e *genericEffect) applyDeferred(alx alxEffectBackend, handle EffectHandle) error {
	e.dirty.forEach(func(i genericProperty) {
		f := e.spec.fields[i]
		v := clampF32(e.deferred[i], f.min, f.max)
		if f.kind == fieldInt {
			alx.Effecti(handle, f.efxToken, int32(v))
		} else {
			alx.Effectf(handle, f.efxToken, v)
		}
	})
	e.dirty.clear()
	copy(e.shadow, e.deferred)
	return nil
}

func clampF32(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// copyFloat32Slice transfers an ALLPARAMETERS struct between a call's
// raw buffer and a []float32 shadow, matching the byte-packed transport
// convention described on genericEffect.
func copyFloat32Slice(call *EAXCall, values []float32, fromBuffer bool) error {
	const wordSize = 4
	need := len(values) * wordSize
	if call.Buffer == nil || len(call.Buffer) < need {
		return errInvalidValue("buffer", "need at least %d bytes, have %d", need, len(call.Buffer))
	}
	for i := range values {
		off := i * wordSize
		word := call.Buffer[off : off+wordSize : off+wordSize]
		if fromBuffer {
			values[i] = bytesToFloat32(word)
		} else {
			float32ToBytes(values[i], word)
		}
	}
	return nil
}

func bytesToFloat32(b []byte) float32 {
	bits := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	return math.Float32frombits(bits)
}

func float32ToBytes(v float32, b []byte) {
	bits := math.Float32bits(v)
	b[0] = byte(bits)
	b[1] = byte(bits >> 8)
	b[2] = byte(bits >> 16)
	b[3] = byte(bits >> 24)
}
