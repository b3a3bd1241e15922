package eaxefx

// FXSlotProperty enumerates the settable/gettable FX-slot properties,
// per §4.5.
type FXSlotProperty uint32

const (
	FXSlotNone FXSlotProperty = iota
	FXSlotAllParameters
	FXSlotLoadEffect
	FXSlotVolume
	FXSlotLock
	FXSlotFlags
	FXSlotOcclusion
	FXSlotOcclusionLFRatio
)

// FXSlotParameters is the shadow struct backing ALLPARAMETERS, matching
// the §3 data model's "shadow properties" list (the effect's own
// parameters are a separate struct, reached through fx_slot_effect
// calls).
type FXSlotParameters struct {
	GUIDLoadEffect   GUID
	VolumeMB         int32
	Lock             int32
	Flags            uint32
	OcclusionMB      int32
	OcclusionLFRatio float32
}

func defaultFXSlotFlags(version uint32) uint32 {
	if version >= 5 {
		return fxSlot50DefaultFlags
	}
	return fxSlot40DefaultFlags
}

func defaultFXSlotParameters(loadEffect GUID, version uint32) FXSlotParameters {
	return FXSlotParameters{
		GUIDLoadEffect:   loadEffect,
		VolumeMB:         fxSlotDefaultVolume,
		Lock:             0,
		Flags:            defaultFXSlotFlags(version),
		OcclusionMB:      fxSlotDefaultOcclusion,
		OcclusionLFRatio: fxSlotDefaultOcclusionLFRatio,
	}
}

// FXSlot owns one EFX auxiliary-effect slot and whichever of the 13
// effect objects is currently loaded into it, per §3's "FX slot" entry
// and §4.5.
type FXSlot struct {
	index     int
	dedicated bool

	aux    AuxSlotHandle
	effect Effect
	handle EffectHandle

	shadow   FXSlotParameters
	deferred FXSlotParameters

	version uint32
}

// newEffect constructs the shadow+dispatch pairing for an effect type,
// defaulted per §4.6 step 2. Every variant but reverb shares the generic
// template in effect_generic.go; reverb gets its own file for its typed
// ReverbProperties struct and ENVIRONMENT presets (its ALLPARAMETERS
// accepts only that one struct shape).
func newEffect(t EffectType, version uint32) Effect {
	if t == EffectReverb {
		return NewReverbEffect(version)
	}
	if t == EffectNull {
		return NewNullEffect()
	}
	return newGenericEffect(t, version)
}

// NewFXSlot builds slot i with its dedicated default effect, per §3:
// slot 0 defaults to reverb, slot 1 to chorus, slots 2/3 start null.
// Slots 0 and 1 are dedicated: LOADEFFECT/ALLPARAMETERS may never change
// their guidLoadEffect or lock (I2).
func NewFXSlot(index int, version uint32) *FXSlot {
	var defaultType EffectType
	dedicated := false
	switch index {
	case 0:
		defaultType, dedicated = EffectReverb, true
	case 1:
		defaultType, dedicated = EffectChorus, true
	default:
		defaultType = EffectNull
	}

	eff := newEffect(defaultType, version)
	params := defaultFXSlotParameters(effectGUIDForType(defaultType), version)

	return &FXSlot{
		index:     index,
		dedicated: dedicated,
		effect:    eff,
		shadow:    params,
		deferred:  params,
		version:   version,
	}
}

// Init allocates the slot's EFX auxiliary handle and its default
// effect's EFX handle, binds the two, and pushes the defaulted shadow to
// EFX, per §4.9 step 3.
func (s *FXSlot) Init(alx alxSlotBackend) error {
	aux, err := alx.GenAuxSlot()
	if err != nil {
		return err
	}
	s.aux = aux

	handle, err := alx.GenEffect()
	if err != nil {
		alx.DeleteAuxSlot(aux)
		return err
	}
	if err := alx.EffectType(handle, alEffectTypeFor(s.effect.Type())); err != nil {
		alx.DeleteEffect(handle)
		alx.DeleteAuxSlot(aux)
		return err
	}
	if err := alx.BindEffectToAuxSlot(aux, handle); err != nil {
		alx.DeleteEffect(handle)
		alx.DeleteAuxSlot(aux)
		return err
	}
	s.handle = handle

	if err := alx.AuxSlotf(aux, alAuxiliaryEffectSlotGain, fxSlotVolumeToEfx(s.shadow.VolumeMB)); err != nil {
		return err
	}
	sendAuto := int32(0)
	if s.shadow.Flags&fxSlotFlagsEnvironment != 0 {
		sendAuto = 1
	}
	return alx.AuxSloti(aux, alAuxiliaryEffectSlotAuxSendAuto, sendAuto)
}

// EffectType reports the type of the currently loaded effect.
func (s *FXSlot) EffectType() EffectType { return s.effect.Type() }

// Locked reports I6's gate: a locked slot rejects any write that would
// change guidLoadEffect.
func (s *FXSlot) Locked() bool { return s.shadow.Lock != 0 }

// Dispatch handles one fx_slot-scoped or fx_slot_effect-scoped call. It
// returns filtersDirty, per §4.5: "Set returns a boolean 'filters dirty'
// which the context lifts to a full source-filter refresh."
func (s *FXSlot) Dispatch(alx alxSlotBackend, call *EAXCall) (bool, error) {
	if call.PropertySetID == PropertySetFXSlotEffect {
		return false, s.dispatchEffect(alx, call)
	}
	if call.IsGet {
		return false, s.dispatchGet(call)
	}
	return s.dispatchSet(alx, call)
}

func (s *FXSlot) dispatchEffect(alx alxSlotBackend, call *EAXCall) error {
	if s.effect.Type() == EffectNull {
		return errNoEffectLoaded("fx_slot_effect", "slot %d has no effect loaded", s.index)
	}
	if want, ok := effectTypeByGUID(call.EffectGUID); !ok || want != s.effect.Type() {
		return errInvalidOperation("effect_guid", "slot %d has a different effect loaded", s.index)
	}
	return s.effect.Dispatch(alx, s.handle, call)
}

func (s *FXSlot) dispatchGet(call *EAXCall) error {
	switch FXSlotProperty(call.PropertyID) {
	case FXSlotAllParameters:
		return SetValue(call, s.shadow)
	case FXSlotLoadEffect:
		return SetValue(call, s.shadow.GUIDLoadEffect)
	case FXSlotVolume:
		return SetValue(call, s.shadow.VolumeMB)
	case FXSlotLock:
		return SetValue(call, s.shadow.Lock)
	case FXSlotFlags:
		return SetValue(call, s.shadow.Flags)
	case FXSlotOcclusion:
		return SetValue(call, s.shadow.OcclusionMB)
	case FXSlotOcclusionLFRatio:
		return SetValue(call, s.shadow.OcclusionLFRatio)
	default:
		return errInvalidOperation("property_id", "unrecognized fx_slot property %d", call.PropertyID)
	}
}

func (s *FXSlot) dispatchSet(alx alxSlotBackend, call *EAXCall) (bool, error) {
	s.deferred = s.shadow

	switch FXSlotProperty(call.PropertyID) {
	case FXSlotAllParameters:
		if s.dedicated {
			return false, errInvalidOperation("fx_slot", "slot %d is dedicated; ALLPARAMETERS cannot change its effect", s.index)
		}
		v, err := Value[FXSlotParameters](call)
		if err != nil {
			return false, err
		}
		if err := s.validate(v); err != nil {
			return false, err
		}
		if s.Locked() && v.GUIDLoadEffect != s.shadow.GUIDLoadEffect {
			return false, errInvalidOperation("load_effect", "slot %d is locked", s.index)
		}
		if v.GUIDLoadEffect != s.shadow.GUIDLoadEffect {
			if err := s.loadEffect(alx, v.GUIDLoadEffect); err != nil {
				return false, err
			}
		}
		s.deferred = v
		return s.commit(alx)

	case FXSlotLoadEffect:
		g, err := Value[GUID](call)
		if err != nil {
			return false, err
		}
		if s.Locked() && g != s.shadow.GUIDLoadEffect {
			return false, errInvalidOperation("load_effect", "slot %d is locked", s.index)
		}
		if g == s.shadow.GUIDLoadEffect {
			// S6: reloading the current effect is a no-op, not an error,
			// even while locked or dedicated.
			return false, nil
		}
		if s.dedicated {
			return false, errInvalidOperation("fx_slot", "slot %d is dedicated", s.index)
		}
		if err := s.loadEffect(alx, g); err != nil {
			return false, err
		}
		s.deferred.GUIDLoadEffect = g
		return s.commit(alx)

	case FXSlotVolume:
		v, err := Value[int32](call)
		if err != nil {
			return false, err
		}
		if err := validateRangeI32("volume", v, fxSlotMinVolume, fxSlotMaxVolume); err != nil {
			return false, err
		}
		s.deferred.VolumeMB = v
		if v != s.shadow.VolumeMB {
			if err := alx.AuxSlotf(s.aux, alAuxiliaryEffectSlotGain, fxSlotVolumeToEfx(v)); err != nil {
				return false, err
			}
		}
		return s.commit(alx)

	case FXSlotLock:
		if s.dedicated {
			return false, errInvalidOperation("fx_slot", "slot %d is dedicated", s.index)
		}
		v, err := Value[int32](call)
		if err != nil {
			return false, err
		}
		if err := validateRangeI32("lock", v, fxSlotMinLock, fxSlotMaxLock); err != nil {
			return false, err
		}
		s.deferred.Lock = v
		return s.commit(alx)

	case FXSlotFlags:
		v, err := Value[uint32](call)
		if err != nil {
			return false, err
		}
		if err := validateFlags("flags", v, fxSlotFlagsReservedMask(s.version)); err != nil {
			return false, err
		}
		s.deferred.Flags = v
		if v != s.shadow.Flags {
			sendAuto := int32(0)
			if v&fxSlotFlagsEnvironment != 0 {
				sendAuto = 1
			}
			if err := alx.AuxSloti(s.aux, alAuxiliaryEffectSlotAuxSendAuto, sendAuto); err != nil {
				return false, err
			}
		}
		return s.commit(alx)

	case FXSlotOcclusion:
		if s.version < 5 {
			return false, errIncompatibleVersion("occlusion", "fx_slot occlusion requires EAX5")
		}
		v, err := Value[int32](call)
		if err != nil {
			return false, err
		}
		if err := validateRangeI32("occlusion", v, fxSlotMinOcclusion, fxSlotMaxOcclusion); err != nil {
			return false, err
		}
		s.deferred.OcclusionMB = v
		if _, err := s.commit(alx); err != nil {
			return false, err
		}
		return true, nil // occlusion always marks source re-filter, per §4.5

	case FXSlotOcclusionLFRatio:
		if s.version < 5 {
			return false, errIncompatibleVersion("occlusion_lf_ratio", "fx_slot occlusion_lf_ratio requires EAX5")
		}
		v, err := Value[float32](call)
		if err != nil {
			return false, err
		}
		if err := validateRangeF32("occlusion_lf_ratio", v, fxSlotMinOcclusionLFRatio, fxSlotMaxOcclusionLFRatio); err != nil {
			return false, err
		}
		s.deferred.OcclusionLFRatio = v
		_, err = s.commit(alx)
		return true, err

	default:
		return false, errInvalidOperation("property_id", "unrecognized fx_slot property %d", call.PropertyID)
	}
}

// loadEffect tears down the slot's current EFX effect handle and effect
// object and installs a fresh one for guid, rebinding it to the owned
// aux slot, per §4.5 LOADEFFECT and §4.6 "rebinds the effect to the
// owning slot".
func (s *FXSlot) loadEffect(alx alxSlotBackend, guid GUID) error {
	t, ok := effectTypeByGUID(guid)
	if !ok {
		return errUnknownEffect("load_effect", "unrecognized effect GUID %s", guid)
	}

	newHandle, err := alx.GenEffect()
	if err != nil {
		return err
	}
	if err := alx.EffectType(newHandle, alEffectTypeFor(t)); err != nil {
		alx.DeleteEffect(newHandle)
		return err
	}
	if err := alx.BindEffectToAuxSlot(s.aux, newHandle); err != nil {
		alx.DeleteEffect(newHandle)
		return err
	}

	oldHandle := s.handle
	s.handle = newHandle
	s.effect = newEffect(t, s.version)
	if oldHandle != 0 {
		alx.DeleteEffect(oldHandle)
	}
	return nil
}

func (s *FXSlot) validate(v FXSlotParameters) error {
	if err := validateRangeI32("volume", v.VolumeMB, fxSlotMinVolume, fxSlotMaxVolume); err != nil {
		return err
	}
	if err := validateRangeI32("lock", v.Lock, fxSlotMinLock, fxSlotMaxLock); err != nil {
		return err
	}
	if err := validateFlags("flags", v.Flags, fxSlotFlagsReservedMask(s.version)); err != nil {
		return err
	}
	if err := validateRangeI32("occlusion", v.OcclusionMB, fxSlotMinOcclusion, fxSlotMaxOcclusion); err != nil {
		return err
	}
	return validateRangeF32("occlusion_lf_ratio", v.OcclusionLFRatio, fxSlotMinOcclusionLFRatio, fxSlotMaxOcclusionLFRatio)
}

// commit finalizes a successful deferred write by swapping the deferred
// copy into the slot shadow. It always reports false; the occlusion
// cases of dispatchSet request the source-filter refresh themselves.
func (s *FXSlot) commit(alx alxSlotBackend) (bool, error) {
	s.shadow = s.deferred
	return false, nil
}
