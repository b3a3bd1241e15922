package eaxefx

// ReverbProperty enumerates the settable/gettable reverb properties, in
// declaration order (the order apply_deferred walks dirty bits in).
type ReverbProperty uint32

const (
	ReverbNone ReverbProperty = iota
	ReverbAllParameters
	ReverbEnvironment
	ReverbEnvironmentSize
	ReverbEnvironmentDiffusion
	ReverbRoom
	ReverbRoomHF
	ReverbRoomLF
	ReverbDecayTime
	ReverbDecayHFRatio
	ReverbDecayLFRatio
	ReverbReflections
	ReverbReflectionsDelay
	ReverbReflectionsPan
	ReverbReverb
	ReverbReverbDelay
	ReverbReverbPan
	ReverbEchoTime
	ReverbEchoDepth
	ReverbModulationTime
	ReverbModulationDepth
	ReverbAirAbsorptionHF
	ReverbHFReference
	ReverbLFReference
	ReverbRoomRolloffFactor
	ReverbFlags
)

// Vector3 is EAXVECTOR: a 3-component panning vector used by the
// reflections and late-reverb pan fields. The zero value is "no pan",
// matching EAXREVERBPROPERTIES' default-initialized vectors.
type Vector3 struct {
	X, Y, Z float32
}

// ReverbProperties is the full EAX reverb parameter struct, §3 "Effect
// shadow" / §6.3.
type ReverbProperties struct {
	Environment          uint32
	EnvironmentSize      float32
	EnvironmentDiffusion float32
	Room                 int32
	RoomHF               int32
	RoomLF               int32
	DecayTime            float32
	DecayHFRatio         float32
	DecayLFRatio         float32
	Reflections          int32
	ReflectionsDelay     float32
	ReflectionsPan       Vector3
	Reverb               int32
	ReverbDelay          float32
	ReverbPan            Vector3
	EchoTime             float32
	EchoDepth            float32
	ModulationTime       float32
	ModulationDepth      float32
	AirAbsorptionHF      float32
	HFReference          float32
	LFReference          float32
	RoomRolloffFactor    float32
	Flags                uint32
}

func defaultReverbProperties() ReverbProperties {
	return ReverbProperties{
		Environment:          reverbDefaultEnvironment,
		EnvironmentSize:      reverbDefaultEnvironmentSize,
		EnvironmentDiffusion: reverbDefaultEnvironmentDiffusion,
		Room:                 reverbDefaultRoom,
		RoomHF:               reverbDefaultRoomHF,
		RoomLF:               reverbDefaultRoomLF,
		DecayTime:            reverbDefaultDecayTime,
		DecayHFRatio:         reverbDefaultDecayHFRatio,
		DecayLFRatio:         reverbDefaultDecayLFRatio,
		Reflections:          reverbDefaultReflections,
		ReflectionsDelay:     reverbDefaultReflectionsDelay,
		Reverb:               reverbDefaultReverb,
		ReverbDelay:          reverbDefaultReverbDelay,
		EchoTime:             reverbDefaultEchoTime,
		EchoDepth:            reverbDefaultEchoDepth,
		ModulationTime:       reverbDefaultModulationTime,
		ModulationDepth:      reverbDefaultModulationDepth,
		AirAbsorptionHF:      reverbDefaultAirAbsorptionHF,
		HFReference:          reverbDefaultHFReference,
		LFReference:          reverbDefaultLFReference,
		RoomRolloffFactor:    reverbDefaultRoomRolloffFactor,
		Flags:                reverbDefaultFlags,
	}
}

func reverbPropertiesFromPreset(p ReverbPreset, environment uint32) ReverbProperties {
	return ReverbProperties{
		Environment:          environment,
		EnvironmentSize:      p.EnvironmentSize,
		EnvironmentDiffusion: p.EnvironmentDiffusion,
		Room:                 p.Room,
		RoomHF:               p.RoomHF,
		RoomLF:               p.RoomLF,
		DecayTime:            p.DecayTime,
		DecayHFRatio:         p.DecayHFRatio,
		DecayLFRatio:         p.DecayLFRatio,
		Reflections:          p.Reflections,
		ReflectionsDelay:     p.ReflectionsDelay,
		Reverb:               p.Reverb,
		ReverbDelay:          p.ReverbDelay,
		EchoTime:             p.EchoTime,
		EchoDepth:            p.EchoDepth,
		ModulationTime:       p.ModulationTime,
		ModulationDepth:      p.ModulationDepth,
		AirAbsorptionHF:      p.AirAbsorptionHF,
		HFReference:          p.HFReference,
		LFReference:          p.LFReference,
		RoomRolloffFactor:    p.RoomRolloffFactor,
		Flags:                reverbDefaultFlags,
	}
}

// ReverbEffect is the shadow+EFX pairing for the reverb effect type
// (§4.6). Its ALLPARAMETERS accepts only the full ReverbProperties
// struct; the shorter EAX 2.0 listener struct is not accepted, and the
// v2/v3 listener GUIDs route to the context rather than to this effect.
type ReverbEffect struct {
	shadow   ReverbProperties
	deferred ReverbProperties
	dirty    dirtySet[ReverbProperty]
	version  uint32
}

func NewReverbEffect(version uint32) *ReverbEffect {
	d := defaultReverbProperties()
	return &ReverbEffect{shadow: d, deferred: d, version: version}
}

func (e *ReverbEffect) Type() EffectType { return EffectReverb }

func (e *ReverbEffect) validateAll(p ReverbProperties) error {
	if err := validateRangeU32("environment", p.Environment, reverbMinEnvironment, reverbMaxEnvironmentForVersion(e.version)); err != nil {
		return err
	}
	if err := validateRangeF32("environment_size", p.EnvironmentSize, reverbMinEnvironmentSize, reverbMaxEnvironmentSize); err != nil {
		return err
	}
	if err := validateRangeF32("environment_diffusion", p.EnvironmentDiffusion, reverbMinEnvironmentDiffusion, reverbMaxEnvironmentDiffusion); err != nil {
		return err
	}
	if err := validateRangeI32("room", p.Room, reverbMinRoom, reverbMaxRoom); err != nil {
		return err
	}
	if err := validateRangeI32("room_hf", p.RoomHF, reverbMinRoomHF, reverbMaxRoomHF); err != nil {
		return err
	}
	if err := validateRangeI32("room_lf", p.RoomLF, reverbMinRoomLF, reverbMaxRoomLF); err != nil {
		return err
	}
	if err := validateRangeF32("decay_time", p.DecayTime, reverbMinDecayTime, reverbMaxDecayTime); err != nil {
		return err
	}
	if err := validateRangeF32("decay_hf_ratio", p.DecayHFRatio, reverbMinDecayHFRatio, reverbMaxDecayHFRatio); err != nil {
		return err
	}
	if err := validateRangeF32("decay_lf_ratio", p.DecayLFRatio, reverbMinDecayLFRatio, reverbMaxDecayLFRatio); err != nil {
		return err
	}
	if err := validateRangeI32("reflections", p.Reflections, reverbMinReflections, reverbMaxReflections); err != nil {
		return err
	}
	if err := validateRangeF32("reflections_delay", p.ReflectionsDelay, reverbMinReflectionsDelay, reverbMaxReflectionsDelay); err != nil {
		return err
	}
	// Pan vectors are unbounded direction hints, not range-limited
	// scalars (§6.3); EAXVECTOR carries no min/max in the reference API.
	if err := validateRangeI32("reverb", p.Reverb, reverbMinReverb, reverbMaxReverb); err != nil {
		return err
	}
	if err := validateRangeF32("reverb_delay", p.ReverbDelay, reverbMinReverbDelay, reverbMaxReverbDelay); err != nil {
		return err
	}
	if err := validateRangeF32("echo_time", p.EchoTime, reverbMinEchoTime, reverbMaxEchoTime); err != nil {
		return err
	}
	if err := validateRangeF32("echo_depth", p.EchoDepth, reverbMinEchoDepth, reverbMaxEchoDepth); err != nil {
		return err
	}
	if err := validateRangeF32("modulation_time", p.ModulationTime, reverbMinModulationTime, reverbMaxModulationTime); err != nil {
		return err
	}
	if err := validateRangeF32("modulation_depth", p.ModulationDepth, reverbMinModulationDepth, reverbMaxModulationDepth); err != nil {
		return err
	}
	if err := validateRangeF32("air_absorption_hf", p.AirAbsorptionHF, reverbMinAirAbsorptionHF, reverbMaxAirAbsorptionHF); err != nil {
		return err
	}
	if err := validateRangeF32("hf_reference", p.HFReference, reverbMinHFReference, reverbMaxHFReference); err != nil {
		return err
	}
	if err := validateRangeF32("lf_reference", p.LFReference, reverbMinLFReference, reverbMaxLFReference); err != nil {
		return err
	}
	if err := validateRangeF32("room_rolloff_factor", p.RoomRolloffFactor, reverbMinRoomRolloffFactor, reverbMaxRoomRolloffFactor); err != nil {
		return err
	}
	return validateFlags("flags", p.Flags, reverbFlagsReserved)
}

// Dispatch implements Effect, per the validate->defer->apply_deferred
// template of §4.6.
func (e *ReverbEffect) Dispatch(alx alxEffectBackend, handle EffectHandle, call *EAXCall) error {
	if call.IsGet {
		return e.dispatchGet(call)
	}
	return e.dispatchSet(alx, handle, call)
}

func (e *ReverbEffect) dispatchGet(call *EAXCall) error {
	switch ReverbProperty(call.PropertyID) {
	case ReverbAllParameters:
		return SetValue(call, e.shadow)
	case ReverbEnvironment:
		return SetValue(call, e.shadow.Environment)
	case ReverbEnvironmentSize:
		return SetValue(call, e.shadow.EnvironmentSize)
	case ReverbEnvironmentDiffusion:
		return SetValue(call, e.shadow.EnvironmentDiffusion)
	case ReverbRoom:
		return SetValue(call, e.shadow.Room)
	case ReverbRoomHF:
		return SetValue(call, e.shadow.RoomHF)
	case ReverbRoomLF:
		return SetValue(call, e.shadow.RoomLF)
	case ReverbDecayTime:
		return SetValue(call, e.shadow.DecayTime)
	case ReverbDecayHFRatio:
		return SetValue(call, e.shadow.DecayHFRatio)
	case ReverbDecayLFRatio:
		return SetValue(call, e.shadow.DecayLFRatio)
	case ReverbReflections:
		return SetValue(call, e.shadow.Reflections)
	case ReverbReflectionsDelay:
		return SetValue(call, e.shadow.ReflectionsDelay)
	case ReverbReflectionsPan:
		return SetValue(call, e.shadow.ReflectionsPan)
	case ReverbReverb:
		return SetValue(call, e.shadow.Reverb)
	case ReverbReverbDelay:
		return SetValue(call, e.shadow.ReverbDelay)
	case ReverbReverbPan:
		return SetValue(call, e.shadow.ReverbPan)
	case ReverbEchoTime:
		return SetValue(call, e.shadow.EchoTime)
	case ReverbEchoDepth:
		return SetValue(call, e.shadow.EchoDepth)
	case ReverbModulationTime:
		return SetValue(call, e.shadow.ModulationTime)
	case ReverbModulationDepth:
		return SetValue(call, e.shadow.ModulationDepth)
	case ReverbAirAbsorptionHF:
		return SetValue(call, e.shadow.AirAbsorptionHF)
	case ReverbHFReference:
		return SetValue(call, e.shadow.HFReference)
	case ReverbLFReference:
		return SetValue(call, e.shadow.LFReference)
	case ReverbRoomRolloffFactor:
		return SetValue(call, e.shadow.RoomRolloffFactor)
	case ReverbFlags:
		return SetValue(call, e.shadow.Flags)
	default:
		return errInvalidOperation("property_id", "unrecognized reverb property %d", call.PropertyID)
	}
}

func (e *ReverbEffect) dispatchSet(alx alxEffectBackend, handle EffectHandle, call *EAXCall) error {
	e.deferred = e.shadow

	switch ReverbProperty(call.PropertyID) {
	case ReverbAllParameters:
		v, err := Value[ReverbProperties](call)
		if err != nil {
			return err
		}
		if err := e.validateAll(v); err != nil {
			return err
		}
		e.deferred = v
		if v != e.shadow {
			e.dirty.markAll()
		}

	case ReverbEnvironment:
		v, err := Value[uint32](call)
		if err != nil {
			return err
		}
		if err := validateRangeU32("environment", v, reverbMinEnvironment, reverbMaxEnvironmentForVersion(e.version)); err != nil {
			return err
		}
		if v < uint32(len(reverbPresets)) {
			// Writing a named environment is equivalent to writing
			// ALLPARAMETERS with the preset's values, per §4.6.
			next := reverbPropertiesFromPreset(reverbPresets[v], v)
			e.deferred = next
			if next != e.shadow {
				e.dirty.markAll()
			}
		} else {
			// UNDEFINED (§9): accepted, but has no preset; only the
			// index itself changes.
			e.deferred.Environment = v
			if v != e.shadow.Environment {
				e.dirty.mark(ReverbEnvironment)
			}
		}

	case ReverbEnvironmentSize:
		v, err := Value[float32](call)
		if err != nil {
			return err
		}
		if err := validateRangeF32("environment_size", v, reverbMinEnvironmentSize, reverbMaxEnvironmentSize); err != nil {
			return err
		}
		e.deferred.EnvironmentSize = v
		if v != e.shadow.EnvironmentSize {
			e.dirty.mark(ReverbEnvironmentSize)
		}

	case ReverbEnvironmentDiffusion:
		v, err := Value[float32](call)
		if err != nil {
			return err
		}
		if err := validateRangeF32("environment_diffusion", v, reverbMinEnvironmentDiffusion, reverbMaxEnvironmentDiffusion); err != nil {
			return err
		}
		e.deferred.EnvironmentDiffusion = v
		if v != e.shadow.EnvironmentDiffusion {
			e.dirty.mark(ReverbEnvironmentDiffusion)
		}

	case ReverbRoom:
		v, err := Value[int32](call)
		if err != nil {
			return err
		}
		if err := validateRangeI32("room", v, reverbMinRoom, reverbMaxRoom); err != nil {
			return err
		}
		e.deferred.Room = v
		if v != e.shadow.Room {
			e.dirty.mark(ReverbRoom)
		}

	case ReverbRoomHF:
		v, err := Value[int32](call)
		if err != nil {
			return err
		}
		if err := validateRangeI32("room_hf", v, reverbMinRoomHF, reverbMaxRoomHF); err != nil {
			return err
		}
		e.deferred.RoomHF = v
		if v != e.shadow.RoomHF {
			e.dirty.mark(ReverbRoomHF)
		}

	case ReverbRoomLF:
		v, err := Value[int32](call)
		if err != nil {
			return err
		}
		if err := validateRangeI32("room_lf", v, reverbMinRoomLF, reverbMaxRoomLF); err != nil {
			return err
		}
		e.deferred.RoomLF = v
		if v != e.shadow.RoomLF {
			e.dirty.mark(ReverbRoomLF)
		}

	case ReverbDecayTime:
		v, err := Value[float32](call)
		if err != nil {
			return err
		}
		if err := validateRangeF32("decay_time", v, reverbMinDecayTime, reverbMaxDecayTime); err != nil {
			return err
		}
		e.deferred.DecayTime = v
		if v != e.shadow.DecayTime {
			e.dirty.mark(ReverbDecayTime)
		}

	case ReverbDecayHFRatio:
		v, err := Value[float32](call)
		if err != nil {
			return err
		}
		if err := validateRangeF32("decay_hf_ratio", v, reverbMinDecayHFRatio, reverbMaxDecayHFRatio); err != nil {
			return err
		}
		e.deferred.DecayHFRatio = v
		if v != e.shadow.DecayHFRatio {
			e.dirty.mark(ReverbDecayHFRatio)
		}

	case ReverbDecayLFRatio:
		v, err := Value[float32](call)
		if err != nil {
			return err
		}
		if err := validateRangeF32("decay_lf_ratio", v, reverbMinDecayLFRatio, reverbMaxDecayLFRatio); err != nil {
			return err
		}
		e.deferred.DecayLFRatio = v
		if v != e.shadow.DecayLFRatio {
			e.dirty.mark(ReverbDecayLFRatio)
		}

	case ReverbReflections:
		v, err := Value[int32](call)
		if err != nil {
			return err
		}
		if err := validateRangeI32("reflections", v, reverbMinReflections, reverbMaxReflections); err != nil {
			return err
		}
		e.deferred.Reflections = v
		if v != e.shadow.Reflections {
			e.dirty.mark(ReverbReflections)
		}

	case ReverbReflectionsDelay:
		v, err := Value[float32](call)
		if err != nil {
			return err
		}
		if err := validateRangeF32("reflections_delay", v, reverbMinReflectionsDelay, reverbMaxReflectionsDelay); err != nil {
			return err
		}
		e.deferred.ReflectionsDelay = v
		if v != e.shadow.ReflectionsDelay {
			e.dirty.mark(ReverbReflectionsDelay)
		}

	case ReverbReflectionsPan:
		v, err := Value[Vector3](call)
		if err != nil {
			return err
		}
		e.deferred.ReflectionsPan = v
		if v != e.shadow.ReflectionsPan {
			e.dirty.mark(ReverbReflectionsPan)
		}

	case ReverbReverb:
		v, err := Value[int32](call)
		if err != nil {
			return err
		}
		if err := validateRangeI32("reverb", v, reverbMinReverb, reverbMaxReverb); err != nil {
			return err
		}
		e.deferred.Reverb = v
		if v != e.shadow.Reverb {
			e.dirty.mark(ReverbReverb)
		}

	case ReverbReverbDelay:
		v, err := Value[float32](call)
		if err != nil {
			return err
		}
		if err := validateRangeF32("reverb_delay", v, reverbMinReverbDelay, reverbMaxReverbDelay); err != nil {
			return err
		}
		e.deferred.ReverbDelay = v
		if v != e.shadow.ReverbDelay {
			e.dirty.mark(ReverbReverbDelay)
		}

	case ReverbReverbPan:
		v, err := Value[Vector3](call)
		if err != nil {
			return err
		}
		e.deferred.ReverbPan = v
		if v != e.shadow.ReverbPan {
			e.dirty.mark(ReverbReverbPan)
		}

	case ReverbEchoTime:
		v, err := Value[float32](call)
		if err != nil {
			return err
		}
		if err := validateRangeF32("echo_time", v, reverbMinEchoTime, reverbMaxEchoTime); err != nil {
			return err
		}
		e.deferred.EchoTime = v
		if v != e.shadow.EchoTime {
			e.dirty.mark(ReverbEchoTime)
		}

	case ReverbEchoDepth:
		v, err := Value[float32](call)
		if err != nil {
			return err
		}
		if err := validateRangeF32("echo_depth", v, reverbMinEchoDepth, reverbMaxEchoDepth); err != nil {
			return err
		}
		e.deferred.EchoDepth = v
		if v != e.shadow.EchoDepth {
			e.dirty.mark(ReverbEchoDepth)
		}

	case ReverbModulationTime:
		v, err := Value[float32](call)
		if err != nil {
			return err
		}
		if err := validateRangeF32("modulation_time", v, reverbMinModulationTime, reverbMaxModulationTime); err != nil {
			return err
		}
		e.deferred.ModulationTime = v
		if v != e.shadow.ModulationTime {
			e.dirty.mark(ReverbModulationTime)
		}

	case ReverbModulationDepth:
		v, err := Value[float32](call)
		if err != nil {
			return err
		}
		if err := validateRangeF32("modulation_depth", v, reverbMinModulationDepth, reverbMaxModulationDepth); err != nil {
			return err
		}
		e.deferred.ModulationDepth = v
		if v != e.shadow.ModulationDepth {
			e.dirty.mark(ReverbModulationDepth)
		}

	case ReverbAirAbsorptionHF:
		v, err := Value[float32](call)
		if err != nil {
			return err
		}
		if err := validateRangeF32("air_absorption_hf", v, reverbMinAirAbsorptionHF, reverbMaxAirAbsorptionHF); err != nil {
			return err
		}
		e.deferred.AirAbsorptionHF = v
		if v != e.shadow.AirAbsorptionHF {
			e.dirty.mark(ReverbAirAbsorptionHF)
		}

	case ReverbHFReference:
		v, err := Value[float32](call)
		if err != nil {
			return err
		}
		if err := validateRangeF32("hf_reference", v, reverbMinHFReference, reverbMaxHFReference); err != nil {
			return err
		}
		e.deferred.HFReference = v
		if v != e.shadow.HFReference {
			e.dirty.mark(ReverbHFReference)
		}

	case ReverbLFReference:
		v, err := Value[float32](call)
		if err != nil {
			return err
		}
		if err := validateRangeF32("lf_reference", v, reverbMinLFReference, reverbMaxLFReference); err != nil {
			return err
		}
		e.deferred.LFReference = v
		if v != e.shadow.LFReference {
			e.dirty.mark(ReverbLFReference)
		}

	case ReverbRoomRolloffFactor:
		v, err := Value[float32](call)
		if err != nil {
			return err
		}
		if err := validateRangeF32("room_rolloff_factor", v, reverbMinRoomRolloffFactor, reverbMaxRoomRolloffFactor); err != nil {
			return err
		}
		e.deferred.RoomRolloffFactor = v
		if v != e.shadow.RoomRolloffFactor {
			e.dirty.mark(ReverbRoomRolloffFactor)
		}

	case ReverbFlags:
		v, err := Value[uint32](call)
		if err != nil {
			return err
		}
		if err := validateFlags("flags", v, reverbFlagsReserved); err != nil {
			return err
		}
		e.deferred.Flags = v
		if v != e.shadow.Flags {
			e.dirty.mark(ReverbFlags)
		}

	default:
		return errInvalidOperation("property_id", "unrecognized reverb property %d", call.PropertyID)
	}

	return e.applyDeferred(alx, handle)
}

// applyDeferred walks dirty bits in declaration order, converts, and
// commits to EFX, then to the shadow, per §4.6 step 4 and P3.
func (e *ReverbEffect) applyDeferred(alx alxEffectBackend, handle EffectHandle) error {
	p := e.deferred
	e.dirty.forEach(func(field ReverbProperty) {
		switch field {
		case ReverbEnvironmentSize:
			alx.Effectf(handle, efxReverbDensity, reverbEnvironmentSizeToEfx(p.EnvironmentSize))
		case ReverbEnvironmentDiffusion:
			alx.Effectf(handle, efxReverbDiffusion, reverbEnvironmentDiffusionToEfx(p.EnvironmentDiffusion))
		case ReverbRoom:
			alx.Effectf(handle, efxReverbGain, reverbRoomToEfx(p.Room))
		case ReverbRoomHF:
			alx.Effectf(handle, efxReverbGainHF, reverbRoomHFToEfx(p.RoomHF))
		case ReverbRoomLF:
			alx.Effectf(handle, efxReverbGainLF, reverbRoomLFToEfx(p.RoomLF))
		case ReverbDecayTime:
			alx.Effectf(handle, efxReverbDecayTime, reverbDecayTimeToEfx(p.DecayTime))
		case ReverbDecayHFRatio:
			alx.Effectf(handle, efxReverbDecayHFRatio, reverbDecayHFRatioToEfx(p.DecayHFRatio))
		case ReverbDecayLFRatio:
			alx.Effectf(handle, efxReverbDecayLFRatio, reverbDecayLFRatioToEfx(p.DecayLFRatio))
		case ReverbReflections:
			alx.Effectf(handle, efxReverbReflectionsGain, reverbReflectionsToEfx(p.Reflections))
		case ReverbReflectionsDelay:
			alx.Effectf(handle, efxReverbReflectionsDelay, reverbReflectionsDelayToEfx(p.ReflectionsDelay))
		case ReverbReflectionsPan:
			alx.Effectfv(handle, efxReverbReflectionsPan, []float32{p.ReflectionsPan.X, p.ReflectionsPan.Y, p.ReflectionsPan.Z})
		case ReverbReverb:
			alx.Effectf(handle, efxReverbLateReverbGain, reverbReverbToEfx(p.Reverb))
		case ReverbReverbDelay:
			alx.Effectf(handle, efxReverbLateReverbDelay, reverbReverbDelayToEfx(p.ReverbDelay))
		case ReverbReverbPan:
			alx.Effectfv(handle, efxReverbLateReverbPan, []float32{p.ReverbPan.X, p.ReverbPan.Y, p.ReverbPan.Z})
		case ReverbEchoTime:
			alx.Effectf(handle, efxReverbEchoTime, reverbEchoTimeToEfx(p.EchoTime))
		case ReverbEchoDepth:
			alx.Effectf(handle, efxReverbEchoDepth, reverbEchoDepthToEfx(p.EchoDepth))
		case ReverbModulationTime:
			alx.Effectf(handle, efxReverbModulationTime, reverbModulationTimeToEfx(p.ModulationTime))
		case ReverbModulationDepth:
			alx.Effectf(handle, efxReverbModulationDepth, reverbModulationDepthToEfx(p.ModulationDepth))
		case ReverbAirAbsorptionHF:
			alx.Effectf(handle, efxReverbAirAbsorptionGainHF, reverbAirAbsorptionHFToEfx(p.AirAbsorptionHF))
		case ReverbHFReference:
			alx.Effectf(handle, efxReverbHFReference, reverbHFReferenceToEfx(p.HFReference))
		case ReverbLFReference:
			alx.Effectf(handle, efxReverbLFReference, reverbLFReferenceToEfx(p.LFReference))
		case ReverbRoomRolloffFactor:
			alx.Effectf(handle, efxReverbRoomRolloffFactor, reverbRoomRolloffFactorToEfx(p.RoomRolloffFactor))
		case ReverbFlags:
			alx.Effecti(handle, efxReverbDecayHFLimit, boolToInt32(p.Flags&reverbFlagDecayHFLimit != 0))
		}
	})

	e.dirty.clear()
	e.shadow = e.deferred
	return nil
}

func boolToInt32(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

// EFX reverb effect parameter tokens (AL_EAXREVERB_*).
const (
	efxReverbDensity              uint32 = 0x0001
	efxReverbDiffusion            uint32 = 0x0002
	efxReverbGain                 uint32 = 0x0003
	efxReverbGainHF               uint32 = 0x0004
	efxReverbGainLF               uint32 = 0x0005
	efxReverbDecayTime            uint32 = 0x0006
	efxReverbDecayHFRatio         uint32 = 0x0007
	efxReverbDecayLFRatio         uint32 = 0x0008
	efxReverbReflectionsGain      uint32 = 0x0009
	efxReverbReflectionsDelay     uint32 = 0x000A
	efxReverbReflectionsPan       uint32 = 0x000B
	efxReverbLateReverbGain       uint32 = 0x000C
	efxReverbLateReverbDelay      uint32 = 0x000D
	efxReverbLateReverbPan        uint32 = 0x000E
	efxReverbEchoTime             uint32 = 0x000F
	efxReverbEchoDepth            uint32 = 0x0010
	efxReverbModulationTime       uint32 = 0x0011
	efxReverbModulationDepth      uint32 = 0x0012
	efxReverbAirAbsorptionGainHF  uint32 = 0x0013
	efxReverbHFReference          uint32 = 0x0014
	efxReverbLFReference          uint32 = 0x0015
	efxReverbRoomRolloffFactor    uint32 = 0x0016
	efxReverbDecayHFLimit         uint32 = 0x0017
)
