package eaxefx

// SourceProperty enumerates the settable/gettable source properties,
// per §3's 18-field list and §4.7.
type SourceProperty uint32

const (
	SourceNone SourceProperty = iota
	SourceAllParameters
	SourceDirect
	SourceDirectHF
	SourceRoom
	SourceRoomHF
	SourceObstruction
	SourceObstructionLFRatio
	SourceOcclusion
	SourceOcclusionLFRatio
	SourceOcclusionRoomRatio
	SourceOcclusionDirectRatio
	SourceExclusion
	SourceExclusionLFRatio
	SourceOutsideVolumeHF
	SourceDopplerFactor
	SourceRolloffFactor
	SourceRoomRolloffFactor
	SourceAirAbsorptionFactor
	SourceMacroFXFactor
	SourceFlags
	SourceActiveFXSlots
)

// SourceParameters is the 18-field record of §3, minus the derived
// fields (active_mask, uses_primary_id) which are recomputed rather than
// stored independently.
type SourceParameters struct {
	Direct                int32
	DirectHF              int32
	Room                  int32
	RoomHF                int32
	Obstruction           int32
	ObstructionLFRatio    float32
	Occlusion             int32
	OcclusionLFRatio      float32
	OcclusionRoomRatio    float32
	OcclusionDirectRatio  float32
	Exclusion             int32
	ExclusionLFRatio      float32
	OutsideVolumeHF       int32
	DopplerFactor         float32
	RolloffFactor         float32
	RoomRolloffFactor     float32
	AirAbsorptionFactor   float32
	MacroFXFactor         float32
	Flags                 uint32
}

func defaultSourceParameters(version uint32) SourceParameters {
	flags := sourceDefaultFlagsLegacy
	if version >= 5 {
		flags = sourceDefaultFlags50
	}
	return SourceParameters{
		Direct:               sourceDefaultDirect,
		DirectHF:             sourceDefaultDirectHF,
		Room:                 sourceDefaultRoom,
		RoomHF:               sourceDefaultRoomHF,
		Obstruction:          sourceDefaultObstruction,
		ObstructionLFRatio:   sourceDefaultObstructionLFRatio,
		Occlusion:            sourceDefaultOcclusion,
		OcclusionLFRatio:     sourceDefaultOcclusionLFRatio,
		OcclusionRoomRatio:   sourceDefaultOcclusionRoomRatio,
		OcclusionDirectRatio: sourceDefaultOcclusionDirectRatio,
		Exclusion:            sourceDefaultExclusion,
		ExclusionLFRatio:     sourceDefaultExclusionLFRatio,
		OutsideVolumeHF:      sourceDefaultOutsideVolumeHF,
		DopplerFactor:        sourceDefaultDopplerFactor,
		RolloffFactor:        sourceDefaultRolloffFactor,
		RoomRolloffFactor:    sourceDefaultRoomRolloffFactor,
		AirAbsorptionFactor:  sourceDefaultAirAbsorptionFactor,
		MacroFXFactor:        sourceDefaultMacroFXFactor,
		Flags:                flags,
	}
}

// Source owns one AL source's EAX state: its 18 parameters, its active
// FX-slot routing, and the single EFX low-pass filter handle it rebinds
// for direct and each active aux-send target, per §3 and §4.7.
type Source struct {
	name    uint32
	version uint32

	params   SourceParameters
	deferred SourceParameters
	dirty    dirtySet[uint32]

	activeFXSlots  [4]GUID
	usesPrimaryID  bool
	hasActiveSlots bool
	activeMask     [4]bool

	filter FilterHandle
}

func NewSource(name uint32, version uint32) *Source {
	p := defaultSourceParameters(version)
	return &Source{
		name:     name,
		version:  version,
		params:   p,
		deferred: p,
	}
}

// Init allocates the source's single low-pass filter handle, per §4.9
// step 3 ("one EFX low-pass filter per source").
func (s *Source) Init(alx alxSourceBackend) error {
	f, err := alx.GenFilter()
	if err != nil {
		return err
	}
	if err := alx.Filteri(f, alFilterType, int32(alFilterLowpass)); err != nil {
		alx.DeleteFilter(f)
		return err
	}
	s.filter = f
	return nil
}

// Close deletes the source's filter, per §5 ("Handles are freed by their
// holder on drop") and the EFX lifecycle rule noted in §3 ("the source
// may only be deleted when its play state is stopped"). It does not
// reset the source's direct or aux-send filter bindings.
func (s *Source) Close(alx alxSourceBackend) error {
	if s.filter == NullFilter {
		return nil
	}
	err := alx.DeleteFilter(s.filter)
	s.filter = NullFilter
	return err
}

func (s *Source) ActiveMask() [4]bool { return s.activeMask }

// Dispatch handles one source-scoped call, per §4.7's validate->defer->
// apply template. slots and primary are supplied by the owning context
// so the source can resolve EAX_Primary and rebind EFX aux sends.
func (s *Source) Dispatch(alx alxSourceBackend, slots *FXSlots, primary FXSlotIndex, maxActiveSends uint32, call *EAXCall) error {
	if call.IsGet {
		return s.dispatchGet(call)
	}
	return s.dispatchSet(alx, slots, primary, maxActiveSends, call)
}

func (s *Source) dispatchGet(call *EAXCall) error {
	switch SourceProperty(call.PropertyID) {
	case SourceAllParameters:
		return SetValue(call, s.params)
	case SourceDirect:
		return SetValue(call, s.params.Direct)
	case SourceDirectHF:
		return SetValue(call, s.params.DirectHF)
	case SourceRoom:
		return SetValue(call, s.params.Room)
	case SourceRoomHF:
		return SetValue(call, s.params.RoomHF)
	case SourceObstruction:
		return SetValue(call, s.params.Obstruction)
	case SourceObstructionLFRatio:
		return SetValue(call, s.params.ObstructionLFRatio)
	case SourceOcclusion:
		return SetValue(call, s.params.Occlusion)
	case SourceOcclusionLFRatio:
		return SetValue(call, s.params.OcclusionLFRatio)
	case SourceOcclusionRoomRatio:
		return SetValue(call, s.params.OcclusionRoomRatio)
	case SourceOcclusionDirectRatio:
		return SetValue(call, s.params.OcclusionDirectRatio)
	case SourceExclusion:
		return SetValue(call, s.params.Exclusion)
	case SourceExclusionLFRatio:
		return SetValue(call, s.params.ExclusionLFRatio)
	case SourceOutsideVolumeHF:
		return SetValue(call, s.params.OutsideVolumeHF)
	case SourceDopplerFactor:
		return SetValue(call, s.params.DopplerFactor)
	case SourceRolloffFactor:
		return SetValue(call, s.params.RolloffFactor)
	case SourceRoomRolloffFactor:
		return SetValue(call, s.params.RoomRolloffFactor)
	case SourceAirAbsorptionFactor:
		return SetValue(call, s.params.AirAbsorptionFactor)
	case SourceMacroFXFactor:
		return SetValue(call, s.params.MacroFXFactor)
	case SourceFlags:
		return SetValue(call, s.params.Flags)
	case SourceActiveFXSlots:
		return SetValue(call, s.activeFXSlots)
	default:
		return errInvalidOperation("property_id", "unrecognized source property %d", call.PropertyID)
	}
}

func (s *Source) dispatchSet(alx alxSourceBackend, slots *FXSlots, primary FXSlotIndex, maxActiveSends uint32, call *EAXCall) error {
	s.deferred = s.params

	switch SourceProperty(call.PropertyID) {
	case SourceAllParameters:
		v, err := Value[SourceParameters](call)
		if err != nil {
			return err
		}
		if err := s.validate(v); err != nil {
			return err
		}
		s.deferred = v
		if v != s.params {
			s.dirty.markAll()
		}

	case SourceDirect:
		v, err := Value[int32](call)
		if err != nil {
			return err
		}
		if err := validateRangeI32("direct", v, sourceMinDirect, sourceMaxDirect); err != nil {
			return err
		}
		s.deferred.Direct = v
		if v != s.params.Direct {
			s.dirty.mark(uint32(SourceDirect))
		}

	case SourceDirectHF:
		v, err := Value[int32](call)
		if err != nil {
			return err
		}
		if err := validateRangeI32("direct_hf", v, sourceMinDirectHF, sourceMaxDirectHF); err != nil {
			return err
		}
		s.deferred.DirectHF = v
		if v != s.params.DirectHF {
			s.dirty.mark(uint32(SourceDirectHF))
		}

	case SourceRoom:
		v, err := Value[int32](call)
		if err != nil {
			return err
		}
		if err := validateRangeI32("room", v, sourceMinRoom, sourceMaxRoom); err != nil {
			return err
		}
		s.deferred.Room = v
		if v != s.params.Room {
			s.dirty.mark(uint32(SourceRoom))
		}

	case SourceRoomHF:
		v, err := Value[int32](call)
		if err != nil {
			return err
		}
		if err := validateRangeI32("room_hf", v, sourceMinRoomHF, sourceMaxRoomHF); err != nil {
			return err
		}
		s.deferred.RoomHF = v
		if v != s.params.RoomHF {
			s.dirty.mark(uint32(SourceRoomHF))
		}

	case SourceObstruction:
		v, err := Value[int32](call)
		if err != nil {
			return err
		}
		if err := validateRangeI32("obstruction", v, sourceMinObstruction, sourceMaxObstruction); err != nil {
			return err
		}
		s.deferred.Obstruction = v
		if v != s.params.Obstruction {
			s.dirty.mark(uint32(SourceObstruction))
		}

	case SourceObstructionLFRatio:
		v, err := Value[float32](call)
		if err != nil {
			return err
		}
		if err := validateRangeF32("obstruction_lf_ratio", v, sourceMinObstructionLFRatio, sourceMaxObstructionLFRatio); err != nil {
			return err
		}
		s.deferred.ObstructionLFRatio = v
		if v != s.params.ObstructionLFRatio {
			s.dirty.mark(uint32(SourceObstructionLFRatio))
		}

	case SourceOcclusion:
		v, err := Value[int32](call)
		if err != nil {
			return err
		}
		if err := validateRangeI32("occlusion", v, sourceMinOcclusion, sourceMaxOcclusion); err != nil {
			return err
		}
		s.deferred.Occlusion = v
		if v != s.params.Occlusion {
			s.dirty.mark(uint32(SourceOcclusion))
		}

	case SourceOcclusionLFRatio:
		v, err := Value[float32](call)
		if err != nil {
			return err
		}
		if err := validateRangeF32("occlusion_lf_ratio", v, sourceMinOcclusionLFRatio, sourceMaxOcclusionLFRatio); err != nil {
			return err
		}
		s.deferred.OcclusionLFRatio = v
		if v != s.params.OcclusionLFRatio {
			s.dirty.mark(uint32(SourceOcclusionLFRatio))
		}

	case SourceOcclusionRoomRatio:
		v, err := Value[float32](call)
		if err != nil {
			return err
		}
		if err := validateRangeF32("occlusion_room_ratio", v, sourceMinOcclusionRoomRatio, sourceMaxOcclusionRoomRatio); err != nil {
			return err
		}
		s.deferred.OcclusionRoomRatio = v
		if v != s.params.OcclusionRoomRatio {
			s.dirty.mark(uint32(SourceOcclusionRoomRatio))
		}

	case SourceOcclusionDirectRatio:
		v, err := Value[float32](call)
		if err != nil {
			return err
		}
		if err := validateRangeF32("occlusion_direct_ratio", v, sourceMinOcclusionDirectRatio, sourceMaxOcclusionDirectRatio); err != nil {
			return err
		}
		s.deferred.OcclusionDirectRatio = v
		if v != s.params.OcclusionDirectRatio {
			s.dirty.mark(uint32(SourceOcclusionDirectRatio))
		}

	case SourceExclusion:
		v, err := Value[int32](call)
		if err != nil {
			return err
		}
		if err := validateRangeI32("exclusion", v, sourceMinExclusion, sourceMaxExclusion); err != nil {
			return err
		}
		s.deferred.Exclusion = v
		if v != s.params.Exclusion {
			s.dirty.mark(uint32(SourceExclusion))
		}

	case SourceExclusionLFRatio:
		v, err := Value[float32](call)
		if err != nil {
			return err
		}
		if err := validateRangeF32("exclusion_lf_ratio", v, sourceMinExclusionLFRatio, sourceMaxExclusionLFRatio); err != nil {
			return err
		}
		s.deferred.ExclusionLFRatio = v
		if v != s.params.ExclusionLFRatio {
			s.dirty.mark(uint32(SourceExclusionLFRatio))
		}

	case SourceOutsideVolumeHF:
		v, err := Value[int32](call)
		if err != nil {
			return err
		}
		if err := validateRangeI32("outside_volume_hf", v, sourceMinOutsideVolumeHF, sourceMaxOutsideVolumeHF); err != nil {
			return err
		}
		s.deferred.OutsideVolumeHF = v
		if v != s.params.OutsideVolumeHF {
			s.dirty.mark(uint32(SourceOutsideVolumeHF))
		}

	case SourceDopplerFactor:
		v, err := Value[float32](call)
		if err != nil {
			return err
		}
		if err := validateRangeF32("doppler_factor", v, sourceMinDopplerFactor, sourceMaxDopplerFactor); err != nil {
			return err
		}
		s.deferred.DopplerFactor = v
		if v != s.params.DopplerFactor {
			s.dirty.mark(uint32(SourceDopplerFactor))
		}

	case SourceRolloffFactor:
		v, err := Value[float32](call)
		if err != nil {
			return err
		}
		if err := validateRangeF32("rolloff_factor", v, sourceMinRolloffFactor, sourceMaxRolloffFactor); err != nil {
			return err
		}
		s.deferred.RolloffFactor = v
		if v != s.params.RolloffFactor {
			s.dirty.mark(uint32(SourceRolloffFactor))
		}

	case SourceRoomRolloffFactor:
		v, err := Value[float32](call)
		if err != nil {
			return err
		}
		if err := validateRangeF32("room_rolloff_factor", v, sourceMinRoomRolloffFactor, sourceMaxRoomRolloffFactor); err != nil {
			return err
		}
		s.deferred.RoomRolloffFactor = v
		if v != s.params.RoomRolloffFactor {
			s.dirty.mark(uint32(SourceRoomRolloffFactor))
		}

	case SourceAirAbsorptionFactor:
		v, err := Value[float32](call)
		if err != nil {
			return err
		}
		if err := validateRangeF32("air_absorption_factor", v, sourceMinAirAbsorptionFactor, sourceMaxAirAbsorptionFactor); err != nil {
			return err
		}
		s.deferred.AirAbsorptionFactor = v
		if v != s.params.AirAbsorptionFactor {
			s.dirty.mark(uint32(SourceAirAbsorptionFactor))
		}

	case SourceMacroFXFactor:
		v, err := Value[float32](call)
		if err != nil {
			return err
		}
		if err := validateRangeF32("macro_fx_factor", v, sourceMinMacroFXFactor, sourceMaxMacroFXFactor); err != nil {
			return err
		}
		s.deferred.MacroFXFactor = v
		if v != s.params.MacroFXFactor {
			s.dirty.mark(uint32(SourceMacroFXFactor))
		}

	case SourceFlags:
		v, err := Value[uint32](call)
		if err != nil {
			return err
		}
		if err := validateFlags("flags", v, sourceFlagsReservedMask(s.version)); err != nil {
			return err
		}
		s.deferred.Flags = v
		if v != s.params.Flags {
			s.dirty.mark(uint32(SourceFlags))
		}

	case SourceActiveFXSlots:
		return s.setActiveFXSlots(alx, slots, primary, maxActiveSends, call)

	default:
		return errInvalidOperation("property_id", "unrecognized source property %d", call.PropertyID)
	}

	changed := s.dirty.isDirty()
	s.dirty.clear()
	s.params = s.deferred
	if !changed {
		return nil
	}
	return s.refreshFilters(alx, slots)
}

func (s *Source) validate(p SourceParameters) error {
	if err := validateRangeI32("direct", p.Direct, sourceMinDirect, sourceMaxDirect); err != nil {
		return err
	}
	if err := validateRangeI32("direct_hf", p.DirectHF, sourceMinDirectHF, sourceMaxDirectHF); err != nil {
		return err
	}
	if err := validateRangeI32("room", p.Room, sourceMinRoom, sourceMaxRoom); err != nil {
		return err
	}
	if err := validateRangeI32("room_hf", p.RoomHF, sourceMinRoomHF, sourceMaxRoomHF); err != nil {
		return err
	}
	if err := validateRangeI32("obstruction", p.Obstruction, sourceMinObstruction, sourceMaxObstruction); err != nil {
		return err
	}
	if err := validateRangeF32("obstruction_lf_ratio", p.ObstructionLFRatio, sourceMinObstructionLFRatio, sourceMaxObstructionLFRatio); err != nil {
		return err
	}
	if err := validateRangeI32("occlusion", p.Occlusion, sourceMinOcclusion, sourceMaxOcclusion); err != nil {
		return err
	}
	if err := validateRangeF32("occlusion_lf_ratio", p.OcclusionLFRatio, sourceMinOcclusionLFRatio, sourceMaxOcclusionLFRatio); err != nil {
		return err
	}
	if err := validateRangeF32("occlusion_room_ratio", p.OcclusionRoomRatio, sourceMinOcclusionRoomRatio, sourceMaxOcclusionRoomRatio); err != nil {
		return err
	}
	if err := validateRangeF32("occlusion_direct_ratio", p.OcclusionDirectRatio, sourceMinOcclusionDirectRatio, sourceMaxOcclusionDirectRatio); err != nil {
		return err
	}
	if err := validateRangeI32("exclusion", p.Exclusion, sourceMinExclusion, sourceMaxExclusion); err != nil {
		return err
	}
	if err := validateRangeF32("exclusion_lf_ratio", p.ExclusionLFRatio, sourceMinExclusionLFRatio, sourceMaxExclusionLFRatio); err != nil {
		return err
	}
	if err := validateRangeI32("outside_volume_hf", p.OutsideVolumeHF, sourceMinOutsideVolumeHF, sourceMaxOutsideVolumeHF); err != nil {
		return err
	}
	if err := validateRangeF32("doppler_factor", p.DopplerFactor, sourceMinDopplerFactor, sourceMaxDopplerFactor); err != nil {
		return err
	}
	if err := validateRangeF32("rolloff_factor", p.RolloffFactor, sourceMinRolloffFactor, sourceMaxRolloffFactor); err != nil {
		return err
	}
	if err := validateRangeF32("room_rolloff_factor", p.RoomRolloffFactor, sourceMinRoomRolloffFactor, sourceMaxRoomRolloffFactor); err != nil {
		return err
	}
	if err := validateRangeF32("air_absorption_factor", p.AirAbsorptionFactor, sourceMinAirAbsorptionFactor, sourceMaxAirAbsorptionFactor); err != nil {
		return err
	}
	if err := validateRangeF32("macro_fx_factor", p.MacroFXFactor, sourceMinMacroFXFactor, sourceMaxMacroFXFactor); err != nil {
		return err
	}
	return validateFlags("flags", p.Flags, sourceFlagsReservedMask(s.version))
}

// setActiveFXSlots implements §4.7's ACTIVEFXSLOTS write and I4's
// max-active-sends enforcement (P6): the whole write fails, and
// active_mask is left unchanged, if more than max_active_sends distinct
// non-null slots are named.
func (s *Source) setActiveFXSlots(alx alxSourceBackend, slots *FXSlots, primary FXSlotIndex, maxActiveSends uint32, call *EAXCall) error {
	n := Values[GUID](call)
	if n > 4 {
		n = 4
	}
	var incoming [4]GUID
	for i := 0; i < n; i++ {
		g, err := readGUIDAt(call, i)
		if err != nil {
			return err
		}
		incoming[i] = g
	}

	usesPrimary := false
	count := 0
	var mask [4]bool
	for i := 0; i < n; i++ {
		g := incoming[i]
		if g.IsNull() {
			continue
		}
		var idx FXSlotIndex
		if g == PrimaryFXSlotID {
			usesPrimary = true
			idx = primary
		} else {
			idx = resolveFXSlotIndex(g)
		}
		if !idx.HasValue() {
			return errInvalidValue("active_fx_slots", "GUID %s does not resolve to a recognized slot", g)
		}
		if !mask[idx.Index()] {
			count++
		}
		mask[idx.Index()] = true
	}
	if uint32(count) > maxActiveSends {
		return errInvalidValue("active_fx_slots", "requested %d active sends, max_active_sends is %d", count, maxActiveSends)
	}

	s.activeFXSlots = incoming
	s.usesPrimaryID = usesPrimary
	s.hasActiveSlots = count > 0
	s.activeMask = mask
	return s.refreshFilters(alx, slots)
}

// RefreshPrimary re-resolves EAX_Primary against a new primary slot and
// rebinds filters, per I3: "changing it re-runs the filter update for
// every source whose active list references the primary sentinel."
func (s *Source) RefreshPrimary(alx alxSourceBackend, slots *FXSlots, primary FXSlotIndex) error {
	if !s.usesPrimaryID {
		return nil
	}
	var mask [4]bool
	for _, g := range s.activeFXSlots {
		if g.IsNull() {
			continue
		}
		var idx FXSlotIndex
		if g == PrimaryFXSlotID {
			idx = primary
		} else {
			idx = resolveFXSlotIndex(g)
		}
		if idx.HasValue() {
			mask[idx.Index()] = true
		}
	}
	s.activeMask = mask
	return s.refreshFilters(alx, slots)
}

// refreshFilters recomputes the direct/room derived gains (§4.7) and
// rebinds the source's single owned filter to the direct path and to
// every active aux-send target, clearing the rest, per I5.
func (s *Source) refreshFilters(alx alxSourceBackend, slots *FXSlots) error {
	p := s.params

	directGain := float32(mbToGain(
		float64(p.Direct) + float64(p.Obstruction)*float64(p.ObstructionLFRatio) +
			float64(p.Occlusion)*float64(p.OcclusionDirectRatio)*float64(p.OcclusionLFRatio)))
	directGainHF := float32(mbToGain(
		float64(p.DirectHF) + float64(p.Obstruction) + float64(p.Occlusion)*float64(p.OcclusionDirectRatio)))
	roomGain := float32(mbToGain(
		float64(p.Room) + float64(p.Occlusion)*float64(p.OcclusionRoomRatio)*float64(p.OcclusionLFRatio)))
	roomGainHF := float32(mbToGain(
		float64(p.RoomHF) + float64(p.Occlusion)*float64(p.OcclusionRoomRatio)))

	if s.hasActiveSlots {
		if err := alx.Filterf(s.filter, alLowpassGain, directGain); err != nil {
			return err
		}
		if err := alx.Filterf(s.filter, alLowpassGainHF, directGainHF); err != nil {
			return err
		}
		if err := alx.SetDirectFilter(s.name, s.filter); err != nil {
			return err
		}
	} else {
		if err := alx.SetDirectFilter(s.name, NullFilter); err != nil {
			return err
		}
	}

	for i := 0; i < 4; i++ {
		if !s.activeMask[i] {
			if err := alx.SetAuxSendFilter(s.name, i, slots.Handle(i), NullFilter); err != nil {
				return err
			}
			continue
		}
		if err := alx.Filterf(s.filter, alLowpassGain, roomGain); err != nil {
			return err
		}
		if err := alx.Filterf(s.filter, alLowpassGainHF, roomGainHF); err != nil {
			return err
		}
		if err := alx.SetAuxSendFilter(s.name, i, slots.Handle(i), s.filter); err != nil {
			return err
		}
	}
	return nil
}

func readGUIDAt(call *EAXCall, i int) (GUID, error) {
	const size = 16
	off := i * size
	if call.Buffer == nil || len(call.Buffer) < off+size {
		return GUID{}, errInvalidValue("buffer", "active_fx_slots buffer too small for index %d", i)
	}
	var g GUID
	copy(g[:], call.Buffer[off:off+size])
	return g, nil
}
