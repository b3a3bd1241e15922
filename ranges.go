package eaxefx

import "math"

// Context property ranges and defaults (§6.3).
const (
	contextMinDistanceFactor = math.SmallestNonzeroFloat32
	contextMaxDistanceFactor = math.MaxFloat32
	contextDefaultDistanceFactor = 1.0

	contextMinAirAbsorptionHF     = -100.0
	contextMaxAirAbsorptionHF     = 0.0
	contextDefaultAirAbsorptionHF = -5.0

	contextMinHFReference     = 1000.0
	contextMaxHFReference     = 20000.0
	contextDefaultHFReference = 5000.0

	contextMinMacroFXFactor     = 0.0
	contextMaxMacroFXFactor     = 1.0
	contextDefaultMacroFXFactor = 0.0
)

// Session ranges and defaults.
const (
	SessionEAX40 uint32 = 5
	SessionEAX50 uint32 = 6

	sessionMinVersion     = SessionEAX40
	sessionMaxVersion     = SessionEAX50
	sessionDefaultVersion = SessionEAX40

	sessionMinMaxActiveSends     = 2
	sessionMaxMaxActiveSends     = 4
	sessionDefaultMaxActiveSends = 2
)

// FX-slot property ranges and defaults.
const (
	fxSlotMinVolume     int32 = -10000
	fxSlotMaxVolume     int32 = 0
	fxSlotDefaultVolume int32 = 0

	fxSlotMinLock int32 = 0
	fxSlotMaxLock int32 = 1

	fxSlotMinOcclusion     int32 = -10000
	fxSlotMaxOcclusion     int32 = 0
	fxSlotDefaultOcclusion int32 = 0

	fxSlotMinOcclusionLFRatio     = 0.0
	fxSlotMaxOcclusionLFRatio     = 1.0
	fxSlotDefaultOcclusionLFRatio = 0.25

	// Reserved flag-bit masks (§6.4): a set bit outside the recognized
	// range for the active version is invalid_value.
	fxSlotFlagsEnvironment uint32 = 0x1
	fxSlotFlagsUpmix       uint32 = 0x2 // EAX50 only

	fxSlot40FlagsReserved uint32 = 0xFFFFFFFE
	fxSlot50FlagsReserved uint32 = 0xFFFFFFFC

	fxSlot40DefaultFlags = fxSlotFlagsEnvironment
	fxSlot50DefaultFlags = fxSlotFlagsEnvironment | fxSlotFlagsUpmix
)

// Source property ranges and defaults (§6.3, extended per the 18-field
// table carried by the reference implementation).
const (
	sourceMinLevel int32 = -10000
	sourceMaxLevel int32 = 1000

	sourceMinDirect, sourceMaxDirect, sourceDefaultDirect = sourceMinLevel, sourceMaxLevel, 0
	sourceMinDirectHF, sourceMaxDirectHF, sourceDefaultDirectHF = sourceMinLevel, 0, 0
	sourceMinRoom, sourceMaxRoom, sourceDefaultRoom = sourceMinLevel, sourceMaxLevel, 0
	sourceMinRoomHF, sourceMaxRoomHF, sourceDefaultRoomHF = sourceMinLevel, 0, 0

	sourceMinObstruction, sourceMaxObstruction, sourceDefaultObstruction = -10000, 0, 0
	sourceMinObstructionLFRatio, sourceMaxObstructionLFRatio, sourceDefaultObstructionLFRatio = 0.0, 1.0, 0.0

	sourceMinOcclusion, sourceMaxOcclusion, sourceDefaultOcclusion = -10000, 0, 0
	sourceMinOcclusionLFRatio, sourceMaxOcclusionLFRatio, sourceDefaultOcclusionLFRatio = 0.0, 1.0, 0.25
	sourceMinOcclusionRoomRatio, sourceMaxOcclusionRoomRatio, sourceDefaultOcclusionRoomRatio = 0.0, 10.0, 1.5
	sourceMinOcclusionDirectRatio, sourceMaxOcclusionDirectRatio, sourceDefaultOcclusionDirectRatio = 0.0, 10.0, 1.0

	sourceMinExclusion, sourceMaxExclusion, sourceDefaultExclusion = -10000, 0, 0
	sourceMinExclusionLFRatio, sourceMaxExclusionLFRatio, sourceDefaultExclusionLFRatio = 0.0, 1.0, 1.0

	sourceMinOutsideVolumeHF, sourceMaxOutsideVolumeHF, sourceDefaultOutsideVolumeHF = -10000, 0, 0
	sourceMinDopplerFactor, sourceMaxDopplerFactor, sourceDefaultDopplerFactor = 0.0, 10.0, 1.0
	sourceMinRolloffFactor, sourceMaxRolloffFactor, sourceDefaultRolloffFactor = 0.0, 10.0, 0.0
	sourceMinRoomRolloffFactor, sourceMaxRoomRolloffFactor, sourceDefaultRoomRolloffFactor = 0.0, 10.0, 0.0
	sourceMinAirAbsorptionFactor, sourceMaxAirAbsorptionFactor, sourceDefaultAirAbsorptionFactor = 0.0, 10.0, 0.0
	sourceMinMacroFXFactor, sourceMaxMacroFXFactor, sourceDefaultMacroFXFactor = 0.0, 1.0, 0.0

	sourceFlagDirectHFAuto      uint32 = 0x1
	sourceFlagRoomAuto          uint32 = 0x2
	sourceFlagRoomHFAuto        uint32 = 0x4
	sourceFlag3DElevationFilter uint32 = 0x8  // EAX50; inert, see §9
	sourceFlagUpmix             uint32 = 0x10 // EAX50
	sourceFlagApplySpeakerLevels uint32 = 0x20 // EAX50

	source20FlagsReserved uint32 = 0xFFFFFFF8
	source50FlagsReserved uint32 = 0xFFFFFFC0

	sourceDefaultFlagsLegacy = sourceFlagDirectHFAuto | sourceFlagRoomAuto | sourceFlagRoomHFAuto
	sourceDefaultFlags50     = sourceDefaultFlagsLegacy | sourceFlagUpmix
)

// EFX-side reverb field ranges, named after the AL_EAXREVERB_* constants
// they mirror so the converter functions in unit_converters.go read the
// same as the reference implementation's clamp calls.
const (
	efxEAXReverbMinDensity, efxEAXReverbMaxDensity     = 0.0, 1.0
	efxEAXReverbMinDiffusion, efxEAXReverbMaxDiffusion = 0.0, 1.0
	efxEAXReverbMinGain, efxEAXReverbMaxGain           = 0.0, 1.0
	efxEAXReverbMinGainHF, efxEAXReverbMaxGainHF       = 0.0, 1.0
	efxEAXReverbMinGainLF, efxEAXReverbMaxGainLF       = 0.0, 1.0
	efxEAXReverbMinDecayTime, efxEAXReverbMaxDecayTime = 0.1, 20.0
	efxEAXReverbMinDecayHFRatio, efxEAXReverbMaxDecayHFRatio = 0.1, 2.0
	efxEAXReverbMinDecayLFRatio, efxEAXReverbMaxDecayLFRatio = 0.1, 2.0
	efxEAXReverbMinReflectionsGain, efxEAXReverbMaxReflectionsGain = 0.0, 3.16
	efxEAXReverbMinReflectionsDelay, efxEAXReverbMaxReflectionsDelay = 0.0, 0.3
	efxEAXReverbMinLateReverbGain, efxEAXReverbMaxLateReverbGain = 0.0, 10.0
	efxEAXReverbMinLateReverbDelay, efxEAXReverbMaxLateReverbDelay = 0.0, 0.1
	efxEAXReverbMinEchoTime, efxEAXReverbMaxEchoTime = 0.075, 0.25
	efxEAXReverbMinEchoDepth, efxEAXReverbMaxEchoDepth = 0.0, 1.0
	efxEAXReverbMinModulationTime, efxEAXReverbMaxModulationTime = 0.04, 4.0
	efxEAXReverbMinModulationDepth, efxEAXReverbMaxModulationDepth = 0.0, 1.0
	efxEAXReverbMinAirAbsorptionGainHF, efxEAXReverbMaxAirAbsorptionGainHF = 0.892, 1.0
	efxEAXReverbMinHFReference, efxEAXReverbMaxHFReference = 1000.0, 20000.0
	efxEAXReverbMinLFReference, efxEAXReverbMaxLFReference = 20.0, 1000.0
	efxEAXReverbMinRoomRolloffFactor, efxEAXReverbMaxRoomRolloffFactor = 0.0, 10.0
)

// Reverb (EAX-side) property ranges and defaults (§6.3, §9).
const (
	reverbMinEnvironment     uint32 = 0
	reverb20MaxEnvironment   uint32 = environmentCount - 2
	reverb30MaxEnvironment   uint32 = environmentCount - 1
	reverbDefaultEnvironment        = EnvironmentGeneric

	reverbMinEnvironmentSize, reverbMaxEnvironmentSize, reverbDefaultEnvironmentSize float32 = 1.0, 100.0, 7.5
	reverbMinEnvironmentDiffusion, reverbMaxEnvironmentDiffusion, reverbDefaultEnvironmentDiffusion float32 = 0.0, 1.0, 1.0

	reverbMinRoom, reverbMaxRoom, reverbDefaultRoom int32 = -10000, 0, -1000
	reverbMinRoomHF, reverbMaxRoomHF, reverbDefaultRoomHF int32 = -10000, 0, -100
	reverbMinRoomLF, reverbMaxRoomLF, reverbDefaultRoomLF int32 = -10000, 0, 0

	reverbMinDecayTime, reverbMaxDecayTime, reverbDefaultDecayTime float32 = 0.1, 20.0, 1.49
	reverbMinDecayHFRatio, reverbMaxDecayHFRatio, reverbDefaultDecayHFRatio float32 = 0.1, 2.0, 0.83
	reverbMinDecayLFRatio, reverbMaxDecayLFRatio, reverbDefaultDecayLFRatio float32 = 0.1, 2.0, 1.0

	reverbMinReflections, reverbMaxReflections, reverbDefaultReflections int32 = -10000, 1000, -2602
	reverbMinReflectionsDelay, reverbMaxReflectionsDelay, reverbDefaultReflectionsDelay float32 = 0.0, 0.3, 0.007

	reverbMinReverb, reverbMaxReverb, reverbDefaultReverb int32 = -10000, 2000, 200
	reverbMinReverbDelay, reverbMaxReverbDelay, reverbDefaultReverbDelay float32 = 0.0, 0.1, 0.011

	reverbMinEchoTime, reverbMaxEchoTime, reverbDefaultEchoTime float32 = 0.075, 0.25, 0.25
	reverbMinEchoDepth, reverbMaxEchoDepth, reverbDefaultEchoDepth float32 = 0.0, 1.0, 0.0

	reverbMinModulationTime, reverbMaxModulationTime, reverbDefaultModulationTime float32 = 0.04, 4.0, 0.25
	reverbMinModulationDepth, reverbMaxModulationDepth, reverbDefaultModulationDepth float32 = 0.0, 1.0, 0.0

	reverbMinAirAbsorptionHF, reverbMaxAirAbsorptionHF, reverbDefaultAirAbsorptionHF float32 = -100.0, 0.0, -5.0
	reverbMinHFReference, reverbMaxHFReference, reverbDefaultHFReference float32 = 1000.0, 20000.0, 5000.0
	reverbMinLFReference, reverbMaxLFReference, reverbDefaultLFReference float32 = 20.0, 1000.0, 250.0

	reverbMinRoomRolloffFactor, reverbMaxRoomRolloffFactor, reverbDefaultRoomRolloffFactor float32 = 0.0, 10.0, 0.0

	reverbFlagDecayTimeScale         uint32 = 0x00000001
	reverbFlagReflectionsScale       uint32 = 0x00000002
	reverbFlagReflectionsDelayScale  uint32 = 0x00000004
	reverbFlagReverbScale            uint32 = 0x00000008
	reverbFlagReverbDelayScale       uint32 = 0x00000010
	reverbFlagDecayHFLimit           uint32 = 0x00000020
	reverbFlagEchoTimeScale          uint32 = 0x00000040
	reverbFlagModulationTimeScale    uint32 = 0x00000080
	reverbFlagsReserved              uint32 = 0xFFFFFF00

	reverbDefaultFlags = reverbFlagDecayTimeScale | reverbFlagReflectionsScale |
		reverbFlagReflectionsDelayScale | reverbFlagReverbScale |
		reverbFlagReverbDelayScale | reverbFlagDecayHFLimit
)

// X-RAM constants (§6.1).
const (
	XRAMModeAutomatic uint32 = 0x20003
	XRAMModeHardware  uint32 = 0x20004
	XRAMModeAccessible uint32 = 0x20005

	XRAMMaxSize = 64 * 1024 * 1024
)
