package eaxefx

import "math"

// mbToGain converts a millibel attenuation value to a linear gain, per
// §4.3: mb_to_gain(mB) = 10^(mB/2000).
func mbToGain(mB float64) float64 {
	return math.Pow(10, mB/2000)
}

// clampF clamps v to [min, max].
func clampF(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// levelMBToGain pre-clamps mB to the ±10000 window shared by sends and
// volumes before converting to gain, per §4.3.
func levelMBToGain(mB float64) float64 {
	return mbToGain(clampF(mB, -10000, 10000))
}

// Reverb-field converters. Each clamps the converted (or passed-through)
// value to the EFX field's own min/max, mirroring eaxefx_eax_converters.cpp's
// EaxReverbToEfx. Constants come from ranges.go.
// reverbEnvironmentSizeToEfx maps ENVIRONMENTSIZE's [1.0, 100.0] metre
// range onto AL_EAXREVERB_DENSITY's [0.0, 1.0] range by linear
// normalization. The reference DSP derives density from environment
// size through a room-volume model that is out of scope here (§1: only
// the parameter mapping, not the original DSP, is reproduced); this
// keeps the mapping monotonic and clamped at both ends.
func reverbEnvironmentSizeToEfx(v float32) float32 {
	normalized := (float64(v) - float64(reverbMinEnvironmentSize)) / float64(reverbMaxEnvironmentSize-reverbMinEnvironmentSize)
	return float32(clampF(normalized, efxEAXReverbMinDensity, efxEAXReverbMaxDensity))
}

func reverbEnvironmentDiffusionToEfx(v float32) float32 {
	return float32(clampF(float64(v), efxEAXReverbMinDiffusion, efxEAXReverbMaxDiffusion))
}

func reverbRoomToEfx(lRoom int32) float32 {
	return float32(clampF(mbToGain(float64(lRoom)), efxEAXReverbMinGain, efxEAXReverbMaxGain))
}

func reverbRoomHFToEfx(lRoomHF int32) float32 {
	return float32(clampF(mbToGain(float64(lRoomHF)), efxEAXReverbMinGainHF, efxEAXReverbMaxGainHF))
}

func reverbRoomLFToEfx(lRoomLF int32) float32 {
	return float32(clampF(mbToGain(float64(lRoomLF)), efxEAXReverbMinGainLF, efxEAXReverbMaxGainLF))
}

func reverbDecayTimeToEfx(v float32) float32 {
	return float32(clampF(float64(v), efxEAXReverbMinDecayTime, efxEAXReverbMaxDecayTime))
}

func reverbDecayHFRatioToEfx(v float32) float32 {
	return float32(clampF(float64(v), efxEAXReverbMinDecayHFRatio, efxEAXReverbMaxDecayHFRatio))
}

func reverbDecayLFRatioToEfx(v float32) float32 {
	return float32(clampF(float64(v), efxEAXReverbMinDecayLFRatio, efxEAXReverbMaxDecayLFRatio))
}

func reverbReflectionsToEfx(lReflections int32) float32 {
	return float32(clampF(mbToGain(float64(lReflections)), efxEAXReverbMinReflectionsGain, efxEAXReverbMaxReflectionsGain))
}

func reverbReflectionsDelayToEfx(v float32) float32 {
	return float32(clampF(float64(v), efxEAXReverbMinReflectionsDelay, efxEAXReverbMaxReflectionsDelay))
}

func reverbReverbToEfx(lReverb int32) float32 {
	return float32(clampF(mbToGain(float64(lReverb)), efxEAXReverbMinLateReverbGain, efxEAXReverbMaxLateReverbGain))
}

func reverbReverbDelayToEfx(v float32) float32 {
	return float32(clampF(float64(v), efxEAXReverbMinLateReverbDelay, efxEAXReverbMaxLateReverbDelay))
}

func reverbEchoTimeToEfx(v float32) float32 {
	return float32(clampF(float64(v), efxEAXReverbMinEchoTime, efxEAXReverbMaxEchoTime))
}

func reverbEchoDepthToEfx(v float32) float32 {
	return float32(clampF(float64(v), efxEAXReverbMinEchoDepth, efxEAXReverbMaxEchoDepth))
}

func reverbModulationTimeToEfx(v float32) float32 {
	return float32(clampF(float64(v), efxEAXReverbMinModulationTime, efxEAXReverbMaxModulationTime))
}

func reverbModulationDepthToEfx(v float32) float32 {
	return float32(clampF(float64(v), efxEAXReverbMinModulationDepth, efxEAXReverbMaxModulationDepth))
}

func reverbAirAbsorptionHFToEfx(v float32) float32 {
	return float32(clampF(mbToGain(float64(v)), efxEAXReverbMinAirAbsorptionGainHF, efxEAXReverbMaxAirAbsorptionGainHF))
}

func reverbHFReferenceToEfx(v float32) float32 {
	return float32(clampF(float64(v), efxEAXReverbMinHFReference, efxEAXReverbMaxHFReference))
}

func reverbLFReferenceToEfx(v float32) float32 {
	return float32(clampF(float64(v), efxEAXReverbMinLFReference, efxEAXReverbMaxLFReference))
}

func reverbRoomRolloffFactorToEfx(v float32) float32 {
	return float32(clampF(float64(v), efxEAXReverbMinRoomRolloffFactor, efxEAXReverbMaxRoomRolloffFactor))
}

// fxSlotVolumeToEfx converts an FX-slot's VOLUME (mB) to the gain passed
// to alAuxiliaryEffectSlotf(AL_EFFECTSLOT_GAIN, ...), clamped to [0, 1] per
// the reference's EaxFxSlotToEfx::volume.
func fxSlotVolumeToEfx(volumeMB int32) float32 {
	return float32(clampF(mbToGain(float64(volumeMB)), 0, 1))
}
