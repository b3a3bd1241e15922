package eaxefx

const (
	efxEqualizerLowGain    uint32 = 0x0001
	efxEqualizerLowCutoff  uint32 = 0x0002
	efxEqualizerMid1Gain   uint32 = 0x0003
	efxEqualizerMid1Center uint32 = 0x0004
	efxEqualizerMid1Width  uint32 = 0x0005
	efxEqualizerMid2Gain   uint32 = 0x0006
	efxEqualizerMid2Center uint32 = 0x0007
	efxEqualizerMid2Width  uint32 = 0x0008
	efxEqualizerHighGain   uint32 = 0x0009
	efxEqualizerHighCutoff uint32 = 0x000A
)

// Equalizer property IDs, in the field order equalizerSpec declares.
const (
	EqualizerLowGain uint32 = iota + 2
	EqualizerLowCutoff
	EqualizerMid1Gain
	EqualizerMid1Center
	EqualizerMid1Width
	EqualizerMid2Gain
	EqualizerMid2Center
	EqualizerMid2Width
	EqualizerHighGain
	EqualizerHighCutoff
)

var equalizerSpec = &genericEffectSpec{
	effectType: EffectEqualizer,
	fields: []genericFieldSpec{
		{name: "low_gain", kind: fieldFloat, min: 0.126, max: 7.943, def: 1, efxToken: efxEqualizerLowGain},
		{name: "low_cutoff", kind: fieldFloat, min: 50, max: 800, def: 200, efxToken: efxEqualizerLowCutoff},
		{name: "mid1_gain", kind: fieldFloat, min: 0.126, max: 7.943, def: 1, efxToken: efxEqualizerMid1Gain},
		{name: "mid1_center", kind: fieldFloat, min: 200, max: 3000, def: 500, efxToken: efxEqualizerMid1Center},
		{name: "mid1_width", kind: fieldFloat, min: 0.01, max: 1, def: 1, efxToken: efxEqualizerMid1Width},
		{name: "mid2_gain", kind: fieldFloat, min: 0.126, max: 7.943, def: 1, efxToken: efxEqualizerMid2Gain},
		{name: "mid2_center", kind: fieldFloat, min: 1000, max: 8000, def: 3000, efxToken: efxEqualizerMid2Center},
		{name: "mid2_width", kind: fieldFloat, min: 0.01, max: 1, def: 1, efxToken: efxEqualizerMid2Width},
		{name: "high_gain", kind: fieldFloat, min: 0.126, max: 7.943, def: 1, efxToken: efxEqualizerHighGain},
		{name: "high_cutoff", kind: fieldFloat, min: 4000, max: 16000, def: 6000, efxToken: efxEqualizerHighCutoff},
	},
}

func genericSpecFor(t EffectType) *genericEffectSpec {
	switch t {
	case EffectChorus:
		return chorusSpec
	case EffectDistortion:
		return distortionSpec
	case EffectEcho:
		return echoSpec
	case EffectFlanger:
		return flangerSpec
	case EffectFrequencyShifter:
		return frequencyShifterSpec
	case EffectVocalMorpher:
		return vocalMorpherSpec
	case EffectPitchShifter:
		return pitchShifterSpec
	case EffectRingModulator:
		return ringModulatorSpec
	case EffectAutowah:
		return autowahSpec
	case EffectCompressor:
		return compressorSpec
	case EffectEqualizer:
		return equalizerSpec
	default:
		return &genericEffectSpec{effectType: t}
	}
}
