package eaxefx

const (
	efxDistortionEdge          uint32 = 0x0001
	efxDistortionGain          uint32 = 0x0002
	efxDistortionLowpassCutoff uint32 = 0x0003
	efxDistortionEQCenter      uint32 = 0x0004
	efxDistortionEQBandwidth   uint32 = 0x0005
)

// Distortion property IDs, in the field order distortionSpec declares.
const (
	DistortionEdge uint32 = iota + 2
	DistortionGain
	DistortionLowpassCutoff
	DistortionEQCenter
	DistortionEQBandwidth
)

var distortionSpec = &genericEffectSpec{
	effectType: EffectDistortion,
	fields: []genericFieldSpec{
		{name: "edge", kind: fieldFloat, min: 0, max: 1, def: 0.2, efxToken: efxDistortionEdge},
		{name: "gain", kind: fieldFloat, min: 0.01, max: 1, def: 0.05, efxToken: efxDistortionGain},
		{name: "lowpass_cutoff", kind: fieldFloat, min: 80, max: 24000, def: 8000, efxToken: efxDistortionLowpassCutoff},
		{name: "eq_center", kind: fieldFloat, min: 80, max: 24000, def: 3600, efxToken: efxDistortionEQCenter},
		{name: "eq_bandwidth", kind: fieldFloat, min: 80, max: 24000, def: 3600, efxToken: efxDistortionEQBandwidth},
	},
}
