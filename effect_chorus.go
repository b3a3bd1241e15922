package eaxefx

const (
	efxChorusWaveform uint32 = 0x0001
	efxChorusPhase    uint32 = 0x0002
	efxChorusRate     uint32 = 0x0003
	efxChorusDepth    uint32 = 0x0004
	efxChorusFeedback uint32 = 0x0005
	efxChorusDelay    uint32 = 0x0006
)

// Chorus property IDs, in the field order chorusSpec declares (property
// id = field index + 2, matching genericEffect.fieldIndex).
const (
	ChorusWaveform uint32 = iota + 2
	ChorusPhase
	ChorusRate
	ChorusDepth
	ChorusFeedback
	ChorusDelay
)

var chorusSpec = &genericEffectSpec{
	effectType: EffectChorus,
	fields: []genericFieldSpec{
		{name: "waveform", kind: fieldInt, min: 0, max: 1, def: 1, efxToken: efxChorusWaveform},
		{name: "phase", kind: fieldInt, min: -180, max: 180, def: 90, efxToken: efxChorusPhase},
		{name: "rate", kind: fieldFloat, min: 0, max: 10, def: 1.1, efxToken: efxChorusRate},
		{name: "depth", kind: fieldFloat, min: 0, max: 1, def: 0.1, efxToken: efxChorusDepth},
		{name: "feedback", kind: fieldFloat, min: -1, max: 1, def: 0.25, efxToken: efxChorusFeedback},
		{name: "delay", kind: fieldFloat, min: 0, max: 0.016, def: 0.016, efxToken: efxChorusDelay},
	},
}
