package eaxefx

const (
	efxFlangerWaveform uint32 = 0x0001
	efxFlangerPhase    uint32 = 0x0002
	efxFlangerRate     uint32 = 0x0003
	efxFlangerDepth    uint32 = 0x0004
	efxFlangerFeedback uint32 = 0x0005
	efxFlangerDelay    uint32 = 0x0006
)

// Flanger property IDs, in the field order flangerSpec declares.
const (
	FlangerWaveform uint32 = iota + 2
	FlangerPhase
	FlangerRate
	FlangerDepth
	FlangerFeedback
	FlangerDelay
)

var flangerSpec = &genericEffectSpec{
	effectType: EffectFlanger,
	fields: []genericFieldSpec{
		{name: "waveform", kind: fieldInt, min: 0, max: 1, def: 1, efxToken: efxFlangerWaveform},
		{name: "phase", kind: fieldInt, min: -180, max: 180, def: 0, efxToken: efxFlangerPhase},
		{name: "rate", kind: fieldFloat, min: 0, max: 10, def: 0.27, efxToken: efxFlangerRate},
		{name: "depth", kind: fieldFloat, min: 0, max: 1, def: 1.0, efxToken: efxFlangerDepth},
		{name: "feedback", kind: fieldFloat, min: -1, max: 1, def: -0.5, efxToken: efxFlangerFeedback},
		{name: "delay", kind: fieldFloat, min: 0, max: 0.004, def: 0.002, efxToken: efxFlangerDelay},
	},
}
