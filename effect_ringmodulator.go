package eaxefx

const (
	efxRingModulatorFrequency       uint32 = 0x0001
	efxRingModulatorHighpassCutoff  uint32 = 0x0002
	efxRingModulatorWaveform        uint32 = 0x0003
)

// RingModulator property IDs, in the field order ringModulatorSpec declares.
const (
	RingModulatorFrequency uint32 = iota + 2
	RingModulatorHighpassCutoff
	RingModulatorWaveform
)

var ringModulatorSpec = &genericEffectSpec{
	effectType: EffectRingModulator,
	fields: []genericFieldSpec{
		{name: "frequency", kind: fieldFloat, min: 0, max: 8000, def: 440, efxToken: efxRingModulatorFrequency},
		{name: "highpass_cutoff", kind: fieldFloat, min: 0, max: 24000, def: 800, efxToken: efxRingModulatorHighpassCutoff},
		{name: "waveform", kind: fieldInt, min: 0, max: 2, def: 0, efxToken: efxRingModulatorWaveform},
	},
}
