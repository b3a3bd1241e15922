package eaxefx

const (
	efxPitchShifterCoarseTune uint32 = 0x0001
	efxPitchShifterFineTune   uint32 = 0x0002
)

// PitchShifter property IDs, in the field order pitchShifterSpec declares.
const (
	PitchShifterCoarseTune uint32 = iota + 2
	PitchShifterFineTune
)

var pitchShifterSpec = &genericEffectSpec{
	effectType: EffectPitchShifter,
	fields: []genericFieldSpec{
		{name: "coarse_tune", kind: fieldInt, min: -12, max: 12, def: 12, efxToken: efxPitchShifterCoarseTune},
		{name: "fine_tune", kind: fieldInt, min: -50, max: 50, def: 0, efxToken: efxPitchShifterFineTune},
	},
}
