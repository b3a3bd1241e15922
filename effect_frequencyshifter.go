package eaxefx

const (
	efxFrequencyShifterFrequency      uint32 = 0x0001
	efxFrequencyShifterLeftDirection  uint32 = 0x0002
	efxFrequencyShifterRightDirection uint32 = 0x0003
)

// FrequencyShifter property IDs, in the field order frequencyShifterSpec
// declares.
const (
	FrequencyShifterFrequency uint32 = iota + 2
	FrequencyShifterLeftDirection
	FrequencyShifterRightDirection
)

var frequencyShifterSpec = &genericEffectSpec{
	effectType: EffectFrequencyShifter,
	fields: []genericFieldSpec{
		{name: "frequency", kind: fieldFloat, min: 0, max: 24000, def: 0, efxToken: efxFrequencyShifterFrequency},
		{name: "left_direction", kind: fieldInt, min: 0, max: 2, def: 0, efxToken: efxFrequencyShifterLeftDirection},
		{name: "right_direction", kind: fieldInt, min: 0, max: 2, def: 0, efxToken: efxFrequencyShifterRightDirection},
	},
}
