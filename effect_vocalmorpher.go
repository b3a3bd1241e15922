package eaxefx

const (
	efxVocalMorpherPhonemeA              uint32 = 0x0001
	efxVocalMorpherPhonemeACoarseTuning  uint32 = 0x0002
	efxVocalMorpherPhonemeB              uint32 = 0x0003
	efxVocalMorpherPhonemeBCoarseTuning  uint32 = 0x0004
	efxVocalMorpherWaveform              uint32 = 0x0005
	efxVocalMorpherRate                  uint32 = 0x0006
)

// VocalMorpher property IDs, in the field order vocalMorpherSpec declares.
const (
	VocalMorpherPhonemeA uint32 = iota + 2
	VocalMorpherPhonemeACoarseTuning
	VocalMorpherPhonemeB
	VocalMorpherPhonemeBCoarseTuning
	VocalMorpherWaveform
	VocalMorpherRate
)

var vocalMorpherSpec = &genericEffectSpec{
	effectType: EffectVocalMorpher,
	fields: []genericFieldSpec{
		{name: "phoneme_a", kind: fieldInt, min: 0, max: 29, def: 0, efxToken: efxVocalMorpherPhonemeA},
		{name: "phoneme_a_coarse_tuning", kind: fieldInt, min: -24, max: 24, def: 0, efxToken: efxVocalMorpherPhonemeACoarseTuning},
		{name: "phoneme_b", kind: fieldInt, min: 0, max: 29, def: 10, efxToken: efxVocalMorpherPhonemeB},
		{name: "phoneme_b_coarse_tuning", kind: fieldInt, min: -24, max: 24, def: 0, efxToken: efxVocalMorpherPhonemeBCoarseTuning},
		{name: "waveform", kind: fieldInt, min: 0, max: 2, def: 0, efxToken: efxVocalMorpherWaveform},
		{name: "rate", kind: fieldFloat, min: 0, max: 10, def: 1.41, efxToken: efxVocalMorpherRate},
	},
}
