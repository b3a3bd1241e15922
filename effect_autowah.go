package eaxefx

const (
	efxAutowahAttackTime  uint32 = 0x0001
	efxAutowahReleaseTime uint32 = 0x0002
	efxAutowahResonance   uint32 = 0x0003
	efxAutowahPeakGain    uint32 = 0x0004
)

// Autowah property IDs, in the field order autowahSpec declares.
const (
	AutowahAttackTime uint32 = iota + 2
	AutowahReleaseTime
	AutowahResonance
	AutowahPeakGain
)

var autowahSpec = &genericEffectSpec{
	effectType: EffectAutowah,
	fields: []genericFieldSpec{
		{name: "attack_time", kind: fieldFloat, min: 0.0001, max: 1, def: 0.06, efxToken: efxAutowahAttackTime},
		{name: "release_time", kind: fieldFloat, min: 0.0001, max: 1, def: 0.06, efxToken: efxAutowahReleaseTime},
		{name: "resonance", kind: fieldFloat, min: 2, max: 1000, def: 1000, efxToken: efxAutowahResonance},
		{name: "peak_gain", kind: fieldFloat, min: 0.00003, max: 31621, def: 11.22, efxToken: efxAutowahPeakGain},
	},
}
