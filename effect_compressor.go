package eaxefx

const efxCompressorOnOff uint32 = 0x0001

// CompressorOnOff is the sole compressor property ID.
const CompressorOnOff uint32 = 2

var compressorSpec = &genericEffectSpec{
	effectType: EffectCompressor,
	fields: []genericFieldSpec{
		{name: "on_off", kind: fieldInt, min: 0, max: 1, def: 1, efxToken: efxCompressorOnOff},
	},
}
