package eaxefx

const (
	efxEchoDelay    uint32 = 0x0001
	efxEchoLRDelay  uint32 = 0x0002
	efxEchoDamping  uint32 = 0x0003
	efxEchoFeedback uint32 = 0x0004
	efxEchoSpread   uint32 = 0x0005
)

// Echo property IDs, in the field order echoSpec declares.
const (
	EchoDelay uint32 = iota + 2
	EchoLRDelay
	EchoDamping
	EchoFeedback
	EchoSpread
)

var echoSpec = &genericEffectSpec{
	effectType: EffectEcho,
	fields: []genericFieldSpec{
		{name: "delay", kind: fieldFloat, min: 0, max: 0.207, def: 0.1, efxToken: efxEchoDelay},
		{name: "lr_delay", kind: fieldFloat, min: 0, max: 0.404, def: 0.1, efxToken: efxEchoLRDelay},
		{name: "damping", kind: fieldFloat, min: 0, max: 0.99, def: 0.5, efxToken: efxEchoDamping},
		{name: "feedback", kind: fieldFloat, min: 0, max: 1, def: 0.5, efxToken: efxEchoFeedback},
		{name: "spread", kind: fieldFloat, min: -1, max: 1, def: -1, efxToken: efxEchoSpread},
	},
}
