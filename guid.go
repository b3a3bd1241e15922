package eaxefx

import "fmt"

// GUID is a 16-byte value-compared identifier, used to select a property
// set, an effect type, or (via the four per-version FX-slot GUIDs) a
// routing target. It has no string form in the wire protocol; games pass
// it as a raw 16-byte struct the same way the legacy Windows COM ABI does.
type GUID [16]byte

func (g GUID) String() string {
	return fmt.Sprintf("%x-%x-%x-%x-%x", g[0:4], g[4:6], g[6:8], g[8:10], g[10:16])
}

// IsNull reports whether g is the all-zero sentinel.
func (g GUID) IsNull() bool {
	return g == GUID{}
}

func guid(a uint32, b, c uint16, d0, d1, d2, d3, d4, d5, d6, d7 byte) GUID {
	var g GUID
	g[0] = byte(a >> 24)
	g[1] = byte(a >> 16)
	g[2] = byte(a >> 8)
	g[3] = byte(a)
	g[4] = byte(b >> 8)
	g[5] = byte(b)
	g[6] = byte(c >> 8)
	g[7] = byte(c)
	g[8], g[9], g[10], g[11], g[12], g[13], g[14], g[15] = d0, d1, d2, d3, d4, d5, d6, d7
	return g
}

// Recognized property-set and effect-type GUIDs. Values mirror the legacy
// EAX headers; only their distinctness and stability matter to this engine,
// not their numeric origin.
var (
	NullGUID        = GUID{}
	PrimaryFXSlotID = guid(0xf317866d, 0x924c, 0x4dfb, 0x98, 0xef, 0xd3, 0x51, 0x9b, 0x19, 0x3b, 0x40)

	ContextGUID40 = guid(0x0a9ed8b6, 0xdce0, 0x47da, 0x93, 0x06, 0xbb, 0x68, 0x44, 0x6b, 0x70, 0xe6)
	ContextGUID50 = guid(0x1b86b823, 0x22df, 0x4eae, 0x8c, 0x0f, 0x73, 0x18, 0x19, 0x1f, 0x88, 0x7c)

	SourceGUID40 = guid(0x1b86b824, 0x22df, 0x4eae, 0x8c, 0x0f, 0x73, 0x18, 0x19, 0x1f, 0x88, 0x7c)
	SourceGUID50 = guid(0x1b86b825, 0x22df, 0x4eae, 0x8c, 0x0f, 0x73, 0x18, 0x19, 0x1f, 0x88, 0x7c)

	ListenerGUID20 = guid(0x1d4870ad, 0xa33, 0x11d1, 0x97, 0xc4, 0x00, 0x00, 0xf8, 0xbb, 0x1e, 0xb1)
	ListenerGUID30 = guid(0x1d4870ae, 0xa33, 0x11d1, 0x97, 0xc4, 0x00, 0x00, 0xf8, 0xbb, 0x1e, 0xb1)
	BufferGUID20   = guid(0x1d4870af, 0xa33, 0x11d1, 0x97, 0xc4, 0x00, 0x00, 0xf8, 0xbb, 0x1e, 0xb1)
	BufferGUID30   = guid(0x1d4870b0, 0xa33, 0x11d1, 0x97, 0xc4, 0x00, 0x00, 0xf8, 0xbb, 0x1e, 0xb1)

	fxSlot40GUIDs = [4]GUID{
		guid(0xc4d79f11, 0x07ce, 0x4ce6, 0x96, 0x49, 0x23, 0x37, 0x6f, 0xc8, 0x24, 0x01),
		guid(0xc4d79f12, 0x07ce, 0x4ce6, 0x96, 0x49, 0x23, 0x37, 0x6f, 0xc8, 0x24, 0x01),
		guid(0xc4d79f13, 0x07ce, 0x4ce6, 0x96, 0x49, 0x23, 0x37, 0x6f, 0xc8, 0x24, 0x01),
		guid(0xc4d79f14, 0x07ce, 0x4ce6, 0x96, 0x49, 0x23, 0x37, 0x6f, 0xc8, 0x24, 0x01),
	}
	fxSlot50GUIDs = [4]GUID{
		guid(0xc4d79f11, 0x07ce, 0x4ce6, 0x96, 0x49, 0x23, 0x37, 0x6f, 0xc8, 0x24, 0x02),
		guid(0xc4d79f12, 0x07ce, 0x4ce6, 0x96, 0x49, 0x23, 0x37, 0x6f, 0xc8, 0x24, 0x02),
		guid(0xc4d79f13, 0x07ce, 0x4ce6, 0x96, 0x49, 0x23, 0x37, 0x6f, 0xc8, 0x24, 0x02),
		guid(0xc4d79f14, 0x07ce, 0x4ce6, 0x96, 0x49, 0x23, 0x37, 0x6f, 0xc8, 0x24, 0x02),
	}

	EffectGUIDNull            = GUID{}
	EffectGUIDReverb          = guid(0xcf95c8f5, 0xa3cc, 0x4849, 0xb0, 0xb9, 0x26, 0xe2, 0xb5, 0x12, 0xf1, 0x7c)
	EffectGUIDChorus          = guid(0xcf95c8f6, 0xa3cc, 0x4849, 0xb0, 0xb9, 0x26, 0xe2, 0xb5, 0x12, 0xf1, 0x7c)
	EffectGUIDAutowah         = guid(0xcf95c8f7, 0xa3cc, 0x4849, 0xb0, 0xb9, 0x26, 0xe2, 0xb5, 0x12, 0xf1, 0x7c)
	EffectGUIDCompressor      = guid(0xcf95c8f8, 0xa3cc, 0x4849, 0xb0, 0xb9, 0x26, 0xe2, 0xb5, 0x12, 0xf1, 0x7c)
	EffectGUIDDistortion      = guid(0xcf95c8f9, 0xa3cc, 0x4849, 0xb0, 0xb9, 0x26, 0xe2, 0xb5, 0x12, 0xf1, 0x7c)
	EffectGUIDEcho            = guid(0xcf95c8fa, 0xa3cc, 0x4849, 0xb0, 0xb9, 0x26, 0xe2, 0xb5, 0x12, 0xf1, 0x7c)
	EffectGUIDEqualizer       = guid(0xcf95c8fb, 0xa3cc, 0x4849, 0xb0, 0xb9, 0x26, 0xe2, 0xb5, 0x12, 0xf1, 0x7c)
	EffectGUIDFlanger         = guid(0xcf95c8fc, 0xa3cc, 0x4849, 0xb0, 0xb9, 0x26, 0xe2, 0xb5, 0x12, 0xf1, 0x7c)
	EffectGUIDFrequencyShift  = guid(0xcf95c8fd, 0xa3cc, 0x4849, 0xb0, 0xb9, 0x26, 0xe2, 0xb5, 0x12, 0xf1, 0x7c)
	EffectGUIDPitchShifter    = guid(0xcf95c8fe, 0xa3cc, 0x4849, 0xb0, 0xb9, 0x26, 0xe2, 0xb5, 0x12, 0xf1, 0x7c)
	EffectGUIDRingModulator   = guid(0xcf95c8ff, 0xa3cc, 0x4849, 0xb0, 0xb9, 0x26, 0xe2, 0xb5, 0x12, 0xf1, 0x7c)
	EffectGUIDVocalMorpher    = guid(0xcf95c900, 0xa3cc, 0x4849, 0xb0, 0xb9, 0x26, 0xe2, 0xb5, 0x12, 0xf1, 0x7c)
)
