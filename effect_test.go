package eaxefx_test

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/zaynotley/eaxefx-go"
)

func u32buf(v uint32) []byte {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, v)
	return buf
}

// TestReverbPresetLoad covers S2: loading ENVIRONMENT = 8 (CAVE) on
// slot 0 pushes the whole CAVE preset to EFX in one apply pass,
// including its characteristic decay_time/room/reflections_delay
// triple, and the density/reflections-pan/late-reverb-pan fields that
// round out all 24 reverb fields.
func TestReverbPresetLoad(t *testing.T) {
	eng, backend := newTestEngine(t)
	backend.Reset()

	code := eng.EAXSetEffect(eaxefx.EffectGUIDReverb, 0, uint32(eaxefx.ReverbEnvironment), u32buf(eaxefx.EnvironmentCave))
	if code != eaxefx.CodeOK {
		t.Fatalf("EAXSetEffect(ENVIRONMENT, CAVE): %d", code)
	}

	calls := backend.Calls()
	// One apply pass, one EFX call per reverb field with a direct EFX
	// token (every field of ReverbProperties except the Environment
	// index itself, which only selects the preset).
	const wantCalls = 23
	if len(calls) != wantCalls {
		t.Fatalf("want %d EFX calls from one full apply pass, got %d", wantCalls, len(calls))
	}

	// AL_EAXREVERB_DENSITY, AL_EAXREVERB_REFLECTIONS_PAN,
	// AL_EAXREVERB_LATE_REVERB_PAN.
	const (
		tokenDensity        = 0x0001
		tokenReflectionsPan = 0x000B
		tokenLateReverbPan  = 0x000E
	)
	var sawDensity, sawReflectionsPan, sawLateReverbPan bool
	for _, c := range calls {
		switch {
		case c.Method == "Effectf" && c.Param == tokenDensity:
			sawDensity = true
		case c.Method == "Effectfv" && c.Param == tokenReflectionsPan:
			sawReflectionsPan = true
		case c.Method == "Effectfv" && c.Param == tokenLateReverbPan:
			sawLateReverbPan = true
		}
	}
	if !sawDensity {
		t.Error("want a density (AL_EAXREVERB_DENSITY) EFX call from the ENVIRONMENTSIZE field")
	}
	if !sawReflectionsPan {
		t.Error("want a reflections-pan EFX call")
	}
	if !sawLateReverbPan {
		t.Error("want a late-reverb-pan EFX call")
	}

	buf := make([]byte, 4)
	if code := eng.EAXGetEffect(eaxefx.EffectGUIDReverb, 0, uint32(eaxefx.ReverbDecayTime), buf); code != eaxefx.CodeOK {
		t.Fatalf("EAXGetEffect(DECAYTIME): %d", code)
	}
	if got := math.Float32frombits(binary.LittleEndian.Uint32(buf)); got != 2.88 {
		t.Fatalf("want CAVE's decay_time 2.88, got %v", got)
	}
}

// TestReverbEnvironmentOutOfRange covers §9's open-question resolution:
// an ENVIRONMENT index beyond the version's cap (EnvironmentCount(), the
// UNDEFINED index, on v4/v5) is rejected rather than crashing.
func TestReverbEnvironmentOutOfRange(t *testing.T) {
	eng, _ := newTestEngine(t)
	code := eng.EAXSetEffect(eaxefx.EffectGUIDReverb, 0, uint32(eaxefx.ReverbEnvironment), u32buf(eaxefx.EnvironmentCount()+10))
	if code == eaxefx.CodeOK {
		t.Fatal("want an out-of-range ENVIRONMENT index to fail")
	}
}

// TestFXSlotEffectMismatchRejected ensures a call naming a different
// effect GUID than the one currently loaded in the slot is rejected
// rather than silently routed.
func TestFXSlotEffectMismatchRejected(t *testing.T) {
	eng, _ := newTestEngine(t)
	// Slot 0 is dedicated reverb; addressing it as chorus must fail.
	code := eng.EAXSetEffect(eaxefx.EffectGUIDChorus, 0, uint32(eaxefx.ChorusWaveform), u32buf(0))
	if code == eaxefx.CodeOK {
		t.Fatal("want a mismatched effect GUID on a slot to fail")
	}
}

// TestNullEffectSlotRejectsEffectCalls covers the null-effect branch of
// dispatchEffect: slots 2/3 start with no effect loaded.
func TestNullEffectSlotRejectsEffectCalls(t *testing.T) {
	eng, _ := newTestEngine(t)
	code := eng.EAXSetEffect(eaxefx.EffectGUIDChorus, 2, uint32(eaxefx.ChorusWaveform), u32buf(0))
	if code != eaxefx.CodeNoEffectLoaded {
		t.Fatalf("want CodeNoEffectLoaded, got %d", code)
	}
}

// TestGenericEffectRoundTrip covers P4 for the table-driven generic
// effect template: load chorus into slot 2, then set/get one of its
// fields.
func TestGenericEffectRoundTrip(t *testing.T) {
	eng, _ := newTestEngine(t)

	var guidBuf [16]byte
	copy(guidBuf[:], eaxefx.EffectGUIDChorus[:])
	if code := eng.EAXSet(slotGUID(t, 2), uint32(eaxefx.FXSlotLoadEffect), 0, guidBuf[:]); code != eaxefx.CodeOK {
		t.Fatalf("load chorus into slot 2: %d", code)
	}

	if code := eng.EAXSetEffect(eaxefx.EffectGUIDChorus, 2, uint32(eaxefx.ChorusRate), f32buf(1.5)); code != eaxefx.CodeOK {
		t.Fatalf("set chorus rate: %d", code)
	}
	buf := make([]byte, 4)
	if code := eng.EAXGetEffect(eaxefx.EffectGUIDChorus, 2, uint32(eaxefx.ChorusRate), buf); code != eaxefx.CodeOK {
		t.Fatalf("get chorus rate: %d", code)
	}
	if got := math.Float32frombits(binary.LittleEndian.Uint32(buf)); got != 1.5 {
		t.Fatalf("want 1.5 back, got %v", got)
	}
}

// TestGenericEffectIdempotentSetProducesNoSecondTrace covers P5: two
// identical sets against the same effect field produce EFX calls on the
// first and none on the second.
func TestGenericEffectIdempotentSetProducesNoSecondTrace(t *testing.T) {
	eng, backend := newTestEngine(t)

	var guidBuf [16]byte
	copy(guidBuf[:], eaxefx.EffectGUIDChorus[:])
	if code := eng.EAXSet(slotGUID(t, 2), uint32(eaxefx.FXSlotLoadEffect), 0, guidBuf[:]); code != eaxefx.CodeOK {
		t.Fatalf("load chorus into slot 2: %d", code)
	}

	if code := eng.EAXSetEffect(eaxefx.EffectGUIDChorus, 2, uint32(eaxefx.ChorusRate), f32buf(1.5)); code != eaxefx.CodeOK {
		t.Fatalf("first set: %d", code)
	}
	backend.Reset()
	if code := eng.EAXSetEffect(eaxefx.EffectGUIDChorus, 2, uint32(eaxefx.ChorusRate), f32buf(1.5)); code != eaxefx.CodeOK {
		t.Fatalf("second identical set: %d", code)
	}
	if calls := backend.Calls(); len(calls) != 0 {
		t.Fatalf("want no EFX calls on an identical repeat set, got %d", len(calls))
	}
}
