package eaxefx_test

import (
	"testing"

	"github.com/zaynotley/eaxefx-go"
)

func slotGUID(t *testing.T, index int) eaxefx.GUID {
	t.Helper()
	g, err := eaxefx.FXSlotGUID(eaxefx.SessionEAX40, index)
	if err != nil {
		t.Fatalf("FXSlotGUID(%d): %v", index, err)
	}
	return g
}

// TestDedicatedSlotRejectsAllParameters covers S3: slot 0's dedicated
// reverb effect may never be swapped out via ALLPARAMETERS.
func TestDedicatedSlotRejectsAllParameters(t *testing.T) {
	eng, _ := newTestEngine(t)
	code := eng.EAXSet(slotGUID(t, 0), uint32(eaxefx.FXSlotAllParameters), 0, nil)
	if code == eaxefx.CodeOK {
		t.Fatal("want ALLPARAMETERS on a dedicated slot to fail")
	}
}

// TestLockedSlotAllowsIdenticalEffectReload covers S6 and P7: a locked
// slot rejects a LOADEFFECT naming a different effect, but reloading the
// current one is a harmless no-op.
func TestLockedSlotAllowsIdenticalEffectReload(t *testing.T) {
	eng, _ := newTestEngine(t)
	g := slotGUID(t, 2) // slot 2 starts null, not dedicated

	if code := eng.EAXSet(g, uint32(eaxefx.FXSlotLock), 0, i32buf(1)); code != eaxefx.CodeOK {
		t.Fatalf("EAXSet(LOCK, 1): %d", code)
	}

	nullGUIDBuf := make([]byte, 16)
	if code := eng.EAXSet(g, uint32(eaxefx.FXSlotLoadEffect), 0, nullGUIDBuf); code != eaxefx.CodeOK {
		t.Fatalf("reloading the current (null) effect while locked should succeed, got %d", code)
	}

	var otherGUIDBuf [16]byte
	copy(otherGUIDBuf[:], eaxefx.EffectGUIDChorus[:])
	if code := eng.EAXSet(g, uint32(eaxefx.FXSlotLoadEffect), 0, otherGUIDBuf[:]); code == eaxefx.CodeOK {
		t.Fatal("want loading a different effect on a locked slot to fail")
	}
}

// TestFXSlotVolumeRoundTrip covers P4 for a simple fx_slot scalar
// property.
func TestFXSlotVolumeRoundTrip(t *testing.T) {
	eng, _ := newTestEngine(t)
	g := slotGUID(t, 2)

	if code := eng.EAXSet(g, uint32(eaxefx.FXSlotVolume), 0, i32buf(-500)); code != eaxefx.CodeOK {
		t.Fatalf("EAXSet(VOLUME): %d", code)
	}
	buf := make([]byte, 4)
	if code := eng.EAXGet(g, uint32(eaxefx.FXSlotVolume), 0, buf); code != eaxefx.CodeOK {
		t.Fatalf("EAXGet(VOLUME): %d", code)
	}
	got := int32(buf[0]) | int32(buf[1])<<8 | int32(buf[2])<<16 | int32(buf[3])<<24
	if got != -500 {
		t.Fatalf("want -500 back, got %d", got)
	}
}

// TestFXSlotOcclusionRequiresEAX5 exercises the version gate on the
// EAX5-only fx_slot occlusion properties: a context activated under the
// default EAX4 session rejects them outright.
func TestFXSlotOcclusionRequiresEAX5(t *testing.T) {
	eng, _ := newTestEngine(t)
	g := slotGUID(t, 2)

	if code := eng.EAXSet(g, uint32(eaxefx.FXSlotOcclusion), 0, i32buf(-1000)); code != eaxefx.CodeIncompatibleEAXVersion {
		t.Fatalf("want CodeIncompatibleEAXVersion under a default EAX4 session, got %d", code)
	}
}
