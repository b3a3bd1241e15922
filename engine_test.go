package eaxefx_test

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/zaynotley/eaxefx-go"
	"github.com/zaynotley/eaxefx-go/internal/alxfake"
)

func newTestEngine(t *testing.T) (*eaxefx.Engine, *alxfake.Backend) {
	t.Helper()
	backend := alxfake.New()
	eng := eaxefx.NewEngine(backend, backend, nil)
	h, err := eng.CreateContext()
	if err != nil {
		t.Fatalf("CreateContext: %v", err)
	}
	if err := eng.MakeCurrent(h); err != nil {
		t.Fatalf("MakeCurrent: %v", err)
	}
	return eng, backend
}

func f32buf(v float32) []byte {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, math.Float32bits(v))
	return buf
}

func i32buf(v int32) []byte {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, uint32(v))
	return buf
}

func TestCreateContextInitializesFourSlots(t *testing.T) {
	backend := alxfake.New()
	eng := eaxefx.NewEngine(backend, backend, nil)
	if _, err := eng.CreateContext(); err != nil {
		t.Fatalf("CreateContext: %v", err)
	}

	var bound int
	for _, c := range backend.Calls() {
		if c.Method == "BindEffectToAuxSlot" {
			bound++
		}
	}
	if bound != 4 {
		t.Fatalf("want 4 slots bound on activation, got %d", bound)
	}
}

func TestMakeCurrentRejectsUnknownHandle(t *testing.T) {
	backend := alxfake.New()
	eng := eaxefx.NewEngine(backend, backend, nil)
	if err := eng.MakeCurrent(99); err == nil {
		t.Fatal("want error for unknown context handle")
	}
}

func TestEAXSetRejectsNullPropertySetGUID(t *testing.T) {
	eng, _ := newTestEngine(t)
	code := eng.EAXSet(eaxefx.GUID{}, 0, 0, nil)
	if code != eaxefx.CodeInvalidOperation {
		t.Fatalf("want CodeInvalidOperation, got %d", code)
	}
}

func TestLastErrorLatchesAndClearsOnRead(t *testing.T) {
	eng, _ := newTestEngine(t)

	// hf_reference's legal range is [1000, 20000]; 1.0 is out of range.
	code := eng.EAXSet(eaxefx.ContextGUID50, uint32(eaxefx.ContextHFReference), 0, f32buf(1.0))
	if code >= eaxefx.CodeOK {
		t.Fatalf("want a failing code for out-of-range hf_reference, got %d", code)
	}

	buf := make([]byte, 4)
	if c := eng.EAXGet(eaxefx.ContextGUID50, uint32(eaxefx.ContextLastError), 0, buf); c != eaxefx.CodeOK {
		t.Fatalf("EAXGet(LASTERROR) failed: %d", c)
	}
	if got := int32(binary.LittleEndian.Uint32(buf)); got == int32(eaxefx.CodeOK) {
		t.Fatal("want last_error to reflect the prior failure")
	}

	buf2 := make([]byte, 4)
	eng.EAXGet(eaxefx.ContextGUID50, uint32(eaxefx.ContextLastError), 0, buf2)
	if got := int32(binary.LittleEndian.Uint32(buf2)); got != int32(eaxefx.CodeOK) {
		t.Fatalf("want last_error cleared on second read, got %d", got)
	}
}

// TestXRAMModeLock exercises S5: a freshly registered buffer can switch
// to HARDWARE while still clean; once PCM data lands, its mode is
// locked and any further SetBufferMode call on it fails.
func TestXRAMModeLock(t *testing.T) {
	eng, _ := newTestEngine(t)

	if code := eng.EAXSetBufferMode([]uint32{1}, eaxefx.XRAMHardware); code != eaxefx.CodeOK {
		t.Fatalf("want OK setting a clean buffer to HARDWARE, got %d", code)
	}
	mode, code := eng.EAXGetBufferMode(1)
	if code != eaxefx.CodeOK || mode != eaxefx.XRAMHardware {
		t.Fatalf("want HARDWARE, got mode=%v code=%d", mode, code)
	}

	if err := eng.NotifyBufferData(1, 4096); err != nil {
		t.Fatalf("NotifyBufferData: %v", err)
	}
	if code := eng.EAXSetBufferMode([]uint32{1}, eaxefx.XRAMAutomatic); code == eaxefx.CodeOK {
		t.Fatal("want mode change on a dirty buffer to fail")
	}
}

func TestContextSetGetRoundTrip(t *testing.T) {
	eng, _ := newTestEngine(t)

	if code := eng.EAXSet(eaxefx.ContextGUID50, uint32(eaxefx.ContextDistanceFactor), 0, f32buf(2.5)); code != eaxefx.CodeOK {
		t.Fatalf("EAXSet(DistanceFactor): %d", code)
	}
	buf := make([]byte, 4)
	if code := eng.EAXGet(eaxefx.ContextGUID50, uint32(eaxefx.ContextDistanceFactor), 0, buf); code != eaxefx.CodeOK {
		t.Fatalf("EAXGet(DistanceFactor): %d", code)
	}
	if got := math.Float32frombits(binary.LittleEndian.Uint32(buf)); got != 2.5 {
		t.Fatalf("want 2.5 back, got %v", got)
	}
}

func TestAddSourceTwiceFails(t *testing.T) {
	eng, _ := newTestEngine(t)
	if err := eng.AddSource(1); err != nil {
		t.Fatalf("AddSource: %v", err)
	}
	if err := eng.AddSource(1); err == nil {
		t.Fatal("want error re-adding the same source name")
	}
}

func TestRemoveUnknownSourceFails(t *testing.T) {
	eng, _ := newTestEngine(t)
	if err := eng.RemoveSource(42); err == nil {
		t.Fatal("want error removing an unregistered source")
	}
}
