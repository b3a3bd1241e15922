// Package alxfake is an in-memory stand-in for the real EFX/AL driver,
// used by tests that exercise the engine's dispatch logic without a
// loadable OpenAL implementation on the test machine. It mirrors the
// shape of a headless audio backend used for unit testing without real
// hardware or a real driver present.
package alxfake

import (
	"fmt"
	"sync"

	"github.com/zaynotley/eaxefx-go"
)

// Call is one recorded backend invocation, kept so tests can assert on
// the exact EFX call trace a dispatch produced (P5: "two identical sets
// produce the same EFX call trace on the first and no EFX calls on the
// second").
type Call struct {
	Method string
	Handle uint32
	Param  uint32
	Value  float32
	IValue int32
	Values []float32
}

// Backend is a single in-memory driver stand-in satisfying every
// backend interface the core package depends on.
type Backend struct {
	mu sync.Mutex

	nextEffect  uint32
	nextAux     uint32
	nextFilter  uint32

	effectTypes map[eaxefx.EffectHandle]uint32
	calls       []Call
}

func New() *Backend {
	return &Backend{effectTypes: make(map[eaxefx.EffectHandle]uint32)}
}

// Calls returns the recorded call trace since the last Reset.
func (b *Backend) Calls() []Call {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Call, len(b.calls))
	copy(out, b.calls)
	return out
}

// Reset clears the recorded call trace without disturbing allocated
// handles, so a test can assert "no calls on the second identical set".
func (b *Backend) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = nil
}

func (b *Backend) record(c Call) {
	b.calls = append(b.calls, c)
}

// --- alxEffectBackend / alxSlotBackend ---

func (b *Backend) EffectType(h eaxefx.EffectHandle, effectType uint32) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.effectTypes[h] = effectType
	b.record(Call{Method: "EffectType", Handle: uint32(h), Param: effectType})
	return nil
}

func (b *Backend) Effectf(h eaxefx.EffectHandle, param uint32, value float32) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.record(Call{Method: "Effectf", Handle: uint32(h), Param: param, Value: value})
	return nil
}

func (b *Backend) Effecti(h eaxefx.EffectHandle, param uint32, value int32) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.record(Call{Method: "Effecti", Handle: uint32(h), Param: param, IValue: value})
	return nil
}

func (b *Backend) Effectfv(h eaxefx.EffectHandle, param uint32, values []float32) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.record(Call{Method: "Effectfv", Handle: uint32(h), Param: param, Values: append([]float32(nil), values...)})
	return nil
}

func (b *Backend) GenEffect() (eaxefx.EffectHandle, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextEffect++
	return eaxefx.EffectHandle(b.nextEffect), nil
}

func (b *Backend) DeleteEffect(h eaxefx.EffectHandle) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.effectTypes, h)
	return nil
}

func (b *Backend) GenAuxSlot() (eaxefx.AuxSlotHandle, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextAux++
	return eaxefx.AuxSlotHandle(b.nextAux), nil
}

func (b *Backend) DeleteAuxSlot(h eaxefx.AuxSlotHandle) error {
	return nil
}

func (b *Backend) AuxSlotf(h eaxefx.AuxSlotHandle, param uint32, value float32) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.record(Call{Method: "AuxSlotf", Handle: uint32(h), Param: param, Value: value})
	return nil
}

func (b *Backend) AuxSloti(h eaxefx.AuxSlotHandle, param uint32, value int32) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.record(Call{Method: "AuxSloti", Handle: uint32(h), Param: param, IValue: value})
	return nil
}

func (b *Backend) BindEffectToAuxSlot(slot eaxefx.AuxSlotHandle, effect eaxefx.EffectHandle) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.record(Call{Method: "BindEffectToAuxSlot", Handle: uint32(slot), Param: uint32(effect)})
	return nil
}

// --- alxSourceBackend ---

func (b *Backend) GenFilter() (eaxefx.FilterHandle, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextFilter++
	return eaxefx.FilterHandle(b.nextFilter), nil
}

func (b *Backend) DeleteFilter(h eaxefx.FilterHandle) error { return nil }

func (b *Backend) Filteri(h eaxefx.FilterHandle, param uint32, value int32) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.record(Call{Method: "Filteri", Handle: uint32(h), Param: param, IValue: value})
	return nil
}

func (b *Backend) Filterf(h eaxefx.FilterHandle, param uint32, value float32) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.record(Call{Method: "Filterf", Handle: uint32(h), Param: param, Value: value})
	return nil
}

func (b *Backend) SetDirectFilter(sourceName uint32, filter eaxefx.FilterHandle) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.record(Call{Method: "SetDirectFilter", Handle: sourceName, Param: uint32(filter)})
	return nil
}

func (b *Backend) SetAuxSendFilter(sourceName uint32, send int, slot eaxefx.AuxSlotHandle, filter eaxefx.FilterHandle) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.record(Call{
		Method: fmt.Sprintf("SetAuxSendFilter[%d]", send),
		Handle: sourceName,
		Param:  uint32(slot),
		IValue: int32(filter),
	})
	return nil
}
