// Package alx is the cgo-free driver binding for the engine's EFX calls.
// It resolves the AL/ALC/EFX entry points from the platform's OpenAL
// shared library through github.com/ebitengine/purego's dynamic symbol
// loader, the same dlopen+RegisterLibFunc approach used elsewhere in the
// Go ecosystem to call native audio libraries without cgo.
package alx

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// symbols is the subset of the AL/EFX entry-point table the engine
// calls directly. Resolving it is "fatal to EAX functionality but does
// not prevent ordinary playback from continuing" per the activation
// sequence the core assumes its caller already ran.
type symbols struct {
	alGenEffects      func(n int32, effects *uint32)
	alDeleteEffects   func(n int32, effects *uint32)
	alEffecti         func(effect uint32, param int32, value int32)
	alEffectf         func(effect uint32, param int32, value float32)
	alEffectfv        func(effect uint32, param int32, values *float32)
	alGenAuxiliaryEffectSlots    func(n int32, slots *uint32)
	alDeleteAuxiliaryEffectSlots func(n int32, slots *uint32)
	alAuxiliaryEffectSloti func(slot uint32, param int32, value int32)
	alAuxiliaryEffectSlotf func(slot uint32, param int32, value float32)
	alGenFilters      func(n int32, filters *uint32)
	alDeleteFilters   func(n int32, filters *uint32)
	alFilteri         func(filter uint32, param int32, value int32)
	alFilterf         func(filter uint32, param int32, value float32)
	alSourcei         func(source uint32, param int32, value int32)
	alSource3i        func(source uint32, param int32, v1, v2, v3 int32)
}

// Driver owns the dlopen handle and the resolved symbol table, and
// implements the core engine's alxSlotBackend/alxSourceBackend
// interfaces structurally (it is never imported by the core package;
// the core only ever sees it through those interfaces, matching §9's
// "pointer-owned handle wrappers" note: the symbol table pointer is
// immutable for the Driver's lifetime).
type Driver struct {
	lib  uintptr
	syms symbols
}

// Open dlopens path (e.g. "soft_oal.dll" / "libopenal.so.1" /
// "libopenal.1.dylib") and resolves every symbol the engine needs.
func Open(path string) (*Driver, error) {
	lib, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, fmt.Errorf("alx: dlopen %s: %w", path, err)
	}

	d := &Driver{lib: lib}
	reg := func(fptr any, name string) error {
		return registerSafe(fptr, lib, name)
	}

	for _, sym := range []struct {
		fptr any
		name string
	}{
		{&d.syms.alGenEffects, "alGenEffects"},
		{&d.syms.alDeleteEffects, "alDeleteEffects"},
		{&d.syms.alEffecti, "alEffecti"},
		{&d.syms.alEffectf, "alEffectf"},
		{&d.syms.alEffectfv, "alEffectfv"},
		{&d.syms.alGenAuxiliaryEffectSlots, "alGenAuxiliaryEffectSlots"},
		{&d.syms.alDeleteAuxiliaryEffectSlots, "alDeleteAuxiliaryEffectSlots"},
		{&d.syms.alAuxiliaryEffectSloti, "alAuxiliaryEffectSloti"},
		{&d.syms.alAuxiliaryEffectSlotf, "alAuxiliaryEffectSlotf"},
		{&d.syms.alGenFilters, "alGenFilters"},
		{&d.syms.alDeleteFilters, "alDeleteFilters"},
		{&d.syms.alFilteri, "alFilteri"},
		{&d.syms.alFilterf, "alFilterf"},
		{&d.syms.alSourcei, "alSourcei"},
		{&d.syms.alSource3i, "alSource3i"},
	} {
		if err := reg(sym.fptr, sym.name); err != nil {
			return nil, fmt.Errorf("alx: resolve %s: %w", sym.name, err)
		}
	}

	return d, nil
}

// registerSafe wraps purego.RegisterLibFunc so a single missing symbol
// becomes a plain error instead of the panic purego raises internally.
func registerSafe(fptr any, lib uintptr, name string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("symbol %s: %v", name, r)
		}
	}()
	purego.RegisterLibFunc(fptr, lib, name)
	return nil
}

// Close unloads the driver library. Callers must ensure every handle
// the Driver allocated has already been deleted.
func (d *Driver) Close() error {
	return purego.Dlclose(d.lib)
}
