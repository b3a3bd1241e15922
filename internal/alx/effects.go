package alx

import "github.com/zaynotley/eaxefx-go"

// EffectType, Effectf, Effecti and Effectfv implement the core engine's
// effect-scoped backend contract by forwarding straight to the resolved
// alEffect* entry points.
func (d *Driver) EffectType(h eaxefx.EffectHandle, effectType uint32) error {
	d.syms.alEffecti(uint32(h), 0x8001, int32(effectType)) // AL_EFFECT_TYPE
	return nil
}

func (d *Driver) Effectf(h eaxefx.EffectHandle, param uint32, value float32) error {
	d.syms.alEffectf(uint32(h), int32(param), value)
	return nil
}

func (d *Driver) Effecti(h eaxefx.EffectHandle, param uint32, value int32) error {
	d.syms.alEffecti(uint32(h), int32(param), value)
	return nil
}

func (d *Driver) Effectfv(h eaxefx.EffectHandle, param uint32, values []float32) error {
	if len(values) == 0 {
		return nil
	}
	d.syms.alEffectfv(uint32(h), int32(param), &values[0])
	return nil
}

func (d *Driver) GenEffect() (eaxefx.EffectHandle, error) {
	var name uint32
	d.syms.alGenEffects(1, &name)
	return eaxefx.EffectHandle(name), nil
}

func (d *Driver) DeleteEffect(h eaxefx.EffectHandle) error {
	name := uint32(h)
	d.syms.alDeleteEffects(1, &name)
	return nil
}

func (d *Driver) GenAuxSlot() (eaxefx.AuxSlotHandle, error) {
	var name uint32
	d.syms.alGenAuxiliaryEffectSlots(1, &name)
	return eaxefx.AuxSlotHandle(name), nil
}

func (d *Driver) DeleteAuxSlot(h eaxefx.AuxSlotHandle) error {
	name := uint32(h)
	d.syms.alDeleteAuxiliaryEffectSlots(1, &name)
	return nil
}

const alEffectslotEffect int32 = 0x0001

func (d *Driver) AuxSlotf(h eaxefx.AuxSlotHandle, param uint32, value float32) error {
	d.syms.alAuxiliaryEffectSlotf(uint32(h), int32(param), value)
	return nil
}

func (d *Driver) AuxSloti(h eaxefx.AuxSlotHandle, param uint32, value int32) error {
	d.syms.alAuxiliaryEffectSloti(uint32(h), int32(param), value)
	return nil
}

func (d *Driver) BindEffectToAuxSlot(slot eaxefx.AuxSlotHandle, effect eaxefx.EffectHandle) error {
	d.syms.alAuxiliaryEffectSloti(uint32(slot), alEffectslotEffect, int32(effect))
	return nil
}
