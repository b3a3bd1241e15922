package eaxefx

// NullEffect is loaded into a slot that has no effect active. It has no
// properties of its own: every effect-scoped get or set on it fails with
// no_effect_loaded. Loading it rebinds the slot's EFX effect to
// AL_EFFECT_NULL (§4.6).
type NullEffect struct{}

func NewNullEffect() *NullEffect { return &NullEffect{} }

func (NullEffect) Type() EffectType { return EffectNull }

func (NullEffect) Dispatch(alx alxEffectBackend, handle EffectHandle, call *EAXCall) error {
	return errNoEffectLoaded("fx_slot_effect", "no effect loaded")
}
