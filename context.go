package eaxefx

import "errors"

// ContextProperty enumerates the context-self-scoped properties, per
// §4.8.
type ContextProperty uint32

const (
	ContextNone ContextProperty = iota
	ContextAllParameters
	ContextPrimaryFXSlotID
	ContextDistanceFactor
	ContextAirAbsorptionHF
	ContextHFReference
	ContextMacroFXFactor
	ContextLastError
	ContextSessionVersion
	ContextSessionMaxActiveSends
)

// ContextParameters is the context-self shadow, per §3's "Context
// state" entry (last_error excluded: it is latched separately, not part
// of round-trip ALLPARAMETERS state).
type ContextParameters struct {
	PrimaryFXSlotID GUID
	DistanceFactor  float32
	AirAbsorptionHF float32
	HFReference     float32
	MacroFXFactor   float32
}

func defaultContextParameters() ContextParameters {
	return ContextParameters{
		PrimaryFXSlotID: fxSlot40GUIDs[0],
		DistanceFactor:  contextDefaultDistanceFactor,
		AirAbsorptionHF: contextDefaultAirAbsorptionHF,
		HFReference:     contextDefaultHFReference,
		MacroFXFactor:   contextDefaultMacroFXFactor,
	}
}

// Context owns the slots, sources, and session for one device context,
// and is the top-level dispatcher and error latch described in §4.8.
type Context struct {
	Session Session
	params  ContextParameters

	lastError int

	slots   *FXSlots
	sources map[uint32]*Source

	alxSlots   alxSlotBackend
	alxSources alxSourceBackend

	initialized bool
}

// NewContext builds a context in its EAX4-level default state. Slots and
// sources are not allocated against the driver until Init is called,
// per §4.9 ("On the first EAX-enabled context creation").
func NewContext() *Context {
	session := defaultSession()
	return &Context{
		Session: session,
		params:  defaultContextParameters(),
		slots:   NewFXSlots(session.EAXVersion()),
		sources: make(map[uint32]*Source),
	}
}

// Init performs the §4.9 activation sequence: allocates the four EFX
// aux slots and binds their default effects. Engine.CreateContext calls
// it when the context is created, before any dispatch.
func (c *Context) Init(alxSlots alxSlotBackend, alxSources alxSourceBackend) error {
	if c.initialized {
		return nil
	}
	if err := c.slots.Init(alxSlots); err != nil {
		return err
	}
	c.alxSlots = alxSlots
	c.alxSources = alxSources
	c.initialized = true
	return nil
}

// AddSource registers a newly created AL source name, per §3's Source
// "Lifecycle: created when the game generates AL source names".
func (c *Context) AddSource(name uint32) error {
	if _, exists := c.sources[name]; exists {
		return errInvalidOperation("source", "source %d already registered", name)
	}
	src := NewSource(name, c.Session.EAXVersion())
	if c.alxSources != nil {
		if err := src.Init(c.alxSources); err != nil {
			return err
		}
	}
	c.sources[name] = src
	return nil
}

// RemoveSource deletes a source's EFX filter and drops it from the
// context, per §3's deletion-ordering rule (checked by the caller: the
// wrapper must confirm the AL play state is stopped first).
func (c *Context) RemoveSource(name uint32) error {
	src, ok := c.sources[name]
	if !ok {
		return errInvalidOperation("source", "source %d not registered", name)
	}
	delete(c.sources, name)
	if c.alxSources != nil {
		return src.Close(c.alxSources)
	}
	return nil
}

// primaryIndex resolves the current primary_fx_slot_id to a slot index.
func (c *Context) primaryIndex() FXSlotIndex {
	return c.slots.ResolvePrimary(c.params.PrimaryFXSlotID)
}

// Dispatch routes one already-parsed call to the context, a slot, or a
// source, per §4.8, and latches any resulting error, per §7.
func (c *Context) Dispatch(call *EAXCall) error {
	err := c.dispatch(call)
	if err != nil {
		var eaxErr *EAXError
		if errors.As(err, &eaxErr) {
			c.lastError = eaxErr.Kind.Code()
		} else {
			c.lastError = CodeInvalidOperation
		}
	}
	return err
}

func (c *Context) dispatch(call *EAXCall) error {
	switch call.PropertySetID {
	case PropertySetContext:
		return c.dispatchContext(call)
	case PropertySetFXSlot, PropertySetFXSlotEffect:
		idx, err := call.FXSlotIndex.Require()
		if err != nil {
			return err
		}
		slot, err := c.slots.At(idx)
		if err != nil {
			return err
		}
		filtersDirty, err := slot.Dispatch(c.alxSlots, call)
		if err != nil {
			return err
		}
		if filtersDirty {
			return c.refreshAllSources()
		}
		return nil
	case PropertySetSource:
		src, ok := c.sources[call.PropertyTargetName]
		if !ok {
			return errInvalidOperation("source", "unrecognized source %d", call.PropertyTargetName)
		}
		return src.Dispatch(c.alxSources, c.slots, c.primaryIndex(), c.Session.MaxActiveSends, call)
	default:
		return errInvalidOperation("property_set_id", "unrecognized property-set kind")
	}
}

func (c *Context) dispatchContext(call *EAXCall) error {
	if call.PropertyID == uint32(ContextLastError) {
		if call.IsGet {
			v := int32(c.lastError)
			c.lastError = CodeOK
			return SetValue(call, v)
		}
		return errInvalidOperation("last_error", "last_error is read-only")
	}

	if call.IsGet {
		return c.dispatchContextGet(call)
	}
	return c.dispatchContextSet(call)
}

func (c *Context) dispatchContextGet(call *EAXCall) error {
	switch ContextProperty(call.PropertyID) {
	case ContextAllParameters:
		return SetValue(call, c.params)
	case ContextPrimaryFXSlotID:
		return SetValue(call, c.params.PrimaryFXSlotID)
	case ContextDistanceFactor:
		return SetValue(call, c.params.DistanceFactor)
	case ContextAirAbsorptionHF:
		return SetValue(call, c.params.AirAbsorptionHF)
	case ContextHFReference:
		return SetValue(call, c.params.HFReference)
	case ContextMacroFXFactor:
		return SetValue(call, c.params.MacroFXFactor)
	case ContextSessionVersion:
		return SetValue(call, c.Session.Version)
	case ContextSessionMaxActiveSends:
		return SetValue(call, c.Session.MaxActiveSends)
	default:
		return errInvalidOperation("property_id", "unrecognized context property %d", call.PropertyID)
	}
}

func (c *Context) dispatchContextSet(call *EAXCall) error {
	switch ContextProperty(call.PropertyID) {
	case ContextAllParameters:
		v, err := Value[ContextParameters](call)
		if err != nil {
			return err
		}
		if err := contextValidator.primaryFXSlotID(v.PrimaryFXSlotID); err != nil {
			return err
		}
		if err := contextValidator.distanceFactor(v.DistanceFactor); err != nil {
			return err
		}
		if err := contextValidator.airAbsorptionHF(v.AirAbsorptionHF); err != nil {
			return err
		}
		if err := contextValidator.hfReference(v.HFReference); err != nil {
			return err
		}
		if err := contextValidator.macroFXFactor(v.MacroFXFactor); err != nil {
			return err
		}
		changed := v.PrimaryFXSlotID != c.params.PrimaryFXSlotID
		c.params = v
		if changed {
			// I3: re-run the filter update for every source referencing
			// the primary sentinel.
			return c.refreshPrimarySources()
		}
		return nil

	case ContextPrimaryFXSlotID:
		g, err := Value[GUID](call)
		if err != nil {
			return err
		}
		if err := contextValidator.primaryFXSlotID(g); err != nil {
			return err
		}
		changed := g != c.params.PrimaryFXSlotID
		c.params.PrimaryFXSlotID = g
		if changed {
			// I3: re-run the filter update for every source referencing
			// the primary sentinel.
			return c.refreshPrimarySources()
		}
		return nil

	case ContextDistanceFactor:
		v, err := Value[float32](call)
		if err != nil {
			return err
		}
		if err := contextValidator.distanceFactor(v); err != nil {
			return err
		}
		c.params.DistanceFactor = v
		return nil

	case ContextAirAbsorptionHF:
		v, err := Value[float32](call)
		if err != nil {
			return err
		}
		if err := contextValidator.airAbsorptionHF(v); err != nil {
			return err
		}
		c.params.AirAbsorptionHF = v
		return nil

	case ContextHFReference:
		v, err := Value[float32](call)
		if err != nil {
			return err
		}
		if err := contextValidator.hfReference(v); err != nil {
			return err
		}
		c.params.HFReference = v
		return nil

	case ContextMacroFXFactor:
		v, err := Value[float32](call)
		if err != nil {
			return err
		}
		if err := contextValidator.macroFXFactor(v); err != nil {
			return err
		}
		c.params.MacroFXFactor = v
		return nil

	case ContextSessionVersion:
		v, err := Value[uint32](call)
		if err != nil {
			return err
		}
		return c.Session.setVersion(v)

	case ContextSessionMaxActiveSends:
		v, err := Value[uint32](call)
		if err != nil {
			return err
		}
		return c.Session.setMaxActiveSends(v)

	default:
		return errInvalidOperation("property_id", "unrecognized context property %d", call.PropertyID)
	}
}

// refreshAllSources implements the "update_filters()" pass of §2: "A
// top-level 'update filters' pass is run after any slot change that
// affects occlusion routing."
func (c *Context) refreshAllSources() error {
	for _, src := range c.sources {
		if err := src.refreshFilters(c.alxSources, c.slots); err != nil {
			return err
		}
	}
	return nil
}

func (c *Context) refreshPrimarySources() error {
	primary := c.primaryIndex()
	for _, src := range c.sources {
		if err := src.RefreshPrimary(c.alxSources, c.slots, primary); err != nil {
			return err
		}
	}
	return nil
}
