package eaxefx

import (
	"errors"
	"sync"
)

// ContextHandle names one context the engine has created, in the order
// the game's wrapper layer creates ALC contexts.
type ContextHandle uint32

// Engine is the process-wide object graph described in §9's "global
// mutable state" note: a single struct whose fields its methods reach
// only while holding the engine mutex. It is built explicitly with
// NewEngine; there is no package-level accessor or lazy construction,
// and the mutex is unexported, so it serializes only the Engine's own
// methods. It is the only exported entry point a game-facing wrapper
// needs: build one Engine and forward eax_set/eax_get/EAXSetBufferMode/
// EAXGetBufferMode to it.
type Engine struct {
	mu sync.Mutex

	log Logger

	alxSlots   alxSlotBackend
	alxSources alxSourceBackend

	contexts       map[ContextHandle]*Context
	nextHandle     ContextHandle
	currentContext ContextHandle

	xram *XRAMPool
}

// NewEngine builds an engine bound to a driver backend. log may be nil,
// in which case a no-op logger is installed.
func NewEngine(alxSlots alxSlotBackend, alxSources alxSourceBackend, log Logger) *Engine {
	if log == nil {
		log = NewNoopLogger()
	}
	return &Engine{
		log:        log,
		alxSlots:   alxSlots,
		alxSources: alxSources,
		contexts:   make(map[ContextHandle]*Context),
		xram:       NewXRAMPool(),
	}
}

// CreateContext implements §4.9's activation sequence for one new ALC
// context: allocate its Context, initialize its four EFX aux slots, and
// make it current.
func (e *Engine) CreateContext() (ContextHandle, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ctx := NewContext()
	if err := ctx.Init(e.alxSlots, e.alxSources); err != nil {
		e.log.Error("create context failed", "error", err)
		return 0, err
	}

	e.nextHandle++
	h := e.nextHandle
	e.contexts[h] = ctx
	e.currentContext = h
	return h, nil
}

// MakeCurrent switches which context subsequent eax_set/eax_get calls
// without an explicit context argument apply to (the shim's wrapper
// layer tracks ALC's own current-context state; this mirrors it for EAX
// calls per §9's "current context pointer").
func (e *Engine) MakeCurrent(h ContextHandle) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.contexts[h]; !ok {
		return errInvalidOperation("context", "unknown context handle")
	}
	e.currentContext = h
	return nil
}

func (e *Engine) currentContextLocked() (*Context, error) {
	ctx, ok := e.contexts[e.currentContext]
	if !ok {
		return nil, errInvalidOperation("context", "no current EAX context")
	}
	return ctx, nil
}

// AddSource/RemoveSource mirror the wrapper's AL source name generation/
// deletion into the current context, per §3's Source lifecycle note.
func (e *Engine) AddSource(name uint32) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	ctx, err := e.currentContextLocked()
	if err != nil {
		return err
	}
	return ctx.AddSource(name)
}

func (e *Engine) RemoveSource(name uint32) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	ctx, err := e.currentContextLocked()
	if err != nil {
		return err
	}
	return ctx.RemoveSource(name)
}

// EAXSet is the game-facing eax_set entry point (§6.1). It returns the
// transport-level return code directly; the triggering error, if any, is
// also logged and left retrievable via EAXCONTEXT_LASTERROR.
func (e *Engine) EAXSet(setGUID GUID, propertyID uint32, targetName uint32, buffer []byte) int {
	return e.call(false, setGUID, propertyID, targetName, buffer)
}

// EAXGet is the game-facing eax_get entry point (§6.1).
func (e *Engine) EAXGet(setGUID GUID, propertyID uint32, targetName uint32, buffer []byte) int {
	return e.call(true, setGUID, propertyID, targetName, buffer)
}

// EAXSetEffect and EAXGetEffect are the fx_slot_effect-scoped
// counterparts of EAXSet/EAXGet (§4.1's third call shape): the game
// wrapper resolves which slot an effect GUID currently occupies on its
// own side and passes the index explicitly, since this port keeps that
// index out-of-band rather than folding it into the GUID.
func (e *Engine) EAXSetEffect(effectGUID GUID, slotIndex int, propertyID uint32, buffer []byte) int {
	return e.callEffect(false, effectGUID, slotIndex, propertyID, buffer)
}

func (e *Engine) EAXGetEffect(effectGUID GUID, slotIndex int, propertyID uint32, buffer []byte) int {
	return e.callEffect(true, effectGUID, slotIndex, propertyID, buffer)
}

func (e *Engine) callEffect(isGet bool, effectGUID GUID, slotIndex int, propertyID uint32, buffer []byte) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	ctx, err := e.currentContextLocked()
	if err != nil {
		return CodeInvalidOperation
	}

	call, err := NewFXSlotEffectCall(isGet, effectGUID, ctx.Session.EAXVersion(), slotIndex, propertyID, buffer)
	if err != nil {
		e.log.Warn("eax effect call rejected", "error", err)
		ctx.lastError = e.codeFor(err)
		return ctx.lastError
	}

	if err := ctx.Dispatch(call); err != nil {
		e.log.Warn("eax effect dispatch failed", "error", err, "get", isGet)
		return e.codeFor(err)
	}
	return CodeOK
}

func (e *Engine) call(isGet bool, setGUID GUID, propertyID uint32, targetName uint32, buffer []byte) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	ctx, err := e.currentContextLocked()
	if err != nil {
		return CodeInvalidOperation
	}

	call, err := NewEAXCall(isGet, setGUID, propertyID, targetName, buffer)
	if err != nil {
		e.log.Warn("eax call rejected", "error", err)
		ctx.lastError = e.codeFor(err)
		return ctx.lastError
	}

	if err := ctx.Dispatch(call); err != nil {
		e.log.Warn("eax dispatch failed", "error", err, "get", isGet)
		return e.codeFor(err)
	}
	return CodeOK
}

func (e *Engine) codeFor(err error) int {
	var eaxErr *EAXError
	if errors.As(err, &eaxErr) {
		return eaxErr.Kind.Code()
	}
	return CodeInvalidOperation
}

// EAXSetBufferMode and EAXGetBufferMode implement the X-RAM entry
// points of §6.1.
func (e *Engine) EAXSetBufferMode(buffers []uint32, mode XRAMMode) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, b := range buffers {
		e.xram.Register(b)
	}
	if err := e.xram.SetBufferMode(buffers, mode); err != nil {
		e.log.Warn("x-ram mode change rejected", "error", err)
		return e.codeFor(err)
	}
	return CodeOK
}

func (e *Engine) EAXGetBufferMode(buffer uint32) (XRAMMode, int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.xram.Register(buffer)
	mode, err := e.xram.GetBufferMode(buffer)
	if err != nil {
		return 0, e.codeFor(err)
	}
	return mode, CodeOK
}

// NotifyBufferData marks a buffer dirty the first time PCM data is
// uploaded to it, per §3's X-RAM record and S5.
func (e *Engine) NotifyBufferData(buffer uint32, size uint32) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.xram.Register(buffer)
	return e.xram.MarkDirty(buffer, size)
}
