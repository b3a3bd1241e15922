package eaxefx

// XRAMMode selects how a buffer's storage is accounted against the
// legacy X-RAM hardware-memory budget, per §3 and §6.1.
type XRAMMode uint32

const (
	XRAMAutomatic XRAMMode = XRAMMode(XRAMModeAutomatic)
	XRAMHardware  XRAMMode = XRAMMode(XRAMModeHardware)
	XRAMAccessible XRAMMode = XRAMMode(XRAMModeAccessible)
)

func (m XRAMMode) valid() bool {
	switch m {
	case XRAMAutomatic, XRAMHardware, XRAMAccessible:
		return true
	default:
		return false
	}
}

// XRAMBuffer is the external-to-the-core buffer record the engine
// tracks for X-RAM accounting, per §3's "X-RAM buffer record".
type XRAMBuffer struct {
	Size       uint32
	Mode       XRAMMode
	IsHardware bool
	IsDirty    bool
}

// XRAMPool tracks every known buffer's X-RAM accounting state and
// checks hardware-mode changes against the 64 MiB ceiling. Buffer sizes
// are recorded only by MarkDirty, which also locks the mode, so the
// ceiling check only ever counts zero-size buffers.
type XRAMPool struct {
	buffers map[uint32]*XRAMBuffer
	used    uint64
}

func NewXRAMPool() *XRAMPool {
	return &XRAMPool{buffers: make(map[uint32]*XRAMBuffer)}
}

// Register creates a buffer's accounting record on first sight, sized
// at 0 and unmodified (automatic, not dirty), matching a freshly
// generated AL buffer name that has not yet received PCM data.
func (p *XRAMPool) Register(name uint32) {
	if _, ok := p.buffers[name]; !ok {
		p.buffers[name] = &XRAMBuffer{Mode: XRAMAutomatic}
	}
}

// MarkDirty is called by the wrapper the first time PCM data is
// uploaded to a buffer; after that, SetBufferMode on it fails.
func (p *XRAMPool) MarkDirty(name uint32, size uint32) error {
	b, ok := p.buffers[name]
	if !ok {
		return errInvalidOperation("buffer", "buffer %d not registered", name)
	}
	b.IsDirty = true
	b.Size = size
	return nil
}

// SetBufferMode implements EAXSetBufferMode (§6.1): it fails
// invalid_operation if any named buffer is already dirty, and
// invalid_value if the mode is unrecognized or the new hardware
// allocation would exceed the 64 MiB ceiling.
func (p *XRAMPool) SetBufferMode(names []uint32, mode XRAMMode) error {
	if !mode.valid() {
		return errInvalidValue("mode", "unrecognized X-RAM mode %#x", uint32(mode))
	}

	var added uint64
	for _, name := range names {
		b, ok := p.buffers[name]
		if !ok {
			return errInvalidOperation("buffer", "buffer %d not registered", name)
		}
		if b.IsDirty {
			return errInvalidOperation("buffer", "buffer %d already holds data; mode is locked", name)
		}
		if mode == XRAMHardware && b.Mode != XRAMHardware {
			added += uint64(b.Size)
		}
	}
	if p.used+added > XRAMMaxSize {
		return errInvalidValue("mode", "hardware X-RAM budget exceeded: %d + %d > %d", p.used, added, uint32(XRAMMaxSize))
	}

	for _, name := range names {
		b := p.buffers[name]
		if b.Mode == XRAMHardware && mode != XRAMHardware {
			if b.Size <= uint32(p.used) {
				p.used -= uint64(b.Size)
			} else {
				p.used = 0
			}
		}
		b.Mode = mode
		b.IsHardware = mode == XRAMHardware
	}
	p.used += added
	return nil
}

// GetBufferMode implements EAXGetBufferMode.
func (p *XRAMPool) GetBufferMode(name uint32) (XRAMMode, error) {
	b, ok := p.buffers[name]
	if !ok {
		return 0, errInvalidOperation("buffer", "buffer %d not registered", name)
	}
	return b.Mode, nil
}
