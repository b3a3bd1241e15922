package eaxefx

// Session is the per-context declaration of EAX level and send budget,
// per §3: "{ version ∈ {4,5}, max_active_sends ∈ [2,4] }".
type Session struct {
	Version        uint32
	MaxActiveSends uint32
}

func defaultSession() Session {
	return Session{
		Version:        sessionDefaultVersion,
		MaxActiveSends: sessionDefaultMaxActiveSends,
	}
}

func (s *Session) setVersion(v uint32) error {
	if err := sessionValidator.version(v); err != nil {
		return err
	}
	s.Version = v
	return nil
}

func (s *Session) setMaxActiveSends(v uint32) error {
	if err := sessionValidator.maxActiveSends(v); err != nil {
		return err
	}
	s.MaxActiveSends = v
	return nil
}

// EAXVersion maps the session's {5,6} wire-level version constants to
// the {4,5} EAX version an effect/validator branches on.
func (s Session) EAXVersion() uint32 {
	if s.Version >= SessionEAX50 {
		return 5
	}
	return 4
}
