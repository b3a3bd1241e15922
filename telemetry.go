package eaxefx

import (
	"time"

	"github.com/getsentry/sentry-go"
)

// Telemetry wraps the optional Sentry client described in §10.4: a
// no-op sink unless EAXEFX_SENTRY_DSN is set, so the engine never
// phones home by default. It only ever sees driver/process faults, not
// ordinary EAX validation failures.
type Telemetry struct {
	enabled bool
}

// InitTelemetry configures Sentry from cfg.SentryDSN. An empty DSN
// yields a disabled Telemetry whose methods are harmless no-ops.
func InitTelemetry(cfg Config) (*Telemetry, error) {
	if cfg.SentryDSN == "" {
		return &Telemetry{}, nil
	}
	if err := sentry.Init(sentry.ClientOptions{
		Dsn: cfg.SentryDSN,
	}); err != nil {
		return nil, err
	}
	return &Telemetry{enabled: true}, nil
}

// ReportDriverFault captures a failure to resolve a required AL/EFX
// symbol, or to dlopen the driver at all: the kind of "this deployment
// is broken" event a hosted game process has no other channel to
// report.
func (t *Telemetry) ReportDriverFault(err error) {
	if !t.enabled || err == nil {
		return
	}
	sentry.CaptureException(err)
}

// RecoverAndReport is installed as a deferred top-level guard (§9):
// it reports a caught panic to Sentry, then re-panics so the process
// still crashes instead of limping on in a corrupted state.
func (t *Telemetry) RecoverAndReport() {
	if r := recover(); r != nil {
		if t.enabled {
			sentry.CurrentHub().Recover(r)
			sentry.Flush(2 * time.Second)
		}
		panic(r)
	}
}
