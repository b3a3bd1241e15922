package eaxefx

import (
	"log/slog"
	"os"
	"strings"
)

// Config holds the engine's ambient, out-of-band settings: the driver
// library to dlopen, the logging verbosity, and an optional fault-
// telemetry DSN. None of these are part of the EAX/EFX property-set
// protocol itself (§1: configuration is "out of scope... simple glue");
// this is the minimal surface the shim's own process needs to start up.
type Config struct {
	DriverPath string
	LogLevel   slog.Level
	SentryDSN  string
}

// LoadConfigFromEnv reads EAXEFX_DRIVER_PATH, EAXEFX_LOG_LEVEL and
// EAXEFX_SENTRY_DSN, falling back to sane defaults for an unconfigured
// process.
func LoadConfigFromEnv() Config {
	cfg := Config{
		DriverPath: "soft_oal.dll",
		LogLevel:   slog.LevelInfo,
	}
	if v := os.Getenv("EAXEFX_DRIVER_PATH"); v != "" {
		cfg.DriverPath = v
	}
	if v := os.Getenv("EAXEFX_LOG_LEVEL"); v != "" {
		cfg.LogLevel = parseLevel(v)
	}
	cfg.SentryDSN = os.Getenv("EAXEFX_SENTRY_DSN")
	return cfg
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
