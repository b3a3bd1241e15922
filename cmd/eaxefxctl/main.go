// Command eaxefxctl is a console front-end for exercising and
// inspecting the EAX-to-EFX translation engine outside of a game
// process: it drives a fake driver backend so the property-set
// dispatch, preset tables, and filter-routing logic can be poked at
// from a terminal.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/zaynotley/eaxefx-go"
	"github.com/zaynotley/eaxefx-go/internal/alx"
	"github.com/zaynotley/eaxefx-go/internal/alxfake"
)

var cli struct {
	Presets PresetsCmd `cmd:"" help:"List the 26 built-in reverb presets."`
	Inspect InspectCmd `cmd:"" help:"Run a scripted session and print the resulting slot/source state."`
	Watch   WatchCmd   `cmd:"" help:"Open a live TUI over a scripted session."`
	Probe   ProbeCmd   `cmd:"" help:"Dlopen the real OpenAL driver and report whether EFX is present."`
}

type PresetsCmd struct{}

func (c *PresetsCmd) Run() error {
	for i := eaxefx.EnvironmentGeneric; i < eaxefx.EnvironmentCount(); i++ {
		fmt.Printf("%2d  %s\n", i, eaxefx.EnvironmentName(i))
	}
	return nil
}

type InspectCmd struct{}

func (c *InspectCmd) Run() error {
	backend := alxfake.New()
	eng := eaxefx.NewEngine(backend, backend, eaxefx.NewLogger(slog.LevelInfo))

	h, err := eng.CreateContext()
	if err != nil {
		return err
	}
	if err := eng.MakeCurrent(h); err != nil {
		return err
	}

	fmt.Println("context created; 4 FX slots initialized, slot 0 = reverb, slot 1 = chorus")
	fmt.Println("call trace:")
	for _, call := range backend.Calls() {
		fmt.Printf("  %-24s handle=%-4d param=%#06x value=%v\n", call.Method, call.Handle, call.Param, call.Value)
	}
	return nil
}

type WatchCmd struct{}

func (c *WatchCmd) Run() error {
	return runWatchTUI()
}

// ProbeCmd exercises the real native-driver path (internal/alx), as
// opposed to Inspect/Watch which only ever drive the alxfake stand-in.
// A failed dlopen/symbol-resolve here is exactly the "deployment is
// broken" fault §10.4 routes to Sentry when EAXEFX_SENTRY_DSN is set.
type ProbeCmd struct{}

func (c *ProbeCmd) Run() error {
	cfg := eaxefx.LoadConfigFromEnv()
	telemetry, err := eaxefx.InitTelemetry(cfg)
	if err != nil {
		return fmt.Errorf("telemetry init: %w", err)
	}

	driver, err := alx.Open(cfg.DriverPath)
	if err != nil {
		telemetry.ReportDriverFault(err)
		return err
	}
	defer driver.Close()

	fmt.Printf("opened %s: EFX entry points resolved\n", cfg.DriverPath)
	return nil
}

func main() {
	cfg := eaxefx.LoadConfigFromEnv()
	telemetry, err := eaxefx.InitTelemetry(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "eaxefxctl: telemetry init:", err)
		os.Exit(1)
	}
	defer telemetry.RecoverAndReport()

	ctx := kong.Parse(&cli,
		kong.Name("eaxefxctl"),
		kong.Description("Inspect the EAX-to-EFX translation engine."),
	)
	if err := ctx.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "eaxefxctl:", err)
		os.Exit(1)
	}
}
