// Command togglepass drives a toggleable password field headless and prints
// what it would draw.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/agiangrant/togglepass/cmd/togglepass/commands"
	"github.com/agiangrant/togglepass/internal/ffi"
	"github.com/agiangrant/togglepass/internal/logging"
)

const version = "0.1.0"

// cli struct represents all command-line commands, fields and flags.
//
//nolint:vet // for readability
var cli struct {
	Debug     bool   `help:"Enable debug logging."`
	ThemeFile string `help:"Theme file layered over the built-in defaults." type:"path" placeholder:"theme.toml"`
	Dark      bool   `help:"Resolve dark: variants."`
	Engine    bool   `help:"Load the native engine so repaints reach it." env:"TOGGLEPASS_ENGINE"`

	Theme struct{} `cmd:"" help:"Print the resolved defaults table."`

	Simulate commands.SimulateParams `cmd:"" help:"Drive a field and print its state."`
	Render   commands.SimulateParams `cmd:"" help:"Drive a field and print its last frame as JSON."`

	Version struct{} `cmd:"" help:"Print version information."`
}

func main() {
	kongCtx := kong.Parse(&cli,
		kong.Name("togglepass"),
		kong.Description("Toggleable password field inspector."),
		kong.UsageOnError(),
	)

	level := zapcore.InfoLevel
	if cli.Debug {
		level = zapcore.DebugLevel
	}

	logger, err := logging.Setup(level, cli.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck // stderr sync errors are not actionable

	cmd := kongCtx.Command()
	logger.Debug("Command", zap.String("command", cmd))

	if cli.Engine {
		if err := ffi.Init(); err != nil {
			logger.Warn("Engine not loaded, running headless", zap.Error(err))
		} else {
			logger.Info("Engine loaded", zap.String("version", ffi.Version()))
		}
	}

	switch cmd {
	case "theme":
		d, lerr := commands.LoadTheme(cli.ThemeFile, cli.Dark, logger)
		if lerr != nil {
			err = lerr
			break
		}
		err = commands.PrintTheme(os.Stdout, d)

	case "simulate":
		err = simulate(&cli.Simulate, logger, false)

	case "render":
		err = simulate(&cli.Render, logger, true)

	case "version":
		fmt.Printf("togglepass version %s\n", version)

	default:
		err = fmt.Errorf("unknown command: %s", cmd)
	}

	if err != nil {
		logger.Error("Failed", zap.Error(err))
		os.Exit(1)
	}
}

func simulate(p *commands.SimulateParams, logger *zap.Logger, frame bool) error {
	d, err := commands.LoadTheme(cli.ThemeFile, cli.Dark, logger)
	if err != nil {
		return err
	}

	s, err := p.Run(d, logger)
	if err != nil {
		return err
	}

	if frame {
		return s.WriteFrame(os.Stdout)
	}
	return s.WriteReport(os.Stdout)
}
