package main

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/probekit/sysprobe/internal/config"
	"github.com/probekit/sysprobe/internal/readout"
	"github.com/probekit/sysprobe/internal/render"
)

func newRootCmd() *cobra.Command {
	var (
		jsonOut bool
		noColor bool
		cfgPath string
		timeout time.Duration
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "sysprobe",
		Short: "Read-only host introspection",
		Long: `sysprobe reads identity, hardware, and package-manager state from the
local host and prints it as an aligned report or a JSON document. It
never writes to the system it inspects.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cfgPath
			if path == "" {
				path = config.DefaultPath()
			}
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("timeout") {
				cfg.Timeout = timeout
			}
			if noColor {
				cfg.NoColor = true
			}
			return run(cfg, jsonOut, verbose)
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit the report as JSON")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable ANSI color")
	cmd.Flags().StringVar(&cfgPath, "config", "", "config file (default $XDG_CONFIG_HOME/sysprobe/config.yaml)")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "bound on the whole collection run")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func run(cfg *config.Config, jsonOut, verbose bool) error {
	log := newLogger(verbose)
	defer log.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	r := readout.New(log)
	rows := buildRows(ctx, r, cfg.Hidden)

	if jsonOut {
		hostname, err := r.General.Hostname()
		if err != nil {
			hostname, _ = os.Hostname()
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(render.NewReport(hostname, rows))
	}

	color := !cfg.NoColor && term.IsTerminal(int(os.Stdout.Fd()))
	_, err := os.Stdout.WriteString(render.Table(rows, render.Options{Color: color}))
	return err
}

// newLogger builds a console logger on stderr so report output on stdout
// stays machine-readable. Probe noise stays hidden unless --verbose.
func newLogger(verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	encCfg := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(os.Stderr),
		level,
	)
	return zap.New(core)
}
