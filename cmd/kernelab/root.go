// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/kernelab/config"
	"github.com/katalvlaran/kernelab/engine"
	"github.com/katalvlaran/kernelab/kernel"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries global flag values and the logger shared by subcommands.
type app struct {
	verbose    bool
	configPath string
	kernelName string
	params     []string
	workers    int

	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "kernelab",
		Short: "kernelab - pairwise kernels and Gram matrices",
		Long: `kernelab evaluates registered kernels on vectors and builds
kernel (Gram) and kernel-distance matrices from YAML batches.

Settings come from --config (YAML), then KERNELAB_* environment
variables, then command-line flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			zc := zap.NewProductionConfig()
			if a.verbose {
				zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			l, err := zc.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = l
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = a.logger.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	pf.StringVarP(&a.configPath, "config", "c", "", "YAML config file")
	pf.StringVarP(&a.kernelName, "kernel", "k", "", "Kernel name (overrides config)")
	pf.StringArrayVarP(&a.params, "param", "p", nil, "Kernel option as key=value (repeatable)")
	pf.IntVar(&a.workers, "workers", 0, "Rows evaluated concurrently (0 = GOMAXPROCS)")

	root.AddCommand(a.kernelsCmd(), a.evalCmd(), a.gramCmd(), a.predictCmd(), a.seriesCmd())

	return root
}

// loadConfig merges the config file, environment and flags.
func (a *app) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return nil, err
	}
	if a.kernelName != "" {
		cfg.Kernel.Name = a.kernelName
	}
	if len(a.params) > 0 {
		extra, err := kernel.ParseConfig(a.params)
		if err != nil {
			return nil, err
		}
		if cfg.Kernel.Params == nil {
			cfg.Kernel.Params = make(map[string]any, len(extra))
		}
		for k, v := range extra {
			cfg.Kernel.Params[k] = v
		}
	}
	if cmd.Flags().Changed("workers") {
		cfg.Engine.Workers = a.workers
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// newEngine builds an engine from the merged config and activates its kernel.
func (a *app) newEngine(cmd *cobra.Command) (*engine.Engine, kernel.Kernel, error) {
	cfg, err := a.loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	opts := append(cfg.EngineOptions(), engine.WithLogger(a.logger))
	e, err := engine.New(opts...)
	if err != nil {
		return nil, nil, err
	}
	k, err := cfg.Activate(e)
	if err != nil {
		return nil, nil, err
	}
	a.logger.Debug("engine ready",
		zap.String("kernel", cfg.Kernel.Name),
		zap.Int("workers", e.Workers()))

	return e, k, nil
}
