package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/udisondev/gen3pkm/internal/config"
)

// ConfigPath is read when neither --config nor GEN3PKM_CONFIG is set.
const ConfigPath = "config/gen3pkm.yaml"

type rootOptions struct {
	configPath string
	verbose    bool

	cfg config.Generator
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "gen3pkm",
		Short:         "Generation III Pokémon record generator",
		Long:          `gen3pkm builds encrypted 100-byte party Pokémon records for Ruby, Sapphire, Emerald, FireRed and LeafGreen, and decodes existing ones.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup()
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML config path (default $GEN3PKM_CONFIG or "+ConfigPath+")")
	root.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "Enable debug logging")

	root.AddCommand(newGenerateCmd(opts))
	root.AddCommand(newDecodeCmd(opts))
	root.AddCommand(newListCmd(opts))

	return root
}

func (o *rootOptions) setup() error {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	path := o.configPath
	if path == "" {
		path = ConfigPath
		if p := os.Getenv("GEN3PKM_CONFIG"); p != "" {
			path = p
		}
	}

	cfg, err := config.LoadGenerator(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	o.cfg = cfg
	slog.Debug("config loaded", "path", path, "output", cfg.Output, "workers", cfg.Workers, "store", cfg.Store)
	return nil
}
