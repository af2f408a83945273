package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/udisondev/gen3pkm/internal/config"
	"github.com/udisondev/gen3pkm/internal/db"
	"github.com/udisondev/gen3pkm/internal/generator"
)

type generateOptions struct {
	raw     bool
	dump    bool
	count   int
	workers int
	store   bool
	tpl     *templateFlags
}

func newGenerateCmd(root *rootOptions) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate [flags] <nickname> <trainer name>",
		Short: "Generate an encrypted party record",
		Long: `Generate builds a 100-byte party record from the config template and flags,
encrypts its data block and writes it to stdout as a hexdump or raw bytes.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, root, opts, args)
		},
	}

	fs := cmd.Flags()
	fs.SortFlags = false
	opts.tpl = registerTemplateFlags(fs)
	fs.BoolVarP(&opts.raw, "raw", "o", false, "Output raw bytes")
	fs.BoolVarP(&opts.dump, "dump", "O", false, "Output a hexdump (default)")
	fs.IntVar(&opts.count, "count", 1, "Number of records to generate")
	fs.IntVar(&opts.workers, "workers", 0, "Concurrent builds (default from config)")
	fs.BoolVar(&opts.store, "store", false, "Save generated records to the database")
	cmd.MarkFlagsMutuallyExclusive("raw", "dump")

	return cmd
}

func runGenerate(cmd *cobra.Command, root *rootOptions, opts *generateOptions, args []string) error {
	cfg := root.cfg
	cfg.Template.Nickname = args[0]
	cfg.Template.Trainer.Name = args[1]
	if err := opts.tpl.Apply(&cfg.Template); err != nil {
		return err
	}
	switch {
	case opts.raw:
		cfg.Output = config.OutputRaw
	case opts.dump:
		cfg.Output = config.OutputDump
	}
	if opts.workers > 0 {
		cfg.Workers = opts.workers
	}
	if opts.store {
		cfg.Store = true
	}
	if opts.count < 1 {
		return fmt.Errorf("--count must be >= 1, got %d", opts.count)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	tpls := make([]config.Template, opts.count)
	for i := range tpls {
		tpls[i] = cfg.Template
	}

	ctx := cmd.Context()
	recs, err := generator.New(nil).BuildBatch(ctx, tpls, cfg.Workers)
	if err != nil {
		return fmt.Errorf("generating records: %w", err)
	}
	slog.Debug("records generated", "count", len(recs))

	if cfg.Store {
		database, err := db.New(ctx, cfg.Database.DSN())
		if err != nil {
			return err
		}
		defer database.Close()

		if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
			return err
		}
		ids, err := database.Records().SaveBatch(ctx, recs)
		if err != nil {
			return err
		}
		slog.Info("records stored", "ids", ids)
	}

	return writeRecords(cmd.OutOrStdout(), recs, cfg.Output)
}
