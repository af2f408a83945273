package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/udisondev/gen3pkm/internal/db"
)

func newListCmd(root *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			dsn := root.cfg.Database.DSN()

			database, err := db.New(ctx, dsn)
			if err != nil {
				return err
			}
			defer database.Close()

			if err := db.RunMigrations(ctx, dsn); err != nil {
				return err
			}

			recs, err := database.Records().List(ctx, limit)
			if err != nil {
				return err
			}
			printStored(cmd.OutOrStdout(), recs)
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 50, "Maximum number of records to list")
	return cmd
}

func printStored(w io.Writer, recs []db.StoredRecord) {
	fmt.Fprintf(w, "%-8s %-10s %-10s %-10s %-6s %s\n", "ID", "PID", "OTID", "NICKNAME", "CSUM", "CREATED")
	for _, r := range recs {
		fmt.Fprintf(w, "%-8d %08x   %08x   %-10s %04x   %s\n",
			r.ID, r.Personality, r.TrainerID, r.Nickname, r.Checksum, r.CreatedAt.Format("2006-01-02 15:04:05"))
	}
}
