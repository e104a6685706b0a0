package main

import (
	"fmt"
	"io"
	"os"

	"github.com/nasdf/blogql/config"
	"github.com/nasdf/blogql/core"
	"github.com/nasdf/blogql/snapshot"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a CAR snapshot of the store",
	Long: `
Export writes the store as a CAR archive of dag-cbor blocks. Only the demo
data is included because the store is not persisted between runs.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		log, err := config.NewLogger(cfg.Log)
		if err != nil {
			return err
		}
		defer log.Sync() //nolint:errcheck

		ctx := cmd.Context()
		store := core.NewStore()
		if err := core.Seed(ctx, store); err != nil {
			return err
		}

		var out io.Writer = cmd.OutOrStdout()
		path, err := cmd.Flags().GetString("out")
		if err != nil {
			return err
		}
		if path != "" {
			file, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer file.Close()
			out = file
		}

		root, err := snapshot.Export(ctx, store, out)
		if err != nil {
			return err
		}
		log.Info("exported snapshot", zap.Stringer("root", root), zap.String("out", path))
		return nil
	},
}

func init() {
	exportCmd.Flags().String("out", "", "Output file. Defaults to stdout.")
}
