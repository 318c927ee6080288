package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/jismesh/pkg/jismesh"
)

var (
	batchLevel       string
	batchConcurrency int
)

var batchCmd = &cobra.Command{
	Use:   "batch <csv-file>",
	Short: "Bulk-encode a CSV of coordinates",
	Long:  "Reads lat,lon rows from a CSV file and prints one meshcode per row. Rows are processed concurrently; output preserves input order.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := jismesh.ParseLevel(batchLevel)
		if err != nil {
			return eris.Wrapf(err, "parse level %q", batchLevel)
		}

		f, err := os.Open(args[0])
		if err != nil {
			return eris.Wrapf(err, "open %s", args[0])
		}
		defer f.Close()

		rows, err := csv.NewReader(f).ReadAll()
		if err != nil {
			return eris.Wrapf(err, "read %s", args[0])
		}
		if len(rows) == 0 {
			zap.L().Info("no rows to encode")
			return nil
		}

		concurrency := batchConcurrency
		if concurrency <= 0 {
			concurrency = cfg.Batch.Concurrency
		}

		zap.L().Info("encoding batch",
			zap.Int("rows", len(rows)),
			zap.Int("concurrency", concurrency),
			zap.String("level", level.String()),
		)

		codes := make([]jismesh.Code, len(rows))
		g, _ := errgroup.WithContext(cmd.Context())
		g.SetLimit(concurrency)

		for i, row := range rows {
			i, row := i, row
			g.Go(func() error {
				if len(row) < 2 {
					return eris.Errorf("row %d: expected lat,lon", i+1)
				}
				lat, err := strconv.ParseFloat(row[0], 64)
				if err != nil {
					return eris.Wrapf(err, "row %d: parse latitude", i+1)
				}
				lon, err := strconv.ParseFloat(row[1], 64)
				if err != nil {
					return eris.Wrapf(err, "row %d: parse longitude", i+1)
				}

				code, err := jismesh.Encode(lat, lon, level)
				if err != nil {
					return eris.Wrapf(err, "row %d", i+1)
				}
				codes[i] = code
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		for _, code := range codes {
			fmt.Fprintln(cmd.OutOrStdout(), code)
		}
		return nil
	},
}

func init() {
	batchCmd.Flags().StringVar(&batchLevel, "level", "Lv3", "target mesh level")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "worker count (default from config)")
	rootCmd.AddCommand(batchCmd)
}
