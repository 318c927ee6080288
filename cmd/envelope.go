package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/jismesh/internal/store"
	"github.com/sells-group/jismesh/pkg/jismesh"
)

var envelopeSave bool

var envelopeCmd = &cobra.Command{
	Use:   "envelope <sw-code> <ne-code>",
	Short: "Tile the rectangle between two corner codes",
	Long:  "Enumerates every meshcode at the corners' shared level that tiles the rectangle spanned by the southwest and northeast corner cells.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sw, err := jismesh.ParseCode(args[0])
		if err != nil {
			return err
		}
		ne, err := jismesh.ParseCode(args[1])
		if err != nil {
			return err
		}

		codes, err := jismesh.ToEnvelope(sw.Value(), ne.Value())
		if err != nil {
			return err
		}

		for _, code := range codes {
			fmt.Fprintln(cmd.OutOrStdout(), code)
		}

		if envelopeSave {
			return saveCodes(cmd, codes)
		}
		return nil
	},
}

// saveCodes persists raw codes to the cell store.
func saveCodes(cmd *cobra.Command, values []uint64) error {
	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	cells := make([]store.Cell, 0, len(values))
	for _, value := range values {
		code, err := jismesh.TryCode(value)
		if err != nil {
			return err
		}
		cells = append(cells, store.CellFromCode(code))
	}

	n, err := s.SaveCells(cmd.Context(), cells)
	if err != nil {
		return err
	}
	zap.L().Info("saved cells", zap.Int("count", n), zap.String("path", cfg.Store.Path))
	return nil
}

func init() {
	envelopeCmd.Flags().BoolVar(&envelopeSave, "save", false, "persist the cells to the store")
	rootCmd.AddCommand(envelopeCmd)
}
