package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sells-group/jismesh/pkg/jismesh"
)

var (
	lookupLat float64
	lookupLon float64
)

var lookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "Find saved cells containing a point",
	Long:  "Queries the cell store for every saved mesh cell whose rectangle contains the given coordinate.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Reject out-of-domain points before touching the store.
		if _, err := jismesh.Encode(lookupLat, lookupLon, jismesh.Lv1); err != nil {
			return err
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		cells, err := s.CellsAt(cmd.Context(), lookupLat, lookupLon)
		if err != nil {
			return err
		}

		for _, cell := range cells {
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", cell.Code, cell.Level)
		}
		return nil
	},
}

func init() {
	lookupCmd.Flags().Float64Var(&lookupLat, "lat", 0, "latitude in degrees")
	lookupCmd.Flags().Float64Var(&lookupLon, "lon", 0, "longitude in degrees")
	_ = lookupCmd.MarkFlagRequired("lat")
	_ = lookupCmd.MarkFlagRequired("lon")
	rootCmd.AddCommand(lookupCmd)
}
