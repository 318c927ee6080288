package main

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/jismesh/internal/geojson"
	"github.com/sells-group/jismesh/pkg/jismesh"
)

var geojsonOut string

var geojsonCmd = &cobra.Command{
	Use:   "geojson <code>...",
	Short: "Export mesh cells as a GeoJSON FeatureCollection",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		codes := make([]jismesh.Code, len(args))
		for i, arg := range args {
			code, err := jismesh.ParseCode(arg)
			if err != nil {
				return err
			}
			codes[i] = code
		}

		data, err := geojson.Marshal(codes)
		if err != nil {
			return err
		}

		if geojsonOut != "" {
			if err := os.WriteFile(geojsonOut, data, 0o644); err != nil {
				return eris.Wrapf(err, "write %s", geojsonOut)
			}
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func init() {
	geojsonCmd.Flags().StringVarP(&geojsonOut, "out", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(geojsonCmd)
}
