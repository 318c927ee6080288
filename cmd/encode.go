package main

import (
	"encoding/json"
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/jismesh/pkg/jismesh"
)

var (
	encodeLat    float64
	encodeLon    float64
	encodeLevel  string
	encodeFormat string
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Convert a coordinate to a meshcode",
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := jismesh.ParseLevel(encodeLevel)
		if err != nil {
			return eris.Wrapf(err, "parse level %q", encodeLevel)
		}

		code, err := jismesh.Encode(encodeLat, encodeLon, level)
		if err != nil {
			return err
		}

		format := encodeFormat
		if format == "" {
			format = cfg.Output.Format
		}
		if format == "json" {
			return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{
				"code":  code.String(),
				"level": code.Level().String(),
			})
		}

		fmt.Fprintln(cmd.OutOrStdout(), code.String())
		return nil
	},
}

func init() {
	encodeCmd.Flags().Float64Var(&encodeLat, "lat", 0, "latitude in degrees")
	encodeCmd.Flags().Float64Var(&encodeLon, "lon", 0, "longitude in degrees")
	encodeCmd.Flags().StringVar(&encodeLevel, "level", "Lv3", "target mesh level")
	encodeCmd.Flags().StringVar(&encodeFormat, "format", "", "output format: text or json (default from config)")
	_ = encodeCmd.MarkFlagRequired("lat")
	_ = encodeCmd.MarkFlagRequired("lon")
	rootCmd.AddCommand(encodeCmd)
}
