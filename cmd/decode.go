package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sells-group/jismesh/pkg/jismesh"
)

var (
	decodeLatMul float64
	decodeLonMul float64
)

var decodeCmd = &cobra.Command{
	Use:   "decode <code>",
	Short: "Convert a meshcode back to a coordinate",
	Long:  "Decodes a meshcode to a coordinate within its cell. Multiplier 0 yields the southwest corner, 1 the northeast corner, 0.5 the center.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		code, err := jismesh.ParseCode(args[0])
		if err != nil {
			return err
		}

		lat, lon, err := jismesh.Decode(code.Value(), decodeLatMul, decodeLonMul)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%.7f %.7f\n", lat, lon)
		return nil
	},
}

func init() {
	decodeCmd.Flags().Float64Var(&decodeLatMul, "lat-mul", 0.5, "latitude multiplier within the cell")
	decodeCmd.Flags().Float64Var(&decodeLonMul, "lon-mul", 0.5, "longitude multiplier within the cell")
	rootCmd.AddCommand(decodeCmd)
}
