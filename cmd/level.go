package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sells-group/jismesh/pkg/jismesh"
)

var levelCmd = &cobra.Command{
	Use:   "level <code>...",
	Short: "Infer the mesh level of one or more codes",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		codes := make([]uint64, len(args))
		for i, arg := range args {
			value, err := strconv.ParseUint(arg, 10, 64)
			if err != nil {
				return &jismesh.ParseError{Input: arg}
			}
			codes[i] = value
		}

		levels, err := jismesh.ToMeshlevel(codes)
		if err != nil {
			return err
		}

		for i, level := range levels {
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", codes[i], level, level.SizeJP())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(levelCmd)
}
