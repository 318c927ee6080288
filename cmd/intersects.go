package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/jismesh/pkg/jismesh"
)

var (
	intersectsLevel string
	intersectsSave  bool
)

var intersectsCmd = &cobra.Command{
	Use:   "intersects <code>",
	Short: "List cells at another level intersecting a code's cell",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		code, err := jismesh.ParseCode(args[0])
		if err != nil {
			return err
		}
		level, err := jismesh.ParseLevel(intersectsLevel)
		if err != nil {
			return eris.Wrapf(err, "parse level %q", intersectsLevel)
		}

		codes, err := jismesh.ToIntersects(code.Value(), level)
		if err != nil {
			return err
		}

		for _, c := range codes {
			fmt.Fprintln(cmd.OutOrStdout(), c)
		}

		if intersectsSave {
			return saveCodes(cmd, codes)
		}
		return nil
	},
}

func init() {
	intersectsCmd.Flags().StringVar(&intersectsLevel, "level", "", "target mesh level")
	intersectsCmd.Flags().BoolVar(&intersectsSave, "save", false, "persist the cells to the store")
	_ = intersectsCmd.MarkFlagRequired("level")
	rootCmd.AddCommand(intersectsCmd)
}
