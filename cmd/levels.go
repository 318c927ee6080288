package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/jismesh/pkg/jismesh"
)

var levelsFormat string

// levelInfo is the serialized form of one registry entry.
type levelInfo struct {
	Name    string  `yaml:"name"`
	Tag     uint64  `yaml:"tag"`
	UnitLat float64 `yaml:"unit_lat"`
	UnitLon float64 `yaml:"unit_lon"`
	LabelJP string  `yaml:"label_jp"`
	SizeJP  string  `yaml:"size_jp"`
}

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the fourteen mesh levels",
	RunE: func(cmd *cobra.Command, args []string) error {
		infos := make([]levelInfo, 0, len(jismesh.Levels()))
		for _, level := range jismesh.Levels() {
			latUnit, lonUnit := level.Unit()
			infos = append(infos, levelInfo{
				Name:    level.String(),
				Tag:     level.Tag(),
				UnitLat: latUnit,
				UnitLon: lonUnit,
				LabelJP: level.LabelJP(),
				SizeJP:  level.SizeJP(),
			})
		}

		switch levelsFormat {
		case "yaml":
			data, err := yaml.Marshal(infos)
			if err != nil {
				return eris.Wrap(err, "marshal levels")
			}
			fmt.Fprint(cmd.OutOrStdout(), string(data))
		case "table":
			for _, info := range infos {
				fmt.Fprintf(cmd.OutOrStdout(), "%-5s %6d  %.10f  %.10f  %s\n",
					info.Name, info.Tag, info.UnitLat, info.UnitLon, info.SizeJP)
			}
		default:
			return eris.Errorf("unknown format %q", levelsFormat)
		}
		return nil
	},
}

func init() {
	levelsCmd.Flags().StringVar(&levelsFormat, "format", "table", "output format: table or yaml")
	rootCmd.AddCommand(levelsCmd)
}
