package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/jismesh/internal/config"
	"github.com/sells-group/jismesh/internal/store"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "jismesh",
	Short: "JIS X0410 regional mesh code toolkit",
	Long:  "Converts between coordinates and Japanese standard regional mesh codes, infers code levels, and tiles rectangles with mesh cells at any of the fourteen resolutions.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openStore opens the configured cell store and runs migrations.
func openStore(cmd *cobra.Command) (*store.SQLiteStore, error) {
	s, err := store.NewSQLite(cfg.Store.Path)
	if err != nil {
		return nil, err
	}
	if err := s.Migrate(cmd.Context()); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}
