package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/FBemf/freecell/internal/config"
	"github.com/FBemf/freecell/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print win/loss statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		store, err := stats.Open(filepath.Join(cfg.DataDir, stats.DBFileName))
		if err != nil {
			return fmt.Errorf("opening stats database: %w", err)
		}
		defer store.Close()

		sum, err := store.Summary()
		if err != nil {
			return fmt.Errorf("reading stats: %w", err)
		}
		fmt.Printf("games played: %d\n", sum.Played)
		fmt.Printf("games won:    %d\n", sum.Won)
		if sum.Played > 0 {
			fmt.Printf("win rate:     %.0f%%\n", sum.WinRate()*100)
		}
		return nil
	},
}
