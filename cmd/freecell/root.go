package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/FBemf/freecell/internal/config"
	"github.com/FBemf/freecell/internal/engine"
	"github.com/FBemf/freecell/internal/savegame"
	"github.com/FBemf/freecell/internal/stats"
	"github.com/FBemf/freecell/internal/telemetry"
	"github.com/FBemf/freecell/internal/ui"
)

var (
	flagSeed  uint64
	flagLoad  string
	flagQuiet bool
)

var rootCmd = &cobra.Command{
	Use:   "freecell",
	Short: "FreeCell solitaire in the terminal",
	Long: `FreeCell solitaire in the terminal. Drag cards with the mouse;
every deal is identified by its seed, so interesting games can be
shared and replayed.`,
	Version:      Version,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runGame,
}

func init() {
	rootCmd.Flags().Uint64VarP(&flagSeed, "seed", "s", 0, "deal the game with this seed")
	rootCmd.Flags().StringVarP(&flagLoad, "load", "l", "", "resume a saved game from `path`")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress warnings on stderr")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

func runGame(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	seed := flagSeed
	if !cmd.Flags().Changed("seed") {
		seed = rand.Uint64()
	}
	game := engine.NewGame(seed)
	history := engine.NewHistory()
	resumed := false

	if flagLoad != "" {
		if cmd.Flags().Changed("seed") {
			warn("note: --load wins over --seed")
		}
		state, err := savegame.Load(flagLoad)
		if err != nil {
			return fmt.Errorf("loading %s: %w", flagLoad, err)
		}
		seed = state.Seed
		game = state.Game
		history = state.History
		resumed = true
	}

	var store *stats.Store
	if cfg.DataDir != "" {
		store, err = stats.Open(filepath.Join(cfg.DataDir, stats.DBFileName))
		if err != nil {
			// the game is playable without statistics
			warn("opening stats database: %v", err)
			store = nil
		} else {
			defer store.Close()
		}
	}

	exporter, err := telemetry.NewExporter(cmd.Context())
	if err != nil {
		warn("setting up tracing: %v", err)
	}
	defer exporter.Shutdown(context.Background())

	saveDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("finding working directory: %w", err)
	}

	model := ui.NewAppModel(ui.Options{
		Seed:      seed,
		Game:      game,
		History:   history,
		Resumed:   resumed,
		Quiet:     flagQuiet,
		SaveDir:   saveDir,
		Config:    cfg,
		Stats:     store,
		Telemetry: exporter,
	})
	p := tea.NewProgram(model.AsTeaModel(), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

func warn(format string, args ...any) {
	if flagQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
