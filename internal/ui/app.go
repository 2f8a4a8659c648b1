// Package ui is the Bubble Tea front end for the game: it owns the event
// loop, translates key and mouse input into engine moves, and renders the
// board.
package ui

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/FBemf/freecell/internal/config"
	"github.com/FBemf/freecell/internal/engine"
	"github.com/FBemf/freecell/internal/savegame"
	"github.com/FBemf/freecell/internal/stats"
	"github.com/FBemf/freecell/internal/telemetry"
)

// Options configures a new AppModel.
type Options struct {
	Seed    uint64
	Game    engine.Game
	History *engine.History
	// Resumed is true when the game came from a save file; resumed games
	// don't get a fresh statistics row.
	Resumed bool
	Quiet   bool
	// SaveDir is where save files are written, normally the working
	// directory.
	SaveDir string
	Config  config.Config

	Stats     *stats.Store        // may be nil
	Telemetry *telemetry.Exporter // may be nil
}

// AppModel is the root model: one game, its history, and the UI chrome
// around it.
type AppModel struct {
	game    engine.Game
	history *engine.History
	seed    uint64

	cfg     config.Config
	quiet   bool
	saveDir string

	keys keyMap
	help help.Model
	spin spinner.Model

	width, height  int
	mouseX, mouseY int

	status   string
	statusID int

	confirmingNewGame bool
	confirmID         int

	store    *stats.Store
	exporter *telemetry.Exporter
	gameID   string
	moves    int
	recorded bool
}

// NewAppModel creates the root application model.
func NewAppModel(opts Options) *AppModel {
	history := opts.History
	if history == nil {
		history = engine.NewHistory()
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = Styles.Status

	m := &AppModel{
		game:     opts.Game,
		history:  history,
		seed:     opts.Seed,
		cfg:      opts.Config,
		quiet:    opts.Quiet,
		saveDir:  opts.SaveDir,
		keys:     defaultKeyMap(),
		help:     help.New(),
		spin:     sp,
		store:    opts.Stats,
		exporter: opts.Telemetry,
	}
	if !opts.Resumed {
		m.beginGame()
	}
	return m
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

var _ tea.Model = (*appModelAdapter)(nil)

func (a *appModelAdapter) Init() tea.Cmd {
	return a.autoMoveTick()
}

func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return a, a.AppModel.update(msg)
}

func (a *appModelAdapter) View() string {
	return a.AppModel.view()
}

func (m *AppModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case autoMoveTickMsg:
		if next, moved := m.game.AutoMove(); moved {
			m.game = m.history.SneakUpdate(m.game, next)
			m.exporter.RecordMove("auto", "foundation")
			m.checkWin()
		}
		return m.autoMoveTick()

	case statusExpiredMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
		return nil

	case confirmExpiredMsg:
		if msg.id == m.confirmID {
			m.confirmingNewGame = false
		}
		return nil

	case spinner.TickMsg:
		if m.confirmingNewGame {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return cmd
		}
		return nil
	}
	return nil
}

func (m *AppModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.NewGame) {
		if m.confirmingNewGame {
			return m.startNewGame()
		}
		m.confirmingNewGame = true
		m.confirmID++
		id := m.confirmID
		return tea.Batch(
			m.spin.Tick,
			tea.Tick(m.cfg.ConfirmWindow, func(time.Time) tea.Msg { return confirmExpiredMsg{id} }),
		)
	}
	// any other key withdraws a pending new-game request
	m.confirmingNewGame = false

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.finishGame(false)
		return tea.Quit

	case key.Matches(msg, m.keys.Undo):
		m.game = m.history.Undo(m.game)

	case key.Matches(msg, m.keys.Redo):
		m.game = m.history.Redo(m.game)

	case key.Matches(msg, m.keys.Cancel):
		// drop whatever is in hand
		if m.game.HasFloating() {
			m.game = m.history.Undo(m.game)
		}

	case key.Matches(msg, m.keys.CopySeed):
		if err := clipboard.WriteAll(strconv.FormatUint(m.seed, 10)); err != nil {
			m.warn("couldn't access clipboard: %v", err)
			return m.setStatus("Clipboard Error")
		}
		return m.setStatus("Copied!")

	case key.Matches(msg, m.keys.Save):
		path, err := savegame.Save(m.saveDir, savegame.DefaultPrefix, savegame.State{
			Seed:    m.seed,
			Game:    m.game,
			History: m.history,
		})
		if err != nil {
			m.warn("error saving: %v", err)
			return m.setStatus("Save Error")
		}
		return m.setStatus(fmt.Sprintf("Saved to %s", path))
	}
	return nil
}

func (m *AppModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	m.mouseX, m.mouseY = msg.X, msg.Y

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || m.game.HasFloating() {
			return nil
		}
		rect, ok := hitCard(m.game, msg.X, msg.Y)
		if !ok {
			return nil
		}
		// single cards come from columns or free cells; runs only from columns
		var next engine.Game
		var err error
		if rect.Count == 1 {
			next, err = m.game.PickUp(rect.Address)
		} else {
			next, err = m.game.PickUpCount(rect.Address, rect.Count)
		}
		if err == nil {
			m.game = m.history.Update(m.game, next)
			m.exporter.RecordMove("pickup", rect.Address.String())
		}

	case tea.MouseActionRelease:
		if !m.game.HasFloating() {
			return nil
		}
		for _, zone := range DropZones(m.game) {
			if !zone.Rect.Contains(msg.X, msg.Y) {
				continue
			}
			next, err := m.game.Place(zone.Address)
			if err != nil {
				continue
			}
			m.game = m.history.Update(m.game, next)
			m.moves++
			m.exporter.RecordMove("place", zone.Address.String())
			m.checkWin()
			return nil
		}
		// released over nothing useful: snap back
		m.game = m.history.Undo(m.game)
	}
	return nil
}

// startNewGame abandons the current game and deals a fresh one with a
// random seed.
func (m *AppModel) startNewGame() tea.Cmd {
	m.finishGame(false)
	m.confirmingNewGame = false
	m.seed = rand.Uint64()
	m.game = engine.NewGame(m.seed)
	m.history = engine.NewHistory()
	m.moves = 0
	m.recorded = false
	m.gameID = ""
	m.beginGame()
	return m.setStatus(fmt.Sprintf("New game. Seed is %d", m.seed))
}

// beginGame opens the bookkeeping for a fresh deal.
func (m *AppModel) beginGame() {
	if m.store != nil {
		id, err := m.store.RecordStart(m.seed)
		if err != nil {
			m.warn("recording game start: %v", err)
		} else {
			m.gameID = id
		}
	}
	m.exporter.StartGame(context.Background(), m.seed)
}

// finishGame records the game's outcome once.
func (m *AppModel) finishGame(won bool) {
	if m.recorded {
		return
	}
	m.recorded = true
	if m.store != nil && m.gameID != "" {
		if err := m.store.RecordResult(m.gameID, won, m.moves); err != nil {
			m.warn("recording game result: %v", err)
		}
	}
	m.exporter.EndGame(won)
}

func (m *AppModel) checkWin() {
	if m.game.Won() {
		m.finishGame(true)
	}
}

func (m *AppModel) autoMoveTick() tea.Cmd {
	return tea.Tick(m.cfg.AutoMoveInterval, func(t time.Time) tea.Msg {
		return autoMoveTickMsg(t)
	})
}

// setStatus shows a transient message and schedules its expiry.
func (m *AppModel) setStatus(text string) tea.Cmd {
	m.status = text
	m.statusID++
	id := m.statusID
	return tea.Tick(m.cfg.StatusDuration, func(time.Time) tea.Msg {
		return statusExpiredMsg{id}
	})
}

func (m *AppModel) warn(format string, args ...any) {
	if m.quiet {
		return
	}
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
