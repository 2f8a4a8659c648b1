package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/FBemf/freecell/internal/config"
	"github.com/FBemf/freecell/internal/engine"
	"github.com/FBemf/freecell/internal/stats"
)

func testConfig() config.Config {
	return config.Config{
		AutoMoveInterval: config.DefaultAutoMoveInterval,
		StatusDuration:   config.DefaultStatusDuration,
		ConfirmWindow:    config.DefaultConfirmWindow,
	}
}

func testModel(t *testing.T, opts Options) (*AppModel, *appModelAdapter) {
	t.Helper()
	opts.Quiet = true
	if opts.Config == (config.Config{}) {
		opts.Config = testConfig()
	}
	if opts.SaveDir == "" {
		opts.SaveDir = t.TempDir()
	}
	m := NewAppModel(opts)
	return m, m.AsTeaModel().(*appModelAdapter)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
}

func TestMouseMoveUndoRedo(t *testing.T) {
	start := engine.GameFromColumns([][]engine.Card{
		{card(6, engine.Hearts)},
		{card(7, engine.Spades)},
	})
	m, adapter := testModel(t, Options{Seed: 1, Game: start})

	// drag the 6 of hearts onto the 7 of spades
	adapter.Update(press(leftMargin, tableauTop))
	if !m.game.HasFloating() {
		t.Fatal("press on a card should pick it up")
	}
	adapter.Update(release(columnX(1), tableauTop))
	if m.game.HasFloating() {
		t.Fatal("release over a legal spot should place the card")
	}
	moved := m.game
	if len(moved.Columns[1]) != 2 {
		t.Fatalf("column 1 has %d cards, want 2", len(moved.Columns[1]))
	}

	adapter.Update(keyMsg("backspace"))
	if !m.game.Equal(start) {
		t.Error("undo should restore the starting position")
	}
	adapter.Update(keyMsg("enter"))
	if !m.game.Equal(moved) {
		t.Error("redo should reapply the move")
	}
	// the letter bindings do the same thing
	adapter.Update(keyMsg("u"))
	if !m.game.Equal(start) {
		t.Error("u should undo")
	}
	adapter.Update(keyMsg("r"))
	if !m.game.Equal(moved) {
		t.Error("r should redo")
	}
}

func TestMousePickupFromFreeCell(t *testing.T) {
	start := engine.GameFromColumns([][]engine.Card{
		{card(10, engine.Spades)},
	})
	held := card(9, engine.Diamonds)
	start.FreeCells[0] = &held
	m, adapter := testModel(t, Options{Seed: 1, Game: start})

	// a card parked in a free cell must be retrievable
	cell := freeCellRect(0)
	adapter.Update(press(cell.X, cell.Y))
	if !m.game.HasFloating() {
		t.Fatal("press on an occupied free cell should pick the card up")
	}
	adapter.Update(release(columnX(0), tableauTop))
	if m.game.HasFloating() {
		t.Fatal("release over a legal column should place the card")
	}
	if m.game.FreeCells[0] != nil {
		t.Error("the free cell should be empty after the move")
	}
	if len(m.game.Columns[0]) != 2 {
		t.Errorf("column 0 has %d cards, want 2", len(m.game.Columns[0]))
	}
}

func TestReleaseOverNothingSnapsBack(t *testing.T) {
	start := engine.GameFromColumns([][]engine.Card{
		{card(6, engine.Hearts)},
		{card(9, engine.Spades)},
	})
	m, adapter := testModel(t, Options{Seed: 1, Game: start})

	adapter.Update(press(leftMargin, tableauTop))
	adapter.Update(release(0, 0))
	if m.game.HasFloating() {
		t.Fatal("failed drop should put the card back")
	}
	if !m.game.Equal(start) {
		t.Error("failed drop should restore the starting position")
	}
}

func TestIllegalDropSnapsBack(t *testing.T) {
	start := engine.GameFromColumns([][]engine.Card{
		{card(6, engine.Hearts)},
		{card(9, engine.Spades)},
	})
	m, adapter := testModel(t, Options{Seed: 1, Game: start})

	// a 6 doesn't stack on a 9
	adapter.Update(press(leftMargin, tableauTop))
	adapter.Update(release(columnX(1), tableauTop))
	if !m.game.Equal(start) {
		t.Error("illegal drop should restore the starting position")
	}
}

func TestEscDropsHeldCards(t *testing.T) {
	start := engine.GameFromColumns([][]engine.Card{{card(6, engine.Hearts)}})
	m, adapter := testModel(t, Options{Seed: 1, Game: start})

	adapter.Update(press(leftMargin, tableauTop))
	adapter.Update(keyMsg("esc"))
	if m.game.HasFloating() || !m.game.Equal(start) {
		t.Error("esc should put held cards back")
	}
}

func TestNewGameNeedsConfirmation(t *testing.T) {
	start := engine.NewGame(5)
	m, adapter := testModel(t, Options{Seed: 5, Game: start})

	adapter.Update(keyMsg("n"))
	if !m.confirmingNewGame {
		t.Fatal("first n should ask for confirmation")
	}
	if !m.game.Equal(start) {
		t.Fatal("first n should not reshuffle")
	}

	// any other key withdraws the request
	adapter.Update(keyMsg("x"))
	if m.confirmingNewGame {
		t.Error("another key should cancel the confirmation")
	}
	if !m.game.Equal(start) {
		t.Error("cancelled confirmation should not reshuffle")
	}

	adapter.Update(keyMsg("n"))
	adapter.Update(keyMsg("n"))
	if m.confirmingNewGame {
		t.Error("confirmation should clear after reshuffling")
	}
	if m.game.Equal(start) || m.seed == 5 {
		t.Error("second n should deal a fresh game with a new seed")
	}
}

func TestNewGameConfirmationExpires(t *testing.T) {
	start := engine.NewGame(5)
	m, adapter := testModel(t, Options{Seed: 5, Game: start})

	adapter.Update(keyMsg("n"))
	adapter.Update(confirmExpiredMsg{id: m.confirmID})
	if m.confirmingNewGame {
		t.Fatal("confirmation should expire")
	}
	adapter.Update(keyMsg("n"))
	if !m.game.Equal(start) {
		t.Error("n after an expired confirmation should only re-ask")
	}
}

func TestAutoMoveTick(t *testing.T) {
	start := engine.GameFromColumns([][]engine.Card{{card(1, engine.Clubs)}})
	m, adapter := testModel(t, Options{Seed: 1, Game: start})

	_, cmd := adapter.Update(autoMoveTickMsg(time.Time{}))
	if cmd == nil {
		t.Error("tick handler should re-arm the timer")
	}
	if m.game.Foundations[engine.Clubs] != card(1, engine.Clubs) {
		t.Error("ace should move to its foundation on tick")
	}
	if len(m.game.Columns[0]) != 0 {
		t.Error("ace should leave its column")
	}
	// automatic moves roll back together with the player move before them
	if m.history.CanUndo() {
		t.Error("an automatic move alone should not be undoable")
	}
}

func TestSaveKeyWritesFile(t *testing.T) {
	dir := t.TempDir()
	m, adapter := testModel(t, Options{Seed: 9, Game: engine.NewGame(9), SaveDir: dir})

	adapter.Update(keyMsg("s"))
	if !strings.HasPrefix(m.status, "Saved to ") {
		t.Fatalf("status = %q, want a save confirmation", m.status)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 save file, got %d", len(entries))
	}
}

func TestStatusExpires(t *testing.T) {
	dir := t.TempDir()
	m, adapter := testModel(t, Options{Seed: 9, Game: engine.NewGame(9), SaveDir: dir})

	adapter.Update(keyMsg("s"))
	adapter.Update(statusExpiredMsg{id: m.statusID})
	if m.status != "" {
		t.Errorf("status should clear after expiry, got %q", m.status)
	}
}

func TestStaleStatusExpiryIgnored(t *testing.T) {
	dir := t.TempDir()
	m, adapter := testModel(t, Options{Seed: 9, Game: engine.NewGame(9), SaveDir: dir})

	adapter.Update(keyMsg("s"))
	stale := m.statusID
	adapter.Update(keyMsg("s"))
	adapter.Update(statusExpiredMsg{id: stale})
	if m.status == "" {
		t.Error("an older expiry must not clear a newer status")
	}
}

func TestQuitRecordsAbandonedGame(t *testing.T) {
	store, err := stats.Open(filepath.Join(t.TempDir(), stats.DBFileName))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	_, adapter := testModel(t, Options{Seed: 3, Game: engine.NewGame(3), Stats: store})
	_, cmd := adapter.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}

	sum, err := store.Summary()
	if err != nil {
		t.Fatal(err)
	}
	if sum.Played != 1 || sum.Won != 0 {
		t.Errorf("summary = %+v, want 1 played 0 won", sum)
	}
}

func TestWinningRecordsResultOnce(t *testing.T) {
	store, err := stats.Open(filepath.Join(t.TempDir(), stats.DBFileName))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	// one card from victory
	g := engine.GameFromColumns([][]engine.Card{{card(13, engine.Spades)}})
	g.Foundations[engine.Clubs] = card(13, engine.Clubs)
	g.Foundations[engine.Diamonds] = card(13, engine.Diamonds)
	g.Foundations[engine.Hearts] = card(13, engine.Hearts)
	g.Foundations[engine.Spades] = card(12, engine.Spades)

	m, adapter := testModel(t, Options{Seed: 3, Game: g, Stats: store})
	adapter.Update(press(leftMargin, tableauTop))
	target := foundationRect(engine.Spades)
	adapter.Update(release(target.X, target.Y))

	if !m.game.Won() {
		t.Fatal("expected the game to be won")
	}
	if !strings.Contains(adapter.View(), "You Win!") {
		t.Error("view should show the win banner")
	}

	// quitting afterwards must not record a second result
	adapter.Update(keyMsg("q"))
	sum, err := store.Summary()
	if err != nil {
		t.Fatal(err)
	}
	if sum.Played != 1 || sum.Won != 1 {
		t.Errorf("summary = %+v, want 1 played 1 won", sum)
	}
}
