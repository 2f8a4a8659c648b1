package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/FBemf/freecell/internal/engine"
)

func plainView(a *appModelAdapter) string {
	// strip colour so substring checks see the raw text
	old := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.Ascii)
	defer lipgloss.SetColorProfile(old)
	return a.View()
}

func TestViewShowsBoard(t *testing.T) {
	g := engine.GameFromColumns([][]engine.Card{
		{card(10, engine.Hearts)},
		{card(1, engine.Spades)},
	})
	held := card(4, engine.Diamonds)
	g.FreeCells[0] = &held
	g.Foundations[engine.Clubs] = card(2, engine.Clubs)

	_, adapter := testModel(t, Options{Seed: 42, Game: g})
	view := plainView(adapter)

	for _, want := range []string{"10♥", " A♠", " 4♦", " 2♣", "seed: 42"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q:\n%s", want, view)
		}
	}
}

func TestViewRowsMatchLayout(t *testing.T) {
	g := engine.GameFromColumns([][]engine.Card{
		{card(10, engine.Hearts), card(9, engine.Spades)},
	})
	_, adapter := testModel(t, Options{Seed: 1, Game: g})
	lines := strings.Split(plainView(adapter), "\n")

	// the mouse layout assumes cards render exactly where the rects say
	wantAt := func(row, col int, want string) {
		t.Helper()
		if row >= len(lines) {
			t.Fatalf("view has only %d rows, wanted row %d", len(lines), row)
		}
		runes := []rune(lines[row])
		if col+len([]rune(want)) > len(runes) {
			t.Fatalf("row %d too short: %q", row, lines[row])
		}
		got := string(runes[col : col+len([]rune(want))])
		if got != want {
			t.Errorf("row %d col %d = %q, want %q", row, col, got, want)
		}
	}
	wantAt(topRow, leftMargin, "[   ]")
	wantAt(tableauTop, leftMargin, "[10♥]")
	wantAt(tableauTop+1, leftMargin, "[ 9♠]")
}

func TestViewShowsHeldCards(t *testing.T) {
	g := engine.GameFromColumns([][]engine.Card{{card(6, engine.Hearts)}})
	_, adapter := testModel(t, Options{Seed: 1, Game: g})

	adapter.Update(press(leftMargin, tableauTop))
	view := plainView(adapter)
	if !strings.Contains(view, "holding:") || !strings.Contains(view, "6♥") {
		t.Errorf("view should show the held card:\n%s", view)
	}
}

func TestViewShowsStatusOverSeed(t *testing.T) {
	m, adapter := testModel(t, Options{Seed: 7, Game: engine.NewGame(7)})

	adapter.Update(keyMsg("s"))
	view := plainView(adapter)
	if !strings.Contains(view, m.status) {
		t.Errorf("view should show the current status %q:\n%s", m.status, view)
	}
	if strings.Contains(view, "seed: 7") {
		t.Error("seed hint should yield to an active status message")
	}
}

func TestViewShowsConfirmPrompt(t *testing.T) {
	_, adapter := testModel(t, Options{Seed: 7, Game: engine.NewGame(7)})

	adapter.Update(keyMsg("n"))
	if !strings.Contains(plainView(adapter), "press n again") {
		t.Error("view should prompt for new-game confirmation")
	}
}
