package ui

import (
	"fmt"
	"strings"

	"github.com/FBemf/freecell/internal/engine"
)

func (m *AppModel) view() string {
	var b strings.Builder

	b.WriteString(strings.Repeat(" ", leftMargin))
	b.WriteString(Styles.Title.Render("freecell"))
	b.WriteString("\n")
	b.WriteString(m.cellLine())
	b.WriteString("\n\n")

	rows := 0
	for _, col := range m.game.Columns {
		if len(col) > rows {
			rows = len(col)
		}
	}
	for r := 0; r < rows; r++ {
		b.WriteString(m.tableauLine(r))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.handLine())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(strings.Repeat(" ", leftMargin))
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

// cellLine renders the free cells and foundations side by side.
func (m *AppModel) cellLine() string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", leftMargin))
	for i, cell := range m.game.FreeCells {
		if i > 0 {
			b.WriteString(strings.Repeat(" ", cellGap))
		}
		if cell == nil {
			b.WriteString(Styles.EmptySlot.Render("[   ]"))
		} else {
			b.WriteString(renderCard(*cell))
		}
	}
	b.WriteString(strings.Repeat(" ", cellGap+foundationGap))
	for s := 0; s < engine.NumSuits; s++ {
		if s > 0 {
			b.WriteString(strings.Repeat(" ", cellGap))
		}
		card := m.game.Foundations[s]
		if card.Rank == 0 {
			b.WriteString(Styles.EmptySlot.Render(fmt.Sprintf("[ %s ]", engine.Suit(s).Symbol())))
		} else {
			b.WriteString(renderCard(card))
		}
	}
	return b.String()
}

// tableauLine renders one row of the tableau.
func (m *AppModel) tableauLine(row int) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", leftMargin))
	for i, col := range m.game.Columns {
		if i > 0 {
			b.WriteString(strings.Repeat(" ", cellGap))
		}
		if row >= len(col) {
			b.WriteString(strings.Repeat(" ", cellWidth))
			continue
		}
		if !m.game.HasFloating() && tableauCardRect(i, row).Contains(m.mouseX, m.mouseY) {
			b.WriteString(renderHeldCard(col[row]))
		} else {
			b.WriteString(renderCard(col[row]))
		}
	}
	return b.String()
}

// handLine shows the cards currently in hand.
func (m *AppModel) handLine() string {
	if !m.game.HasFloating() {
		return ""
	}
	cells := make([]string, len(m.game.Floating))
	for i, card := range m.game.Floating {
		cells[i] = renderHeldCard(card)
	}
	return strings.Repeat(" ", leftMargin) +
		Styles.Hint.Render("holding:") + " " + strings.Join(cells, " ")
}

func (m *AppModel) statusLine() string {
	pad := strings.Repeat(" ", leftMargin)
	switch {
	case m.game.Won():
		return pad + Styles.Banner.Render("You Win!")
	case m.confirmingNewGame:
		return pad + m.spin.View() +
			Styles.Status.Render("press n again to shuffle")
	case m.status != "":
		return pad + Styles.Status.Render(m.status)
	}
	return pad + Styles.Hint.Render(fmt.Sprintf("seed: %d", m.seed))
}

func renderCard(c engine.Card) string {
	label := fmt.Sprintf("%3s", c.String())
	if c.Suit.Colour() == engine.Red {
		label = Styles.RedCard.Render(label)
	} else {
		label = Styles.BlackCard.Render(label)
	}
	return Styles.EmptySlot.Render("[") + label + Styles.EmptySlot.Render("]")
}

func renderHeldCard(c engine.Card) string {
	return Styles.Held.Render(fmt.Sprintf("[%3s]", c.String()))
}
