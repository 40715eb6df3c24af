// internal/tui/board_view.go
//
// Rendering for the browse screen. Every View pass derives the board
// panels from scratch via Board.Snapshot — there is no fragment cache and
// no diffing against the previous frame.

package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kingrea/boxboard/internal/projection"
)

const logPanelLines = 6

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)
	panelBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#444444")).
				Padding(0, 1)
	dimTextStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	hintTextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
	pickerTitle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
)

// View renders the current state to a string.
func (a *App) View() string {
	width := a.width
	if width <= 0 {
		width = 100
	}

	var content string
	switch a.state {
	case statePresetSelect:
		content = a.renderPresetSelection()
	default:
		content = a.renderBrowse(width)
	}

	sections := []string{a.renderHeader(), content}
	if a.showLog {
		if logPanel := a.renderLogPanel(); logPanel != "" {
			sections = append(sections, logPanel)
		}
	}
	footer := dimTextStyle.MarginTop(1).Render(a.statusMsg)
	sections = append(sections, footer)
	return strings.Join(sections, "\n")
}

func (a *App) renderHeader() string {
	title := headerStyle.Render("◳ BOXBOARD")
	meta := dimTextStyle.Render(fmt.Sprintf("preset %s · %d selected", a.active.ID, len(a.selection)))
	return lipgloss.JoinHorizontal(lipgloss.Bottom, title, "  ", meta)
}

func (a *App) renderBrowse(width int) string {
	pickerWidth := max(28, width/4)
	boardWidth := width - pickerWidth - 4
	if boardWidth < 30 {
		pickerWidth = width
		boardWidth = 0
	}
	picker := panelBorderStyle.Width(pickerWidth).Render(a.renderPicker(pickerWidth - 4))
	if boardWidth <= 0 {
		return picker
	}
	board := a.renderBoardArea(boardWidth)
	return lipgloss.JoinHorizontal(lipgloss.Top, picker, board)
}

// renderPicker draws the catalog with the highlight cursor and, for
// selected entries, their position in the selection order.
func (a *App) renderPicker(width int) string {
	title := pickerTitle.Render(fmt.Sprintf("CATALOG · %s", a.active.DisplayName()))
	var rows []string
	for i, choice := range a.active.Choices {
		marker := "[ ]"
		if pos := a.selectionIndex(choice.Code); pos >= 0 {
			marker = fmt.Sprintf("[%d]", pos+1)
		}
		line := fmt.Sprintf("%s %s · %s", marker, choice.Code, choice.Name)
		if i == a.cursor {
			line = cursorStyle.Render("› " + line)
		} else {
			line = "  " + line
		}
		rows = append(rows, line)
	}
	hint := hintTextStyle.MarginTop(1).Render("Space toggle · c clear · p presets")
	body := strings.Join(rows, "\n")
	return lipgloss.NewStyle().Width(max(20, width)).Render(
		lipgloss.JoinVertical(lipgloss.Left, title, body, hint),
	)
}

// renderBoardArea shows the slot panels, or the guard hint while the
// selection is empty. The panels do not exist at all in the guard state;
// visibility follows the projector's two-state machine.
func (a *App) renderBoardArea(width int) string {
	if projection.StateOf(a.selection) == projection.StateAwaitingSelection {
		hint := hintTextStyle.Render("Nothing selected yet.\nPick at least one item and the boxes will appear.")
		return panelBorderStyle.Width(width).Render(hint)
	}
	views := a.board.Snapshot(a.selection)
	columnWidth := width/len(views) - 2
	if columnWidth < 14 {
		columnWidth = 14
	}
	columns := make([]string, len(views))
	for i, view := range views {
		columns[i] = a.renderSlotPanel(view, columnWidth)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

func (a *App) renderSlotPanel(view projection.SlotView, width int) string {
	accent := view.Slot.Accent
	if accent == "" {
		accent = "#CCCCCC"
	}
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(accent)).
		Render(view.Slot.Subtitle)
	blocks := []string{title}
	for _, frag := range view.Fragments {
		blocks = append(blocks, a.renderFragment(frag, accent, width-4))
	}
	body := lipgloss.JoinVertical(lipgloss.Left, blocks...)
	return panelBorderStyle.Width(max(14, width)).Render(body)
}

// renderFragment draws one decorative widget: the selected value up top,
// the slot's fixed label underneath.
func (a *App) renderFragment(frag projection.Fragment, accent string, width int) string {
	value := lipgloss.NewStyle().Bold(true).Render(frag.Value)
	name := a.active.ChoiceName(frag.Value)
	if name != frag.Value {
		value = fmt.Sprintf("%s · %s", value, name)
	}
	label := dimTextStyle.Render(frag.Label)
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(accent)).
		Padding(0, 1).
		Width(max(10, width)).
		Render(fmt.Sprintf("%s\n%s", value, label))
}

func (a *App) renderPresetSelection() string {
	view := a.presetMenu.View()
	if strings.TrimSpace(view) == "" {
		view = "No presets available"
	}
	hint := hintTextStyle.MarginTop(1).Render("Enter → load preset    Esc → cancel")
	return lipgloss.JoinVertical(lipgloss.Left, view, hint)
}

func (a *App) renderLogPanel() string {
	if a.logbook == nil {
		return ""
	}
	lines, total := a.logbook.Tail(logPanelLines)
	if len(lines) == 0 {
		return ""
	}
	fileName := filepath.Base(a.logbook.Path())
	if fileName == "." || fileName == "" {
		fileName = "log"
	}
	head := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#5B8DEF")).
		Render(fmt.Sprintf("LOG · %s (%d entries)", fileName, total))
	body := hintTextStyle.Render(strings.Join(lines, "\n"))
	return panelBorderStyle.Render(fmt.Sprintf("%s\n%s", head, body))
}
