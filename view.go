package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

var (
	popupStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2)
	popupTitleStyle = lipgloss.NewStyle().Bold(true)
	popupHintStyle  = lipgloss.NewStyle().Faint(true)
	statusStyle     = lipgloss.NewStyle().Reverse(true)
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func (m model) View() string {
	if m.help {
		return m.helpView()
	}

	width := m.width
	if width < 1 {
		width = 1
	}
	height := m.canvasHeight()

	var body string
	if m.mode == ModePopup {
		body = lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, m.popupView())
	} else {
		st := renderState{panX: m.panX, panY: m.panY, selected: m.selected}
		if drag, ok := m.ctrl.Drag(); ok {
			st.drag = &drag
		}
		if m.mode == ModeEditing {
			st.editID = m.selected
			st.editText = m.editText
		}
		body = strings.Join(m.renderer.Render(width, height, st), "\n")
	}

	return body + "\n" + m.statusLine(width)
}

func (m model) popupView() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		popupTitleStyle.Render(popupTitle(m.popupCard)),
		"",
		popupBody(m.popupCard),
		"",
		popupHintStyle.Render("[close]  Esc/Enter/click · y copy"),
	)
	return popupStyle.Render(content)
}

func (m model) statusLine(width int) string {
	var status string
	switch m.mode {
	case ModeConfirm:
		var message string
		switch m.confirmAction {
		case ConfirmDeleteCard:
			message = fmt.Sprintf("Delete %s and its connections? (y/n)", m.confirmCardID)
		case ConfirmOverwriteFile:
			message = fmt.Sprintf("%s could not be loaded. Overwrite it? (y/n)", m.filename)
		case ConfirmQuit:
			message = "Quit? Unsaved changes will be lost. (y/n)"
		}
		status = fmt.Sprintf("Mode: CONFIRM | %s", message)
	case ModeEditing:
		status = fmt.Sprintf("Mode: EDIT | %s | Enter=save, Esc=cancel, Ctrl+V=paste", m.selected)
	default:
		status = fmt.Sprintf("Mode: %s | Cards: %d", m.modeString(), len(m.board.Cards()))
		if drag, ok := m.ctrl.Drag(); ok {
			status += fmt.Sprintf(" | Connecting from %s (release on a connector)", drag.StartID)
		} else if m.selected != "" {
			status += fmt.Sprintf(" | Selected: %s", m.selected)
		}
		if m.successMessage != "" {
			status += fmt.Sprintf(" | %s", m.successMessage)
		}
		if m.errorMessage == "" && m.successMessage == "" {
			status += " | ? for help | q to quit"
		}
	}

	status = truncate.String(status, uint(width))
	if m.errorMessage != "" && m.mode != ModeConfirm {
		status = truncate.String(status+" | ERROR: "+m.errorMessage, uint(width))
		return errorStyle.Render(status)
	}
	return statusStyle.Render(status)
}

func (m model) modeString() string {
	switch m.mode {
	case ModeNormal:
		return "NORMAL"
	case ModeEditing:
		return "EDIT"
	case ModeConfirm:
		return "CONFIRM"
	case ModePopup:
		return "DETAILS"
	default:
		return "UNKNOWN"
	}
}

func helpLines() []string {
	return []string{
		"Cardboard Help",
		"==============",
		"",
		"Mouse:",
		"------",
		"  Drag title row        Move card",
		"  Drag ◢ corner         Resize card",
		"  Drag ● connector      Draw a connection; release on another connector",
		"  [more]                Show card details",
		"  [del]                 Delete card and its connections",
		"  Wheel                 Scroll the view",
		"",
		"Cards:",
		"------",
		"  a                     Add card at a random position",
		"  e                     Edit text of the selected card",
		"  d                     Delete the selected card",
		"  Enter                 Show details of the selected card",
		"  y                     Copy card details to the clipboard",
		"",
		"Navigation:",
		"-----------",
		"  h/←/j/↓/k/↑/l/→       Pan the view",
		"  Shift+h/j/k/l         Pan faster",
		"",
		"Files:",
		"------",
		"  s                     Save board",
		"  S                     Export as PNG image",
		"  T                     Export as text",
		"",
		"General:",
		"--------",
		"  u                     Undo last action",
		"  U                     Redo last undone action",
		"  Esc                   Clear selection/cancel connection",
		"  ?                     Toggle this help screen",
		"  q/Ctrl+C              Quit",
	}
}

func (m model) helpView() string {
	lines := helpLines()
	visibleHeight := m.canvasHeight()

	startLine := m.helpScroll
	if startLine > len(lines)-visibleHeight {
		startLine = len(lines) - visibleHeight
	}
	if startLine < 0 {
		startLine = 0
	}
	endLine := startLine + visibleHeight
	if endLine > len(lines) {
		endLine = len(lines)
	}

	statusLine := fmt.Sprintf("Help (%d-%d of %d lines) | j/k to scroll, Esc to close",
		startLine+1, endLine, len(lines))
	return strings.Join(lines[startLine:endLine], "\n") + "\n" + statusStyle.Render(statusLine)
}
