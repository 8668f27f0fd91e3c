package main

import (
	"errors"
	"fmt"
	"os"

	"cardboard/internal/board"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		if m.help {
			m.handleHelpKey(msg.String())
			return m, nil
		}

		switch m.mode {
		case ModeEditing:
			m.handleEditKey(msg)
			return m, nil
		case ModeConfirm:
			return m.handleConfirmKey(msg.String())
		case ModePopup:
			m.handlePopupKey(msg.String())
			return m, nil
		default:
			return m.handleNormalKey(msg.String())
		}
	}
	return m, nil
}

func (m *model) handleMouse(msg tea.MouseMsg) {
	// A release always ends the gesture, whatever is on screen.
	if msg.Type == tea.MouseRelease {
		m.pointerDown = false
		m.handleEvent(m.ctrl.PointerUp(m.worldPoint(msg.X, msg.Y)))
		return
	}

	if m.help {
		return
	}
	if m.mode == ModePopup {
		if msg.Type == tea.MouseLeft && !m.pointerDown {
			m.closePopup()
		}
		return
	}
	if m.mode != ModeNormal {
		return
	}

	p := m.worldPoint(msg.X, msg.Y)
	switch msg.Type {
	case tea.MouseWheelUp:
		m.handlePan("k", 1)
	case tea.MouseWheelDown:
		m.handlePan("j", 1)
	case tea.MouseLeft:
		// Some terminals repeat the press while the button is held.
		if m.pointerDown {
			m.ctrl.PointerMove(p)
			return
		}
		m.pointerDown = true
		m.errorMessage = ""
		m.successMessage = ""
		m.handleEvent(m.ctrl.PointerDown(p))
	case tea.MouseMotion:
		if m.pointerDown {
			m.ctrl.PointerMove(p)
		}
	}
}

func (m *model) handleEvent(ev board.Event) {
	switch ev.Kind {
	case board.EventSelected:
		m.selected = ev.CardID
	case board.EventConnectStarted:
		m.selected = ev.CardID
	case board.EventConnected:
		m.recordAction(ActionAddConnection, AddConnectionData{Connection: ev.Connection}, nil)
		m.successMessage = fmt.Sprintf("Connected %s → %s", ev.Connection.Start, ev.Connection.End)
	case board.EventMoved:
		if after, ok := m.board.Card(ev.CardID); ok {
			m.recordAction(ActionMoveCard, cardState(after), cardState(ev.Before))
		}
	case board.EventResized:
		if after, ok := m.board.Card(ev.CardID); ok {
			m.recordAction(ActionResizeCard, cardState(after), cardState(ev.Before))
		}
	case board.EventShowMore:
		m.openPopup(ev.CardID)
	case board.EventDeleteRequested:
		m.requestDelete(ev.CardID)
	}
}

func (m model) handleNormalKey(key string) (tea.Model, tea.Cmd) {
	m.errorMessage = ""
	m.successMessage = ""

	switch key {
	case "ctrl+c", "q":
		if m.config.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmQuit
			return m, nil
		}
		return m, tea.Quit
	case "?":
		m.help = true
		m.helpScroll = 0
	case "a":
		m.addCard()
	case "d":
		if m.selected != "" {
			m.requestDelete(m.selected)
		}
	case "e":
		m.startEdit()
	case "enter":
		if m.selected != "" {
			m.openPopup(m.selected)
		}
	case "y":
		if m.selected != "" {
			m.copyCardDetails(m.selected)
		}
	case "u":
		m.undo()
	case "U":
		m.redo()
	case "s":
		m.save()
	case "S":
		filename := siblingPath(m.filename, ".png")
		if err := m.exportPNG(filename); err != nil {
			m.fail("PNG export failed", err)
		} else {
			m.successMessage = fmt.Sprintf("Exported %s", filename)
		}
	case "T":
		filename := siblingPath(m.filename, ".txt")
		if err := m.exportVisualTXT(filename); err != nil {
			m.fail("TXT export failed", err)
		} else {
			m.successMessage = fmt.Sprintf("Exported %s", filename)
		}
	case "esc":
		m.ctrl.Abort()
		m.selected = ""
	case "h", "j", "k", "l", "left", "right", "up", "down",
		"H", "J", "K", "L", "shift+left", "shift+right", "shift+up", "shift+down":
		m.handlePan(key, m.getMoveSpeed(key))
	}
	return m, nil
}

func (m *model) handleEditKey(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyEscape:
		m.editText = ""
		m.mode = ModeNormal
		return
	case tea.KeyEnter:
		if msg.Alt {
			m.editText += "\n"
			return
		}
		m.commitEdit()
		return
	case tea.KeyBackspace:
		if runes := []rune(m.editText); len(runes) > 0 {
			m.editText = string(runes[:len(runes)-1])
		}
		return
	case tea.KeySpace:
		m.editText += " "
		return
	case tea.KeyRunes:
		m.editText += string(msg.Runes)
		return
	}

	switch msg.String() {
	case "ctrl+v":
		text, err := readClipboard()
		if err != nil {
			m.fail("Paste failed", err)
			return
		}
		m.editText += cleanClipboardText(text)
	case "ctrl+j":
		m.editText += "\n"
	}
}

func (m model) handleConfirmKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "y", "Y":
		m.mode = ModeNormal
		switch m.confirmAction {
		case ConfirmQuit:
			return m, tea.Quit
		case ConfirmDeleteCard:
			m.deleteCard(m.confirmCardID)
		case ConfirmOverwriteFile:
			m.writeBoard()
		}
		m.confirmCardID = ""
	case "n", "N", "esc":
		m.mode = ModeNormal
		m.confirmCardID = ""
	}
	return m, nil
}

func (m *model) handlePopupKey(key string) {
	switch key {
	case "esc", "enter", "q":
		m.closePopup()
	case "y":
		m.copyCardDetails(m.popupCard)
	}
}

func (m *model) handleHelpKey(key string) {
	switch key {
	case "j", "down":
		maxScroll := len(helpLines()) - m.canvasHeight()
		if m.helpScroll < maxScroll {
			m.helpScroll++
		}
	case "k", "up":
		if m.helpScroll > 0 {
			m.helpScroll--
		}
	default:
		m.help = false
		m.helpScroll = 0
	}
}

func (m *model) addCard() {
	card := m.board.AddCard()
	m.recordAction(ActionAddCard, AddCardData{Card: card, Index: len(m.board.Cards()) - 1}, nil)
	m.selected = card.ID
	m.logger.Debug("card added", zap.String("card", card.ID))
}

func (m *model) requestDelete(cardID string) {
	if _, ok := m.board.Card(cardID); !ok {
		return
	}
	if !m.config.Confirmations {
		m.deleteCard(cardID)
		return
	}
	m.mode = ModeConfirm
	m.confirmAction = ConfirmDeleteCard
	m.confirmCardID = cardID
}

func (m *model) deleteCard(cardID string) {
	card, index, conns, ok := m.board.DeleteCard(cardID)
	if !ok {
		return
	}
	m.recordAction(ActionDeleteCard, DeleteCardData{Card: card, Index: index, Connections: conns}, nil)
	m.clearSelection(cardID)
	m.successMessage = fmt.Sprintf("Deleted %s", cardID)
	m.logger.Debug("card deleted", zap.String("card", cardID), zap.Int("connections", len(conns)))
}

func (m *model) startEdit() {
	card, ok := m.board.Card(m.selected)
	if !ok {
		return
	}
	m.mode = ModeEditing
	m.editText = card.Text
	m.originalEditText = card.Text
}

func (m *model) commitEdit() {
	m.mode = ModeNormal
	if m.editText != m.originalEditText {
		m.board.SetCardText(m.selected, m.editText)
		m.recordAction(ActionEditCard, EditCardData{
			ID:      m.selected,
			NewText: m.editText,
			OldText: m.originalEditText,
		}, nil)
	}
	m.editText = ""
	m.originalEditText = ""
}

func (m *model) openPopup(cardID string) {
	if _, ok := m.board.Card(cardID); !ok {
		return
	}
	m.popupCard = cardID
	m.mode = ModePopup
}

func (m *model) closePopup() {
	m.popupCard = ""
	m.mode = ModeNormal
}

// save writes the board. A file that failed to load is never replaced
// silently: it is confirmed first, or kept as a .bak copy when prompts are off.
func (m *model) save() {
	if m.loadFailed {
		if m.config.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmOverwriteFile
			return
		}
		backup := m.filename + ".bak"
		if err := os.Rename(m.filename, backup); err != nil && !errors.Is(err, os.ErrNotExist) {
			m.fail("Save failed", fmt.Errorf("keep unreadable %s: %w", m.filename, err))
			return
		}
		m.logger.Warn("unreadable board kept", zap.String("file", backup))
	}
	m.writeBoard()
}

func (m *model) writeBoard() {
	if err := m.board.SaveFile(m.filename); err != nil {
		m.fail("Save failed", err)
		return
	}
	m.loadFailed = false
	m.successMessage = fmt.Sprintf("Saved %s", m.filename)
	m.logger.Info("board saved", zap.String("file", m.filename), zap.String("board", m.board.ID()))
}
