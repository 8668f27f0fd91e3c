package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"cardboard/internal/board"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"
)

var (
	writeClipboard = clipboard.WriteAll
	readClipboard  = clipboard.ReadAll
)

// canvasHeight leaves the last terminal row for the status line.
func (m *model) canvasHeight() int {
	h := m.height - 1
	if h < 1 {
		h = 1
	}
	return h
}

// worldPoint maps a screen cell to the board point at the cell's center.
func (m *model) worldPoint(x, y int) board.Point {
	return board.Point{
		X: (float64(x+m.panX) + 0.5) * m.config.CellWidth,
		Y: (float64(y+m.panY) + 0.5) * m.config.CellHeight,
	}
}

func (m *model) recordAction(actionType ActionType, data, inverse interface{}) {
	m.undoStack = append(m.undoStack, Action{
		Type:    actionType,
		Data:    data,
		Inverse: inverse,
	})
	m.redoStack = m.redoStack[:0]
}

func popupTitle(cardID string) string {
	return fmt.Sprintf("Card %s Details", cardID)
}

func popupBody(cardID string) string {
	return fmt.Sprintf("This is the detailed text of card %s...", cardID)
}

func (m *model) copyCardDetails(cardID string) {
	card, ok := m.board.Card(cardID)
	if !ok {
		return
	}
	text := strings.Join([]string{popupTitle(card.ID), card.Text, popupBody(card.ID)}, "\n")
	if err := writeClipboard(text); err != nil {
		m.fail("Copy failed", err)
		return
	}
	m.successMessage = fmt.Sprintf("Copied %s to clipboard", card.ID)
}

// cleanClipboardText flattens pasted text to a single card-friendly string.
func cleanClipboardText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, "\t", "    ")
	return strings.TrimRight(text, "\n")
}

func siblingPath(filename, ext string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename)) + ext
}

func (m *model) fail(what string, err error) {
	m.errorMessage = fmt.Sprintf("%s: %v", what, err)
	m.successMessage = ""
	m.logger.Error(strings.ToLower(what), zap.Error(err))
}
