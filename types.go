package main

import (
	"cardboard/internal/board"

	"go.uber.org/zap"
)

type model struct {
	width            int
	height           int
	panX             int
	panY             int
	board            *board.Board
	layout           *board.Layout
	ctrl             *board.Controller
	renderer         *Renderer
	logger           *zap.Logger
	config           *Config
	filename         string
	loadFailed       bool
	mode             Mode
	help             bool
	helpScroll       int
	pointerDown      bool
	selected         string
	popupCard        string
	editText         string
	originalEditText string
	confirmAction    ConfirmAction
	confirmCardID    string
	undoStack        []Action
	redoStack        []Action
	errorMessage     string
	successMessage   string
}

type Action struct {
	Type    ActionType
	Data    interface{}
	Inverse interface{}
}

type AddCardData struct {
	Card  board.Card
	Index int
}

type DeleteCardData struct {
	Card        board.Card
	Index       int
	Connections []board.Connection
}

// CardState is the geometry of a card at one point in time.
type CardState struct {
	ID     string
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func cardState(c board.Card) CardState {
	return CardState{ID: c.ID, X: c.X, Y: c.Y, Width: c.Width, Height: c.Height}
}

type EditCardData struct {
	ID      string
	NewText string
	OldText string
}

type AddConnectionData struct {
	Connection board.Connection
}
