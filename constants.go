package main

type Mode int

const (
	ModeNormal Mode = iota
	ModeEditing
	ModeConfirm
	ModePopup
)

type ConfirmAction int

const (
	ConfirmDeleteCard ConfirmAction = iota
	ConfirmQuit
	ConfirmOverwriteFile
)

type ActionType int

const (
	ActionAddCard ActionType = iota
	ActionDeleteCard
	ActionMoveCard
	ActionResizeCard
	ActionEditCard
	ActionAddConnection
)

const (
	defaultCellWidth  = 10.0
	defaultCellHeight = 20.0
	defaultBoardFile  = "board.yaml"
	configFileName    = ".cardboard.yaml"
	configEnvVar      = "CARDBOARD_CONFIG"
)
