package main

func (m *model) undo() {
	if len(m.undoStack) == 0 {
		return
	}

	lastIndex := len(m.undoStack) - 1
	action := m.undoStack[lastIndex]
	m.undoStack = m.undoStack[:lastIndex]

	switch action.Type {
	case ActionAddCard:
		data := action.Data.(AddCardData)
		m.board.DeleteCard(data.Card.ID)
		m.clearSelection(data.Card.ID)
	case ActionDeleteCard:
		data := action.Data.(DeleteCardData)
		m.board.RestoreCard(data.Card, data.Index)
		for _, conn := range data.Connections {
			m.board.RestoreConnection(conn)
		}
	case ActionMoveCard, ActionResizeCard:
		m.applyCardState(action.Inverse.(CardState))
	case ActionEditCard:
		data := action.Data.(EditCardData)
		m.board.SetCardText(data.ID, data.OldText)
	case ActionAddConnection:
		data := action.Data.(AddConnectionData)
		m.board.RemoveConnection(data.Connection)
	}

	m.redoStack = append(m.redoStack, action)
}

func (m *model) redo() {
	if len(m.redoStack) == 0 {
		return
	}

	lastIndex := len(m.redoStack) - 1
	action := m.redoStack[lastIndex]
	m.redoStack = m.redoStack[:lastIndex]

	switch action.Type {
	case ActionAddCard:
		data := action.Data.(AddCardData)
		m.board.RestoreCard(data.Card, data.Index)
	case ActionDeleteCard:
		data := action.Data.(DeleteCardData)
		m.board.DeleteCard(data.Card.ID)
		m.clearSelection(data.Card.ID)
	case ActionMoveCard, ActionResizeCard:
		m.applyCardState(action.Data.(CardState))
	case ActionEditCard:
		data := action.Data.(EditCardData)
		m.board.SetCardText(data.ID, data.NewText)
	case ActionAddConnection:
		data := action.Data.(AddConnectionData)
		m.board.RestoreConnection(data.Connection)
	}

	m.undoStack = append(m.undoStack, action)
}

func (m *model) applyCardState(state CardState) {
	m.board.UpdateCardPosition(state.ID, state.X, state.Y)
	m.board.ResizeCard(state.ID, state.Width, state.Height)
}

// clearSelection drops every reference the UI holds to a removed card.
func (m *model) clearSelection(cardID string) {
	m.ctrl.CardRemoved(cardID)
	if m.selected == cardID {
		m.selected = ""
	}
	if m.popupCard == cardID {
		m.popupCard = ""
		if m.mode == ModePopup {
			m.mode = ModeNormal
		}
	}
}
