package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"cardboard/internal/board"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func main() {
	config, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := newLogger(config)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	name := defaultBoardFile
	if len(os.Args) > 1 {
		name = os.Args[1]
	}
	filename, err := config.GetSavePath(name)
	if err != nil {
		logger.Warn("save directory unavailable", zap.Error(err))
	}

	p := tea.NewProgram(
		initialModel(config, logger, filename),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", zap.Error(err))
		log.Fatal(err)
	}
}

// initialModel opens filename when it exists and starts an empty board
// otherwise. A file that fails to load is reported and left untouched until
// the next save.
func initialModel(config *Config, logger *zap.Logger, filename string) model {
	m := model{
		config:   config,
		logger:   logger,
		filename: filename,
		mode:     ModeNormal,
	}

	b, err := board.LoadFile(filename)
	switch {
	case err == nil:
		m.successMessage = fmt.Sprintf("Loaded %s", filename)
		logger.Info("board loaded",
			zap.String("file", filename),
			zap.String("board", b.ID()),
			zap.Int("cards", len(b.Cards())))
	case errors.Is(err, os.ErrNotExist):
		b = board.New()
	default:
		b = board.New()
		m.loadFailed = true
		m.fail("Load failed", err)
	}

	m.setBoard(b)
	return m
}

func (m *model) setBoard(b *board.Board) {
	m.board = b
	m.layout = board.NewLayout(b)
	m.layout.Slop = max(m.config.CellWidth, m.config.CellHeight) / 2
	m.ctrl = board.NewController(b, m.layout, m.layout, m.logger)
	m.renderer = NewRenderer(b, m.layout, m.config.CellWidth, m.config.CellHeight)
	m.selected = ""
	m.popupCard = ""
	m.undoStack = []Action{}
	m.redoStack = []Action{}
}

func (m model) Init() tea.Cmd {
	return nil
}
