package board

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const SnapshotVersion = 1

var (
	ErrInvalidSnapshot    = errors.New("invalid board snapshot")
	ErrUnsupportedVersion = errors.New("unsupported board snapshot version")
	validate              = validator.New()
)

// Snapshot is the on-disk form of a board. NextID is stored so identifiers
// stay unique across sessions.
type Snapshot struct {
	Version     int          `yaml:"version" validate:"required"`
	BoardID     string       `yaml:"board_id" validate:"required,uuid"`
	NextID      int          `yaml:"next_id" validate:"gte=1"`
	Cards       []Card       `yaml:"cards" validate:"dive"`
	Connections []Connection `yaml:"connections" validate:"dive"`
}

func (b *Board) Snapshot() Snapshot {
	return Snapshot{
		Version:     SnapshotVersion,
		BoardID:     b.id,
		NextID:      b.nextID,
		Cards:       b.Cards(),
		Connections: b.Connections(),
	}
}

// FromSnapshot rebuilds a board. Connections must reference live cards and
// NextID must be past every card-<n> in use.
func FromSnapshot(s Snapshot, opts ...Option) (*Board, error) {
	if s.Version != SnapshotVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, s.Version)
	}
	if err := validate.Struct(s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}

	b := New(append([]Option{WithID(s.BoardID)}, opts...)...)
	b.nextID = s.NextID
	for _, card := range s.Cards {
		if _, dup := b.cards.Get(card.ID); dup {
			return nil, fmt.Errorf("%w: duplicate card %q", ErrInvalidSnapshot, card.ID)
		}
		if n, ok := cardNumber(card.ID); ok && n >= b.nextID {
			return nil, fmt.Errorf("%w: card %q not below next_id %d", ErrInvalidSnapshot, card.ID, b.nextID)
		}
		b.cards.Add(card)
	}
	for _, conn := range s.Connections {
		_, startOK := b.cards.Get(conn.Start)
		_, endOK := b.cards.Get(conn.End)
		if !startOK || !endOK {
			return nil, fmt.Errorf("%w: dangling connection %s -> %s", ErrInvalidSnapshot, conn.Start, conn.End)
		}
		b.conns.Add(conn.Start, conn.End)
	}
	return b, nil
}

func cardNumber(id string) (int, bool) {
	rest, ok := strings.CutPrefix(id, "card-")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (b *Board) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(b.Snapshot()); err != nil {
		return fmt.Errorf("encode board: %w", err)
	}
	return enc.Close()
}

func Decode(r io.Reader, opts ...Option) (*Board, error) {
	var s Snapshot
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	return FromSnapshot(s, opts...)
}

func (b *Board) SaveFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := b.Encode(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func LoadFile(path string, opts ...Option) (*Board, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	b, err := Decode(file, opts...)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return b, nil
}
