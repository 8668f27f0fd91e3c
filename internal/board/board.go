// Package board holds the canvas data model: cards, the directed connections
// between them and the interaction controller that turns pointer gestures into
// mutations. Nothing in this package is safe for concurrent use; the UI loop
// owns a Board and mutates it from a single goroutine.
package board

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// SpawnArea bounds the random position of a new card on both axes.
const SpawnArea = 400.0

type Board struct {
	id     string
	nextID int
	cards  *CardStore
	conns  *ConnectionStore
	rnd    *rand.Rand
}

type Option func(*Board)

// WithRand sets the source used to place new cards.
func WithRand(r *rand.Rand) Option {
	return func(b *Board) {
		b.rnd = r
	}
}

func WithID(id string) Option {
	return func(b *Board) {
		b.id = id
	}
}

func New(opts ...Option) *Board {
	b := &Board{
		id:     uuid.NewString(),
		nextID: 1,
		cards:  NewCardStore(),
		conns:  NewConnectionStore(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.rnd == nil {
		b.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return b
}

func (b *Board) ID() string {
	return b.id
}

// NextID is the number the next AddCard will use.
func (b *Board) NextID() int {
	return b.nextID
}

func (b *Board) AddCard() Card {
	card := Card{
		ID:     fmt.Sprintf("card-%d", b.nextID),
		Text:   PlaceholderText,
		X:      b.rnd.Float64() * SpawnArea,
		Y:      b.rnd.Float64() * SpawnArea,
		Width:  DefaultCardWidth,
		Height: DefaultCardHeight,
	}
	b.nextID++
	b.cards.Add(card)
	return card
}

// DeleteCard removes the card and every connection touching it. The removed
// card, its former paint index and the removed connections are returned so
// the deletion can be undone.
func (b *Board) DeleteCard(id string) (Card, int, []Connection, bool) {
	card, index := b.cards.Remove(id)
	if index < 0 {
		return Card{}, -1, nil, false
	}
	removed := b.conns.RemoveTouching(id)
	return card, index, removed, true
}

func (b *Board) UpdateCardPosition(id string, x, y float64) {
	b.cards.UpdatePosition(id, x, y)
}

func (b *Board) ResizeCard(id string, width, height float64) {
	b.cards.Resize(id, width, height)
}

func (b *Board) SetCardText(id, text string) {
	b.cards.SetText(id, text)
}

func (b *Board) AddConnection(start, end string) Connection {
	return b.conns.Add(start, end)
}

// RestoreCard puts a previously deleted card back at its paint index.
func (b *Board) RestoreCard(card Card, index int) {
	if _, ok := b.cards.Get(card.ID); ok {
		return
	}
	b.cards.Insert(card, index)
}

// RestoreConnection appends conn without touching the card store.
func (b *Board) RestoreConnection(conn Connection) {
	b.conns.Add(conn.Start, conn.End)
}

func (b *Board) RemoveConnection(conn Connection) bool {
	return b.conns.RemoveOne(conn)
}

func (b *Board) Card(id string) (Card, bool) {
	return b.cards.Get(id)
}

func (b *Board) Cards() []Card {
	return b.cards.All()
}

func (b *Board) Connections() []Connection {
	return b.conns.All()
}

func (b *Board) Empty() bool {
	return b.cards.Len() == 0 && b.conns.Len() == 0
}
