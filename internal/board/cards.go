package board

import "math"

const (
	DefaultCardWidth  = 200.0
	DefaultCardHeight = 200.0
	MinCardWidth      = 150.0
	MinCardHeight     = 100.0
	MaxCardWidth      = 300.0
	MaxCardHeight     = 200.0

	PlaceholderText = "Some dummy text.."
)

// Card is a positioned, resizable unit of text on the canvas.
type Card struct {
	ID     string  `yaml:"id" validate:"required"`
	Text   string  `yaml:"text"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width" validate:"gte=150,lte=300"`
	Height float64 `yaml:"height" validate:"gte=100,lte=200"`
}

func (c Card) Bounds() Rect {
	return Rect{X: c.X, Y: c.Y, W: c.Width, H: c.Height}
}

// CardStore keeps cards in paint order: the last card is drawn on top.
type CardStore struct {
	cards []Card
}

func NewCardStore() *CardStore {
	return &CardStore{cards: make([]Card, 0)}
}

func (s *CardStore) Add(card Card) {
	s.cards = append(s.cards, card)
}

// Insert places card at index, clamped to the collection bounds.
func (s *CardStore) Insert(card Card, index int) {
	if index < 0 {
		index = 0
	}
	if index >= len(s.cards) {
		s.cards = append(s.cards, card)
		return
	}
	s.cards = append(s.cards, Card{})
	copy(s.cards[index+1:], s.cards[index:])
	s.cards[index] = card
}

// Remove deletes the card with id and reports its former index, or -1.
func (s *CardStore) Remove(id string) (Card, int) {
	i := s.Index(id)
	if i < 0 {
		return Card{}, -1
	}
	card := s.cards[i]
	s.cards = append(s.cards[:i], s.cards[i+1:]...)
	return card, i
}

func (s *CardStore) Index(id string) int {
	for i := range s.cards {
		if s.cards[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *CardStore) Get(id string) (Card, bool) {
	if i := s.Index(id); i >= 0 {
		return s.cards[i], true
	}
	return Card{}, false
}

func (s *CardStore) UpdatePosition(id string, x, y float64) {
	if i := s.Index(id); i >= 0 {
		s.cards[i].X = x
		s.cards[i].Y = y
	}
}

func (s *CardStore) Resize(id string, width, height float64) {
	if i := s.Index(id); i >= 0 {
		s.cards[i].Width = clamp(width, MinCardWidth, MaxCardWidth)
		s.cards[i].Height = clamp(height, MinCardHeight, MaxCardHeight)
	}
}

func (s *CardStore) SetText(id, text string) {
	if i := s.Index(id); i >= 0 {
		s.cards[i].Text = text
	}
}

func (s *CardStore) Len() int {
	return len(s.cards)
}

// All returns a copy of the cards in paint order.
func (s *CardStore) All() []Card {
	out := make([]Card, len(s.cards))
	copy(out, s.cards)
	return out
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
