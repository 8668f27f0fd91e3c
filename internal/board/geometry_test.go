package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func placedBoard() (*Board, *Layout) {
	b := newTestBoard()
	c1 := b.AddCard()
	c2 := b.AddCard()
	b.UpdateCardPosition(c1.ID, 0, 0)
	b.UpdateCardPosition(c2.ID, 400, 0)
	return b, NewLayout(b)
}

func TestLayout_ConnectorCenter(t *testing.T) {
	_, layout := placedBoard()

	p, ok := layout.ConnectorCenter("card-1")
	assert.True(t, ok)
	assert.Equal(t, Point{X: 202.5, Y: 100}, p)

	_, ok = layout.ConnectorCenter("card-9")
	assert.False(t, ok)
}

func TestLayout_CardBounds(t *testing.T) {
	_, layout := placedBoard()

	r, ok := layout.CardBounds("card-2")
	assert.True(t, ok)
	assert.Equal(t, Rect{X: 400, Y: 0, W: 200, H: 200}, r)
	assert.Equal(t, Point{X: 600, Y: 100}, r.RightMid())
}

func TestLayout_HitTest(t *testing.T) {
	_, layout := placedBoard()

	tests := []struct {
		name string
		p    Point
		want Hit
	}{
		{"connector outside edge", Point{X: 205, Y: 100}, Hit{Kind: HitConnector, CardID: "card-1"}},
		{"connector over border", Point{X: 197, Y: 98}, Hit{Kind: HitConnector, CardID: "card-1"}},
		{"drag handle", Point{X: 50, Y: 10}, Hit{Kind: HitHandle, CardID: "card-1"}},
		{"show more", Point{X: 20, Y: 165}, Hit{Kind: HitShowMore, CardID: "card-1"}},
		{"delete", Point{X: 100, Y: 165}, Hit{Kind: HitDelete, CardID: "card-1"}},
		{"resize corner", Point{X: 190, Y: 190}, Hit{Kind: HitResize, CardID: "card-1"}},
		{"body", Point{X: 100, Y: 100}, Hit{Kind: HitBody, CardID: "card-1"}},
		{"second card", Point{X: 450, Y: 100}, Hit{Kind: HitBody, CardID: "card-2"}},
		{"empty canvas", Point{X: 300, Y: 300}, Hit{Kind: HitNone}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, layout.HitTest(tt.p))
		})
	}
}

func TestLayout_HitTestConnectorBeatsOverlappingCard(t *testing.T) {
	b, layout := placedBoard()
	// card-2 now covers card-1's connector dot.
	b.UpdateCardPosition("card-2", 150, 50)

	assert.Equal(t, Hit{Kind: HitConnector, CardID: "card-1"}, layout.HitTest(Point{X: 202, Y: 100}))
	assert.Equal(t, Hit{Kind: HitBody, CardID: "card-2"}, layout.HitTest(Point{X: 170, Y: 120}))
}

func TestLayout_HitTestTopmostCardWins(t *testing.T) {
	b, layout := placedBoard()
	b.UpdateCardPosition("card-2", 50, 0)

	assert.Equal(t, "card-2", layout.HitTest(Point{X: 100, Y: 10}).CardID)
}

func TestLayout_Slop(t *testing.T) {
	_, layout := placedBoard()
	p := Point{X: 205, Y: 115}

	assert.Equal(t, HitNone, layout.HitTest(p).Kind)
	layout.Slop = 10
	assert.Equal(t, HitConnector, layout.HitTest(p).Kind)
}
