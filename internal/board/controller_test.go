package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// twoCards is the add, add scenario: card-1 at the origin, card-2 to its right.
func twoCards(t *testing.T) (*Board, *Layout, *Controller) {
	t.Helper()
	b := newTestBoard()
	require.Equal(t, "card-1", b.AddCard().ID)
	require.Equal(t, "card-2", b.AddCard().ID)
	b.UpdateCardPosition("card-1", 0, 0)
	b.UpdateCardPosition("card-2", 400, 0)
	layout := NewLayout(b)
	return b, layout, NewController(b, layout, layout, zap.NewNop())
}

type missingGeometry struct{}

func (missingGeometry) CardBounds(string) (Rect, bool)       { return Rect{}, false }
func (missingGeometry) ConnectorCenter(string) (Point, bool) { return Point{}, false }

func TestController_ConnectScenario(t *testing.T) {
	b, _, c := twoCards(t)

	require.True(t, c.StartConnection("card-1"))
	drag, ok := c.Drag()
	require.True(t, ok)
	assert.Equal(t, "card-1", drag.StartID)
	assert.Equal(t, Point{X: 200, Y: 100}, drag.Anchor)
	assert.Equal(t, drag.Anchor, drag.Cursor)

	c.UpdateCursor(Point{X: 300, Y: 120})
	drag, _ = c.Drag()
	assert.Equal(t, Point{X: 300, Y: 120}, drag.Cursor)
	assert.Equal(t, Point{X: 200, Y: 100}, drag.Anchor)

	conn, ok := c.CompleteConnection("card-2")
	assert.True(t, ok)
	assert.Equal(t, Connection{Start: "card-1", End: "card-2"}, conn)
	assert.Equal(t, []Connection{{Start: "card-1", End: "card-2"}}, b.Connections())
	assert.False(t, c.Dragging())

	b.DeleteCard("card-1")
	cards := b.Cards()
	require.Len(t, cards, 1)
	assert.Equal(t, "card-2", cards[0].ID)
	assert.Empty(t, b.Connections())
}

func TestController_SelfConnectionDiscarded(t *testing.T) {
	b, _, c := twoCards(t)

	require.True(t, c.StartConnection("card-1"))
	_, ok := c.CompleteConnection("card-1")

	assert.False(t, ok)
	assert.Empty(t, b.Connections())
	assert.False(t, c.Dragging())
}

func TestController_CompleteWhileIdle(t *testing.T) {
	b, _, c := twoCards(t)

	_, ok := c.CompleteConnection("card-2")

	assert.False(t, ok)
	assert.Empty(t, b.Connections())
}

func TestController_UpdateWhileIdleIsIgnored(t *testing.T) {
	_, _, c := twoCards(t)

	c.UpdateCursor(Point{X: 10, Y: 10})

	_, ok := c.Drag()
	assert.False(t, ok)
}

func TestController_StartWhileDraggingIsIgnored(t *testing.T) {
	_, _, c := twoCards(t)

	require.True(t, c.StartConnection("card-1"))
	assert.False(t, c.StartConnection("card-2"))

	drag, _ := c.Drag()
	assert.Equal(t, "card-1", drag.StartID)
}

func TestController_StartWithoutGeometry(t *testing.T) {
	b, layout, _ := twoCards(t)
	c := NewController(b, missingGeometry{}, layout, nil)

	assert.False(t, c.StartConnection("card-1"))
	assert.False(t, c.Dragging())

	_, _, c = twoCards(t)
	assert.False(t, c.StartConnection("card-404"))
	assert.False(t, c.Dragging())
}

func TestController_PointerConnect(t *testing.T) {
	b, layout, c := twoCards(t)
	from, _ := layout.ConnectorCenter("card-1")
	to, _ := layout.ConnectorCenter("card-2")

	ev := c.PointerDown(from)
	assert.Equal(t, Event{Kind: EventConnectStarted, CardID: "card-1"}, ev)

	c.PointerMove(Point{X: 350, Y: 150})
	drag, _ := c.Drag()
	assert.Equal(t, Point{X: 350, Y: 150}, drag.Cursor)

	ev = c.PointerUp(to)
	assert.Equal(t, EventConnected, ev.Kind)
	assert.Equal(t, Connection{Start: "card-1", End: "card-2"}, ev.Connection)
	assert.Equal(t, []Connection{{Start: "card-1", End: "card-2"}}, b.Connections())
	assert.False(t, c.Dragging())
}

func TestController_PointerUpOutsideConnectorAborts(t *testing.T) {
	tests := []struct {
		name string
		at   Point
	}{
		{"empty canvas", Point{X: 300, Y: 350}},
		{"card body", Point{X: 450, Y: 100}},
		{"drag handle", Point{X: 450, Y: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, layout, c := twoCards(t)
			from, _ := layout.ConnectorCenter("card-1")

			c.PointerDown(from)
			ev := c.PointerUp(tt.at)

			assert.Equal(t, EventConnectAborted, ev.Kind)
			assert.False(t, c.Dragging())
			assert.Empty(t, b.Connections())
		})
	}
}

func TestController_PointerUpOnOwnConnectorDiscards(t *testing.T) {
	b, layout, c := twoCards(t)
	from, _ := layout.ConnectorCenter("card-1")

	c.PointerDown(from)
	ev := c.PointerUp(from)

	assert.Equal(t, Event{Kind: EventConnectDiscarded, CardID: "card-1"}, ev)
	assert.Empty(t, b.Connections())
	assert.False(t, c.Dragging())
}

func TestController_ConnectorPressDoesNotMoveCard(t *testing.T) {
	b, layout, c := twoCards(t)
	from, _ := layout.ConnectorCenter("card-1")
	before, _ := b.Card("card-1")

	c.PointerDown(from)
	c.PointerMove(Point{X: 320, Y: 260})
	c.PointerUp(Point{X: 320, Y: 260})

	after, _ := b.Card("card-1")
	assert.Equal(t, before, after)
}

func TestController_MoveByHandle(t *testing.T) {
	b, _, c := twoCards(t)

	ev := c.PointerDown(Point{X: 30, Y: 10})
	assert.Equal(t, Event{Kind: EventSelected, CardID: "card-1"}, ev)
	c.PointerMove(Point{X: 80, Y: 70})

	moved, _ := b.Card("card-1")
	assert.Equal(t, 50.0, moved.X)
	assert.Equal(t, 60.0, moved.Y)

	ev = c.PointerUp(Point{X: 80, Y: 70})
	assert.Equal(t, EventMoved, ev.Kind)
	assert.Equal(t, "card-1", ev.CardID)
	assert.Equal(t, 0.0, ev.Before.X)
	assert.Equal(t, 0.0, ev.Before.Y)
}

func TestController_BodyPressDoesNotMove(t *testing.T) {
	b, _, c := twoCards(t)

	c.PointerDown(Point{X: 100, Y: 100})
	c.PointerMove(Point{X: 150, Y: 150})
	ev := c.PointerUp(Point{X: 150, Y: 150})

	assert.Equal(t, EventNone, ev.Kind)
	card, _ := b.Card("card-1")
	assert.Equal(t, 0.0, card.X)
}

func TestController_ResizeByHandle(t *testing.T) {
	b, _, c := twoCards(t)

	c.PointerDown(Point{X: 195, Y: 195})
	c.PointerMove(Point{X: 155, Y: 135})

	card, _ := b.Card("card-1")
	assert.Equal(t, 160.0, card.Width)
	assert.Equal(t, 140.0, card.Height)

	c.PointerMove(Point{X: 5, Y: 5})
	card, _ = b.Card("card-1")
	assert.Equal(t, MinCardWidth, card.Width)
	assert.Equal(t, MinCardHeight, card.Height)

	ev := c.PointerUp(Point{X: 5, Y: 5})
	assert.Equal(t, EventResized, ev.Kind)
	assert.Equal(t, DefaultCardWidth, ev.Before.Width)
}

func TestController_Buttons(t *testing.T) {
	_, _, c := twoCards(t)

	assert.Equal(t, Event{Kind: EventShowMore, CardID: "card-1"}, c.PointerDown(Point{X: 20, Y: 170}))
	assert.Equal(t, EventNone, c.PointerUp(Point{X: 20, Y: 170}).Kind)
	assert.Equal(t, Event{Kind: EventDeleteRequested, CardID: "card-2"}, c.PointerDown(Point{X: 490, Y: 170}))
}

func TestController_PressWhileDraggingIgnored(t *testing.T) {
	_, layout, c := twoCards(t)
	from, _ := layout.ConnectorCenter("card-1")
	to, _ := layout.ConnectorCenter("card-2")

	c.PointerDown(from)
	assert.Equal(t, EventNone, c.PointerDown(to).Kind)

	drag, ok := c.Drag()
	require.True(t, ok)
	assert.Equal(t, "card-1", drag.StartID)
}

func TestController_CompleteAfterStartCardDeleted(t *testing.T) {
	b, _, c := twoCards(t)

	require.True(t, c.StartConnection("card-1"))
	b.DeleteCard("card-1")
	_, ok := c.CompleteConnection("card-2")

	assert.False(t, ok)
	assert.Empty(t, b.Connections())
	assert.False(t, c.Dragging())
}

func TestController_CompleteOnMissingTarget(t *testing.T) {
	b, _, c := twoCards(t)

	require.True(t, c.StartConnection("card-1"))
	_, ok := c.CompleteConnection("card-404")

	assert.False(t, ok)
	assert.Empty(t, b.Connections())
}

func TestController_CardRemoved(t *testing.T) {
	_, layout, c := twoCards(t)
	from, _ := layout.ConnectorCenter("card-1")

	c.PointerDown(from)
	c.CardRemoved("card-2")
	assert.True(t, c.Dragging())

	c.CardRemoved("card-1")
	assert.False(t, c.Dragging())

	c.PointerDown(Point{X: 450, Y: 10})
	c.PointerMove(Point{X: 480, Y: 40})
	c.CardRemoved("card-2")
	assert.Equal(t, EventNone, c.PointerUp(Point{X: 480, Y: 40}).Kind)
}
