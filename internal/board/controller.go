package board

import "go.uber.org/zap"

// DragState is an in-progress drag-to-connect gesture. Anchor is fixed when
// the drag starts; Cursor follows the pointer.
type DragState struct {
	StartID string
	Anchor  Point
	Cursor  Point
}

type EventKind int

const (
	EventNone EventKind = iota
	EventSelected
	EventConnectStarted
	EventConnected
	EventConnectDiscarded
	EventConnectAborted
	EventMoved
	EventResized
	EventShowMore
	EventDeleteRequested
)

// Event reports what a pointer event did, so the UI can record history or
// open the popup without looking at controller internals.
type Event struct {
	Kind       EventKind
	CardID     string
	Connection Connection
	// Before holds the card as it was when a move or resize began.
	Before Card
}

type HitTester interface {
	HitTest(p Point) Hit
}

type gestureKind int

const (
	gestureMove gestureKind = iota + 1
	gestureResize
)

type gesture struct {
	kind   gestureKind
	cardID string
	grab   Point
	before Card
}

// Controller owns the connector drag state machine (Idle or Dragging) and
// the move and resize gestures. At most one of them is active.
type Controller struct {
	board   *Board
	geom    Geometry
	hits    HitTester
	logger  *zap.Logger
	drag    *DragState
	gesture *gesture
}

func NewController(b *Board, geom Geometry, hits HitTester, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		board:  b,
		geom:   geom,
		hits:   hits,
		logger: logger,
	}
}

// Drag returns the in-progress connector drag, if any.
func (c *Controller) Drag() (DragState, bool) {
	if c.drag == nil {
		return DragState{}, false
	}
	return *c.drag, true
}

func (c *Controller) Dragging() bool {
	return c.drag != nil
}

// StartConnection begins a connector drag from card id. It is ignored while
// another drag is active, and it leaves the controller idle when the card's
// geometry cannot be resolved.
func (c *Controller) StartConnection(id string) bool {
	if c.drag != nil {
		c.logger.Debug("connection start ignored, drag in progress",
			zap.String("card", id),
			zap.String("active", c.drag.StartID),
		)
		return false
	}
	bounds, ok := c.geom.CardBounds(id)
	if !ok {
		c.logger.Debug("connection start without geometry", zap.String("card", id))
		return false
	}
	anchor := bounds.RightMid()
	c.drag = &DragState{StartID: id, Anchor: anchor, Cursor: anchor}
	c.logger.Debug("connection drag started", zap.String("card", id))
	return true
}

func (c *Controller) UpdateCursor(p Point) {
	if c.drag != nil {
		c.drag.Cursor = p
	}
}

// CompleteConnection resolves the drag over targetID. Self-connections are
// discarded, and so is a drag whose start or target card no longer exists.
// The controller is idle afterwards either way.
func (c *Controller) CompleteConnection(targetID string) (Connection, bool) {
	drag := c.drag
	c.drag = nil
	if drag == nil {
		return Connection{}, false
	}
	if drag.StartID == targetID {
		c.logger.Debug("self connection discarded", zap.String("card", targetID))
		return Connection{}, false
	}
	_, startOK := c.geom.CardBounds(drag.StartID)
	_, endOK := c.geom.CardBounds(targetID)
	if !startOK || !endOK {
		c.logger.Debug("connection aborted, card gone",
			zap.String("start", drag.StartID),
			zap.String("end", targetID),
		)
		return Connection{}, false
	}
	conn := c.board.AddConnection(drag.StartID, targetID)
	c.logger.Debug("connection added",
		zap.String("start", conn.Start),
		zap.String("end", conn.End),
	)
	return conn, true
}

// CardRemoved ends any drag or gesture that involves the removed card.
func (c *Controller) CardRemoved(id string) {
	if c.drag != nil && c.drag.StartID == id {
		c.Abort()
	}
	if c.gesture != nil && c.gesture.cardID == id {
		c.gesture = nil
	}
}

func (c *Controller) Abort() {
	if c.drag != nil {
		c.logger.Debug("connection drag aborted", zap.String("card", c.drag.StartID))
	}
	c.drag = nil
}

// PointerDown classifies the press once, by hit priority, and starts the
// matching gesture.
func (c *Controller) PointerDown(p Point) Event {
	if c.drag != nil {
		return Event{}
	}
	c.gesture = nil

	hit := c.hits.HitTest(p)
	switch hit.Kind {
	case HitConnector:
		if c.StartConnection(hit.CardID) {
			return Event{Kind: EventConnectStarted, CardID: hit.CardID}
		}
		return Event{}
	case HitDelete:
		return Event{Kind: EventDeleteRequested, CardID: hit.CardID}
	case HitShowMore:
		return Event{Kind: EventShowMore, CardID: hit.CardID}
	case HitResize, HitHandle:
		card, ok := c.board.Card(hit.CardID)
		if !ok {
			return Event{}
		}
		g := &gesture{kind: gestureMove, cardID: card.ID, before: card}
		if hit.Kind == HitResize {
			g.kind = gestureResize
			g.grab = Point{X: p.X - (card.X + card.Width), Y: p.Y - (card.Y + card.Height)}
		} else {
			g.grab = Point{X: p.X - card.X, Y: p.Y - card.Y}
		}
		c.gesture = g
		return Event{Kind: EventSelected, CardID: card.ID}
	case HitBody:
		return Event{Kind: EventSelected, CardID: hit.CardID}
	}
	return Event{}
}

func (c *Controller) PointerMove(p Point) {
	if c.drag != nil {
		c.UpdateCursor(p)
		return
	}
	if c.gesture == nil {
		return
	}
	switch c.gesture.kind {
	case gestureMove:
		c.board.UpdateCardPosition(c.gesture.cardID, p.X-c.gesture.grab.X, p.Y-c.gesture.grab.Y)
	case gestureResize:
		card, ok := c.board.Card(c.gesture.cardID)
		if !ok {
			return
		}
		c.board.ResizeCard(card.ID, p.X-c.gesture.grab.X-card.X, p.Y-c.gesture.grab.Y-card.Y)
	}
}

// PointerUp ends whatever gesture is active. A connector drag always ends
// here: committed or discarded over a connector, aborted anywhere else.
func (c *Controller) PointerUp(p Point) Event {
	if c.drag != nil {
		c.UpdateCursor(p)
		hit := c.hits.HitTest(p)
		if hit.Kind != HitConnector {
			c.Abort()
			return Event{Kind: EventConnectAborted}
		}
		self := c.drag.StartID == hit.CardID
		if conn, ok := c.CompleteConnection(hit.CardID); ok {
			return Event{Kind: EventConnected, CardID: hit.CardID, Connection: conn}
		}
		if !self {
			return Event{Kind: EventConnectAborted}
		}
		return Event{Kind: EventConnectDiscarded, CardID: hit.CardID}
	}

	g := c.gesture
	c.gesture = nil
	if g == nil {
		return Event{}
	}
	after, ok := c.board.Card(g.cardID)
	if !ok || after == g.before {
		return Event{}
	}
	if g.kind == gestureResize {
		return Event{Kind: EventResized, CardID: g.cardID, Before: g.before}
	}
	return Event{Kind: EventMoved, CardID: g.cardID, Before: g.before}
}
