package board

type Point struct {
	X, Y float64
}

type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Expand grows the rect by d on every side; a negative d shrinks it.
func (r Rect) Expand(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, W: r.W + 2*d, H: r.H + 2*d}
}

func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// RightMid is the midpoint of the right edge.
func (r Rect) RightMid() Point {
	return Point{X: r.X + r.W, Y: r.Y + r.H/2}
}

// Geometry answers where things are on the canvas. Lookups fail for cards
// that do not exist; callers treat that as "nothing to draw" rather than an
// error.
type Geometry interface {
	CardBounds(id string) (Rect, bool)
	ConnectorCenter(id string) (Point, bool)
}

// Card chrome, relative to the card's upper-left corner.
const (
	HandleHeight     = 40.0
	ButtonRowOffset  = 40.0 // from the bottom edge
	ButtonHeight     = 20.0
	ShowMoreOffset   = 10.0
	ShowMoreWidth    = 60.0
	DeleteOffset     = 80.0
	DeleteWidth      = 50.0
	ResizeHandleSize = 20.0

	// The connector dot hangs over the right edge: 15 wide, 10 of it outside.
	ConnectorSize     = 15.0
	ConnectorOverhang = 10.0
)

type HitKind int

const (
	HitNone HitKind = iota
	HitConnector
	HitDelete
	HitShowMore
	HitResize
	HitHandle
	HitBody
)

func (k HitKind) String() string {
	switch k {
	case HitConnector:
		return "connector"
	case HitDelete:
		return "delete"
	case HitShowMore:
		return "show-more"
	case HitResize:
		return "resize"
	case HitHandle:
		return "handle"
	case HitBody:
		return "body"
	default:
		return "none"
	}
}

type Hit struct {
	Kind   HitKind
	CardID string
}

// Layout derives every card region from stored card geometry. Slop widens
// the connector target, which is smaller than a terminal cell.
type Layout struct {
	board *Board
	Slop  float64
}

func NewLayout(b *Board) *Layout {
	return &Layout{board: b}
}

func (l *Layout) CardBounds(id string) (Rect, bool) {
	card, ok := l.board.Card(id)
	if !ok {
		return Rect{}, false
	}
	return card.Bounds(), true
}

func (l *Layout) ConnectorCenter(id string) (Point, bool) {
	r, ok := l.ConnectorRect(id)
	if !ok {
		return Point{}, false
	}
	return r.Center(), true
}

func (l *Layout) ConnectorRect(id string) (Rect, bool) {
	card, ok := l.board.Card(id)
	if !ok {
		return Rect{}, false
	}
	return connectorRect(card), true
}

func connectorRect(c Card) Rect {
	return Rect{
		X: c.X + c.Width + ConnectorOverhang - ConnectorSize,
		Y: c.Y + c.Height/2 - ConnectorSize/2,
		W: ConnectorSize,
		H: ConnectorSize,
	}
}

func HandleRect(c Card) Rect {
	return Rect{X: c.X, Y: c.Y, W: c.Width, H: HandleHeight}
}

func ShowMoreRect(c Card) Rect {
	return Rect{X: c.X + ShowMoreOffset, Y: c.Y + c.Height - ButtonRowOffset, W: ShowMoreWidth, H: ButtonHeight}
}

func DeleteRect(c Card) Rect {
	return Rect{X: c.X + DeleteOffset, Y: c.Y + c.Height - ButtonRowOffset, W: DeleteWidth, H: ButtonHeight}
}

func ResizeRect(c Card) Rect {
	return Rect{
		X: c.X + c.Width - ResizeHandleSize,
		Y: c.Y + c.Height - ResizeHandleSize,
		W: ResizeHandleSize,
		H: ResizeHandleSize,
	}
}

// HitTest resolves a pointer position to the single region that owns it.
// Connector dots win over everything else, then cards are searched from the
// top of the paint order down.
func (l *Layout) HitTest(p Point) Hit {
	cards := l.board.Cards()
	for i := len(cards) - 1; i >= 0; i-- {
		if connectorRect(cards[i]).Expand(l.Slop).Contains(p) {
			return Hit{Kind: HitConnector, CardID: cards[i].ID}
		}
	}
	for i := len(cards) - 1; i >= 0; i-- {
		c := cards[i]
		if !c.Bounds().Contains(p) {
			continue
		}
		switch {
		case DeleteRect(c).Contains(p):
			return Hit{Kind: HitDelete, CardID: c.ID}
		case ShowMoreRect(c).Contains(p):
			return Hit{Kind: HitShowMore, CardID: c.ID}
		case ResizeRect(c).Contains(p):
			return Hit{Kind: HitResize, CardID: c.ID}
		case HandleRect(c).Contains(p):
			return Hit{Kind: HitHandle, CardID: c.ID}
		default:
			return Hit{Kind: HitBody, CardID: c.ID}
		}
	}
	return Hit{Kind: HitNone}
}
