package main

import (
	"math"
	"strings"

	"cardboard/internal/board"

	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

// Renderer draws a board onto a character grid. Positions are board units;
// one cell covers cellW x cellH units.
type Renderer struct {
	board *board.Board
	geom  board.Geometry
	cellW float64
	cellH float64
}

func NewRenderer(b *board.Board, geom board.Geometry, cellW, cellH float64) *Renderer {
	return &Renderer{board: b, geom: geom, cellW: cellW, cellH: cellH}
}

type renderState struct {
	panX     int
	panY     int
	selected string
	drag     *board.DragState
	editID   string
	editText string
}

type cell struct {
	X, Y int
}

// cellBox is a card rectangle snapped to cells, inclusive on all sides.
type cellBox struct {
	left, top, right, bottom int
}

func (r *Renderer) pointCell(p board.Point) cell {
	return cell{X: int(math.Floor(p.X / r.cellW)), Y: int(math.Floor(p.Y / r.cellH))}
}

func (r *Renderer) snapX(v float64) int {
	return int(math.Round(v / r.cellW))
}

func (r *Renderer) snapY(v float64) int {
	return int(math.Round(v / r.cellH))
}

func (r *Renderer) cardBox(c board.Card) cellBox {
	return cellBox{
		left:   r.snapX(c.X),
		top:    r.snapY(c.Y),
		right:  r.snapX(c.X+c.Width) - 1,
		bottom: r.snapY(c.Y+c.Height) - 1,
	}
}

func (r *Renderer) Render(width, height int, st renderState) []string {
	if height < 1 {
		height = 1
	}
	if width < 1 {
		width = 1
	}

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", width))
	}

	cards := r.board.Cards()
	for _, card := range cards {
		if card.ID == st.editID {
			card.Text = st.editText + "█"
		}
		r.drawCard(grid, card, card.ID == st.selected, st.panX, st.panY)
	}

	for _, conn := range r.board.Connections() {
		from, okFrom := r.geom.ConnectorCenter(conn.Start)
		to, okTo := r.geom.ConnectorCenter(conn.End)
		if !okFrom || !okTo {
			continue
		}
		r.drawConnection(grid, from, to, false, st.panX, st.panY)
	}

	for _, card := range cards {
		if center, ok := r.geom.ConnectorCenter(card.ID); ok {
			c := r.pointCell(center)
			setCell(grid, c.X-st.panX, c.Y-st.panY, '●')
		}
	}

	if st.drag != nil {
		r.drawConnection(grid, st.drag.Anchor, st.drag.Cursor, true, st.panX, st.panY)
	}

	lines := make([]string, height)
	for i, row := range grid {
		lines[i] = string(row)
	}
	return lines
}

func (r *Renderer) drawCard(grid [][]rune, c board.Card, selected bool, panX, panY int) {
	box := r.cardBox(c)
	box.left -= panX
	box.right -= panX
	box.top -= panY
	box.bottom -= panY

	horizontal, vertical := '─', '│'
	corners := [4]rune{'┌', '┐', '└', '┘'}
	if selected {
		horizontal, vertical = '#', '#'
		corners = [4]rune{'#', '#', '#', '#'}
	}

	for y := box.top; y <= box.bottom; y++ {
		for x := box.left; x <= box.right; x++ {
			var ch rune = ' '
			switch {
			case y == box.top && x == box.left:
				ch = corners[0]
			case y == box.top && x == box.right:
				ch = corners[1]
			case y == box.bottom && x == box.left:
				ch = corners[2]
			case y == box.bottom && x == box.right:
				ch = corners[3]
			case y == box.top || y == box.bottom:
				ch = horizontal
			case x == box.left || x == box.right:
				ch = vertical
			}
			setCell(grid, x, y, ch)
		}
	}
	setCell(grid, box.right, box.bottom, '◢')

	inner := box.right - box.left - 1
	if inner < 1 {
		return
	}
	writeText(grid, box.left+1, box.top+1, truncate.String("Card "+c.ID, uint(inner)))

	buttonRow := r.snapY(c.Y+c.Height-board.ButtonRowOffset) - panY
	writeText(grid, r.snapX(c.X+board.ShowMoreOffset)-panX, buttonRow, "[more]")
	writeText(grid, r.snapX(c.X+board.DeleteOffset)-panX, buttonRow, "[del]")

	row := box.top + 2
	for _, line := range strings.Split(wordwrap.String(c.Text, inner), "\n") {
		if row >= buttonRow {
			break
		}
		writeText(grid, box.left+1, row, truncate.String(line, uint(inner)))
		row++
	}
}

// drawConnection draws a straight line between two board points with an
// arrowhead at the far end. Dashed lines leave every other cell empty.
func (r *Renderer) drawConnection(grid [][]rune, from, to board.Point, dashed bool, panX, panY int) {
	a := r.pointCell(from)
	b := r.pointCell(to)
	path := linePath(cell{a.X - panX, a.Y - panY}, cell{b.X - panX, b.Y - panY})
	if len(path) < 2 {
		return
	}

	dx, dy := b.X-a.X, b.Y-a.Y
	glyph := lineGlyph(dx, dy)
	for i, c := range path {
		if dashed && i%2 == 1 {
			continue
		}
		setCell(grid, c.X, c.Y, glyph)
	}

	// Committed lines end on a connector dot, so the head sits one cell short.
	head := path[len(path)-1]
	if !dashed {
		head = path[len(path)-2]
	}
	setCell(grid, head.X, head.Y, arrowGlyph(dx, dy))
}

// linePath walks the cells from a to b inclusive (Bresenham).
func linePath(a, b cell) []cell {
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}

	path := make([]cell, 0, max(dx, -dy)+1)
	err := dx + dy
	x, y := a.X, a.Y
	for {
		path = append(path, cell{x, y})
		if x == b.X && y == b.Y {
			return path
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func lineGlyph(dx, dy int) rune {
	ax, ay := abs(dx), abs(dy)
	switch {
	case ay*2 < ax:
		return '─'
	case ax*2 < ay:
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

func arrowGlyph(dx, dy int) rune {
	if abs(dx) >= abs(dy) {
		if dx >= 0 {
			return '▶'
		}
		return '◀'
	}
	if dy > 0 {
		return '▼'
	}
	return '▲'
}

func writeText(grid [][]rune, x, y int, text string) {
	i := 0
	for _, ch := range text {
		setCell(grid, x+i, y, ch)
		i++
	}
}

func setCell(grid [][]rune, x, y int, ch rune) {
	if y >= 0 && y < len(grid) && x >= 0 && x < len(grid[y]) {
		grid[y][x] = ch
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
