package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"cardboard/internal/board"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

var errNothingToExport = errors.New("nothing to export")

const (
	exportPadding   = 20.0
	exportLineWidth = 2.0
	// Arrowhead of 10x7 in stroke-width units.
	arrowLength    = 10.0 * exportLineWidth
	arrowHalfWidth = 3.5 * exportLineWidth
)

func (m *model) exportPNG(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create %s: %w", filename, err)
	}
	if err := writePNG(file, m.board, m.layout); err != nil {
		file.Close()
		os.Remove(filename)
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close %s: %w", filename, err)
	}
	return nil
}

// writePNG draws the board at its own unit scale, one unit per pixel.
func writePNG(w io.Writer, b *board.Board, geom board.Geometry) error {
	cards := b.Cards()
	if len(cards) == 0 {
		return errNothingToExport
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, card := range cards {
		minX = math.Min(minX, card.X)
		minY = math.Min(minY, card.Y)
		maxX = math.Max(maxX, card.X+card.Width+board.ConnectorOverhang)
		maxY = math.Max(maxY, card.Y+card.Height)
	}
	originX := minX - exportPadding
	originY := minY - exportPadding
	width := int(math.Ceil(maxX - originX + exportPadding))
	height := int(math.Ceil(maxY - originY + exportPadding))

	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %w", err)
	}
	dc.SetFontFace(truetype.NewFace(ttfFont, &truetype.Options{
		Size:    12,
		DPI:     72,
		Hinting: font.HintingFull,
	}))

	for _, card := range cards {
		drawCardPNG(dc, card, originX, originY)
	}

	for _, conn := range b.Connections() {
		from, okFrom := geom.ConnectorCenter(conn.Start)
		to, okTo := geom.ConnectorCenter(conn.End)
		if !okFrom || !okTo {
			continue
		}
		drawConnectionPNG(dc, from.X-originX, from.Y-originY, to.X-originX, to.Y-originY)
	}

	for _, card := range cards {
		if center, ok := geom.ConnectorCenter(card.ID); ok {
			dc.SetRGB(0, 0, 0)
			dc.DrawCircle(center.X-originX, center.Y-originY, board.ConnectorSize/2)
			dc.Fill()
		}
	}

	return dc.EncodePNG(w)
}

func drawCardPNG(dc *gg.Context, card board.Card, originX, originY float64) {
	x := card.X - originX
	y := card.Y - originY

	dc.SetRGB(1, 1, 1)
	dc.DrawRectangle(x, y, card.Width, card.Height)
	dc.Fill()
	dc.SetRGB(0.87, 0.87, 0.87)
	dc.DrawRectangle(x, y, card.Width, board.HandleHeight)
	dc.Fill()

	dc.SetLineWidth(1)
	dc.SetRGB(0, 0, 0)
	dc.DrawRectangle(x, y, card.Width, card.Height)
	dc.Stroke()

	dc.DrawStringAnchored("Card "+card.ID, x+10, y+board.HandleHeight/2, 0, 0.5)

	textY := y + board.HandleHeight + 16
	limit := card.Y + card.Height - board.ButtonRowOffset - originY
	for _, line := range dc.WordWrap(card.Text, card.Width-20) {
		if textY > limit {
			break
		}
		dc.DrawString(line, x+10, textY)
		textY += 16
	}

	for _, button := range []struct {
		rect  board.Rect
		label string
	}{
		{board.ShowMoreRect(card), "Show More"},
		{board.DeleteRect(card), "Delete"},
	} {
		bx, by := button.rect.X-originX, button.rect.Y-originY
		dc.SetRGB(0.4, 0.4, 0.4)
		dc.DrawRoundedRectangle(bx, by, button.rect.W, button.rect.H, 3)
		dc.Stroke()
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(button.label, bx+button.rect.W/2, by+button.rect.H/2, 0.5, 0.5)
	}
}

func drawConnectionPNG(dc *gg.Context, x1, y1, x2, y2 float64) {
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length < 0.1 {
		return
	}
	dx /= length
	dy /= length

	// The marker tip sits on the end point, so the stroke stops at its base.
	baseX := x2 - arrowLength*dx
	baseY := y2 - arrowLength*dy

	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(exportLineWidth)
	dc.DrawLine(x1, y1, baseX, baseY)
	dc.Stroke()

	dc.MoveTo(x2, y2)
	dc.LineTo(baseX-arrowHalfWidth*dy, baseY+arrowHalfWidth*dx)
	dc.LineTo(baseX+arrowHalfWidth*dy, baseY-arrowHalfWidth*dx)
	dc.ClosePath()
	dc.Fill()
}

// exportVisualTXT writes the canvas as it would appear on screen, without
// selection, drag preview or edit cursor.
func (m *model) exportVisualTXT(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create %s: %w", filename, err)
	}
	if err := m.writeVisualTXT(file); err != nil {
		file.Close()
		return fmt.Errorf("write %s: %w", filename, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close %s: %w", filename, err)
	}
	return nil
}

func (m *model) writeVisualTXT(w io.Writer) error {
	width := m.width
	if width < 1 {
		width = 80
	}
	height := m.canvasHeight()

	rendered := m.renderer.Render(width, height, renderState{panX: m.panX, panY: m.panY})
	for _, line := range rendered {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
