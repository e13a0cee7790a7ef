package core

import (
	"math"
	"unicode/utf8"
)

// Surface is the drawing target the game renders onto. Coordinates are in
// canvas units; text is positioned by its left baseline like an HTML canvas.
type Surface interface {
	Width() float64
	Height() float64
	Clear()
	FillRect(x, y, w, h float64, c Color)
	FillText(text string, x, y, size float64, c Color)
	// MeasureText returns the width of text and the height of one line of it.
	MeasureText(text string, size float64) (w, h float64)
}

// FillChar is the rune used for filled rectangles on a terminal.
const FillChar = '█'

// CanvasSurface maps a fixed-size canvas onto a terminal Screen.
// Each cell covers canvasW/cols by canvasH/rows canvas units.
type CanvasSurface struct {
	screen *Screen
	w, h   float64
}

var _ Surface = (*CanvasSurface)(nil)

// NewCanvasSurface wraps screen so it can be drawn in canvas units.
func NewCanvasSurface(screen *Screen, canvasW, canvasH float64) *CanvasSurface {
	return &CanvasSurface{screen: screen, w: canvasW, h: canvasH}
}

// Screen returns the underlying cell buffer.
func (s *CanvasSurface) Screen() *Screen {
	return s.screen
}

// Width returns the canvas width.
func (s *CanvasSurface) Width() float64 {
	return s.w
}

// Height returns the canvas height.
func (s *CanvasSurface) Height() float64 {
	return s.h
}

// toCells converts a canvas point to fractional cell coordinates.
func (s *CanvasSurface) toCells(x, y float64) (float64, float64) {
	if s.w <= 0 || s.h <= 0 {
		return 0, 0
	}
	return x * float64(s.screen.Width()) / s.w, y * float64(s.screen.Height()) / s.h
}

// Clear blanks the screen.
func (s *CanvasSurface) Clear() {
	s.screen.Clear()
}

// FillRect fills every cell the rectangle covers. Any visible rectangle
// occupies at least one cell.
func (s *CanvasSurface) FillRect(x, y, w, h float64, c Color) {
	cx0, cy0 := s.toCells(x, y)
	cx1, cy1 := s.toCells(x+w, y+h)
	x0 := int(math.Floor(cx0))
	y0 := int(math.Floor(cy0))
	x1 := max(x0+1, int(math.Floor(cx1)))
	y1 := max(y0+1, int(math.Floor(cy1)))
	s.screen.FillCells(x0, y0, x1, y1, FillChar, c)
}

// FillText writes text on the row just above its baseline. Terminal glyphs
// have a fixed size, so size only affects MeasureText.
func (s *CanvasSurface) FillText(text string, x, y, _ float64, c Color) {
	cx, cy := s.toCells(x, y)
	col := int(math.Floor(cx))
	row := max(0, int(math.Ceil(cy))-1)
	s.screen.DrawText(col, row, text, c)
}

// MeasureText reports the canvas-unit extent of text. A line is never shorter
// than one terminal row.
func (s *CanvasSurface) MeasureText(text string, size float64) (float64, float64) {
	cols, rows := float64(s.screen.Width()), float64(s.screen.Height())
	if cols == 0 || rows == 0 || s.w <= 0 || s.h <= 0 {
		return 0, size
	}
	n := float64(utf8.RuneCountInString(text))
	return n * s.w / cols, math.Max(size, s.h/rows)
}
