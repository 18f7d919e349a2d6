// Package viz renders cell grids in the terminal using braille
// characters, packing a 2x4 block of cells into each rune.
package viz

import "strings"

// Braille patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a grid of braille runes addressed in sub-pixel coordinates:
// (Width*2) x (Height*4) dots.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

// NewCanvas allocates an empty canvas of w by h characters.
func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
	return c
}

// Set lights the dot at sub-pixel coordinates (x, y). Out-of-range
// coordinates are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// String renders the canvas as newline-separated rows.
func (c *Canvas) String() string {
	var sb strings.Builder
	for _, row := range c.Grid {
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// DrawCells maps a w by h grid of binary cells onto a canvas, one cell
// per braille dot.
func DrawCells(cells []uint8, w, h int) *Canvas {
	c := NewCanvas((w+1)/2, (h+3)/4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if cells[y*w+x] != 0 {
				c.Set(x, y)
			}
		}
	}
	return c
}
