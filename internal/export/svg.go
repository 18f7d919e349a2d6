// Package export writes finished boards to standalone image files.
package export

import (
	"fmt"
	"strings"
)

// BoardToSVG converts a w by h grid of binary cells to an SVG document,
// one square per live cell on a white background. cellSize is the side
// length of a cell in SVG units.
func BoardToSVG(cells []uint8, w, h int, cellSize float64) string {
	if w <= 0 || h <= 0 || len(cells) != w*h {
		return ""
	}
	if cellSize <= 0 {
		cellSize = 1
	}

	width := float64(w) * cellSize
	height := float64(h) * cellSize

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#ffffff"/>
<g fill="#111111">
`, width, height, width, height))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if cells[y*w+x] == 0 {
				continue
			}
			sb.WriteString(fmt.Sprintf(`<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f"/>`,
				float64(x)*cellSize, float64(y)*cellSize, cellSize, cellSize))
			sb.WriteByte('\n')
		}
	}

	sb.WriteString("</g>\n</svg>\n")
	return sb.String()
}
