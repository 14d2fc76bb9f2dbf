package draw

import (
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Color is an xterm 256-color palette index. ColorNone leaves a pixel empty.
type Color uint8

// ColorNone marks an unset pixel.
const ColorNone Color = 0

// Canvas is a colour drawing buffer with 2x vertical resolution using
// half-block characters. Pixel (0,0) is the top-left half of the first cell.
type Canvas struct {
	termWidth      int     // Terminal columns covered by the canvas
	termHeight     int     // Terminal rows covered by the canvas
	subPixelHeight int     // termHeight * 2
	pixels         []Color // Flat slice: [y * termWidth + x]
	prev           []cell  // Cells as last rendered, for diffing
	forceRedraw    bool

	// Offset for centering the render area when terminal is larger than max resolution.
	// These are 0-based terminal offsets (columns/rows to skip).
	offsetCol int
	offsetRow int

	// Reusable buffers to reduce allocations
	renderBuf       strings.Builder
	numBuf          [20]byte
	intersectionBuf []float64
	polygonBuf      []Point
}

// cell is the pair of half-block colours shown in one terminal cell.
type cell struct {
	top, bottom Color
}

// NewCanvas creates a canvas covering width x height terminal cells.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{}
	c.Resize(width, height)
	return c
}

// Resize updates the canvas for new terminal dimensions. The next Render
// redraws every cell.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth < 0 {
		termWidth = 0
	}
	if termHeight < 0 {
		termHeight = 0
	}
	if termWidth == c.termWidth && termHeight == c.termHeight && c.pixels != nil {
		return
	}
	c.termWidth = termWidth
	c.termHeight = termHeight
	c.subPixelHeight = termHeight * 2
	c.pixels = make([]Color, c.subPixelHeight*termWidth)
	c.prev = make([]cell, termHeight*termWidth)
	c.forceRedraw = true
}

// ForceRedraw makes the next Render write every cell, not just the changed ones.
// Call it after anything else has written over the canvas area.
func (c *Canvas) ForceRedraw() {
	c.forceRedraw = true
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.termWidth
}

// Height returns the canvas height in pixels (two per terminal row).
func (c *Canvas) Height() int {
	return c.subPixelHeight
}

// Set colours one pixel. Out of range coordinates are ignored.
func (c *Canvas) Set(x, y int, color Color) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = color
	}
}

// DrawLine draws a line between two pixel positions using Bresenham's algorithm.
func (c *Canvas) DrawLine(p1, p2 Point, color Color) {
	x1, y1 := int(math.Round(p1.X)), int(math.Round(p1.Y))
	x2, y2 := int(math.Round(p2.X)), int(math.Round(p2.Y))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.Set(x1, y1, color)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawPolygon draws a polygon on the canvas.
// If filled is true, the interior is filled using scanline algorithm.
func (c *Canvas) DrawPolygon(points []Point, color Color, filled bool) {
	if len(points) < 3 {
		return
	}

	if filled {
		c.fillPolygon(points, color)
	}

	n := len(points)
	for i := 0; i < n; i++ {
		c.DrawLine(points[i], points[(i+1)%n], color)
	}
}

// fillPolygon fills a polygon using scanline algorithm.
func (c *Canvas) fillPolygon(points []Point, color Color) {
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	yStart := max(int(math.Floor(minY)), 0)
	yEnd := min(int(math.Ceil(maxY)), c.subPixelHeight-1)

	for y := yStart; y <= yEnd; y++ {
		scanY := float64(y) + 0.5

		intersections := c.intersectionBuf[:0]

		n := len(points)
		for i := 0; i < n; i++ {
			p1 := points[i]
			p2 := points[(i+1)%n]

			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				x := p1.X + t*(p2.X-p1.X)
				intersections = append(intersections, x)
			}
		}

		// Store back in case it grew
		c.intersectionBuf = intersections

		sort.Float64s(intersections)

		for i := 0; i+1 < len(intersections); i += 2 {
			xStart := int(math.Ceil(intersections[i]))
			xEnd := int(math.Floor(intersections[i+1]))
			for x := xStart; x <= xEnd; x++ {
				c.Set(x, y, color)
			}
		}
	}
}

// FillCircle fills every pixel whose centre lies within r of the centre.
// Circles smaller than a pixel still set the pixel under the centre.
func (c *Canvas) FillCircle(center Point, r float64, color Color) {
	if r < 0.5 {
		c.Set(int(math.Floor(center.X)), int(math.Floor(center.Y)), color)
		return
	}
	yStart := max(int(math.Floor(center.Y-r)), 0)
	yEnd := min(int(math.Ceil(center.Y+r)), c.subPixelHeight-1)
	r2 := r * r
	for y := yStart; y <= yEnd; y++ {
		dy := float64(y) + 0.5 - center.Y
		if dy*dy > r2 {
			continue
		}
		half := math.Sqrt(r2 - dy*dy)
		xStart := int(math.Ceil(center.X - half - 0.5))
		xEnd := int(math.Floor(center.X + half - 0.5))
		for x := xStart; x <= xEnd; x++ {
			c.Set(x, y, color)
		}
	}
}

// Render outputs the cells that changed since the last Render using
// half-block characters and 256-colour escapes.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()

	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth

		for col := 0; col < c.termWidth; col++ {
			cur := cell{top: c.pixels[topOffset+col], bottom: c.pixels[bottomOffset+col]}
			idx := row*c.termWidth + col
			if !c.forceRedraw && c.prev[idx] == cur {
				continue
			}
			c.prev[idx] = cur
			if c.forceRedraw && cur == (cell{}) {
				continue // Screen was cleared
			}
			c.writeCell(row, col, cur)
		}
	}
	c.forceRedraw = false

	writeChunks(w, c.renderBuf.String())
}

func (c *Canvas) writeCell(row, col int, cl cell) {
	b := &c.renderBuf
	b.WriteString("\033[")
	b.Write(strconv.AppendInt(c.numBuf[:0], int64(row+1+c.offsetRow), 10))
	b.WriteByte(';')
	b.Write(strconv.AppendInt(c.numBuf[:0], int64(col+1+c.offsetCol), 10))
	b.WriteByte('H')

	switch {
	case cl.top == ColorNone && cl.bottom == ColorNone:
		b.WriteByte(' ')
		return
	case cl.top == cl.bottom:
		c.writeFg(cl.top)
		b.WriteRune(BlockFull)
	case cl.bottom == ColorNone:
		c.writeFg(cl.top)
		b.WriteRune(BlockUpperHalf)
	case cl.top == ColorNone:
		c.writeFg(cl.bottom)
		b.WriteRune(BlockLowerHalf)
	default:
		c.writeFg(cl.top)
		b.WriteString("\033[48;5;")
		b.Write(strconv.AppendInt(c.numBuf[:0], int64(cl.bottom), 10))
		b.WriteByte('m')
		b.WriteRune(BlockUpperHalf)
	}
	b.WriteString(resetColor)
}

func (c *Canvas) writeFg(color Color) {
	c.renderBuf.WriteString("\033[38;5;")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(color), 10))
	c.renderBuf.WriteByte('m')
}

const resetColor = "\033[0m"

// RenderBorder draws a box border around the canvas area when the terminal
// exceeds the max render resolution on either axis.
// Draws horizontal borders when there is vertical offset, vertical borders
// when there is horizontal offset, and corners when both are present.
func (c *Canvas) RenderBorder(w io.Writer) {
	hasH := c.offsetCol >= 1 // Room for left/right vertical bars
	hasV := c.offsetRow >= 1 // Room for top/bottom horizontal bars

	// Border positions (1-based terminal coordinates)
	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1

	var buf strings.Builder

	if hasV {
		line := strings.Repeat("─", c.termWidth)
		if hasH {
			buf.WriteString(moveTo(left, top) + "┌" + line + "┐")
			buf.WriteString(moveTo(left, bottom) + "└" + line + "┘")
		} else {
			buf.WriteString(moveTo(c.offsetCol+1, top) + line)
			buf.WriteString(moveTo(c.offsetCol+1, bottom) + line)
		}
	}

	if hasH {
		startRow := top + 1
		endRow := bottom
		if !hasV {
			startRow = c.offsetRow + 1
			endRow = c.offsetRow + c.termHeight + 1
		}
		for row := startRow; row < endRow; row++ {
			buf.WriteString(moveTo(left, row) + "│" + moveTo(right, row) + "│")
		}
	}

	io.WriteString(w, buf.String())
}

// TerminalWidth returns the terminal column count covered by the canvas.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the terminal row count covered by the canvas.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// TerminalToPixel converts a 1-based terminal position (as reported by the
// mouse) to the pixel at the centre of that cell, accounting for the offset.
func (c *Canvas) TerminalToPixel(col, row int) (x, y float64) {
	col -= c.offsetCol
	row -= c.offsetRow
	return float64(col-1) + 0.5, float64((row-1)*2) + 1
}

// BorrowPoints returns a reusable slice of Points with the given length.
// The returned slice is only valid until the next call to BorrowPoints.
func (c *Canvas) BorrowPoints(n int) []Point {
	if cap(c.polygonBuf) < n {
		c.polygonBuf = make([]Point, n)
	}
	return c.polygonBuf[:n]
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
