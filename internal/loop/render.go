package loop

import (
	"github.com/tomz197/starcatch/internal/draw"
	"github.com/tomz197/starcatch/internal/loop/config"
	"github.com/tomz197/starcatch/internal/object"
	"github.com/tomz197/starcatch/internal/projection"
)

// drawScene rasterises the world's renderables onto the canvas in order.
func drawScene(c *draw.Canvas, tr projection.Translator, items []object.Renderable) {
	for _, r := range items {
		x, y := tr.ToScreen(r.Position)
		center := draw.Point{X: x, Y: y}
		ppu := tr.PixelsPerUnit(r.Position[2])

		switch r.Kind {
		case object.KindBackdrop:
			c.FillCircle(center, r.Size*ppu/2, draw.Gray(r.Scale*config.BackdropDim))
		case object.KindStar:
			c.FillCircle(center, r.Size*r.Scale*ppu/2, draw.ColorStar)
		case object.KindPlayer:
			color := draw.ColorPlayer
			if r.Appearance == object.AppearanceFlash {
				color = draw.ColorFlash
			}
			pts := draw.RotatedSquare(c.BorrowPoints(4), center, r.Size*r.Scale*ppu, r.Rotation)
			c.DrawPolygon(pts, color, true)
		}
	}
}
