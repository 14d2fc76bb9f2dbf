package window

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tomz197/starcatch/internal/object"
	"golang.org/x/image/font/basicfont"
)

var (
	backgroundColor = color.RGBA{0x05, 0x05, 0x10, 0xff}
	playerColor     = color.RGBA{0x00, 0xd7, 0xff, 0xff}
	flashColor      = color.RGBA{0xff, 0xff, 0xff, 0xff}
	starColor       = color.RGBA{0xff, 0xd7, 0x00, 0xff}
	textColor       = color.RGBA{0xee, 0xee, 0xee, 0xff}
)

// renderer holds reusable buffers for drawing filled paths.
type renderer struct {
	fillImg *ebiten.Image
	fillVs  []ebiten.Vertex
	fillIs  []uint16
}

func newRenderer() *renderer {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return &renderer{fillImg: img.SubImage(img.Bounds().Inset(1)).(*ebiten.Image)}
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	if g.renderer == nil {
		g.renderer = newRenderer()
	}

	if !g.started {
		g.drawTitle(screen)
		return
	}

	g.renderables = g.world.Renderables(g.renderables[:0])
	for _, r := range g.renderables {
		g.drawRenderable(screen, r)
	}

	face := basicfont.Face7x13
	text.Draw(screen, g.score, face, 10, 20, textColor)
	text.Draw(screen, g.cfg.Variant, face, g.width-10-len(g.cfg.Variant)*7, 20, textColor)
}

func (g *Game) drawRenderable(screen *ebiten.Image, r object.Renderable) {
	x, y := g.translator.ToScreen(r.Position)
	ppu := g.translator.PixelsPerUnit(r.Position[2])

	switch r.Kind {
	case object.KindBackdrop:
		v := uint8(math.Round(r.Scale * 200))
		radius := math.Max(r.Size*ppu/2, 1)
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(radius), color.RGBA{v, v, v, 0xff}, true)
	case object.KindStar:
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(r.Size*r.Scale*ppu/2), starColor, true)
	case object.KindPlayer:
		clr := playerColor
		if r.Appearance == object.AppearanceFlash {
			clr = flashColor
		}
		g.renderer.fillSquare(screen, x, y, r.Size*r.Scale*ppu, r.Rotation, clr)
	}
}

// fillSquare draws a filled square of the given side centred on (x, y), rotated by angle.
func (rd *renderer) fillSquare(dst *ebiten.Image, x, y, side, angle float64, clr color.RGBA) {
	h := side / 2
	sin, cos := math.Sincos(angle)
	corners := [4][2]float64{{-h, -h}, {h, -h}, {h, h}, {-h, h}}

	var path vector.Path
	for i, k := range corners {
		px := float32(x + k[0]*cos - k[1]*sin)
		py := float32(y + k[0]*sin + k[1]*cos)
		if i == 0 {
			path.MoveTo(px, py)
		} else {
			path.LineTo(px, py)
		}
	}
	path.Close()

	rd.fillVs, rd.fillIs = path.AppendVerticesAndIndicesForFilling(rd.fillVs[:0], rd.fillIs[:0])
	for i := range rd.fillVs {
		rd.fillVs[i].ColorR = float32(clr.R) / 255
		rd.fillVs[i].ColorG = float32(clr.G) / 255
		rd.fillVs[i].ColorB = float32(clr.B) / 255
		rd.fillVs[i].ColorA = float32(clr.A) / 255
	}
	dst.DrawTriangles(rd.fillVs, rd.fillIs, rd.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (g *Game) drawTitle(screen *ebiten.Image) {
	face := basicfont.Face7x13
	lines := []string{
		"S T A R C A T C H",
		"",
		"~ " + g.cfg.Variant + " ~",
		"",
		"Steer with the mouse, touch or arrow keys. Catch the stars.",
		"Click or press SPACE to start",
		"R restart   Q quit",
	}
	y := g.height/2 - len(lines)*18/2
	for _, line := range lines {
		text.Draw(screen, line, face, g.width/2-len(line)*7/2, y, textColor)
		y += 18
	}
}
