// Package tileset prerenders every image the scene needs — ground diamonds,
// extruded building blocks, tile highlights, and the rider — from a palette.
// Everything is vector-drawn at startup, so the repo ships no binary assets.
package tileset

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/cityfolio/grid"
)

var (
	whiteImage = ebiten.NewImage(3, 3)
	whiteSub   *ebiten.Image
)

func init() {
	whiteImage.Fill(color.White)
	whiteSub = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// Palette is the scene color scheme, loaded from city.yaml.
type Palette struct {
	Grass       color.Color
	Road        color.Color
	Residential color.Color
	Commercial  color.Color
	Industrial  color.Color
	Park        color.Color
	Highlight   color.Color
	Blocked     color.Color
	RiderBody   color.Color
	RiderTrim   color.Color
}

// Set holds the prerendered images for one tile size and palette.
type Set struct {
	TileW int
	TileH int

	// Ground diamonds, keyed by what sits flat on the tile. Always has
	// entries for None (grass), Road, and Park.
	Ground map[grid.BuildingType]*ebiten.Image

	// Block images for extruded buildings, anchored so the bottom TileH
	// rows align with the ground diamond.
	Block map[grid.BuildingType]*ebiten.Image

	// BlockRise is the extra height of each block image above TileH.
	BlockRise map[grid.BuildingType]int

	Highlight *ebiten.Image
	Blocked   *ebiten.Image
	Rider     *ebiten.Image
}

// New renders a fresh image set. tileW must be an even 2:1 multiple of tileH
// for the diamonds to tile cleanly, but nothing enforces it.
func New(tileW, tileH int, pal Palette) *Set {
	s := &Set{
		TileW:     tileW,
		TileH:     tileH,
		Ground:    map[grid.BuildingType]*ebiten.Image{},
		Block:     map[grid.BuildingType]*ebiten.Image{},
		BlockRise: map[grid.BuildingType]int{},
	}

	s.Ground[grid.BuildingNone] = diamond(tileW, tileH, pal.Grass)
	s.Ground[grid.BuildingRoad] = road(tileW, tileH, pal.Road)
	s.Ground[grid.BuildingPark] = park(tileW, tileH, pal.Grass, pal.Park)

	s.addBlock(grid.BuildingResidential, pal.Residential, tileH*1)
	s.addBlock(grid.BuildingCommercial, pal.Commercial, tileH*2)
	s.addBlock(grid.BuildingIndustrial, pal.Industrial, tileH*3/2)

	s.Highlight = diamond(tileW, tileH, pal.Highlight)
	s.Blocked = diamond(tileW, tileH, pal.Blocked)
	s.Rider = rider(tileW, tileH, pal.RiderBody, pal.RiderTrim)
	return s
}

func (s *Set) addBlock(b grid.BuildingType, c color.Color, rise int) {
	s.Block[b] = block(s.TileW, s.TileH, rise, c)
	s.BlockRise[b] = rise
}

// diamond fills the full 2:1 diamond of a w×h image.
func diamond(w, h int, c color.Color) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	fw, fh := float32(w), float32(h)
	var p vector.Path
	p.MoveTo(fw/2, 0)
	p.LineTo(fw, fh/2)
	p.LineTo(fw/2, fh)
	p.LineTo(0, fh/2)
	p.Close()
	fillPath(img, &p, c)
	return img
}

// road is a paved diamond with a thin center stripe.
func road(w, h int, c color.Color) *ebiten.Image {
	img := diamond(w, h, c)
	fw, fh := float32(w), float32(h)
	var p vector.Path
	p.MoveTo(fw*0.35, fh*0.425)
	p.LineTo(fw*0.65, fh*0.575)
	p.LineTo(fw*0.60, fh*0.60)
	p.LineTo(fw*0.30, fh*0.45)
	p.Close()
	fillPath(img, &p, shade(c, 1.35))
	return img
}

// park is grass with a round canopy in the middle.
func park(w, h int, grass, canopy color.Color) *ebiten.Image {
	img := diamond(w, h, grass)
	fw, fh := float32(w), float32(h)
	var p vector.Path
	p.Arc(fw/2, fh/2, fh*0.32, 0, 2*3.1415926535, vector.Clockwise)
	fillPath(img, &p, canopy)
	var trunk vector.Path
	trunk.Arc(fw/2, fh*0.62, fh*0.08, 0, 2*3.1415926535, vector.Clockwise)
	fillPath(img, &trunk, shade(canopy, 0.55))
	return img
}

// block is an extruded box: a top diamond plus left and right faces, with
// the classic two-tone shading so the iso volume reads.
func block(w, h, rise int, c color.Color) *ebiten.Image {
	img := ebiten.NewImage(w, h+rise)
	fw, fh := float32(w), float32(h)
	fr := float32(rise)

	// top face
	var top vector.Path
	top.MoveTo(fw/2, 0)
	top.LineTo(fw, fh/2)
	top.LineTo(fw/2, fh)
	top.LineTo(0, fh/2)
	top.Close()
	fillPath(img, &top, shade(c, 1.15))

	// left face
	var left vector.Path
	left.MoveTo(0, fh/2)
	left.LineTo(fw/2, fh)
	left.LineTo(fw/2, fh+fr)
	left.LineTo(0, fh/2+fr)
	left.Close()
	fillPath(img, &left, shade(c, 0.8))

	// right face
	var right vector.Path
	right.MoveTo(fw/2, fh)
	right.LineTo(fw, fh/2)
	right.LineTo(fw, fh/2+fr)
	right.LineTo(fw/2, fh+fr)
	right.Close()
	fillPath(img, &right, shade(c, 0.6))

	return img
}

// rider draws the cyclist: two wheels, a frame bar, and a head. It faces
// screen-right; the renderer mirrors it for leftward travel.
func rider(tileW, tileH int, body, trim color.Color) *ebiten.Image {
	w := tileW / 2
	h := tileH * 2
	img := ebiten.NewImage(w, h)
	fw, fh := float32(w), float32(h)

	wheelR := fh * 0.14
	wheelY := fh - wheelR - 1

	for _, cx := range []float32{fw * 0.28, fw * 0.72} {
		var wheel vector.Path
		wheel.Arc(cx, wheelY, wheelR, 0, 2*3.1415926535, vector.Clockwise)
		fillPath(img, &wheel, trim)
	}

	var frame vector.Path
	frame.MoveTo(fw*0.28, wheelY)
	frame.LineTo(fw*0.5, fh*0.52)
	frame.LineTo(fw*0.72, wheelY)
	frame.LineTo(fw*0.66, wheelY-2)
	frame.LineTo(fw*0.5, fh*0.58)
	frame.LineTo(fw*0.34, wheelY-2)
	frame.Close()
	fillPath(img, &frame, body)

	var torso vector.Path
	torso.MoveTo(fw*0.46, fh*0.52)
	torso.LineTo(fw*0.58, fh*0.24)
	torso.LineTo(fw*0.66, fh*0.28)
	torso.LineTo(fw*0.54, fh*0.56)
	torso.Close()
	fillPath(img, &torso, body)

	var head vector.Path
	head.Arc(fw*0.62, fh*0.16, fh*0.09, 0, 2*3.1415926535, vector.Clockwise)
	fillPath(img, &head, trim)

	return img
}

func fillPath(dst *ebiten.Image, p *vector.Path, c color.Color) {
	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := c.RGBA()
	cr := float32(r) / 0xffff
	cg := float32(g) / 0xffff
	cb := float32(b) / 0xffff
	ca := float32(a) / 0xffff
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = cr
		vs[i].ColorG = cg
		vs[i].ColorB = cb
		vs[i].ColorA = ca
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(vs, is, whiteSub, op)
}

// shade multiplies the RGB channels by f, clamping at full brightness.
func shade(c color.Color, f float64) color.Color {
	r, g, b, a := c.RGBA()
	mul := func(v uint32) uint8 {
		s := float64(v>>8) * f
		if s > 255 {
			s = 255
		}
		return uint8(s)
	}
	return color.NRGBA{R: mul(r), G: mul(g), B: mul(b), A: uint8(a >> 8)}
}
