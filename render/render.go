// Package render draws a terramap.Map as an image for debugging. It is not
// part of the analysis contract.
package render

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/katalvlaran/terra/altitude"
	"github.com/katalvlaran/terra/base"
	"github.com/katalvlaran/terra/choke"
	"github.com/katalvlaran/terra/terrain"
	"github.com/katalvlaran/terra/terramap"
)

// ErrNilMap indicates a nil map.
var ErrNilMap = errors.New("render: map is nil")

// Options configures rendering.
type Options struct {
	// Scale is the number of image pixels per walk cell side.
	Scale int
	// Altitude shades walkable cells by altitude instead of by area.
	Altitude bool
}

// DefaultOptions returns Scale=1, area colouring.
func DefaultOptions() Options {
	return Options{Scale: 1}
}

var (
	colorHole       = color.RGBA{R: 60, G: 30, B: 30, A: 255}
	colorBorder     = color.RGBA{R: 90, G: 90, B: 90, A: 255}
	colorUnwalkable = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	colorFrontier   = color.RGBA{R: 230, G: 40, B: 40, A: 255}
	colorEnd        = color.RGBA{R: 250, G: 220, B: 30, A: 255}
	colorBase       = color.RGBA{R: 40, G: 90, B: 240, A: 255}

	areaPalette = []color.RGBA{
		{R: 102, G: 166, B: 30, A: 255},
		{R: 27, G: 158, B: 119, A: 255},
		{R: 117, G: 112, B: 179, A: 255},
		{R: 231, G: 41, B: 138, A: 255},
		{R: 230, G: 171, B: 2, A: 255},
		{R: 166, G: 118, B: 29, A: 255},
		{R: 217, G: 95, B: 2, A: 255},
		{R: 102, G: 102, B: 102, A: 255},
	}
)

// Image draws m into a new image of WalkWidth×WalkHeight cells.
func Image(m *terramap.Map, opts Options) (*image.RGBA, error) {
	if m == nil {
		return nil, ErrNilMap
	}
	scale := max(opts.Scale, 1)
	d := m.Dims()
	img := image.NewRGBA(image.Rect(0, 0, d.WalkWidth()*scale, d.WalkHeight()*scale))
	maxAlt := max(m.MaxAltitude(), 1)

	for y := 0; y < d.WalkHeight(); y++ {
		for x := 0; x < d.WalkWidth(); x++ {
			w := terrain.WalkPosition{X: x, Y: y}
			fill(img, w, scale, cellColor(m, w, maxAlt, opts.Altitude))
		}
	}
	for _, cp := range m.Chokepoints() {
		drawChokepoint(img, m, cp, scale)
	}
	for _, b := range m.Bases() {
		drawBase(img, b, scale)
	}
	return img, nil
}

// PNG encodes the rendered map to w.
func PNG(w io.Writer, m *terramap.Map, opts Options) error {
	img, err := Image(m, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

func cellColor(m *terramap.Map, w terrain.WalkPosition, maxAlt int32, byAltitude bool) color.RGBA {
	alt := m.Altitude(w)
	switch alt.Kind {
	case altitude.Hole:
		return colorHole
	case altitude.Border:
		return colorBorder
	case altitude.Walkable:
	default:
		return colorUnwalkable
	}

	shade := uint8(80 + 175*int64(alt.Value)/int64(maxAlt))
	if byAltitude {
		return color.RGBA{R: shade, G: shade, B: shade, A: 255}
	}
	id := m.AreaID(w)
	if id == 0 {
		return color.RGBA{R: shade, G: shade, B: shade, A: 255}
	}
	c := areaPalette[int(id-1)%len(areaPalette)]
	return color.RGBA{
		R: uint8(uint16(c.R) * uint16(shade) / 255),
		G: uint8(uint16(c.G) * uint16(shade) / 255),
		B: uint8(uint16(c.B) * uint16(shade) / 255),
		A: 255,
	}
}

func fill(img *image.RGBA, w terrain.WalkPosition, scale int, c color.RGBA) {
	for dy := 0; dy < scale; dy++ {
		for dx := 0; dx < scale; dx++ {
			img.SetRGBA(w.X*scale+dx, w.Y*scale+dy, c)
		}
	}
}

func drawChokepoint(img *image.RGBA, m *terramap.Map, cp choke.Chokepoint, scale int) {
	width := m.Dims().WalkWidth()
	for _, i := range cp.Frontier {
		fill(img, terrain.WalkPosition{X: i % width, Y: i / width}, scale, colorFrontier)
	}
	fill(img, cp.Pos(choke.End1), scale, colorEnd)
	fill(img, cp.Pos(choke.End2), scale, colorEnd)
}

// drawBase outlines the hall footprint.
func drawBase(img *image.RGBA, b base.Base, scale int) {
	lo := b.Location.ToWalk()
	hi := b.Location.Add(base.HallSize).ToWalk()
	for x := lo.X; x < hi.X; x++ {
		fill(img, terrain.WalkPosition{X: x, Y: lo.Y}, scale, colorBase)
		fill(img, terrain.WalkPosition{X: x, Y: hi.Y - 1}, scale, colorBase)
	}
	for y := lo.Y; y < hi.Y; y++ {
		fill(img, terrain.WalkPosition{X: lo.X, Y: y}, scale, colorBase)
		fill(img, terrain.WalkPosition{X: hi.X - 1, Y: y}, scale, colorBase)
	}
}
