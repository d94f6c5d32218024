package ballicon

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
	"github.com/tennismath/ballicon/utils"
)

// Supersample is the factor the canvas is enlarged by before downscaling.
const Supersample = 4

const (
	paddingRatio   = 0.15
	seamWidthRatio = 0.035
	minSeamWidth   = 4
)

// The icon palette.
var (
	BackgroundColor = color.NRGBA{R: 26, G: 58, B: 46, A: 255}
	BallColor       = color.NRGBA{R: 255, G: 215, B: 0, A: 255}
	SeamColor       = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

var (
	// ErrInvalidSize is returned when the requested icon size is not a positive integer.
	ErrInvalidSize = errors.New("icon size must be a positive integer")
	// ErrUnknownBackend is returned for an unsupported rasterizer backend name.
	ErrUnknownBackend = errors.New("unknown rasterizer backend")
)

// Geometry holds the measures of the icon drawn on a supersampled canvas.
type Geometry struct {
	Side      int
	Padding   float64
	Center    float64
	Radius    float64
	SeamWidth float64
}

// NewGeometry computes the ball and seam measures for a square canvas of the given side.
func NewGeometry(side int) Geometry {
	s := float64(side)
	padding := s * paddingRatio

	return Geometry{
		Side:      side,
		Padding:   padding,
		Center:    s / 2,
		Radius:    (s - 2*padding) / 2,
		SeamWidth: float64(utils.Max(minSeamWidth, int(math.Round(s*seamWidthRatio)))),
	}
}

// DesignSpace returns the mapping of the logical icon coordinates onto the ball.
func (g Geometry) DesignSpace() DesignSpace {
	return NewDesignSpace(g.Center, g.Center, g.Radius)
}

// Renderer draws the tennis ball icon. The zero value is ready to use
// and paints with the Vector backend.
type Renderer struct {
	Backend Backend
}

// NewRenderer returns a Renderer painting with the provided backend.
func NewRenderer(b Backend) *Renderer {
	return &Renderer{Backend: b}
}

// Render draws the icon with the default backend. See Renderer.Render.
func Render(size int) (*image.NRGBA, error) {
	return (&Renderer{}).Render(size)
}

// Render draws the icon on a canvas Supersample times larger than size,
// then downscales it with a Lanczos filter to exactly size x size pixels.
// The result depends only on size and the backend.
func (r *Renderer) Render(size int) (*image.NRGBA, error) {
	canvas, err := r.Supersampled(size)
	if err != nil {
		return nil, err
	}
	return imaging.Resize(canvas, size, size, imaging.Lanczos), nil
}

// Supersampled draws the icon on the full resolution working canvas,
// before any downscaling takes place.
func (r *Renderer) Supersampled(size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	side := size * Supersample
	canvas := image.NewRGBA(image.Rect(0, 0, side, side))

	p, err := NewPainter(r.Backend, canvas)
	if err != nil {
		return nil, err
	}
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(BackgroundColor), image.Point{}, draw.Src)

	g := NewGeometry(side)
	p.FillCircle(g.Center, g.Center, g.Radius, BallColor)

	ds := g.DesignSpace()
	for _, s := range Seams() {
		p.StrokePolyline(ds.MapAll(s.Flatten()), g.SeamWidth, SeamColor)
	}
	return canvas, nil
}
