package ballicon

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/srwiley/rasterx"
	"github.com/tennismath/ballicon/utils"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Backend names the rasterizer used to paint the ball and the seams.
type Backend string

const (
	// Vector paints with the golang.org/x/image/vector rasterizer.
	Vector Backend = "vector"
	// Rasterx paints with the github.com/srwiley/rasterx filler and dasher.
	Rasterx Backend = "rasterx"
)

// Backends lists the supported rasterizer backends.
var Backends = []Backend{Vector, Rasterx}

// kappa is the control point distance of a cubic Bézier approximating a quarter circle.
const kappa = 0.5522847498

// Painter is implemented by the rasterizers able to draw the icon shapes
// on a supersampled canvas. All shapes are anti-aliased and composed
// over the existing canvas content.
type Painter interface {
	// FillCircle fills the disc centered at (cx, cy) with the radius r.
	FillCircle(cx, cy, r float64, c color.Color)
	// StrokePolyline strokes the open polyline with round joins and flat ends.
	StrokePolyline(pts []Point, width float64, c color.Color)
}

// NewPainter returns the Painter implemented by the backend, drawing on dst.
func NewPainter(b Backend, dst *image.RGBA) (Painter, error) {
	switch b {
	case Vector, "":
		return newVectorPainter(dst), nil
	case Rasterx:
		return newRasterxPainter(dst), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, b)
}

// ParseBackend converts a backend name to a Backend.
func ParseBackend(name string) (Backend, error) {
	b := Backend(name)
	if !utils.Contains(Backends, b) {
		return "", fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
	return b, nil
}

// vectorPainter draws with the golang.org/x/image/vector rasterizer.
// The rasterizer clamps the accumulated coverage, so overlapping sub-paths
// with the same winding direction are merged into a single shape.
type vectorPainter struct {
	dst  *image.RGBA
	z    *vector.Rasterizer
	w, h int
}

func newVectorPainter(dst *image.RGBA) *vectorPainter {
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	return &vectorPainter{
		dst: dst,
		z:   vector.NewRasterizer(w, h),
		w:   w,
		h:   h,
	}
}

func (p *vectorPainter) FillCircle(cx, cy, r float64, c color.Color) {
	if r <= 0 {
		return
	}
	p.z.Reset(p.w, p.h)
	p.circle(cx, cy, r)
	p.paint(c)
}

func (p *vectorPainter) StrokePolyline(pts []Point, width float64, c color.Color) {
	if len(pts) == 0 || width <= 0 {
		return
	}
	hw := width / 2
	p.z.Reset(p.w, p.h)

	// Every segment becomes a quad, wound in the same direction as the discs below.
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		dx, dy := b.X-a.X, b.Y-a.Y
		l := math.Hypot(dx, dy)
		if l == 0 {
			continue
		}
		nx, ny := dy/l*hw, -dx/l*hw

		p.z.MoveTo(float32(a.X+nx), float32(a.Y+ny))
		p.z.LineTo(float32(b.X+nx), float32(b.Y+ny))
		p.z.LineTo(float32(b.X-nx), float32(b.Y-ny))
		p.z.LineTo(float32(a.X-nx), float32(a.Y-ny))
		p.z.ClosePath()
	}
	// Round joins. The ends stay flat.
	if len(pts) > 2 {
		for _, pt := range pts[1 : len(pts)-1] {
			p.circle(pt.X, pt.Y, hw)
		}
	}
	p.paint(c)
}

// circle adds a closed circular sub-path made of four cubic arcs.
func (p *vectorPainter) circle(cx, cy, r float64) {
	k := r * kappa
	p.z.MoveTo(float32(cx+r), float32(cy))
	p.z.CubeTo(float32(cx+r), float32(cy+k), float32(cx+k), float32(cy+r), float32(cx), float32(cy+r))
	p.z.CubeTo(float32(cx-k), float32(cy+r), float32(cx-r), float32(cy+k), float32(cx-r), float32(cy))
	p.z.CubeTo(float32(cx-r), float32(cy-k), float32(cx-k), float32(cy-r), float32(cx), float32(cy-r))
	p.z.CubeTo(float32(cx+k), float32(cy-r), float32(cx+r), float32(cy-k), float32(cx+r), float32(cy))
	p.z.ClosePath()
}

func (p *vectorPainter) paint(c color.Color) {
	p.z.Draw(p.dst, p.dst.Bounds(), image.NewUniform(c), image.Point{})
}

// rasterxPainter draws with the github.com/srwiley/rasterx filler and dasher.
type rasterxPainter struct {
	scanner *rasterx.ScannerGV
	w, h    int
}

func newRasterxPainter(dst *image.RGBA) *rasterxPainter {
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	return &rasterxPainter{
		scanner: rasterx.NewScannerGV(w, h, dst, dst.Bounds()),
		w:       w,
		h:       h,
	}
}

func (p *rasterxPainter) FillCircle(cx, cy, r float64, c color.Color) {
	if r <= 0 {
		return
	}
	f := rasterx.NewFiller(p.w, p.h, p.scanner)
	f.SetColor(c)
	rasterx.AddCircle(cx, cy, r, f)
	f.Draw()
	f.Clear()
}

func (p *rasterxPainter) StrokePolyline(pts []Point, width float64, c color.Color) {
	if len(pts) == 0 || width <= 0 {
		return
	}
	d := rasterx.NewDasher(p.w, p.h, p.scanner)
	d.SetColor(c)
	d.SetStroke(
		fixed.Int26_6(width*64),
		fixed.Int26_6(4*64),
		rasterx.ButtCap, rasterx.ButtCap,
		rasterx.RoundGap,
		rasterx.Round,
		nil, 0,
	)

	d.Start(rasterx.ToFixedP(pts[0].X, pts[0].Y))
	for _, pt := range pts[1:] {
		d.Line(rasterx.ToFixedP(pt.X, pt.Y))
	}
	d.Stop(false)
	d.Draw()
	d.Clear()
}
