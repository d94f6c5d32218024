package ballicon

// SeamSamples is the number of points a seam curve is flattened into.
const SeamSamples = 201

// Point is a 2D point in either the logical design space or the canvas space.
type Point struct {
	X, Y float64
}

// Seam holds the three control points of a quadratic Bézier seam curve.
type Seam struct {
	P0, P1, P2 Point
}

// Seams returns the left and right seam curves, expressed in the 24x24 design space
// where the ball spans the 2..22 interval on both axes.
func Seams() []Seam {
	return []Seam{
		{P0: Point{4, 8}, P1: Point{8, 12}, P2: Point{4, 16}},
		{P0: Point{20, 8}, P1: Point{16, 12}, P2: Point{20, 16}},
	}
}

// Flatten samples the seam curve at SeamSamples evenly spaced parameter values.
func (s Seam) Flatten() []Point {
	return QuadBezier(s.P0, s.P1, s.P2, SeamSamples)
}

// QuadBezier samples the quadratic Bézier curve defined by p0, p1, p2 at n evenly
// spaced values of t in [0, 1], both ends included. For n < 2 only the end points
// are returned.
func QuadBezier(p0, p1, p2 Point, n int) []Point {
	if n < 2 {
		return []Point{p0, p2}
	}
	pts := make([]Point, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		a := (1 - t) * (1 - t)
		b := 2 * (1 - t) * t
		c := t * t
		pts[i] = Point{
			X: a*p0.X + b*p1.X + c*p2.X,
			Y: a*p0.Y + b*p1.Y + c*p2.Y,
		}
	}
	return pts
}

// DesignSpace maps the logical 24x24 icon coordinates onto the ball drawn on the canvas.
type DesignSpace struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
}

// designMin and designSpan describe the extent of the ball in the logical design space.
const (
	designMin  = 2.0
	designSpan = 20.0
)

// NewDesignSpace returns the mapping for a ball of radius r centered at (cx, cy).
func NewDesignSpace(cx, cy, r float64) DesignSpace {
	return DesignSpace{
		Scale:   r * 2 / designSpan,
		OffsetX: cx - r,
		OffsetY: cy - r,
	}
}

// Map converts a logical point to canvas coordinates.
func (d DesignSpace) Map(p Point) Point {
	return Point{
		X: d.OffsetX + (p.X-designMin)*d.Scale,
		Y: d.OffsetY + (p.Y-designMin)*d.Scale,
	}
}

// MapAll converts a polyline from logical to canvas coordinates.
func (d DesignSpace) MapAll(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = d.Map(p)
	}
	return out
}
