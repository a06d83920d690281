package geo

import "math"

// Polygon is a polygon defined by its vertices in order. The vertex list
// may or may not repeat the first vertex at the end; SignedArea handles
// both forms (a repeated closing vertex contributes zero).
type Polygon struct {
	Vertices []Point
}

// NewPolygon creates a polygon from a list of vertices.
func NewPolygon(pts ...Point) Polygon {
	return Polygon{Vertices: pts}
}

// Len returns the number of vertices.
func (p Polygon) Len() int {
	return len(p.Vertices)
}

// IsEmpty returns true if the polygon has fewer than 3 vertices.
func (p Polygon) IsEmpty() bool {
	return len(p.Vertices) < 3
}

// SignedArea returns the signed area using the shoelace formula.
// Positive for counterclockwise winding, negative for clockwise.
func (p Polygon) SignedArea() float64 {
	n := len(p.Vertices)
	if n < 3 {
		return 0
	}
	area := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += p.Vertices[i].X * p.Vertices[j].Y
		area -= p.Vertices[j].X * p.Vertices[i].Y
	}
	return area / 2
}

// Area returns the unsigned area of the polygon.
func (p Polygon) Area() float64 {
	return math.Abs(p.SignedArea())
}

// Centroid returns the arithmetic mean of the vertices.
func (p Polygon) Centroid() Point {
	n := len(p.Vertices)
	if n == 0 {
		return Point{}
	}
	var c Point
	for _, v := range p.Vertices {
		c = c.Add(v)
	}
	return c.Scale(1 / float64(n))
}

// IsClosed reports whether the first and last vertices coincide within tol.
func (p Polygon) IsClosed(tol float64) bool {
	n := len(p.Vertices)
	if n < 2 {
		return false
	}
	return p.Vertices[0].Near(p.Vertices[n-1], tol)
}
