package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointDistance(t *testing.T) {
	assert.Equal(t, 5.0, Pt(0, 0).Distance(Pt(3, 4)))
	assert.Equal(t, 0.0, Pt(2, 2).Distance(Pt(2, 2)))
}

func TestPointNear(t *testing.T) {
	assert.True(t, Pt(0, 0).Near(Pt(0.05, 0.05), 0.1))
	assert.False(t, Pt(0, 0).Near(Pt(1, 0), 0.1))
}

func TestUnitSquareArea(t *testing.T) {
	sq := NewPolygon(Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1))
	assert.InDelta(t, 1.0, sq.Area(), 1e-9)
}

func TestTriangleArea(t *testing.T) {
	tri := NewPolygon(Pt(0, 0), Pt(4, 0), Pt(0, 3))
	assert.InDelta(t, 6.0, tri.Area(), 1e-9)
}

func TestRepeatedClosingVertexArea(t *testing.T) {
	// The closing vertex contributes zero to the shoelace sum.
	sq := NewPolygon(Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1), Pt(0, 0))
	assert.InDelta(t, 1.0, sq.Area(), 1e-9)
}

func TestSignedAreaWinding(t *testing.T) {
	ccw := NewPolygon(Pt(0, 0), Pt(1, 0), Pt(1, 1))
	cw := NewPolygon(Pt(0, 0), Pt(1, 1), Pt(1, 0))
	assert.Positive(t, ccw.SignedArea())
	assert.Negative(t, cw.SignedArea())
}

func TestDegenerateArea(t *testing.T) {
	assert.Equal(t, 0.0, NewPolygon(Pt(0, 0), Pt(1, 1)).Area())
	assert.True(t, NewPolygon(Pt(0, 0)).IsEmpty())
}

func TestIsClosed(t *testing.T) {
	open := NewPolygon(Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1))
	closed := NewPolygon(Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1), Pt(0.05, 0))
	assert.False(t, open.IsClosed(0.1))
	assert.True(t, closed.IsClosed(0.1))
}

func TestCentroid(t *testing.T) {
	sq := NewPolygon(Pt(0, 0), Pt(2, 0), Pt(2, 2), Pt(0, 2))
	c := sq.Centroid()
	assert.InDelta(t, 1.0, c.X, 1e-9)
	assert.InDelta(t, 1.0, c.Y, 1e-9)
}
