package dxf

import (
	"math"

	"github.com/idan19933/firesystem-analizer-sub000/geo"
)

// EntityType identifies the kind of a drawn entity. Values match the
// format's type markers.
type EntityType string

const (
	EntityLine       EntityType = "LINE"
	EntityCircle     EntityType = "CIRCLE"
	EntityArc        EntityType = "ARC"
	EntityText       EntityType = "TEXT"
	EntityMText      EntityType = "MTEXT"
	EntityInsert     EntityType = "INSERT"
	EntityLWPolyline EntityType = "LWPOLYLINE"
	EntityPolyline   EntityType = "POLYLINE"
	EntityDimension  EntityType = "DIMENSION"
	EntityAttrib     EntityType = "ATTRIB"
	EntityPoint      EntityType = "POINT"
)

// entityTypes maps marker values to the entity kinds the assembler
// reconstructs. Markers absent from this map are tallied structurally but
// produce no semantic bucket entry.
var entityTypes = map[string]EntityType{
	"LINE":       EntityLine,
	"CIRCLE":     EntityCircle,
	"ARC":        EntityArc,
	"TEXT":       EntityText,
	"MTEXT":      EntityMText,
	"INSERT":     EntityInsert,
	"LWPOLYLINE": EntityLWPolyline,
	"POLYLINE":   EntityPolyline,
	"DIMENSION":  EntityDimension,
	"ATTRIB":     EntityAttrib,
	"POINT":      EntityPoint,
}

// IsPolyline reports whether the type accumulates vertices instead of a
// single position.
func (t EntityType) IsPolyline() bool {
	return t == EntityLWPolyline || t == EntityPolyline
}

// Entity is one assembled drawn object. It is immutable once emitted by
// the parser. Type determines which optional fields are meaningful.
type Entity struct {
	Type           EntityType  `json:"type"`
	Layer          string      `json:"layer"`
	Position       *geo.Point  `json:"position,omitempty"`
	SecondPosition *geo.Point  `json:"second_position,omitempty"`
	Radius         float64     `json:"radius,omitempty"`
	StartAngle     float64     `json:"start_angle,omitempty"`
	EndAngle       float64     `json:"end_angle,omitempty"`
	Text           string      `json:"text,omitempty"`
	BlockName      string      `json:"block_name,omitempty"`
	Vertices       []geo.Point `json:"vertices,omitempty"`
	Closed         bool        `json:"closed,omitempty"`
	Color          int         `json:"color,omitempty"`
}

// Sweep returns the angular sweep of an arc in degrees, normalized to
// [0, 360).
func (e *Entity) Sweep() float64 {
	sweep := math.Mod(e.EndAngle-e.StartAngle, 360)
	if sweep < 0 {
		sweep += 360
	}
	return sweep
}

// vertexAccumulator folds interleaved X/Y ordinate codes into an ordered
// vertex list. Ordinate pairs arrive as X then Y, but a new X can arrive
// while the previous vertex's Y is still pending; in that case the pending
// vertex is pushed with Y defaulted to the last-seen Y so the vertex count
// is preserved.
type vertexAccumulator struct {
	vertices   []geo.Point
	pendingX   float64
	hasPending bool
	lastY      float64
}

func (a *vertexAccumulator) addX(x float64) {
	if a.hasPending {
		a.vertices = append(a.vertices, geo.Point{X: a.pendingX, Y: a.lastY})
	}
	a.pendingX = x
	a.hasPending = true
}

func (a *vertexAccumulator) addY(y float64) {
	a.lastY = y
	if a.hasPending {
		a.vertices = append(a.vertices, geo.Point{X: a.pendingX, Y: y})
		a.hasPending = false
	}
}

// finish flushes any pending X and returns the accumulated vertices.
func (a *vertexAccumulator) finish() []geo.Point {
	if a.hasPending {
		a.vertices = append(a.vertices, geo.Point{X: a.pendingX, Y: a.lastY})
		a.hasPending = false
	}
	return a.vertices
}
