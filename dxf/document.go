package dxf

import "github.com/idan19933/firesystem-analizer-sub000/geo"

// DefaultLayer is the layer entities fall back to when their layer
// attribute is absent.
const DefaultLayer = "0"

// Layer is one row of the layer table: display metadata for an
// organizational grouping of entities.
type Layer struct {
	Name   string `json:"name"`
	Color  int    `json:"color"`
	Frozen bool   `json:"frozen"`
	Off    bool   `json:"off"`
}

// Block is a named, reusable collection of entities, instantiated via
// INSERT references.
type Block struct {
	Name     string    `json:"name"`
	Entities []*Entity `json:"entities"`
}

// Header carries the subset of HEADER section variables the analysis
// stages consume.
type Header struct {
	ExtMin   *geo.Point `json:"ext_min,omitempty"`
	ExtMax   *geo.Point `json:"ext_max,omitempty"`
	CodePage string     `json:"code_page,omitempty"`
	InsUnits int        `json:"ins_units,omitempty"`
}

// Buckets partitions assembled entities by kind.
type Buckets struct {
	Texts      []*Entity `json:"texts"`
	Circles    []*Entity `json:"circles"`
	Arcs       []*Entity `json:"arcs"`
	Lines      []*Entity `json:"lines"`
	Polylines  []*Entity `json:"polylines"`
	Inserts    []*Entity `json:"inserts"`
	Dimensions []*Entity `json:"dimensions"`
	Points     []*Entity `json:"points"`
}

// All returns every bucketed entity in a deterministic kind order.
func (b *Buckets) All() []*Entity {
	out := make([]*Entity, 0,
		len(b.Texts)+len(b.Circles)+len(b.Arcs)+len(b.Lines)+
			len(b.Polylines)+len(b.Inserts)+len(b.Dimensions)+len(b.Points))
	out = append(out, b.Texts...)
	out = append(out, b.Circles...)
	out = append(out, b.Arcs...)
	out = append(out, b.Lines...)
	out = append(out, b.Polylines...)
	out = append(out, b.Inserts...)
	out = append(out, b.Dimensions...)
	out = append(out, b.Points...)
	return out
}

// Document is the complete parse result for one file.
type Document struct {
	Header   Header            `json:"header"`
	Layers   map[string]*Layer `json:"layers"`
	Blocks   map[string]*Block `json:"blocks"`
	Entities Buckets           `json:"entities"`

	// TotalEntities counts every finalized entity, including kinds not
	// retained in a semantic bucket and texts with empty payloads.
	TotalEntities int `json:"total_entities"`

	// TypeCounts tallies finalized entities by their raw type marker,
	// unknown kinds included.
	TypeCounts map[string]int `json:"type_counts"`
}

func newDocument() *Document {
	return &Document{
		Layers:     make(map[string]*Layer),
		Blocks:     make(map[string]*Block),
		TypeCounts: make(map[string]int),
	}
}
