package analysis

import (
	"sort"

	"github.com/idan19933/firesystem-analizer-sub000/dxf"
)

// LayerBucket holds one layer's entities partitioned by kind.
type LayerBucket struct {
	Layer      *dxf.Layer    `json:"layer"`
	Texts      []*dxf.Entity `json:"texts,omitempty"`
	Circles    []*dxf.Entity `json:"circles,omitempty"`
	Arcs       []*dxf.Entity `json:"arcs,omitempty"`
	Lines      []*dxf.Entity `json:"lines,omitempty"`
	Polylines  []*dxf.Entity `json:"polylines,omitempty"`
	Inserts    []*dxf.Entity `json:"inserts,omitempty"`
	Dimensions []*dxf.Entity `json:"dimensions,omitempty"`
	Points     []*dxf.Entity `json:"points,omitempty"`
}

// LayerTree maps layer names to per-layer entity buckets. Every bucketed
// entity appears in exactly one layer bucket, selected by its layer
// attribute.
type LayerTree struct {
	Buckets map[string]*LayerBucket `json:"buckets"`
}

// LayerNames returns the bucket names in sorted order. Iteration over the
// tree must go through this to keep downstream classification stable.
func (t *LayerTree) LayerNames() []string {
	names := make([]string, 0, len(t.Buckets))
	for name := range t.Buckets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (t *LayerTree) bucket(name string) *LayerBucket {
	if b, ok := t.Buckets[name]; ok {
		return b
	}
	// Entities may reference layers absent from the layer table; those
	// get an ad-hoc bucket with default metadata.
	b := &LayerBucket{Layer: &dxf.Layer{Name: name, Color: 7}}
	t.Buckets[name] = b
	return b
}

// BuildTree groups the document's entities by layer. Pure and
// deterministic: a fixed document always yields the same tree.
func BuildTree(doc *dxf.Document) *LayerTree {
	tree := &LayerTree{Buckets: make(map[string]*LayerBucket)}

	tree.Buckets[dxf.DefaultLayer] = &LayerBucket{
		Layer: &dxf.Layer{Name: dxf.DefaultLayer, Color: 7},
	}
	for name, layer := range doc.Layers {
		tree.Buckets[name] = &LayerBucket{Layer: layer}
	}

	for _, e := range doc.Entities.Texts {
		b := tree.bucket(e.Layer)
		b.Texts = append(b.Texts, e)
	}
	for _, e := range doc.Entities.Circles {
		b := tree.bucket(e.Layer)
		b.Circles = append(b.Circles, e)
	}
	for _, e := range doc.Entities.Arcs {
		b := tree.bucket(e.Layer)
		b.Arcs = append(b.Arcs, e)
	}
	for _, e := range doc.Entities.Lines {
		b := tree.bucket(e.Layer)
		b.Lines = append(b.Lines, e)
	}
	for _, e := range doc.Entities.Polylines {
		b := tree.bucket(e.Layer)
		b.Polylines = append(b.Polylines, e)
	}
	for _, e := range doc.Entities.Inserts {
		b := tree.bucket(e.Layer)
		b.Inserts = append(b.Inserts, e)
	}
	for _, e := range doc.Entities.Dimensions {
		b := tree.bucket(e.Layer)
		b.Dimensions = append(b.Dimensions, e)
	}
	for _, e := range doc.Entities.Points {
		b := tree.bucket(e.Layer)
		b.Points = append(b.Points, e)
	}

	return tree
}
