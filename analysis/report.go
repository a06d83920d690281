package analysis

import (
	"time"

	"github.com/google/uuid"

	"github.com/idan19933/firesystem-analizer-sub000/dxf"
)

// LayerSummary is the serialized view of one layer bucket: per-kind
// entity counts instead of the entities themselves.
type LayerSummary struct {
	Texts      int `json:"texts,omitempty"`
	Circles    int `json:"circles,omitempty"`
	Arcs       int `json:"arcs,omitempty"`
	Lines      int `json:"lines,omitempty"`
	Polylines  int `json:"polylines,omitempty"`
	Inserts    int `json:"inserts,omitempty"`
	Dimensions int `json:"dimensions,omitempty"`
	Points     int `json:"points,omitempty"`
}

// Report is the structured result handed to the external
// report-formatting and compliance-review collaborators. The full layer
// tree is exposed in memory; serialization gets the per-layer summary
// instead, since a flattened exchange file can hold millions of
// entities.
type Report struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`

	Tree   *LayerTree              `json:"-"`
	Layers map[string]LayerSummary `json:"layers"`

	TypeCounts    map[string]int `json:"type_counts"`
	TotalEntities int            `json:"total_entities"`

	Classified   *ClassifiedSet `json:"classified"`
	Measurements *Measurements  `json:"measurements"`
	Metadata     *Metadata      `json:"metadata"`

	Flattened bool           `json:"flattened"`
	Bounds    *Bounds        `json:"bounds,omitempty"`
	Sections  []SectionRange `json:"sections,omitempty"`
}

// Analyze runs the full pipeline over a completed parse: layer tree,
// classification, measurement, and structural metadata. Pure with
// respect to doc; safe to call from any goroutine once the parse has
// finished.
func Analyze(doc *dxf.Document, opts Options) *Report {
	tree := BuildTree(doc)
	set := Classify(tree, opts)

	r := &Report{
		ID:            uuid.NewString(),
		GeneratedAt:   time.Now().UTC(),
		Tree:          tree,
		Layers:        summarize(tree),
		TypeCounts:    doc.TypeCounts,
		TotalEntities: doc.TotalEntities,
		Classified:    set,
		Measurements:  Measure(set, opts),
		Metadata:      ExtractMetadata(doc),
		Flattened:     Flattened(doc),
	}

	xs, ys := CollectPoints(doc)
	if b, ok := SmartBounds(xs, ys); ok {
		r.Bounds = &b
	}
	if r.Flattened {
		r.Sections = DetectSections(xs)
	}

	return r
}

func summarize(tree *LayerTree) map[string]LayerSummary {
	out := make(map[string]LayerSummary, len(tree.Buckets))
	for name, b := range tree.Buckets {
		out[name] = LayerSummary{
			Texts:      len(b.Texts),
			Circles:    len(b.Circles),
			Arcs:       len(b.Arcs),
			Lines:      len(b.Lines),
			Polylines:  len(b.Polylines),
			Inserts:    len(b.Inserts),
			Dimensions: len(b.Dimensions),
			Points:     len(b.Points),
		}
	}
	return out
}
