package analysis

import (
	"strings"

	"github.com/idan19933/firesystem-analizer-sub000/dxf"
	"github.com/idan19933/firesystem-analizer-sub000/geo"
)

// Source tags how a finding was inferred.
type Source string

const (
	SourceText      Source = "text-match"
	SourceBlockName Source = "block-name-match"
	SourceLayerName Source = "layer-name-match"
	SourceGeometry  Source = "geometry-derived"
)

// Finding is one classified element.
type Finding struct {
	Category Category   `json:"category"`
	Source   Source     `json:"source"`
	Layer    string     `json:"layer"`
	Position *geo.Point `json:"position,omitempty"`
	Label    string     `json:"label,omitempty"`
	Radius   float64    `json:"radius,omitempty"`
}

// Room is a closed-polygon area detected for aggregate reporting. Not a
// fire-safety category itself.
type Room struct {
	Vertices []geo.Point `json:"vertices"`
	Area     float64     `json:"area"`
	Layer    string      `json:"layer"`
}

// ClassifiedSet holds all findings grouped by category, plus detected
// rooms.
type ClassifiedSet struct {
	Findings map[Category][]Finding `json:"findings"`
	Rooms    []Room                 `json:"rooms,omitempty"`
}

// Count returns the number of findings in a category.
func (s *ClassifiedSet) Count(c Category) int {
	return len(s.Findings[c])
}

func (s *ClassifiedSet) add(f Finding) {
	s.Findings[f.Category] = append(s.Findings[f.Category], f)
}

// Classify scans the layer tree and produces classified findings. The
// passes run in a fixed priority order — text content, block names,
// layer names, then geometric inference — and iterate layers in sorted
// name order, so classification of a given entity is stable across runs.
func Classify(tree *LayerTree, opts Options) *ClassifiedSet {
	set := &ClassifiedSet{Findings: make(map[Category][]Finding)}
	names := tree.LayerNames()

	// Pass 1: text content. Non-matching non-empty text is retained in
	// the unknown bucket so a reviewer still sees it.
	for _, name := range names {
		for _, e := range tree.Buckets[name].Texts {
			label := strings.TrimSpace(e.Text)
			if label == "" {
				continue
			}
			f := Finding{Source: SourceText, Layer: name, Position: e.Position, Label: label}
			if cat, ok := matchCategory(label); ok {
				f.Category = cat
			} else {
				f.Category = CategoryUnknown
			}
			set.add(f)
		}
	}

	// Pass 2: block-reference names. No unknown fallback here; an
	// unmatched reference is simply not classified.
	for _, name := range names {
		for _, e := range tree.Buckets[name].Inserts {
			cat, ok := matchCategory(e.BlockName)
			if !ok {
				continue
			}
			set.add(Finding{
				Category: cat,
				Source:   SourceBlockName,
				Layer:    name,
				Position: e.Position,
				Label:    e.BlockName,
			})
		}
	}

	// Pass 3: layer names. Circles on a matching layer are inferred to
	// be that category's symbols.
	for _, name := range names {
		cat, ok := matchCategory(name)
		if !ok {
			continue
		}
		for _, e := range tree.Buckets[name].Circles {
			set.add(Finding{
				Category: cat,
				Source:   SourceLayerName,
				Layer:    name,
				Position: e.Position,
				Radius:   e.Radius,
			})
		}
	}

	// Pass 4: door-swing arcs. Independent of the label passes.
	for _, name := range names {
		for _, e := range tree.Buckets[name].Arcs {
			if !doorLike(e, opts) {
				continue
			}
			set.add(Finding{
				Category: CategoryFireDoor,
				Source:   SourceGeometry,
				Layer:    name,
				Position: e.Position,
				Radius:   e.Radius,
			})
		}
	}

	// Pass 5: rooms from closed polylines.
	for _, name := range names {
		for _, e := range tree.Buckets[name].Polylines {
			if !e.Closed || len(e.Vertices) < 4 {
				continue
			}
			area := geo.Polygon{Vertices: e.Vertices}.Area()
			if area <= opts.MinRoomArea {
				continue
			}
			set.Rooms = append(set.Rooms, Room{Vertices: e.Vertices, Area: area, Layer: name})
		}
	}

	return set
}

// doorLike reports whether an arc is geometrically consistent with a
// door leaf's swing: an angular sweep near 90° at a plausible leaf
// radius.
func doorLike(e *dxf.Entity, opts Options) bool {
	sweep := e.Sweep()
	return sweep >= opts.MinDoorSweep && sweep <= opts.MaxDoorSweep &&
		e.Radius >= opts.MinDoorRadius && e.Radius <= opts.MaxDoorRadius
}
