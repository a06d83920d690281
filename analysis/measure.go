package analysis

import (
	"math"
	"sort"

	"github.com/idan19933/firesystem-analizer-sub000/geo"
)

// SpacingSummary aggregates nearest-neighbor distances for one category.
type SpacingSummary struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// Measurements carries the spatial metrics derived from a ClassifiedSet.
// Nil spacing summaries mean the category had fewer than two positioned
// members — an expected outcome for sparse drawings, not an error.
type Measurements struct {
	SprinklerSpacing *SpacingSummary `json:"sprinkler_spacing,omitempty"`
	DetectorSpacing  *SpacingSummary `json:"detector_spacing,omitempty"`
	DoorWidths       []float64       `json:"door_widths,omitempty"`
	TotalRoomArea    float64         `json:"total_room_area"`
	LargestRooms     []Room          `json:"largest_rooms,omitempty"`
}

// Measure computes spacing, door width, and room area aggregates.
// Recomputed each run; read-only thereafter.
func Measure(set *ClassifiedSet, opts Options) *Measurements {
	m := &Measurements{}

	m.SprinklerSpacing = nearestNeighborSpacing(
		positions(set.Findings[CategorySprinkler]), opts.DuplicateDistance)

	detectors := append(positions(set.Findings[CategorySmokeDetector]),
		positions(set.Findings[CategoryHeatDetector])...)
	m.DetectorSpacing = nearestNeighborSpacing(detectors, opts.DuplicateDistance)

	for _, f := range set.Findings[CategoryFireDoor] {
		if f.Source == SourceGeometry {
			// Arc radius approximates the door leaf width.
			m.DoorWidths = append(m.DoorWidths, f.Radius)
		}
	}

	for _, r := range set.Rooms {
		m.TotalRoomArea += r.Area
	}
	m.LargestRooms = largestRooms(set.Rooms, opts.TopRooms)

	return m
}

func positions(findings []Finding) []geo.Point {
	var pts []geo.Point
	for _, f := range findings {
		if f.Position != nil {
			pts = append(pts, *f.Position)
		}
	}
	return pts
}

// nearestNeighborSpacing finds, for each point, the minimum distance to
// any other point that exceeds minSeparation (coincident duplicates are
// excluded), and aggregates over all points that have such a neighbor.
// Returns nil when fewer than two points are available.
func nearestNeighborSpacing(pts []geo.Point, minSeparation float64) *SpacingSummary {
	if len(pts) < 2 {
		return nil
	}

	s := &SpacingSummary{Min: math.Inf(1), Max: math.Inf(-1)}
	var sum float64
	for i, p := range pts {
		nearest := math.Inf(1)
		for j, q := range pts {
			if i == j {
				continue
			}
			d := p.Distance(q)
			if d > minSeparation && d < nearest {
				nearest = d
			}
		}
		if math.IsInf(nearest, 1) {
			continue
		}
		s.Count++
		sum += nearest
		s.Min = math.Min(s.Min, nearest)
		s.Max = math.Max(s.Max, nearest)
	}

	if s.Count == 0 {
		return nil
	}
	s.Average = sum / float64(s.Count)
	return s
}

// largestRooms returns the top-n rooms by area, descending, with ties
// broken by encounter order.
func largestRooms(rooms []Room, n int) []Room {
	if len(rooms) == 0 || n <= 0 {
		return nil
	}
	sorted := make([]Room, len(rooms))
	copy(sorted, rooms)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Area > sorted[j].Area
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
