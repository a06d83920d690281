package analysis

import (
	"sort"

	"github.com/idan19933/firesystem-analizer-sub000/dxf"
)

// Bounds is an axis-aligned extent in drawing coordinates.
type Bounds struct {
	XMin float64 `json:"xmin"`
	XMax float64 `json:"xmax"`
	YMin float64 `json:"ymin"`
	YMax float64 `json:"ymax"`
}

// SectionRange is one detected plan section along the X axis.
type SectionRange struct {
	XMin   float64 `json:"xmin"`
	XMax   float64 `json:"xmax"`
	Points int     `json:"points"`
}

// CollectPoints gathers every coordinate the document's geometry
// touches: line endpoints, polyline vertices, circle and arc centers,
// and point locations.
func CollectPoints(doc *dxf.Document) (xs, ys []float64) {
	add := func(x, y float64) {
		xs = append(xs, x)
		ys = append(ys, y)
	}
	for _, e := range doc.Entities.Lines {
		if e.Position != nil {
			add(e.Position.X, e.Position.Y)
		}
		if e.SecondPosition != nil {
			add(e.SecondPosition.X, e.SecondPosition.Y)
		}
	}
	for _, e := range doc.Entities.Polylines {
		for _, v := range e.Vertices {
			add(v.X, v.Y)
		}
	}
	for _, buckets := range [][]*dxf.Entity{
		doc.Entities.Circles, doc.Entities.Arcs, doc.Entities.Points,
	} {
		for _, e := range buckets {
			if e.Position != nil {
				add(e.Position.X, e.Position.Y)
			}
		}
	}
	return xs, ys
}

// percentile returns the p-th percentile (0-100) of sorted values using
// linear interpolation between ranks.
func percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return sorted[0]
	}
	rank := p / 100 * float64(n-1)
	lo := int(rank)
	if lo >= n-1 {
		return sorted[n-1]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

const boundsMargin = 0.1

// SmartBounds computes drawing bounds from the 1st and 99th coordinate
// percentiles so a single stray point at the origin (or a title block
// parked far away) does not blow up the extent. When the percentile span
// collapses to under 1% of the full range the content is extremely
// concentrated, and widened inter-quantile bounds are used instead.
// The second return is false when there are no points.
func SmartBounds(xs, ys []float64) (Bounds, bool) {
	if len(xs) == 0 || len(ys) == 0 {
		return Bounds{}, false
	}

	sx := append([]float64(nil), xs...)
	sy := append([]float64(nil), ys...)
	sort.Float64s(sx)
	sort.Float64s(sy)

	xmin, xmax := axisBounds(sx)
	ymin, ymax := axisBounds(sy)

	xpad := (xmax - xmin) * boundsMargin
	if xpad < 1 {
		xpad = 1
	}
	ypad := (ymax - ymin) * boundsMargin
	if ypad < 1 {
		ypad = 1
	}

	return Bounds{
		XMin: xmin - xpad,
		XMax: xmax + xpad,
		YMin: ymin - ypad,
		YMax: ymax + ypad,
	}, true
}

func axisBounds(sorted []float64) (min, max float64) {
	min = percentile(sorted, 1)
	max = percentile(sorted, 99)

	fullSpan := sorted[len(sorted)-1] - sorted[0]
	if fullSpan > 0 && (max-min) < fullSpan*0.01 {
		q1 := percentile(sorted, 10)
		q3 := percentile(sorted, 90)
		iqr := q3 - q1
		min = q1 - 2*iqr
		max = q3 + 2*iqr
	}
	return min, max
}

const (
	sectionBins          = 200
	sectionMinGapRatio   = 0.1
	sectionMinPointCount = 1000
)

// DetectSections looks for gaps in the X-coordinate histogram. Flattened
// exchange files often park several floor plans side by side on one
// sheet; the empty bands between them show up as runs of sparse
// histogram bins.
func DetectSections(xs []float64) []SectionRange {
	if len(xs) < sectionMinPointCount {
		return nil
	}

	min, max := xs[0], xs[0]
	for _, x := range xs {
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	if max <= min {
		return nil
	}

	binWidth := (max - min) / sectionBins
	hist := make([]int, sectionBins)
	for _, x := range xs {
		bin := int((x - min) / binWidth)
		if bin >= sectionBins {
			bin = sectionBins - 1
		}
		hist[bin]++
	}

	// Sparse threshold: 5th percentile of the non-empty bins.
	var nonzero []float64
	for _, c := range hist {
		if c > 0 {
			nonzero = append(nonzero, float64(c))
		}
	}
	threshold := 1.0
	if len(nonzero) > 0 {
		sort.Float64s(nonzero)
		threshold = percentile(nonzero, 5)
	}

	minGapBins := int(sectionMinGapRatio * sectionBins)
	binEdge := func(i int) float64 { return min + float64(i)*binWidth }

	var raw []SectionRange
	inSection := false
	var start float64
	gap := 0
	for i, count := range hist {
		if float64(count) > threshold {
			if !inSection {
				start = binEdge(i)
				inSection = true
			}
			gap = 0
			continue
		}
		if inSection {
			gap++
			if gap >= minGapBins {
				raw = append(raw, SectionRange{XMin: start, XMax: binEdge(i - gap + 1)})
				inSection = false
			}
		}
	}
	if inSection {
		raw = append(raw, SectionRange{XMin: start, XMax: binEdge(sectionBins)})
	}

	// Keep only sections with enough content to be a real plan.
	var sections []SectionRange
	for _, s := range raw {
		count := 0
		for _, x := range xs {
			if x >= s.XMin && x <= s.XMax {
				count++
			}
		}
		if count >= sectionMinPointCount {
			s.Points = count
			sections = append(sections, s)
		}
	}
	return sections
}
