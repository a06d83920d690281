package analysis

import (
	"sort"
	"strings"

	"github.com/idan19933/firesystem-analizer-sub000/dxf"
)

const (
	maxTextSamples = 100
	maxFireTexts   = 20
	maxBlockUsage  = 30
)

// fireKeywords flags layers and labels worth a reviewer's attention even
// before classification. Mixed Hebrew/English, matched case-insensitively
// as substrings.
var fireKeywords = []string{
	"כיבוי", "אש", "fire", "sprink", "hydrant", "מתז", "גלאי",
	"מילוט", "exit", "alarm", "smoke", "עשן", "גלגלון", "מטף",
	"חירום", "emergency",
}

// BlockUsage records how often a block is referenced.
type BlockUsage struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Metadata summarizes a drawing's structure for the external review
// stage.
type Metadata struct {
	EntityCounts      map[string]int `json:"entity_counts"`
	TotalEntities     int            `json:"total_entities"`
	Layers            []string       `json:"layers"`
	LayerCount        int            `json:"layer_count"`
	TextSamples       []string       `json:"text_samples,omitempty"`
	TextCount         int            `json:"text_count"`
	BlockUsage        []BlockUsage   `json:"block_usage,omitempty"`
	FireRelatedLayers []string       `json:"fire_related_layers,omitempty"`
	FireRelatedTexts  []string       `json:"fire_related_texts,omitempty"`
	Extents           *Bounds        `json:"extents,omitempty"`
}

// ExtractMetadata builds the structural summary of a parsed document.
func ExtractMetadata(doc *dxf.Document) *Metadata {
	md := &Metadata{
		EntityCounts:  doc.TypeCounts,
		TotalEntities: doc.TotalEntities,
	}

	for name := range doc.Layers {
		md.Layers = append(md.Layers, name)
	}
	sort.Strings(md.Layers)
	md.LayerCount = len(md.Layers)

	var texts []string
	for _, e := range doc.Entities.Texts {
		if t := SanitizeText(e.Text); t != "" {
			texts = append(texts, t)
		}
	}
	md.TextCount = len(texts)
	if len(texts) > maxTextSamples {
		md.TextSamples = texts[:maxTextSamples]
	} else {
		md.TextSamples = texts
	}

	usage := make(map[string]int)
	for _, e := range doc.Entities.Inserts {
		if e.BlockName != "" {
			usage[e.BlockName]++
		}
	}
	for name, count := range usage {
		md.BlockUsage = append(md.BlockUsage, BlockUsage{Name: name, Count: count})
	}
	sort.Slice(md.BlockUsage, func(i, j int) bool {
		if md.BlockUsage[i].Count != md.BlockUsage[j].Count {
			return md.BlockUsage[i].Count > md.BlockUsage[j].Count
		}
		return md.BlockUsage[i].Name < md.BlockUsage[j].Name
	})
	if len(md.BlockUsage) > maxBlockUsage {
		md.BlockUsage = md.BlockUsage[:maxBlockUsage]
	}

	for _, name := range md.Layers {
		if containsFireKeyword(name) {
			md.FireRelatedLayers = append(md.FireRelatedLayers, name)
		}
	}
	for _, t := range texts {
		if containsFireKeyword(t) {
			md.FireRelatedTexts = append(md.FireRelatedTexts, t)
			if len(md.FireRelatedTexts) == maxFireTexts {
				break
			}
		}
	}

	if doc.Header.ExtMin != nil && doc.Header.ExtMax != nil {
		md.Extents = &Bounds{
			XMin: doc.Header.ExtMin.X,
			XMax: doc.Header.ExtMax.X,
			YMin: doc.Header.ExtMin.Y,
			YMax: doc.Header.ExtMax.Y,
		}
	}

	return md
}

func containsFireKeyword(s string) bool {
	lower := strings.ToLower(s)
	for _, k := range fireKeywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// SanitizeText strips control characters and unencodable code points
// from label text so the summary stays safe to serialize.
func SanitizeText(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			sb.WriteRune(r)
		case r < 32:
			// drop other control chars
		case r >= 0xD800 && r <= 0xDFFF:
			// unpaired surrogate
		case r > 0xFFFF:
			// outside the BMP; legacy consumers choke on these
		default:
			sb.WriteRune(r)
		}
	}
	return strings.TrimSpace(sb.String())
}

// Geometry-dominated type markers used by the flattened-drawing check.
var geometryTypes = []string{"LINE", "LWPOLYLINE", "POLYLINE", "ARC", "CIRCLE", "SPLINE"}

// Flattened reports whether the drawing looks exploded: essentially no
// blocks or text, geometry everywhere, and no meaningful layer
// structure. Flattened files carry no semantic content for the label
// passes, so downstream consumers fall back to section-based analysis.
func Flattened(doc *dxf.Document) bool {
	total := doc.TotalEntities
	if total == 0 {
		return false
	}

	insertRatio := float64(doc.TypeCounts["INSERT"]) / float64(total)
	textRatio := float64(doc.TypeCounts["TEXT"]+doc.TypeCounts["MTEXT"]) / float64(total)

	geometry := 0
	for _, t := range geometryTypes {
		geometry += doc.TypeCounts[t]
	}
	geometryRatio := float64(geometry) / float64(total)

	meaningful := 0
	for name := range doc.Layers {
		switch name {
		case "0", "Defpoints", "DEFPOINTS":
		default:
			meaningful++
		}
	}

	return insertRatio < 0.01 && textRatio < 0.001 &&
		geometryRatio > 0.95 && meaningful < 5
}
