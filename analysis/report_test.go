package analysis

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idan19933/firesystem-analizer-sub000/dxf"
)

// samplePlan is a small but complete drawing: a layer table, one block
// definition, and an entity mix covering every classification pass.
const samplePlan = `0
SECTION
2
TABLES
0
TABLE
2
LAYER
0
LAYER
2
FIRE-SPRINK
62
1
0
LAYER
2
ROOMS
62
3
0
ENDTAB
0
ENDSEC
0
SECTION
2
BLOCKS
0
BLOCK
2
SMOKE_DETECTOR
0
CIRCLE
10
0
20
0
40
0.1
0
ENDBLK
0
ENDSEC
0
SECTION
2
ENTITIES
0
TEXT
8
FIRE-SPRINK
1
sprinkler riser
10
1
20
1
0
INSERT
2
SMOKE_DETECTOR
10
5
20
5
0
INSERT
2
SMOKE_DETECTOR
10
11
20
5
0
CIRCLE
8
FIRE-SPRINK
10
2
20
2
40
0.15
0
ARC
8
DOORS
10
8
20
3
40
0.9
50
0
51
90
0
LWPOLYLINE
8
ROOMS
70
1
10
0
20
0
10
6
20
0
10
6
20
4
10
0
20
4
0
ENDSEC
0
EOF
`

func analyzeSample(t *testing.T) *Report {
	t.Helper()
	doc, err := dxf.Parse(strings.NewReader(samplePlan))
	require.NoError(t, err)
	return Analyze(doc, DefaultOptions())
}

func TestAnalyzeEndToEnd(t *testing.T) {
	r := analyzeSample(t)

	assert.NotEmpty(t, r.ID)
	assert.False(t, r.GeneratedAt.IsZero())
	assert.Equal(t, 7, r.TotalEntities, "block-body circle plus six model entities")

	// Classification covered every pass.
	assert.Equal(t, 2, r.Classified.Count(CategorySprinkler), "text match plus layer-inferred circle")
	assert.Equal(t, 2, r.Classified.Count(CategorySmokeDetector), "block-name match")
	assert.Equal(t, 1, r.Classified.Count(CategoryFireDoor), "door-swing arc")
	require.Len(t, r.Classified.Rooms, 1)
	assert.InDelta(t, 24.0, r.Classified.Rooms[0].Area, 1e-9)

	// Measurements.
	require.NotNil(t, r.Measurements.DetectorSpacing)
	assert.InDelta(t, 6.0, r.Measurements.DetectorSpacing.Average, 1e-9)
	assert.Equal(t, []float64{0.9}, r.Measurements.DoorWidths)
	assert.InDelta(t, 24.0, r.Measurements.TotalRoomArea, 1e-9)

	// Metadata and tree.
	assert.Equal(t, 2, r.Metadata.LayerCount)
	assert.Contains(t, r.Metadata.FireRelatedLayers, "FIRE-SPRINK")
	require.NotNil(t, r.Tree)
	assert.NotNil(t, r.Bounds)
	assert.False(t, r.Flattened)
}

func TestAnalyzeSprinklerFindings(t *testing.T) {
	r := analyzeSample(t)
	findings := r.Classified.Findings[CategorySprinkler]
	require.Len(t, findings, 2)

	sources := map[Source]int{}
	for _, f := range findings {
		sources[f.Source]++
	}
	assert.Equal(t, 1, sources[SourceText])
	assert.Equal(t, 1, sources[SourceLayerName])
}

func TestReportSerializesWithoutTree(t *testing.T) {
	r := analyzeSample(t)
	data, err := json.Marshal(r)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "layers")
	assert.Contains(t, decoded, "classified")
	assert.Contains(t, decoded, "measurements")
	assert.NotContains(t, decoded, "Tree")

	layers, ok := decoded["layers"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, layers, "FIRE-SPRINK")
}

func TestAnalyzeEmptyDocumentStillReports(t *testing.T) {
	doc, err := dxf.Parse(strings.NewReader("0\nEOF\n"))
	require.NoError(t, err)

	r := Analyze(doc, DefaultOptions())
	require.NotNil(t, r)
	assert.Zero(t, r.TotalEntities)
	assert.NotNil(t, r.Classified)
	assert.NotNil(t, r.Measurements)
	assert.Nil(t, r.Measurements.SprinklerSpacing)
	assert.Nil(t, r.Bounds)
}

func TestReportIDsUnique(t *testing.T) {
	a := analyzeSample(t)
	b := analyzeSample(t)
	assert.NotEqual(t, a.ID, b.ID)
}
