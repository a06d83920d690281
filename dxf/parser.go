package dxf

import (
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/idan19933/firesystem-analizer-sub000/geo"
)

// DefaultCloseTolerance is the coincidence distance below which a
// polyline's endpoints are considered closed. Empirical, in file units.
const DefaultCloseTolerance = 0.1

// Parser assembles a token stream into a Document. The zero value is
// ready to use; each call to Parse owns its own context, so one Parser
// may be shared across goroutines parsing independent files.
type Parser struct {
	// CloseTolerance overrides DefaultCloseTolerance when positive.
	CloseTolerance float64
	// Logger receives debug records for recovered content anomalies.
	// Nil disables logging.
	Logger *slog.Logger
}

// Parse consumes the tag stream from r and returns the assembled
// Document. Content-level anomalies are recovered; only I/O failures
// return an error, and then without a partial result.
func Parse(r io.Reader) (*Document, error) {
	return (&Parser{}).Parse(r)
}

// ParseFile opens path, transcodes legacy Hebrew codepages to UTF-8, and
// parses the content.
func ParseFile(path string) (*Document, error) {
	return (&Parser{}).ParseFile(path)
}

// ParseFile opens path, transcodes legacy codepages, and parses.
func (p *Parser) ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ReadError{Cause: err}
	}
	defer f.Close()
	return p.Parse(DecodeReader(f))
}

// Parse consumes the tag stream from r and returns the assembled Document.
func (p *Parser) Parse(r io.Reader) (*Document, error) {
	tol := p.CloseTolerance
	if tol <= 0 {
		tol = DefaultCloseTolerance
	}
	log := p.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	st := &parseState{doc: newDocument(), closeTol: tol, log: log}
	tz := NewTokenizer(r)
	for {
		tok, ok, err := tz.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if tok.Code == CodeMarker {
			if st.marker(tok.Value) {
				break
			}
		} else {
			st.value(tok)
		}
	}
	// End of input is the synchronization point: whatever is still in
	// flight is committed before the document is handed out.
	st.finalizeEntity()
	st.commitLayer()
	st.commitBlock()
	return st.doc, nil
}

// section tracks which top-level section the assembler is inside.
type section int

const (
	sectionNone section = iota
	sectionHeader
	sectionTables
	sectionBlocks
	sectionEntities
	sectionObjects
	sectionOther // unrecognized sections are tracked structurally only
)

func sectionByName(name string) section {
	switch name {
	case "HEADER":
		return sectionHeader
	case "TABLES":
		return sectionTables
	case "BLOCKS":
		return sectionBlocks
	case "ENTITIES":
		return sectionEntities
	case "OBJECTS":
		return sectionObjects
	default:
		return sectionOther
	}
}

// parseState is the per-parse context. Exactly one instance exists per
// Parse call and nothing crosses parse boundaries.
type parseState struct {
	doc      *Document
	closeTol float64
	log      *slog.Logger

	section           section
	expectSectionName bool
	curBlock          *Block
	expectBlockName   bool
	layer             *Layer
	headerVar         string
	cur               *entityBuilder
	inVertex          bool
}

// marker applies a code-0 structural token. Returns true on EOF.
func (st *parseState) marker(v string) bool {
	// VERTEX entries continue the open POLYLINE rather than starting a
	// new entity; their ordinates land in the polyline's vertex list.
	if v == "VERTEX" && st.cur != nil && st.cur.typ == EntityPolyline {
		st.inVertex = true
		return false
	}
	st.inVertex = false

	// Entities never span a marker.
	st.finalizeEntity()
	st.commitLayer()

	switch v {
	case "EOF":
		return true
	case "SECTION":
		st.expectSectionName = true
	case "ENDSEC":
		// An unterminated block definition commits here rather than
		// leaking into the next section.
		st.commitBlock()
		st.section = sectionNone
	case "BLOCK":
		if st.section == sectionBlocks {
			st.curBlock = &Block{}
			st.expectBlockName = true
		}
	case "ENDBLK":
		st.commitBlock()
	case "LAYER":
		if st.section == sectionTables {
			st.layer = &Layer{}
		}
	case "TABLE", "ENDTAB", "SEQEND":
		// Structural only.
	default:
		if st.section == sectionEntities || st.curBlock != nil {
			st.startEntity(v)
		}
	}
	return false
}

func (st *parseState) startEntity(raw string) {
	b := &entityBuilder{raw: raw}
	if typ, ok := entityTypes[raw]; ok {
		b.typ = typ
		b.known = true
	}
	st.cur = b
}

// value applies a non-marker token to whichever record is being built.
func (st *parseState) value(tok Token) {
	switch {
	case st.expectSectionName && tok.Code == CodeName:
		st.expectSectionName = false
		st.section = sectionByName(tok.Value)
	case st.expectBlockName && tok.Code == CodeName:
		st.curBlock.Name = tok.Value
		st.expectBlockName = false
	case st.cur != nil:
		st.entityValue(tok)
	case st.layer != nil:
		st.layerValue(tok)
	case st.section == sectionHeader:
		st.headerValue(tok)
	}
}

func (st *parseState) headerValue(tok Token) {
	h := &st.doc.Header
	switch tok.Code {
	case CodeHeaderVar:
		st.headerVar = tok.Value
	case CodeX:
		if f, ok := st.float(tok); ok {
			switch st.headerVar {
			case "$EXTMIN":
				ensurePoint(&h.ExtMin).X = f
			case "$EXTMAX":
				ensurePoint(&h.ExtMax).X = f
			}
		}
	case CodeY:
		if f, ok := st.float(tok); ok {
			switch st.headerVar {
			case "$EXTMIN":
				ensurePoint(&h.ExtMin).Y = f
			case "$EXTMAX":
				ensurePoint(&h.ExtMax).Y = f
			}
		}
	case CodeExtraText:
		if st.headerVar == "$DWGCODEPAGE" {
			h.CodePage = tok.Value
		}
	case CodeFlags:
		if st.headerVar == "$INSUNITS" {
			if n, err := strconv.Atoi(tok.Value); err == nil {
				h.InsUnits = n
			}
		}
	}
}

func (st *parseState) layerValue(tok Token) {
	switch tok.Code {
	case CodeName:
		st.layer.Name = tok.Value
	case CodeColor:
		if n, err := strconv.Atoi(tok.Value); err == nil {
			if n < 0 {
				st.layer.Off = true
				n = -n
			}
			st.layer.Color = n
		}
	case CodeFlags:
		if n, err := strconv.Atoi(tok.Value); err == nil {
			st.layer.Frozen = n&1 != 0
		}
	}
}

func (st *parseState) entityValue(tok Token) {
	b := st.cur
	// VERTEX sub-records contribute ordinates only. Their own layer,
	// flags, and colour describe the vertex, not the parent polyline.
	if st.inVertex {
		switch tok.Code {
		case CodeX:
			if f, ok := st.float(tok); ok {
				b.acc.addX(f)
			}
		case CodeY:
			if f, ok := st.float(tok); ok {
				b.acc.addY(f)
			}
		}
		return
	}
	switch tok.Code {
	case CodeLayer:
		b.layer = tok.Value
	case CodeText, CodeExtraText:
		b.text += tok.Value
	case CodeName:
		if b.typ == EntityInsert {
			b.blockName = tok.Value
		}
	case CodeX:
		if f, ok := st.float(tok); ok {
			if b.typ.IsPolyline() {
				b.acc.addX(f)
			} else {
				b.x = f
				b.hasPos = true
			}
		}
	case CodeY:
		if f, ok := st.float(tok); ok {
			if b.typ.IsPolyline() {
				b.acc.addY(f)
			} else {
				b.y = f
				b.hasPos = true
			}
		}
	case CodeX2:
		if f, ok := st.float(tok); ok {
			b.x2 = f
			b.hasPos2 = true
		}
	case CodeY2:
		if f, ok := st.float(tok); ok {
			b.y2 = f
			b.hasPos2 = true
		}
	case CodeRadius:
		if f, ok := st.float(tok); ok {
			b.radius = f
		}
	case CodeStartAngle:
		if f, ok := st.float(tok); ok {
			b.startAngle = f
		}
	case CodeEndAngle:
		if f, ok := st.float(tok); ok {
			b.endAngle = f
		}
	case CodeColor:
		if n, err := strconv.Atoi(tok.Value); err == nil {
			b.color = n
		}
	case CodeFlags:
		if n, err := strconv.Atoi(tok.Value); err == nil {
			b.flags = n
		}
	}
}

// float parses a numeric value, dropping the attribute on failure.
func (st *parseState) float(tok Token) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(tok.Value), 64)
	if err != nil {
		st.log.Debug("dropping malformed numeric value",
			slog.Int("code", tok.Code), slog.String("value", tok.Value))
		return 0, false
	}
	return f, true
}

// finalizeEntity commits the in-flight entity to its type bucket and, if
// inside a block body, to that block's entity list. Entities of unknown
// kinds are tallied but produce no bucket entry.
func (st *parseState) finalizeEntity() {
	b := st.cur
	if b == nil {
		return
	}
	st.cur = nil

	st.doc.TotalEntities++
	st.doc.TypeCounts[b.raw]++
	if !b.known {
		return
	}

	e := b.build(st.closeTol)
	st.bucket(e)
	if st.curBlock != nil {
		st.curBlock.Entities = append(st.curBlock.Entities, e)
	}
}

func (st *parseState) bucket(e *Entity) {
	buckets := &st.doc.Entities
	switch e.Type {
	case EntityText, EntityMText, EntityAttrib:
		// Empty-payload texts count toward totals but carry nothing for
		// the semantic stages.
		if strings.TrimSpace(e.Text) != "" {
			buckets.Texts = append(buckets.Texts, e)
		}
	case EntityCircle:
		buckets.Circles = append(buckets.Circles, e)
	case EntityArc:
		buckets.Arcs = append(buckets.Arcs, e)
	case EntityLine:
		buckets.Lines = append(buckets.Lines, e)
	case EntityLWPolyline, EntityPolyline:
		buckets.Polylines = append(buckets.Polylines, e)
	case EntityInsert:
		buckets.Inserts = append(buckets.Inserts, e)
	case EntityDimension:
		buckets.Dimensions = append(buckets.Dimensions, e)
	case EntityPoint:
		buckets.Points = append(buckets.Points, e)
	}
}

func (st *parseState) commitLayer() {
	if st.layer == nil {
		return
	}
	if st.layer.Name != "" {
		st.doc.Layers[st.layer.Name] = st.layer
	}
	st.layer = nil
}

func (st *parseState) commitBlock() {
	if st.curBlock == nil {
		return
	}
	if st.curBlock.Name != "" {
		st.doc.Blocks[st.curBlock.Name] = st.curBlock
	}
	st.curBlock = nil
	st.expectBlockName = false
}

// entityBuilder is the scratch accumulator for the entity currently being
// assembled. Reset after each entity is finalized.
type entityBuilder struct {
	raw   string
	typ   EntityType
	known bool

	layer      string
	text       string
	blockName  string
	x, y       float64
	hasPos     bool
	x2, y2     float64
	hasPos2    bool
	radius     float64
	startAngle float64
	endAngle   float64
	color      int
	flags      int
	acc        vertexAccumulator
}

const closedFlag = 1

func (b *entityBuilder) build(closeTol float64) *Entity {
	e := &Entity{
		Type:       b.typ,
		Layer:      b.layer,
		Text:       b.text,
		BlockName:  b.blockName,
		Radius:     b.radius,
		StartAngle: b.startAngle,
		EndAngle:   b.endAngle,
		Color:      b.color,
	}
	if e.Layer == "" {
		e.Layer = DefaultLayer
	}
	if b.typ.IsPolyline() {
		e.Vertices = b.acc.finish()
		// The explicit closed flag and geometric closure are independent
		// signals; either marks the polyline closed.
		e.Closed = b.flags&closedFlag != 0 ||
			geo.Polygon{Vertices: e.Vertices}.IsClosed(closeTol)
		if len(e.Vertices) > 0 {
			p := e.Vertices[0]
			e.Position = &p
		}
	} else {
		if b.hasPos {
			e.Position = &geo.Point{X: b.x, Y: b.y}
		}
		if b.hasPos2 {
			e.SecondPosition = &geo.Point{X: b.x2, Y: b.y2}
		}
	}
	return e
}

func ensurePoint(p **geo.Point) *geo.Point {
	if *p == nil {
		*p = &geo.Point{}
	}
	return *p
}
