package dxf

// Group codes consumed by the assembler. The DXF tag stream is a flat
// sequence of (code, value) line pairs; the code identifies the meaning
// of the value that follows it.
const (
	CodeMarker     = 0  // structural keyword or entity type name
	CodeText       = 1  // primary text value
	CodeName       = 2  // name (section, block, layer, referenced block)
	CodeExtraText  = 3  // additional text ($DWGCODEPAGE, MTEXT continuation)
	CodeHeaderVar  = 9  // header variable name ($EXTMIN, $INSUNITS, ...)
	CodeLayer      = 8  // layer an entity belongs to
	CodeX          = 10 // primary X ordinate
	CodeX2         = 11 // secondary X ordinate
	CodeY          = 20 // primary Y ordinate
	CodeY2         = 21 // secondary Y ordinate
	CodeRadius     = 40 // radius, text height
	CodeStartAngle = 50 // arc start angle (degrees)
	CodeEndAngle   = 51 // arc end angle (degrees)
	CodeColor      = 62 // ACI color number; negative means layer off
	CodeFlags      = 70 // bit-coded flags
)

// Token is a single group code / value pair from the tag stream.
type Token struct {
	Code  int
	Value string
}
