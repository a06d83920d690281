// Package analysis turns a parsed drawing into fire-safety findings.
//
// The stages run strictly forward over a completed dxf.Document:
//
//   - BuildTree groups entities by the layer they belong to.
//   - Classify matches text labels, block names, and layer names against
//     a bilingual (Hebrew/English) category pattern table, and derives
//     door-swing arcs and closed-polygon rooms from geometry.
//   - Measure computes nearest-neighbor spacing statistics, door leaf
//     widths, and room area aggregates over the classified findings.
//   - Analyze runs the full pipeline and assembles a Report for an
//     external formatting or compliance-review stage.
//
// All stages are pure functions over their inputs; results for a fixed
// document and options are deterministic across runs.
package analysis
