// Package dxf implements a streaming decoder for the line-oriented,
// tag-value drawing-exchange format used by CAD tools.
//
// The decoder is structured as two layers:
//
//   - Tokenizer: converts a line stream into (group code, value) pairs,
//     pulling lines lazily so files of hundreds of megabytes parse in
//     bounded memory.
//   - Parser: a state machine over the token stream that tracks the
//     current section, block, and layer-table entry, and emits assembled
//     Entity records plus layer and block metadata into a Document.
//
// Only the entity kinds needed for fire-safety analysis are
// reconstructed; unknown entity types and sections are tolerated and
// tallied without semantic output. Content-level anomalies (malformed
// codes, non-numeric ordinates) never abort a parse — only I/O failures
// surface as errors.
//
// Usage:
//
//	doc, err := dxf.ParseFile("plan.dxf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(doc.TotalEntities, len(doc.Layers), len(doc.Blocks))
package dxf
