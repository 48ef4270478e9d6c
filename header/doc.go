// Package header reads and writes the C header that carries the TK1 memory
// map.
//
// Parse reads a header made of enum entries and #define lines, evaluating
// every value. Compare reports where a parsed header has drifted from the
// map in package mem. RenderC and RenderGo write the map back out for C and
// Go consumers.
package header
