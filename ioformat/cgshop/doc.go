// Package cgshop reads and writes the CGSHOP'22 challenge format: an
// instance is a JSON document describing n points and m segments ("n", "m",
// "x", "y", "edge_i", "edge_j", "id"), and a solution is a JSON document
// giving a color per segment ("type", "instance", "num_colors", "colors").
//
// JSON (de)serialization goes through goccy/go-json: instance files run
// into the tens of megabytes, and the documents are flat enough that the
// drop-in replacement for encoding/json needs no special handling.
package cgshop
