// Package schema defines the ospv artifact: the resolved type array, the
// decoration map and the entry point list produced for one SPIR-V module.
//
// Types and constant values are closed sums. On the wire each variant is a
// JSON object discriminated by its "type" key:
//
//	{"type":"vector","ref":0,"size":3}
//	{"type":"spec_constant","ref":0,"value":{"type":"int32","value":-1}}
//
// Non-finite float constants are written as the strings "NaN", "Infinity"
// and "-Infinity" so every artifact survives a round trip.
package schema
