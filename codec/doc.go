// Package codec renders artifacts to text and parses them back.
//
// JSON is the canonical form. YAML is produced from the same JSON tree, so
// both formats share field names and the "type" discriminators.
//
// Output is compact by default. Building with the debug tag makes
// DefaultOptions pretty-print.
package codec
