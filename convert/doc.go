// Package convert turns a SPIR-V module into an ospv artifact.
//
// Conversion runs in two passes. Consumer walks the instruction stream once,
// extracting unresolved types with ExtractType and merging decorations with
// CollectDecoration. GraphBuilder then resolves module ids into a compact,
// deduplicated type array and remaps entry points and decorations onto it.
//
// Decorations may precede or follow the ids they describe. Decorations on
// ids that never become types are dropped, and references that do not
// resolve become schema.InvalidIndex.
package convert
