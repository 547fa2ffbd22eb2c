// Package errors provides structured error types for the SPIR-V reflection converter.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the source identifier, a detail message, and the cause chain.
//
// The converter surfaces three families of failure:
//
//	stream parse   PhaseParse, malformed or truncated SPIR-V input
//	I/O            PhaseRead / PhaseWrite, open, read, write or short write
//	serialization  PhaseEncode / PhaseDecode, text codec failures
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseParse, errors.KindInvalidData).
//		Source("shader.spv").
//		Detail("word count %d exceeds remaining input", n).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.IO(errors.PhaseRead, path, cause)
//	err := errors.Serialization(errors.PhaseEncode, "json", cause)
//
// All errors implement the standard error interface and support errors.Is/As;
// Is matches on Phase and Kind only.
package errors
