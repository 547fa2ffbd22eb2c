package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseRead    Phase = "read"    // input file loading
	PhaseParse   Phase = "parse"   // SPIR-V instruction stream decoding
	PhaseConvert Phase = "convert" // type graph resolution
	PhaseEncode  Phase = "encode"  // artifact to text
	PhaseDecode  Phase = "decode"  // text to artifact
	PhaseWrite   Phase = "write"   // output file writing
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidData   Kind = "invalid_data"
	KindInvalidEnum   Kind = "invalid_enum"
	KindTruncated     Kind = "truncated"
	KindIO            Kind = "io"
	KindShortRead     Kind = "short_read"
	KindShortWrite    Kind = "short_write"
	KindSerialization Kind = "serialization"
	KindTypeCycle     Kind = "type_cycle"
	KindUnsupported   Kind = "unsupported"
	KindInvalidInput  Kind = "invalid_input"
)

// Error is the structured error type used throughout the converter
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Source string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Source != "" {
		b.WriteString(" in ")
		b.WriteString(e.Source)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// WithSource returns a copy of the error attributed to the given source.
// An existing source is kept.
func (e *Error) WithSource(source string) *Error {
	c := *e
	if c.Source == "" {
		c.Source = source
	}
	return &c
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Source sets the source identifier (usually a file path)
func (b *Builder) Source(source string) *Builder {
	b.err.Source = source
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// StreamParse creates a malformed-input error raised by the instruction decoder.
// Offset is the byte offset of the failing word.
func StreamParse(kind Kind, offset int, detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   kind,
		Detail: fmt.Sprintf("at offset 0x%x: %s", offset, detail),
		Value:  offset,
		Cause:  cause,
	}
}

// InvalidEnum creates an unknown-enumerant error for the decoder
func InvalidEnum(offset int, value uint32, enumType string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindInvalidEnum,
		Detail: fmt.Sprintf("at offset 0x%x: invalid %s enumerant %d", offset, enumType, value),
		Value:  value,
	}
}

// IO creates an I/O failure error for the given file
func IO(phase Phase, path string, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindIO,
		Source: path,
		Cause:  cause,
	}
}

// ShortRead creates an error for a read that returned fewer bytes than the file size
func ShortRead(path string, got, want int) *Error {
	return &Error{
		Phase:  PhaseRead,
		Kind:   KindShortRead,
		Source: path,
		Detail: fmt.Sprintf("read %d of %d bytes", got, want),
	}
}

// ShortWrite creates an error for a write that did not write everything
func ShortWrite(path string, got, want int) *Error {
	return &Error{
		Phase:  PhaseWrite,
		Kind:   KindShortWrite,
		Source: path,
		Detail: fmt.Sprintf("wrote %d of %d bytes", got, want),
	}
}

// Serialization creates a text codec failure
func Serialization(phase Phase, format string, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindSerialization,
		Detail: format,
		Cause:  cause,
	}
}

// TypeCycle creates an error for a type graph that references itself
func TypeCycle(id uint32) *Error {
	return &Error{
		Phase:  PhaseConvert,
		Kind:   KindTypeCycle,
		Detail: fmt.Sprintf("type %%%d is part of a reference cycle", id),
		Value:  id,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
