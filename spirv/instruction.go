package spirv

import "fmt"

// OperandKind identifies how an operand's words were interpreted.
type OperandKind uint8

// Operand kinds.
const (
	OperandIDRef OperandKind = iota
	OperandLiteralInt32
	OperandLiteralInt64
	OperandLiteralFloat32
	OperandLiteralFloat64
	OperandLiteralString
	OperandExecutionModel
	OperandStorageClass
	OperandDim
	OperandImageFormat
	OperandDecoration
)

var operandKindNames = [...]string{
	OperandIDRef:          "IdRef",
	OperandLiteralInt32:   "LiteralInt32",
	OperandLiteralInt64:   "LiteralInt64",
	OperandLiteralFloat32: "LiteralFloat32",
	OperandLiteralFloat64: "LiteralFloat64",
	OperandLiteralString:  "LiteralString",
	OperandExecutionModel: "ExecutionModel",
	OperandStorageClass:   "StorageClass",
	OperandDim:            "Dim",
	OperandImageFormat:    "ImageFormat",
	OperandDecoration:     "Decoration",
}

func (k OperandKind) String() string {
	if int(k) < len(operandKindNames) {
		return operandKindNames[k]
	}
	return fmt.Sprintf("OperandKind(%d)", uint8(k))
}

// Operand is one typed instruction operand.
// Word holds ids, 32-bit literals and enumerants; Long holds 64-bit literals.
type Operand struct {
	Str     string
	Long    uint64
	Float64 float64
	Word    uint32
	Float32 float32
	Kind    OperandKind
}

// IDOperand returns an id reference operand.
func IDOperand(id uint32) Operand {
	return Operand{Kind: OperandIDRef, Word: id}
}

// Int32Operand returns a 32-bit literal operand.
func Int32Operand(v uint32) Operand {
	return Operand{Kind: OperandLiteralInt32, Word: v}
}

// Int64Operand returns a 64-bit literal operand.
func Int64Operand(v uint64) Operand {
	return Operand{Kind: OperandLiteralInt64, Long: v}
}

// Float32Operand returns a 32-bit float literal operand.
func Float32Operand(v float32) Operand {
	return Operand{Kind: OperandLiteralFloat32, Float32: v}
}

// Float64Operand returns a 64-bit float literal operand.
func Float64Operand(v float64) Operand {
	return Operand{Kind: OperandLiteralFloat64, Float64: v}
}

// StringOperand returns a literal string operand.
func StringOperand(s string) Operand {
	return Operand{Kind: OperandLiteralString, Str: s}
}

// EnumOperand returns an enumerant operand of the given kind.
func EnumOperand(kind OperandKind, v uint32) Operand {
	return Operand{Kind: kind, Word: v}
}

// ID returns the referenced id, or 0 when the operand is not an id reference.
func (o Operand) ID() uint32 {
	if o.Kind == OperandIDRef {
		return o.Word
	}
	return 0
}

// Int32 returns the 32-bit literal, or def when the operand is of another kind.
func (o Operand) Int32(def uint32) uint32 {
	if o.Kind == OperandLiteralInt32 {
		return o.Word
	}
	return def
}

// Literal returns the literal string and whether the operand is one.
func (o Operand) Literal() (string, bool) {
	if o.Kind == OperandLiteralString {
		return o.Str, true
	}
	return "", false
}

// Instruction is one decoded instruction.
// ResultType and ResultID are 0 when the opcode has none.
type Instruction struct {
	Operands   []Operand
	ResultType uint32
	ResultID   uint32
	Opcode     OpCode
}

// HasResult reports whether the instruction produces a result id.
func (i Instruction) HasResult() bool {
	return i.ResultID != 0
}

// Operand returns the operand at idx and whether it exists.
func (i Instruction) Operand(idx int) (Operand, bool) {
	if idx < 0 || idx >= len(i.Operands) {
		return Operand{}, false
	}
	return i.Operands[idx], true
}
