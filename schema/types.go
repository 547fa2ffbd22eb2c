package schema

// InvalidIndex marks a reference that does not resolve to any type in the artifact.
const InvalidIndex uint32 = 0xFFFFFFFF

// TypeKind discriminates Type variants. It is the "type" key on the wire.
type TypeKind string

const (
	TypeKindVoid                  TypeKind = "void"
	TypeKindBool                  TypeKind = "bool"
	TypeKindInt                   TypeKind = "int"
	TypeKindFloat                 TypeKind = "float"
	TypeKindVector                TypeKind = "vector"
	TypeKindMatrix                TypeKind = "matrix"
	TypeKindStruct                TypeKind = "struct"
	TypeKindPointer               TypeKind = "pointer"
	TypeKindArray                 TypeKind = "array"
	TypeKindRuntimeArray          TypeKind = "runtime_array"
	TypeKindImage                 TypeKind = "image"
	TypeKindSampledImage          TypeKind = "sampled_image"
	TypeKindSampler               TypeKind = "sampler"
	TypeKindAccelerationStructure TypeKind = "acceleration_structure"
	TypeKindSpecConstantBool      TypeKind = "spec_constant_bool"
	TypeKindSpecConstant          TypeKind = "spec_constant"
	TypeKindConstant              TypeKind = "constant"
	TypeKindVariable              TypeKind = "variable"
	TypeKindUnknown               TypeKind = "unknown"
)

// Type is one node of the type graph. Ref fields hold module ids before
// resolution and indices into Artifact.Types after.
type Type interface {
	Kind() TypeKind
	isType()
}

type Void struct{}

type Bool struct{}

type Int struct {
	Signed bool   `json:"signed"`
	Size   uint32 `json:"size"`
}

type Float struct {
	Size uint32 `json:"size"`
}

type Vector struct {
	Ref  uint32 `json:"ref"`
	Size uint32 `json:"size"`
}

type Matrix struct {
	Ref  uint32 `json:"ref"`
	Size uint32 `json:"size"`
}

type Struct struct {
	Refs []uint32 `json:"refs"`
}

type Pointer struct {
	Class StorageClass `json:"class"`
	Ref   uint32       `json:"ref"`
}

// Array is a fixed-length array. Size references the constant holding the length.
type Array struct {
	Ref  uint32 `json:"ref"`
	Size uint32 `json:"size"`
}

type RuntimeArray struct {
	Ref uint32 `json:"ref"`
}

// ImageInfo holds the image operands that are not references.
type ImageInfo struct {
	Dim          ImageDim     `json:"dim"`
	Depth        ImageDepth   `json:"depth"`
	Sampled      ImageSampled `json:"sampled"`
	Format       ImageFormat  `json:"format"`
	Arrayed      bool         `json:"arrayed"`
	Multisampled bool         `json:"multisampled"`
}

// Image is an image type; Ref is its sampled component type.
type Image struct {
	Image ImageInfo `json:"image"`
	Ref   uint32    `json:"ref"`
}

type SampledImage struct {
	Ref uint32 `json:"ref"`
}

type Sampler struct{}

type AccelerationStructure struct{}

type SpecConstantBool struct {
	Value bool `json:"value"`
}

// SpecConstant is a specialization constant; Ref is its scalar type.
type SpecConstant struct {
	Value ConstantValue `json:"value"`
	Ref   uint32        `json:"ref"`
}

// Constant is a plain scalar constant. Array lengths point at these.
type Constant struct {
	Value ConstantValue `json:"value"`
	Ref   uint32        `json:"ref"`
}

// Variable is a global variable; Ref is its pointer type.
type Variable struct {
	Class StorageClass `json:"class"`
	Ref   uint32       `json:"ref"`
}

// Unknown stands in for instructions the converter does not model.
// It never appears in a resolved artifact.
type Unknown struct{}

func (Void) Kind() TypeKind                  { return TypeKindVoid }
func (Bool) Kind() TypeKind                  { return TypeKindBool }
func (Int) Kind() TypeKind                   { return TypeKindInt }
func (Float) Kind() TypeKind                 { return TypeKindFloat }
func (Vector) Kind() TypeKind                { return TypeKindVector }
func (Matrix) Kind() TypeKind                { return TypeKindMatrix }
func (Struct) Kind() TypeKind                { return TypeKindStruct }
func (Pointer) Kind() TypeKind               { return TypeKindPointer }
func (Array) Kind() TypeKind                 { return TypeKindArray }
func (RuntimeArray) Kind() TypeKind          { return TypeKindRuntimeArray }
func (Image) Kind() TypeKind                 { return TypeKindImage }
func (SampledImage) Kind() TypeKind          { return TypeKindSampledImage }
func (Sampler) Kind() TypeKind               { return TypeKindSampler }
func (AccelerationStructure) Kind() TypeKind { return TypeKindAccelerationStructure }
func (SpecConstantBool) Kind() TypeKind      { return TypeKindSpecConstantBool }
func (SpecConstant) Kind() TypeKind          { return TypeKindSpecConstant }
func (Constant) Kind() TypeKind              { return TypeKindConstant }
func (Variable) Kind() TypeKind              { return TypeKindVariable }
func (Unknown) Kind() TypeKind               { return TypeKindUnknown }

func (Void) isType()                  {}
func (Bool) isType()                  {}
func (Int) isType()                   {}
func (Float) isType()                 {}
func (Vector) isType()                {}
func (Matrix) isType()                {}
func (Struct) isType()                {}
func (Pointer) isType()               {}
func (Array) isType()                 {}
func (RuntimeArray) isType()          {}
func (Image) isType()                 {}
func (SampledImage) isType()          {}
func (Sampler) isType()               {}
func (AccelerationStructure) isType() {}
func (SpecConstantBool) isType()      {}
func (SpecConstant) isType()          {}
func (Constant) isType()              {}
func (Variable) isType()              {}
func (Unknown) isType()               {}

// Refs returns the references held by t in field order.
func Refs(t Type) []uint32 {
	switch v := t.(type) {
	case Vector:
		return []uint32{v.Ref}
	case Matrix:
		return []uint32{v.Ref}
	case Struct:
		return append([]uint32(nil), v.Refs...)
	case Pointer:
		return []uint32{v.Ref}
	case Array:
		return []uint32{v.Ref, v.Size}
	case RuntimeArray:
		return []uint32{v.Ref}
	case Image:
		return []uint32{v.Ref}
	case SampledImage:
		return []uint32{v.Ref}
	case SpecConstant:
		return []uint32{v.Ref}
	case Constant:
		return []uint32{v.Ref}
	case Variable:
		return []uint32{v.Ref}
	default:
		return nil
	}
}

// ConstantKind discriminates ConstantValue variants.
type ConstantKind string

const (
	ConstantKindInt32   ConstantKind = "int32"
	ConstantKindInt64   ConstantKind = "int64"
	ConstantKindFloat32 ConstantKind = "float32"
	ConstantKindFloat64 ConstantKind = "float64"
)

// ConstantValue is the literal value of a constant.
type ConstantValue interface {
	Kind() ConstantKind
	isConstantValue()
}

// Int32Value is a 32-bit literal reinterpreted as signed.
type Int32Value struct {
	Value int32 `json:"value"`
}

// Int64Value is a 64-bit literal split into signed halves.
type Int64Value struct {
	High int32 `json:"high"`
	Low  int32 `json:"low"`
}

type Float32Value struct {
	Value float32 `json:"value"`
}

type Float64Value struct {
	Value float64 `json:"value"`
}

func (Int32Value) Kind() ConstantKind   { return ConstantKindInt32 }
func (Int64Value) Kind() ConstantKind   { return ConstantKindInt64 }
func (Float32Value) Kind() ConstantKind { return ConstantKindFloat32 }
func (Float64Value) Kind() ConstantKind { return ConstantKindFloat64 }

func (Int32Value) isConstantValue()   {}
func (Int64Value) isConstantValue()   {}
func (Float32Value) isConstantValue() {}
func (Float64Value) isConstantValue() {}

// Int64 reassembles the 64-bit value.
func (v Int64Value) Int64() int64 {
	return int64(uint64(uint32(v.High))<<32 | uint64(uint32(v.Low)))
}
