package spirv

import (
	"encoding/binary"
	"math"

	spvbin "github.com/wippyai/ospv/spirv/internal/binary"
)

// ModuleBuilder assembles a SPIR-V binary module instruction by instruction.
// Instructions are written in the order they are added, so callers control
// whether decorations precede or follow the ids they target.
type ModuleBuilder struct {
	insts     [][]uint32
	version   uint32
	generator uint32
	nextID    uint32
}

// NewModuleBuilder creates a builder for a module of the given header version.
func NewModuleBuilder(version uint32) *ModuleBuilder {
	return &ModuleBuilder{version: version, nextID: 1}
}

// AllocID allocates a fresh id.
func (b *ModuleBuilder) AllocID() uint32 {
	id := b.nextID
	b.nextID++
	return id
}

// ReserveID makes sure ids up to and including id are never handed out by AllocID.
func (b *ModuleBuilder) ReserveID(id uint32) {
	if id >= b.nextID {
		b.nextID = id + 1
	}
}

// Emit appends a raw instruction.
func (b *ModuleBuilder) Emit(op OpCode, words ...uint32) {
	inst := make([]uint32, 0, len(words)+1)
	inst = append(inst, uint32(len(words)+1)<<16|uint32(op))
	inst = append(inst, words...)
	b.insts = append(b.insts, inst)
}

// Capability emits OpCapability.
func (b *ModuleBuilder) Capability(capability uint32) {
	b.Emit(OpCapability, capability)
}

// MemoryModel emits OpMemoryModel.
func (b *ModuleBuilder) MemoryModel(addressing, memory uint32) {
	b.Emit(OpMemoryModel, addressing, memory)
}

// EntryPoint emits OpEntryPoint.
func (b *ModuleBuilder) EntryPoint(model ExecutionModel, function uint32, name string, interfaces ...uint32) {
	words := []uint32{uint32(model), function}
	words = append(words, spvbin.EncodeString(name)...)
	words = append(words, interfaces...)
	b.Emit(OpEntryPoint, words...)
}

// Name emits OpName.
func (b *ModuleBuilder) Name(id uint32, name string) {
	b.Emit(OpName, append([]uint32{id}, spvbin.EncodeString(name)...)...)
}

// MemberName emits OpMemberName.
func (b *ModuleBuilder) MemberName(id, member uint32, name string) {
	b.Emit(OpMemberName, append([]uint32{id, member}, spvbin.EncodeString(name)...)...)
}

// Decorate emits OpDecorate.
func (b *ModuleBuilder) Decorate(id uint32, decoration Decoration, params ...uint32) {
	b.Emit(OpDecorate, append([]uint32{id, uint32(decoration)}, params...)...)
}

// MemberDecorate emits OpMemberDecorate.
func (b *ModuleBuilder) MemberDecorate(id, member uint32, decoration Decoration, params ...uint32) {
	b.Emit(OpMemberDecorate, append([]uint32{id, member, uint32(decoration)}, params...)...)
}

func (b *ModuleBuilder) typeDecl(op OpCode, operands ...uint32) uint32 {
	id := b.AllocID()
	b.Emit(op, append([]uint32{id}, operands...)...)
	return id
}

// TypeVoid emits OpTypeVoid.
func (b *ModuleBuilder) TypeVoid() uint32 { return b.typeDecl(OpTypeVoid) }

// TypeBool emits OpTypeBool.
func (b *ModuleBuilder) TypeBool() uint32 { return b.typeDecl(OpTypeBool) }

// TypeInt emits OpTypeInt.
func (b *ModuleBuilder) TypeInt(width uint32, signed bool) uint32 {
	var s uint32
	if signed {
		s = 1
	}
	return b.typeDecl(OpTypeInt, width, s)
}

// TypeFloat emits OpTypeFloat.
func (b *ModuleBuilder) TypeFloat(width uint32) uint32 {
	return b.typeDecl(OpTypeFloat, width)
}

// TypeVector emits OpTypeVector.
func (b *ModuleBuilder) TypeVector(component, count uint32) uint32 {
	return b.typeDecl(OpTypeVector, component, count)
}

// TypeMatrix emits OpTypeMatrix.
func (b *ModuleBuilder) TypeMatrix(column, count uint32) uint32 {
	return b.typeDecl(OpTypeMatrix, column, count)
}

// ImageDesc holds the OpTypeImage operands after the sampled type.
type ImageDesc struct {
	Dim          Dim
	Depth        uint32
	Arrayed      bool
	Multisampled bool
	Sampled      uint32
	Format       ImageFormat
}

// TypeImage emits OpTypeImage.
func (b *ModuleBuilder) TypeImage(sampledType uint32, desc ImageDesc) uint32 {
	return b.typeDecl(OpTypeImage, sampledType, uint32(desc.Dim), desc.Depth,
		boolWord(desc.Arrayed), boolWord(desc.Multisampled), desc.Sampled, uint32(desc.Format))
}

// TypeSampler emits OpTypeSampler.
func (b *ModuleBuilder) TypeSampler() uint32 { return b.typeDecl(OpTypeSampler) }

// TypeSampledImage emits OpTypeSampledImage.
func (b *ModuleBuilder) TypeSampledImage(image uint32) uint32 {
	return b.typeDecl(OpTypeSampledImage, image)
}

// TypeArray emits OpTypeArray; length is the id of a constant.
func (b *ModuleBuilder) TypeArray(element, length uint32) uint32 {
	return b.typeDecl(OpTypeArray, element, length)
}

// TypeRuntimeArray emits OpTypeRuntimeArray.
func (b *ModuleBuilder) TypeRuntimeArray(element uint32) uint32 {
	return b.typeDecl(OpTypeRuntimeArray, element)
}

// TypeStruct emits OpTypeStruct.
func (b *ModuleBuilder) TypeStruct(members ...uint32) uint32 {
	return b.typeDecl(OpTypeStruct, members...)
}

// TypePointer emits OpTypePointer.
func (b *ModuleBuilder) TypePointer(class StorageClass, base uint32) uint32 {
	return b.typeDecl(OpTypePointer, uint32(class), base)
}

// TypeAccelerationStructure emits OpTypeAccelerationStructureKHR.
func (b *ModuleBuilder) TypeAccelerationStructure() uint32 {
	return b.typeDecl(OpTypeAccelerationStructureKHR)
}

func (b *ModuleBuilder) valueDecl(op OpCode, resultType uint32, operands ...uint32) uint32 {
	id := b.AllocID()
	b.Emit(op, append([]uint32{resultType, id}, operands...)...)
	return id
}

// Constant emits OpConstant with raw literal words (low-order word first).
func (b *ModuleBuilder) Constant(resultType uint32, words ...uint32) uint32 {
	return b.valueDecl(OpConstant, resultType, words...)
}

// ConstantFloat32 emits a 32-bit float OpConstant.
func (b *ModuleBuilder) ConstantFloat32(resultType uint32, v float32) uint32 {
	return b.Constant(resultType, math.Float32bits(v))
}

// SpecConstant emits OpSpecConstant with raw literal words (low-order word first).
func (b *ModuleBuilder) SpecConstant(resultType uint32, words ...uint32) uint32 {
	return b.valueDecl(OpSpecConstant, resultType, words...)
}

// SpecConstantBool emits OpSpecConstantTrue or OpSpecConstantFalse.
func (b *ModuleBuilder) SpecConstantBool(resultType uint32, v bool) uint32 {
	if v {
		return b.valueDecl(OpSpecConstantTrue, resultType)
	}
	return b.valueDecl(OpSpecConstantFalse, resultType)
}

// Variable emits OpVariable.
func (b *ModuleBuilder) Variable(pointerType uint32, class StorageClass) uint32 {
	return b.valueDecl(OpVariable, pointerType, uint32(class))
}

// Build encodes the module in little-endian byte order.
func (b *ModuleBuilder) Build() []byte {
	return b.BuildWithOrder(binary.LittleEndian)
}

// BuildWithOrder encodes the module in the given byte order.
func (b *ModuleBuilder) BuildWithOrder(order binary.ByteOrder) []byte {
	total := HeaderWords
	for _, inst := range b.insts {
		total += len(inst)
	}

	buf := make([]byte, total*spvbin.WordSize)
	offset := 0
	put := func(w uint32) {
		order.PutUint32(buf[offset:], w)
		offset += spvbin.WordSize
	}

	put(Magic)
	put(b.version)
	put(b.generator)
	put(b.nextID)
	put(0)
	for _, inst := range b.insts {
		for _, w := range inst {
			put(w)
		}
	}
	return buf
}

func boolWord(v bool) uint32 {
	if v {
		return 1
	}
	return 0
}
