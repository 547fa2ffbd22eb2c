package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/ospv/schema"
	"github.com/wippyai/ospv/spirv"
)

func decorate(d spirv.Decoration, params ...uint32) spirv.Instruction {
	ops := []spirv.Operand{spirv.IDOperand(1), spirv.EnumOperand(spirv.OperandDecoration, uint32(d))}
	for _, p := range params {
		ops = append(ops, spirv.Int32Operand(p))
	}
	return spirv.Instruction{Opcode: spirv.OpDecorate, Operands: ops}
}

func memberDecorate(member uint32, d spirv.Decoration, params ...uint32) spirv.Instruction {
	ops := []spirv.Operand{
		spirv.IDOperand(1),
		spirv.Int32Operand(member),
		spirv.EnumOperand(spirv.OperandDecoration, uint32(d)),
	}
	for _, p := range params {
		ops = append(ops, spirv.Int32Operand(p))
	}
	return spirv.Instruction{Opcode: spirv.OpMemberDecorate, Operands: ops}
}

func collect(insts ...spirv.Instruction) schema.StructuralDecoration {
	var sd schema.StructuralDecoration
	for _, inst := range insts {
		CollectDecoration(&sd, inst)
	}
	return sd
}

func TestCollectDecorationScalars(t *testing.T) {
	sd := collect(
		decorate(spirv.DecorationSpecID, 4),
		decorate(spirv.DecorationLocation, 2),
		decorate(spirv.DecorationArrayStride, 16),
		decorate(spirv.DecorationOffset, 8),
		decorate(spirv.DecorationRelaxedPrecision),
	)
	d := sd.Decoration

	assert.Equal(t, uint32(4), *d.SpecID)
	assert.Equal(t, uint32(2), *d.Location)
	assert.Equal(t, uint32(16), *d.ArrayStride)
	assert.Equal(t, uint32(8), *d.Offset)
	assert.True(t, *d.RelaxedPrecision)
	assert.Nil(t, sd.Members)
}

func TestCollectDecorationLastWriteWins(t *testing.T) {
	sd := collect(
		decorate(spirv.DecorationBlock),
		decorate(spirv.DecorationBufferBlock),
		decorate(spirv.DecorationNonReadable),
		decorate(spirv.DecorationNonWritable),
		decorate(spirv.DecorationLocation, 1),
		decorate(spirv.DecorationLocation, 5),
	)
	assert.Equal(t, schema.BlockTypeBufferBlock, *sd.Decoration.BlockType)
	assert.Equal(t, schema.VisibilityReadOnly, *sd.Decoration.Visibility)
	assert.Equal(t, uint32(5), *sd.Decoration.Location)
}

func TestCollectDecorationSetBind(t *testing.T) {
	sd := collect(decorate(spirv.DecorationDescriptorSet, 3), decorate(spirv.DecorationBinding, 7))
	assert.Equal(t, schema.SetBind{Set: 3, Binding: 7}, *sd.Decoration.SetBind)

	sd = collect(decorate(spirv.DecorationBinding, 7), decorate(spirv.DecorationDescriptorSet, 3))
	assert.Equal(t, schema.SetBind{Set: 3, Binding: 7}, *sd.Decoration.SetBind)
}

func TestCollectDecorationMatrix(t *testing.T) {
	sd := collect(decorate(spirv.DecorationMatrixStride, 16))
	assert.Nil(t, sd.Decoration.Matrix)

	sd = collect(
		decorate(spirv.DecorationRowMajor),
		decorate(spirv.DecorationMatrixStride, 16),
	)
	assert.Equal(t, schema.MatrixLayout{Major: schema.MatrixMajorRow, Stride: 16}, *sd.Decoration.Matrix)

	sd = collect(
		decorate(spirv.DecorationRowMajor),
		decorate(spirv.DecorationMatrixStride, 16),
		decorate(spirv.DecorationColMajor),
	)
	assert.Equal(t, schema.MatrixLayout{Major: schema.MatrixMajorColumn}, *sd.Decoration.Matrix)
}

func TestCollectDecorationIgnoresUnmodeled(t *testing.T) {
	sd := collect(
		decorate(spirv.DecorationBuiltIn, 0),
		decorate(spirv.DecorationFlat),
		decorate(spirv.DecorationLocation),
		spirv.Instruction{Opcode: spirv.OpDecorate, Operands: []spirv.Operand{spirv.IDOperand(1)}},
		spirv.Instruction{Opcode: spirv.OpStore, Operands: []spirv.Operand{spirv.IDOperand(1)}},
	)
	assert.True(t, sd.Decoration.IsZero())
	assert.Nil(t, sd.Members)
}

func TestCollectNames(t *testing.T) {
	name := func(s string) spirv.Instruction {
		return spirv.Instruction{Opcode: spirv.OpName, Operands: []spirv.Operand{spirv.IDOperand(1), spirv.StringOperand(s)}}
	}
	memberName := func(idx uint32, s string) spirv.Instruction {
		return spirv.Instruction{Opcode: spirv.OpMemberName, Operands: []spirv.Operand{
			spirv.IDOperand(1), spirv.Int32Operand(idx), spirv.StringOperand(s),
		}}
	}

	sd := collect(name("Light"), name(""), memberName(2, "radius"))
	assert.Equal(t, "Light", *sd.Decoration.Name)
	require.Len(t, sd.Members, 3)
	assert.Nil(t, sd.Members[0].Name)
	assert.Equal(t, "radius", *sd.Members[2].Name)

	sd = collect(memberName(1, ""))
	require.Len(t, sd.Members, 2)
	assert.Nil(t, sd.Members[1].Name)
}

func TestCollectMemberDecorations(t *testing.T) {
	sd := collect(
		memberDecorate(1, spirv.DecorationOffset, 64),
		memberDecorate(0, spirv.DecorationColMajor),
		memberDecorate(0, spirv.DecorationMatrixStride, 16),
		memberDecorate(0, spirv.DecorationOffset, 0),
	)
	assert.True(t, sd.Decoration.IsZero())
	require.Len(t, sd.Members, 2)
	assert.Equal(t, uint32(0), *sd.Members[0].Offset)
	assert.Equal(t, schema.MatrixLayout{Major: schema.MatrixMajorColumn, Stride: 16}, *sd.Members[0].Matrix)
	assert.Equal(t, uint32(64), *sd.Members[1].Offset)
}

func TestCollectIgnoresMemberIndexPastLimit(t *testing.T) {
	name := spirv.Instruction{Opcode: spirv.OpMemberName, Operands: []spirv.Operand{
		spirv.IDOperand(1), spirv.Int32Operand(0xffffffff), spirv.StringOperand("huge"),
	}}
	sd := collect(
		name,
		memberDecorate(spirv.MaxStructMembers, spirv.DecorationOffset, 4),
		memberDecorate(0xffffffff, spirv.DecorationColMajor),
	)
	assert.Nil(t, sd.Members)

	sd = collect(memberDecorate(spirv.MaxStructMembers-1, spirv.DecorationOffset, 4))
	require.Len(t, sd.Members, spirv.MaxStructMembers)
	assert.Equal(t, uint32(4), *sd.Members[spirv.MaxStructMembers-1].Offset)
}

func TestIsDecoration(t *testing.T) {
	assert.True(t, IsDecoration(spirv.OpName))
	assert.True(t, IsDecoration(spirv.OpMemberDecorate))
	assert.False(t, IsDecoration(spirv.OpDecorationGroup))
	assert.False(t, IsDecoration(spirv.OpEntryPoint))
}
