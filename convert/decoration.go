package convert

import (
	"github.com/wippyai/ospv/schema"
	"github.com/wippyai/ospv/spirv"
)

// CollectDecoration merges one OpName, OpMemberName, OpDecorate or
// OpMemberDecorate into sd. The target id operand is not inspected.
// Other opcodes, instructions with missing operands and member indices of
// spirv.MaxStructMembers or more leave sd unchanged.
func CollectDecoration(sd *schema.StructuralDecoration, inst spirv.Instruction) {
	switch inst.Opcode {
	case spirv.OpName:
		if o, ok := inst.Operand(1); ok {
			if name, ok := o.Literal(); ok {
				sd.SetName(name)
			}
		}

	case spirv.OpMemberName:
		idx, ok := memberIndex(inst)
		if !ok {
			return
		}
		if o, ok := inst.Operand(2); ok {
			if name, ok := o.Literal(); ok {
				sd.SetMemberName(idx, name)
			}
		}

	case spirv.OpDecorate:
		applyDecoration(&sd.Decoration, inst, 1)

	case spirv.OpMemberDecorate:
		idx, ok := memberIndex(inst)
		if !ok {
			return
		}
		// Member lists only grow for decorations that carry a kind.
		if o, ok := inst.Operand(2); !ok || o.Kind != spirv.OperandDecoration {
			return
		}
		applyDecoration(sd.Member(idx), inst, 2)
	}
}

// IsDecoration reports whether CollectDecoration handles the opcode.
func IsDecoration(op spirv.OpCode) bool {
	switch op {
	case spirv.OpName, spirv.OpMemberName, spirv.OpDecorate, spirv.OpMemberDecorate:
		return true
	}
	return false
}

// memberIndex reads the member operand. Indices past the struct member
// limit cannot name a member and are rejected.
func memberIndex(inst spirv.Instruction) (uint32, bool) {
	o, ok := inst.Operand(1)
	if !ok || o.Kind != spirv.OperandLiteralInt32 || o.Word >= spirv.MaxStructMembers {
		return 0, false
	}
	return o.Word, true
}

// applyDecoration reads the decoration kind at operand at and its literal,
// if any, at the following operand.
func applyDecoration(d *schema.VarDecoration, inst spirv.Instruction, at int) {
	o, ok := inst.Operand(at)
	if !ok || o.Kind != spirv.OperandDecoration {
		return
	}

	param := func(set func(uint32)) {
		if p, ok := inst.Operand(at + 1); ok && p.Kind == spirv.OperandLiteralInt32 {
			set(p.Word)
		}
	}

	switch spirv.Decoration(o.Word) {
	case spirv.DecorationRelaxedPrecision:
		d.RelaxPrecision()
	case spirv.DecorationSpecID:
		param(d.SetSpecID)
	case spirv.DecorationLocation:
		param(d.SetLocation)

	case spirv.DecorationBlock:
		d.SetBlockType(schema.BlockTypeBlock)
	case spirv.DecorationBufferBlock:
		d.SetBlockType(schema.BlockTypeBufferBlock)

	case spirv.DecorationRowMajor:
		d.SetMatrixMajor(schema.MatrixMajorRow)
	case spirv.DecorationColMajor:
		d.SetMatrixMajor(schema.MatrixMajorColumn)
	case spirv.DecorationMatrixStride:
		param(d.SetMatrixStride)

	case spirv.DecorationArrayStride:
		param(d.SetArrayStride)

	case spirv.DecorationNonWritable:
		d.SetVisibility(schema.VisibilityReadOnly)
	case spirv.DecorationNonReadable:
		d.SetVisibility(schema.VisibilityWriteOnly)

	case spirv.DecorationBinding:
		param(d.SetBinding)
	case spirv.DecorationDescriptorSet:
		param(d.SetDescriptorSet)

	case spirv.DecorationOffset:
		param(d.SetOffset)
	}
}
