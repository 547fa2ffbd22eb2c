package convert

import (
	"github.com/wippyai/ospv/schema"
	"github.com/wippyai/ospv/spirv"
)

const (
	defaultBitWidth = 32
	defaultEntry    = "main"
)

// Extracts reports whether ExtractType models the opcode. Result ids of
// other opcodes are not types and are not recorded.
func Extracts(op spirv.OpCode) bool {
	switch op {
	case spirv.OpTypeVoid, spirv.OpTypeBool, spirv.OpTypeInt, spirv.OpTypeFloat,
		spirv.OpTypeVector, spirv.OpTypeMatrix, spirv.OpTypeStruct, spirv.OpTypePointer,
		spirv.OpTypeArray, spirv.OpTypeRuntimeArray, spirv.OpTypeImage,
		spirv.OpTypeSampler, spirv.OpTypeSampledImage, spirv.OpTypeAccelerationStructureKHR,
		spirv.OpSpecConstantTrue, spirv.OpSpecConstantFalse, spirv.OpSpecConstant,
		spirv.OpConstant, spirv.OpVariable:
		return true
	default:
		return false
	}
}

// ExtractType turns one instruction into an unresolved Type. Ref fields hold
// raw module ids. Missing operands fall back to defaults and opcodes outside
// Extracts yield Unknown.
func ExtractType(inst spirv.Instruction) schema.Type {
	// Missing operands read as an IdRef of 0.
	op := func(idx int) spirv.Operand {
		o, _ := inst.Operand(idx)
		return o
	}
	literal := func(idx int, def uint32) uint32 {
		o, ok := inst.Operand(idx)
		if !ok {
			return def
		}
		return o.Int32(def)
	}

	switch inst.Opcode {
	case spirv.OpTypeVoid:
		return schema.Void{}
	case spirv.OpTypeBool:
		return schema.Bool{}

	case spirv.OpTypeInt:
		return schema.Int{
			Size:   literal(0, defaultBitWidth),
			Signed: literal(1, 0) != 0,
		}
	case spirv.OpTypeFloat:
		return schema.Float{Size: literal(0, defaultBitWidth)}

	case spirv.OpTypeVector:
		return schema.Vector{Ref: op(0).ID(), Size: literal(1, 0)}
	case spirv.OpTypeMatrix:
		return schema.Matrix{Ref: op(0).ID(), Size: literal(1, 0)}

	case spirv.OpTypeStruct:
		refs := make([]uint32, len(inst.Operands))
		for i, o := range inst.Operands {
			refs[i] = o.ID()
		}
		return schema.Struct{Refs: refs}

	case spirv.OpTypePointer:
		return schema.Pointer{Class: storageClassOperand(op(0)), Ref: op(1).ID()}

	case spirv.OpTypeArray:
		return schema.Array{Ref: op(0).ID(), Size: op(1).ID()}
	case spirv.OpTypeRuntimeArray:
		return schema.RuntimeArray{Ref: op(0).ID()}

	case spirv.OpTypeImage:
		return schema.Image{
			Ref: op(0).ID(),
			Image: schema.ImageInfo{
				Dim:          dimOperand(op(1)),
				Depth:        imageDepth(literal(2, 0)),
				Arrayed:      literal(3, 0) != 0,
				Multisampled: literal(4, 0) != 0,
				Sampled:      imageSampled(literal(5, 0)),
				Format:       imageFormatOperand(op(6)),
			},
		}

	case spirv.OpTypeSampler:
		return schema.Sampler{}
	case spirv.OpTypeSampledImage:
		return schema.SampledImage{Ref: op(0).ID()}
	case spirv.OpTypeAccelerationStructureKHR:
		return schema.AccelerationStructure{}

	case spirv.OpSpecConstantTrue:
		return schema.SpecConstantBool{Value: true}
	case spirv.OpSpecConstantFalse:
		return schema.SpecConstantBool{Value: false}
	case spirv.OpSpecConstant:
		return schema.SpecConstant{Ref: inst.ResultType, Value: constantValue(op(0))}
	case spirv.OpConstant:
		return schema.Constant{Ref: inst.ResultType, Value: constantValue(op(0))}

	case spirv.OpVariable:
		return schema.Variable{Ref: inst.ResultType, Class: storageClassOperand(op(0))}

	default:
		return schema.Unknown{}
	}
}

// constantValue reinterprets literal bits: a 32-bit word becomes a signed
// int32 and a 64-bit literal splits into signed high and low halves.
func constantValue(o spirv.Operand) schema.ConstantValue {
	switch o.Kind {
	case spirv.OperandLiteralInt32:
		return schema.Int32Value{Value: int32(o.Word)}
	case spirv.OperandLiteralInt64:
		return schema.Int64Value{High: int32(uint32(o.Long >> 32)), Low: int32(uint32(o.Long))}
	case spirv.OperandLiteralFloat32:
		return schema.Float32Value{Value: o.Float32}
	case spirv.OperandLiteralFloat64:
		return schema.Float64Value{Value: o.Float64}
	default:
		return schema.Int32Value{}
	}
}

func imageDepth(v uint32) schema.ImageDepth {
	switch v {
	case 1:
		return schema.ImageDepthDepth
	case 2:
		return schema.ImageDepthUnknown
	default:
		return schema.ImageDepthNotDepth
	}
}

func imageSampled(v uint32) schema.ImageSampled {
	switch v {
	case 1:
		return schema.ImageSampledSampler
	case 2:
		return schema.ImageSampledNoSampler
	default:
		return schema.ImageSampledRunTime
	}
}

func storageClassOperand(o spirv.Operand) schema.StorageClass {
	if o.Kind == spirv.OperandStorageClass {
		if c, ok := StorageClass(spirv.StorageClass(o.Word)); ok {
			return c
		}
	}
	return schema.StorageClassUniformConstant
}

func dimOperand(o spirv.Operand) schema.ImageDim {
	if o.Kind == spirv.OperandDim {
		if d, ok := ImageDim(spirv.Dim(o.Word)); ok {
			return d
		}
	}
	return schema.ImageDim1D
}

func imageFormatOperand(o spirv.Operand) schema.ImageFormat {
	if o.Kind == spirv.OperandImageFormat {
		if f, ok := ImageFormat(spirv.ImageFormat(o.Word)); ok {
			return f
		}
	}
	return schema.ImageFormatUnknown
}

func executionModelOperand(o spirv.Operand) schema.ExecutionModel {
	if o.Kind == spirv.OperandExecutionModel {
		if m, ok := ExecutionModel(spirv.ExecutionModel(o.Word)); ok {
			return m
		}
	}
	return schema.ExecutionModelKernel
}
