package convert

import (
	"github.com/wippyai/ospv/schema"
	"github.com/wippyai/ospv/spirv"
)

// The translation tables below cover every enumerant the decoder accepts.
// The bool result is false only for values the decoder would have rejected.

// ExecutionModel translates a SPIR-V execution model.
func ExecutionModel(m spirv.ExecutionModel) (schema.ExecutionModel, bool) {
	switch m {
	case spirv.ExecutionModelVertex:
		return schema.ExecutionModelVertex, true
	case spirv.ExecutionModelTessellationControl:
		return schema.ExecutionModelTessellationControl, true
	case spirv.ExecutionModelTessellationEvaluation:
		return schema.ExecutionModelTessellationEvaluation, true
	case spirv.ExecutionModelGeometry:
		return schema.ExecutionModelGeometry, true
	case spirv.ExecutionModelFragment:
		return schema.ExecutionModelFragment, true
	case spirv.ExecutionModelGLCompute:
		return schema.ExecutionModelGLCompute, true
	case spirv.ExecutionModelKernel:
		return schema.ExecutionModelKernel, true
	case spirv.ExecutionModelTaskNV:
		return schema.ExecutionModelTaskNV, true
	case spirv.ExecutionModelMeshNV:
		return schema.ExecutionModelMeshNV, true
	case spirv.ExecutionModelRayGenerationKHR:
		return schema.ExecutionModelRayGenerationNV, true
	case spirv.ExecutionModelIntersectionKHR:
		return schema.ExecutionModelIntersectionNV, true
	case spirv.ExecutionModelAnyHitKHR:
		return schema.ExecutionModelAnyHitNV, true
	case spirv.ExecutionModelClosestHitKHR:
		return schema.ExecutionModelClosestHitNV, true
	case spirv.ExecutionModelMissKHR:
		return schema.ExecutionModelMissNV, true
	case spirv.ExecutionModelCallableKHR:
		return schema.ExecutionModelCallableNV, true
	}
	return "", false
}

// StorageClass translates a SPIR-V storage class.
func StorageClass(c spirv.StorageClass) (schema.StorageClass, bool) {
	switch c {
	case spirv.StorageClassUniformConstant:
		return schema.StorageClassUniformConstant, true
	case spirv.StorageClassInput:
		return schema.StorageClassInput, true
	case spirv.StorageClassUniform:
		return schema.StorageClassUniform, true
	case spirv.StorageClassOutput:
		return schema.StorageClassOutput, true
	case spirv.StorageClassWorkgroup:
		return schema.StorageClassWorkgroup, true
	case spirv.StorageClassCrossWorkgroup:
		return schema.StorageClassCrossWorkgroup, true
	case spirv.StorageClassPrivate:
		return schema.StorageClassPrivate, true
	case spirv.StorageClassFunction:
		return schema.StorageClassFunction, true
	case spirv.StorageClassGeneric:
		return schema.StorageClassGeneric, true
	case spirv.StorageClassPushConstant:
		return schema.StorageClassPushConstant, true
	case spirv.StorageClassAtomicCounter:
		return schema.StorageClassAtomicCounter, true
	case spirv.StorageClassImage:
		return schema.StorageClassImage, true
	case spirv.StorageClassStorageBuffer:
		return schema.StorageClassStorageBuffer, true
	case spirv.StorageClassCallableDataKHR:
		return schema.StorageClassCallableDataNV, true
	case spirv.StorageClassIncomingCallableDataKHR:
		return schema.StorageClassIncomingCallableDataNV, true
	case spirv.StorageClassRayPayloadKHR:
		return schema.StorageClassRayPayloadNV, true
	case spirv.StorageClassHitAttributeKHR:
		return schema.StorageClassHitAttributeNV, true
	case spirv.StorageClassIncomingRayPayloadKHR:
		return schema.StorageClassIncomingRayPayloadNV, true
	case spirv.StorageClassShaderRecordBufferKHR:
		return schema.StorageClassShaderRecordBufferNV, true
	case spirv.StorageClassPhysicalStorageBuffer:
		return schema.StorageClassPhysicalStorageBuffer, true
	case spirv.StorageClassTaskPayloadWorkgroupEXT:
		return schema.StorageClassTaskPayloadWorkgroupEXT, true
	case spirv.StorageClassCodeSectionINTEL:
		return schema.StorageClassCodeSectionIntel, true
	}
	return "", false
}

// ImageDim translates a SPIR-V image dimensionality.
func ImageDim(d spirv.Dim) (schema.ImageDim, bool) {
	switch d {
	case spirv.Dim1D:
		return schema.ImageDim1D, true
	case spirv.Dim2D:
		return schema.ImageDim2D, true
	case spirv.Dim3D:
		return schema.ImageDim3D, true
	case spirv.DimCube:
		return schema.ImageDimCube, true
	case spirv.DimRect:
		return schema.ImageDimRect, true
	case spirv.DimBuffer:
		return schema.ImageDimBuffer, true
	case spirv.DimSubpassData:
		return schema.ImageDimSubpassData, true
	}
	return "", false
}

// ImageFormat translates a SPIR-V image format.
func ImageFormat(f spirv.ImageFormat) (schema.ImageFormat, bool) {
	switch f {
	case spirv.ImageFormatUnknown:
		return schema.ImageFormatUnknown, true
	case spirv.ImageFormatRgba32f:
		return schema.ImageFormatRgba32f, true
	case spirv.ImageFormatRgba16f:
		return schema.ImageFormatRgba16f, true
	case spirv.ImageFormatR32f:
		return schema.ImageFormatR32f, true
	case spirv.ImageFormatRgba8:
		return schema.ImageFormatRgba8, true
	case spirv.ImageFormatRgba8Snorm:
		return schema.ImageFormatRgba8snorm, true
	case spirv.ImageFormatRg32f:
		return schema.ImageFormatRg32f, true
	case spirv.ImageFormatRg16f:
		return schema.ImageFormatRg16f, true
	case spirv.ImageFormatR11fG11fB10f:
		return schema.ImageFormatR11fG11fB10f, true
	case spirv.ImageFormatR16f:
		return schema.ImageFormatR16f, true
	case spirv.ImageFormatRgba16:
		return schema.ImageFormatRgba16, true
	case spirv.ImageFormatRgb10A2:
		return schema.ImageFormatRgb10a2, true
	case spirv.ImageFormatRg16:
		return schema.ImageFormatRg16, true
	case spirv.ImageFormatRg8:
		return schema.ImageFormatRg8, true
	case spirv.ImageFormatR16:
		return schema.ImageFormatR16, true
	case spirv.ImageFormatR8:
		return schema.ImageFormatR8, true
	case spirv.ImageFormatRgba16Snorm:
		return schema.ImageFormatRgba16snorm, true
	case spirv.ImageFormatRg16Snorm:
		return schema.ImageFormatRg16snorm, true
	case spirv.ImageFormatRg8Snorm:
		return schema.ImageFormatRg8snorm, true
	case spirv.ImageFormatR16Snorm:
		return schema.ImageFormatR16snorm, true
	case spirv.ImageFormatR8Snorm:
		return schema.ImageFormatR8snorm, true
	case spirv.ImageFormatRgba32i:
		return schema.ImageFormatRgba32i, true
	case spirv.ImageFormatRgba16i:
		return schema.ImageFormatRgba16i, true
	case spirv.ImageFormatRgba8i:
		return schema.ImageFormatRgba8i, true
	case spirv.ImageFormatR32i:
		return schema.ImageFormatR32i, true
	case spirv.ImageFormatRg32i:
		return schema.ImageFormatRg32i, true
	case spirv.ImageFormatRg16i:
		return schema.ImageFormatRg16i, true
	case spirv.ImageFormatRg8i:
		return schema.ImageFormatRg8i, true
	case spirv.ImageFormatR16i:
		return schema.ImageFormatR16i, true
	case spirv.ImageFormatR8i:
		return schema.ImageFormatR8i, true
	case spirv.ImageFormatRgba32ui:
		return schema.ImageFormatRgba32ui, true
	case spirv.ImageFormatRgba16ui:
		return schema.ImageFormatRgba16ui, true
	case spirv.ImageFormatRgba8ui:
		return schema.ImageFormatRgba8ui, true
	case spirv.ImageFormatR32ui:
		return schema.ImageFormatR32ui, true
	case spirv.ImageFormatRgb10a2ui:
		return schema.ImageFormatRgb10a2ui, true
	case spirv.ImageFormatRg32ui:
		return schema.ImageFormatRg32ui, true
	case spirv.ImageFormatRg16ui:
		return schema.ImageFormatRg16ui, true
	case spirv.ImageFormatRg8ui:
		return schema.ImageFormatRg8ui, true
	case spirv.ImageFormatR16ui:
		return schema.ImageFormatR16ui, true
	case spirv.ImageFormatR8ui:
		return schema.ImageFormatR8ui, true
	case spirv.ImageFormatR64ui:
		return schema.ImageFormatR64ui, true
	case spirv.ImageFormatR64i:
		return schema.ImageFormatR64i, true
	}
	return "", false
}
