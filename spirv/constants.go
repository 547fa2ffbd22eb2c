package spirv

import "fmt"

// SPIR-V binary format magic number.
const (
	// Magic is the first word of every SPIR-V module.
	Magic uint32 = 0x07230203

	// HeaderWords is the number of words in the module header.
	HeaderWords = 5

	// MaxStructMembers is the universal limit on members of an OpTypeStruct.
	MaxStructMembers = 16383
)

// Version1_0 through Version1_6 encode the header version word.
const (
	Version1_0 uint32 = 0x00010000
	Version1_3 uint32 = 0x00010300
	Version1_5 uint32 = 0x00010500
	Version1_6 uint32 = 0x00010600
)

// OpCode is a SPIR-V instruction opcode (low 16 bits of the first instruction word).
type OpCode uint16

// Opcodes. Only the ones the decoder has a grammar for, plus the ones commonly
// found in module preambles, are named.
const (
	OpNop                          OpCode = 0
	OpUndef                        OpCode = 1
	OpSource                       OpCode = 3
	OpSourceExtension              OpCode = 4
	OpName                         OpCode = 5
	OpMemberName                   OpCode = 6
	OpString                       OpCode = 7
	OpExtension                    OpCode = 10
	OpExtInstImport                OpCode = 11
	OpExtInst                      OpCode = 12
	OpMemoryModel                  OpCode = 14
	OpEntryPoint                   OpCode = 15
	OpExecutionMode                OpCode = 16
	OpCapability                   OpCode = 17
	OpTypeVoid                     OpCode = 19
	OpTypeBool                     OpCode = 20
	OpTypeInt                      OpCode = 21
	OpTypeFloat                    OpCode = 22
	OpTypeVector                   OpCode = 23
	OpTypeMatrix                   OpCode = 24
	OpTypeImage                    OpCode = 25
	OpTypeSampler                  OpCode = 26
	OpTypeSampledImage             OpCode = 27
	OpTypeArray                    OpCode = 28
	OpTypeRuntimeArray             OpCode = 29
	OpTypeStruct                   OpCode = 30
	OpTypeOpaque                   OpCode = 31
	OpTypePointer                  OpCode = 32
	OpTypeFunction                 OpCode = 33
	OpTypeForwardPointer           OpCode = 39
	OpConstantTrue                 OpCode = 41
	OpConstantFalse                OpCode = 42
	OpConstant                     OpCode = 43
	OpConstantComposite            OpCode = 44
	OpConstantNull                 OpCode = 46
	OpSpecConstantTrue             OpCode = 48
	OpSpecConstantFalse            OpCode = 49
	OpSpecConstant                 OpCode = 50
	OpSpecConstantComposite        OpCode = 51
	OpSpecConstantOp               OpCode = 52
	OpFunction                     OpCode = 54
	OpFunctionParameter            OpCode = 55
	OpFunctionEnd                  OpCode = 56
	OpVariable                     OpCode = 59
	OpLoad                         OpCode = 61
	OpStore                        OpCode = 62
	OpAccessChain                  OpCode = 65
	OpDecorate                     OpCode = 71
	OpMemberDecorate               OpCode = 72
	OpDecorationGroup              OpCode = 73
	OpLabel                        OpCode = 248
	OpReturn                       OpCode = 253
	OpReturnValue                  OpCode = 254
	OpTypeAccelerationStructureKHR OpCode = 5341
)

var opcodeNames = map[OpCode]string{
	OpNop: "OpNop", OpUndef: "OpUndef", OpSource: "OpSource",
	OpSourceExtension: "OpSourceExtension", OpName: "OpName", OpMemberName: "OpMemberName",
	OpString: "OpString", OpExtension: "OpExtension", OpExtInstImport: "OpExtInstImport",
	OpExtInst: "OpExtInst", OpMemoryModel: "OpMemoryModel", OpEntryPoint: "OpEntryPoint",
	OpExecutionMode: "OpExecutionMode", OpCapability: "OpCapability",
	OpTypeVoid: "OpTypeVoid", OpTypeBool: "OpTypeBool", OpTypeInt: "OpTypeInt",
	OpTypeFloat: "OpTypeFloat", OpTypeVector: "OpTypeVector", OpTypeMatrix: "OpTypeMatrix",
	OpTypeImage: "OpTypeImage", OpTypeSampler: "OpTypeSampler",
	OpTypeSampledImage: "OpTypeSampledImage", OpTypeArray: "OpTypeArray",
	OpTypeRuntimeArray: "OpTypeRuntimeArray", OpTypeStruct: "OpTypeStruct",
	OpTypeOpaque: "OpTypeOpaque", OpTypePointer: "OpTypePointer",
	OpTypeFunction: "OpTypeFunction", OpTypeForwardPointer: "OpTypeForwardPointer",
	OpConstantTrue: "OpConstantTrue", OpConstantFalse: "OpConstantFalse",
	OpConstant: "OpConstant", OpConstantComposite: "OpConstantComposite",
	OpConstantNull: "OpConstantNull", OpSpecConstantTrue: "OpSpecConstantTrue",
	OpSpecConstantFalse: "OpSpecConstantFalse", OpSpecConstant: "OpSpecConstant",
	OpSpecConstantComposite: "OpSpecConstantComposite", OpSpecConstantOp: "OpSpecConstantOp",
	OpFunction: "OpFunction", OpFunctionParameter: "OpFunctionParameter",
	OpFunctionEnd: "OpFunctionEnd", OpVariable: "OpVariable", OpLoad: "OpLoad",
	OpStore: "OpStore", OpAccessChain: "OpAccessChain", OpDecorate: "OpDecorate",
	OpMemberDecorate: "OpMemberDecorate", OpDecorationGroup: "OpDecorationGroup",
	OpLabel: "OpLabel", OpReturn: "OpReturn", OpReturnValue: "OpReturnValue",
	OpTypeAccelerationStructureKHR: "OpTypeAccelerationStructureKHR",
}

// String returns the opcode mnemonic, or "Op<n>" for opcodes without a name.
func (op OpCode) String() string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	return fmt.Sprintf("Op%d", uint16(op))
}

// Decoration is a SPIR-V decoration enumerant. Decorations are not validated
// by the decoder: consumers ignore the ones they do not model.
type Decoration uint32

// Decorations.
const (
	DecorationRelaxedPrecision Decoration = 0
	DecorationSpecID           Decoration = 1
	DecorationBlock            Decoration = 2
	DecorationBufferBlock      Decoration = 3
	DecorationRowMajor         Decoration = 4
	DecorationColMajor         Decoration = 5
	DecorationArrayStride      Decoration = 6
	DecorationMatrixStride     Decoration = 7
	DecorationBuiltIn          Decoration = 11
	DecorationFlat             Decoration = 14
	DecorationNonWritable      Decoration = 24
	DecorationNonReadable      Decoration = 25
	DecorationLocation         Decoration = 30
	DecorationComponent        Decoration = 31
	DecorationBinding          Decoration = 33
	DecorationDescriptorSet    Decoration = 34
	DecorationOffset           Decoration = 35
)

// ExecutionModel is the SPIR-V execution model enumerant of an entry point.
type ExecutionModel uint32

// Execution models.
const (
	ExecutionModelVertex                 ExecutionModel = 0
	ExecutionModelTessellationControl    ExecutionModel = 1
	ExecutionModelTessellationEvaluation ExecutionModel = 2
	ExecutionModelGeometry               ExecutionModel = 3
	ExecutionModelFragment               ExecutionModel = 4
	ExecutionModelGLCompute              ExecutionModel = 5
	ExecutionModelKernel                 ExecutionModel = 6
	ExecutionModelTaskNV                 ExecutionModel = 5267
	ExecutionModelMeshNV                 ExecutionModel = 5268
	ExecutionModelRayGenerationKHR       ExecutionModel = 5313
	ExecutionModelIntersectionKHR        ExecutionModel = 5314
	ExecutionModelAnyHitKHR              ExecutionModel = 5315
	ExecutionModelClosestHitKHR          ExecutionModel = 5316
	ExecutionModelMissKHR                ExecutionModel = 5317
	ExecutionModelCallableKHR            ExecutionModel = 5318
)

// ExecutionModels lists every execution model enumerant the decoder accepts.
var ExecutionModels = []ExecutionModel{
	ExecutionModelVertex, ExecutionModelTessellationControl,
	ExecutionModelTessellationEvaluation, ExecutionModelGeometry,
	ExecutionModelFragment, ExecutionModelGLCompute, ExecutionModelKernel,
	ExecutionModelTaskNV, ExecutionModelMeshNV, ExecutionModelRayGenerationKHR,
	ExecutionModelIntersectionKHR, ExecutionModelAnyHitKHR,
	ExecutionModelClosestHitKHR, ExecutionModelMissKHR, ExecutionModelCallableKHR,
}

// StorageClass is the SPIR-V storage class enumerant of pointers and variables.
type StorageClass uint32

// Storage classes.
const (
	StorageClassUniformConstant         StorageClass = 0
	StorageClassInput                   StorageClass = 1
	StorageClassUniform                 StorageClass = 2
	StorageClassOutput                  StorageClass = 3
	StorageClassWorkgroup               StorageClass = 4
	StorageClassCrossWorkgroup          StorageClass = 5
	StorageClassPrivate                 StorageClass = 6
	StorageClassFunction                StorageClass = 7
	StorageClassGeneric                 StorageClass = 8
	StorageClassPushConstant            StorageClass = 9
	StorageClassAtomicCounter           StorageClass = 10
	StorageClassImage                   StorageClass = 11
	StorageClassStorageBuffer           StorageClass = 12
	StorageClassCallableDataKHR         StorageClass = 5328
	StorageClassIncomingCallableDataKHR StorageClass = 5329
	StorageClassRayPayloadKHR           StorageClass = 5338
	StorageClassHitAttributeKHR         StorageClass = 5339
	StorageClassIncomingRayPayloadKHR   StorageClass = 5342
	StorageClassShaderRecordBufferKHR   StorageClass = 5343
	StorageClassPhysicalStorageBuffer   StorageClass = 5349
	StorageClassTaskPayloadWorkgroupEXT StorageClass = 5402
	StorageClassCodeSectionINTEL        StorageClass = 5605
)

// StorageClasses lists every storage class enumerant the decoder accepts.
var StorageClasses = []StorageClass{
	StorageClassUniformConstant, StorageClassInput, StorageClassUniform,
	StorageClassOutput, StorageClassWorkgroup, StorageClassCrossWorkgroup,
	StorageClassPrivate, StorageClassFunction, StorageClassGeneric,
	StorageClassPushConstant, StorageClassAtomicCounter, StorageClassImage,
	StorageClassStorageBuffer, StorageClassCallableDataKHR,
	StorageClassIncomingCallableDataKHR, StorageClassRayPayloadKHR,
	StorageClassHitAttributeKHR, StorageClassIncomingRayPayloadKHR,
	StorageClassShaderRecordBufferKHR, StorageClassPhysicalStorageBuffer,
	StorageClassTaskPayloadWorkgroupEXT, StorageClassCodeSectionINTEL,
}

// Dim is the SPIR-V image dimensionality enumerant.
type Dim uint32

// Image dimensionalities.
const (
	Dim1D          Dim = 0
	Dim2D          Dim = 1
	Dim3D          Dim = 2
	DimCube        Dim = 3
	DimRect        Dim = 4
	DimBuffer      Dim = 5
	DimSubpassData Dim = 6
)

// Dims lists every dimensionality enumerant the decoder accepts.
var Dims = []Dim{Dim1D, Dim2D, Dim3D, DimCube, DimRect, DimBuffer, DimSubpassData}

// ImageFormat is the SPIR-V image format enumerant.
type ImageFormat uint32

// Image formats.
const (
	ImageFormatUnknown      ImageFormat = 0
	ImageFormatRgba32f      ImageFormat = 1
	ImageFormatRgba16f      ImageFormat = 2
	ImageFormatR32f         ImageFormat = 3
	ImageFormatRgba8        ImageFormat = 4
	ImageFormatRgba8Snorm   ImageFormat = 5
	ImageFormatRg32f        ImageFormat = 6
	ImageFormatRg16f        ImageFormat = 7
	ImageFormatR11fG11fB10f ImageFormat = 8
	ImageFormatR16f         ImageFormat = 9
	ImageFormatRgba16       ImageFormat = 10
	ImageFormatRgb10A2      ImageFormat = 11
	ImageFormatRg16         ImageFormat = 12
	ImageFormatRg8          ImageFormat = 13
	ImageFormatR16          ImageFormat = 14
	ImageFormatR8           ImageFormat = 15
	ImageFormatRgba16Snorm  ImageFormat = 16
	ImageFormatRg16Snorm    ImageFormat = 17
	ImageFormatRg8Snorm     ImageFormat = 18
	ImageFormatR16Snorm     ImageFormat = 19
	ImageFormatR8Snorm      ImageFormat = 20
	ImageFormatRgba32i      ImageFormat = 21
	ImageFormatRgba16i      ImageFormat = 22
	ImageFormatRgba8i       ImageFormat = 23
	ImageFormatR32i         ImageFormat = 24
	ImageFormatRg32i        ImageFormat = 25
	ImageFormatRg16i        ImageFormat = 26
	ImageFormatRg8i         ImageFormat = 27
	ImageFormatR16i         ImageFormat = 28
	ImageFormatR8i          ImageFormat = 29
	ImageFormatRgba32ui     ImageFormat = 30
	ImageFormatRgba16ui     ImageFormat = 31
	ImageFormatRgba8ui      ImageFormat = 32
	ImageFormatR32ui        ImageFormat = 33
	ImageFormatRgb10a2ui    ImageFormat = 34
	ImageFormatRg32ui       ImageFormat = 35
	ImageFormatRg16ui       ImageFormat = 36
	ImageFormatRg8ui        ImageFormat = 37
	ImageFormatR16ui        ImageFormat = 38
	ImageFormatR8ui         ImageFormat = 39
	ImageFormatR64ui        ImageFormat = 40
	ImageFormatR64i         ImageFormat = 41
)

// ImageFormats lists every image format enumerant the decoder accepts,
// in enumerant order.
var ImageFormats = func() []ImageFormat {
	formats := make([]ImageFormat, 0, int(ImageFormatR64i)+1)
	for f := ImageFormatUnknown; f <= ImageFormatR64i; f++ {
		formats = append(formats, f)
	}
	return formats
}()

func validExecutionModel(v uint32) bool {
	for _, m := range ExecutionModels {
		if uint32(m) == v {
			return true
		}
	}
	return false
}

func validStorageClass(v uint32) bool {
	for _, c := range StorageClasses {
		if uint32(c) == v {
			return true
		}
	}
	return false
}

func validDim(v uint32) bool {
	return v <= uint32(DimSubpassData)
}

func validImageFormat(v uint32) bool {
	return v <= uint32(ImageFormatR64i)
}
