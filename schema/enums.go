package schema

// ExecutionModel is the shader stage of an entry point.
type ExecutionModel string

const (
	ExecutionModelVertex                 ExecutionModel = "Vertex"
	ExecutionModelTessellationControl    ExecutionModel = "TessellationControl"
	ExecutionModelTessellationEvaluation ExecutionModel = "TessellationEvaluation"
	ExecutionModelGeometry               ExecutionModel = "Geometry"
	ExecutionModelFragment               ExecutionModel = "Fragment"
	ExecutionModelGLCompute              ExecutionModel = "GLCompute"
	ExecutionModelKernel                 ExecutionModel = "Kernel"
	ExecutionModelTaskNV                 ExecutionModel = "TaskNV"
	ExecutionModelMeshNV                 ExecutionModel = "MeshNV"
	ExecutionModelRayGenerationNV        ExecutionModel = "RayGenerationNV"
	ExecutionModelIntersectionNV         ExecutionModel = "IntersectionNV"
	ExecutionModelAnyHitNV               ExecutionModel = "AnyHitNV"
	ExecutionModelClosestHitNV           ExecutionModel = "ClosestHitNV"
	ExecutionModelMissNV                 ExecutionModel = "MissNV"
	ExecutionModelCallableNV             ExecutionModel = "CallableNV"
)

// StorageClass is the memory region a pointer or variable lives in.
type StorageClass string

const (
	StorageClassUniformConstant         StorageClass = "UniformConstant"
	StorageClassInput                   StorageClass = "Input"
	StorageClassUniform                 StorageClass = "Uniform"
	StorageClassOutput                  StorageClass = "Output"
	StorageClassWorkgroup               StorageClass = "Workgroup"
	StorageClassCrossWorkgroup          StorageClass = "CrossWorkgroup"
	StorageClassPrivate                 StorageClass = "Private"
	StorageClassFunction                StorageClass = "Function"
	StorageClassGeneric                 StorageClass = "Generic"
	StorageClassPushConstant            StorageClass = "PushConstant"
	StorageClassAtomicCounter           StorageClass = "AtomicCounter"
	StorageClassImage                   StorageClass = "Image"
	StorageClassStorageBuffer           StorageClass = "StorageBuffer"
	StorageClassCallableDataNV          StorageClass = "CallableDataNV"
	StorageClassIncomingCallableDataNV  StorageClass = "IncomingCallableDataNV"
	StorageClassRayPayloadNV            StorageClass = "RayPayloadNV"
	StorageClassHitAttributeNV          StorageClass = "HitAttributeNV"
	StorageClassIncomingRayPayloadNV    StorageClass = "IncomingRayPayloadNV"
	StorageClassShaderRecordBufferNV    StorageClass = "ShaderRecordBufferNV"
	StorageClassPhysicalStorageBuffer   StorageClass = "PhysicalStorageBuffer"
	StorageClassTaskPayloadWorkgroupEXT StorageClass = "TaskPayloadWorkgroupEXT"
	StorageClassCodeSectionIntel        StorageClass = "CodeSectionIntel"
)

// ImageDim is the dimensionality of an image type.
type ImageDim string

const (
	ImageDim1D          ImageDim = "1D"
	ImageDim2D          ImageDim = "2D"
	ImageDim3D          ImageDim = "3D"
	ImageDimCube        ImageDim = "Cube"
	ImageDimRect        ImageDim = "Rect"
	ImageDimBuffer      ImageDim = "Buffer"
	ImageDimSubpassData ImageDim = "SubpassData"
)

// ImageDepth tells whether an image is a depth image.
type ImageDepth string

const (
	ImageDepthNotDepth ImageDepth = "NotDepth"
	ImageDepthDepth    ImageDepth = "Depth"
	ImageDepthUnknown  ImageDepth = "Unknown"
)

// ImageSampled tells whether an image is used with a sampler.
type ImageSampled string

const (
	ImageSampledRunTime   ImageSampled = "RunTime"
	ImageSampledSampler   ImageSampled = "Sampler"
	ImageSampledNoSampler ImageSampled = "NoSampler"
)

// ImageFormat is the texel format of a storage image.
type ImageFormat string

const (
	ImageFormatUnknown      ImageFormat = "Unknown"
	ImageFormatRgba32f      ImageFormat = "Rgba32f"
	ImageFormatRgba16f      ImageFormat = "Rgba16f"
	ImageFormatR32f         ImageFormat = "R32f"
	ImageFormatRgba8        ImageFormat = "Rgba8"
	ImageFormatRgba8snorm   ImageFormat = "Rgba8snorm"
	ImageFormatRg32f        ImageFormat = "Rg32f"
	ImageFormatRg16f        ImageFormat = "Rg16f"
	ImageFormatR11fG11fB10f ImageFormat = "R11fG11fB10f"
	ImageFormatR16f         ImageFormat = "R16f"
	ImageFormatRgba16       ImageFormat = "Rgba16"
	ImageFormatRgb10a2      ImageFormat = "Rgb10a2"
	ImageFormatRg16         ImageFormat = "Rg16"
	ImageFormatRg8          ImageFormat = "Rg8"
	ImageFormatR16          ImageFormat = "R16"
	ImageFormatR8           ImageFormat = "R8"
	ImageFormatRgba16snorm  ImageFormat = "Rgba16snorm"
	ImageFormatRg16snorm    ImageFormat = "Rg16snorm"
	ImageFormatRg8snorm     ImageFormat = "Rg8snorm"
	ImageFormatR16snorm     ImageFormat = "R16snorm"
	ImageFormatR8snorm      ImageFormat = "R8snorm"
	ImageFormatRgba32i      ImageFormat = "Rgba32i"
	ImageFormatRgba16i      ImageFormat = "Rgba16i"
	ImageFormatRgba8i       ImageFormat = "Rgba8i"
	ImageFormatR32i         ImageFormat = "R32i"
	ImageFormatRg32i        ImageFormat = "Rg32i"
	ImageFormatRg16i        ImageFormat = "Rg16i"
	ImageFormatRg8i         ImageFormat = "Rg8i"
	ImageFormatR16i         ImageFormat = "R16i"
	ImageFormatR8i          ImageFormat = "R8i"
	ImageFormatRgba32ui     ImageFormat = "Rgba32ui"
	ImageFormatRgba16ui     ImageFormat = "Rgba16ui"
	ImageFormatRgba8ui      ImageFormat = "Rgba8ui"
	ImageFormatR32ui        ImageFormat = "R32ui"
	ImageFormatRgb10a2ui    ImageFormat = "Rgb10a2ui"
	ImageFormatRg32ui       ImageFormat = "Rg32ui"
	ImageFormatRg16ui       ImageFormat = "Rg16ui"
	ImageFormatRg8ui        ImageFormat = "Rg8ui"
	ImageFormatR16ui        ImageFormat = "R16ui"
	ImageFormatR8ui         ImageFormat = "R8ui"
	ImageFormatR64ui        ImageFormat = "R64ui"
	ImageFormatR64i         ImageFormat = "R64i"
)

// BlockType marks a struct as a uniform or storage block.
type BlockType string

const (
	BlockTypeBlock       BlockType = "Block"
	BlockTypeBufferBlock BlockType = "BufferBlock"
)

// Visibility restricts shader access to a resource.
type Visibility string

const (
	VisibilityReadOnly  Visibility = "ReadOnly"
	VisibilityWriteOnly Visibility = "WriteOnly"
)

// MatrixMajor is the memory layout of a matrix.
type MatrixMajor string

const (
	MatrixMajorRow    MatrixMajor = "Row"
	MatrixMajorColumn MatrixMajor = "Column"
)
