package spirv

// layout describes how the words of one opcode split into result type,
// result id, fixed operands and a variadic tail.
type layout struct {
	operands   []OperandKind
	rest       OperandKind
	variadic   bool
	resultType bool
	result     bool
	// literal marks OpConstant/OpSpecConstant, whose value width
	// depends on the declared result type.
	literal bool
}

func typeDecl(operands ...OperandKind) layout {
	return layout{result: true, operands: operands}
}

func valueDecl(operands ...OperandKind) layout {
	return layout{resultType: true, result: true, operands: operands}
}

func (l layout) withRest(kind OperandKind) layout {
	l.rest = kind
	l.variadic = true
	return l
}

// grammar covers the opcodes that carry types, constants, variables,
// decorations and entry points. Everything else decodes to raw words.
var grammar = map[OpCode]layout{
	OpName:           {operands: []OperandKind{OperandIDRef, OperandLiteralString}},
	OpMemberName:     {operands: []OperandKind{OperandIDRef, OperandLiteralInt32, OperandLiteralString}},
	OpEntryPoint:     layout{operands: []OperandKind{OperandExecutionModel, OperandIDRef, OperandLiteralString}}.withRest(OperandIDRef),
	OpDecorate:       layout{operands: []OperandKind{OperandIDRef, OperandDecoration}}.withRest(OperandLiteralInt32),
	OpMemberDecorate: layout{operands: []OperandKind{OperandIDRef, OperandLiteralInt32, OperandDecoration}}.withRest(OperandLiteralInt32),

	OpTypeVoid:         typeDecl(),
	OpTypeBool:         typeDecl(),
	OpTypeInt:          typeDecl(OperandLiteralInt32, OperandLiteralInt32),
	OpTypeFloat:        typeDecl(OperandLiteralInt32).withRest(OperandLiteralInt32),
	OpTypeVector:       typeDecl(OperandIDRef, OperandLiteralInt32),
	OpTypeMatrix:       typeDecl(OperandIDRef, OperandLiteralInt32),
	OpTypeImage:        typeDecl(OperandIDRef, OperandDim, OperandLiteralInt32, OperandLiteralInt32, OperandLiteralInt32, OperandLiteralInt32, OperandImageFormat).withRest(OperandLiteralInt32),
	OpTypeSampler:      typeDecl(),
	OpTypeSampledImage: typeDecl(OperandIDRef),
	OpTypeArray:        typeDecl(OperandIDRef, OperandIDRef),
	OpTypeRuntimeArray: typeDecl(OperandIDRef),
	OpTypeStruct:       typeDecl().withRest(OperandIDRef),
	OpTypePointer:      typeDecl(OperandStorageClass, OperandIDRef),

	OpTypeAccelerationStructureKHR: typeDecl(),

	OpConstantTrue:      valueDecl(),
	OpConstantFalse:     valueDecl(),
	OpConstant:          {resultType: true, result: true, literal: true},
	OpSpecConstantTrue:  valueDecl(),
	OpSpecConstantFalse: valueDecl(),
	OpSpecConstant:      {resultType: true, result: true, literal: true},
	OpVariable:          valueDecl(OperandStorageClass).withRest(OperandIDRef),
}
