// Package spirv decodes SPIR-V binary modules into typed instructions.
//
// The decoder is a push parser: Parse walks the instruction stream once and
// hands every instruction to a Consumer.
//
//	type counter struct{ n int }
//
//	func (c *counter) Initialize() spirv.Action                  { return spirv.Continue }
//	func (c *counter) ConsumeHeader(spirv.Header) spirv.Action   { return spirv.Continue }
//	func (c *counter) ConsumeInstruction(spirv.Instruction) spirv.Action {
//		c.n++
//		return spirv.Continue
//	}
//	func (c *counter) Finalize() spirv.Action { return spirv.Continue }
//
//	err := spirv.Parse(data, &counter{})
//
// # Operands
//
// Operands are typed for the opcodes that describe types, constants,
// variables, decorations and entry points (see grammar.go). Literal widths of
// OpConstant and OpSpecConstant follow the declared result type, so a 64-bit
// integer constant arrives as one OperandLiteralInt64. Any other opcode
// decodes to one OperandLiteralInt32 per word and carries no result id.
//
// Execution model, storage class, image dimensionality and image format
// operands must be known enumerants; unknown values fail the parse so that
// downstream translation tables can be total.
//
// # Building modules
//
// ModuleBuilder writes modules in exactly the order instructions are added:
//
//	b := spirv.NewModuleBuilder(spirv.Version1_3)
//	f32 := b.TypeFloat(32)
//	vec4 := b.TypeVector(f32, 4)
//	b.Decorate(vec4, spirv.DecorationLocation, 0)
//	data := b.Build()
package spirv
