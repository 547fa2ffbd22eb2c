package convert

import (
	"go.uber.org/zap"

	"github.com/wippyai/ospv/schema"
	"github.com/wippyai/ospv/spirv"
)

// Consumer collects types, decorations and entry points in one pass over a
// module. It implements spirv.Consumer and never aborts the parse.
//
// A Consumer serves a single conversion and is not safe for concurrent use.
type Consumer struct {
	types       map[uint32]schema.Type
	decorations map[uint32]*schema.StructuralDecoration
	entries     []schema.ExecEntry
	header      spirv.Header
	count       int
}

var _ spirv.Consumer = (*Consumer)(nil)

// NewConsumer creates an empty consumer.
func NewConsumer() *Consumer {
	return &Consumer{
		types:       make(map[uint32]schema.Type),
		decorations: make(map[uint32]*schema.StructuralDecoration),
	}
}

func (c *Consumer) Initialize() spirv.Action {
	return spirv.Continue
}

func (c *Consumer) ConsumeHeader(h spirv.Header) spirv.Action {
	c.header = h
	Logger().Debug("module header",
		zap.Uint32("major", h.VersionMajor()),
		zap.Uint32("minor", h.VersionMinor()),
		zap.Uint32("generator", h.Generator),
		zap.Uint32("bound", h.Bound),
		zap.Bool("big_endian", h.BigEndian))
	return spirv.Continue
}

func (c *Consumer) ConsumeInstruction(inst spirv.Instruction) spirv.Action {
	c.count++

	if inst.HasResult() {
		if Extracts(inst.Opcode) {
			c.types[inst.ResultID] = ExtractType(inst)
		}
		return spirv.Continue
	}

	if inst.Opcode == spirv.OpEntryPoint {
		c.entries = append(c.entries, entryPoint(inst))
		return spirv.Continue
	}

	if len(inst.Operands) == 0 || !IsDecoration(inst.Opcode) {
		return spirv.Continue
	}

	target := inst.Operands[0].ID()
	if target == 0 {
		return spirv.Continue
	}
	CollectDecoration(c.decoration(target), inst)
	return spirv.Continue
}

func (c *Consumer) Finalize() spirv.Action {
	Logger().Debug("module consumed",
		zap.Int("instructions", c.count),
		zap.Int("types", len(c.types)),
		zap.Int("decorations", len(c.decorations)),
		zap.Int("entries", len(c.entries)))
	return spirv.Continue
}

// Header returns the module header seen by ConsumeHeader.
func (c *Consumer) Header() spirv.Header {
	return c.header
}

// Types returns the unresolved types keyed by result id.
func (c *Consumer) Types() map[uint32]schema.Type {
	return c.types
}

// Decoration returns the decoration collected for id, if any.
func (c *Consumer) Decoration(id uint32) (*schema.StructuralDecoration, bool) {
	sd, ok := c.decorations[id]
	return sd, ok
}

// Entries returns entry points in declaration order with raw interface ids.
func (c *Consumer) Entries() []schema.ExecEntry {
	return c.entries
}

// Artifact resolves the collected maps into an artifact for source.
func (c *Consumer) Artifact(source string) (*schema.Artifact, error) {
	b := NewGraphBuilder(c.types)
	if err := b.ResolveAll(); err != nil {
		return nil, err
	}
	return b.Assemble(source, c.entries, c.decorations), nil
}

func (c *Consumer) decoration(id uint32) *schema.StructuralDecoration {
	sd, ok := c.decorations[id]
	if !ok {
		sd = &schema.StructuralDecoration{}
		c.decorations[id] = sd
	}
	return sd
}

func entryPoint(inst spirv.Instruction) schema.ExecEntry {
	e := schema.ExecEntry{
		Model:      schema.ExecutionModelKernel,
		Name:       defaultEntry,
		Parameters: []uint32{},
	}
	if o, ok := inst.Operand(0); ok {
		e.Model = executionModelOperand(o)
	}
	if o, ok := inst.Operand(2); ok {
		if name, ok := o.Literal(); ok {
			e.Name = name
		}
	}
	for i := 3; i < len(inst.Operands); i++ {
		e.Parameters = append(e.Parameters, inst.Operands[i].ID())
	}
	return e
}
