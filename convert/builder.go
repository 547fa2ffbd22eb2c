package convert

import (
	"slices"
	"strconv"

	"go.uber.org/zap"

	"github.com/wippyai/ospv/errors"
	"github.com/wippyai/ospv/schema"
)

// GraphBuilder resolves id-keyed types into a deduplicated array where every
// reference is an index into that array.
//
// Each id is resolved at most once. Composite types are appended after their
// references, so a type shared by several parents gets a single index.
type GraphBuilder struct {
	types     map[uint32]schema.Type
	index     map[uint32]uint32
	resolving map[uint32]bool
	out       []schema.Type
}

// NewGraphBuilder creates a builder over unresolved types keyed by module id.
func NewGraphBuilder(types map[uint32]schema.Type) *GraphBuilder {
	return &GraphBuilder{
		types:     types,
		index:     make(map[uint32]uint32, len(types)),
		resolving: make(map[uint32]bool),
		out:       make([]schema.Type, 0, len(types)),
	}
}

// ResolveAll resolves every id in ascending order, so the output does not
// depend on map iteration.
func (b *GraphBuilder) ResolveAll() error {
	ids := make([]uint32, 0, len(b.types))
	for id := range b.types {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	for _, id := range ids {
		if _, err := b.Resolve(id); err != nil {
			return err
		}
	}
	return nil
}

// Resolve returns the output index of id. Ids that are not types, or whose
// type is Unknown, resolve to schema.InvalidIndex. A type that reaches
// itself through its references fails with a type cycle error.
func (b *GraphBuilder) Resolve(id uint32) (uint32, error) {
	if idx, ok := b.index[id]; ok {
		return idx, nil
	}
	t, ok := b.types[id]
	if !ok {
		return schema.InvalidIndex, nil
	}
	if b.resolving[id] {
		return schema.InvalidIndex, errors.TypeCycle(id)
	}
	b.resolving[id] = true
	defer delete(b.resolving, id)

	var err error
	ref := func(r uint32) uint32 {
		if err != nil {
			return schema.InvalidIndex
		}
		var idx uint32
		idx, err = b.Resolve(r)
		return idx
	}

	var resolved schema.Type
	switch v := t.(type) {
	case schema.Void, schema.Bool, schema.Int, schema.Float, schema.Sampler,
		schema.AccelerationStructure, schema.SpecConstantBool:
		resolved = v

	case schema.Vector:
		v.Ref = ref(v.Ref)
		resolved = v
	case schema.Matrix:
		v.Ref = ref(v.Ref)
		resolved = v
	case schema.Struct:
		refs := make([]uint32, len(v.Refs))
		for i, r := range v.Refs {
			refs[i] = ref(r)
		}
		resolved = schema.Struct{Refs: refs}
	case schema.Pointer:
		v.Ref = ref(v.Ref)
		resolved = v
	case schema.Array:
		v.Ref = ref(v.Ref)
		v.Size = ref(v.Size)
		resolved = v
	case schema.RuntimeArray:
		v.Ref = ref(v.Ref)
		resolved = v
	case schema.Image:
		v.Ref = ref(v.Ref)
		resolved = v
	case schema.SampledImage:
		v.Ref = ref(v.Ref)
		resolved = v
	case schema.Variable:
		v.Ref = ref(v.Ref)
		resolved = v
	case schema.SpecConstant:
		v.Ref = ref(v.Ref)
		resolved = v
	case schema.Constant:
		v.Ref = ref(v.Ref)
		resolved = v

	default:
		return schema.InvalidIndex, nil
	}
	if err != nil {
		return schema.InvalidIndex, err
	}

	// A reference chain can reach id again only through a cycle, which
	// fails above, so id is still unassigned here.
	idx := uint32(len(b.out))
	b.out = append(b.out, resolved)
	b.index[id] = idx
	return idx, nil
}

// Index returns the output index assigned to id so far.
func (b *GraphBuilder) Index(id uint32) (uint32, bool) {
	idx, ok := b.index[id]
	return idx, ok
}

// Types returns the resolved array.
func (b *GraphBuilder) Types() []schema.Type {
	return b.out
}

// Assemble packages the resolved types with entries and decorations.
// Entry parameters are remapped through the index, with misses becoming
// schema.InvalidIndex. Decorations on ids that did not resolve to a type are
// dropped.
func (b *GraphBuilder) Assemble(source string, entries []schema.ExecEntry,
	decorations map[uint32]*schema.StructuralDecoration,
) *schema.Artifact {
	a := schema.NewArtifact(source)
	a.Types = b.out

	for _, e := range entries {
		params := make([]uint32, len(e.Parameters))
		for i, id := range e.Parameters {
			if idx, ok := b.index[id]; ok {
				params[i] = idx
			} else {
				params[i] = schema.InvalidIndex
			}
		}
		a.Entries = append(a.Entries, schema.ExecEntry{Model: e.Model, Name: e.Name, Parameters: params})
	}

	dropped := 0
	for id, sd := range decorations {
		idx, ok := b.index[id]
		if !ok {
			dropped++
			continue
		}
		a.Decoration[strconv.FormatUint(uint64(idx), 10)] = *sd
	}
	if dropped > 0 {
		Logger().Debug("dropped decorations on non-type ids", zap.Int("count", dropped))
	}
	return a
}
