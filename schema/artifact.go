package schema

import (
	"strconv"

	"github.com/wippyai/ospv/errors"
)

// ExecEntry is a shader entry point. Parameters are indices into
// Artifact.Types, or InvalidIndex for interface ids that are not types.
type ExecEntry struct {
	Model      ExecutionModel `json:"model"`
	Name       string         `json:"name"`
	Parameters []uint32       `json:"parameters"`
}

// Artifact is the reflection output for one module.
// Decoration is keyed by the decimal index of the decorated type.
type Artifact struct {
	SourceFile string                          `json:"source_file"`
	Types      []Type                          `json:"types"`
	Decoration map[string]StructuralDecoration `json:"decoration"`
	Entries    []ExecEntry                     `json:"entries"`
}

// NewArtifact returns an empty artifact for the given source.
func NewArtifact(source string) *Artifact {
	return &Artifact{
		SourceFile: source,
		Types:      []Type{},
		Decoration: make(map[string]StructuralDecoration),
		Entries:    []ExecEntry{},
	}
}

// Validate reports the first reference that is neither InvalidIndex nor a
// valid index into Types, or a decoration key that is not a type index.
func (a *Artifact) Validate() error {
	n := uint32(len(a.Types))
	valid := func(ref uint32) bool { return ref == InvalidIndex || ref < n }

	for i, t := range a.Types {
		if t == nil {
			return invalidRef("types[%d] is empty", i)
		}
		if t.Kind() == TypeKindUnknown {
			return invalidRef("types[%d] is unknown", i)
		}
		for _, ref := range Refs(t) {
			if !valid(ref) {
				return invalidRef("types[%d] references %d of %d", i, ref, n)
			}
		}
	}
	for i, e := range a.Entries {
		for _, ref := range e.Parameters {
			if !valid(ref) {
				return invalidRef("entries[%d] %q references %d of %d", i, e.Name, ref, n)
			}
		}
	}
	for key := range a.Decoration {
		idx, err := strconv.ParseUint(key, 10, 32)
		if err != nil || uint32(idx) >= n {
			return invalidRef("decoration key %q is not a type index", key)
		}
	}
	return nil
}

func invalidRef(format string, args ...any) error {
	return errors.New(errors.PhaseDecode, errors.KindInvalidData).
		Detail(format, args...).
		Build()
}
