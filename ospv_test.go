package ospv_test

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/ospv"
	"github.com/wippyai/ospv/codec"
	"github.com/wippyai/ospv/errors"
	"github.com/wippyai/ospv/schema"
	"github.com/wippyai/ospv/spirv"
)

func lightModule() []byte {
	b := spirv.NewModuleBuilder(spirv.Version1_5)
	f32 := b.TypeFloat(32)
	vec3 := b.TypeVector(f32, 3)
	light := b.TypeStruct(vec3, f32)
	ptr := b.TypePointer(spirv.StorageClassUniform, light)
	v := b.Variable(ptr, spirv.StorageClassUniform)
	b.Name(light, "Light")
	b.MemberName(light, 1, "radius")
	b.Decorate(v, spirv.DecorationBinding, 2)
	b.EntryPoint(spirv.ExecutionModelFragment, 100, "main", v)
	return b.Build()
}

func writeModule(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestConvertFile(t *testing.T) {
	path := writeModule(t, "light.spv", lightModule())

	a, err := ospv.ConvertFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, a.SourceFile)
	require.Len(t, a.Types, 5)
	assert.Equal(t, schema.Struct{Refs: []uint32{1, 0}}, a.Types[2])
	assert.Equal(t, "Light", *a.Decoration["2"].Decoration.Name)
	assert.Equal(t, []uint32{4}, a.Entries[0].Parameters)
}

func TestConvertFileErrorsCarrySource(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nope.spv")
		_, err := ospv.ConvertFile(path)
		require.Error(t, err)
		assert.True(t, stderrors.Is(err, os.ErrNotExist))

		var e *errors.Error
		require.True(t, stderrors.As(err, &e))
		assert.Equal(t, errors.PhaseRead, e.Phase)
		assert.Equal(t, path, e.Source)
	})

	t.Run("truncated module", func(t *testing.T) {
		data := lightModule()
		path := writeModule(t, "cut.spv", data[:len(data)-4])
		a, err := ospv.ConvertFile(path)
		require.Error(t, err)
		assert.Nil(t, a)

		var e *errors.Error
		require.True(t, stderrors.As(err, &e))
		assert.Equal(t, errors.PhaseParse, e.Phase)
		assert.Equal(t, path, e.Source)
	})
}

func TestWriteAndReadArtifact(t *testing.T) {
	a, err := ospv.Convert("light.spv", lightModule())
	require.NoError(t, err)

	dir := t.TempDir()
	for _, name := range []string{"light.json", "light.yaml", "light.ospv"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, ospv.WriteArtifact(path, a, codec.Options{
				Format: codec.FormatFromPath(path),
				Pretty: true,
			}))

			got, err := ospv.ReadArtifact(path)
			require.NoError(t, err)
			assert.Equal(t, a, got)
		})
	}
}

func TestReadArtifactRejectsDanglingIndex(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	text := `{"source_file":"x","types":[{"type":"vector","ref":7,"size":3}],"decoration":{},"entries":[]}`
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))

	_, err := ospv.ReadArtifact(path)
	require.Error(t, err)

	var e *errors.Error
	require.True(t, stderrors.As(err, &e))
	assert.Equal(t, errors.KindInvalidData, e.Kind)
	assert.Equal(t, path, e.Source)
}
