package spirv_test

import (
	"encoding/binary"
	stderrors "errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/ospv/errors"
	"github.com/wippyai/ospv/spirv"
)

type recorder struct {
	header      spirv.Header
	insts       []spirv.Instruction
	initialized bool
	finalized   bool
	stopAfter   int
	failAt      int
	onInit      spirv.Action
	onHeader    spirv.Action
}

func (r *recorder) Initialize() spirv.Action {
	r.initialized = true
	return r.onInit
}

func (r *recorder) ConsumeHeader(h spirv.Header) spirv.Action {
	r.header = h
	return r.onHeader
}

func (r *recorder) ConsumeInstruction(inst spirv.Instruction) spirv.Action {
	r.insts = append(r.insts, inst)
	if r.failAt > 0 && len(r.insts) == r.failAt {
		return spirv.Error
	}
	if r.stopAfter > 0 && len(r.insts) == r.stopAfter {
		return spirv.Stop
	}
	return spirv.Continue
}

func (r *recorder) Finalize() spirv.Action {
	r.finalized = true
	return spirv.Continue
}

func parse(t *testing.T, data []byte) *recorder {
	t.Helper()
	r := &recorder{}
	require.NoError(t, spirv.Parse(data, r))
	return r
}

func isParseErr(err error, kind errors.Kind) bool {
	return stderrors.Is(err, &errors.Error{Phase: errors.PhaseParse, Kind: kind})
}

func TestParseHeader(t *testing.T) {
	b := spirv.NewModuleBuilder(spirv.Version1_5)
	b.TypeVoid()
	b.TypeBool()
	r := parse(t, b.Build())

	assert.True(t, r.initialized)
	assert.True(t, r.finalized)
	assert.Equal(t, spirv.Magic, r.header.Magic)
	assert.Equal(t, uint32(1), r.header.VersionMajor())
	assert.Equal(t, uint32(5), r.header.VersionMinor())
	assert.Equal(t, uint32(3), r.header.Bound)
	assert.False(t, r.header.BigEndian)
	assert.Len(t, r.insts, 2)
}

func TestParseBigEndian(t *testing.T) {
	b := spirv.NewModuleBuilder(spirv.Version1_0)
	i32 := b.TypeInt(32, true)
	b.Name(i32, "int")
	r := parse(t, b.BuildWithOrder(binary.BigEndian))

	require.True(t, r.header.BigEndian)
	require.Len(t, r.insts, 2)
	name, ok := r.insts[1].Operands[1].Literal()
	assert.True(t, ok)
	assert.Equal(t, "int", name)
}

func TestParseTypedOperands(t *testing.T) {
	b := spirv.NewModuleBuilder(spirv.Version1_3)
	f32 := b.TypeFloat(32)
	vec := b.TypeVector(f32, 4)
	ptr := b.TypePointer(spirv.StorageClassOutput, vec)
	v := b.Variable(ptr, spirv.StorageClassOutput)
	b.EntryPoint(spirv.ExecutionModelFragment, 99, "main", v)
	b.MemberDecorate(vec, 1, spirv.DecorationOffset, 16)
	r := parse(t, b.Build())
	require.Len(t, r.insts, 6)

	vecInst := r.insts[1]
	assert.Equal(t, spirv.OpTypeVector, vecInst.Opcode)
	assert.Equal(t, vec, vecInst.ResultID)
	assert.Equal(t, f32, vecInst.Operands[0].ID())
	assert.Equal(t, uint32(4), vecInst.Operands[1].Int32(0))

	ptrInst := r.insts[2]
	assert.Equal(t, spirv.OperandStorageClass, ptrInst.Operands[0].Kind)
	assert.Equal(t, uint32(spirv.StorageClassOutput), ptrInst.Operands[0].Word)

	varInst := r.insts[3]
	assert.Equal(t, ptr, varInst.ResultType)
	assert.Equal(t, v, varInst.ResultID)

	ep := r.insts[4]
	assert.False(t, ep.HasResult())
	assert.Equal(t, spirv.OperandExecutionModel, ep.Operands[0].Kind)
	name, ok := ep.Operands[2].Literal()
	assert.True(t, ok)
	assert.Equal(t, "main", name)
	require.Len(t, ep.Operands, 4)
	assert.Equal(t, v, ep.Operands[3].ID())

	md := r.insts[5]
	assert.Equal(t, spirv.OperandIDRef, md.Operands[0].Kind)
	assert.Equal(t, spirv.OperandLiteralInt32, md.Operands[1].Kind)
	assert.Equal(t, spirv.OperandDecoration, md.Operands[2].Kind)
	assert.Equal(t, uint32(16), md.Operands[3].Int32(0))
}

func TestParseConstantWidths(t *testing.T) {
	b := spirv.NewModuleBuilder(spirv.Version1_3)
	i32 := b.TypeInt(32, true)
	i64 := b.TypeInt(64, true)
	f32 := b.TypeFloat(32)
	f64 := b.TypeFloat(64)

	b.Constant(i32, 0xffffffff)
	b.SpecConstant(i64, 0x00000002, 0x00000001)
	b.ConstantFloat32(f32, 1.5)
	bits := math.Float64bits(-2.25)
	b.SpecConstant(f64, uint32(bits), uint32(bits>>32))
	r := parse(t, b.Build())
	require.Len(t, r.insts, 8)

	c32 := r.insts[4].Operands[0]
	assert.Equal(t, spirv.OperandLiteralInt32, c32.Kind)
	assert.Equal(t, uint32(0xffffffff), c32.Word)

	c64 := r.insts[5].Operands[0]
	assert.Equal(t, spirv.OperandLiteralInt64, c64.Kind)
	assert.Equal(t, uint64(0x0000000100000002), c64.Long)

	cf32 := r.insts[6].Operands[0]
	assert.Equal(t, spirv.OperandLiteralFloat32, cf32.Kind)
	assert.Equal(t, float32(1.5), cf32.Float32)

	cf64 := r.insts[7].Operands[0]
	assert.Equal(t, spirv.OperandLiteralFloat64, cf64.Kind)
	assert.Equal(t, -2.25, cf64.Float64)
}

func TestParseUnmodeledOpcodeIsRawWords(t *testing.T) {
	b := spirv.NewModuleBuilder(spirv.Version1_3)
	b.Capability(1)
	b.Emit(spirv.OpStore, 7, 8)
	r := parse(t, b.Build())
	require.Len(t, r.insts, 2)

	store := r.insts[1]
	assert.False(t, store.HasResult())
	require.Len(t, store.Operands, 2)
	assert.Equal(t, spirv.OperandLiteralInt32, store.Operands[0].Kind)
	assert.Equal(t, uint32(0), store.Operands[0].ID())
}

func TestParseStopAndError(t *testing.T) {
	b := spirv.NewModuleBuilder(spirv.Version1_3)
	b.TypeVoid()
	b.TypeBool()
	b.TypeSampler()
	data := b.Build()

	stopper := &recorder{stopAfter: 1}
	require.NoError(t, spirv.Parse(data, stopper))
	assert.Len(t, stopper.insts, 1)
	assert.True(t, stopper.finalized)

	failer := &recorder{failAt: 2}
	err := spirv.Parse(data, failer)
	require.Error(t, err)
	assert.True(t, isParseErr(err, errors.KindInvalidInput))
}

func TestParseStopBeforeInstructions(t *testing.T) {
	b := spirv.NewModuleBuilder(spirv.Version1_3)
	b.TypeVoid()
	data := b.Build()

	t.Run("initialize", func(t *testing.T) {
		r := &recorder{onInit: spirv.Stop}
		require.NoError(t, spirv.Parse(data, r))
		assert.Zero(t, r.header.Magic)
		assert.Empty(t, r.insts)
		assert.True(t, r.finalized)
	})

	t.Run("header", func(t *testing.T) {
		r := &recorder{onHeader: spirv.Stop}
		require.NoError(t, spirv.Parse(data, r))
		assert.Equal(t, spirv.Magic, r.header.Magic)
		assert.Empty(t, r.insts)
		assert.True(t, r.finalized)
	})

	t.Run("initialize error", func(t *testing.T) {
		r := &recorder{onInit: spirv.Error}
		err := spirv.Parse(data, r)
		assert.True(t, isParseErr(err, errors.KindInvalidInput))
		assert.False(t, r.finalized)
	})
}

func TestParseMalformed(t *testing.T) {
	valid := func() *spirv.ModuleBuilder {
		b := spirv.NewModuleBuilder(spirv.Version1_3)
		return b
	}

	t.Run("truncated header", func(t *testing.T) {
		err := spirv.Parse([]byte{0x03, 0x02, 0x23, 0x07}, &recorder{})
		assert.True(t, isParseErr(err, errors.KindTruncated), "got %v", err)
	})

	t.Run("bad magic", func(t *testing.T) {
		data := valid().Build()
		data[0] = 0xff
		err := spirv.Parse(data, &recorder{})
		assert.True(t, isParseErr(err, errors.KindInvalidData), "got %v", err)
	})

	t.Run("unaligned length", func(t *testing.T) {
		data := append(valid().Build(), 0x00)
		err := spirv.Parse(data, &recorder{})
		assert.True(t, isParseErr(err, errors.KindInvalidData), "got %v", err)
	})

	t.Run("zero word count", func(t *testing.T) {
		b := valid()
		data := append(b.Build(), 0x13, 0x00, 0x00, 0x00)
		err := spirv.Parse(data, &recorder{})
		assert.True(t, isParseErr(err, errors.KindInvalidData), "got %v", err)
	})

	t.Run("instruction past end", func(t *testing.T) {
		b := valid()
		b.TypeInt(32, true)
		data := b.Build()
		err := spirv.Parse(data[:len(data)-4], &recorder{})
		assert.True(t, isParseErr(err, errors.KindTruncated), "got %v", err)
	})

	t.Run("missing result id", func(t *testing.T) {
		b := valid()
		b.Emit(spirv.OpTypeVoid)
		err := spirv.Parse(b.Build(), &recorder{})
		assert.True(t, isParseErr(err, errors.KindTruncated), "got %v", err)
	})

	t.Run("unknown storage class", func(t *testing.T) {
		b := valid()
		b.Emit(spirv.OpTypePointer, 2, 77, 1)
		err := spirv.Parse(b.Build(), &recorder{})
		assert.True(t, isParseErr(err, errors.KindInvalidEnum), "got %v", err)
	})

	t.Run("unknown execution model", func(t *testing.T) {
		b := valid()
		b.EntryPoint(spirv.ExecutionModel(42), 1, "main")
		err := spirv.Parse(b.Build(), &recorder{})
		assert.True(t, isParseErr(err, errors.KindInvalidEnum), "got %v", err)
	})

	t.Run("unterminated name", func(t *testing.T) {
		b := valid()
		b.Emit(spirv.OpName, 1, 0x6e69616d)
		err := spirv.Parse(b.Build(), &recorder{})
		assert.True(t, isParseErr(err, errors.KindInvalidData), "got %v", err)
	})

	t.Run("64-bit literal missing high word", func(t *testing.T) {
		b := valid()
		i64 := b.TypeInt(64, false)
		b.Constant(i64, 1)
		err := spirv.Parse(b.Build(), &recorder{})
		assert.True(t, isParseErr(err, errors.KindTruncated), "got %v", err)
	})
}

func TestOpCodeString(t *testing.T) {
	assert.Equal(t, "OpTypeStruct", spirv.OpTypeStruct.String())
	assert.Equal(t, "Op9999", spirv.OpCode(9999).String())
}
