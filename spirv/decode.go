package spirv

import (
	"encoding/binary"
	"math"

	"github.com/wippyai/ospv/errors"
	spvbin "github.com/wippyai/ospv/spirv/internal/binary"
)

// Header is the decoded five-word module header.
type Header struct {
	Magic     uint32
	Version   uint32
	Generator uint32
	Bound     uint32
	Schema    uint32
	BigEndian bool
}

// VersionMajor returns the major SPIR-V version.
func (h Header) VersionMajor() uint32 {
	return (h.Version >> 16) & 0xff
}

// VersionMinor returns the minor SPIR-V version.
func (h Header) VersionMinor() uint32 {
	return (h.Version >> 8) & 0xff
}

// Action tells the decoder how to proceed after a Consumer callback.
type Action int

const (
	// Continue decoding.
	Continue Action = iota
	// Stop decoding without error. Finalize is still called.
	Stop
	// Error aborts decoding with a parse failure.
	Error
)

// Consumer is the visitor side of the push parser. Parse calls Initialize,
// ConsumeHeader, ConsumeInstruction once per instruction in stream order,
// and Finalize.
type Consumer interface {
	Initialize() Action
	ConsumeHeader(h Header) Action
	ConsumeInstruction(inst Instruction) Action
	Finalize() Action
}

type numericType struct {
	width uint32
	float bool
}

type decoder struct {
	r       *spvbin.Reader
	numeric map[uint32]numericType
}

// Parse decodes a SPIR-V module and drives c with its contents.
// Both little- and big-endian modules are accepted.
func Parse(data []byte, c Consumer) error {
	if len(data) < HeaderWords*spvbin.WordSize {
		return errors.StreamParse(errors.KindTruncated, 0,
			"module header needs 20 bytes", nil)
	}
	if rem := len(data) % spvbin.WordSize; rem != 0 {
		return errors.StreamParse(errors.KindInvalidData, len(data)-rem,
			"module length is not a multiple of the word size", nil)
	}

	var order binary.ByteOrder
	switch {
	case binary.LittleEndian.Uint32(data) == Magic:
		order = binary.LittleEndian
	case binary.BigEndian.Uint32(data) == Magic:
		order = binary.BigEndian
	default:
		return errors.New(errors.PhaseParse, errors.KindInvalidData).
			Value(binary.LittleEndian.Uint32(data)).
			Detail("invalid SPIR-V magic 0x%08x", binary.LittleEndian.Uint32(data)).
			Build()
	}

	stop, err := handle(c.Initialize(), "initialize")
	if err != nil {
		return err
	}
	if !stop {
		if err := consume(data, order, c); err != nil {
			return err
		}
	}

	_, err = handle(c.Finalize(), "finalize")
	return err
}

// consume decodes the header and instructions, stopping early when c asks.
func consume(data []byte, order binary.ByteOrder, c Consumer) error {
	d := &decoder{
		r:       spvbin.NewReader(data, order),
		numeric: make(map[uint32]numericType),
	}

	words, err := d.r.ReadWords(HeaderWords)
	if err != nil {
		return errors.StreamParse(errors.KindTruncated, 0, "read header", err)
	}
	header := Header{
		Magic:     words[0],
		Version:   words[1],
		Generator: words[2],
		Bound:     words[3],
		Schema:    words[4],
		BigEndian: order == binary.BigEndian,
	}
	stop, err := handle(c.ConsumeHeader(header), "header")
	if err != nil {
		return err
	}

	for !stop && !d.r.Done() {
		offset := d.r.Position()
		first, err := d.r.ReadWord()
		if err != nil {
			return errors.StreamParse(errors.KindTruncated, offset, "read instruction", err)
		}
		opcode := OpCode(first & 0xffff)
		wordCount := int(first >> 16)
		if wordCount == 0 {
			return errors.StreamParse(errors.KindInvalidData, offset, "instruction with zero word count", nil)
		}
		body, err := d.r.ReadWords(wordCount - 1)
		if err != nil {
			return errors.StreamParse(errors.KindTruncated, offset,
				opcode.String()+" runs past the end of the module", err)
		}

		inst, err := d.decodeInstruction(opcode, body, offset)
		if err != nil {
			return err
		}
		stop, err = handle(c.ConsumeInstruction(inst), opcode.String())
		if err != nil {
			return err
		}
	}
	return nil
}

func handle(a Action, stage string) (bool, error) {
	switch a {
	case Continue:
		return false, nil
	case Stop:
		return true, nil
	default:
		return true, errors.New(errors.PhaseParse, errors.KindInvalidInput).
			Detail("consumer aborted at %s", stage).
			Build()
	}
}

func (d *decoder) decodeInstruction(opcode OpCode, words []uint32, offset int) (Instruction, error) {
	inst := Instruction{Opcode: opcode}

	l, ok := grammar[opcode]
	if !ok {
		inst.Operands = make([]Operand, len(words))
		for i, w := range words {
			inst.Operands[i] = Int32Operand(w)
		}
		return inst, nil
	}

	i := 0
	if l.resultType {
		if i >= len(words) {
			return inst, errors.StreamParse(errors.KindTruncated, offset, opcode.String()+" missing result type", nil)
		}
		inst.ResultType = words[i]
		i++
	}
	if l.result {
		if i >= len(words) {
			return inst, errors.StreamParse(errors.KindTruncated, offset, opcode.String()+" missing result id", nil)
		}
		inst.ResultID = words[i]
		i++
	}

	inst.Operands = make([]Operand, 0, len(words)-i)
	for _, kind := range l.operands {
		if i >= len(words) {
			break
		}
		op, n, err := d.decodeOperand(kind, words[i:], offset)
		if err != nil {
			return inst, err
		}
		inst.Operands = append(inst.Operands, op)
		i += n
	}

	if l.literal && i < len(words) {
		op, n, err := d.decodeLiteral(inst.ResultType, words[i:], offset)
		if err != nil {
			return inst, err
		}
		inst.Operands = append(inst.Operands, op)
		i += n
	}

	for i < len(words) {
		kind := OperandLiteralInt32
		if l.variadic {
			kind = l.rest
		}
		op, n, err := d.decodeOperand(kind, words[i:], offset)
		if err != nil {
			return inst, err
		}
		inst.Operands = append(inst.Operands, op)
		i += n
	}

	switch opcode {
	case OpTypeInt:
		width, _ := inst.Operand(0)
		d.numeric[inst.ResultID] = numericType{width: width.Int32(32)}
	case OpTypeFloat:
		width, _ := inst.Operand(0)
		d.numeric[inst.ResultID] = numericType{width: width.Int32(32), float: true}
	}

	return inst, nil
}

func (d *decoder) decodeOperand(kind OperandKind, words []uint32, offset int) (Operand, int, error) {
	switch kind {
	case OperandLiteralString:
		s, n, err := spvbin.DecodeString(words)
		if err != nil {
			return Operand{}, 0, errors.StreamParse(errors.KindInvalidData, offset, "decode literal string", err)
		}
		return StringOperand(s), n, nil
	case OperandExecutionModel:
		if !validExecutionModel(words[0]) {
			return Operand{}, 0, errors.InvalidEnum(offset, words[0], "ExecutionModel")
		}
	case OperandStorageClass:
		if !validStorageClass(words[0]) {
			return Operand{}, 0, errors.InvalidEnum(offset, words[0], "StorageClass")
		}
	case OperandDim:
		if !validDim(words[0]) {
			return Operand{}, 0, errors.InvalidEnum(offset, words[0], "Dim")
		}
	case OperandImageFormat:
		if !validImageFormat(words[0]) {
			return Operand{}, 0, errors.InvalidEnum(offset, words[0], "ImageFormat")
		}
	}
	return EnumOperand(kind, words[0]), 1, nil
}

// decodeLiteral reads a constant value whose width and kind follow the
// numeric type declared for resultType. Unknown result types read one word.
func (d *decoder) decodeLiteral(resultType uint32, words []uint32, offset int) (Operand, int, error) {
	nt, known := d.numeric[resultType]
	switch {
	case known && nt.width == 64:
		if len(words) < 2 {
			return Operand{}, 0, errors.StreamParse(errors.KindTruncated, offset, "64-bit literal needs two words", nil)
		}
		v := uint64(words[0]) | uint64(words[1])<<32
		if nt.float {
			return Float64Operand(math.Float64frombits(v)), 2, nil
		}
		return Int64Operand(v), 2, nil
	case known && nt.float && nt.width == 32:
		return Float32Operand(math.Float32frombits(words[0])), 1, nil
	default:
		return Int32Operand(words[0]), 1, nil
	}
}
