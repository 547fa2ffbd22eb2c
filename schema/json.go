package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// tagged marshals body as a JSON object and prepends the discriminator.
func tagged(key string, body any) ([]byte, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.WriteString(`{"type":`)
	buf.WriteString(strconv.Quote(key))
	if len(raw) > 2 {
		buf.WriteByte(',')
		buf.Write(raw[1:])
	} else {
		buf.WriteByte('}')
	}
	return buf.Bytes(), nil
}

type typeProbe struct {
	Type string `json:"type"`
}

func (t Void) MarshalJSON() ([]byte, error) { return tagged(string(TypeKindVoid), struct{}{}) }
func (t Bool) MarshalJSON() ([]byte, error) { return tagged(string(TypeKindBool), struct{}{}) }

func (t Int) MarshalJSON() ([]byte, error) {
	type plain Int
	return tagged(string(TypeKindInt), plain(t))
}

func (t Float) MarshalJSON() ([]byte, error) {
	type plain Float
	return tagged(string(TypeKindFloat), plain(t))
}

func (t Vector) MarshalJSON() ([]byte, error) {
	type plain Vector
	return tagged(string(TypeKindVector), plain(t))
}

func (t Matrix) MarshalJSON() ([]byte, error) {
	type plain Matrix
	return tagged(string(TypeKindMatrix), plain(t))
}

func (t Struct) MarshalJSON() ([]byte, error) {
	type plain Struct
	p := plain(t)
	if p.Refs == nil {
		p.Refs = []uint32{}
	}
	return tagged(string(TypeKindStruct), p)
}

func (t Pointer) MarshalJSON() ([]byte, error) {
	type plain Pointer
	return tagged(string(TypeKindPointer), plain(t))
}

func (t Array) MarshalJSON() ([]byte, error) {
	type plain Array
	return tagged(string(TypeKindArray), plain(t))
}

func (t RuntimeArray) MarshalJSON() ([]byte, error) {
	type plain RuntimeArray
	return tagged(string(TypeKindRuntimeArray), plain(t))
}

func (t Image) MarshalJSON() ([]byte, error) {
	type plain Image
	return tagged(string(TypeKindImage), plain(t))
}

func (t SampledImage) MarshalJSON() ([]byte, error) {
	type plain SampledImage
	return tagged(string(TypeKindSampledImage), plain(t))
}

func (t Sampler) MarshalJSON() ([]byte, error) {
	return tagged(string(TypeKindSampler), struct{}{})
}

func (t AccelerationStructure) MarshalJSON() ([]byte, error) {
	return tagged(string(TypeKindAccelerationStructure), struct{}{})
}

func (t SpecConstantBool) MarshalJSON() ([]byte, error) {
	type plain SpecConstantBool
	return tagged(string(TypeKindSpecConstantBool), plain(t))
}

func (t SpecConstant) MarshalJSON() ([]byte, error) {
	type plain SpecConstant
	return tagged(string(TypeKindSpecConstant), plain(t))
}

func (t Constant) MarshalJSON() ([]byte, error) {
	type plain Constant
	return tagged(string(TypeKindConstant), plain(t))
}

func (t Variable) MarshalJSON() ([]byte, error) {
	type plain Variable
	return tagged(string(TypeKindVariable), plain(t))
}

func (t Unknown) MarshalJSON() ([]byte, error) {
	return tagged(string(TypeKindUnknown), struct{}{})
}

// constantBody is the wire form shared by SpecConstant and Constant.
type constantBody struct {
	Value json.RawMessage `json:"value"`
	Ref   uint32          `json:"ref"`
}

func (t *SpecConstant) UnmarshalJSON(data []byte) error {
	var body constantBody
	if err := json.Unmarshal(data, &body); err != nil {
		return err
	}
	v, err := UnmarshalConstantValue(body.Value)
	if err != nil {
		return err
	}
	*t = SpecConstant{Ref: body.Ref, Value: v}
	return nil
}

func (t *Constant) UnmarshalJSON(data []byte) error {
	var body constantBody
	if err := json.Unmarshal(data, &body); err != nil {
		return err
	}
	v, err := UnmarshalConstantValue(body.Value)
	if err != nil {
		return err
	}
	*t = Constant{Ref: body.Ref, Value: v}
	return nil
}

func (t *Struct) UnmarshalJSON(data []byte) error {
	type plain Struct
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	if p.Refs == nil {
		p.Refs = []uint32{}
	}
	*t = Struct(p)
	return nil
}

// UnmarshalType decodes one type object by its "type" key.
func UnmarshalType(data []byte) (Type, error) {
	var probe typeProbe
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, err
	}

	switch TypeKind(probe.Type) {
	case TypeKindVoid:
		return Void{}, nil
	case TypeKindBool:
		return Bool{}, nil
	case TypeKindSampler:
		return Sampler{}, nil
	case TypeKindAccelerationStructure:
		return AccelerationStructure{}, nil
	case TypeKindUnknown:
		return Unknown{}, nil
	case TypeKindInt:
		return decodeAs[Int](data)
	case TypeKindFloat:
		return decodeAs[Float](data)
	case TypeKindVector:
		return decodeAs[Vector](data)
	case TypeKindMatrix:
		return decodeAs[Matrix](data)
	case TypeKindStruct:
		return decodeAs[Struct](data)
	case TypeKindPointer:
		return decodeAs[Pointer](data)
	case TypeKindArray:
		return decodeAs[Array](data)
	case TypeKindRuntimeArray:
		return decodeAs[RuntimeArray](data)
	case TypeKindImage:
		return decodeAs[Image](data)
	case TypeKindSampledImage:
		return decodeAs[SampledImage](data)
	case TypeKindSpecConstantBool:
		return decodeAs[SpecConstantBool](data)
	case TypeKindSpecConstant:
		return decodeAs[SpecConstant](data)
	case TypeKindConstant:
		return decodeAs[Constant](data)
	case TypeKindVariable:
		return decodeAs[Variable](data)
	default:
		return nil, fmt.Errorf("unknown type kind %q", probe.Type)
	}
}

// decodeAs unmarshals into T; the "type" key is ignored as an unknown field.
func decodeAs[T Type](data []byte) (Type, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func (v Int32Value) MarshalJSON() ([]byte, error) {
	type plain Int32Value
	return tagged(string(ConstantKindInt32), plain(v))
}

func (v Int64Value) MarshalJSON() ([]byte, error) {
	type plain Int64Value
	return tagged(string(ConstantKindInt64), plain(v))
}

func (v Float32Value) MarshalJSON() ([]byte, error) {
	return tagged(string(ConstantKindFloat32), floatBody{Value: jsonFloat{v: float64(v.Value), bits: 32}})
}

func (v Float64Value) MarshalJSON() ([]byte, error) {
	return tagged(string(ConstantKindFloat64), floatBody{Value: jsonFloat{v: v.Value, bits: 64}})
}

// UnmarshalConstantValue decodes one constant value object by its "type" key.
func UnmarshalConstantValue(data []byte) (ConstantValue, error) {
	var probe typeProbe
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, err
	}

	switch ConstantKind(probe.Type) {
	case ConstantKindInt32:
		var v Int32Value
		err := json.Unmarshal(data, &v)
		return v, err
	case ConstantKindInt64:
		var v Int64Value
		err := json.Unmarshal(data, &v)
		return v, err
	case ConstantKindFloat32:
		var body floatBody
		if err := json.Unmarshal(data, &body); err != nil {
			return nil, err
		}
		return Float32Value{Value: float32(body.Value.v)}, nil
	case ConstantKindFloat64:
		var body floatBody
		if err := json.Unmarshal(data, &body); err != nil {
			return nil, err
		}
		return Float64Value{Value: body.Value.v}, nil
	default:
		return nil, fmt.Errorf("unknown constant kind %q", probe.Type)
	}
}

type floatBody struct {
	Value jsonFloat `json:"value"`
}

// jsonFloat writes finite values as numbers and NaN or infinities as strings.
// Negative zero is written as -0.0 so that YAML reads it back as a float.
type jsonFloat struct {
	v    float64
	bits int
}

const (
	nanText    = "NaN"
	posInfText = "Infinity"
	negInfText = "-Infinity"
)

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	switch {
	case math.IsNaN(f.v):
		return []byte(strconv.Quote(nanText)), nil
	case math.IsInf(f.v, 1):
		return []byte(strconv.Quote(posInfText)), nil
	case math.IsInf(f.v, -1):
		return []byte(strconv.Quote(negInfText)), nil
	}
	if f.v == 0 && math.Signbit(f.v) {
		return []byte("-0.0"), nil
	}
	bits := f.bits
	if bits == 0 {
		bits = 64
	}
	return []byte(strconv.FormatFloat(f.v, 'g', -1, bits)), nil
}

func (f *jsonFloat) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		switch s {
		case nanText:
			f.v = math.NaN()
		case posInfText:
			f.v = math.Inf(1)
		case negInfText:
			f.v = math.Inf(-1)
		default:
			return fmt.Errorf("invalid float value %q", s)
		}
		return nil
	}
	return json.Unmarshal(data, &f.v)
}

// artifactWire mirrors Artifact with undecoded types.
type artifactWire struct {
	SourceFile string                          `json:"source_file"`
	Types      []json.RawMessage               `json:"types"`
	Decoration map[string]StructuralDecoration `json:"decoration"`
	Entries    []ExecEntry                     `json:"entries"`
}

func (a *Artifact) UnmarshalJSON(data []byte) error {
	var w artifactWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	types := make([]Type, 0, len(w.Types))
	for i, raw := range w.Types {
		t, err := UnmarshalType(raw)
		if err != nil {
			return fmt.Errorf("types[%d]: %w", i, err)
		}
		types = append(types, t)
	}

	if w.Decoration == nil {
		w.Decoration = make(map[string]StructuralDecoration)
	}
	if w.Entries == nil {
		w.Entries = []ExecEntry{}
	}
	for i := range w.Entries {
		if w.Entries[i].Parameters == nil {
			w.Entries[i].Parameters = []uint32{}
		}
	}

	*a = Artifact{
		SourceFile: w.SourceFile,
		Types:      types,
		Decoration: w.Decoration,
		Entries:    w.Entries,
	}
	return nil
}
