package schema

// SetBind is a descriptor set and binding pair. Either half may be set alone.
type SetBind struct {
	Set     uint32 `json:"set"`
	Binding uint32 `json:"binding"`
}

// MatrixLayout records majorness and the optional stride set by MatrixStride.
type MatrixLayout struct {
	Major  MatrixMajor `json:"major"`
	Stride uint32      `json:"stride"`
}

// VarDecoration holds the decorations of one id or struct member.
// Nil fields were never decorated.
type VarDecoration struct {
	Name             *string       `json:"name,omitempty"`
	RelaxedPrecision *bool         `json:"relaxed_precision,omitempty"`
	SetBind          *SetBind      `json:"set_bind,omitempty"`
	SpecID           *uint32       `json:"spec_id,omitempty"`
	Location         *uint32       `json:"location,omitempty"`
	Matrix           *MatrixLayout `json:"matrix,omitempty"`
	ArrayStride      *uint32       `json:"array_stride,omitempty"`
	BlockType        *BlockType    `json:"block_type,omitempty"`
	Visibility       *Visibility   `json:"visibility,omitempty"`
	Offset           *uint32       `json:"offset,omitempty"`
}

// IsZero reports whether no field has been set.
func (d *VarDecoration) IsZero() bool {
	return *d == VarDecoration{}
}

// SetName sets the name. An empty name is ignored.
func (d *VarDecoration) SetName(name string) {
	if name != "" {
		d.Name = &name
	}
}

func (d *VarDecoration) RelaxPrecision() {
	v := true
	d.RelaxedPrecision = &v
}

// SetBinding sets the binding and keeps any descriptor set.
func (d *VarDecoration) SetBinding(binding uint32) {
	if d.SetBind == nil {
		d.SetBind = &SetBind{}
	}
	d.SetBind.Binding = binding
}

// SetDescriptorSet sets the descriptor set and keeps any binding.
func (d *VarDecoration) SetDescriptorSet(set uint32) {
	if d.SetBind == nil {
		d.SetBind = &SetBind{}
	}
	d.SetBind.Set = set
}

func (d *VarDecoration) SetSpecID(id uint32) {
	d.SpecID = &id
}

func (d *VarDecoration) SetLocation(loc uint32) {
	d.Location = &loc
}

// SetMatrixMajor replaces the matrix layout with a fresh one of the given majorness.
func (d *VarDecoration) SetMatrixMajor(major MatrixMajor) {
	d.Matrix = &MatrixLayout{Major: major}
}

// SetMatrixStride updates the stride of an existing matrix layout.
// Without a prior RowMajor or ColMajor it does nothing.
func (d *VarDecoration) SetMatrixStride(stride uint32) {
	if d.Matrix != nil {
		d.Matrix.Stride = stride
	}
}

func (d *VarDecoration) SetArrayStride(stride uint32) {
	d.ArrayStride = &stride
}

func (d *VarDecoration) SetBlockType(block BlockType) {
	d.BlockType = &block
}

func (d *VarDecoration) SetVisibility(v Visibility) {
	d.Visibility = &v
}

func (d *VarDecoration) SetOffset(offset uint32) {
	d.Offset = &offset
}

// StructuralDecoration aggregates the decorations of an id and of its members.
type StructuralDecoration struct {
	Decoration VarDecoration   `json:"decoration"`
	Members    []VarDecoration `json:"members,omitempty"`
}

// Member returns the decoration of member idx, growing Members with empty
// entries as needed.
func (s *StructuralDecoration) Member(idx uint32) *VarDecoration {
	if n := int(idx) + 1; n > len(s.Members) {
		s.Members = append(s.Members, make([]VarDecoration, n-len(s.Members))...)
	}
	return &s.Members[idx]
}

func (s *StructuralDecoration) SetName(name string) {
	s.Decoration.SetName(name)
}

func (s *StructuralDecoration) SetMemberName(idx uint32, name string) {
	s.Member(idx).SetName(name)
}
