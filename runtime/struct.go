package runtime

// StructVal is the runtime representation of a struct instance: a named
// type tag plus field storage backed by a Dict, since fields are accessed
// by name (struct_get/struct_set) and structs have no fixed memory layout
// on the reference-model side — only the emitted assembly's struct
// instances have a fixed field offset table (spec.md §4.5).
type StructVal struct {
	TypeName string
	Fields   *Dict
}

// NewStruct returns a zero-valued instance of typeName with fieldNames
// all initialized to Null, matching struct declaration order.
func NewStruct(typeName string, fieldNames []string) *StructVal {
	s := &StructVal{TypeName: typeName, Fields: NewDict()}
	for _, name := range fieldNames {
		s.Fields.Set(name, Null())
	}
	return s
}

func (s *StructVal) Get(field string) Value    { return s.Fields.Get(field) }
func (s *StructVal) Set(field string, v Value) { s.Fields.Set(field, v) }
