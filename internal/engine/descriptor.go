package engine

import "github.com/kolah/wilbur/internal/model"

// TypeKind enumerates the variants of a resolved type descriptor.
type TypeKind string

const (
	KindString  TypeKind = "string"
	KindInt32   TypeKind = "int32"
	KindInt64   TypeKind = "int64"
	KindFloat32 TypeKind = "float32"
	KindFloat64 TypeKind = "float64"
	KindBool    TypeKind = "bool"
	KindArray   TypeKind = "array"
	KindMap     TypeKind = "map"
	KindNamed   TypeKind = "named"
	KindEnum    TypeKind = "enum"
	// KindAny is the untyped JSON value placeholder the resolver
	// degrades to instead of aborting generation.
	KindAny TypeKind = "any"
)

// TypeDescriptor is the resolved, target-language-agnostic type of a
// schema node. Name is set for KindNamed and KindEnum; Elem for
// KindArray and KindMap.
type TypeDescriptor struct {
	Kind TypeKind
	Name string
	Elem *TypeDescriptor
	// EnumValues carries the literal variant set for KindEnum.
	EnumValues []string
	// Indirect marks a self-referential field that must be held
	// through a heap indirection to keep the owning type finite.
	Indirect bool
}

func (t TypeDescriptor) IsPrimitive() bool {
	switch t.Kind {
	case KindString, KindInt32, KindInt64, KindFloat32, KindFloat64, KindBool:
		return true
	}
	return false
}

// ParameterDescriptor is a classified operation parameter. It is built
// once and never mutated afterwards.
type ParameterDescriptor struct {
	SourceName string
	Ident      string
	Location   model.ParameterLocation
	Type       TypeDescriptor
	IsArray    bool
	Required   bool
}

// ContentKind is the decoded shape of a success response body.
type ContentKind string

const (
	ContentJSON ContentKind = "json"
	ContentText ContentKind = "text"
	ContentNone ContentKind = "none"
)

// MethodDescriptor describes one generated client method. Exactly one
// of Params / ParamStruct is populated, depending on the generation
// mode.
type MethodDescriptor struct {
	Name         string
	HTTPVerb     string
	PathTemplate string
	Params       []ParameterDescriptor
	ParamStruct  string
	HasBody      bool
	// ResponseType is nil when the operation has no typed response.
	ResponseType *TypeDescriptor
	ContentKind  ContentKind
	URL          URLPlan
	Doc          MethodDoc
}

// ParameterStructDescriptor groups one operation's path and query
// parameters into a named, builder-constructed value.
type ParameterStructDescriptor struct {
	Name   string
	Fields []ParameterDescriptor
}

// RequiredFields returns the fields the constructor takes, in
// declaration order.
func (p ParameterStructDescriptor) RequiredFields() []ParameterDescriptor {
	var out []ParameterDescriptor
	for _, f := range p.Fields {
		if f.Required {
			out = append(out, f)
		}
	}
	return out
}

// OptionalFields returns the fields covered by with_* setters, in
// declaration order.
func (p ParameterStructDescriptor) OptionalFields() []ParameterDescriptor {
	var out []ParameterDescriptor
	for _, f := range p.Fields {
		if !f.Required {
			out = append(out, f)
		}
	}
	return out
}

// StructDescriptor is a named object component.
type StructDescriptor struct {
	Name   string
	Doc    string
	Fields []FieldDescriptor
}

type FieldDescriptor struct {
	SourceName string
	Ident      string
	Type       TypeDescriptor
	Required   bool
	Doc        string
}

// EnumDescriptor is a named string component with a closed literal set.
// Variant identifiers are PascalCased while wire literals stay
// untouched.
type EnumDescriptor struct {
	Name     string
	Doc      string
	Variants []EnumVariant
}

type EnumVariant struct {
	Ident string
	Wire  string
}

// AliasDescriptor maps a named schema of any other kind onto its
// resolved type, as a pure naming convenience.
type AliasDescriptor struct {
	Name string
	Doc  string
	Type TypeDescriptor
}

// ErrorKind enumerates the closed error taxonomy of a generated client.
type ErrorKind string

const (
	ErrorTransport     ErrorKind = "transport"
	ErrorSerialization ErrorKind = "serialization"
	ErrorAPI           ErrorKind = "api"
	ErrorMiddleware    ErrorKind = "middleware"
)

// ClientModel is the root aggregate handed to the emitter. It owns all
// descriptors and keeps no references back into the raw spec.
type ClientModel struct {
	ClientName   string
	Structs      []StructDescriptor
	Enums        []EnumDescriptor
	Aliases      []AliasDescriptor
	Methods      []MethodDescriptor
	ParamStructs []ParameterStructDescriptor
	ErrorKinds   []ErrorKind
	Annotations  []string
	Doc          ClientDoc
}

// StructByName returns the struct descriptor with the given name, or
// nil when the model does not contain one.
func (m *ClientModel) StructByName(name string) *StructDescriptor {
	for i := range m.Structs {
		if m.Structs[i].Name == name {
			return &m.Structs[i]
		}
	}
	return nil
}

// EnumByName returns the enum descriptor with the given name, or nil.
func (m *ClientModel) EnumByName(name string) *EnumDescriptor {
	for i := range m.Enums {
		if m.Enums[i].Name == name {
			return &m.Enums[i]
		}
	}
	return nil
}

// ParamStructByName returns the parameter struct with the given name,
// or nil.
func (m *ClientModel) ParamStructByName(name string) *ParameterStructDescriptor {
	for i := range m.ParamStructs {
		if m.ParamStructs[i].Name == name {
			return &m.ParamStructs[i]
		}
	}
	return nil
}

// HasErrorKind reports whether the model's taxonomy carries kind.
func (m *ClientModel) HasErrorKind(kind ErrorKind) bool {
	for _, k := range m.ErrorKinds {
		if k == kind {
			return true
		}
	}
	return false
}
