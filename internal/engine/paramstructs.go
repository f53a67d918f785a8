package engine

import "github.com/kolah/wilbur/internal/model"

// SynthesizeParamStruct groups one operation's path and query
// parameters into a named struct. It returns nil for operations with no
// eligible parameters. The field list preserves declaration order and
// matches the descriptors the operation synthesizer uses for the same
// operation; constructor and builder partitioning happens over that
// shared identity.
func SynthesizeParamStruct(op model.Operation) (*ParameterStructDescriptor, error) {
	params, err := classifyAll(op.Parameters)
	if err != nil {
		return nil, err
	}

	surface := methodSurface(params)
	if len(surface) == 0 {
		return nil, nil
	}

	return &ParameterStructDescriptor{
		Name:   ParamStructName(op),
		Fields: surface,
	}, nil
}

// Setters returns the fluent builder contract: one with_{field} setter
// per optional field, in declaration order. A struct with zero required
// fields additionally exposes default construction, which Default
// reports.
func (p ParameterStructDescriptor) Setters() []Setter {
	var out []Setter
	for _, f := range p.OptionalFields() {
		out = append(out, Setter{Name: "with_" + f.Ident, Field: f})
	}
	return out
}

// Default reports whether the struct supports no-argument construction.
func (p ParameterStructDescriptor) Default() bool {
	return len(p.RequiredFields()) == 0
}

// Setter describes one fluent setter over an optional field. Setters
// return the struct by value with the single field populated; setters
// over string-typed fields accept any value convertible into the owned
// string representation.
type Setter struct {
	Name  string
	Field ParameterDescriptor
}
