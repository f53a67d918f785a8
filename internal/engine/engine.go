package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/kolah/wilbur/internal/model"
	"github.com/kolah/wilbur/internal/naming"
)

// Options are the generation options the engine consumes. The engine is
// a pure function of (spec, options): no I/O, no shared state, same
// model for the same input.
type Options struct {
	// ClientName overrides the name derived from the document title.
	ClientName string
	// UseParamStructs groups each operation's parameters into a named
	// struct instead of individual method parameters.
	UseParamStructs bool
	// StructAnnotations are attached verbatim to every synthesized
	// struct and enum; they are opaque to the engine.
	StructAnnotations []string
	// Middleware enables transport-middleware support for the client,
	// adding the middleware error kind to the taxonomy.
	Middleware bool
}

// Build assembles the client model for a parsed spec. Any resolution
// failure aborts the whole build; there is no partial model.
func Build(spec *model.Spec, opts Options) (*ClientModel, error) {
	structs, enums, aliases := SynthesizeComponents(spec.Schemas)

	m := &ClientModel{
		ClientName: clientName(spec.Info.Title, opts.ClientName),
		Structs:    structs,
		Enums:      enums,
		Aliases:    aliases,
		ErrorKinds: ErrorTaxonomy(opts.Middleware),
		Doc:        ClientDocFor(spec.Info),
	}

	m.Annotations = append(m.Annotations, opts.StructAnnotations...)
	m.Annotations = append(m.Annotations, spec.Annotations...)

	for _, op := range spec.Operations {
		method, err := SynthesizeMethod(op, opts.UseParamStructs)
		if err != nil {
			return nil, fmt.Errorf("operation %s %s: %w", strings.ToUpper(string(op.Method)), op.Path, err)
		}
		m.Methods = append(m.Methods, method)

		if opts.UseParamStructs {
			ps, err := SynthesizeParamStruct(op)
			if err != nil {
				return nil, fmt.Errorf("operation %s %s: %w", strings.ToUpper(string(op.Method)), op.Path, err)
			}
			if ps != nil {
				m.ParamStructs = append(m.ParamStructs, *ps)
			}
		}
	}

	if err := validateReferences(m); err != nil {
		return nil, err
	}

	return m, nil
}

// clientName returns the override, or a name derived from the document
// title with everything but letters, digits and spaces stripped, plus
// the Api suffix.
func clientName(title, override string) string {
	if override != "" {
		return override
	}
	var b strings.Builder
	for _, r := range title {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return naming.TypeName(b.String()) + "Api"
}

// validateReferences checks that every named reference in the model
// resolves to a struct, enum, or alias the model itself owns.
func validateReferences(m *ClientModel) error {
	known := make(map[string]bool)
	for _, s := range m.Structs {
		known[s.Name] = true
	}
	for _, e := range m.Enums {
		known[e.Name] = true
	}
	for _, a := range m.Aliases {
		known[a.Name] = true
	}

	check := func(t *TypeDescriptor, where string) error {
		for t != nil {
			if t.Kind == KindNamed && !known[t.Name] {
				return fmt.Errorf("%s: unresolved reference to type %s", where, t.Name)
			}
			t = t.Elem
		}
		return nil
	}

	for _, s := range m.Structs {
		for _, f := range s.Fields {
			if err := check(&f.Type, "struct "+s.Name+" field "+f.SourceName); err != nil {
				return err
			}
		}
	}
	for _, a := range m.Aliases {
		if err := check(&a.Type, "alias "+a.Name); err != nil {
			return err
		}
	}
	for _, method := range m.Methods {
		for _, p := range method.Params {
			if err := check(&p.Type, "method "+method.Name+" parameter "+p.SourceName); err != nil {
				return err
			}
		}
		if err := check(method.ResponseType, "method "+method.Name+" response"); err != nil {
			return err
		}
	}
	for _, ps := range m.ParamStructs {
		for _, f := range ps.Fields {
			if err := check(&f.Type, "parameter struct "+ps.Name+" field "+f.SourceName); err != nil {
				return err
			}
		}
	}

	return nil
}
