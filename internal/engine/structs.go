package engine

import (
	"github.com/kolah/wilbur/internal/model"
	"github.com/kolah/wilbur/internal/naming"
)

// SynthesizeComponents converts every named schema component into a
// struct, enum, or alias descriptor, in declaration order. Components
// that are themselves references are skipped; only their targets are
// emitted.
func SynthesizeComponents(schemas []model.Schema) ([]StructDescriptor, []EnumDescriptor, []AliasDescriptor) {
	var structs []StructDescriptor
	var enums []EnumDescriptor
	var aliases []AliasDescriptor

	for i := range schemas {
		s := &schemas[i]
		if s.Ref != "" {
			continue
		}

		switch {
		case s.Type == model.TypeObject:
			structs = append(structs, synthesizeStruct(s))
		case s.Type == model.TypeString && len(s.Enum) > 0:
			enums = append(enums, synthesizeEnum(s))
		default:
			aliases = append(aliases, AliasDescriptor{
				Name: naming.TypeName(s.Name),
				Doc:  s.Description,
				Type: Resolve(s),
			})
		}
	}

	return structs, enums, aliases
}

func synthesizeStruct(s *model.Schema) StructDescriptor {
	name := naming.TypeName(s.Name)
	scope := naming.NewScope()

	sd := StructDescriptor{Name: name, Doc: s.Description}
	for _, prop := range s.Properties {
		t := Resolve(prop.Schema)
		if t.Kind == KindNamed && t.Name == name {
			// A field referencing its own struct would make the type
			// infinitely sized; hold it through an indirection.
			t.Indirect = true
		}

		var doc string
		if prop.Schema != nil && prop.Schema.Ref == "" {
			doc = prop.Schema.Description
		}

		sd.Fields = append(sd.Fields, FieldDescriptor{
			SourceName: prop.Name,
			Ident:      scope.Ident(prop.Name),
			Type:       t,
			Required:   s.IsRequired(prop.Name),
			Doc:        doc,
		})
	}

	return sd
}

func synthesizeEnum(s *model.Schema) EnumDescriptor {
	t := ResolveNamed(s.Name, s)
	ed := EnumDescriptor{Name: t.Name, Doc: s.Description}

	// Two different wire literals can PascalCase to the same variant
	// identifier ("new" and "New"); push later ones out.
	claimed := make(map[string]string)
	for _, value := range t.EnumValues {
		ident := naming.TypeName(value)
		for {
			owner, taken := claimed[ident]
			if !taken || owner == value {
				break
			}
			ident += "_"
		}
		claimed[ident] = value
		ed.Variants = append(ed.Variants, EnumVariant{Ident: ident, Wire: value})
	}
	return ed
}
