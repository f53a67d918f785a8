package engine

import (
	"strings"

	"github.com/kolah/wilbur/internal/model"
	"github.com/kolah/wilbur/internal/naming"
)

const schemaRefPrefix = "#/components/schemas/"

// anyType is the untyped JSON value placeholder. Unsupported constructs
// resolve to it instead of failing the whole generation.
func anyType() TypeDescriptor {
	return TypeDescriptor{Kind: KindAny}
}

// Resolve maps a schema node to a type descriptor without a naming
// context. String enumerations collapse to plain strings here; only
// named component schemas resolve them as enums (see ResolveNamed).
func Resolve(s *model.Schema) TypeDescriptor {
	return resolve(s, "")
}

// ResolveNamed resolves a schema node in the naming context of its
// owning named schema. A string schema with a non-empty enumeration
// resolves to an enum variant set keyed by the owner's name.
func ResolveNamed(owner string, s *model.Schema) TypeDescriptor {
	return resolve(s, owner)
}

func resolve(s *model.Schema, owner string) TypeDescriptor {
	if s == nil {
		return anyType()
	}

	if s.Ref != "" {
		return resolveRef(s.Ref)
	}

	switch s.Type {
	case model.TypeString:
		if owner != "" && len(s.Enum) > 0 {
			return TypeDescriptor{
				Kind:       KindEnum,
				Name:       naming.TypeName(owner),
				EnumValues: s.Enum,
			}
		}
		return TypeDescriptor{Kind: KindString}
	case model.TypeInteger:
		if s.Format == "int64" {
			return TypeDescriptor{Kind: KindInt64}
		}
		return TypeDescriptor{Kind: KindInt32}
	case model.TypeNumber:
		if s.Format == "double" {
			return TypeDescriptor{Kind: KindFloat64}
		}
		return TypeDescriptor{Kind: KindFloat32}
	case model.TypeBoolean:
		return TypeDescriptor{Kind: KindBool}
	case model.TypeArray:
		item := anyType()
		if s.Items != nil {
			item = resolve(s.Items, "")
		}
		return TypeDescriptor{Kind: KindArray, Elem: &item}
	case model.TypeObject:
		// Inline objects never expand into anonymous structs; only
		// named component schemas become structs.
		elem := anyType()
		return TypeDescriptor{Kind: KindMap, Elem: &elem}
	default:
		return anyType()
	}
}

// resolveRef maps a reference string to a named type. Anything outside
// the local components/schemas space is unsupported and degrades to the
// untyped placeholder.
func resolveRef(ref string) TypeDescriptor {
	name, ok := strings.CutPrefix(ref, schemaRefPrefix)
	if !ok || name == "" {
		return anyType()
	}
	return TypeDescriptor{Kind: KindNamed, Name: naming.TypeName(name)}
}
