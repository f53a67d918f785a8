package emitter

import "github.com/kolah/wilbur/internal/engine"

// goType renders a type descriptor as Go source.
func goType(t engine.TypeDescriptor) string {
	switch t.Kind {
	case engine.KindString:
		return "string"
	case engine.KindInt32:
		return "int32"
	case engine.KindInt64:
		return "int64"
	case engine.KindFloat32:
		return "float32"
	case engine.KindFloat64:
		return "float64"
	case engine.KindBool:
		return "bool"
	case engine.KindArray:
		return "[]" + goType(*t.Elem)
	case engine.KindMap:
		return "map[string]" + goType(*t.Elem)
	case engine.KindNamed, engine.KindEnum:
		if t.Indirect {
			return "*" + t.Name
		}
		return t.Name
	default:
		return "any"
	}
}

// fieldType renders a struct or parameter field type. Optional fields
// that are not already nilable are held through a pointer so absence is
// representable.
func fieldType(t engine.TypeDescriptor, required bool) string {
	base := goType(t)
	if required || nilable(t) {
		return base
	}
	return "*" + base
}

func nilable(t engine.TypeDescriptor) bool {
	switch t.Kind {
	case engine.KindArray, engine.KindMap, engine.KindAny:
		return true
	case engine.KindNamed, engine.KindEnum:
		return t.Indirect
	}
	return false
}
