package engine

import (
	"strings"

	"github.com/kolah/wilbur/internal/model"
	"github.com/kolah/wilbur/internal/naming"
)

// SynthesizeMethod builds the method descriptor for one operation. In
// parameter-struct mode the method references the struct synthesized by
// SynthesizeParamStruct for the same operation instead of carrying an
// individual parameter list; an operation with no path or query
// parameters keeps an empty signature in both modes.
func SynthesizeMethod(op model.Operation, useParamStructs bool) (MethodDescriptor, error) {
	params, err := classifyAll(op.Parameters)
	if err != nil {
		return MethodDescriptor{}, err
	}

	surface := methodSurface(params)
	responseType, contentKind := ResolveResponse(op.Responses)

	m := MethodDescriptor{
		Name:         MethodName(op),
		HTTPVerb:     strings.ToUpper(string(op.Method)),
		PathTemplate: op.Path,
		HasBody:      op.RequestBody != nil,
		ResponseType: responseType,
		ContentKind:  contentKind,
		URL:          BuildURLPlan(op.Path, surface),
		Doc:          MethodDocFor(op),
	}

	if useParamStructs && len(surface) > 0 {
		m.ParamStruct = ParamStructName(op)
	} else {
		m.Params = surface
	}

	return m, nil
}

// MethodName derives the method identifier from the operation id, or
// deterministically from verb and path when the id is absent.
func MethodName(op model.Operation) string {
	if op.ID != "" {
		return naming.Ident(op.ID)
	}
	clean := strings.NewReplacer("{", "_", "}", "_", "/", "_").Replace(op.Path)
	clean = strings.Trim(clean, "_")
	return naming.Ident(string(op.Method) + "_" + clean)
}

// ParamStructName derives the parameter struct name for an operation:
// PascalCase of the operation id (or a verb+path fallback) plus the
// Params suffix.
func ParamStructName(op model.Operation) string {
	id := op.ID
	if id == "" {
		id = fallbackStructID(op)
	}
	return naming.TypeName(id) + "Params"
}

// fallbackStructID joins the non-placeholder path segments after the
// verb. It intentionally differs from the method-name fallback, which
// keeps placeholder positions as underscores.
func fallbackStructID(op model.Operation) string {
	var parts []string
	for _, seg := range strings.Split(op.Path, "/") {
		if seg == "" || strings.HasPrefix(seg, "{") {
			continue
		}
		parts = append(parts, seg)
	}
	if len(parts) == 0 {
		return string(op.Method)
	}
	return string(op.Method) + naming.PascalCase(strings.Join(parts, "_"))
}
