package engine

import (
	"fmt"

	"github.com/kolah/wilbur/internal/model"
	"github.com/kolah/wilbur/internal/naming"
)

// ClassifyParameter builds the normalized descriptor for one raw
// operation parameter. Identifiers are claimed from scope so that two
// different source names never share a safe identifier within one
// operation. Path parameters are forced required regardless of what the
// spec declares.
func ClassifyParameter(p model.Parameter, scope *naming.Scope) (ParameterDescriptor, error) {
	if p.IsRef {
		return ParameterDescriptor{}, fmt.Errorf("parameter references not supported: %s", p.Ref)
	}

	t := Resolve(p.Schema)

	return ParameterDescriptor{
		SourceName: p.Name,
		Ident:      scope.Ident(p.Name),
		Location:   p.In,
		Type:       t,
		IsArray:    t.Kind == KindArray,
		Required:   p.Required || p.In == model.LocationPath,
	}, nil
}

// classifyAll classifies every parameter of an operation under one
// shared identifier scope, preserving declaration order.
func classifyAll(params []model.Parameter) ([]ParameterDescriptor, error) {
	scope := naming.NewScope()
	var out []ParameterDescriptor
	for _, p := range params {
		pd, err := ClassifyParameter(p, scope)
		if err != nil {
			return nil, err
		}
		out = append(out, pd)
	}
	return out, nil
}

// filterByLocation returns the descriptors declared at the given
// location, in declaration order.
func filterByLocation(params []ParameterDescriptor, loc model.ParameterLocation) []ParameterDescriptor {
	var out []ParameterDescriptor
	for _, p := range params {
		if p.Location == loc {
			out = append(out, p)
		}
	}
	return out
}

// methodSurface returns the parameters that enter the method surface:
// path and query only. Header and cookie parameters are classified but
// not wired into request construction.
func methodSurface(params []ParameterDescriptor) []ParameterDescriptor {
	var out []ParameterDescriptor
	for _, p := range params {
		if p.Location == model.LocationPath || p.Location == model.LocationQuery {
			out = append(out, p)
		}
	}
	return out
}
