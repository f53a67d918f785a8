package emitter

import (
	"github.com/kolah/wilbur/internal/engine"
	"github.com/kolah/wilbur/internal/naming"
)

// goScope hands out Go names that stay unique within one declaration
// scope. PascalCase collapses the underscore escapes that keep engine
// idents apart ("type_" and "type__" both come back as "Type"), so each
// conversion claims its result the way naming.Scope claims idents: the
// first claim wins and later, different source idents get pushed out.
type goScope struct {
	claimed map[string]string // Go name -> source ident
}

func newGoScope() *goScope {
	return &goScope{claimed: make(map[string]string)}
}

func (s *goScope) claim(name, source string) string {
	for {
		owner, taken := s.claimed[name]
		if !taken {
			s.claimed[name] = source
			return name
		}
		if owner == source {
			return name
		}
		name += "_"
	}
}

// field returns the exported field name for an engine ident.
func (s *goScope) field(ident string) string {
	return s.claim(naming.PascalCase(ident), ident)
}

// arg returns the Go argument name for an engine ident.
func (s *goScope) arg(ident string) string {
	return s.claim(argName(ident), ident)
}

// paramFieldNames maps each field's engine ident to its claimed Go
// field name, in declaration order, so the struct declaration and the
// method bodies referencing it agree.
func paramFieldNames(fields []engine.ParameterDescriptor) map[string]string {
	scope := newGoScope()
	out := make(map[string]string, len(fields))
	for _, f := range fields {
		out[f.Ident] = scope.field(f.Ident)
	}
	return out
}
