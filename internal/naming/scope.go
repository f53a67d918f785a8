package naming

// Scope hands out identifiers that are unique within one declaration
// scope (a struct, an enum, a method parameter list). Sanitizing alone
// is not collision free: "type" escapes to "type_", which a field
// literally named "type_" would also normalize to. The scope keeps the
// first claim and pushes later, different source names further out.
type Scope struct {
	claimed map[string]string // ident -> source name
}

func NewScope() *Scope {
	return &Scope{claimed: make(map[string]string)}
}

// Ident returns the safe identifier for source within this scope. The
// same source name always yields the same identifier; two different
// source names never share one.
func (s *Scope) Ident(source string) string {
	ident := Ident(source)
	for {
		owner, taken := s.claimed[ident]
		if !taken {
			s.claimed[ident] = source
			return ident
		}
		if owner == source {
			return ident
		}
		ident += "_"
	}
}
