package model

// Spec is the parsed OpenAPI document as consumed by the engine. It is
// built once by the loader and read-only afterwards; slices preserve
// declaration order from the source document.
type Spec struct {
	Info        Info
	Paths       []Path
	Operations  []Operation
	Schemas     []Schema
	Annotations []string
}

type Info struct {
	Title          string
	Description    string
	Version        string
	TermsOfService string
	Contact        *Contact
	License        *License
}

type Contact struct {
	Name  string
	Email string
	URL   string
}

type License struct {
	Name string
	URL  string
}

type Path struct {
	Path       string
	Operations []Operation
}
