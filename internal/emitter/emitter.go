package emitter

import (
	"fmt"
	"strings"

	"github.com/kolah/wilbur/internal/engine"
	"github.com/kolah/wilbur/internal/naming"
)

// templateData is the fully precomputed input for the client template.
// All expression strings are built here so the template itself stays
// mechanical.
type templateData struct {
	Package      string
	ClientName   string
	DocLines     []string
	Annotations  []string
	Middleware   bool
	Structs      []structData
	Enums        []enumData
	Aliases      []aliasData
	ParamStructs []paramStructData
	Methods      []methodData
	NeedsJoin    bool
}

type structData struct {
	Name     string
	DocLines []string
	Fields   []fieldData
}

type fieldData struct {
	Name     string
	Type     string
	Tag      string
	DocLines []string
}

type enumData struct {
	Name     string
	DocLines []string
	Variants []variantData
}

type variantData struct {
	Name string
	Wire string
}

type aliasData struct {
	Name     string
	DocLines []string
	Type     string
}

type paramStructData struct {
	Name     string
	Fields   []fieldData
	CtorArgs string
	Required []ctorInit
	Setters  []setterData
}

type ctorInit struct {
	Field string
	Arg   string
}

type setterData struct {
	Name    string
	Arg     string
	ArgType string
	Field   string
	Assign  string
}

type methodData struct {
	GoName      string
	DocLines    []string
	Signature   string
	HasResult   bool
	ResultType  string
	ContentKind string
	Verb        string
	Path        string
	Subs        []subData
	Query       []queryData
	HasBody     bool
}

type subData struct {
	Placeholder string
	Expr        string
}

type queryData struct {
	Key     string
	Value   string
	Present string // empty for required parameters
}

// Emit renders a client model into unformatted Go source.
func Emit(eng Engine, m *engine.ClientModel, pkg string) (string, error) {
	data, err := buildTemplateData(m, pkg)
	if err != nil {
		return "", err
	}
	return eng.Execute("client.tmpl", data)
}

func buildTemplateData(m *engine.ClientModel, pkg string) (*templateData, error) {
	data := &templateData{
		Package:     pkg,
		ClientName:  m.ClientName,
		DocLines:    m.Doc.Lines(m.ClientName),
		Annotations: m.Annotations,
		Middleware:  m.HasErrorKind(engine.ErrorMiddleware),
	}

	for _, s := range m.Structs {
		sd := structData{Name: s.Name, DocLines: docLines(s.Doc)}
		scope := newGoScope()
		for _, f := range s.Fields {
			sd.Fields = append(sd.Fields, fieldData{
				Name:     scope.field(f.Ident),
				Type:     fieldType(f.Type, f.Required),
				Tag:      jsonTag(f.SourceName, f.Required),
				DocLines: docLines(f.Doc),
			})
		}
		data.Structs = append(data.Structs, sd)
	}

	for _, e := range m.Enums {
		ed := enumData{Name: e.Name, DocLines: docLines(e.Doc)}
		for _, v := range e.Variants {
			ed.Variants = append(ed.Variants, variantData{Name: e.Name + v.Ident, Wire: v.Wire})
		}
		data.Enums = append(data.Enums, ed)
	}

	for _, a := range m.Aliases {
		data.Aliases = append(data.Aliases, aliasData{
			Name:     a.Name,
			DocLines: docLines(a.Doc),
			Type:     goType(a.Type),
		})
	}

	for _, ps := range m.ParamStructs {
		data.ParamStructs = append(data.ParamStructs, buildParamStruct(ps))
	}

	for _, method := range m.Methods {
		md, err := buildMethod(m, method)
		if err != nil {
			return nil, err
		}
		for _, q := range md.Query {
			if strings.Contains(q.Value, "queryJoin(") {
				data.NeedsJoin = true
			}
		}
		data.Methods = append(data.Methods, md)
	}

	return data, nil
}

func buildParamStruct(ps engine.ParameterStructDescriptor) paramStructData {
	out := paramStructData{Name: ps.Name}
	fields := paramFieldNames(ps.Fields)

	for _, f := range ps.Fields {
		out.Fields = append(out.Fields, fieldData{
			Name: fields[f.Ident],
			Type: fieldType(f.Type, f.Required),
		})
	}

	argScope := newGoScope()
	var args []string
	for _, f := range ps.RequiredFields() {
		arg := argScope.arg(f.Ident)
		args = append(args, arg+" "+goType(f.Type))
		out.Required = append(out.Required, ctorInit{
			Field: fields[f.Ident],
			Arg:   arg,
		})
	}
	out.CtorArgs = strings.Join(args, ", ")

	for _, setter := range ps.Setters() {
		f := setter.Field
		arg := argName(f.Ident)
		sd := setterData{
			Name:    "With" + fields[f.Ident],
			Arg:     arg,
			ArgType: goType(f.Type),
			Field:   fields[f.Ident],
		}
		if nilable(f.Type) {
			sd.Assign = arg
		} else {
			sd.Assign = "&" + arg
		}
		out.Setters = append(out.Setters, sd)
	}

	return out
}

func buildMethod(m *engine.ClientModel, method engine.MethodDescriptor) (methodData, error) {
	md := methodData{
		GoName:      naming.PascalCase(method.Name),
		DocLines:    method.Doc.Lines(),
		Verb:        method.HTTPVerb,
		Path:        method.PathTemplate,
		HasBody:     method.HasBody,
		ContentKind: string(method.ContentKind),
	}

	if method.ResponseType != nil {
		md.HasResult = true
		md.ResultType = goType(*method.ResponseType)
	}

	byIdent := make(map[string]engine.ParameterDescriptor)
	expr := make(map[string]string)

	sig := []string{"ctx context.Context"}
	if method.ParamStruct != "" {
		ps := m.ParamStructByName(method.ParamStruct)
		if ps == nil {
			return md, fmt.Errorf("method %s references missing parameter struct %s", method.Name, method.ParamStruct)
		}
		sig = append(sig, "params "+ps.Name)
		fields := paramFieldNames(ps.Fields)
		for _, f := range ps.Fields {
			byIdent[f.Ident] = f
			expr[f.Ident] = "params." + fields[f.Ident]
		}
	} else {
		argScope := newGoScope()
		for _, p := range method.Params {
			byIdent[p.Ident] = p
			arg := argScope.arg(p.Ident)
			expr[p.Ident] = arg
			sig = append(sig, arg+" "+fieldType(p.Type, p.Required))
		}
	}
	if method.HasBody {
		sig = append(sig, "body any")
	}
	md.Signature = strings.Join(sig, ", ")

	for _, sub := range method.URL.Substitutions {
		md.Subs = append(md.Subs, subData{
			Placeholder: sub.Placeholder,
			Expr:        sprintExpr(byIdent[sub.Param], expr[sub.Param], true),
		})
	}

	for _, step := range method.URL.Query {
		p := byIdent[step.Param]
		q := queryData{
			Key:   step.Key,
			Value: sprintExpr(p, expr[step.Param], step.Required),
		}
		if !step.Required {
			q.Present = expr[step.Param] + " != nil"
		}
		md.Query = append(md.Query, q)
	}

	return md, nil
}

// sprintExpr renders the stringification of a parameter value. Arrays
// collapse to one comma-joined value; optional scalars are dereferenced
// at their (guarded) use site.
func sprintExpr(p engine.ParameterDescriptor, expr string, required bool) string {
	if p.IsArray {
		return "queryJoin(" + expr + ")"
	}
	if !required && !nilable(p.Type) {
		expr = "*" + expr
		if p.Type.Kind == engine.KindString {
			return "(" + expr + ")"
		}
	}
	if p.Type.Kind == engine.KindString {
		return expr
	}
	return "fmt.Sprint(" + expr + ")"
}

// argName converts a descriptor identifier into a Go argument name.
func argName(ident string) string {
	a := naming.CamelCase(ident)
	if a == "" || naming.IsReserved(a) {
		a += "_"
	}
	return a
}

func docLines(doc string) []string {
	doc = strings.TrimSpace(doc)
	if doc == "" {
		return nil
	}
	var lines []string
	for _, line := range strings.Split(doc, "\n") {
		lines = append(lines, strings.TrimSpace(line))
	}
	return lines
}

func jsonTag(name string, required bool) string {
	if required {
		return fmt.Sprintf("`json:%q`", name)
	}
	return fmt.Sprintf("`json:%q`", name+",omitempty")
}
