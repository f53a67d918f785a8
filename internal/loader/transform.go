package loader

import (
	"strings"

	"github.com/kolah/wilbur/internal/model"
	"github.com/pb33f/libopenapi/datamodel/high/base"
	v3 "github.com/pb33f/libopenapi/datamodel/high/v3"
	"github.com/pb33f/libopenapi/orderedmap"
	"go.yaml.in/yaml/v4"
)

type transformer struct {
	componentSchemas map[*base.Schema]string
}

// Transform walks the parsed document into the engine's read-only spec
// model. Iteration uses the document's ordered maps throughout, so the
// result is deterministic for the same input.
func Transform(result *Result) (*model.Spec, error) {
	doc := result.Document.Model

	t := &transformer{
		componentSchemas: make(map[*base.Schema]string),
	}

	if doc.Components != nil && doc.Components.Schemas != nil {
		for name, schemaProxy := range doc.Components.Schemas.FromOldest() {
			t.componentSchemas[schemaProxy.Schema()] = "#/components/schemas/" + name
		}
	}

	spec := &model.Spec{
		Info:        transformInfo(doc.Info),
		Annotations: annotationExtensions(doc.Info),
	}

	if doc.Components != nil && doc.Components.Schemas != nil {
		for name, schemaProxy := range doc.Components.Schemas.FromOldest() {
			if ref := schemaProxy.GetReference(); ref != "" {
				spec.Schemas = append(spec.Schemas, model.Schema{Name: name, Ref: ref})
				continue
			}
			schema := t.transformSchema(name, schemaProxy.Schema())
			spec.Schemas = append(spec.Schemas, *schema)
		}
	}

	if doc.Paths != nil {
		for pathStr, pathItem := range doc.Paths.PathItems.FromOldest() {
			path, ops := t.transformPath(pathStr, pathItem)
			spec.Paths = append(spec.Paths, path)
			spec.Operations = append(spec.Operations, ops...)
		}
	}

	return spec, nil
}

func transformInfo(info *base.Info) model.Info {
	if info == nil {
		return model.Info{}
	}
	out := model.Info{
		Title:          info.Title,
		Description:    info.Description,
		Version:        info.Version,
		TermsOfService: info.TermsOfService,
	}
	if info.Contact != nil {
		out.Contact = &model.Contact{
			Name:  info.Contact.Name,
			Email: info.Contact.Email,
			URL:   info.Contact.URL,
		}
	}
	if info.License != nil {
		out.License = &model.License{
			Name: info.License.Name,
			URL:  info.License.URL,
		}
	}
	return out
}

// annotationExtensions reads x-wilbur-annotations from the info object:
// either a single scalar or a sequence of scalars, each attached
// verbatim to every synthesized struct and enum.
func annotationExtensions(info *base.Info) []string {
	if info == nil || info.Extensions == nil {
		return nil
	}
	return parseAnnotations(info.Extensions)
}

func parseAnnotations(extensions *orderedmap.Map[string, *yaml.Node]) []string {
	var out []string
	for pair := extensions.First(); pair != nil; pair = pair.Next() {
		if pair.Key() != "x-wilbur-annotations" {
			continue
		}
		node := pair.Value()
		switch node.Kind {
		case yaml.ScalarNode:
			out = append(out, node.Value)
		case yaml.SequenceNode:
			for _, item := range node.Content {
				if item.Kind == yaml.ScalarNode {
					out = append(out, item.Value)
				}
			}
		}
	}
	return out
}

func (t *transformer) transformPath(pathStr string, pathItem *v3.PathItem) (model.Path, []model.Operation) {
	path := model.Path{Path: pathStr}
	var ops []model.Operation

	// Slice, not map, for deterministic ordering.
	methods := []struct {
		method model.Method
		op     *v3.Operation
	}{
		{model.MethodGet, pathItem.Get},
		{model.MethodPost, pathItem.Post},
		{model.MethodPut, pathItem.Put},
		{model.MethodDelete, pathItem.Delete},
		{model.MethodPatch, pathItem.Patch},
		{model.MethodHead, pathItem.Head},
		{model.MethodOptions, pathItem.Options},
		{model.MethodTrace, pathItem.Trace},
	}

	for _, m := range methods {
		if m.op == nil {
			continue
		}
		operation := t.transformOperation(m.method, pathStr, m.op)
		ops = append(ops, operation)
		path.Operations = append(path.Operations, operation)
	}

	return path, ops
}

func (t *transformer) transformOperation(method model.Method, path string, op *v3.Operation) model.Operation {
	operation := model.Operation{
		ID:          op.OperationId,
		Method:      method,
		Path:        path,
		Summary:     op.Summary,
		Description: op.Description,
		Deprecated:  boolPtr(op.Deprecated),
	}

	for _, p := range op.Parameters {
		operation.Parameters = append(operation.Parameters, t.transformParameter(p))
	}

	if op.RequestBody != nil {
		operation.RequestBody = t.transformRequestBody(op.RequestBody)
	}

	if op.Responses != nil && op.Responses.Codes != nil {
		for code, resp := range op.Responses.Codes.FromOldest() {
			operation.Responses = append(operation.Responses, t.transformResponse(code, resp))
		}
	}

	return operation
}

func (t *transformer) transformParameter(p *v3.Parameter) model.Parameter {
	param := model.Parameter{
		Name:        p.Name,
		In:          model.ParameterLocation(strings.ToLower(p.In)),
		Description: p.Description,
		Required:    boolPtr(p.Required),
		Deprecated:  p.Deprecated,
	}

	if low := p.GoLow(); low != nil && low.IsReference() {
		param.IsRef = true
		param.Ref = low.GetReference()
	}

	if p.Schema != nil {
		param.Schema = t.transformSchemaProxy(p.Schema)
	}

	return param
}

func (t *transformer) transformRequestBody(rb *v3.RequestBody) *model.RequestBody {
	body := &model.RequestBody{
		Description: rb.Description,
		Required:    boolPtr(rb.Required),
	}

	if rb.Content != nil {
		for mediaType, content := range rb.Content.FromOldest() {
			mtc := model.MediaTypeContent{MediaType: mediaType}
			if content.Schema != nil {
				mtc.Schema = t.transformSchemaProxy(content.Schema)
			}
			body.Content = append(body.Content, mtc)
		}
	}

	return body
}

func (t *transformer) transformResponse(code string, resp *v3.Response) model.Response {
	response := model.Response{
		StatusCode:  code,
		Description: resp.Description,
	}

	if low := resp.GoLow(); low != nil && low.IsReference() {
		response.IsRef = true
	}

	if resp.Content != nil {
		for mediaType, content := range resp.Content.FromOldest() {
			mtc := model.MediaTypeContent{MediaType: mediaType}
			if content.Schema != nil {
				mtc.Schema = t.transformSchemaProxy(content.Schema)
			}
			response.Content = append(response.Content, mtc)
		}
	}

	return response
}

func (t *transformer) transformSchemaProxy(proxy *base.SchemaProxy) *model.Schema {
	if proxy == nil {
		return nil
	}

	if ref := proxy.GetReference(); ref != "" {
		return &model.Schema{Ref: ref}
	}

	// A proxy without a visible reference can still point at a
	// component schema once the parser has resolved it.
	if resolved, ok := t.componentSchemas[proxy.Schema()]; ok {
		return &model.Schema{Ref: resolved}
	}

	return t.transformSchema("", proxy.Schema())
}

func (t *transformer) transformSchema(name string, s *base.Schema) *model.Schema {
	if s == nil {
		return nil
	}

	schema := &model.Schema{
		Name:        name,
		Description: s.Description,
		Format:      s.Format,
	}

	if len(s.Type) > 0 {
		schema.Type = model.SchemaType(s.Type[0])
	}

	for _, e := range s.Enum {
		schema.Enum = append(schema.Enum, e.Value)
	}

	if s.Properties != nil {
		for propName, propProxy := range s.Properties.FromOldest() {
			propSchema := t.transformSchemaProxy(propProxy)
			if propSchema != nil && propSchema.Name == "" {
				propSchema.Name = propName
			}
			schema.Properties = append(schema.Properties, model.Property{
				Name:   propName,
				Schema: propSchema,
			})
		}
	}

	schema.Required = s.Required

	if s.Items != nil && s.Items.A != nil {
		schema.Items = t.transformSchemaProxy(s.Items.A)
	}

	return schema
}

func boolPtr(b *bool) bool {
	if b == nil {
		return false
	}
	return *b
}
