package engine

import "github.com/kolah/wilbur/internal/model"

// ResolveResponse selects the success response's type and content kind.
// Only the 200 status code is consulted; selection order is
// application/json, then text/plain variants, then none. A response
// object that is itself a reference is treated as untyped.
func ResolveResponse(responses []model.Response) (*TypeDescriptor, ContentKind) {
	var ok *model.Response
	for i := range responses {
		if responses[i].StatusCode == "200" {
			ok = &responses[i]
			break
		}
	}
	if ok == nil || ok.IsRef {
		return nil, ContentNone
	}

	if schema, found := contentSchema(ok.Content, "application/json"); found {
		t := Resolve(schema)
		return &t, ContentJSON
	}

	for _, mediaType := range []string{"text/plain; charset=utf-8", "text/plain"} {
		if _, found := contentSchema(ok.Content, mediaType); found {
			t := TypeDescriptor{Kind: KindString}
			return &t, ContentText
		}
	}

	return nil, ContentNone
}

func contentSchema(content []model.MediaTypeContent, mediaType string) (*model.Schema, bool) {
	for _, c := range content {
		if c.MediaType == mediaType {
			return c.Schema, true
		}
	}
	return nil, false
}
