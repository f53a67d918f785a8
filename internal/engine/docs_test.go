package engine

import (
	"testing"

	"github.com/kolah/wilbur/internal/model"
	"github.com/stretchr/testify/require"
)

func TestClientDocLines(t *testing.T) {
	doc := ClientDocFor(model.Info{
		Title:          "Petstore",
		Description:    "A sample pet store.",
		Version:        "1.0.7",
		TermsOfService: "https://example.com/terms",
		Contact:        &model.Contact{Email: "apiteam@example.com"},
		License:        &model.License{Name: "Apache 2.0", URL: "https://www.apache.org/licenses/LICENSE-2.0.html"},
	})

	lines := doc.Lines("PetstoreApi")
	require.Equal(t, []string{
		"API client for Petstore.",
		"",
		"A sample pet store.",
		"",
		"API version: 1.0.7",
		"Contact: apiteam@example.com",
		"License: Apache 2.0 (https://www.apache.org/licenses/LICENSE-2.0.html)",
		"Terms of service: https://example.com/terms",
	}, lines)
}

func TestClientDocLinesEmptyInfo(t *testing.T) {
	doc := ClientDocFor(model.Info{})
	lines := doc.Lines("MyApi")
	require.Equal(t, []string{"Generated API client MyApi."}, lines)
}

func TestMethodDocLines(t *testing.T) {
	doc := MethodDocFor(model.Operation{
		ID:          "getPetById",
		Method:      model.MethodGet,
		Path:        "/pets/{petId}",
		Summary:     "Find pet by ID",
		Description: "Returns a single pet",
	})

	require.Equal(t, []string{
		"Find pet by ID",
		"",
		"Returns a single pet",
		"",
		"GET /pets/{petId}",
		"Operation: getPetById",
	}, doc.Lines())
}

func TestMethodDocSkipsDuplicateDescription(t *testing.T) {
	doc := MethodDocFor(model.Operation{
		Method:      model.MethodDelete,
		Path:        "/pets/{petId}",
		Summary:     "Deletes a pet",
		Description: "Deletes a pet",
	})

	require.Equal(t, []string{
		"Deletes a pet",
		"",
		"DELETE /pets/{petId}",
	}, doc.Lines())
}
