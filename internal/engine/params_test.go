package engine

import (
	"testing"

	"github.com/kolah/wilbur/internal/model"
	"github.com/kolah/wilbur/internal/naming"
	"github.com/stretchr/testify/require"
)

func TestClassifyParameter(t *testing.T) {
	pd, err := ClassifyParameter(model.Parameter{
		Name:   "petId",
		In:     model.LocationQuery,
		Schema: &model.Schema{Type: model.TypeInteger, Format: "int64"},
	}, naming.NewScope())
	require.NoError(t, err)
	require.Equal(t, "petId", pd.SourceName)
	require.Equal(t, "pet_id", pd.Ident)
	require.Equal(t, KindInt64, pd.Type.Kind)
	require.False(t, pd.Required)
	require.False(t, pd.IsArray)
}

func TestClassifyParameterPathIsAlwaysRequired(t *testing.T) {
	pd, err := ClassifyParameter(model.Parameter{
		Name:     "petId",
		In:       model.LocationPath,
		Required: false,
		Schema:   &model.Schema{Type: model.TypeInteger, Format: "int64"},
	}, naming.NewScope())
	require.NoError(t, err)
	require.True(t, pd.Required)
}

func TestClassifyParameterArray(t *testing.T) {
	pd, err := ClassifyParameter(model.Parameter{
		Name: "tags",
		In:   model.LocationQuery,
		Schema: &model.Schema{
			Type:  model.TypeArray,
			Items: &model.Schema{Type: model.TypeString},
		},
	}, naming.NewScope())
	require.NoError(t, err)
	require.True(t, pd.IsArray)
}

func TestClassifyParameterReservedName(t *testing.T) {
	pd, err := ClassifyParameter(model.Parameter{
		Name:   "type",
		In:     model.LocationQuery,
		Schema: &model.Schema{Type: model.TypeString},
	}, naming.NewScope())
	require.NoError(t, err)
	require.Equal(t, "type", pd.SourceName)
	require.Equal(t, "type_", pd.Ident)
}

func TestClassifyParameterRejectsReference(t *testing.T) {
	_, err := ClassifyParameter(model.Parameter{
		IsRef: true,
		Ref:   "#/components/parameters/limitParam",
	}, naming.NewScope())
	require.Error(t, err)
	require.Contains(t, err.Error(), "parameter references not supported")
}

func TestClassifyAllSharesOneScope(t *testing.T) {
	params, err := classifyAll([]model.Parameter{
		{Name: "type", In: model.LocationQuery, Schema: &model.Schema{Type: model.TypeString}},
		{Name: "type_", In: model.LocationQuery, Schema: &model.Schema{Type: model.TypeString}},
	})
	require.NoError(t, err)
	require.Len(t, params, 2)
	require.Equal(t, "type_", params[0].Ident)
	require.Equal(t, "type__", params[1].Ident)
}

func TestMethodSurfaceExcludesHeaderAndCookie(t *testing.T) {
	params, err := classifyAll([]model.Parameter{
		{Name: "petId", In: model.LocationPath, Schema: &model.Schema{Type: model.TypeInteger}},
		{Name: "api_key", In: model.LocationHeader, Schema: &model.Schema{Type: model.TypeString}},
		{Name: "session", In: model.LocationCookie, Schema: &model.Schema{Type: model.TypeString}},
		{Name: "verbose", In: model.LocationQuery, Schema: &model.Schema{Type: model.TypeBoolean}},
	})
	require.NoError(t, err)

	surface := methodSurface(params)
	require.Len(t, surface, 2)
	require.Equal(t, "petId", surface[0].SourceName)
	require.Equal(t, "verbose", surface[1].SourceName)
}
