package engine

import (
	"testing"

	"github.com/kolah/wilbur/internal/model"
	"github.com/stretchr/testify/require"
)

func TestResolvePrimitives(t *testing.T) {
	tests := []struct {
		name   string
		schema *model.Schema
		kind   TypeKind
	}{
		{"string", &model.Schema{Type: model.TypeString}, KindString},
		{"integer default", &model.Schema{Type: model.TypeInteger}, KindInt32},
		{"integer int32", &model.Schema{Type: model.TypeInteger, Format: "int32"}, KindInt32},
		{"integer int64", &model.Schema{Type: model.TypeInteger, Format: "int64"}, KindInt64},
		{"number default", &model.Schema{Type: model.TypeNumber}, KindFloat32},
		{"number float", &model.Schema{Type: model.TypeNumber, Format: "float"}, KindFloat32},
		{"number double", &model.Schema{Type: model.TypeNumber, Format: "double"}, KindFloat64},
		{"boolean", &model.Schema{Type: model.TypeBoolean}, KindBool},
		{"nil schema", nil, KindAny},
		{"unknown type", &model.Schema{Type: "file"}, KindAny},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.kind, Resolve(tt.schema).Kind)
		})
	}
}

func TestResolveArray(t *testing.T) {
	got := Resolve(&model.Schema{
		Type:  model.TypeArray,
		Items: &model.Schema{Type: model.TypeString},
	})
	require.Equal(t, KindArray, got.Kind)
	require.NotNil(t, got.Elem)
	require.Equal(t, KindString, got.Elem.Kind)
}

func TestResolveArrayWithoutItems(t *testing.T) {
	got := Resolve(&model.Schema{Type: model.TypeArray})
	require.Equal(t, KindArray, got.Kind)
	require.Equal(t, KindAny, got.Elem.Kind)
}

func TestResolveInlineObject(t *testing.T) {
	got := Resolve(&model.Schema{
		Type:       model.TypeObject,
		Properties: []model.Property{{Name: "id", Schema: &model.Schema{Type: model.TypeInteger}}},
	})
	require.Equal(t, KindMap, got.Kind)
	require.Equal(t, KindAny, got.Elem.Kind)
}

func TestResolveReference(t *testing.T) {
	got := Resolve(&model.Schema{Ref: "#/components/schemas/Pet"})
	require.Equal(t, KindNamed, got.Kind)
	require.Equal(t, "Pet", got.Name)
}

func TestResolveForeignReferenceDegrades(t *testing.T) {
	got := Resolve(&model.Schema{Ref: "#/components/responses/NotFound"})
	require.Equal(t, KindAny, got.Kind)
}

func TestResolveEnumNeedsOwner(t *testing.T) {
	schema := &model.Schema{Type: model.TypeString, Enum: []string{"placed", "shipped"}}

	anonymous := Resolve(schema)
	require.Equal(t, KindString, anonymous.Kind)

	named := ResolveNamed("orderStatus", schema)
	require.Equal(t, KindEnum, named.Kind)
	require.Equal(t, "OrderStatus", named.Name)
	require.Equal(t, []string{"placed", "shipped"}, named.EnumValues)
}
