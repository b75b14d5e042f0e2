package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestFoldDocumentRootIdentifierExclusion(t *testing.T) {
	props := make(map[string]*Node)
	foldDocument(props, map[string]any{
		"_id": 1,
		"profile": map[string]any{
			"_id": 2,
		},
	})

	// Only the document root's _id is synthetic; a nested field that
	// happens to be named _id is a regular field.
	assert.NotContains(t, props, "_id")
	assert.Contains(t, props, "profile")
	assert.Contains(t, props, "profile._id")
	assert.Equal(t, []string{TypeNumber, TypeObject}, props["profile._id"].Type)
}

func TestFoldDocumentArrayFlattening(t *testing.T) {
	props := make(map[string]*Node)
	foldDocument(props, map[string]any{
		"tags": []any{
			map[string]any{"x": 1},
			map[string]any{"x": "s"},
		},
	})

	require.Contains(t, props, "tags")
	require.Contains(t, props, "tags.x")

	assert.Equal(t, []string{TypeArray, TypeObject}, props["tags"].Type)

	// Sibling elements overwrite the same path left to right, so the
	// recorded type is the last element's, not a union.
	assert.Equal(t, []string{TypeString, TypeObject}, props["tags.x"].Type)
}

func TestFoldDocumentNestedPaths(t *testing.T) {
	props := make(map[string]*Node)
	foldDocument(props, map[string]any{
		"address": map[string]any{
			"city": "Oslo",
			"geo": map[string]any{
				"lat": 59.9,
				"lng": 10.7,
			},
		},
	})

	assert.Equal(t, []string{TypeObject, TypeObject}, props["address"].Type)
	assert.Equal(t, []string{TypeString, TypeObject}, props["address.city"].Type)
	assert.Equal(t, []string{TypeNumber, TypeObject}, props["address.geo.lat"].Type)
	assert.Equal(t, []string{TypeNumber, TypeObject}, props["address.geo.lng"].Type)
}

func TestFoldDocumentOverwriteAcrossSamples(t *testing.T) {
	props := make(map[string]*Node)
	foldDocument(props, map[string]any{"age": 30})
	foldDocument(props, map[string]any{"age": "thirty"})

	// Later samples overwrite earlier ones for the same path.
	assert.Equal(t, []string{TypeString, TypeObject}, props["age"].Type)
}

func TestFoldDocumentTypeIsAlwaysTypeOrObject(t *testing.T) {
	props := make(map[string]*Node)
	foldDocument(props, map[string]any{
		"name":   "Bob",
		"age":    30,
		"active": true,
		"note":   nil,
		"tags":   []any{"x"},
		"meta":   map[string]any{"k": "v"},
	})

	for path, node := range props {
		types, ok := node.Type.([]string)
		require.Truef(t, ok, "property %q: type should be a string list", path)
		require.Lenf(t, types, 2, "property %q", path)
		assert.Equalf(t, TypeObject, types[1], "property %q", path)
	}
}

func TestFoldDocumentBSONShapes(t *testing.T) {
	// Embedded documents come back from the driver as bson.D, arrays as
	// bson.A; both must traverse the same way as plain maps and slices.
	props := make(map[string]*Node)
	foldDocument(props, map[string]any{
		"address": bson.D{{Key: "city", Value: "Oslo"}},
		"scores":  bson.A{bson.D{{Key: "value", Value: 10}}},
		"labels":  bson.M{"env": "prod"},
	})

	assert.Equal(t, []string{TypeObject, TypeObject}, props["address"].Type)
	assert.Equal(t, []string{TypeString, TypeObject}, props["address.city"].Type)
	assert.Equal(t, []string{TypeNumber, TypeObject}, props["scores.value"].Type)
	assert.Equal(t, []string{TypeString, TypeObject}, props["labels.env"].Type)
}

func TestValueKind(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{"nil", nil, TypeNull},
		{"bool", true, TypeBoolean},
		{"int", 7, TypeNumber},
		{"int32", int32(7), TypeNumber},
		{"int64", int64(7), TypeNumber},
		{"float64", 7.5, TypeNumber},
		{"decimal128", bson.Decimal128{}, TypeNumber},
		{"string", "s", TypeString},
		{"map", map[string]any{}, TypeObject},
		{"bson.M", bson.M{}, TypeObject},
		{"bson.D", bson.D{}, TypeObject},
		{"slice", []any{}, TypeArray},
		{"bson.A", bson.A{}, TypeArray},
		{"object id", bson.NewObjectID(), TypeString},
		{"datetime", bson.DateTime(0), TypeString},
		{"binary", bson.Binary{Data: []byte("x")}, TypeString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, valueKind(tt.value))
		})
	}
}
