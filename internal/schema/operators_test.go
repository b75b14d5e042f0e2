package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseOperatorNames = []string{
	"$eq", "$gt", "$gte", "$lt", "$lte", "$ne",
	"$in", "$nin",
	"$exists", "$type", "$mod", "$regex",
	"$geoWithin", "$geoIntersects", "$near", "$nearSphere",
	"$bitsAllSet", "$bitsAnySet", "$bitsAllClear", "$bitsAnyClear",
}

func TestTypedOperatorsCompleteness(t *testing.T) {
	for _, fieldType := range fieldKinds {
		t.Run(fieldType, func(t *testing.T) {
			props := typedOperators[fieldType]
			require.NotNil(t, props)

			for _, name := range baseOperatorNames {
				assert.Contains(t, props, name)
			}
			assert.Contains(t, props, "$not")
			assert.Contains(t, props, "$elemMatch")
		})
	}
}

func TestArrayOnlyOperators(t *testing.T) {
	assert.Contains(t, typedOperators[TypeArray], "$all")
	assert.Contains(t, typedOperators[TypeArray], "$size")

	for _, fieldType := range []string{TypeString, TypeNumber, TypeBoolean, TypeNull, TypeObject} {
		assert.NotContains(t, typedOperators[fieldType], "$all", "field type %s", fieldType)
		assert.NotContains(t, typedOperators[fieldType], "$size", "field type %s", fieldType)
	}
}

func TestComparisonOperatorsUseFieldType(t *testing.T) {
	for _, name := range []string{"$eq", "$gt", "$gte", "$lt", "$lte", "$ne"} {
		assert.Equal(t, TypeNumber, typedOperators[TypeNumber][name].Type, "operator %s", name)
		assert.Equal(t, TypeString, typedOperators[TypeString][name].Type, "operator %s", name)
	}
}

func TestModuloOperatorShape(t *testing.T) {
	mod := typedOperators[TypeNumber]["$mod"]
	require.NotNil(t, mod)

	assert.Equal(t, TypeArray, mod.Type)
	assert.Equal(t, 2, mod.MinItems)
	assert.Equal(t, 2, mod.MaxItems)
	assert.Equal(t, []int{2, 0}, mod.Default)
}

func TestGeospatialOperatorShape(t *testing.T) {
	for _, name := range []string{"$geoWithin", "$geoIntersects", "$near", "$nearSphere"} {
		node := typedOperators[TypeObject][name]
		require.NotNil(t, node, "operator %s", name)

		geometry := node.Properties["$geometry"]
		require.NotNil(t, geometry, "operator %s", name)
		assert.Contains(t, geometry.Properties, "type")
		assert.Contains(t, geometry.Properties, "coordinates")
	}
}

func TestNotWrapperCarriesOperatorSet(t *testing.T) {
	not := typedOperators[TypeString]["$not"]
	require.NotNil(t, not)
	assert.Equal(t, TypeObject, not.Type)

	// $not carries the inner operator set, not the wrappers themselves.
	assert.Contains(t, not.Properties, "$eq")
	assert.Contains(t, not.Properties, "$regex")
	assert.NotContains(t, not.Properties, "$not")
	assert.NotContains(t, not.Properties, "$elemMatch")
}

func TestFieldNodeDeclaresTypeOrObject(t *testing.T) {
	for _, fieldType := range fieldKinds {
		node := fieldNode(fieldType)
		assert.Equal(t, []string{fieldType, TypeObject}, node.Type)
		assert.Equal(t, typedOperators[fieldType], node.Properties)
	}
}

func TestGlobalOperators(t *testing.T) {
	require.Contains(t, globalOperators, "$text")
	require.Contains(t, globalOperators, "$where")
	require.Contains(t, globalOperators, "$comment")

	text := globalOperators["$text"]
	assert.Contains(t, text.Properties, "$search")
	assert.Contains(t, text.Properties, "$language")
	assert.Contains(t, text.Properties, "$caseSensitive")
	assert.Contains(t, text.Properties, "$diacriticSensitive")

	assert.Equal(t, TypeString, globalOperators["$where"].Type)
	assert.Equal(t, TypeString, globalOperators["$comment"].Type)
}

func TestLogicalOperatorsSelfReference(t *testing.T) {
	uri := "mongo://query/users"
	logical := logicalOperators(uri)

	for _, name := range []string{"$or", "$and", "$nor"} {
		node := logical[name]
		require.NotNil(t, node, "operator %s", name)

		assert.Equal(t, TypeArray, node.Type)
		require.NotNil(t, node.Items)
		assert.Equal(t, uri, node.Items.Ref)
	}
}
