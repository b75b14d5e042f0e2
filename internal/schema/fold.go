package schema

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// rootIdentifierField is excluded at the document root only. Nested
// fields named "_id" are regular fields and are kept.
const rootIdentifierField = "_id"

// foldDocument folds one sampled document into the accumulator. Later
// documents sharing a path overwrite the earlier node, so the recorded
// type for a path reflects whichever sampled document was processed last.
func foldDocument(props map[string]*Node, doc map[string]any) {
	for name, value := range doc {
		if name == rootIdentifierField {
			continue
		}
		foldValue(props, name, value)
	}
}

// foldValue records the schema node for one field path and recurses into
// objects and array elements. Paths are dotted concatenations of the
// traversal path from the document root, the same form MongoDB queries
// use to address nested fields.
func foldValue(props map[string]*Node, path string, value any) {
	kind := valueKind(value)
	props[path] = fieldNode(kind)

	switch kind {
	case TypeObject:
		if fields, ok := asDocument(value); ok {
			for name, nested := range fields {
				foldValue(props, path+"."+name, nested)
			}
		}
	case TypeArray:
		// Sibling elements contribute to, and overwrite, the same scoped
		// path, left to right.
		for _, element := range asArray(value) {
			if fields, ok := asDocument(element); ok {
				for name, nested := range fields {
					foldValue(props, path+"."+name, nested)
				}
			}
		}
	}
}

// valueKind maps a decoded BSON value onto a JSON Schema type name.
func valueKind(value any) string {
	switch value.(type) {
	case nil:
		return TypeNull
	case bool:
		return TypeBoolean
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, bson.Decimal128:
		return TypeNumber
	case string:
		return TypeString
	case map[string]any, bson.M, bson.D:
		return TypeObject
	case []any, bson.A:
		return TypeArray
	default:
		// Remaining BSON scalars (ObjectID, DateTime, Binary, timestamps,
		// regular expressions) are addressed as strings in queries.
		return TypeString
	}
}

// asDocument extracts the fields of a decoded document value. The driver
// hands back bson.D for embedded documents and bson.M or a plain map at
// the top level depending on the decode target.
func asDocument(value any) (map[string]any, bool) {
	switch doc := value.(type) {
	case map[string]any:
		return doc, true
	case bson.M:
		return doc, true
	case bson.D:
		fields := make(map[string]any, len(doc))
		for _, elem := range doc {
			fields[elem.Key] = elem.Value
		}
		return fields, true
	}
	return nil, false
}

func asArray(value any) []any {
	switch arr := value.(type) {
	case []any:
		return arr
	case bson.A:
		return arr
	}
	return nil
}
