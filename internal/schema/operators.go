package schema

// Node is one node of a synthesized JSON Schema. Type holds either a
// single type name or a list of type names.
type Node struct {
	Ref         string           `json:"$ref,omitempty"`
	Type        any              `json:"type,omitempty"`
	Description string           `json:"description,omitempty"`
	Properties  map[string]*Node `json:"properties,omitempty"`
	Items       *Node            `json:"items,omitempty"`
	MinItems    int              `json:"minItems,omitempty"`
	MaxItems    int              `json:"maxItems,omitempty"`
	Default     any              `json:"default,omitempty"`
}

// JSON Schema type names used for inferred field types.
const (
	TypeString  = "string"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
	TypeNull    = "null"
	TypeObject  = "object"
	TypeArray   = "array"
)

var fieldKinds = []string{TypeString, TypeNumber, TypeBoolean, TypeNull, TypeObject, TypeArray}

// operatorKind selects the structural shape of an operator's schema node.
type operatorKind int

const (
	// kindFieldTyped operators take an operand of the field's inferred type
	kindFieldTyped operatorKind = iota
	// kindArray operators take an array operand
	kindArray
	// kindBoolean operators take a boolean operand
	kindBoolean
	// kindString operators take a string operand
	kindString
	// kindNumber operators take a numeric operand
	kindNumber
	// kindModulo is the two-element [divisor, remainder] form of $mod
	kindModulo
	// kindGeometry operators take a GeoJSON geometry reference
	kindGeometry
)

type operatorSpec struct {
	name        string
	description string
	kind        operatorKind
	arrayOnly   bool
}

// expressionOperators is the static catalog of type-scoped query operators.
// The logical/global operators attached at the document root live in
// globalOperators and logicalOperators below.
var expressionOperators = []operatorSpec{
	{"$eq", "Matches values that are equal to a specified value.", kindFieldTyped, false},
	{"$gt", "Matches values that are greater than a specified value.", kindFieldTyped, false},
	{"$gte", "Matches values that are greater than or equal to a specified value.", kindFieldTyped, false},
	{"$lt", "Matches values that are less than a specified value.", kindFieldTyped, false},
	{"$lte", "Matches values that are less than or equal to a specified value.", kindFieldTyped, false},
	{"$ne", "Matches all values that are not equal to a specified value.", kindFieldTyped, false},
	{"$in", "Matches any of the values specified in an array.", kindArray, false},
	{"$nin", "Matches none of the values specified in an array.", kindArray, false},
	{"$exists", "Matches documents that have the specified field.", kindBoolean, false},
	{"$type", "Selects documents if a field is of the specified type.", kindString, false},
	{"$mod", "Performs a modulo operation on the value of a field and selects documents with a specified result.", kindModulo, false},
	{"$regex", "Selects documents where values match a specified regular expression.", kindString, false},
	{"$geoWithin", "Selects geometries within a bounding GeoJSON geometry.", kindGeometry, false},
	{"$geoIntersects", "Selects geometries that intersect with a GeoJSON geometry.", kindGeometry, false},
	{"$near", "Returns geospatial objects in proximity to a point.", kindGeometry, false},
	{"$nearSphere", "Returns geospatial objects in proximity to a point on a sphere.", kindGeometry, false},
	{"$bitsAllSet", "Matches numeric or binary values in which a set of bit positions all have a value of 1.", kindArray, false},
	{"$bitsAnySet", "Matches numeric or binary values in which any bit from a set of bit positions has a value of 1.", kindArray, false},
	{"$bitsAllClear", "Matches numeric or binary values in which a set of bit positions all have a value of 0.", kindArray, false},
	{"$bitsAnyClear", "Matches numeric or binary values in which any bit from a set of bit positions has a value of 0.", kindArray, false},
	{"$all", "Matches arrays that contain all elements specified in the query.", kindArray, true},
	{"$size", "Selects documents if the array field is a specified size.", kindNumber, true},
}

// node builds the schema node for one operator applied to a field of the
// given inferred type.
func (s operatorSpec) node(fieldType string) *Node {
	switch s.kind {
	case kindArray:
		return &Node{Type: TypeArray, Description: s.description}
	case kindBoolean:
		return &Node{Type: TypeBoolean, Description: s.description}
	case kindString:
		return &Node{Type: TypeString, Description: s.description}
	case kindNumber:
		return &Node{Type: TypeNumber, Description: s.description}
	case kindModulo:
		return &Node{
			Type:        TypeArray,
			Description: s.description,
			MinItems:    2,
			MaxItems:    2,
			Default:     []int{2, 0},
		}
	case kindGeometry:
		return &Node{
			Type:        TypeObject,
			Description: s.description,
			Properties: map[string]*Node{
				"$geometry": {
					Type: TypeObject,
					Properties: map[string]*Node{
						"type":        {Type: TypeString, Description: "The GeoJSON geometry type."},
						"coordinates": {Type: TypeArray},
					},
				},
			},
		}
	default:
		return &Node{Type: fieldType, Description: s.description}
	}
}

// typedOperators holds one operator property map per inferred field type,
// built once at process start. The maps are shared between every field of
// the same type and must never be mutated after construction.
var typedOperators = buildTypedOperators()

func buildTypedOperators() map[string]map[string]*Node {
	out := make(map[string]map[string]*Node, len(fieldKinds))
	for _, fieldType := range fieldKinds {
		inner := make(map[string]*Node)
		for _, op := range expressionOperators {
			if op.arrayOnly && fieldType != TypeArray {
				continue
			}
			inner[op.name] = op.node(fieldType)
		}

		// $not and $elemMatch are structural wrappers, not type-scoped:
		// every field accepts them regardless of its inferred type.
		props := make(map[string]*Node, len(inner)+2)
		for name, node := range inner {
			props[name] = node
		}
		props["$not"] = &Node{
			Type:        TypeObject,
			Description: "Inverts the effect of a query expression.",
			Properties:  inner,
		}
		props["$elemMatch"] = &Node{
			Type:        TypeObject,
			Description: "Selects documents if an element in the array field matches all the specified conditions.",
		}

		out[fieldType] = props
	}
	return out
}

// fieldNode builds the property schema for a field of the given inferred
// type. The declared type always includes "object" so the field also
// accepts an operator-expression document like {"$gt": 5}.
func fieldNode(fieldType string) *Node {
	return &Node{
		Type:       []string{fieldType, TypeObject},
		Properties: typedOperators[fieldType],
	}
}

// globalOperators are attached once at the document root of every
// synthesized schema.
var globalOperators = map[string]*Node{
	"$text": {
		Type:        TypeObject,
		Description: "Performs a text search on the content of fields indexed with a text index.",
		Properties: map[string]*Node{
			"$search":             {Type: TypeString, Description: "The string to search for."},
			"$language":           {Type: TypeString, Description: "The language that determines the list of stop words for the search."},
			"$caseSensitive":      {Type: TypeBoolean, Description: "Enables case sensitive search."},
			"$diacriticSensitive": {Type: TypeBoolean, Description: "Enables diacritic sensitive search."},
		},
	},
	"$where": {
		Type:        TypeString,
		Description: "Matches documents that satisfy a JavaScript expression.",
	},
	"$comment": {
		Type:        TypeString,
		Description: "Adds a comment to a query predicate.",
	},
}

// logicalOperators builds the $or/$and/$nor nodes for one schema. Each is
// an array of self-references so nested boolean clauses validate against
// the same collection schema.
func logicalOperators(uri string) map[string]*Node {
	return map[string]*Node{
		"$or": {
			Type:        TypeArray,
			Description: "Joins query clauses with a logical OR; returns documents that match the conditions of either clause.",
			Items:       &Node{Ref: uri},
		},
		"$and": {
			Type:        TypeArray,
			Description: "Joins query clauses with a logical AND; returns documents that match the conditions of all clauses.",
			Items:       &Node{Ref: uri},
		},
		"$nor": {
			Type:        TypeArray,
			Description: "Joins query clauses with a logical NOR; returns documents that fail to match all clauses.",
			Items:       &Node{Ref: uri},
		},
	}
}
