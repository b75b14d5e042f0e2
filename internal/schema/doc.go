// Package schema synthesizes JSON Schemas for MongoDB query documents.
//
// Given read access to a collection, the synthesizer samples a bounded
// number of documents, infers the queryable shape of each field, and
// overlays the static MongoDB query-operator vocabulary so that an editing
// surface validating a query document can offer both literal values and
// operator expressions for every field. Schemas are addressed by URI
// (mongo://query/<collection>) and resolved lazily.
package schema
