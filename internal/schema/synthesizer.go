package schema

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
)

const (
	// SchemaURIPrefix addresses per-collection query schemas.
	SchemaURIPrefix = "mongo://query/"

	// QueryDocumentURI is the generic query document URI. It is matched by
	// registrations but never resolved by this synthesizer.
	QueryDocumentURI = "mongo://query.json"

	// SampleSize caps the number of documents read per resolution.
	SampleSize = 10
)

// Registration pairs a collection's schema URI with the file match
// pattern the schema applies to. The schema-consuming surface contributes
// one registration per collection to its JSON validation service.
type Registration struct {
	URI       string   `json:"uri"`
	FileMatch []string `json:"fileMatch"`
}

// Synthesizer produces query schemas for the collections of a registered
// document source. The zero value is not usable; call New.
type Synthesizer struct {
	mu     sync.RWMutex
	source DocumentSource
}

// New creates a new schema synthesizer with no data source bound.
func New() *Synthesizer {
	return &Synthesizer{}
}

// RegisterCollections enumerates the source's collections and returns one
// registration per collection, in the source's native listing order. The
// source is recorded for later resolution; re-registration replaces any
// previously bound source.
func (s *Synthesizer) RegisterCollections(ctx context.Context, source DocumentSource) ([]Registration, error) {
	names, err := source.ListCollectionNames(ctx)
	if err != nil {
		return nil, &DataSourceUnavailableError{Cause: err}
	}

	s.mu.Lock()
	s.source = source
	s.mu.Unlock()

	registrations := make([]Registration, 0, len(names))
	for _, name := range names {
		registrations = append(registrations, Registration{
			URI:       CollectionSchemaURI(name),
			FileMatch: []string{QueryDocumentURI},
		})
	}
	return registrations, nil
}

// ResolveSchema resolves a schema URI against the bound source. A URI this
// synthesizer does not own resolves to ("", nil) so callers can chain
// resolvers. Resolution of an unknown collection fails with a
// ResolutionError.
func (s *Synthesizer) ResolveSchema(ctx context.Context, uri string) (string, error) {
	collection, ok := CollectionFromURI(uri)
	if !ok {
		return "", nil
	}

	s.mu.RLock()
	source := s.source
	s.mu.RUnlock()
	if source == nil {
		return "", ErrNoDataSource
	}

	return s.ResolveCollectionSchema(ctx, source, collection)
}

// ResolveCollectionSchema samples up to SampleSize documents from the
// named collection and folds them into a single query schema. An empty
// collection still yields a valid schema carrying the full static
// operator catalog.
func (s *Synthesizer) ResolveCollectionSchema(ctx context.Context, source DocumentSource, collection string) (string, error) {
	cursor, err := source.OpenCursor(ctx, collection)
	if err != nil {
		return "", &ResolutionError{Collection: collection, Cause: err}
	}
	defer cursor.Close(ctx)

	docs, err := readBatch(ctx, cursor, SampleSize)
	if err != nil {
		return "", &ResolutionError{Collection: collection, Cause: err}
	}

	root := &Node{Type: TypeObject, Properties: make(map[string]*Node)}
	for _, doc := range docs {
		foldDocument(root.Properties, doc)
	}

	// Statics overlay last: a sampled field that collides with an operator
	// name loses to the catalog.
	uri := CollectionSchemaURI(collection)
	for name, node := range globalOperators {
		root.Properties[name] = node
	}
	for name, node := range logicalOperators(uri) {
		root.Properties[name] = node
	}

	out, err := json.Marshal(root)
	if err != nil {
		return "", &ResolutionError{Collection: collection, Cause: err}
	}
	return string(out), nil
}

// CollectionSchemaURI returns the schema URI for a collection name.
func CollectionSchemaURI(collection string) string {
	return SchemaURIPrefix + collection
}

// CollectionFromURI extracts the collection name from a schema URI,
// reporting whether the URI is a per-collection schema URI owned by this
// synthesizer.
func CollectionFromURI(uri string) (string, bool) {
	name, ok := strings.CutPrefix(uri, SchemaURIPrefix)
	if !ok || name == "" {
		return "", false
	}
	return name, true
}
