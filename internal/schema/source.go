package schema

import "context"

// DocumentSource is the read-only view of a document store that the
// synthesizer needs. *mongodb.Source implements it; tests supply fakes.
type DocumentSource interface {
	// ListCollectionNames returns the names of all collections in the
	// current database, in the store's native listing order.
	ListCollectionNames(ctx context.Context) ([]string, error)

	// OpenCursor opens a cursor over all documents of the named collection.
	OpenCursor(ctx context.Context, collection string) (Cursor, error)
}

// Cursor is a paginated handle over a collection's documents. The method
// set mirrors mongo.Cursor so the driver cursor satisfies it directly.
type Cursor interface {
	// Next advances the cursor, returning false on exhaustion or error.
	Next(ctx context.Context) bool

	// Decode unmarshals the current document. Must not be called after
	// Next returns false.
	Decode(v any) error

	// Err returns the error that terminated iteration, if any.
	Err() error

	Close(ctx context.Context) error
}

// readBatch drains up to limit documents from the cursor. It stops early
// when the cursor is exhausted and never waits for more than the source
// can produce.
func readBatch(ctx context.Context, cursor Cursor, limit int) ([]map[string]any, error) {
	docs := make([]map[string]any, 0, limit)
	for len(docs) < limit && cursor.Next(ctx) {
		var doc map[string]any
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return docs, nil
}
