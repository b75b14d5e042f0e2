package mongodb

import (
	"context"

	"github.com/querylens/querylens/internal/schema"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Source implements schema.DocumentSource over a MongoDB database. The
// synthesizer only ever reads through it; no write operations are issued.
type Source struct {
	db *mongo.Database
}

// NewSource creates a document source backed by the given database.
func NewSource(db *mongo.Database) *Source {
	return &Source{db: db}
}

// ListCollectionNames returns the names of all collections in the
// database, in the server's native listing order.
func (s *Source) ListCollectionNames(ctx context.Context) ([]string, error) {
	return s.db.ListCollectionNames(ctx, bson.D{})
}

// OpenCursor opens an unfiltered cursor over the named collection. The
// driver cursor satisfies schema.Cursor directly.
func (s *Source) OpenCursor(ctx context.Context, collection string) (schema.Cursor, error) {
	return s.db.Collection(collection).Find(ctx, bson.D{})
}
