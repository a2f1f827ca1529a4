package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// decodeAll drains and closes a cursor, returning a non-nil slice.
func decodeAll[T any](ctx context.Context, cursor *mongo.Cursor) ([]*T, error) {
	results := make([]*T, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	if results == nil {
		results = make([]*T, 0)
	}
	return results, nil
}
