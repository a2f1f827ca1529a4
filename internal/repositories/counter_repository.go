package repositories

import (
	"context"

	"eduhub/internal/apperrors"
	"eduhub/internal/constants"
	"eduhub/pkg/mongodb"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CounterRepository interface {
	// Next atomically advances the named sequence and returns the new value.
	// The result is always greater than floor.
	Next(ctx context.Context, name string, floor int64) (int64, error)
}

type counterRepository struct {
	counterCollection *mongo.Collection
}

type counter struct {
	Name string `bson:"_id"`
	Seq  int64  `bson:"seq"`
}

func NewCounterRepository(mongoClient *mongodb.MongoDBClient) CounterRepository {
	return &counterRepository{
		counterCollection: mongoClient.GetCollectionByName(constants.CollectionCounters),
	}
}

// Next runs a single upserting findAndModify with a pipeline update:
// seq = max(seq ?? 0, floor) + 1. Concurrent callers never see the same value.
func (r *counterRepository) Next(ctx context.Context, name string, floor int64) (int64, error) {
	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.D{
			{Key: "seq", Value: bson.D{
				{Key: "$add", Value: bson.A{
					bson.D{{Key: "$max", Value: bson.A{
						bson.D{{Key: "$ifNull", Value: bson.A{"$seq", int64(0)}}},
						floor,
					}}},
					int64(1),
				}},
			}},
		}}},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var c counter
	err := r.counterCollection.FindOneAndUpdate(ctx, bson.M{"_id": name}, update, opts).Decode(&c)
	if mongo.IsDuplicateKeyError(err) {
		// Two first-time upserts raced on the same _id; the loser retries as an update.
		err = r.counterCollection.FindOneAndUpdate(ctx, bson.M{"_id": name}, update, opts).Decode(&c)
	}
	if err != nil {
		return 0, apperrors.FromMongo("CounterRepository.Next", err)
	}
	return c.Seq, nil
}
