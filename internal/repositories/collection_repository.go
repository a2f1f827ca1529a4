package repositories

import (
	"context"
	"strings"

	"eduhub/internal/apperrors"
	"eduhub/internal/constants"
	"eduhub/pkg/mongodb"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CollectionRepository manages collections as a whole: the provisioning and
// seeding side of the service.
type CollectionRepository interface {
	ListNames(ctx context.Context) ([]string, error)
	Drop(ctx context.Context, name string) error
	CreateWithValidator(ctx context.Context, name string, validator bson.D) error
	EnsureIndexes(ctx context.Context, name string, fields []constants.IndexField) error
	InsertMany(ctx context.Context, name string, docs []interface{}) (int, error)
}

type collectionRepository struct {
	db *mongo.Database
}

func NewCollectionRepository(mongoClient *mongodb.MongoDBClient) CollectionRepository {
	return &collectionRepository{
		db: mongoClient.Database(),
	}
}

// ListNames returns user collections; system.* collections are left out.
func (r *collectionRepository) ListNames(ctx context.Context) ([]string, error) {
	names, err := r.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, apperrors.FromMongo("CollectionRepository.ListNames", err)
	}
	result := make([]string, 0, len(names))
	for _, name := range names {
		if strings.HasPrefix(name, "system.") {
			continue
		}
		result = append(result, name)
	}
	return result, nil
}

func (r *collectionRepository) Drop(ctx context.Context, name string) error {
	return apperrors.FromMongo("CollectionRepository.Drop", r.db.Collection(name).Drop(ctx))
}

func (r *collectionRepository) CreateWithValidator(ctx context.Context, name string, validator bson.D) error {
	opts := options.CreateCollection().SetValidator(validator)
	return apperrors.FromMongo("CollectionRepository.CreateWithValidator", r.db.CreateCollection(ctx, name, opts))
}

func (r *collectionRepository) EnsureIndexes(ctx context.Context, name string, fields []constants.IndexField) error {
	if len(fields) == 0 {
		return nil
	}
	models := make([]mongo.IndexModel, 0, len(fields))
	for _, f := range fields {
		models = append(models, mongo.IndexModel{
			Keys:    bson.D{{Key: f.Field, Value: 1}},
			Options: options.Index().SetName(f.Name),
		})
	}
	_, err := r.db.Collection(name).Indexes().CreateMany(ctx, models)
	return apperrors.FromMongo("CollectionRepository.EnsureIndexes", err)
}

// InsertMany bulk-inserts docs and returns how many were written.
func (r *collectionRepository) InsertMany(ctx context.Context, name string, docs []interface{}) (int, error) {
	if len(docs) == 0 {
		return 0, nil
	}
	result, err := r.db.Collection(name).InsertMany(ctx, docs)
	if err != nil {
		inserted := 0
		if result != nil {
			inserted = len(result.InsertedIDs)
		}
		return inserted, apperrors.FromMongo("CollectionRepository.InsertMany", err)
	}
	return len(result.InsertedIDs), nil
}
