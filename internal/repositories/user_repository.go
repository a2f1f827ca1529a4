package repositories

import (
	"context"

	"eduhub/internal/apperrors"
	"eduhub/internal/constants"
	"eduhub/internal/models"
	"eduhub/pkg/mongodb"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindActiveStudents(ctx context.Context) ([]*models.User, error)
	FindByUserIDs(ctx context.Context, userIDs []string) ([]*models.User, error)
}

type userRepository struct {
	userCollection *mongo.Collection
}

func NewUserRepository(mongoClient *mongodb.MongoDBClient) UserRepository {
	return &userRepository{
		userCollection: mongoClient.GetCollectionByName(constants.CollectionUsers),
	}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID.IsZero() {
		user.Base = models.NewBase()
	}
	_, err := r.userCollection.InsertOne(ctx, user)
	return apperrors.FromMongo("UserRepository.Create", err)
}

func (r *userRepository) FindActiveStudents(ctx context.Context) ([]*models.User, error) {
	filter := bson.M{"role": constants.RoleStudent, "isActive": true}
	cursor, err := r.userCollection.Find(ctx, filter)
	if err != nil {
		return nil, apperrors.FromMongo("UserRepository.FindActiveStudents", err)
	}
	users, err := decodeAll[models.User](ctx, cursor)
	return users, apperrors.FromMongo("UserRepository.FindActiveStudents", err)
}

func (r *userRepository) FindByUserIDs(ctx context.Context, userIDs []string) ([]*models.User, error) {
	if len(userIDs) == 0 {
		return []*models.User{}, nil
	}
	cursor, err := r.userCollection.Find(ctx, bson.M{"userId": bson.M{"$in": userIDs}})
	if err != nil {
		return nil, apperrors.FromMongo("UserRepository.FindByUserIDs", err)
	}
	users, err := decodeAll[models.User](ctx, cursor)
	return users, apperrors.FromMongo("UserRepository.FindByUserIDs", err)
}
