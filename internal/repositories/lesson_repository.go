package repositories

import (
	"context"

	"eduhub/internal/apperrors"
	"eduhub/internal/constants"
	"eduhub/internal/models"
	"eduhub/pkg/mongodb"

	"go.mongodb.org/mongo-driver/mongo"
)

type LessonRepository interface {
	Create(ctx context.Context, lesson *models.Lesson) error
}

type lessonRepository struct {
	lessonCollection *mongo.Collection
}

func NewLessonRepository(mongoClient *mongodb.MongoDBClient) LessonRepository {
	return &lessonRepository{
		lessonCollection: mongoClient.GetCollectionByName(constants.CollectionLessons),
	}
}

func (r *lessonRepository) Create(ctx context.Context, lesson *models.Lesson) error {
	if lesson.ID.IsZero() {
		lesson.Base = models.NewBase()
	}
	_, err := r.lessonCollection.InsertOne(ctx, lesson)
	return apperrors.FromMongo("LessonRepository.Create", err)
}
