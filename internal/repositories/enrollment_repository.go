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

type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *models.Enrollment) error
	FindByCourseID(ctx context.Context, courseID string) ([]*models.Enrollment, error)
	Count(ctx context.Context) (int64, error)
}

type enrollmentRepository struct {
	enrollmentCollection *mongo.Collection
}

func NewEnrollmentRepository(mongoClient *mongodb.MongoDBClient) EnrollmentRepository {
	return &enrollmentRepository{
		enrollmentCollection: mongoClient.GetCollectionByName(constants.CollectionEnrollments),
	}
}

func (r *enrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	if enrollment.ID.IsZero() {
		enrollment.Base = models.NewBase()
	}
	_, err := r.enrollmentCollection.InsertOne(ctx, enrollment)
	return apperrors.FromMongo("EnrollmentRepository.Create", err)
}

func (r *enrollmentRepository) FindByCourseID(ctx context.Context, courseID string) ([]*models.Enrollment, error) {
	cursor, err := r.enrollmentCollection.Find(ctx, bson.M{"courseId": courseID})
	if err != nil {
		return nil, apperrors.FromMongo("EnrollmentRepository.FindByCourseID", err)
	}
	enrollments, err := decodeAll[models.Enrollment](ctx, cursor)
	return enrollments, apperrors.FromMongo("EnrollmentRepository.FindByCourseID", err)
}

func (r *enrollmentRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.enrollmentCollection.CountDocuments(ctx, bson.M{})
	return count, apperrors.FromMongo("EnrollmentRepository.Count", err)
}
