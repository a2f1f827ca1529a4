package repositories

import (
	"context"
	"regexp"

	"eduhub/internal/apperrors"
	"eduhub/internal/constants"
	"eduhub/internal/models"
	"eduhub/pkg/mongodb"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	FindWithInstructor(ctx context.Context) ([]*models.CourseDetails, error)
	FindByCategory(ctx context.Context, category string) ([]*models.Course, error)
	SearchByTitle(ctx context.Context, title string) ([]*models.Course, error)
}

type courseRepository struct {
	courseCollection *mongo.Collection
}

func NewCourseRepository(mongoClient *mongodb.MongoDBClient) CourseRepository {
	return &courseRepository{
		courseCollection: mongoClient.GetCollectionByName(constants.CollectionCourses),
	}
}

func (r *courseRepository) Create(ctx context.Context, course *models.Course) error {
	if course.ID.IsZero() {
		course.Base = models.NewBase()
	}
	_, err := r.courseCollection.InsertOne(ctx, course)
	return apperrors.FromMongo("CourseRepository.Create", err)
}

// FindWithInstructor joins each course with the user whose userId equals its
// instructorId. $unwind drops courses without a match, so this is an equi-join.
func (r *courseRepository) FindWithInstructor(ctx context.Context) ([]*models.CourseDetails, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: constants.CollectionUsers},
			{Key: "localField", Value: "instructorId"},
			{Key: "foreignField", Value: "userId"},
			{Key: "as", Value: "instructor"},
		}}},
		{{Key: "$unwind", Value: "$instructor"}},
	}

	cursor, err := r.courseCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, apperrors.FromMongo("CourseRepository.FindWithInstructor", err)
	}
	details, err := decodeAll[models.CourseDetails](ctx, cursor)
	return details, apperrors.FromMongo("CourseRepository.FindWithInstructor", err)
}

func (r *courseRepository) FindByCategory(ctx context.Context, category string) ([]*models.Course, error) {
	cursor, err := r.courseCollection.Find(ctx, bson.M{"category": category})
	if err != nil {
		return nil, apperrors.FromMongo("CourseRepository.FindByCategory", err)
	}
	courses, err := decodeAll[models.Course](ctx, cursor)
	return courses, apperrors.FromMongo("CourseRepository.FindByCategory", err)
}

// SearchByTitle is a case-insensitive substring match. The text is matched
// literally, regex metacharacters included.
func (r *courseRepository) SearchByTitle(ctx context.Context, title string) ([]*models.Course, error) {
	filter := bson.M{"title": primitive.Regex{Pattern: regexp.QuoteMeta(title), Options: "i"}}
	cursor, err := r.courseCollection.Find(ctx, filter)
	if err != nil {
		return nil, apperrors.FromMongo("CourseRepository.SearchByTitle", err)
	}
	courses, err := decodeAll[models.Course](ctx, cursor)
	return courses, apperrors.FromMongo("CourseRepository.SearchByTitle", err)
}
