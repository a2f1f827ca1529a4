package models

import (
	"time"
)

type LessonResource struct {
	Title   string    `bson:"title" json:"title" validate:"required"`
	URL     string    `bson:"url" json:"url" validate:"required,url"`
	AddedAt time.Time `bson:"addedAt" json:"addedAt"`
}

type Lesson struct {
	LessonID  string           `bson:"lessonId" json:"lessonId" validate:"required"`
	CourseID  string           `bson:"courseId" json:"courseId" validate:"required"`
	Title     string           `bson:"title" json:"title" validate:"required"`
	Content   string           `bson:"content,omitempty" json:"content,omitempty"`
	Order     int32            `bson:"order" json:"order" validate:"gte=1"`
	Duration  float64          `bson:"duration" json:"duration" validate:"gte=0"`
	Resources []LessonResource `bson:"resources,omitempty" json:"resources,omitempty" validate:"dive"`
	CreatedAt time.Time        `bson:"createdAt" json:"createdAt"`
	Base      `bson:",inline"`
}
