package models

import (
	"time"
)

type Course struct {
	CourseID     string    `bson:"courseId" json:"courseId" validate:"required"`
	Title        string    `bson:"title" json:"title" validate:"required"`
	Description  string    `bson:"description,omitempty" json:"description,omitempty"`
	InstructorID string    `bson:"instructorId" json:"instructorId" validate:"required"`
	Category     string    `bson:"category" json:"category" validate:"required"`
	Level        string    `bson:"level,omitempty" json:"level,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`
	Duration     float64   `bson:"duration" json:"duration" validate:"gte=0"`
	Price        float64   `bson:"price" json:"price" validate:"gte=0"`
	Tags         []string  `bson:"tags,omitempty" json:"tags,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
	IsPublished  bool      `bson:"isPublished" json:"isPublished"`
	Base         `bson:",inline"`
}

// CourseDetails is a course joined with its instructor.
type CourseDetails struct {
	Course     `bson:",inline"`
	Instructor User `bson:"instructor" json:"instructor"`
}
