package models

import (
	"time"
)

type Enrollment struct {
	EnrollmentID      string    `bson:"enrollmentId" json:"enrollmentId" validate:"required"`
	StudentID         string    `bson:"studentId" json:"studentId" validate:"required"`
	CourseID          string    `bson:"courseId" json:"courseId" validate:"required"`
	EnrollmentDate    time.Time `bson:"enrollmentDate" json:"enrollmentDate"`
	Progress          float64   `bson:"progress" json:"progress" validate:"gte=0,lte=1"`
	Completed         bool      `bson:"completed" json:"completed"`
	CertificateIssued bool      `bson:"certificateIssued" json:"certificateIssued"`
	Base              `bson:",inline"`
}

// NewEnrollment starts an enrollment with no progress.
func NewEnrollment(enrollmentID, studentID, courseID string, enrolledAt time.Time) *Enrollment {
	return &Enrollment{
		EnrollmentID:      enrollmentID,
		StudentID:         studentID,
		CourseID:          courseID,
		EnrollmentDate:    enrolledAt.UTC(),
		Progress:          0.0,
		Completed:         false,
		CertificateIssued: false,
		Base:              NewBase(),
	}
}
