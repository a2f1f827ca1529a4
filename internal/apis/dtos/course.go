package dtos

import "eduhub/internal/models"

type CreateCourseRequest struct {
	CourseID     string   `json:"courseId" binding:"required"`
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description"`
	InstructorID string   `json:"instructorId" binding:"required"`
	Category     string   `json:"category" binding:"required"`
	Level        string   `json:"level"`
	Duration     float64  `json:"duration"`
	Price        float64  `json:"price"`
	Tags         []string `json:"tags"`
	IsPublished  bool     `json:"isPublished"`
}

type CourseCreatedResponse struct {
	ID     string         `json:"id"`
	Course *models.Course `json:"course"`
}

type RegisterStudentRequest struct {
	StudentID string `json:"studentId" binding:"required"`
}
