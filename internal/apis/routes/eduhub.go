package routes

import (
	"github.com/gin-gonic/gin"
)

func SetupEduHubRoutes(router *gin.Engine, h Handlers) {
	students := router.Group("/api/students")
	{
		students.POST("", h.EduHub.InsertStudent)
		students.GET("/active", h.EduHub.GetActiveStudents)
	}

	courses := router.Group("/api/courses")
	{
		courses.POST("", h.EduHub.InsertCourse)
		courses.GET("", h.EduHub.GetCoursesByCategory) // Has query param "category"
		courses.GET("/search", h.EduHub.SearchCoursesByTitle)
		courses.GET("/details", h.EduHub.GetCourseDetails)
		courses.GET("/:courseId/students", h.EduHub.GetStudentsEnrolledToCourse)
		courses.POST("/:courseId/enrollments", h.EduHub.RegisterStudent)
		courses.POST("/:courseId/lessons", h.EduHub.InsertLesson)
	}
}
