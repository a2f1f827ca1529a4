package handlers

import (
	"eduhub/internal/apis/dtos"
	"eduhub/internal/services"

	"github.com/gin-gonic/gin"
)

type EduHubHandler struct {
	eduHubService services.EduHubService
}

func NewEduHubHandler(eduHubService services.EduHubService) *EduHubHandler {
	return &EduHubHandler{
		eduHubService: eduHubService,
	}
}

// @Summary Insert Student
// @Description Create a user with the student role
// @Accept json
// @Produce json
// @Param student body dtos.CreateStudentRequest true "Student"
// @Success 201 {object} dtos.Response
func (h *EduHubHandler) InsertStudent(c *gin.Context) {
	var req dtos.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	user, statusCode, err := h.eduHubService.InsertStudent(c.Request.Context(), &req)
	respond(c, statusCode, user, err)
}

// @Summary Active Students
// @Produce json
// @Success 200 {object} dtos.Response
func (h *EduHubHandler) GetActiveStudents(c *gin.Context) {
	users, statusCode, err := h.eduHubService.GetActiveStudents(c.Request.Context())
	respond(c, statusCode, users, err)
}

// @Summary Insert Course
// @Accept json
// @Produce json
// @Param course body dtos.CreateCourseRequest true "Course"
// @Success 201 {object} dtos.Response
func (h *EduHubHandler) InsertCourse(c *gin.Context) {
	var req dtos.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	response, statusCode, err := h.eduHubService.InsertCourse(c.Request.Context(), &req)
	respond(c, statusCode, response, err)
}

// @Summary Courses By Category
// @Produce json
// @Param category query string true "Exact category"
// @Success 200 {object} dtos.Response
func (h *EduHubHandler) GetCoursesByCategory(c *gin.Context) {
	courses, statusCode, err := h.eduHubService.GetCoursesByCategory(c.Request.Context(), c.Query("category"))
	respond(c, statusCode, courses, err)
}

// @Summary Search Courses
// @Description Case-insensitive substring match on the title
// @Produce json
// @Param title query string false "Title fragment"
// @Success 200 {object} dtos.Response
func (h *EduHubHandler) SearchCoursesByTitle(c *gin.Context) {
	courses, statusCode, err := h.eduHubService.SearchCoursesByTitle(c.Request.Context(), c.Query("title"))
	respond(c, statusCode, courses, err)
}

// @Summary Course Details
// @Description Courses joined with their instructor
// @Produce json
// @Success 200 {object} dtos.Response
func (h *EduHubHandler) GetCourseDetails(c *gin.Context) {
	details, statusCode, err := h.eduHubService.GetCourseDetails(c.Request.Context())
	respond(c, statusCode, details, err)
}

// @Summary Enrolled Students
// @Produce json
// @Param courseId path string true "Course id"
// @Success 200 {object} dtos.Response
func (h *EduHubHandler) GetStudentsEnrolledToCourse(c *gin.Context) {
	users, statusCode, err := h.eduHubService.GetStudentsEnrolledToCourse(c.Request.Context(), c.Param("courseId"))
	respond(c, statusCode, users, err)
}

// @Summary Register Student
// @Accept json
// @Produce json
// @Param courseId path string true "Course id"
// @Param enrollment body dtos.RegisterStudentRequest true "Student"
// @Success 201 {object} dtos.Response
func (h *EduHubHandler) RegisterStudent(c *gin.Context) {
	var req dtos.RegisterStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	enrollment, statusCode, err := h.eduHubService.RegisterStudent(c.Request.Context(), req.StudentID, c.Param("courseId"))
	respond(c, statusCode, enrollment, err)
}

// @Summary Insert Lesson
// @Accept json
// @Produce json
// @Param courseId path string true "Course id"
// @Param lesson body dtos.CreateLessonRequest true "Lesson"
// @Success 201 {object} dtos.Response
func (h *EduHubHandler) InsertLesson(c *gin.Context) {
	var req dtos.CreateLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	lesson, statusCode, err := h.eduHubService.InsertLesson(c.Request.Context(), c.Param("courseId"), &req)
	respond(c, statusCode, lesson, err)
}
