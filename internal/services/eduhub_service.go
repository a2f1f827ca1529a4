package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"eduhub/internal/apis/dtos"
	"eduhub/internal/apperrors"
	"eduhub/internal/constants"
	"eduhub/internal/models"
	"eduhub/internal/repositories"
	"eduhub/internal/schema"
	"eduhub/pkg/logger"

	"github.com/go-playground/validator/v10"
)

type EduHubService interface {
	InsertStudent(ctx context.Context, req *dtos.CreateStudentRequest) (*models.User, uint, error)
	InsertCourse(ctx context.Context, req *dtos.CreateCourseRequest) (*dtos.CourseCreatedResponse, uint, error)
	RegisterStudent(ctx context.Context, studentID, courseID string) (*models.Enrollment, uint, error)
	InsertLesson(ctx context.Context, courseID string, req *dtos.CreateLessonRequest) (*models.Lesson, uint, error)

	GetActiveStudents(ctx context.Context) ([]*models.User, uint, error)
	GetCourseDetails(ctx context.Context) ([]*models.CourseDetails, uint, error)
	GetCoursesByCategory(ctx context.Context, category string) ([]*models.Course, uint, error)
	GetStudentsEnrolledToCourse(ctx context.Context, courseID string) ([]*models.User, uint, error)
	SearchCoursesByTitle(ctx context.Context, title string) ([]*models.Course, uint, error)
}

type eduHubService struct {
	userRepo       repositories.UserRepository
	courseRepo     repositories.CourseRepository
	enrollmentRepo repositories.EnrollmentRepository
	lessonRepo     repositories.LessonRepository
	counterRepo    repositories.CounterRepository
	cacheRepo      repositories.CacheRepository
	validate       *validator.Validate
	timeout        time.Duration
	now            func() time.Time
	log            *logger.Logger
}

type EduHubRepositories struct {
	Users       repositories.UserRepository
	Courses     repositories.CourseRepository
	Enrollments repositories.EnrollmentRepository
	Lessons     repositories.LessonRepository
	Counters    repositories.CounterRepository
	Cache       repositories.CacheRepository
}

func NewEduHubService(repos EduHubRepositories, timeout time.Duration, log *logger.Logger) EduHubService {
	return &eduHubService{
		userRepo:       repos.Users,
		courseRepo:     repos.Courses,
		enrollmentRepo: repos.Enrollments,
		lessonRepo:     repos.Lessons,
		counterRepo:    repos.Counters,
		cacheRepo:      repos.Cache,
		validate:       validator.New(),
		timeout:        timeout,
		now:            func() time.Time { return time.Now().UTC() },
		log:            log,
	}
}

func (s *eduHubService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *eduHubService) validateModel(op string, model interface{}) error {
	if err := s.validate.Struct(model); err != nil {
		return apperrors.MalformedInput(op, err)
	}
	return nil
}

func (s *eduHubService) InsertStudent(ctx context.Context, req *dtos.CreateStudentRequest) (*models.User, uint, error) {
	const op = "EduHubService.InsertStudent"
	if req.Role != "" && req.Role != constants.RoleStudent {
		s.log.Debug("EduHubService -> InsertStudent -> overriding role", "userId", req.UserID, "role", req.Role)
	}

	user := &models.User{
		UserID:     req.UserID,
		Email:      req.Email,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Role:       constants.RoleStudent,
		DateJoined: s.now(),
		IsActive:   true,
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.DateJoined != "" {
		joined, err := parseDate("dateJoined", req.DateJoined)
		if err != nil {
			return nil, http.StatusBadRequest, err
		}
		user.DateJoined = joined
	}
	if req.Profile != nil {
		user.Profile = models.UserProfile{
			Bio:    req.Profile.Bio,
			Avatar: req.Profile.Avatar,
			Skills: req.Profile.Skills,
		}
		if req.Profile.LastLogin != "" {
			lastLogin, err := parseDate("profile.lastLogin", req.Profile.LastLogin)
			if err != nil {
				return nil, http.StatusBadRequest, err
			}
			user.Profile.LastLogin = &lastLogin
		}
	}
	if err := s.validateModel(op, user); err != nil {
		return nil, http.StatusBadRequest, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.userRepo.Create(ctx, user); err != nil {
		s.log.Error("EduHubService -> InsertStudent -> insert failed", "userId", user.UserID, "error", err)
		return nil, apperrors.HTTPStatus(err), err
	}
	// Course details join instructors by userId, so a new user can complete a
	// previously unmatched course.
	s.invalidateCourses(ctx)

	return user, http.StatusCreated, nil
}

func (s *eduHubService) InsertCourse(ctx context.Context, req *dtos.CreateCourseRequest) (*dtos.CourseCreatedResponse, uint, error) {
	const op = "EduHubService.InsertCourse"
	now := s.now()
	course := &models.Course{
		CourseID:     req.CourseID,
		Title:        req.Title,
		Description:  req.Description,
		InstructorID: req.InstructorID,
		Category:     req.Category,
		Level:        req.Level,
		Duration:     req.Duration,
		Price:        req.Price,
		Tags:         req.Tags,
		CreatedAt:    now,
		UpdatedAt:    now,
		IsPublished:  req.IsPublished,
	}
	if err := s.validateModel(op, course); err != nil {
		return nil, http.StatusBadRequest, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.courseRepo.Create(ctx, course); err != nil {
		s.log.Error("EduHubService -> InsertCourse -> insert failed", "courseId", course.CourseID, "error", err)
		return nil, apperrors.HTTPStatus(err), err
	}
	s.invalidateCourses(ctx)

	return &dtos.CourseCreatedResponse{
		ID:     course.ID.Hex(),
		Course: course,
	}, http.StatusCreated, nil
}

// RegisterStudent numbers enrollments e1, e2, ... from an atomic counter. The
// counter never falls behind the number of enrollments already stored, so ids
// continue after seeded data.
func (s *eduHubService) RegisterStudent(ctx context.Context, studentID, courseID string) (*models.Enrollment, uint, error) {
	const op = "EduHubService.RegisterStudent"
	if studentID == "" || courseID == "" {
		return nil, http.StatusBadRequest, apperrors.MalformedInput(op, errors.New("studentId and courseId are required"))
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	existing, err := s.enrollmentRepo.Count(ctx)
	if err != nil {
		s.log.Error("EduHubService -> RegisterStudent -> count failed", "error", err)
		return nil, apperrors.HTTPStatus(err), err
	}
	seq, err := s.counterRepo.Next(ctx, constants.CollectionEnrollments, existing)
	if err != nil {
		s.log.Error("EduHubService -> RegisterStudent -> sequence failed", "error", err)
		return nil, apperrors.HTTPStatus(err), err
	}

	enrollment := models.NewEnrollment(constants.EnrollmentIDPrefix+strconv.FormatInt(seq, 10), studentID, courseID, s.now())
	if err := s.enrollmentRepo.Create(ctx, enrollment); err != nil {
		s.log.Error("EduHubService -> RegisterStudent -> insert failed", "enrollmentId", enrollment.EnrollmentID, "error", err)
		return nil, apperrors.HTTPStatus(err), err
	}
	return enrollment, http.StatusCreated, nil
}

func (s *eduHubService) InsertLesson(ctx context.Context, courseID string, req *dtos.CreateLessonRequest) (*models.Lesson, uint, error) {
	const op = "EduHubService.InsertLesson"
	lesson := &models.Lesson{
		LessonID:  req.LessonID,
		CourseID:  courseID,
		Title:     req.Title,
		Content:   req.Content,
		Order:     req.Order,
		Duration:  req.Duration,
		CreatedAt: s.now(),
	}
	for i, r := range req.Resources {
		resource := models.LessonResource{Title: r.Title, URL: r.URL, AddedAt: lesson.CreatedAt}
		if r.AddedAt != "" {
			addedAt, err := parseDate(fmt.Sprintf("resources.%d.addedAt", i), r.AddedAt)
			if err != nil {
				return nil, http.StatusBadRequest, err
			}
			resource.AddedAt = addedAt
		}
		lesson.Resources = append(lesson.Resources, resource)
	}
	if err := s.validateModel(op, lesson); err != nil {
		return nil, http.StatusBadRequest, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.lessonRepo.Create(ctx, lesson); err != nil {
		s.log.Error("EduHubService -> InsertLesson -> insert failed", "lessonId", lesson.LessonID, "error", err)
		return nil, apperrors.HTTPStatus(err), err
	}
	return lesson, http.StatusCreated, nil
}

func (s *eduHubService) GetActiveStudents(ctx context.Context) ([]*models.User, uint, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	users, err := s.userRepo.FindActiveStudents(ctx)
	if err != nil {
		s.log.Error("EduHubService -> GetActiveStudents -> query failed", "error", err)
		return nil, apperrors.HTTPStatus(err), err
	}
	return users, http.StatusOK, nil
}

func (s *eduHubService) GetCourseDetails(ctx context.Context) ([]*models.CourseDetails, uint, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var cached []*models.CourseDetails
	if s.readCache(ctx, constants.CacheKeyCourseDetails, &cached) {
		return cached, http.StatusOK, nil
	}

	details, err := s.courseRepo.FindWithInstructor(ctx)
	if err != nil {
		s.log.Error("EduHubService -> GetCourseDetails -> query failed", "error", err)
		return nil, apperrors.HTTPStatus(err), err
	}
	s.writeCache(ctx, constants.CacheKeyCourseDetails, details)
	return details, http.StatusOK, nil
}

func (s *eduHubService) GetCoursesByCategory(ctx context.Context, category string) ([]*models.Course, uint, error) {
	if category == "" {
		return nil, http.StatusBadRequest, apperrors.MalformedInput("EduHubService.GetCoursesByCategory", errors.New("category is required"))
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	key := constants.CacheKeyCourseByCat + category
	var cached []*models.Course
	if s.readCache(ctx, key, &cached) {
		return cached, http.StatusOK, nil
	}

	courses, err := s.courseRepo.FindByCategory(ctx, category)
	if err != nil {
		s.log.Error("EduHubService -> GetCoursesByCategory -> query failed", "category", category, "error", err)
		return nil, apperrors.HTTPStatus(err), err
	}
	s.writeCache(ctx, key, courses)
	return courses, http.StatusOK, nil
}

// GetStudentsEnrolledToCourse resolves enrollments first and then their
// students. A course without enrollments yields no students and no user query.
func (s *eduHubService) GetStudentsEnrolledToCourse(ctx context.Context, courseID string) ([]*models.User, uint, error) {
	if courseID == "" {
		return nil, http.StatusBadRequest, apperrors.MalformedInput("EduHubService.GetStudentsEnrolledToCourse", errors.New("courseId is required"))
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	enrollments, err := s.enrollmentRepo.FindByCourseID(ctx, courseID)
	if err != nil {
		s.log.Error("EduHubService -> GetStudentsEnrolledToCourse -> enrollments query failed", "courseId", courseID, "error", err)
		return nil, apperrors.HTTPStatus(err), err
	}
	if len(enrollments) == 0 {
		return []*models.User{}, http.StatusOK, nil
	}

	seen := make(map[string]struct{}, len(enrollments))
	studentIDs := make([]string, 0, len(enrollments))
	for _, e := range enrollments {
		if _, ok := seen[e.StudentID]; ok {
			continue
		}
		seen[e.StudentID] = struct{}{}
		studentIDs = append(studentIDs, e.StudentID)
	}

	users, err := s.userRepo.FindByUserIDs(ctx, studentIDs)
	if err != nil {
		s.log.Error("EduHubService -> GetStudentsEnrolledToCourse -> users query failed", "courseId", courseID, "error", err)
		return nil, apperrors.HTTPStatus(err), err
	}
	return users, http.StatusOK, nil
}

func (s *eduHubService) SearchCoursesByTitle(ctx context.Context, title string) ([]*models.Course, uint, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	courses, err := s.courseRepo.SearchByTitle(ctx, title)
	if err != nil {
		s.log.Error("EduHubService -> SearchCoursesByTitle -> query failed", "title", title, "error", err)
		return nil, apperrors.HTTPStatus(err), err
	}
	return courses, http.StatusOK, nil
}

func (s *eduHubService) readCache(ctx context.Context, key string, dest interface{}) bool {
	hit, err := s.cacheRepo.Get(ctx, key, dest)
	if err != nil {
		s.log.Warn("EduHubService -> readCache -> cache unavailable", "key", key, "error", err)
		return false
	}
	return hit
}

func (s *eduHubService) writeCache(ctx context.Context, key string, value interface{}) {
	if err := s.cacheRepo.Set(ctx, key, value); err != nil {
		s.log.Warn("EduHubService -> writeCache -> cache unavailable", "key", key, "error", err)
	}
}

func (s *eduHubService) invalidateCourses(ctx context.Context) {
	if err := s.cacheRepo.InvalidatePrefix(ctx, constants.CacheKeyCoursesPrefix); err != nil {
		s.log.Warn("EduHubService -> invalidateCourses -> cache flush failed", "error", err)
	}
}

func parseDate(path, value string) (time.Time, error) {
	parsed, err := schema.ParseDate(path, value)
	if err != nil {
		return time.Time{}, err
	}
	return parsed.(time.Time), nil
}
