package routes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"eduhub/internal/apis/dtos"
	"eduhub/internal/apis/handlers"
	"eduhub/internal/apis/middlewares"
	"eduhub/internal/apperrors"
	"eduhub/internal/models"
	"eduhub/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEduHub struct {
	lastCategory string
	lastTitle    string
	lastCourse   string
	lastStudent  string
	err          error
}

func (s *stubEduHub) InsertStudent(_ context.Context, req *dtos.CreateStudentRequest) (*models.User, uint, error) {
	if s.err != nil {
		return nil, apperrors.HTTPStatus(s.err), s.err
	}
	return &models.User{UserID: req.UserID, Role: "student"}, http.StatusCreated, nil
}

func (s *stubEduHub) InsertCourse(_ context.Context, req *dtos.CreateCourseRequest) (*dtos.CourseCreatedResponse, uint, error) {
	return &dtos.CourseCreatedResponse{ID: "abc", Course: &models.Course{CourseID: req.CourseID}}, http.StatusCreated, nil
}

func (s *stubEduHub) RegisterStudent(_ context.Context, studentID, courseID string) (*models.Enrollment, uint, error) {
	s.lastStudent, s.lastCourse = studentID, courseID
	return models.NewEnrollment("e1", studentID, courseID, time.Now()), http.StatusCreated, nil
}

func (s *stubEduHub) InsertLesson(_ context.Context, courseID string, req *dtos.CreateLessonRequest) (*models.Lesson, uint, error) {
	s.lastCourse = courseID
	return &models.Lesson{LessonID: req.LessonID, CourseID: courseID}, http.StatusCreated, nil
}

func (s *stubEduHub) GetActiveStudents(context.Context) ([]*models.User, uint, error) {
	if s.err != nil {
		return nil, apperrors.HTTPStatus(s.err), s.err
	}
	return []*models.User{{UserID: "u3"}}, http.StatusOK, nil
}

func (s *stubEduHub) GetCourseDetails(context.Context) ([]*models.CourseDetails, uint, error) {
	return []*models.CourseDetails{}, http.StatusOK, nil
}

func (s *stubEduHub) GetCoursesByCategory(_ context.Context, category string) ([]*models.Course, uint, error) {
	s.lastCategory = category
	return []*models.Course{}, http.StatusOK, nil
}

func (s *stubEduHub) GetStudentsEnrolledToCourse(_ context.Context, courseID string) ([]*models.User, uint, error) {
	s.lastCourse = courseID
	return []*models.User{}, http.StatusOK, nil
}

func (s *stubEduHub) SearchCoursesByTitle(_ context.Context, title string) ([]*models.Course, uint, error) {
	s.lastTitle = title
	return []*models.Course{}, http.StatusOK, nil
}

type stubSetup struct {
	lastSeed *bool
}

func (s *stubSetup) Reset(context.Context) ([]string, uint, error) {
	return []string{"users"}, http.StatusOK, nil
}

func (s *stubSetup) Provision(context.Context) ([]string, uint, error) {
	return []string{"users"}, http.StatusCreated, nil
}

func (s *stubSetup) Seed(context.Context) (*dtos.SeedReport, uint, error) {
	return &dtos.SeedReport{Inserted: map[string]int{"users": 5}}, http.StatusCreated, nil
}

func (s *stubSetup) Run(_ context.Context, seed bool) (*dtos.SetupResponse, uint, error) {
	s.lastSeed = &seed
	return &dtos.SetupResponse{Provisioned: []string{"users"}}, http.StatusCreated, nil
}

type stubAuth struct{}

func (stubAuth) Login(context.Context, *dtos.LoginRequest) (*dtos.AuthResponse, uint, error) {
	return nil, http.StatusUnauthorized, errors.New("invalid credentials")
}

func (stubAuth) RefreshToken(context.Context, string) (*dtos.RefreshTokenResponse, uint, error) {
	return &dtos.RefreshTokenResponse{AccessToken: "x"}, http.StatusOK, nil
}

func (stubAuth) Logout(context.Context, string, string) (uint, error) {
	return http.StatusOK, nil
}

type stubTokens struct{ revoked map[string]bool }

func (stubTokens) StoreRefreshToken(context.Context, string, string) error     { return nil }
func (stubTokens) ValidateRefreshToken(context.Context, string, string) bool   { return true }
func (stubTokens) DeleteRefreshToken(context.Context, string, string) error    { return nil }
func (stubTokens) BlacklistToken(context.Context, string, time.Duration) error { return nil }
func (s stubTokens) IsTokenBlacklisted(_ context.Context, token string) bool {
	return s.revoked[token]
}

type testServer struct {
	router *gin.Engine
	eduhub *stubEduHub
	setup  *stubSetup
	jwt    utils.JWTService
	tokens stubTokens
}

func newTestServer() *testServer {
	gin.SetMode(gin.TestMode)
	ts := &testServer{
		router: gin.New(),
		eduhub: &stubEduHub{},
		setup:  &stubSetup{},
		jwt:    utils.NewJWTService("test-secret", time.Minute, time.Hour),
		tokens: stubTokens{revoked: map[string]bool{}},
	}
	RegisterRoutes(ts.router, Handlers{
		Auth:        handlers.NewAuthHandler(stubAuth{}),
		Setup:       handlers.NewSetupHandler(ts.setup, true),
		EduHub:      handlers.NewEduHubHandler(ts.eduhub),
		RequireAuth: middlewares.AuthMiddleware(ts.jwt, ts.tokens),
	})
	return ts
}

func (ts *testServer) do(t *testing.T, method, path, body, token string) (*httptest.ResponseRecorder, dtos.Response) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)

	var resp dtos.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return w, resp
}

func (ts *testServer) operatorToken(t *testing.T) string {
	t.Helper()
	token, err := ts.jwt.GenerateToken("operator")
	require.NoError(t, err)
	return *token
}

func TestHealth(t *testing.T) {
	ts := newTestServer()
	w, resp := ts.do(t, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)
}

func TestStudentsRoutes(t *testing.T) {
	ts := newTestServer()

	w, resp := ts.do(t, http.MethodPost, "/api/students", `{"userId":"u9","email":"a@b.c","firstName":"A","lastName":"B"}`, "")
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, resp.Success)

	w, resp = ts.do(t, http.MethodPost, "/api/students", `{"email":"a@b.c"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)

	w, resp = ts.do(t, http.MethodGet, "/api/students/active", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, resp.Data, 1)
}

func TestErrorKindsBecomeStatusCodes(t *testing.T) {
	ts := newTestServer()

	ts.eduhub.err = apperrors.Backend("UserRepository.FindActiveStudents", errors.New("down"))
	w, resp := ts.do(t, http.MethodGet, "/api/students/active", "", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.False(t, resp.Success)

	ts.eduhub.err = apperrors.New(apperrors.KindValidationRejected, "UserRepository.Create", errors.New("Document failed validation"))
	w, _ = ts.do(t, http.MethodPost, "/api/students", `{"userId":"u9","email":"a@b.c","firstName":"A","lastName":"B"}`, "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCourseRoutes(t *testing.T) {
	ts := newTestServer()

	w, _ := ts.do(t, http.MethodGet, "/api/courses?category=Science", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Science", ts.eduhub.lastCategory)

	w, _ = ts.do(t, http.MethodGet, "/api/courses/search?title=Intro", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Intro", ts.eduhub.lastTitle)

	w, _ = ts.do(t, http.MethodGet, "/api/courses/details", "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = ts.do(t, http.MethodGet, "/api/courses/c1/students", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "c1", ts.eduhub.lastCourse)

	w, resp := ts.do(t, http.MethodPost, "/api/courses/c2/enrollments", `{"studentId":"u3"}`, "")
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "c2", ts.eduhub.lastCourse)
	assert.Equal(t, "u3", ts.eduhub.lastStudent)
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "e1", data["enrollmentId"])

	w, _ = ts.do(t, http.MethodPost, "/api/courses/c3/lessons", `{"lessonId":"l9","title":"T","order":1}`, "")
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "c3", ts.eduhub.lastCourse)

	w, _ = ts.do(t, http.MethodPost, "/api/courses", `{"courseId":"c9","title":"T","instructorId":"u1","category":"Science"}`, "")
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestAdminRoutesRequireOperatorToken(t *testing.T) {
	ts := newTestServer()

	w, resp := ts.do(t, http.MethodPost, "/api/admin/setup", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, resp.Success)

	refresh, err := ts.jwt.GenerateRefreshToken("operator")
	require.NoError(t, err)
	w, _ = ts.do(t, http.MethodPost, "/api/admin/setup", "", *refresh)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := ts.operatorToken(t)
	ts.tokens.revoked["revoked"] = true
	w, _ = ts.do(t, http.MethodPost, "/api/admin/setup", "", "revoked")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = ts.do(t, http.MethodPost, "/api/admin/setup", "", token)
	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, ts.setup.lastSeed)
	assert.True(t, *ts.setup.lastSeed)

	w, _ = ts.do(t, http.MethodPost, "/api/admin/setup", `{"seed":false}`, token)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.False(t, *ts.setup.lastSeed)

	for _, path := range []string{"/api/admin/setup/reset", "/api/admin/setup/provision", "/api/admin/setup/seed"} {
		w, resp = ts.do(t, http.MethodPost, path, "", token)
		assert.Less(t, w.Code, 300, path)
		assert.True(t, resp.Success, path)
	}
}

func TestAuthRoutes(t *testing.T) {
	ts := newTestServer()

	w, resp := ts.do(t, http.MethodPost, "/api/auth/login", `{"username":"x","password":"y"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, resp.Success)

	w, _ = ts.do(t, http.MethodGet, "/api/auth/refresh-token", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = ts.do(t, http.MethodGet, "/api/auth/refresh-token", "", "some-refresh-token")
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = ts.do(t, http.MethodPost, "/api/auth/logout", `{"refresh_token":"r"}`, ts.operatorToken(t))
	assert.Equal(t, http.StatusOK, w.Code)
}
