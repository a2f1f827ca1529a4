package services

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"eduhub/internal/constants"
	"eduhub/internal/models"

	"go.mongodb.org/mongo-driver/bson"
)

type fakeUserRepo struct {
	users         []*models.User
	err           error
	findByIDCalls int
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	if f.err != nil {
		return f.err
	}
	user.Base = models.NewBase()
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) FindActiveStudents(_ context.Context) ([]*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*models.User, 0)
	for _, u := range f.users {
		if u.Role == constants.RoleStudent && u.IsActive {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) FindByUserIDs(_ context.Context, ids []string) ([]*models.User, error) {
	f.findByIDCalls++
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*models.User, 0)
	for _, u := range f.users {
		for _, id := range ids {
			if u.UserID == id {
				out = append(out, u)
				break
			}
		}
	}
	return out, nil
}

type fakeCourseRepo struct {
	courses      []*models.Course
	users        *fakeUserRepo
	err          error
	detailsCalls int
}

func (f *fakeCourseRepo) Create(_ context.Context, course *models.Course) error {
	if f.err != nil {
		return f.err
	}
	course.Base = models.NewBase()
	f.courses = append(f.courses, course)
	return nil
}

func (f *fakeCourseRepo) FindWithInstructor(_ context.Context) ([]*models.CourseDetails, error) {
	f.detailsCalls++
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*models.CourseDetails, 0)
	for _, c := range f.courses {
		for _, u := range f.users.users {
			if u.UserID == c.InstructorID {
				out = append(out, &models.CourseDetails{Course: *c, Instructor: *u})
			}
		}
	}
	return out, nil
}

func (f *fakeCourseRepo) FindByCategory(_ context.Context, category string) ([]*models.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*models.Course, 0)
	for _, c := range f.courses {
		if c.Category == category {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCourseRepo) SearchByTitle(_ context.Context, title string) ([]*models.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*models.Course, 0)
	for _, c := range f.courses {
		if strings.Contains(strings.ToLower(c.Title), strings.ToLower(title)) {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeEnrollmentRepo struct {
	mu          sync.Mutex
	enrollments []*models.Enrollment
	err         error
}

func (f *fakeEnrollmentRepo) Create(_ context.Context, e *models.Enrollment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.enrollments = append(f.enrollments, e)
	return nil
}

func (f *fakeEnrollmentRepo) FindByCourseID(_ context.Context, courseID string) ([]*models.Enrollment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*models.Enrollment, 0)
	for _, e := range f.enrollments {
		if e.CourseID == courseID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEnrollmentRepo) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.enrollments)), nil
}

type fakeLessonRepo struct {
	lessons []*models.Lesson
	err     error
}

func (f *fakeLessonRepo) Create(_ context.Context, lesson *models.Lesson) error {
	if f.err != nil {
		return f.err
	}
	lesson.Base = models.NewBase()
	f.lessons = append(f.lessons, lesson)
	return nil
}

// fakeCounterRepo mirrors the server-side update: seq = max(seq, floor) + 1.
type fakeCounterRepo struct {
	mu  sync.Mutex
	seq map[string]int64
	err error
}

func (f *fakeCounterRepo) Next(_ context.Context, name string, floor int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	if f.seq == nil {
		f.seq = make(map[string]int64)
	}
	current := f.seq[name]
	if floor > current {
		current = floor
	}
	f.seq[name] = current + 1
	return f.seq[name], nil
}

type fakeCache struct {
	mu          sync.Mutex
	entries     map[string][]byte
	err         error
	invalidated []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (f *fakeCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	raw, ok := f.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (f *fakeCache) Set(_ context.Context, key string, value interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.entries[key] = raw
	return nil
}

func (f *fakeCache) InvalidatePrefix(_ context.Context, prefix string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.invalidated = append(f.invalidated, prefix)
	if f.err != nil {
		return f.err
	}
	for k := range f.entries {
		if strings.HasPrefix(k, prefix) {
			delete(f.entries, k)
		}
	}
	return nil
}

type fakeCollectionRepo struct {
	names      []string
	dropped    []string
	created    []string
	validators map[string]bson.D
	indexed    map[string][]constants.IndexField
	inserted   map[string][]interface{}
	failCreate string
	failInsert string
	err        error
}

func newFakeCollectionRepo(names ...string) *fakeCollectionRepo {
	return &fakeCollectionRepo{
		names:      names,
		validators: make(map[string]bson.D),
		indexed:    make(map[string][]constants.IndexField),
		inserted:   make(map[string][]interface{}),
	}
}

func (f *fakeCollectionRepo) ListNames(_ context.Context) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]string(nil), f.names...), nil
}

func (f *fakeCollectionRepo) Drop(_ context.Context, name string) error {
	f.dropped = append(f.dropped, name)
	f.names = removeName(f.names, name)
	delete(f.inserted, name)
	delete(f.validators, name)
	delete(f.indexed, name)
	return nil
}

func (f *fakeCollectionRepo) CreateWithValidator(_ context.Context, name string, validator bson.D) error {
	if name == f.failCreate {
		return f.err
	}
	f.created = append(f.created, name)
	f.validators[name] = validator
	f.names = append(removeName(f.names, name), name)
	return nil
}

func removeName(names []string, name string) []string {
	out := names[:0:0]
	for _, n := range names {
		if n != name {
			out = append(out, n)
		}
	}
	return out
}

func (f *fakeCollectionRepo) EnsureIndexes(_ context.Context, name string, fields []constants.IndexField) error {
	f.indexed[name] = fields
	return nil
}

func (f *fakeCollectionRepo) InsertMany(_ context.Context, name string, docs []interface{}) (int, error) {
	if name == f.failInsert {
		return 0, f.err
	}
	f.inserted[name] = append(f.inserted[name], docs...)
	return len(docs), nil
}
