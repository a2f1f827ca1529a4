package constants

const (
	CollectionUsers       = "users"
	CollectionCourses     = "courses"
	CollectionEnrollments = "enrollments"
	CollectionLessons     = "lessons"
	CollectionAssignments = "assignments"
	CollectionSubmissions = "submissions"

	// CollectionCounters holds atomic sequences; it has no validator.
	CollectionCounters = "counters"
)

const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

// EnrollmentIDPrefix prefixes the enrollment sequence number: e1, e2, ...
const EnrollmentIDPrefix = "e"

// IndexField describes a single-field ascending secondary index.
type IndexField struct {
	Name  string
	Field string
}

// CollectionIndexes lists the secondary indexes created after each collection
// is provisioned. They back the lookups the query service runs.
var CollectionIndexes = map[string][]IndexField{
	CollectionUsers: {
		{Name: "userId_1", Field: "userId"},
		{Name: "role_1", Field: "role"},
	},
	CollectionCourses: {
		{Name: "courseId_1", Field: "courseId"},
		{Name: "category_1", Field: "category"},
		{Name: "instructorId_1", Field: "instructorId"},
	},
	CollectionEnrollments: {
		{Name: "courseId_1", Field: "courseId"},
	},
	CollectionLessons: {
		{Name: "courseId_1", Field: "courseId"},
	},
}
