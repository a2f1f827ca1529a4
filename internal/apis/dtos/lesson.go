package dtos

type LessonResourceRequest struct {
	Title   string `json:"title" binding:"required"`
	URL     string `json:"url" binding:"required"`
	AddedAt string `json:"addedAt"`
}

// CreateLessonRequest is the body of POST /api/courses/:courseId/lessons; the
// course comes from the path.
type CreateLessonRequest struct {
	LessonID  string                  `json:"lessonId" binding:"required"`
	Title     string                  `json:"title" binding:"required"`
	Content   string                  `json:"content"`
	Order     int32                   `json:"order" binding:"required"`
	Duration  float64                 `json:"duration"`
	Resources []LessonResourceRequest `json:"resources"`
}
