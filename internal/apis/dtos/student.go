package dtos

// ProfileRequest carries the optional student profile. Dates are accepted in
// any of the textual forms the seeder understands.
type ProfileRequest struct {
	Bio       string   `json:"bio"`
	Avatar    string   `json:"avatar"`
	Skills    []string `json:"skills"`
	LastLogin string   `json:"lastLogin"`
}

// CreateStudentRequest is the body of POST /api/students. Any role sent by the
// client is ignored.
type CreateStudentRequest struct {
	UserID     string          `json:"userId" binding:"required"`
	Email      string          `json:"email" binding:"required"`
	FirstName  string          `json:"firstName" binding:"required"`
	LastName   string          `json:"lastName" binding:"required"`
	Role       string          `json:"role"`
	DateJoined string          `json:"dateJoined"`
	Profile    *ProfileRequest `json:"profile"`
	IsActive   *bool           `json:"isActive"`
}
