package models

import (
	"time"
)

type UserProfile struct {
	Bio       string     `bson:"bio,omitempty" json:"bio,omitempty"`
	Avatar    string     `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Skills    []string   `bson:"skills,omitempty" json:"skills,omitempty"`
	LastLogin *time.Time `bson:"lastLogin,omitempty" json:"lastLogin,omitempty"`
}

type User struct {
	UserID     string      `bson:"userId" json:"userId" validate:"required"`
	Email      string      `bson:"email" json:"email" validate:"required,email"`
	FirstName  string      `bson:"firstName" json:"firstName" validate:"required"`
	LastName   string      `bson:"lastName" json:"lastName" validate:"required"`
	Role       string      `bson:"role" json:"role" validate:"required,oneof=student instructor admin"`
	DateJoined time.Time   `bson:"dateJoined" json:"dateJoined"`
	Profile    UserProfile `bson:"profile" json:"profile"`
	IsActive   bool        `bson:"isActive" json:"isActive"`
	Base       `bson:",inline"`
}
