package models

import "gorm.io/gorm"

// Course represents a catalog entry users can enroll in.
// The catalog is seeded once at startup and is read-only afterwards.
type Course struct {
	gorm.Model
	Name string `json:"name" gorm:"unique;not null"`

	Enrollments []Enrollment `json:"-" gorm:"foreignKey:CourseID"`
}
