package models

import "gorm.io/gorm"

// EnrollCost is the number of points one enrollment costs.
const EnrollCost = 10

// Enrollment links a user to a course. Rows are immutable once created.
// There is deliberately no uniqueness across (UserID, CourseID): enrolling
// in the same course again is allowed and costs points again.
type Enrollment struct {
	gorm.Model
	UserID   uint `json:"user_id" gorm:"index;not null"`
	CourseID uint `json:"course_id" gorm:"index;not null"`

	User   User   `json:"-" gorm:"foreignKey:UserID"`
	Course Course `json:"-" gorm:"foreignKey:CourseID"`
}
