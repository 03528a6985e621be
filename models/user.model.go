package models

import (
	"gorm.io/gorm"
)

// InitialPoints is the balance granted to every new user at registration.
const InitialPoints = 10

type User struct {
	gorm.Model
	Username string `json:"username" gorm:"unique;not null"`
	Password string `json:"-" gorm:"not null"` // bcrypt hash
	// Points defaults to InitialPoints at registration time, not in the
	// schema; a schema default would mask legitimate zero balances.
	Points int `json:"points" gorm:"not null"`

	Enrollments []Enrollment `json:"-" gorm:"foreignKey:UserID"`
}
