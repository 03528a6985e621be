package services

import (
	"errors"

	"peer2learn/models"

	"gorm.io/gorm"
)

// ListCourses returns the full catalog in insertion order.
func ListCourses(db *gorm.DB) ([]models.Course, error) {
	var courses []models.Course
	if err := db.Order("id asc").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

// FindCourseByID resolves a single course.
func FindCourseByID(db *gorm.DB, id uint) (*models.Course, error) {
	var course models.Course
	if err := db.First(&course, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return &course, nil
}
