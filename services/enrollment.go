package services

import (
	"errors"

	"peer2learn/models"

	"gorm.io/gorm"
)

// Enroll spends models.EnrollCost points and records the enrollment as a
// single atomic unit. A missing course fails before points are touched.
// The deduction uses a guarded UPDATE so that two concurrent enrollments
// for the same user cannot both observe a sufficient balance; the balance
// never goes negative.
//
// There is no prior-enrollment check: enrolling in the same course again
// is allowed and costs points again.
func Enroll(db *gorm.DB, userID, courseID uint) (*models.Enrollment, error) {
	course, err := FindCourseByID(db, courseID)
	if err != nil {
		return nil, err
	}

	var enrollment models.Enrollment
	err = db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		// Deduct only when the balance still covers the cost at write time.
		res := tx.Model(&models.User{}).
			Where("id = ? AND points >= ?", userID, models.EnrollCost).
			UpdateColumn("points", gorm.Expr("points - ?", models.EnrollCost))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInsufficientPoints
		}

		enrollment = models.Enrollment{
			UserID:   userID,
			CourseID: course.ID,
		}
		return tx.Create(&enrollment).Error
	})
	if err != nil {
		return nil, err
	}

	return &enrollment, nil
}

// UserCourseNames returns the names of the courses a user is enrolled in,
// in enrollment order. Repeat enrollments appear once per row.
func UserCourseNames(db *gorm.DB, userID uint) ([]string, error) {
	var enrollments []models.Enrollment
	if err := db.Where("user_id = ?", userID).
		Preload("Course").
		Order("id asc").
		Find(&enrollments).Error; err != nil {
		return nil, err
	}

	names := make([]string, 0, len(enrollments))
	for _, e := range enrollments {
		names = append(names, e.Course.Name)
	}
	return names, nil
}
