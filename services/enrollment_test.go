package services_test

import (
	"testing"

	"peer2learn/models"
	"peer2learn/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnroll_Success(t *testing.T) {
	db := newTestDB(t)

	user, err := services.RegisterUser(db, "alice", "pw1")
	require.NoError(t, err)

	enrollment, err := services.Enroll(db, user.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, user.ID, enrollment.UserID)
	assert.EqualValues(t, 1, enrollment.CourseID)

	var fresh models.User
	require.NoError(t, db.First(&fresh, user.ID).Error)
	assert.Equal(t, models.InitialPoints-models.EnrollCost, fresh.Points)

	var count int64
	require.NoError(t, db.Model(&models.Enrollment{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestEnroll_InsufficientPoints(t *testing.T) {
	db := newTestDB(t)

	user := models.User{Username: "bob", Password: "x", Points: 5}
	require.NoError(t, db.Create(&user).Error)

	_, err := services.Enroll(db, user.ID, 1)
	assert.ErrorIs(t, err, services.ErrInsufficientPoints)

	var fresh models.User
	require.NoError(t, db.First(&fresh, user.ID).Error)
	assert.Equal(t, 5, fresh.Points, "a denied enrollment must not touch the balance")

	var count int64
	require.NoError(t, db.Model(&models.Enrollment{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestEnroll_CourseNotFound(t *testing.T) {
	db := newTestDB(t)

	user, err := services.RegisterUser(db, "alice", "pw1")
	require.NoError(t, err)

	_, err = services.Enroll(db, user.ID, 999)
	assert.ErrorIs(t, err, services.ErrCourseNotFound)

	var fresh models.User
	require.NoError(t, db.First(&fresh, user.ID).Error)
	assert.Equal(t, models.InitialPoints, fresh.Points)
}

func TestEnroll_UserNotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := services.Enroll(db, 999, 1)
	assert.ErrorIs(t, err, services.ErrUserNotFound)
}

// Enrolling twice in the same course is allowed and charged twice. The
// source application never deduplicated enrollments; that behavior is kept
// as an explicit policy.
func TestEnroll_DuplicateEnrollmentAllowed(t *testing.T) {
	db := newTestDB(t)

	user := models.User{Username: "carol", Password: "x", Points: 2 * models.EnrollCost}
	require.NoError(t, db.Create(&user).Error)

	_, err := services.Enroll(db, user.ID, 2)
	require.NoError(t, err)
	_, err = services.Enroll(db, user.ID, 2)
	require.NoError(t, err)

	var fresh models.User
	require.NoError(t, db.First(&fresh, user.ID).Error)
	assert.Zero(t, fresh.Points)

	var count int64
	require.NoError(t, db.Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ?", user.ID, 2).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

// Register alice -> 10 points. Enroll in Matematika (id 1) -> 0 points and
// one enrollment. A second course is then unaffordable.
func TestEnroll_Scenario(t *testing.T) {
	db := newTestDB(t)

	user, err := services.RegisterUser(db, "alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, 10, user.Points)

	enrollment, err := services.Enroll(db, user.ID, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, enrollment.CourseID)

	var fresh models.User
	require.NoError(t, db.First(&fresh, user.ID).Error)
	assert.Zero(t, fresh.Points)

	_, err = services.Enroll(db, user.ID, 3)
	assert.ErrorIs(t, err, services.ErrInsufficientPoints)

	require.NoError(t, db.First(&fresh, user.ID).Error)
	assert.Zero(t, fresh.Points)

	names, err := services.UserCourseNames(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Matematika"}, names)
}

func TestUserCourseNames_Order(t *testing.T) {
	db := newTestDB(t)

	user := models.User{Username: "dave", Password: "x", Points: 3 * models.EnrollCost}
	require.NoError(t, db.Create(&user).Error)

	for _, courseID := range []uint{4, 1, 3} {
		_, err := services.Enroll(db, user.ID, courseID)
		require.NoError(t, err)
	}

	names, err := services.UserCourseNames(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Dasturlash", "Matematika", "Fizika"}, names)
}
