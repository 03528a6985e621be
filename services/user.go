package services

import (
	"errors"
	"log"

	"peer2learn/config"
	"peer2learn/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RegisterUser creates a new user with the initial points balance.
// The username must be unique; the password is stored as a bcrypt hash.
func RegisterUser(db *gorm.DB, username, password string) (*models.User, error) {
	// Check if username already exists
	if err := db.Where("username = ?", username).First(&models.User{}).Error; err == nil {
		return nil, ErrDuplicateUsername
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return nil, err
	}

	user := models.User{
		Username: username,
		Password: string(hashedPassword),
		Points:   models.InitialPoints,
	}

	if err := db.Create(&user).Error; err != nil {
		// The unique index backs the check above under concurrent registration.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateUsername
		}
		return nil, err
	}

	return &user, nil
}

// FindUserByUsername resolves a user record by its unique username.
func FindUserByUsername(db *gorm.DB, username string) (*models.User, error) {
	var user models.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Authenticate checks a username/password pair and returns the user on success.
func Authenticate(db *gorm.DB, username, password string) (*models.User, error) {
	var user models.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

// Ranking returns all users ordered by points descending.
func Ranking(db *gorm.DB) ([]models.User, error) {
	var users []models.User
	if err := db.Order("points desc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
