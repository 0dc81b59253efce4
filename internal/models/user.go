package models

import (
	"errors"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// MinPasswordLength is the minimum number of characters of a password.
const MinPasswordLength = 8

// User is a person using Cash Stuffing.
type User struct {
	DefaultModel
	Username     string `json:"username" gorm:"uniqueIndex" example:"anna"`
	PasswordHash string `json:"-"`
}

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Username = strings.TrimSpace(u.Username)
	if u.Username == "" {
		return ErrUsernameMissing
	}

	return nil
}

// SetPassword hashes the password with bcrypt.
func (u *User) SetPassword(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports if the password matches the stored hash.
func (u User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}

// Authenticate returns the user with the username if the password matches.
//
// Unknown users and wrong passwords both return ErrInvalidLogin.
func Authenticate(db *gorm.DB, username, password string) (User, error) {
	var user User
	err := db.Where(&User{Username: strings.TrimSpace(username)}).First(&user).Error
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return User{}, ErrInvalidLogin
		}
		return User{}, err
	}

	if !user.CheckPassword(password) {
		return User{}, ErrInvalidLogin
	}

	return user, nil
}
