package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Session is a login of a user. Its ID is sent to the client as cookie.
type Session struct {
	DefaultModel
	UserID    uuid.UUID `gorm:"index"`
	User      User      `json:"-"`
	ExpiresAt time.Time
}

// Expired reports if the session is expired at a point in time.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// NewSession creates a session for the user that is valid for the duration.
func NewSession(db *gorm.DB, userID uuid.UUID, ttl time.Duration) (Session, error) {
	s := Session{
		UserID:    userID,
		ExpiresAt: time.Now().In(time.UTC).Add(ttl),
	}

	err := db.Create(&s).Error
	return s, err
}

// ActiveSession returns the session with the ID if it is not expired.
//
// Expired sessions are deleted.
func ActiveSession(db *gorm.DB, id uuid.UUID) (Session, error) {
	var s Session
	err := db.First(&s, "id = ?", id).Error
	if err != nil {
		return Session{}, err
	}

	if s.Expired(time.Now()) {
		db.Delete(&s)
		return Session{}, ErrSessionExpired
	}

	return s, nil
}

// DeleteExpiredSessions removes all sessions that expired before now.
func DeleteExpiredSessions(db *gorm.DB, now time.Time) (int64, error) {
	result := db.Where("expires_at <= ?", now.In(time.UTC)).Delete(&Session{})
	return result.RowsAffected, result.Error
}
