package models_test

import (
	"time"

	"github.com/kdennisod/cash-stuffing/internal/models"
)

func (suite *TestSuiteStandard) TestUserUsernameUnique() {
	_ = suite.createTestUser("anna")

	duplicate := models.User{Username: " anna "}
	suite.Require().Nil(duplicate.SetPassword("another password"))

	err := models.DB.Create(&duplicate).Error
	suite.Assert().ErrorIs(err, models.ErrUsernameNotUnique)
}

func (suite *TestSuiteStandard) TestUserUsernameMissing() {
	err := models.DB.Create(&models.User{Username: "   "}).Error
	suite.Assert().ErrorIs(err, models.ErrUsernameMissing)
}

func (suite *TestSuiteStandard) TestUserPassword() {
	var user models.User
	suite.Assert().ErrorIs(user.SetPassword("short"), models.ErrPasswordTooShort)

	suite.Require().Nil(user.SetPassword("long enough"))
	suite.Assert().NotEqual("long enough", user.PasswordHash)
	suite.Assert().True(user.CheckPassword("long enough"))
	suite.Assert().False(user.CheckPassword("long enough!"))
}

func (suite *TestSuiteStandard) TestAuthenticate() {
	created := suite.createTestUser("ben")

	user, err := models.Authenticate(models.DB, " ben ", "correct horse battery")
	suite.Require().Nil(err)
	suite.Assert().Equal(created.ID, user.ID)

	_, err = models.Authenticate(models.DB, "ben", "wrong password")
	suite.Assert().ErrorIs(err, models.ErrInvalidLogin)

	_, err = models.Authenticate(models.DB, "nobody", "correct horse battery")
	suite.Assert().ErrorIs(err, models.ErrInvalidLogin)
}

func (suite *TestSuiteStandard) TestAuthenticateDBError() {
	suite.CloseDB()

	_, err := models.Authenticate(models.DB, "ben", "correct horse battery")
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}

func (suite *TestSuiteStandard) TestSessions() {
	user := suite.createTestUser("carla")

	s, err := models.NewSession(models.DB, user.ID, time.Hour)
	suite.Require().Nil(err)

	active, err := models.ActiveSession(models.DB, s.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(user.ID, active.UserID)

	expired, err := models.NewSession(models.DB, user.ID, -time.Minute)
	suite.Require().Nil(err)

	_, err = models.ActiveSession(models.DB, expired.ID)
	suite.Assert().ErrorIs(err, models.ErrSessionExpired)

	_, err = models.ActiveSession(models.DB, expired.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound, "expired sessions are deleted on access")
}

func (suite *TestSuiteStandard) TestDeleteExpiredSessions() {
	user := suite.createTestUser("dora")

	_, err := models.NewSession(models.DB, user.ID, -time.Hour)
	suite.Require().Nil(err)
	_, err = models.NewSession(models.DB, user.ID, time.Hour)
	suite.Require().Nil(err)

	deleted, err := models.DeleteExpiredSessions(models.DB, time.Now())
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(1), deleted)
}
