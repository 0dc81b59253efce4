package models

import "errors"

var (
	ErrGeneral           = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound  = errors.New("there is no")
	ErrUsernameNotUnique = errors.New("the username is already taken")
	ErrUsernameMissing   = errors.New("the username must not be empty")
	ErrPasswordTooShort  = errors.New("the password must have at least 8 characters")
	ErrInvalidLogin      = errors.New("invalid username or password")
	ErrPeriodNotUnique   = errors.New("the user already has a budget for this period")
	ErrSessionExpired    = errors.New("the session has expired, please log in again")
)
