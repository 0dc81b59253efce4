package controllers

import "errors"

var (
	errNotLoggedIn   = errors.New("you must be logged in to use this endpoint")
	errMissingData   = errors.New("the data field must be set")
	errNoFilePost    = errors.New("you must send a file in the receipt field to this endpoint")
	errWrongFileType = errors.New("this endpoint only supports files of the following types: png, jpg, jpeg")
	errFileTooLarge  = errors.New("the uploaded file is too large")
)
