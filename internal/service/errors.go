package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	// ErrNothingToAdd is returned by AddContribution when both the review
	// text and the note text are empty.
	ErrNothingToAdd = errors.New("neither review nor note was provided")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
