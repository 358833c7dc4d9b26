package domain

import "errors"

var (
	ErrHackathonNotFound = errors.New("hackathon not found")
)

var (
	ErrInvalidWindow = errors.New("invalid hackathon window")
	ErrPersistence   = errors.New("persistence error")
)

var (
	ErrSlugTaken = errors.New("slug is already taken")
)

var (
	ErrValidation   = errors.New("validation error")
	ErrInvalidPhase = errors.New("invalid phase")
)
