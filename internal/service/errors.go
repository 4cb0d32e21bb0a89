package service

import "errors"

var (
	ErrListingNotFound    = errors.New("listing not found")
	ErrListingValidation  = errors.New("invalid listing input")
	ErrCommentValidation  = errors.New("invalid comment input")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrStaleSearch        = errors.New("search superseded by a newer one")
)
