package entity

import (
	"errors"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrAlreadyPaid      = errors.New("already paid")
	ErrAlreadyCancelled = errors.New("already cancelled")
	ErrDuplicateNumber  = errors.New("duplicate number")
	ErrNoRecipient      = errors.New("no recipient email address")
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrForbidden        = errors.New("forbidden")
)
