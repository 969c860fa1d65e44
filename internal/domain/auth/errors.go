package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid employee code or password")
	ErrAccountInactive    = errors.New("account is deactivated, contact administrator")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
