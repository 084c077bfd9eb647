package util

import "errors"

var (
	ErrMissingCredentials = errors.New("Username and password are required")
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrInvalidBackup      = errors.New("Invalid backup file structure.")
)
