package services

import "errors"

var (
	// ErrNoFieldsToUpdate is returned when a partial update carries no
	// whitelisted columns.
	ErrNoFieldsToUpdate = errors.New("no fields to update")

	// ErrNotConfigured is returned when an integration is used before its
	// credentials are saved in settings.
	ErrNotConfigured = errors.New("not configured")
)
