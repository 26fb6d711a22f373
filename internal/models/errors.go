package models

import "errors"

var (
	// ErrValidation marks malformed input (bad URL, empty required field).
	ErrValidation = errors.New("invalid input")

	// ErrNotFound marks an update or delete against a missing row.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate marks a category id collision on explicit creation.
	ErrDuplicate = errors.New("already exists")

	// ErrNoURLs marks an import request whose text contains no URLs.
	ErrNoURLs = errors.New("no URLs found in text")
)
