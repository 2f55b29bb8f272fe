package domain

import "errors"

var (
	ErrUnknownReport   = errors.New("unknown report")
	ErrStorageDisabled = errors.New("object storage is not configured")
)
