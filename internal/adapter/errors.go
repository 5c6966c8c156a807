package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("relay rejected request")
	ErrUnauthorized        = errors.New("relay unauthorized")
	ErrNotFound            = errors.New("relay endpoint not found")
	ErrBadGateway          = errors.New("relay bad gateway")
	ErrInternalServerError = errors.New("relay internal server error")

	ErrMissingAssignedFilename = errors.New("relay response missing assigned filename")
)
