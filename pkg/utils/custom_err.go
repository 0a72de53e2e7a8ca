package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrPlaceNotFound      = errors.New("place not found")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	ErrDatabaseError      = errors.New("database error")
)
