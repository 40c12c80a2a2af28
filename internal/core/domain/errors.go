package domain

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrSeatUnavailable = errors.New("seat is not available")
	ErrInvalidVehicle  = errors.New("invalid vehicle")
)
