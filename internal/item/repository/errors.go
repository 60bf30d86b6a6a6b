package repository

import "errors"

var (
	ErrNoSnapshot     = errors.New("no snapshot stored")
	ErrUnknownDriver  = errors.New("unknown snapshot driver")
	ErrNothingToPatch = errors.New("update has no fields")
)
