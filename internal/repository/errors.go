package repository

import "errors"

var (
	ErrOwnerNotFound    = errors.New("owner not found")
	ErrPropertyNotFound = errors.New("property not found")
	ErrImageNotFound    = errors.New("property image not found")
)
