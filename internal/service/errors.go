package service

import "errors"

var (
	// ErrEmptyNoteID is returned by Delete when no identifier was supplied.
	ErrEmptyNoteID = errors.New("note id is empty")
)
