package store

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is matching.
var (
	ErrDuplicateID  = errors.New("duplicate id")
	ErrUnknownShape = errors.New("unknown shape")
)

// DuplicateIDError is returned when inserting an id that already exists.
type DuplicateIDError struct {
	ID int
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("shape %d: duplicate id", e.ID)
}

func (e *DuplicateIDError) Is(target error) bool { return target == ErrDuplicateID }

// UnknownShapeError is returned when an operation names an absent id.
type UnknownShapeError struct {
	ID int
}

func (e *UnknownShapeError) Error() string {
	return fmt.Sprintf("shape %d: unknown shape", e.ID)
}

func (e *UnknownShapeError) Is(target error) bool { return target == ErrUnknownShape }
