package services

import (
	"errors"
	"fmt"
)

// ErrTagExists is returned when a tag create or rename collides with
// an existing tag name.
var ErrTagExists = errors.New("that tag already exists")

// UnknownTagError reports a submitted tag name that resolves to no
// existing tag. It carries the name so forms can point at the
// offending value instead of failing opaquely.
type UnknownTagError struct {
	Name string
}

func (e *UnknownTagError) Error() string {
	return fmt.Sprintf("tag %q does not exist", e.Name)
}
