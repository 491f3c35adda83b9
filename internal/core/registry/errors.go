package registry

import "errors"

var (
	ErrInvalidID    = errors.New("object id is empty")
	ErrDuplicateID  = errors.New("object id already registered")
	ErrKindMismatch = errors.New("object kind does not match table")
	ErrNilObject    = errors.New("nil object")
)
