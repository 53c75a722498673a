package flatten

import "errors"

var (
	ErrNotAnObject = errors.New("not a json object")
	ErrNotAnArray  = errors.New("not a json array")
	ErrMissing     = errors.New("missing value")
	ErrType        = errors.New("unexpected type")
)
