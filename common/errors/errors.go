package errors

import "errors"

var (
	ErrSchemaIsNil  = errors.New("schema is nil")
	ErrTypeMismatch = errors.New("literal type does not match column type")
)
