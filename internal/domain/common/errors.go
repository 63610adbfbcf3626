package common

import "errors"

var (
	ErrNotFound       = errors.New("requested item not found")
	ErrBadRequest     = errors.New("bad request")
	ErrMissingMapping = errors.New("store mapping file is required")
	ErrMappingFormat  = errors.New("store mapping file must be .csv or .xlsx")
	ErrMissingSales   = errors.New("sales export file is required")
	ErrTooManyFiles   = errors.New("too many report files in one request")
	ErrNoTransactions = errors.New("no valid transaction data found")
	ErrSchemaMismatch = errors.New("input does not match the expected column layout")
)
