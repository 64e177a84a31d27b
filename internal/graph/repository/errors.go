package repository

import "errors"

var (
	ErrFailedToList    = errors.New("failed to list skills")
	ErrFailedToReplace = errors.New("failed to replace skills")
)
