package document

import "errors"

var (
	ErrNotConfigured      = errors.New("document store is not configured")
	ErrDriveNotConfigured = errors.New("google drive source is not configured")
	ErrNoDocuments        = errors.New("no documents to ingest")
	ErrEmptyDocument      = errors.New("document title and content are required")
)
