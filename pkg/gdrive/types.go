package gdrive

import "time"

const (
	MimeGoogleDoc = "application/vnd.google-apps.document"
	MimePlainText = "text/plain"
	MimeMarkdown  = "text/markdown"

	defaultTokenPath = "token.json"
)

// File is a Drive file that can be read as plain text.
type File struct {
	ID           string
	Name         string
	MimeType     string
	ModifiedTime time.Time
}
