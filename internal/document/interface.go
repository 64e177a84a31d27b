package document

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Retrieve returns the excerpts relevant to question and a label naming
	// their documents. Both are empty when nothing matched.
	Retrieve(ctx context.Context, question string) (context string, source string, err error)
	// Ingest chunks, embeds and stores documents.
	Ingest(ctx context.Context, docs []Document) (IngestOutput, error)
	// SyncDrive ingests every readable file of the configured Drive folder.
	SyncDrive(ctx context.Context) (SyncOutput, error)
}
