package document

// Document is an official university document as plain text.
type Document struct {
	// ID is stable across re-ingestion. Derived from Title when empty.
	ID      string
	Title   string
	Content string
	Source  string
}

// Chunk is the unit that gets embedded and searched.
type Chunk struct {
	DocumentID string
	Title      string
	Source     string
	Index      int
	Content    string
}

// Excerpt is a chunk returned by a similarity search.
type Excerpt struct {
	Title   string
	Content string
	Score   float64
}

type IngestOutput struct {
	Documents int
	Chunks    int
}

type SyncOutput struct {
	Files     int
	Skipped   int
	Documents int
	Chunks    int
}
