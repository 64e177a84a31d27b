package usecase

const (
	defaultTopK = 4

	chunkSize    = 1000
	chunkOverlap = 150

	// Voyage accepts at most 128 inputs per request.
	embedBatchSize = 64

	sourceUntitled   = "المستندات الرسمية"
	sourcePrefix     = sourceUntitled + ": "
	titleSeparator   = "، "
	excerptSeparator = "\n\n"

	driveSource = "google_drive"
	apiSource   = "api"
)
