package voyage

import "time"

const (
	DefaultBaseURL = "https://api.voyageai.com/v1"
	// voyage-multilingual-2 handles Arabic; 1024 dimensions.
	DefaultModel   = "voyage-multilingual-2"
	DefaultTimeout = 30 * time.Second

	embeddingsPath = "/embeddings"
)

// InputType tells Voyage whether the text is a search query or a stored document.
type InputType string

const (
	InputTypeQuery    InputType = "query"
	InputTypeDocument InputType = "document"
)
