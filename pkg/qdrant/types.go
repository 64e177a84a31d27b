package qdrant

import "fmt"

// CreateCollectionRequest defines the schema for creating a collection.
type CreateCollectionRequest struct {
	Name    string       `json:"-"` // in URL
	Vectors VectorConfig `json:"vectors"`
}

// VectorConfig defines vector dimension and distance metric.
type VectorConfig struct {
	Size     int    `json:"size"`
	Distance string `json:"distance"` // "Cosine", "Euclid", "Dot"
}

const DistanceCosine = "Cosine"

// Point represents a vector with payload.
// Qdrant only accepts UUID strings or unsigned integers as ids.
type Point struct {
	ID      interface{}            `json:"id"`
	Vector  []float32              `json:"vector"`
	Payload map[string]interface{} `json:"payload"`
}

// UpsertPointsRequest is the request to insert/update points.
type UpsertPointsRequest struct {
	Points []Point `json:"points"`
}

// SearchRequest is the request for semantic search.
type SearchRequest struct {
	Vector         []float32              `json:"vector"`
	Limit          int                    `json:"limit"`
	WithPayload    bool                   `json:"with_payload"`
	ScoreThreshold *float64               `json:"score_threshold,omitempty"`
	Filter         map[string]interface{} `json:"filter,omitempty"`
}

// SearchResponse contains search results.
type SearchResponse struct {
	Result []ScoredPoint `json:"result"`
}

// ScoredPoint is a search result with similarity score.
type ScoredPoint struct {
	ID      interface{}            `json:"id"`
	Score   float64                `json:"score"`
	Payload map[string]interface{} `json:"payload"`
}

// DeletePointsRequest is the request to delete points.
type DeletePointsRequest struct {
	Points []string `json:"points"`
}

// APIError is a non-2xx answer from Qdrant.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("qdrant API error: %d %s", e.StatusCode, e.Body)
}
