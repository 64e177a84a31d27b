package repository

// SearchOptions drives a similarity search. Hits scoring below MinScore
// are dropped.
type SearchOptions struct {
	Vector   []float32
	Limit    int
	MinScore float64
}
