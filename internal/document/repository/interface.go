package repository

import (
	"context"

	"github.com/spu-coder/my-ai-advisor/internal/document"
)

// Repository is the vector store of document chunks.
type Repository interface {
	// EnsureCollection creates the collection on first use.
	EnsureCollection(ctx context.Context) error
	// UpsertChunks stores chunks with their vectors; len(chunks) == len(vectors).
	UpsertChunks(ctx context.Context, chunks []document.Chunk, vectors [][]float32) error
	Search(ctx context.Context, opt SearchOptions) ([]document.Excerpt, error)
}
