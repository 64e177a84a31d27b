package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/spu-coder/my-ai-advisor/internal/document"
	"github.com/spu-coder/my-ai-advisor/pkg/voyage"
)

// Ingest validates all documents before storing any of them.
func (uc *implUseCase) Ingest(ctx context.Context, docs []document.Document) (document.IngestOutput, error) {
	if !uc.configured() {
		return document.IngestOutput{}, document.ErrNotConfigured
	}
	if len(docs) == 0 {
		return document.IngestOutput{}, document.ErrNoDocuments
	}

	var chunks []document.Chunk
	for i, doc := range docs {
		doc.Title = strings.TrimSpace(doc.Title)
		if doc.Title == "" || strings.TrimSpace(doc.Content) == "" {
			return document.IngestOutput{}, fmt.Errorf("%w: document %d", document.ErrEmptyDocument, i)
		}
		if doc.ID == "" {
			doc.ID = documentID(doc.Title)
		}
		if doc.Source == "" {
			doc.Source = apiSource
		}
		chunks = append(chunks, chunkDocument(doc)...)
	}

	if err := uc.repo.EnsureCollection(ctx); err != nil {
		return document.IngestOutput{}, err
	}

	for start := 0; start < len(chunks); start += embedBatchSize {
		end := start + embedBatchSize
		if end > len(chunks) {
			end = len(chunks)
		}
		batch := chunks[start:end]

		texts := make([]string, len(batch))
		for i, c := range batch {
			texts[i] = c.Content
		}
		vectors, err := uc.embedder.Embed(ctx, texts, voyage.InputTypeDocument)
		if err != nil {
			return document.IngestOutput{}, fmt.Errorf("embed chunks: %w", err)
		}
		if err := uc.repo.UpsertChunks(ctx, batch, vectors); err != nil {
			return document.IngestOutput{}, err
		}
	}

	uc.l.Infof(ctx, "internal.document.usecase.Ingest: %d documents, %d chunks", len(docs), len(chunks))
	return document.IngestOutput{Documents: len(docs), Chunks: len(chunks)}, nil
}
