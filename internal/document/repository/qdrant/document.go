package qdrant

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/spu-coder/my-ai-advisor/internal/document"
	"github.com/spu-coder/my-ai-advisor/internal/document/repository"
	pkgQdrant "github.com/spu-coder/my-ai-advisor/pkg/qdrant"
)

// Payload keys
const (
	payloadDocumentID = "document_id"
	payloadTitle      = "title"
	payloadSource     = "source"
	payloadChunkIndex = "chunk_index"
	payloadContent    = "content"
)

// pointNamespace makes point ids deterministic per document chunk.
var pointNamespace = uuid.MustParse("8f14e45f-ceea-467f-a8c2-3b9e6f3f6a11")

func (r *implRepository) EnsureCollection(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ready {
		return nil
	}

	exists, err := r.client.CollectionExists(ctx, r.collectionName)
	if err != nil {
		r.l.Errorf(ctx, "document qdrant repository: collection check failed: %v", err)
		return fmt.Errorf("collection check: %w", err)
	}
	if !exists {
		err := r.client.CreateCollection(ctx, pkgQdrant.CreateCollectionRequest{
			Name: r.collectionName,
			Vectors: pkgQdrant.VectorConfig{
				Size:     r.vectorSize,
				Distance: pkgQdrant.DistanceCosine,
			},
		})
		if err != nil {
			r.l.Errorf(ctx, "document qdrant repository: create collection failed: %v", err)
			return fmt.Errorf("create collection: %w", err)
		}
		r.l.Infof(ctx, "document qdrant repository: created collection %s (size=%d)", r.collectionName, r.vectorSize)
	}

	r.ready = true
	return nil
}

func (r *implRepository) UpsertChunks(ctx context.Context, chunks []document.Chunk, vectors [][]float32) error {
	if len(chunks) != len(vectors) {
		return repository.ErrVectorCountMismatch
	}
	if len(chunks) == 0 {
		return nil
	}

	points := make([]pkgQdrant.Point, len(chunks))
	for i, c := range chunks {
		points[i] = pkgQdrant.Point{
			ID:     chunkPointID(c.DocumentID, c.Index),
			Vector: vectors[i],
			Payload: map[string]interface{}{
				payloadDocumentID: c.DocumentID,
				payloadTitle:      c.Title,
				payloadSource:     c.Source,
				payloadChunkIndex: c.Index,
				payloadContent:    c.Content,
			},
		}
	}

	if err := r.client.UpsertPoints(ctx, r.collectionName, pkgQdrant.UpsertPointsRequest{Points: points}); err != nil {
		r.l.Errorf(ctx, "document qdrant repository: upsert failed: %v", err)
		return fmt.Errorf("upsert points: %w", err)
	}
	return nil
}

func (r *implRepository) Search(ctx context.Context, opt repository.SearchOptions) ([]document.Excerpt, error) {
	threshold := opt.MinScore
	resp, err := r.client.SearchPoints(ctx, r.collectionName, pkgQdrant.SearchRequest{
		Vector:         opt.Vector,
		Limit:          opt.Limit,
		WithPayload:    true,
		ScoreThreshold: &threshold,
	})
	if err != nil {
		r.l.Errorf(ctx, "document qdrant repository: search failed: %v", err)
		return nil, fmt.Errorf("search points: %w", err)
	}

	excerpts := make([]document.Excerpt, 0, len(resp.Result))
	for _, p := range resp.Result {
		if p.Score < opt.MinScore {
			continue
		}
		content, _ := p.Payload[payloadContent].(string)
		if content == "" {
			r.l.Warnf(ctx, "document qdrant repository: point %v has no content", p.ID)
			continue
		}
		title, _ := p.Payload[payloadTitle].(string)
		excerpts = append(excerpts, document.Excerpt{Title: title, Content: content, Score: p.Score})
	}
	return excerpts, nil
}

// chunkPointID maps a chunk to a UUID, the id format Qdrant accepts.
func chunkPointID(documentID string, index int) string {
	return uuid.NewSHA1(pointNamespace, []byte(fmt.Sprintf("%s#%d", documentID, index))).String()
}
