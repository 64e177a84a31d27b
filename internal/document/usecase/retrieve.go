package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/spu-coder/my-ai-advisor/internal/document/repository"
	"github.com/spu-coder/my-ai-advisor/pkg/voyage"
)

// Retrieve embeds the question and returns matching excerpts as
// "[title]\ncontent" blocks.
func (uc *implUseCase) Retrieve(ctx context.Context, question string) (string, string, error) {
	if !uc.configured() {
		uc.l.Warnf(ctx, "internal.document.usecase.Retrieve: vector store not configured")
		return "", "", nil
	}

	vectors, err := uc.embedder.Embed(ctx, []string{question}, voyage.InputTypeQuery)
	if err != nil {
		return "", "", fmt.Errorf("embed question: %w", err)
	}
	if len(vectors) == 0 {
		return "", "", fmt.Errorf("embed question: no vector returned")
	}

	excerpts, err := uc.repo.Search(ctx, repository.SearchOptions{
		Vector:   vectors[0],
		Limit:    uc.cfg.TopK,
		MinScore: uc.cfg.MinScore,
	})
	if err != nil {
		return "", "", err
	}
	if len(excerpts) == 0 {
		return "", "", nil
	}

	blocks := make([]string, len(excerpts))
	seen := make(map[string]bool, len(excerpts))
	var titles []string
	for i, e := range excerpts {
		blocks[i] = fmt.Sprintf("[%s]\n%s", e.Title, e.Content)
		if e.Title != "" && !seen[e.Title] {
			seen[e.Title] = true
			titles = append(titles, e.Title)
		}
	}

	uc.l.Debugf(ctx, "internal.document.usecase.Retrieve: %d excerpts from %d documents", len(excerpts), len(titles))
	source := sourceUntitled
	if len(titles) > 0 {
		source = sourcePrefix + strings.Join(titles, titleSeparator)
	}
	return strings.Join(blocks, excerptSeparator), source, nil
}
