package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/spu-coder/my-ai-advisor/internal/document"
)

// SyncDrive ingests the readable files of the configured folder. Files that
// fail to read or are empty are skipped and counted.
func (uc *implUseCase) SyncDrive(ctx context.Context) (document.SyncOutput, error) {
	if uc.drive == nil || uc.cfg.DriveFolderID == "" {
		return document.SyncOutput{}, document.ErrDriveNotConfigured
	}
	if !uc.configured() {
		return document.SyncOutput{}, document.ErrNotConfigured
	}

	files, err := uc.drive.ListTextFiles(ctx, uc.cfg.DriveFolderID)
	if err != nil {
		return document.SyncOutput{}, fmt.Errorf("list drive files: %w", err)
	}

	out := document.SyncOutput{Files: len(files)}
	docs := make([]document.Document, 0, len(files))
	for _, f := range files {
		text, err := uc.drive.ReadText(ctx, f)
		if err != nil {
			uc.l.Warnf(ctx, "internal.document.usecase.SyncDrive: skip %s (%s): %v", f.Name, f.ID, err)
			out.Skipped++
			continue
		}
		if strings.TrimSpace(text) == "" {
			out.Skipped++
			continue
		}
		docs = append(docs, document.Document{
			ID:      "gdrive:" + f.ID,
			Title:   strings.TrimSpace(f.Name),
			Content: text,
			Source:  driveSource,
		})
	}
	if len(docs) == 0 {
		return out, nil
	}

	res, err := uc.Ingest(ctx, docs)
	if err != nil {
		return out, err
	}
	out.Documents = res.Documents
	out.Chunks = res.Chunks
	return out, nil
}
