package http

import (
	"github.com/spu-coder/my-ai-advisor/internal/document"
)

// --- Request DTOs ---

type documentReq struct {
	ID      string `json:"id"`
	Title   string `json:"title"   binding:"required"`
	Content string `json:"content" binding:"required"`
}

type ingestReq struct {
	Documents []documentReq `json:"documents" binding:"required,min=1,dive"`
}

func (r ingestReq) toInput() []document.Document {
	docs := make([]document.Document, len(r.Documents))
	for i, d := range r.Documents {
		docs[i] = document.Document{ID: d.ID, Title: d.Title, Content: d.Content}
	}
	return docs
}

// --- Response DTOs ---

type ingestResp struct {
	Documents int `json:"documents"`
	Chunks    int `json:"chunks"`
}

type syncResp struct {
	Files     int `json:"files"`
	Skipped   int `json:"skipped"`
	Documents int `json:"documents"`
	Chunks    int `json:"chunks"`
}

func newSyncResp(out document.SyncOutput) syncResp {
	return syncResp{
		Files:     out.Files,
		Skipped:   out.Skipped,
		Documents: out.Documents,
		Chunks:    out.Chunks,
	}
}
