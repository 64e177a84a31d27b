package usecase

import (
	"strings"

	"github.com/google/uuid"

	"github.com/spu-coder/my-ai-advisor/internal/document"
)

var documentNamespace = uuid.MustParse("3d1c7a52-5b7e-4c1e-9a40-6f2b8e1d0c77")

// splitText cuts text into windows of size runes that overlap by overlap
// runes. Blank windows are dropped.
func splitText(text string, size, overlap int) []string {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}

	step := size - overlap
	if step <= 0 {
		step = size
	}

	var out []string
	for start := 0; start < len(runes); start += step {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		if chunk := strings.TrimSpace(string(runes[start:end])); chunk != "" {
			out = append(out, chunk)
		}
		if end == len(runes) {
			break
		}
	}
	return out
}

func chunkDocument(doc document.Document) []document.Chunk {
	parts := splitText(doc.Content, chunkSize, chunkOverlap)
	chunks := make([]document.Chunk, len(parts))
	for i, p := range parts {
		chunks[i] = document.Chunk{
			DocumentID: doc.ID,
			Title:      doc.Title,
			Source:     doc.Source,
			Index:      i,
			Content:    p,
		}
	}
	return chunks
}

func documentID(title string) string {
	return uuid.NewSHA1(documentNamespace, []byte(title)).String()
}
