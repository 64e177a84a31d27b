package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/spu-coder/my-ai-advisor/internal/document"
	"github.com/spu-coder/my-ai-advisor/pkg/log"
)

type fakeUseCase struct {
	ingested []document.Document
	syncOut  document.SyncOutput
	err      error
}

func (f *fakeUseCase) Retrieve(ctx context.Context, question string) (string, string, error) {
	return "", "", nil
}

func (f *fakeUseCase) Ingest(ctx context.Context, docs []document.Document) (document.IngestOutput, error) {
	if f.err != nil {
		return document.IngestOutput{}, f.err
	}
	f.ingested = append(f.ingested, docs...)
	return document.IngestOutput{Documents: len(docs), Chunks: 2 * len(docs)}, nil
}

func (f *fakeUseCase) SyncDrive(ctx context.Context) (document.SyncOutput, error) {
	return f.syncOut, f.err
}

func newTestRouter(uc document.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(log.NewNop(), uc)
	r.POST("/ingest", h.Ingest)
	r.POST("/sync", h.Sync)
	return r
}

func post(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIngest(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		uc := &fakeUseCase{}
		w := post(newTestRouter(uc), "/ingest", `{"documents":[{"title":"لائحة","content":"نص"}]}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d body %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), `"chunks":2`) || len(uc.ingested) != 1 {
			t.Errorf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("missing content", func(t *testing.T) {
		uc := &fakeUseCase{}
		w := post(newTestRouter(uc), "/ingest", `{"documents":[{"title":"لائحة"}]}`)
		if w.Code != http.StatusBadRequest || len(uc.ingested) != 0 {
			t.Errorf("status = %d", w.Code)
		}
	})

	t.Run("empty list", func(t *testing.T) {
		if w := post(newTestRouter(&fakeUseCase{}), "/ingest", `{"documents":[]}`); w.Code != http.StatusBadRequest {
			t.Errorf("status = %d", w.Code)
		}
	})

	t.Run("not configured", func(t *testing.T) {
		w := post(newTestRouter(&fakeUseCase{err: document.ErrNotConfigured}), "/ingest", `{"documents":[{"title":"t","content":"c"}]}`)
		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("status = %d, want 503", w.Code)
		}
	})
}

func TestSync(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		uc := &fakeUseCase{syncOut: document.SyncOutput{Files: 3, Skipped: 1, Documents: 2, Chunks: 5}}
		w := post(newTestRouter(uc), "/sync", "")
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"skipped":1`) {
			t.Errorf("status = %d body %s", w.Code, w.Body.String())
		}
	})

	t.Run("drive not configured", func(t *testing.T) {
		w := post(newTestRouter(&fakeUseCase{err: document.ErrDriveNotConfigured}), "/sync", "")
		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("status = %d, want 503", w.Code)
		}
	})
}
