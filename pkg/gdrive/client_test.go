package gdrive_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spu-coder/my-ai-advisor/pkg/gdrive"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

const mockCreds = `{
	"installed": {
		"client_id": "test-client-id.apps.googleusercontent.com",
		"project_id": "test-project",
		"auth_uri": "https://accounts.google.com/o/oauth2/auth",
		"token_uri": "https://oauth2.googleapis.com/token",
		"client_secret": "test-secret",
		"redirect_uris": ["http://localhost"]
	}
}`

func TestNewClientFromCredentialsJSON(t *testing.T) {
	dir := t.TempDir()

	t.Run("broken credentials", func(t *testing.T) {
		_, err := gdrive.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`), "")
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("installed app with token", func(t *testing.T) {
		tokenPath := filepath.Join(dir, "token.json")
		os.WriteFile(tokenPath, []byte(`{"access_token": "dummy", "token_type": "Bearer", "expiry": "2030-01-01T00:00:00Z"}`), 0o600)

		if _, err := gdrive.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), tokenPath); err != nil {
			t.Fatalf("expected parsing to succeed: %v", err)
		}
	})

	t.Run("installed app without token", func(t *testing.T) {
		_, err := gdrive.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), filepath.Join(dir, "missing.json"))
		if err == nil || !strings.Contains(err.Error(), "gdrive-auth") {
			t.Errorf("expected missing token error, got %v", err)
		}
	})

	t.Run("installed app with bad token", func(t *testing.T) {
		tokenPath := filepath.Join(dir, "bad.json")
		os.WriteFile(tokenPath, []byte(`{"broken": true`), 0o600)
		if _, err := gdrive.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), tokenPath); err == nil {
			t.Errorf("expected token parse error")
		}
	})
}

func TestDriveClient(t *testing.T) {
	var listQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasSuffix(r.URL.Path, "/files") && r.URL.Query().Get("pageToken") == "":
			listQuery = r.URL.Query().Get("q")
			w.Write([]byte(`{"nextPageToken":"p2","files":[{"id":"doc1","name":"لائحة الدراسة","mimeType":"application/vnd.google-apps.document","modifiedTime":"2025-01-10T08:00:00Z"}]}`))
		case strings.HasSuffix(r.URL.Path, "/files"):
			w.Write([]byte(`{"files":[{"id":"txt1","name":"faq.txt","mimeType":"text/plain"}]}`))
		case strings.HasSuffix(r.URL.Path, "/files/doc1/export"):
			if r.URL.Query().Get("mimeType") != "text/plain" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			w.Header().Set("Content-Type", "text/plain")
			w.Write([]byte("\uFEFFالمادة الأولى"))
		case strings.HasSuffix(r.URL.Path, "/files/txt1"):
			w.Header().Set("Content-Type", "text/plain")
			w.Write([]byte("plain body"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer ts.Close()

	host := strings.TrimPrefix(ts.URL, "http://")
	client, err := gdrive.NewClientFromHTTP(context.Background(), &http.Client{
		Transport: &rewriteTransport{Transport: http.DefaultTransport, Host: host},
	})
	if err != nil {
		t.Fatalf("NewClientFromHTTP() error = %v", err)
	}

	files, err := client.ListTextFiles(context.Background(), "folder-1")
	if err != nil {
		t.Fatalf("ListTextFiles() error = %v", err)
	}
	if len(files) != 2 || files[0].ID != "doc1" || files[1].ID != "txt1" {
		t.Fatalf("unexpected files: %+v", files)
	}
	if files[0].ModifiedTime.IsZero() {
		t.Errorf("expected modified time to be parsed")
	}
	if !strings.Contains(listQuery, "'folder-1' in parents") {
		t.Errorf("unexpected query %q", listQuery)
	}

	text, err := client.ReadText(context.Background(), files[0])
	if err != nil || text != "المادة الأولى" {
		t.Errorf("ReadText(doc) = %q, %v", text, err)
	}

	text, err = client.ReadText(context.Background(), files[1])
	if err != nil || text != "plain body" {
		t.Errorf("ReadText(txt) = %q, %v", text, err)
	}

	if _, err := client.ReadText(context.Background(), gdrive.File{ID: "nope", MimeType: "text/plain"}); err == nil {
		t.Errorf("expected error for missing file")
	}
}
