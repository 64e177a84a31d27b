package gdrive

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// maxExportBytes caps a single exported document.
const maxExportBytes = 5 << 20

// Client wraps the Google Drive API service.
type Client struct {
	service *drive.Service
}

// NewClientFromCredentialsFile creates a Drive client from a credentials JSON
// file. OAuth desktop credentials read their token from tokenPath
// (default token.json).
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath, tokenPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, tokenPath)
}

// NewClientFromCredentialsJSON accepts Service Account JSON or OAuth installed
// app credentials plus a saved token.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, tokenPath string) (*Client, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, drive.DriveReadonlyScope)
	if err == nil {
		return newClient(ctx, option.WithTokenSource(config.TokenSource(ctx)))
	}

	oauthConfig, oauthErr := google.ConfigFromJSON(credentialsJSON, drive.DriveReadonlyScope)
	if oauthErr != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	if tokenPath == "" {
		tokenPath = defaultTokenPath
	}
	tokenData, err := os.ReadFile(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("google credentials are OAuth Desktop type but no %s found: run scripts/gdrive-auth first", tokenPath)
	}

	var tok oauth2.Token
	if err := json.Unmarshal(tokenData, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", tokenPath, err)
	}

	return newClient(ctx, option.WithTokenSource(oauthConfig.TokenSource(ctx, &tok)))
}

// NewClientFromHTTP creates a Drive client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	return newClient(ctx, option.WithHTTPClient(httpClient))
}

func newClient(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	svc, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}
	return &Client{service: svc}, nil
}

// ListTextFiles lists Google Docs and plain-text files directly inside folderID.
func (c *Client) ListTextFiles(ctx context.Context, folderID string) ([]File, error) {
	q := fmt.Sprintf("'%s' in parents and trashed = false and (mimeType = '%s' or mimeType = '%s' or mimeType = '%s')",
		strings.ReplaceAll(folderID, "'", `\'`), MimeGoogleDoc, MimePlainText, MimeMarkdown)

	var files []File
	call := c.service.Files.List().
		Q(q).
		Fields("nextPageToken, files(id, name, mimeType, modifiedTime)").
		PageSize(100)

	err := call.Pages(ctx, func(page *drive.FileList) error {
		for _, f := range page.Files {
			modified, _ := time.Parse(time.RFC3339, f.ModifiedTime)
			files = append(files, File{
				ID:           f.Id,
				Name:         f.Name,
				MimeType:     f.MimeType,
				ModifiedTime: modified,
			})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list drive files: %w", err)
	}

	return files, nil
}

// ReadText returns the file content as plain text. Google Docs are exported,
// other files are downloaded as-is.
func (c *Client) ReadText(ctx context.Context, f File) (string, error) {
	var (
		resp *http.Response
		err  error
	)
	if f.MimeType == MimeGoogleDoc {
		resp, err = c.service.Files.Export(f.ID, MimePlainText).Context(ctx).Download()
	} else {
		resp, err = c.service.Files.Get(f.ID).Context(ctx).Download()
	}
	if err != nil {
		return "", fmt.Errorf("failed to read drive file %s: %w", f.ID, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxExportBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read drive file %s body: %w", f.ID, err)
	}

	// Exported Docs start with a UTF-8 BOM.
	return strings.TrimPrefix(string(raw), "\uFEFF"), nil
}
