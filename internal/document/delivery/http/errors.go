package http

import (
	"errors"
	"net/http"

	"github.com/spu-coder/my-ai-advisor/internal/document"
	pkgErrors "github.com/spu-coder/my-ai-advisor/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, document.ErrNotConfigured), errors.Is(err, document.ErrDriveNotConfigured):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, document.ErrEmptyDocument), errors.Is(err, document.ErrNoDocuments):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
