package http

import (
	"errors"
	"net/http"

	"github.com/spu-coder/my-ai-advisor/internal/advisor"
	pkgErrors "github.com/spu-coder/my-ai-advisor/pkg/errors"
)

var errEmptyAfterSanitize = errors.New("question is empty after sanitization")

// mapError translates advisor errors into HTTP errors from pkg/errors.
// Binding errors stay as they are and render as 400.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, advisor.ErrEmptyQuestion), errors.Is(err, errEmptyAfterSanitize):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Question cannot be empty / السؤال لا يمكن أن يكون فارغاً")
	case errors.Is(err, advisor.ErrQuestionTooLong):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Question is too long / السؤال طويل جداً")
	case errors.Is(err, advisor.ErrInvalidUserID):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid user_id format")
	case errors.Is(err, advisor.ErrForeignUser):
		return pkgErrors.NewHTTPError(http.StatusForbidden, "Cannot query for another user's data / لا يمكن الاستعلام عن بيانات مستخدم آخر")
	default:
		return err
	}
}
