package http

import (
	"errors"
	"net/http"

	"github.com/spu-coder/my-ai-advisor/internal/graph"
	pkgErrors "github.com/spu-coder/my-ai-advisor/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, graph.ErrInvalidCourseCode), errors.Is(err, graph.ErrInvalidSkill):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "Error querying graph data")
	}
}
