package http

import (
	"errors"
	"net/http"

	"github.com/spu-coder/my-ai-advisor/internal/progress"
	pkgErrors "github.com/spu-coder/my-ai-advisor/pkg/errors"
)

var (
	errDemoAnalyze        = errors.New("demo mode cannot analyze progress")
	errAnalyzeForeignUser = errors.New("cannot analyze progress for another user")
	errRecordForeignUser  = errors.New("cannot record progress for another user")
	errStudentsOnly       = errors.New("students only")
)

// mapError translates progress errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, errDemoAnalyze):
		return pkgErrors.NewHTTPError(http.StatusForbidden, "الوضع التجريبي لا يدعم تحليل التقدم الشخصي")
	case errors.Is(err, errAnalyzeForeignUser):
		return pkgErrors.NewHTTPError(http.StatusForbidden, "Cannot analyze progress for another user")
	case errors.Is(err, errRecordForeignUser):
		return pkgErrors.NewHTTPError(http.StatusForbidden, "Cannot record progress for another user")
	case errors.Is(err, errStudentsOnly):
		return pkgErrors.NewHTTPError(http.StatusForbidden, "هذه الميزة متاحة للطلاب فقط")
	case errors.Is(err, progress.ErrStudentNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "Student not found")
	case errors.Is(err, progress.ErrInvalidGrade),
		errors.Is(err, progress.ErrMissingGrade),
		errors.Is(err, progress.ErrInvalidHours),
		errors.Is(err, progress.ErrInvalidGPA),
		errors.Is(err, progress.ErrInvalidCourse):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
