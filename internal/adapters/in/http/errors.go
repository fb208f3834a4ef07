package http

import (
	"errors"
	"net/http"
	"strings"

	"kurye/internal/core/domain/model/assignment"
	"kurye/internal/core/domain/model/courier"
	"kurye/internal/core/domain/services"
	"kurye/internal/core/ports"
	"kurye/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// errorResponse is the JSON body returned for every failed request.
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError translates domain and infrastructure failures into HTTP
// status codes. Rejected discounts carry a stable reason key which is
// localized for the caller before leaving the API.
func (s *Server) respondError(ctx echo.Context, err error) error {
	var discountErr *services.DiscountRejectedError
	if errors.As(err, &discountErr) {
		message := s.localization.Localize(discountErr.ReasonKey, requestLanguage(ctx))
		return writeError(ctx, http.StatusUnprocessableEntity, message)
	}

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return writeError(ctx, http.StatusNotFound, err.Error())

	case errors.Is(err, ports.ErrConcurrencyConflict),
		errors.Is(err, assignment.ErrStateTransition),
		errors.Is(err, courier.ErrCourierCannotTakeOrder):
		return writeError(ctx, http.StatusConflict, err.Error())

	case errors.Is(err, services.ErrVendorInactive):
		return writeError(ctx, http.StatusUnprocessableEntity, err.Error())

	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	s.logger.ErrorContext(ctx.Request().Context(), "Request failed",
		"method", ctx.Request().Method,
		"path", ctx.Path(),
		"error", err)
	return writeError(ctx, http.StatusInternalServerError, "internal error")
}

// respondBadRequest covers malformed payloads and command construction
// failures, which are always the caller's fault.
func respondBadRequest(ctx echo.Context, err error) error {
	return writeError(ctx, http.StatusBadRequest, err.Error())
}

func writeError(ctx echo.Context, status int, message string) error {
	return ctx.JSON(status, errorResponse{Code: status, Message: message})
}

// requestLanguage picks the locale for the response: an explicit lang
// query parameter wins, then the Accept-Language header, then Turkish.
func requestLanguage(ctx echo.Context) string {
	if lang := ctx.QueryParam("lang"); lang != "" {
		return lang
	}
	header := ctx.Request().Header.Get("Accept-Language")
	if header == "" {
		return "tr"
	}
	lang := header
	for _, sep := range []string{",", ";", "-"} {
		if idx := strings.Index(lang, sep); idx >= 0 {
			lang = lang[:idx]
		}
	}
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return "tr"
	}
	return strings.ToLower(lang)
}
