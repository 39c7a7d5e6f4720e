package handler

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"floodwatch/internal/auth"
	"floodwatch/internal/errors"
	"floodwatch/internal/logger"
	"floodwatch/internal/objectstore"
)

// SuccessResponse acknowledges a write that returns no entity.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// errorResponse converts a service error into an echo HTTP error. Internal
// errors are logged here, once, with the request id; the client only sees a
// generic message.
func errorResponse(c echo.Context, err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	if httpErr.StatusCode == http.StatusInternalServerError {
		logger.Error("request failed",
			"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
	}
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

func badRequest(msg string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: msg,
		Code:  "BAD_REQUEST",
	})
}

// bindAndValidate binds the request into req and runs its validate tags.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return badRequest("invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return badRequest(err.Error())
	}
	return nil
}

// formValue returns the first non-empty form field among names.
func formValue(c echo.Context, names ...string) string {
	for _, name := range names {
		if v := strings.TrimSpace(c.FormValue(name)); v != "" {
			return v
		}
	}
	return ""
}

// optionalForm returns a pointer to the field value when the field was sent at all.
func optionalForm(c echo.Context, names ...string) (*string, error) {
	params, err := c.FormParams()
	if err != nil {
		return nil, badRequest("invalid form body")
	}
	for _, name := range names {
		if values, ok := params[name]; ok && len(values) > 0 {
			v := strings.TrimSpace(values[0])
			return &v, nil
		}
	}
	return nil, nil
}

func queryBool(c echo.Context, name string, def bool) (bool, error) {
	v := c.QueryParam(name)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, badRequest(fmt.Sprintf("%s must be a boolean", name))
	}
	return b, nil
}

func queryInt(c echo.Context, name string) (int, error) {
	v := c.QueryParam(name)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, badRequest(fmt.Sprintf("%s must be an integer", name))
	}
	return n, nil
}

// readImage reads an uploaded image field. A missing file yields nil unless required.
func readImage(c echo.Context, field string, maxBytes int64, required bool) (*objectstore.Upload, error) {
	fh, err := c.FormFile(field)
	if stderrors.Is(err, http.ErrMissingFile) {
		if required {
			return nil, badRequest(field + " is required")
		}
		return nil, nil
	}
	if err != nil {
		return nil, badRequest("invalid multipart form")
	}

	f, err := fh.Open()
	if err != nil {
		return nil, errorResponse(c, fmt.Errorf("open upload: %w", err))
	}
	defer f.Close()

	upload, err := objectstore.ReadImage(f, fh.Filename, maxBytes)
	switch {
	case err == nil:
		return upload, nil
	case stderrors.Is(err, objectstore.ErrTooLarge):
		return nil, echo.NewHTTPError(http.StatusRequestEntityTooLarge, errors.ErrorResponse{
			Error: fmt.Sprintf("%s exceeds %d bytes", field, maxBytes),
			Code:  "FILE_TOO_LARGE",
		})
	case stderrors.Is(err, objectstore.ErrNotImage), stderrors.Is(err, objectstore.ErrEmpty):
		return nil, badRequest(fmt.Sprintf("%s: %v", field, err))
	default:
		return nil, errorResponse(c, fmt.Errorf("read upload: %w", err))
	}
}

// userClaims returns the claims of the JWT validated by the echo-jwt middleware.
func userClaims(c echo.Context) (*auth.Claims, bool) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil, false
	}
	claims, ok := token.Claims.(*auth.Claims)
	return claims, ok
}
