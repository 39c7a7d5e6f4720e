package handler

import (
	stderrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"floodwatch/internal/errors"
	"floodwatch/internal/objectstore"
)

// MediaHandler serves stored objects at their public URL.
type MediaHandler struct {
	store objectstore.Reader
}

// NewMediaHandler creates a new media handler.
func NewMediaHandler(store objectstore.Reader) *MediaHandler {
	return &MediaHandler{store: store}
}

// Serve godoc
// @Summary Fetch a stored object
// @Tags media
// @Produce octet-stream
// @Param key path string true "Object key, e.g. posts/{id}.png"
// @Success 200 {file} binary
// @Failure 404 {object} errors.ErrorResponse
// @Router /media/{key} [get]
func (h *MediaHandler) Serve(c echo.Context) error {
	rc, contentType, err := h.store.Open(c.Request().Context(), c.Param("*"))
	if stderrors.Is(err, objectstore.ErrNotFound) || stderrors.Is(err, objectstore.ErrInvalidKey) {
		return echo.NewHTTPError(http.StatusNotFound, errors.ErrorResponse{
			Error: "object not found",
			Code:  "NOT_FOUND",
		})
	}
	if err != nil {
		return errorResponse(c, err)
	}
	defer rc.Close()

	c.Response().Header().Set("Cache-Control", "public, max-age=86400")
	return c.Stream(http.StatusOK, contentType, rc)
}
