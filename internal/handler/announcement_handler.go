package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"floodwatch/internal/model"
	"floodwatch/internal/service"
)

// AnnouncementHandler handles announcement endpoints.
type AnnouncementHandler struct {
	svc service.AnnouncementService
}

// NewAnnouncementHandler creates a new announcement handler.
func NewAnnouncementHandler(svc service.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{svc: svc}
}

// AnnouncementRequest is a new announcement. is_active defaults to true.
type AnnouncementRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
	Active  *bool  `json:"is_active"`
}

// AnnouncementUpdateRequest lists the fields to change.
type AnnouncementUpdateRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Active  *bool   `json:"is_active"`
}

// AnnouncementListResponse is a counted list of announcements.
type AnnouncementListResponse struct {
	Count         int                  `json:"count"`
	Announcements []model.Announcement `json:"announcements"`
}

// CreateAnnouncement godoc
// @Summary Create an announcement
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminKey
// @Param request body AnnouncementRequest true "Announcement"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/announcements [post]
func (h *AnnouncementHandler) CreateAnnouncement(c echo.Context) error {
	var req AnnouncementRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	a, err := h.svc.Create(c.Request().Context(), req.Title, req.Content, req.Active)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":         "Announcement created successfully",
		"announcement_id": a.ID,
		"data":            a,
	})
}

// ListAnnouncements godoc
// @Summary List announcements, newest first
// @Tags admin
// @Produce json
// @Security AdminKey
// @Param active_only query bool false "Only active (default true)"
// @Success 200 {object} AnnouncementListResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/announcements [get]
func (h *AnnouncementHandler) ListAnnouncements(c echo.Context) error {
	activeOnly, err := queryBool(c, "active_only", true)
	if err != nil {
		return err
	}
	return h.list(c, activeOnly)
}

// PublicAnnouncements godoc
// @Summary Active announcements, newest first
// @Tags public
// @Produce json
// @Success 200 {object} AnnouncementListResponse
// @Router /public/announcements [get]
func (h *AnnouncementHandler) PublicAnnouncements(c echo.Context) error {
	return h.list(c, true)
}

func (h *AnnouncementHandler) list(c echo.Context, activeOnly bool) error {
	list, err := h.svc.List(c.Request().Context(), activeOnly)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, AnnouncementListResponse{Count: len(list), Announcements: list})
}

// GetAnnouncement godoc
// @Summary Get an announcement
// @Tags admin
// @Produce json
// @Security AdminKey
// @Param id path string true "Announcement ID"
// @Success 200 {object} model.Announcement
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/announcements/{id} [get]
func (h *AnnouncementHandler) GetAnnouncement(c echo.Context) error {
	a, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, a)
}

// UpdateAnnouncement godoc
// @Summary Update an announcement
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminKey
// @Param id path string true "Announcement ID"
// @Param request body AnnouncementUpdateRequest true "Fields to change"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/announcements/{id} [put]
func (h *AnnouncementHandler) UpdateAnnouncement(c echo.Context) error {
	var req AnnouncementUpdateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	a, err := h.svc.Update(c.Request().Context(), c.Param("id"), service.AnnouncementUpdate{
		Title:   req.Title,
		Content: req.Content,
		Active:  req.Active,
	})
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Announcement updated successfully",
		"data":    a,
	})
}

// DeleteAnnouncement godoc
// @Summary Delete an announcement
// @Tags admin
// @Produce json
// @Security AdminKey
// @Param id path string true "Announcement ID"
// @Success 200 {object} SuccessResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/announcements/{id} [delete]
func (h *AnnouncementHandler) DeleteAnnouncement(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: "Announcement deleted successfully"})
}
