package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"floodwatch/internal/model"
	"floodwatch/internal/service"
)

// NotificationHandler handles flood notification endpoints.
type NotificationHandler struct {
	svc service.NotificationService
}

// NewNotificationHandler creates a new notification handler.
func NewNotificationHandler(svc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

// NotificationRequest is a new flood notification. is_active defaults to true.
type NotificationRequest struct {
	Title           string   `json:"title" validate:"required"`
	Message         string   `json:"message" validate:"required"`
	Severity        string   `json:"severity" validate:"required,oneof=low medium high critical"`
	AffectedRegions []string `json:"affected_regions"`
	Active          *bool    `json:"is_active"`
}

// NotificationUpdateRequest lists the fields to change. Omitted fields are left as they are.
type NotificationUpdateRequest struct {
	Title           *string   `json:"title"`
	Message         *string   `json:"message"`
	Severity        *string   `json:"severity" validate:"omitempty,oneof=low medium high critical"`
	AffectedRegions *[]string `json:"affected_regions"`
	Active          *bool     `json:"is_active"`
}

// NotificationListResponse is a counted list of notifications.
type NotificationListResponse struct {
	Count         int                  `json:"count"`
	Notifications []model.Notification `json:"notifications"`
}

// CreateNotification godoc
// @Summary Create a flood notification
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminKey
// @Param request body NotificationRequest true "Notification"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/notifications [post]
func (h *NotificationHandler) CreateNotification(c echo.Context) error {
	var req NotificationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	in := service.NotificationInput{
		Title:           req.Title,
		Message:         req.Message,
		Severity:        model.Severity(req.Severity),
		AffectedRegions: req.AffectedRegions,
		Active:          req.Active,
	}
	if session := AdminSession(c); session != nil {
		in.CreatedBy = session.UserID
	}

	n, err := h.svc.Create(c.Request().Context(), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":         "Flood notification created successfully",
		"notification_id": n.ID,
		"data":            n,
	})
}

// ListNotifications godoc
// @Summary List notifications, newest first
// @Tags admin
// @Produce json
// @Security AdminKey
// @Param active_only query bool false "Only active (default false)"
// @Param severity query string false "Exact severity"
// @Param region query string false "Affected region"
// @Param limit query int false "Max results (default 100, max 1000)"
// @Success 200 {object} NotificationListResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/notifications [get]
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	f, err := notificationFilter(c, false)
	if err != nil {
		return err
	}
	list, err := h.svc.List(c.Request().Context(), f)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, NotificationListResponse{Count: len(list), Notifications: list})
}

// PublicNotifications godoc
// @Summary Active notifications, most severe first
// @Tags public
// @Produce json
// @Param severity query string false "Exact severity"
// @Param region query string false "Affected region"
// @Success 200 {object} NotificationListResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /public/notifications [get]
func (h *NotificationHandler) PublicNotifications(c echo.Context) error {
	f, err := notificationFilter(c, true)
	if err != nil {
		return err
	}
	list, err := h.svc.ListPublic(c.Request().Context(), f)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, NotificationListResponse{Count: len(list), Notifications: list})
}

func notificationFilter(c echo.Context, public bool) (service.NotificationFilter, error) {
	f := service.NotificationFilter{
		Region:   c.QueryParam("region"),
		Severity: model.Severity(c.QueryParam("severity")),
	}
	var err error
	if !public {
		if f.ActiveOnly, err = queryBool(c, "active_only", false); err != nil {
			return f, err
		}
	}
	f.Limit, err = queryInt(c, "limit")
	return f, err
}

// GetNotification godoc
// @Summary Get a notification
// @Tags admin
// @Produce json
// @Security AdminKey
// @Param id path string true "Notification ID"
// @Success 200 {object} model.Notification
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/notifications/{id} [get]
func (h *NotificationHandler) GetNotification(c echo.Context) error {
	n, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, n)
}

// UpdateNotification godoc
// @Summary Update a notification
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminKey
// @Param id path string true "Notification ID"
// @Param request body NotificationUpdateRequest true "Fields to change"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/notifications/{id} [put]
func (h *NotificationHandler) UpdateNotification(c echo.Context) error {
	var req NotificationUpdateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	in := service.NotificationUpdate{
		Title:           req.Title,
		Message:         req.Message,
		AffectedRegions: req.AffectedRegions,
		Active:          req.Active,
	}
	if req.Severity != nil {
		sev := model.Severity(*req.Severity)
		in.Severity = &sev
	}

	n, err := h.svc.Update(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Notification updated successfully",
		"data":    n,
	})
}

// DeleteNotification godoc
// @Summary Delete a notification
// @Tags admin
// @Produce json
// @Security AdminKey
// @Param id path string true "Notification ID"
// @Success 200 {object} SuccessResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/notifications/{id} [delete]
func (h *NotificationHandler) DeleteNotification(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: "Notification deleted successfully"})
}
