package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"floodwatch/internal/model"
	"floodwatch/internal/service"
)

// RequestHandler handles citizen requests and their admin workflow.
type RequestHandler struct {
	svc service.RequestService
}

// NewRequestHandler creates a new request handler.
func NewRequestHandler(svc service.RequestService) *RequestHandler {
	return &RequestHandler{svc: svc}
}

// SubmitRequestForm is a citizen request. All fields are required.
type SubmitRequestForm struct {
	UserEmail string `form:"user_email" json:"user_email" validate:"required,email"`
	UserName  string `form:"user_name" json:"user_name" validate:"required"`
	Type      string `form:"req_type" json:"req_type" validate:"required"`
	Details   string `form:"req_details" json:"req_details" validate:"required"`
	Region    string `form:"req_region" json:"req_region" validate:"required"`
}

// RequestListResponse is a counted list of requests.
type RequestListResponse struct {
	Count    int             `json:"count"`
	Requests []model.Request `json:"requests"`
}

// StatusUpdateRequest changes a request's status, optionally with a note.
type StatusUpdateRequest struct {
	Status    string `json:"status" validate:"required"`
	AdminNote string `json:"admin_note"`
}

// StatusUpdateResponse acknowledges a status change.
type StatusUpdateResponse struct {
	Success   bool           `json:"success"`
	NewStatus string         `json:"new_status"`
	Request   *model.Request `json:"request"`
}

// AssignRequest sets or clears the expert assigned to a request.
type AssignRequest struct {
	AssigneeID string `json:"assignee_id"`
}

// NoteRequest appends an admin note.
type NoteRequest struct {
	Note string `json:"note" validate:"required"`
}

// SubmitRequest godoc
// @Summary Submit a citizen request
// @Tags requests
// @Accept x-www-form-urlencoded,json
// @Produce json
// @Param request body SubmitRequestForm true "Request"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Router /submit-request [post]
func (h *RequestHandler) SubmitRequest(c echo.Context) error {
	var req SubmitRequestForm
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	created, err := h.svc.Submit(c.Request().Context(), service.RequestInput{
		UserEmail: req.UserEmail,
		UserName:  req.UserName,
		Type:      req.Type,
		Details:   req.Details,
		Region:    req.Region,
	})
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message":    "Request submitted successfully!",
		"request_id": created.ID,
	})
}

// UserRequests godoc
// @Summary List one requester's requests, newest first
// @Tags requests
// @Produce json
// @Param email query string true "Requester email"
// @Success 200 {array} model.Request
// @Failure 400 {object} errors.ErrorResponse
// @Router /user-requests [get]
func (h *RequestHandler) UserRequests(c echo.Context) error {
	requests, err := h.svc.ListForUser(c.Request().Context(), c.QueryParam("email"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, requests)
}

// ListRequests godoc
// @Summary List requests
// @Tags admin
// @Produce json
// @Security AdminKey
// @Param status query string false "pending, in_progress, resolved or cancelled"
// @Param region query string false "Region substring"
// @Param search query string false "Substring of name, details or region"
// @Param limit query int false "Max results (default 100, max 1000)"
// @Success 200 {object} RequestListResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/requests [get]
func (h *RequestHandler) ListRequests(c echo.Context) error {
	limit, err := queryInt(c, "limit")
	if err != nil {
		return err
	}
	requests, err := h.svc.List(c.Request().Context(), service.RequestFilter{
		Status: model.RequestStatus(c.QueryParam("status")),
		Region: c.QueryParam("region"),
		Search: c.QueryParam("search"),
		Limit:  limit,
	})
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, RequestListResponse{Count: len(requests), Requests: requests})
}

// GetRequest godoc
// @Summary Get a request with its notes
// @Tags admin
// @Produce json
// @Security AdminKey
// @Param id path string true "Request ID"
// @Success 200 {object} model.Request
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/requests/{id} [get]
func (h *RequestHandler) GetRequest(c echo.Context) error {
	req, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, req)
}

// UpdateStatus godoc
// @Summary Change a request's status
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminKey
// @Param id path string true "Request ID"
// @Param request body StatusUpdateRequest true "New status"
// @Success 200 {object} StatusUpdateResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/requests/{id}/status [patch]
func (h *RequestHandler) UpdateStatus(c echo.Context) error {
	var req StatusUpdateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	updated, err := h.svc.UpdateStatus(c.Request().Context(), c.Param("id"), model.RequestStatus(req.Status), req.AdminNote)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, StatusUpdateResponse{
		Success:   true,
		NewStatus: string(updated.Status),
		Request:   updated,
	})
}

// Assign godoc
// @Summary Assign a request to an expert
// @Description An empty assignee_id clears the assignment.
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminKey
// @Param id path string true "Request ID"
// @Param request body AssignRequest true "Assignee"
// @Success 200 {object} model.Request
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/requests/{id}/assign [patch]
func (h *RequestHandler) Assign(c echo.Context) error {
	var req AssignRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	updated, err := h.svc.Assign(c.Request().Context(), c.Param("id"), req.AssigneeID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// AddNote godoc
// @Summary Append an admin note
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminKey
// @Param id path string true "Request ID"
// @Param request body NoteRequest true "Note"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/requests/{id}/notes [post]
func (h *RequestHandler) AddNote(c echo.Context) error {
	var req NoteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	note, err := h.svc.AddNote(c.Request().Context(), c.Param("id"), req.Note)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success": true,
		"note":    note,
	})
}
