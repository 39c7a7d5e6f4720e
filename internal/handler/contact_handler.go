package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"floodwatch/internal/model"
	"floodwatch/internal/service"
)

// ContactHandler handles emergency contact endpoints.
type ContactHandler struct {
	svc service.ContactService
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(svc service.ContactService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

// ContactRequest is a new emergency contact.
type ContactRequest struct {
	Name   string `json:"name" validate:"required"`
	Role   string `json:"role"`
	Phone  string `json:"phone"`
	Email  string `json:"email" validate:"omitempty,email"`
	Region string `json:"region"`
	Active *bool  `json:"is_active"`
}

// ContactUpdateRequest lists the fields to change. An empty string clears an optional field.
type ContactUpdateRequest struct {
	Name   *string `json:"name"`
	Role   *string `json:"role"`
	Phone  *string `json:"phone"`
	Email  *string `json:"email" validate:"omitempty,email"`
	Region *string `json:"region"`
	Active *bool   `json:"is_active"`
}

// ContactListResponse is a counted list of contacts.
type ContactListResponse struct {
	Count    int                      `json:"count"`
	Contacts []model.EmergencyContact `json:"contacts"`
}

// CreateContact godoc
// @Summary Create an emergency contact
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminKey
// @Param request body ContactRequest true "Contact"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/emergency-contacts [post]
func (h *ContactHandler) CreateContact(c echo.Context) error {
	var req ContactRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	contact, err := h.svc.Create(c.Request().Context(), service.ContactInput{
		Name:   req.Name,
		Role:   req.Role,
		Phone:  req.Phone,
		Email:  req.Email,
		Region: req.Region,
		Active: req.Active,
	})
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":    "Emergency contact created successfully",
		"contact_id": contact.ID,
		"data":       contact,
	})
}

// ListContacts godoc
// @Summary List emergency contacts by region then name
// @Tags admin
// @Produce json
// @Security AdminKey
// @Param region query string false "Exact region"
// @Param active_only query bool false "Only active (default true)"
// @Success 200 {object} ContactListResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/emergency-contacts [get]
func (h *ContactHandler) ListContacts(c echo.Context) error {
	activeOnly, err := queryBool(c, "active_only", true)
	if err != nil {
		return err
	}
	return h.list(c, activeOnly)
}

// PublicContacts godoc
// @Summary Active emergency contacts
// @Tags public
// @Produce json
// @Param region query string false "Exact region"
// @Success 200 {object} ContactListResponse
// @Router /public/emergency-contacts [get]
func (h *ContactHandler) PublicContacts(c echo.Context) error {
	return h.list(c, true)
}

func (h *ContactHandler) list(c echo.Context, activeOnly bool) error {
	list, err := h.svc.List(c.Request().Context(), c.QueryParam("region"), activeOnly)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, ContactListResponse{Count: len(list), Contacts: list})
}

// GetContact godoc
// @Summary Get an emergency contact
// @Tags admin
// @Produce json
// @Security AdminKey
// @Param id path string true "Contact ID"
// @Success 200 {object} model.EmergencyContact
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/emergency-contacts/{id} [get]
func (h *ContactHandler) GetContact(c echo.Context) error {
	contact, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, contact)
}

// UpdateContact godoc
// @Summary Update an emergency contact
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminKey
// @Param id path string true "Contact ID"
// @Param request body ContactUpdateRequest true "Fields to change"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/emergency-contacts/{id} [put]
func (h *ContactHandler) UpdateContact(c echo.Context) error {
	var req ContactUpdateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	contact, err := h.svc.Update(c.Request().Context(), c.Param("id"), service.ContactUpdate{
		Name:   req.Name,
		Role:   req.Role,
		Phone:  req.Phone,
		Email:  req.Email,
		Region: req.Region,
		Active: req.Active,
	})
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Emergency contact updated successfully",
		"data":    contact,
	})
}

// DeleteContact godoc
// @Summary Delete an emergency contact
// @Tags admin
// @Produce json
// @Security AdminKey
// @Param id path string true "Contact ID"
// @Success 200 {object} SuccessResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/emergency-contacts/{id} [delete]
func (h *ContactHandler) DeleteContact(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: "Contact deleted successfully"})
}
