package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"floodwatch/internal/service"
)

// AdminHandler handles admin sessions, admin accounts and the dashboard.
type AdminHandler struct {
	authService      service.AuthService
	dashboardService service.DashboardService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(authService service.AuthService, dashboardService service.DashboardService) *AdminHandler {
	return &AdminHandler{authService: authService, dashboardService: dashboardService}
}

// AdminLoginRequest represents an admin login request. Username may also be an email.
type AdminLoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// AdminLoginResponse carries the admin session token.
type AdminLoginResponse struct {
	Success   bool   `json:"success"`
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	FullName  string `json:"full_name"`
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
	TokenType string `json:"token_type"`
}

// CreateAdminRequest represents a new admin account.
type CreateAdminRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name"`
}

// CreateAdminResponse acknowledges a new admin account.
type CreateAdminResponse struct {
	Message  string `json:"message"`
	AdminID  string `json:"admin_id"`
	Username string `json:"username"`
}

// Login godoc
// @Summary Admin login
// @Tags admin
// @Accept json
// @Produce json
// @Param request body AdminLoginRequest true "Admin credentials"
// @Success 200 {object} AdminLoginResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/login [post]
func (h *AdminHandler) Login(c echo.Context) error {
	var req AdminLoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	session, err := h.authService.AdminLogin(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, AdminLoginResponse{
		Success:   true,
		UserID:    session.UserID,
		Username:  session.Username,
		FullName:  session.FullName,
		Token:     session.Token,
		ExpiresIn: int(session.ExpiresAt.Sub(session.CreatedAt).Seconds()),
		TokenType: "Bearer",
	})
}

// Logout godoc
// @Summary Admin logout
// @Tags admin
// @Produce json
// @Security AdminKey
// @Success 200 {object} SuccessResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/logout [post]
func (h *AdminHandler) Logout(c echo.Context) error {
	if err := h.authService.AdminLogout(c.Request().Context(), adminToken(c)); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: "logged out"})
}

// CreateAdmin godoc
// @Summary Create an admin account
// @Description Open while no admin exists; afterwards requires an admin token.
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminKey
// @Param request body CreateAdminRequest true "Admin account"
// @Success 201 {object} CreateAdminResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/create [post]
func (h *AdminHandler) CreateAdmin(c echo.Context) error {
	var req CreateAdminRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.authService.CreateAdmin(c.Request().Context(), adminToken(c), service.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusCreated, CreateAdminResponse{
		Message:  "Admin user created successfully",
		AdminID:  user.ID,
		Username: user.Username,
	})
}

// DashboardStats godoc
// @Summary Dashboard counts
// @Tags admin
// @Produce json
// @Security AdminKey
// @Success 200 {object} service.Dashboard
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/dashboard/stats [get]
func (h *AdminHandler) DashboardStats(c echo.Context) error {
	dashboard, err := h.dashboardService.GetStats(c.Request().Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, dashboard)
}
