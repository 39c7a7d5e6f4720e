package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"floodwatch/internal/errors"
	"floodwatch/internal/model"
	"floodwatch/internal/service"
)

// UserHandler handles profile and user administration endpoints.
type UserHandler struct {
	svc            service.UserService
	maxUploadBytes int64
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService, maxUploadBytes int64) *UserHandler {
	return &UserHandler{svc: svc, maxUploadBytes: maxUploadBytes}
}

// ProfileSummary is the public part of a user returned after a profile update.
type ProfileSummary struct {
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

// ProfileResponse acknowledges a profile update.
type ProfileResponse struct {
	Message string         `json:"message"`
	User    ProfileSummary `json:"user"`
}

// UserListResponse is a counted list of users.
type UserListResponse struct {
	Count int          `json:"count"`
	Users []model.User `json:"users"`
}

// AdminListResponse is a counted list of admin accounts.
type AdminListResponse struct {
	Count      int          `json:"count"`
	AdminUsers []model.User `json:"admin_users"`
}

// AdminUserUpdateRequest lists the fields an admin may change. Omitted fields are left as they are.
type AdminUserUpdateRequest struct {
	Username *string `json:"username" validate:"omitempty,min=1,max=100"`
	Email    *string `json:"email" validate:"omitempty,email"`
	FullName *string `json:"full_name"`
	Role     *string `json:"role" validate:"omitempty,oneof=user expert admin"`
	Active   *bool   `json:"is_active"`
}

// ResetPasswordRequest carries an admin-set password.
type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

type emailField struct {
	Email string `validate:"email"`
}

// Me godoc
// @Summary Current user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /me [get]
func (h *UserHandler) Me(c echo.Context) error {
	claims, ok := userClaims(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{Error: "invalid token", Code: "UNAUTHORIZED"})
	}
	user, err := h.svc.Get(c.Request().Context(), claims.UserID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateProfile godoc
// @Summary Update own profile
// @Description Multipart form. Only sent fields change; avatar replaces the stored image. An email used by another account returns 409 with code CONFLICT.
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param user_id formData string false "Must match the token when sent"
// @Param email formData string false "New email"
// @Param fullName formData string false "New full name"
// @Param avatar formData file false "Avatar image"
// @Success 200 {object} ProfileResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 413 {object} errors.ErrorResponse
// @Router /update-user-profile [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	claims, ok := userClaims(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{Error: "invalid token", Code: "UNAUTHORIZED"})
	}
	if id := formValue(c, "user_id"); id != "" && id != claims.UserID {
		return echo.NewHTTPError(http.StatusForbidden, errors.ErrorResponse{
			Error: "cannot update another user's profile",
			Code:  "FORBIDDEN",
		})
	}

	var in service.ProfileUpdate
	var err error
	if in.Email, err = optionalForm(c, "email"); err != nil {
		return err
	}
	if in.Email != nil {
		if err := c.Validate(&emailField{Email: *in.Email}); err != nil {
			return badRequest("email must be a valid address")
		}
	}
	if in.FullName, err = optionalForm(c, "fullName", "full_name"); err != nil {
		return err
	}
	if in.Avatar, err = readImage(c, "avatar", h.maxUploadBytes, false); err != nil {
		return err
	}

	user, err := h.svc.UpdateProfile(c.Request().Context(), claims.UserID, in)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, ProfileResponse{
		Message: "Profile updated successfully",
		User: ProfileSummary{
			FullName:  user.FullName,
			Email:     user.Email,
			AvatarURL: user.AvatarURL,
		},
	})
}

// ListUsers godoc
// @Summary List users
// @Tags admin
// @Produce json
// @Security AdminKey
// @Param search query string false "Substring of full name, email or username"
// @Param role query string false "Exact role"
// @Param limit query int false "Max results (default 100, max 1000)"
// @Success 200 {object} UserListResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	limit, err := queryInt(c, "limit")
	if err != nil {
		return err
	}
	users, err := h.svc.List(c.Request().Context(), service.UserFilter{
		Search: c.QueryParam("search"),
		Role:   model.Role(c.QueryParam("role")),
		Limit:  limit,
	})
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, UserListResponse{Count: len(users), Users: users})
}

// ListAdmins godoc
// @Summary List admin accounts
// @Tags admin
// @Produce json
// @Security AdminKey
// @Success 200 {object} AdminListResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/admin-users [get]
func (h *UserHandler) ListAdmins(c echo.Context) error {
	admins, err := h.svc.ListAdmins(c.Request().Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, AdminListResponse{Count: len(admins), AdminUsers: admins})
}

// GetUser godoc
// @Summary Get user by id
// @Tags admin
// @Produce json
// @Security AdminKey
// @Param id path string true "User ID"
// @Success 200 {object} model.User
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/users/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	user, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateUser godoc
// @Summary Update a user's profile
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminKey
// @Param id path string true "User ID"
// @Param request body AdminUserUpdateRequest true "Fields to change"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /admin/users/{id}/profile [put]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	var req AdminUserUpdateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	in := service.ProfileUpdate{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
		Active:   req.Active,
	}
	if req.Role != nil {
		role := model.Role(*req.Role)
		in.Role = &role
	}

	user, err := h.svc.AdminUpdateProfile(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// ResetPassword godoc
// @Summary Reset a user's password
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminKey
// @Param id path string true "User ID"
// @Param request body ResetPasswordRequest true "New password"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/users/{id}/reset-password [patch]
func (h *UserHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.svc.ResetPassword(c.Request().Context(), c.Param("id"), req.NewPassword); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: "password reset"})
}

// DeleteUser godoc
// @Summary Delete a user
// @Description Admin accounts cannot be deleted.
// @Tags admin
// @Produce json
// @Security AdminKey
// @Param id path string true "User ID"
// @Success 200 {object} SuccessResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/users/{id} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: "user deleted"})
}
