package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"floodwatch/internal/service"
)

// PostHandler handles community post endpoints.
type PostHandler struct {
	svc            service.PostService
	maxUploadBytes int64
}

// NewPostHandler creates a new post handler.
func NewPostHandler(svc service.PostService, maxUploadBytes int64) *PostHandler {
	return &PostHandler{svc: svc, maxUploadBytes: maxUploadBytes}
}

// CreatePostResponse acknowledges a new post.
type CreatePostResponse struct {
	Message  string `json:"message"`
	PostID   string `json:"PostID"`
	ImageURL string `json:"image_url"`
}

// UpdatePostRequest replaces a post's title and description. Both are required.
type UpdatePostRequest struct {
	Title       string `json:"Post_Title" validate:"required"`
	Description string `json:"Post_Desc" validate:"required"`
}

// CreatePost godoc
// @Summary Create a post
// @Tags posts
// @Accept multipart/form-data
// @Produce json
// @Param Post_Title formData string true "Title"
// @Param Post_Organization formData string true "Organization"
// @Param Post_Desc formData string true "Description"
// @Param image formData file true "Image"
// @Success 200 {object} CreatePostResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 413 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /create-post [post]
func (h *PostHandler) CreatePost(c echo.Context) error {
	image, err := readImage(c, "image", h.maxUploadBytes, true)
	if err != nil {
		return err
	}

	post, err := h.svc.Create(c.Request().Context(), service.PostInput{
		Title:        formValue(c, "Post_Title", "title"),
		Organization: formValue(c, "Post_Organization", "organization"),
		Description:  formValue(c, "Post_Desc", "description"),
		Image:        image,
	})
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, CreatePostResponse{
		Message:  "Post created successfully",
		PostID:   post.ID,
		ImageURL: post.ImageURL,
	})
}

// ListPosts godoc
// @Summary List posts, newest first
// @Tags posts
// @Produce json
// @Param search query string false "Substring of title or description"
// @Param limit query int false "Max results (default 100, max 1000)"
// @Success 200 {array} model.Post
// @Failure 400 {object} errors.ErrorResponse
// @Router /posts [get]
func (h *PostHandler) ListPosts(c echo.Context) error {
	return h.list(c, "")
}

// ListOrgPosts godoc
// @Summary List one organization's posts, newest first
// @Tags posts
// @Produce json
// @Param organization query string true "Organization"
// @Param limit query int false "Max results (default 100, max 1000)"
// @Success 200 {array} model.Post
// @Failure 400 {object} errors.ErrorResponse
// @Router /org-posts [get]
func (h *PostHandler) ListOrgPosts(c echo.Context) error {
	org := c.QueryParam("organization")
	if org == "" {
		return badRequest("organization is required")
	}
	return h.list(c, org)
}

func (h *PostHandler) list(c echo.Context, org string) error {
	limit, err := queryInt(c, "limit")
	if err != nil {
		return err
	}
	posts, err := h.svc.List(c.Request().Context(), service.PostFilter{
		Organization: org,
		Search:       c.QueryParam("search"),
		Limit:        limit,
	})
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, posts)
}

// GetPost godoc
// @Summary Get a post
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} model.Post
// @Failure 404 {object} errors.ErrorResponse
// @Router /posts/{id} [get]
func (h *PostHandler) GetPost(c echo.Context) error {
	post, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, post)
}

// UpdatePost godoc
// @Summary Update a post's title and description
// @Tags posts
// @Accept json
// @Produce json
// @Param post_id path string true "Post ID"
// @Param request body UpdatePostRequest true "New text"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /update-post/{post_id} [put]
func (h *PostHandler) UpdatePost(c echo.Context) error {
	var req UpdatePostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	post, err := h.svc.Update(c.Request().Context(), c.Param("post_id"), req.Title, req.Description)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Post updated",
		"updated": post,
	})
}

// DeletePost godoc
// @Summary Delete a post and its image
// @Description Deleting a missing post succeeds; s3key names the image to remove when the record is gone.
// @Tags posts
// @Produce json
// @Param post_id path string true "Post ID"
// @Param s3key query string false "Image key under posts/"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /delete-post/{post_id} [delete]
func (h *PostHandler) DeletePost(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.Param("post_id"), c.QueryParam("s3key")); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Post and image deleted successfully.",
	})
}
