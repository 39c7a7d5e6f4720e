package router

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"floodwatch/internal/auth"
	"floodwatch/internal/config"
	"floodwatch/internal/errors"
	"floodwatch/internal/handler"
	"floodwatch/internal/logger"
	"floodwatch/internal/service"
)

// Handlers groups every handler the router mounts.
type Handlers struct {
	Auth         *handler.AuthHandler
	Admin        *handler.AdminHandler
	User         *handler.UserHandler
	Post         *handler.PostHandler
	Request      *handler.RequestHandler
	Notification *handler.NotificationHandler
	Announcement *handler.AnnouncementHandler
	Contact      *handler.ContactHandler
	Media        *handler.MediaHandler
	Health       *handler.HealthHandler
}

// Register wires routes and middleware.
func Register(e *echo.Echo, cfg *config.Config, authService service.AuthService, jwtService *auth.JWTService, h Handlers) error {
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(requestLoggerConfig()))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	// Multipart overhead on top of the largest allowed upload.
	e.Use(middleware.BodyLimit(fmt.Sprintf("%dK", cfg.MaxUploadBytes/1024+1024)))

	e.Validator = &CustomValidator{validator: validator.New()}

	loginLimit, err := handler.RateLimit(cfg.LoginRate)
	if err != nil {
		return err
	}

	jwtAuth := echojwt.WithConfig(echojwt.Config{
		SigningKey: jwtService.Secret(),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: "missing or invalid access token",
				Code:  "UNAUTHORIZED",
			})
		},
	})
	adminAuth := handler.AdminAuth(authService)

	e.GET("/healthz", h.Health.Healthz)
	e.GET("/readyz", h.Health.Readyz)
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/media/*", h.Media.Serve)

	api := e.Group("/api")

	// Accounts
	api.POST("/register", h.Auth.Register)
	api.POST("/login", h.Auth.Login, loginLimit)
	api.POST("/refresh", h.Auth.Refresh)
	api.POST("/logout", h.Auth.Logout)
	api.GET("/me", h.User.Me, jwtAuth)
	api.PUT("/update-user-profile", h.User.UpdateProfile, jwtAuth)

	// Posts
	api.POST("/create-post", h.Post.CreatePost)
	api.GET("/posts", h.Post.ListPosts)
	api.GET("/posts/:id", h.Post.GetPost)
	api.GET("/org-posts", h.Post.ListOrgPosts)
	api.PUT("/update-post/:post_id", h.Post.UpdatePost)
	api.DELETE("/delete-post/:post_id", h.Post.DeletePost)

	// Citizen requests
	api.POST("/submit-request", h.Request.SubmitRequest)
	api.GET("/user-requests", h.Request.UserRequests)

	// Public, read-only
	public := api.Group("/public")
	public.GET("/notifications", h.Notification.PublicNotifications)
	public.GET("/announcements", h.Announcement.PublicAnnouncements)
	public.GET("/emergency-contacts", h.Contact.PublicContacts)

	// Admin entry points that run without a session
	api.POST("/admin/login", h.Admin.Login, loginLimit)
	api.POST("/admin/create", h.Admin.CreateAdmin)

	admin := api.Group("/admin", adminAuth)
	admin.POST("/logout", h.Admin.Logout)
	admin.GET("/dashboard/stats", h.Admin.DashboardStats)

	admin.POST("/notifications", h.Notification.CreateNotification)
	admin.GET("/notifications", h.Notification.ListNotifications)
	admin.GET("/notifications/:id", h.Notification.GetNotification)
	admin.PUT("/notifications/:id", h.Notification.UpdateNotification)
	admin.DELETE("/notifications/:id", h.Notification.DeleteNotification)

	admin.POST("/announcements", h.Announcement.CreateAnnouncement)
	admin.GET("/announcements", h.Announcement.ListAnnouncements)
	admin.GET("/announcements/:id", h.Announcement.GetAnnouncement)
	admin.PUT("/announcements/:id", h.Announcement.UpdateAnnouncement)
	admin.DELETE("/announcements/:id", h.Announcement.DeleteAnnouncement)

	admin.POST("/emergency-contacts", h.Contact.CreateContact)
	admin.GET("/emergency-contacts", h.Contact.ListContacts)
	admin.GET("/emergency-contacts/:id", h.Contact.GetContact)
	admin.PUT("/emergency-contacts/:id", h.Contact.UpdateContact)
	admin.DELETE("/emergency-contacts/:id", h.Contact.DeleteContact)

	admin.GET("/users", h.User.ListUsers)
	admin.GET("/admin-users", h.User.ListAdmins)
	admin.GET("/users/:id", h.User.GetUser)
	admin.PUT("/users/:id/profile", h.User.UpdateUser)
	admin.PATCH("/users/:id/reset-password", h.User.ResetPassword)
	admin.DELETE("/users/:id", h.User.DeleteUser)

	admin.GET("/requests", h.Request.ListRequests)
	admin.GET("/requests/:id", h.Request.GetRequest)
	admin.PATCH("/requests/:id/status", h.Request.UpdateStatus)
	admin.PATCH("/requests/:id/assign", h.Request.Assign)
	admin.POST("/requests/:id/notes", h.Request.AddNote)

	return nil
}

func requestLoggerConfig() middleware.RequestLoggerConfig {
	return middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			keyvals := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				logger.Warn("request", append(keyvals, "error", v.Error)...)
				return nil
			}
			logger.Info("request", keyvals...)
			return nil
		},
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
