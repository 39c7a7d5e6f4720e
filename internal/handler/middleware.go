package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"floodwatch/internal/auth"
	"floodwatch/internal/errors"
	"floodwatch/internal/logger"
	"floodwatch/internal/service"
)

const adminSessionKey = "admin_session"

// adminToken reads the admin token from the admin_key query parameter or a
// Bearer Authorization header, in that order.
func adminToken(c echo.Context) string {
	if token := strings.TrimSpace(c.QueryParam("admin_key")); token != "" {
		return token
	}
	scheme, token, ok := strings.Cut(c.Request().Header.Get(echo.HeaderAuthorization), " ")
	if ok && strings.EqualFold(scheme, "Bearer") {
		return strings.TrimSpace(token)
	}
	return ""
}

// AdminAuth rejects requests without a live admin session and stores the
// session in the context for handlers.
func AdminAuth(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, err := authService.VerifyAdmin(c.Request().Context(), adminToken(c))
			if err != nil {
				return errorResponse(c, err)
			}
			c.Set(adminSessionKey, session)
			return next(c)
		}
	}
}

// AdminSession returns the session stored by AdminAuth.
func AdminSession(c echo.Context) *auth.Session {
	session, _ := c.Get(adminSessionKey).(*auth.Session)
	return session
}

// RateLimit limits requests per client IP and route using an in-memory store.
// rate uses the limiter format, e.g. "20-M" for twenty per minute.
func RateLimit(rate string) (echo.MiddlewareFunc, error) {
	r, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		return nil, fmt.Errorf("parse rate %q: %w", rate, err)
	}
	lim := limiter.New(memory.NewStore(), r)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.RealIP() + "|" + c.Path()
			lc, err := lim.Get(c.Request().Context(), key)
			if err != nil {
				logger.Warn("rate limiter unavailable", "key", key, "error", err)
				return next(c)
			}

			h := c.Response().Header()
			h.Set("X-RateLimit-Limit", strconv.FormatInt(lc.Limit, 10))
			h.Set("X-RateLimit-Remaining", strconv.FormatInt(lc.Remaining, 10))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(lc.Reset, 10))
			if lc.Reached {
				return echo.NewHTTPError(http.StatusTooManyRequests, errors.ErrorResponse{
					Error: "too many requests",
					Code:  "RATE_LIMITED",
				})
			}
			return next(c)
		}
	}, nil
}
