package handler

import (
	"fmt"
	"hotelchat/backend/internal/errs"
	"hotelchat/backend/internal/models"
	"log/slog"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const ctxUserKey = "currentUser"

// AuthRequired resolves the bearer token into the calling user.
func (h *Handler) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			writeError(c, fmt.Errorf("access token required: %w", errs.ErrUnauthenticated))
			return
		}

		user, err := h.Auth.Authenticate(c.Request.Context(), strings.TrimSpace(strings.TrimPrefix(header, "Bearer ")))
		if err != nil {
			writeError(c, err)
			return
		}

		c.Set(ctxUserKey, user)
		c.Next()
	}
}

// RequireRole rejects callers whose role is not listed. It must run after AuthRequired.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil {
			writeError(c, fmt.Errorf("access token required: %w", errs.ErrUnauthenticated))
			return
		}
		for _, r := range roles {
			if user.Role == r {
				c.Next()
				return
			}
		}
		writeError(c, fmt.Errorf("operator role required: %w", errs.ErrForbidden))
	}
}

func currentUser(c *gin.Context) *models.User {
	v, ok := c.Get(ctxUserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}

// RequestLogger logs one line per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		attrs := []any{
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", time.Since(start)),
			slog.String("client_ip", c.ClientIP()),
		}
		if user := currentUser(c); user != nil {
			attrs = append(attrs, slog.Uint64("user_id", uint64(user.ID)))
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			slog.Error("http request", attrs...)
		case status >= 400:
			slog.Warn("http request", attrs...)
		default:
			slog.Info("http request", attrs...)
		}
	}
}
