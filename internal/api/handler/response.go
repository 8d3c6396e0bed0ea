package handler

import (
	"errors"
	"fmt"
	"hotelchat/backend/internal/errs"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// writeError renders err as {"message": ...} with the status of its kind.
// Internal failures are logged and hidden from the client.
func writeError(c *gin.Context, err error) {
	if errs.IsInternal(err) {
		slog.Error("request failed",
			slog.String("method", c.Request.Method),
			slog.String("path", c.FullPath()),
			slog.Any("err", err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	c.AbortWithStatusJSON(errs.HTTPStatus(err), gin.H{"message": err.Error()})
}

// bindJSON decodes the body into req and answers 400 with per-field errors
// when it does not validate.
func bindJSON(c *gin.Context, req interface{}) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]gin.H, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, gin.H{"field": lowerFirst(fe.Field()), "message": fieldMessage(fe)})
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Validation error", "errors": fields})
		return false
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
	return false
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return "is invalid"
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
