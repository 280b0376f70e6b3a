package serverutils

import (
	"time"

	"ticker-chat-be/internal/pkg/apperrors"
	"ticker-chat-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse is the structured body for every failed request. Timestamp
// is only set for server-side failures.
type ErrorResponse struct {
	Error     string `json:"error"`
	Details   string `json:"details,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

// ErrorHandlerMiddleware maps errors returned by downstream handlers to
// structured JSON responses. Every error is logged with request context
// before mapping; the Authorization header is never included.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		appErr, ok := apperrors.As(err)
		if !ok {
			appErr = &apperrors.AppError{
				Kind:    apperrors.KindInternal,
				Message: "Internal Server Error",
				Err:     err,
			}
		}

		log.Error("http", "request failed", map[string]interface{}{
			"method": ctx.Method(),
			"path":   ctx.Path(),
			"kind":   string(appErr.Kind),
			"error":  appErr.Error(),
		})

		status := appErr.StatusCode()
		body := ErrorResponse{
			Error:   appErr.Message,
			Details: appErr.Details(),
		}
		if status >= fiber.StatusInternalServerError {
			body.Error = "Internal Server Error"
			body.Timestamp = time.Now().UTC().Format(time.RFC3339)
		}
		if appErr.Kind == apperrors.KindAuth {
			// 401 responses carry no details, only the error message.
			body = ErrorResponse{Error: appErr.Message}
		}

		return ctx.Status(status).JSON(body)
	}
}
