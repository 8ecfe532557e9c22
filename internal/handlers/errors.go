package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/pantrydb/internal/middleware"
	"github.com/localnerve/pantrydb/internal/types"
	"github.com/localnerve/pantrydb/internal/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrorHandler renders every error returned by a handler as the standard error envelope
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, kind, message := classify(err)

		fields := []zap.Field{
			zap.Int("status", status),
			zap.String("type", kind),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("requestId", middleware.RequestID(c)),
			zap.Error(err),
		}
		if status >= fiber.StatusInternalServerError {
			log.Error("Request failed", fields...)
		} else {
			log.Debug("Request rejected", fields...)
		}

		return utils.ErrorResponse(c, message, status, kind)
	}
}

// NotFound is the fallback for unknown routes
func NotFound(c *fiber.Ctx) error {
	return types.NotFound("Cannot %s %s", c.Method(), c.Path())
}

// classify maps an error to status, kind and client message
func classify(err error) (int, string, string) {
	if ce, ok := types.AsCustomError(err); ok {
		return ce.Code, ce.Type, ce.Message
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		switch fe.Code {
		case fiber.StatusNotFound:
			return fe.Code, types.KindNotFound, fe.Message
		case fiber.StatusUnauthorized:
			return fe.Code, types.KindUnauthorized, fe.Message
		}
		if fe.Code < fiber.StatusInternalServerError {
			return fe.Code, types.KindValidation, fe.Message
		}
		return fe.Code, types.KindDatabase, fe.Message
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fiber.StatusNotFound, types.KindNotFound, "Record not found"
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fiber.StatusConflict, types.KindConflict, "The change conflicts with rows that reference it"
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fiber.StatusConflict, types.KindConflict, "The row already exists"
	}

	return fiber.StatusInternalServerError, types.KindDatabase, err.Error()
}
