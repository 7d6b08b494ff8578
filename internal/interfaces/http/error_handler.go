package http

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/pkg/logger"
)

const localStack = "panic_stack"

// apiError error con status y código explícitos (middlewares de auth, rate limit, parámetros).
type apiError struct {
	status  int
	code    string
	message string
}

func (e *apiError) Error() string { return e.message }

func newAPIError(status int, code, message string) error {
	return &apiError{status: status, code: code, message: message}
}

// invalidInput envuelve domain.ErrInvalidInput con un detalle para el cliente.
func invalidInput(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, fmt.Sprintf(format, args...))
}

// classify traduce un error a status HTTP y código.
func classify(err error) (int, string) {
	var ae *apiError
	if errors.As(err, &ae) {
		return ae.status, ae.code
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code, codeForStatus(fe.Code)
	}
	switch {
	case errors.Is(err, domain.ErrInvalidReference):
		return fiber.StatusBadRequest, "INVALID_REFERENCE"
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return fiber.StatusBadRequest, "EMAIL_EXISTS"
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusBadRequest, "CONFLICT"
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, "FORBIDDEN"
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, context.DeadlineExceeded):
		return fiber.StatusGatewayTimeout, "TIMEOUT"
	}
	return fiber.StatusInternalServerError, "INTERNAL"
}

func codeForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusRequestEntityTooLarge:
		return "BODY_TOO_LARGE"
	case fiber.StatusTooManyRequests:
		return "TOO_MANY_REQUESTS"
	case fiber.StatusRequestTimeout:
		return "TIMEOUT"
	}
	if status >= fiber.StatusInternalServerError {
		return "INTERNAL"
	}
	return "ERROR"
}

// ErrorHandler manejador centralizado de errores de fiber. Los 5xx se registran con el detalle
// y responden un mensaje genérico; fuera de producción los 5xx incluyen stack (el del panic
// si lo hubo, si no el detalle del error). Los 4xx nunca lo llevan.
func ErrorHandler(log *logger.Logger, production bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, code := classify(err)
		msg := err.Error()
		if status >= fiber.StatusInternalServerError {
			logger.FromContext(c.UserContext(), log).Error().Err(err).
				Str("method", c.Method()).
				Str("path", c.Path()).
				Int("status", status).
				Msg("error no controlado")
			msg = "error interno del servidor"
		}
		out := dto.ErrorResponse{Success: false, Status: status, Code: code, Message: msg}
		if !production {
			if s, ok := c.Locals(localStack).(string); ok {
				out.Stack = s
			} else if status >= fiber.StatusInternalServerError {
				out.Stack = err.Error()
			}
		}
		return c.Status(status).JSON(out)
	}
}

// StackTraceHandler guarda el stack del panic para que ErrorHandler lo incluya.
func StackTraceHandler(c *fiber.Ctx, _ interface{}) {
	c.Locals(localStack, string(debug.Stack()))
}

// finish resuelve el error con el ErrorHandler de la app para que el status quede fijado
// antes de medirlo.
func finish(c *fiber.Ctx, err error) {
	if err == nil {
		return
	}
	if hErr := c.App().ErrorHandler(c, err); hErr != nil {
		_ = c.SendStatus(fiber.StatusInternalServerError)
	}
}
