package util

import (
	"fmt"
	"runtime/debug"

	"github.com/fadilmartias/rozgar/internal/config"
	"github.com/fadilmartias/rozgar/internal/response"
	"github.com/gofiber/fiber/v2"
)

type ErrorResponseFormat struct {
	Code       int
	Message    string
	DevMessage string
	Details    any
	Trace      string
}

// OrderedErrorResponse keeps "error" as the first key; clients only rely on it.
type OrderedErrorResponse struct {
	Error      string `json:"error"`
	Details    any    `json:"details,omitempty"`
	DevMessage string `json:"dev_message,omitempty"`
	Trace      string `json:"trace,omitempty"`
}

type ListResponse struct {
	Data       any                  `json:"data"`
	Pagination *response.Pagination `json:"pagination,omitempty"`
}

type FormError struct {
	Errors  map[string]string
	Message string
}

func (e *FormError) Error() string {
	return fmt.Sprintf("form error: %s", e.Message)
}

func NewFormError(message string, errors map[string]string) *FormError {
	return &FormError{
		Message: message,
		Errors:  errors,
	}
}

// ErrorResponse writes {"error": message}. Outside production, server errors
// also carry the underlying error and a stack trace.
func ErrorResponse(c *fiber.Ctx, params ErrorResponseFormat, errs ...error) error {
	errorCode := params.Code
	if errorCode == 0 {
		errorCode = fiber.StatusInternalServerError
	}

	body := OrderedErrorResponse{
		Error:   params.Message,
		Details: params.Details,
	}
	if !config.LoadAppConfig().IsProduction() && errorCode >= fiber.StatusInternalServerError {
		if len(errs) > 0 && errs[0] != nil {
			body.DevMessage = errs[0].Error()
			body.Trace = string(debug.Stack())
		}
		if params.DevMessage != "" {
			body.DevMessage = params.DevMessage
		}
		if params.Trace != "" {
			body.Trace = params.Trace
		}
	}
	return c.Status(errorCode).JSON(body)
}

func ListResult(c *fiber.Ctx, data any, pagination *response.Pagination) error {
	return c.Status(fiber.StatusOK).JSON(ListResponse{Data: data, Pagination: pagination})
}
