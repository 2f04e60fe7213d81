package handler

import (
	"errors"
	"log"

	"github.com/fadilmartias/rozgar/internal/service"
	"github.com/fadilmartias/rozgar/internal/usecase"
	"github.com/fadilmartias/rozgar/internal/util"
	"github.com/gofiber/fiber/v2"
)

// ErrorHandler is the app-wide fallback for errors that escape a handler.
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	message := err.Error()
	if message == "" || code == fiber.StatusInternalServerError {
		message = "Internal Server Error"
	}
	return ctx.Status(code).JSON(fiber.Map{"error": message})
}

var (
	notFoundErrors = []error{
		usecase.ErrTestNotFound,
		usecase.ErrNoTestForJob,
		usecase.ErrResultNotFound,
		usecase.ErrJobNotFound,
		usecase.ErrApplicationNotFound,
		usecase.ErrInterviewNotFound,
		usecase.ErrNoInterviewForJob,
		usecase.ErrEmailNotFound,
	}
	conflictErrors = []error{
		usecase.ErrAlreadyApplied,
		usecase.ErrEmailTaken,
	}
)

// respondError maps use case errors onto status codes. Anything unknown is
// logged and reported as a bare 500.
func respondError(c *fiber.Ctx, err error, serverMessage string) error {
	var formErr *util.FormError
	if errors.As(err, &formErr) {
		params := util.ErrorResponseFormat{Code: fiber.StatusBadRequest, Message: formErr.Message}
		if len(formErr.Errors) > 0 {
			params.Details = formErr.Errors
		}
		return util.ErrorResponse(c, params)
	}

	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{Code: fiber.StatusNotFound, Message: target.Error()})
		}
	}
	for _, target := range conflictErrors {
		if errors.Is(err, target) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{Code: fiber.StatusConflict, Message: target.Error()})
		}
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return util.ErrorResponse(c, util.ErrorResponseFormat{Code: fiber.StatusUnauthorized, Message: err.Error()})
	case errors.Is(err, usecase.ErrNoLocalPassword):
		return util.ErrorResponse(c, util.ErrorResponseFormat{Code: fiber.StatusBadRequest, Message: err.Error()})
	case errors.Is(err, service.ErrUnusableOutput):
		log.Printf("%s %s: %v", c.Method(), c.Path(), err)
		return util.ErrorResponse(c, util.ErrorResponseFormat{Code: fiber.StatusBadGateway, Message: service.ErrUnusableOutput.Error()})
	case errors.Is(err, usecase.ErrEmbeddingUnavailable):
		return util.ErrorResponse(c, util.ErrorResponseFormat{Code: fiber.StatusServiceUnavailable, Message: err.Error()})
	}

	log.Printf("%s %s: %v", c.Method(), c.Path(), err)
	return util.ErrorResponse(c, util.ErrorResponseFormat{Message: serverMessage}, err)
}

func badBody(c *fiber.Ctx, err error) error {
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Code:    fiber.StatusBadRequest,
		Message: "Invalid request body",
	}, err)
}
