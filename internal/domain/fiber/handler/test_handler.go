package handler

import (
	"fmt"
	"time"

	"github.com/fadilmartias/rozgar/internal/dto"
	"github.com/fadilmartias/rozgar/internal/middleware"
	"github.com/fadilmartias/rozgar/internal/usecase"
	"github.com/gofiber/fiber/v2"
)

type TestHandler struct {
	uc *usecase.TestUsecase
}

func NewTestHandler(uc *usecase.TestUsecase) *TestHandler {
	return &TestHandler{uc: uc}
}

func (h *TestHandler) RegisterRoutes(app *fiber.App) {
	tests := app.Group("/api/tests")
	tests.Post("/", h.Create)
	tests.Post("/generate-questions", middleware.RateLimiter(10, 1*time.Minute), h.GenerateQuestions)
	tests.Post("/submit", h.Submit)
	tests.Get("/by-job/:jobId", h.ByJob)
	tests.Get("/by-company/:companyId", h.ByCompany)
	tests.Get("/passed/by-company/:companyId", h.PassedByCompany)
	tests.Get("/passed/by-company/:companyId/export", h.ExportPassed)
	tests.Get("/results/:id", h.Result)
	tests.Patch("/:id/deactivate", h.Deactivate)
}

func (h *TestHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTestRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	test, err := h.uc.CreateTest(c.UserContext(), req)
	if err != nil {
		return respondError(c, err, "Failed to create test")
	}
	return c.Status(fiber.StatusCreated).JSON(test)
}

func (h *TestHandler) GenerateQuestions(c *fiber.Ctx) error {
	var req dto.GenerateQuestionsRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	preview, err := h.uc.GenerateQuestions(c.UserContext(), req.Title)
	if err != nil {
		return respondError(c, err, "Failed to generate questions")
	}
	return c.JSON(preview)
}

// ByJob serves the test-taker view, which never carries the answer key.
func (h *TestHandler) ByJob(c *fiber.Ctx) error {
	test, err := h.uc.GetTestForJob(c.UserContext(), c.Params("jobId"))
	if err != nil {
		return respondError(c, err, "Failed to load test")
	}
	return c.JSON(dto.NewSanitizedTest(test))
}

func (h *TestHandler) Submit(c *fiber.Ctx) error {
	var req dto.SubmitTestRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	result, err := h.uc.Submit(c.UserContext(), req)
	if err != nil {
		return respondError(c, err, "Failed to submit test")
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

func (h *TestHandler) ByCompany(c *fiber.Ctx) error {
	tests, err := h.uc.ListByCompany(c.UserContext(), c.Params("companyId"))
	if err != nil {
		return respondError(c, err, "Failed to list tests")
	}
	return c.JSON(tests)
}

func (h *TestHandler) PassedByCompany(c *fiber.Ctx) error {
	results, err := h.uc.ListPassedByCompany(c.UserContext(), c.Params("companyId"))
	if err != nil {
		return respondError(c, err, "Failed to list passed candidates")
	}
	return c.JSON(results)
}

func (h *TestHandler) ExportPassed(c *fiber.Ctx) error {
	companyID := c.Params("companyId")
	xlsx, err := h.uc.ExportPassedByCompany(c.UserContext(), companyID)
	if err != nil {
		return respondError(c, err, "Failed to export passed candidates")
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="passed-%s.xlsx"`, companyID))
	return c.Send(xlsx)
}

func (h *TestHandler) Result(c *fiber.Ctx) error {
	view, err := h.uc.GetResult(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err, "Failed to load result")
	}
	return c.JSON(view)
}

func (h *TestHandler) Deactivate(c *fiber.Ctx) error {
	test, err := h.uc.Deactivate(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err, "Failed to deactivate test")
	}
	return c.JSON(test)
}
