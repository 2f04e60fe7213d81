package handler

import (
	"github.com/fadilmartias/rozgar/internal/dto"
	"github.com/fadilmartias/rozgar/internal/usecase"
	"github.com/gofiber/fiber/v2"
)

type InterviewHandler struct {
	uc *usecase.InterviewUsecase
}

func NewInterviewHandler(uc *usecase.InterviewUsecase) *InterviewHandler {
	return &InterviewHandler{uc: uc}
}

func (h *InterviewHandler) RegisterRoutes(app *fiber.App) {
	interviews := app.Group("/api/interviews")
	interviews.Post("/", h.Create)
	interviews.Post("/schedule", h.Schedule)
	interviews.Post("/accept", h.Accept)
	interviews.Post("/reject", h.Reject)
	interviews.Get("/by-candidate/:email", h.ByCandidate)
	interviews.Get("/by-job/:jobId", h.ByJob)
	interviews.Get("/by-company/:companyId", h.ByCompany)
}

func (h *InterviewHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateInterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	interview, err := h.uc.Create(c.UserContext(), req)
	if err != nil {
		return respondError(c, err, "Failed to save interview")
	}
	return c.Status(fiber.StatusCreated).JSON(interview)
}

func (h *InterviewHandler) Schedule(c *fiber.Ctx) error {
	var req dto.ScheduleInterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	interview, err := h.uc.Schedule(c.UserContext(), req)
	if err != nil {
		return respondError(c, err, "Failed to schedule interview")
	}
	return c.Status(fiber.StatusCreated).JSON(interview)
}

func (h *InterviewHandler) Accept(c *fiber.Ctx) error {
	var req dto.InterviewDecisionRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	interview, err := h.uc.Accept(c.UserContext(), req)
	if err != nil {
		return respondError(c, err, "Failed to accept interview")
	}
	return c.JSON(interview)
}

func (h *InterviewHandler) Reject(c *fiber.Ctx) error {
	var req dto.InterviewDecisionRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	interview, err := h.uc.Reject(c.UserContext(), req)
	if err != nil {
		return respondError(c, err, "Failed to reject interview")
	}
	return c.JSON(interview)
}

func (h *InterviewHandler) ByCandidate(c *fiber.Ctx) error {
	list, err := h.uc.ListByCandidate(c.UserContext(), c.Params("email"))
	if err != nil {
		return respondError(c, err, "Failed to list interviews")
	}
	return c.JSON(list)
}

func (h *InterviewHandler) ByJob(c *fiber.Ctx) error {
	interview, err := h.uc.GetByJob(c.UserContext(), c.Params("jobId"))
	if err != nil {
		return respondError(c, err, "Failed to load interview")
	}
	return c.JSON(interview)
}

func (h *InterviewHandler) ByCompany(c *fiber.Ctx) error {
	list, err := h.uc.ListByCompany(c.UserContext(), c.Params("companyId"))
	if err != nil {
		return respondError(c, err, "Failed to list interviews")
	}
	return c.JSON(list)
}
