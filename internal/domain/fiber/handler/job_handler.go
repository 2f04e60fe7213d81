package handler

import (
	"github.com/fadilmartias/rozgar/internal/dto"
	"github.com/fadilmartias/rozgar/internal/usecase"
	"github.com/fadilmartias/rozgar/internal/util"
	"github.com/gofiber/fiber/v2"
)

type JobHandler struct {
	uc *usecase.JobUsecase
}

func NewJobHandler(uc *usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(app *fiber.App) {
	jobs := app.Group("/api/jobs")
	jobs.Post("/", h.Create)
	jobs.Get("/", h.List)
	jobs.Get("/similar", h.Similar)
	jobs.Get("/:id", h.Get)
}

func (h *JobHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	job, err := h.uc.CreateJob(c.UserContext(), req)
	if err != nil {
		return respondError(c, err, "Failed to create job")
	}
	return c.Status(fiber.StatusCreated).JSON(job)
}

func (h *JobHandler) List(c *fiber.Ctx) error {
	jobs, pagination, err := h.uc.ListJobs(c.UserContext(), c.QueryInt("page", 1), c.QueryInt("pageSize", usecase.DefaultPageSize))
	if err != nil {
		return respondError(c, err, "Failed to list jobs")
	}
	return util.ListResult(c, jobs, pagination)
}

func (h *JobHandler) Get(c *fiber.Ctx) error {
	job, err := h.uc.GetJob(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err, "Failed to load job")
	}
	return c.JSON(job)
}

func (h *JobHandler) Similar(c *fiber.Ctx) error {
	jobs, err := h.uc.SimilarJobs(c.UserContext(), c.Query("q"), c.QueryInt("k", usecase.DefaultSimilarK))
	if err != nil {
		return respondError(c, err, "Failed to search jobs")
	}
	return c.JSON(jobs)
}
