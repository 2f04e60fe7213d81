package handler

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/fadilmartias/rozgar/internal/dto"
	"github.com/fadilmartias/rozgar/internal/usecase"
	"github.com/fadilmartias/rozgar/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const maxResumeBytes = 5 * 1024 * 1024

type ApplicationHandler struct {
	uc        *usecase.ApplicationUsecase
	uploadDir string
}

func NewApplicationHandler(uc *usecase.ApplicationUsecase, uploadDir string) *ApplicationHandler {
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		log.Printf("create upload dir %s: %v", uploadDir, err)
	}
	return &ApplicationHandler{uc: uc, uploadDir: uploadDir}
}

func (h *ApplicationHandler) RegisterRoutes(app *fiber.App) {
	apps := app.Group("/api/applications")
	apps.Post("/", h.Create)
	apps.Get("/by-user", h.ByUser)
	apps.Get("/by-jobs", h.CountByJobs)
	apps.Get("/list-by-jobs", h.ListByJobs)
	apps.Post("/:id/resume", h.UploadResume)
}

func (h *ApplicationHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	app, err := h.uc.Create(c.UserContext(), req)
	if err != nil {
		return respondError(c, err, "Failed to submit application")
	}
	return c.Status(fiber.StatusCreated).JSON(app)
}

func (h *ApplicationHandler) ByUser(c *fiber.Ctx) error {
	apps, err := h.uc.ListByUser(c.UserContext(), c.Query("email"))
	if err != nil {
		return respondError(c, err, "Failed to list applications")
	}
	return c.JSON(apps)
}

func (h *ApplicationHandler) CountByJobs(c *fiber.Ctx) error {
	counts, err := h.uc.CountByJobs(c.UserContext(), dto.SplitIDs(c.Query("jobIds")))
	if err != nil {
		return respondError(c, err, "Failed to count applicants")
	}
	return c.JSON(counts)
}

func (h *ApplicationHandler) ListByJobs(c *fiber.Ctx) error {
	apps, err := h.uc.ListByJobs(c.UserContext(), dto.SplitIDs(c.Query("jobIds")))
	if err != nil {
		return respondError(c, err, "Failed to list applicants")
	}
	return c.JSON(apps)
}

func (h *ApplicationHandler) UploadResume(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "resume file is required",
		})
	}
	if file.Size > maxResumeBytes {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "resume file size is too large (max 5MB)",
		})
	}
	if ext := strings.ToLower(filepath.Ext(file.Filename)); ext != ".pdf" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: fmt.Sprintf("unsupported resume file type %q", ext),
		})
	}

	savePath := filepath.Join(h.uploadDir, uuid.NewString()+".pdf")
	if err := c.SaveFile(file, savePath); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "cannot save resume file"}, err)
	}

	app, err := h.uc.AttachResume(c.UserContext(), c.Params("id"), savePath)
	if err != nil {
		return respondError(c, err, "Failed to read resume")
	}
	return c.JSON(app)
}
