package handler

import (
	"github.com/fadilmartias/rozgar/internal/usecase"
	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	uc *usecase.DashboardUsecase
}

func NewDashboardHandler(uc *usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

func (h *DashboardHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/dashboard/seeker", h.Seeker)
	app.Get("/api/dashboard/company/:companyId", h.Company)
}

func (h *DashboardHandler) Seeker(c *fiber.Ctx) error {
	stats, err := h.uc.SeekerStats(c.UserContext(), c.Query("email"))
	if err != nil {
		return respondError(c, err, "Failed to load dashboard")
	}
	return c.JSON(stats)
}

func (h *DashboardHandler) Company(c *fiber.Ctx) error {
	stats, err := h.uc.CompanyStats(c.UserContext(), c.Params("companyId"))
	if err != nil {
		return respondError(c, err, "Failed to load dashboard")
	}
	return c.JSON(stats)
}
