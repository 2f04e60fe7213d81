package handler

import (
	"github.com/gofiber/fiber/v2"
)

// CircuitReporter exposes a provider's circuit breaker.
type CircuitReporter interface {
	Name() string
	GetCircuitBreakerStatus() (consecutiveErrors int, isOpen bool)
}

type HealthHandler struct {
	providers []string
	circuits  []CircuitReporter
}

func NewHealthHandler(providers []string, circuits ...CircuitReporter) *HealthHandler {
	return &HealthHandler{providers: providers, circuits: circuits}
}

func (h *HealthHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/health", h.Health)
}

func (h *HealthHandler) Health(c *fiber.Ctx) error {
	breakers := fiber.Map{}
	for _, cr := range h.circuits {
		errs, open := cr.GetCircuitBreakerStatus()
		breakers[cr.Name()] = fiber.Map{"consecutiveErrors": errs, "open": open}
	}
	providers := h.providers
	if providers == nil {
		providers = []string{}
	}
	return c.JSON(fiber.Map{
		"status":          "ok",
		"providers":       providers,
		"circuitBreakers": breakers,
	})
}
