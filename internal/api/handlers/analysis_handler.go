package handlers

import (
	"errors"
	"fmt"

	"finpulse/internal/engine"
	"finpulse/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AnalysisHandler struct {
	analysisService *service.AnalysisService
	logger          *zap.Logger
}

func NewAnalysisHandler(analysisService *service.AnalysisService, logger *zap.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
		logger:          logger,
	}
}

// AnalyzeUser godoc
// @Summary Analyze a customer's transaction history
// @Description Runs the persona/life-event classification and guardrail pipeline and records the result in the audit log
// @Tags analysis
// @Produce json
// @Param user_id path string true "Customer identifier"
// @Security Bearer
// @Success 200 {object} dto.AnalysisResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/analyze/{user_id} [post]
func (h *AnalysisHandler) AnalyzeUser(c *fiber.Ctx) error {
	employeeID, err := getEmployeeID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	customerID := c.Params("user_id")
	if customerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "User ID is required",
		})
	}

	resp, err := h.analysisService.AnalyzeUser(c.Context(), employeeID, customerID)
	if err != nil {
		if errors.Is(err, engine.ErrNoData) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": fmt.Sprintf("No data found for user %s", customerID),
			})
		}
		h.logger.Error("Analysis failed", zap.String("customer_id", customerID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Analysis failed",
		})
	}

	return c.JSON(resp)
}

// History godoc
// @Summary Past recommendations for a customer
// @Tags analysis
// @Produce json
// @Param user_id path string true "Customer identifier"
// @Security Bearer
// @Success 200 {array} dto.HistoryEntry
// @Failure 401 {object} map[string]string
// @Router /api/v1/analyze/{user_id}/history [get]
func (h *AnalysisHandler) History(c *fiber.Ctx) error {
	customerID := c.Params("user_id")
	if customerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "User ID is required",
		})
	}

	entries, err := h.analysisService.History(c.Context(), customerID)
	if err != nil {
		h.logger.Error("History lookup failed", zap.String("customer_id", customerID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "History lookup failed",
		})
	}

	return c.JSON(entries)
}

// getEmployeeID extracts the authenticated analyst's id stored by the auth
// middleware.
func getEmployeeID(c *fiber.Ctx) (string, error) {
	employeeID, ok := c.Locals("employeeID").(string)
	if !ok || employeeID == "" {
		return "", errors.New("employee id not found in context")
	}
	return employeeID, nil
}
