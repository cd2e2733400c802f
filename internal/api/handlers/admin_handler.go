package handlers

import (
	"finpulse/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AdminHandler struct {
	adminService *service.AdminService
	logger       *zap.Logger
}

func NewAdminHandler(adminService *service.AdminService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		logger:       logger,
	}
}

// AllUsers godoc
// @Summary All analyzed customers
// @Tags admin
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.AllUsersResponse
// @Router /api/v1/admin/all-users [get]
func (h *AdminHandler) AllUsers(c *fiber.Ctx) error {
	resp, err := h.adminService.AllUsers(c.Context())
	if err != nil {
		h.logger.Error("All-users query failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Query failed",
		})
	}
	return c.JSON(resp)
}

// DistinctUsers godoc
// @Summary Distinct analyzed customers
// @Tags admin
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.DistinctUsersResponse
// @Router /api/v1/admin/distinct-users [get]
func (h *AdminHandler) DistinctUsers(c *fiber.Ctx) error {
	resp, err := h.adminService.DistinctUsers(c.Context())
	if err != nil {
		h.logger.Error("Distinct-users query failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Query failed",
		})
	}
	return c.JSON(resp)
}

// ConfidenceAnalytics godoc
// @Summary Average confidence over all recommendations
// @Tags admin
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.ConfidenceAnalyticsResponse
// @Router /api/v1/admin/confidence-analytics [get]
func (h *AdminHandler) ConfidenceAnalytics(c *fiber.Ctx) error {
	resp, err := h.adminService.ConfidenceAnalytics(c.Context())
	if err != nil {
		h.logger.Error("Confidence analytics failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Query failed",
		})
	}
	return c.JSON(resp)
}

// ProductStats godoc
// @Summary Product and persona distributions
// @Tags admin
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.ProductStatsResponse
// @Router /api/v1/admin/product-stats [get]
func (h *AdminHandler) ProductStats(c *fiber.Ctx) error {
	resp, err := h.adminService.ProductStats(c.Context())
	if err != nil {
		h.logger.Error("Product stats failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Query failed",
		})
	}
	return c.JSON(resp)
}

// GuardrailBlocks godoc
// @Summary Guardrail block statistics
// @Tags admin
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.GuardrailBlocksResponse
// @Router /api/v1/admin/guardrail-blocks [get]
func (h *AdminHandler) GuardrailBlocks(c *fiber.Ctx) error {
	resp, err := h.adminService.GuardrailBlocks(c.Context())
	if err != nil {
		h.logger.Error("Guardrail blocks query failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Query failed",
		})
	}
	return c.JSON(resp)
}

// AuditTrail godoc
// @Summary Recent audit log entries (admin role only)
// @Tags admin
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.AuditLogResponse
// @Failure 403 {object} map[string]string
// @Router /api/v1/admin/audit-log [get]
func (h *AdminHandler) AuditTrail(c *fiber.Ctx) error {
	resp, err := h.adminService.AuditTrail(c.Context())
	if err != nil {
		h.logger.Error("Audit trail query failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Query failed",
		})
	}
	return c.JSON(resp)
}
