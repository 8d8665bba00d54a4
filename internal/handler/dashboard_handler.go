package handler

import (
	"strconv"
	"time"

	"github.com/farbodforooghi-ux/istanbul-gasht-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// resolveToday reads the optional ?date=YYYY-MM-DD override. The service
// never touches the clock itself, so pinning the date here makes the
// endpoints reproducible.
func resolveToday(c *fiber.Ctx) time.Time {
	if raw := c.Query("date"); raw != "" {
		if day, err := time.Parse("2006-01-02", raw); err == nil {
			return day
		}
	}
	return time.Now()
}

// GetStats returns overview KPIs plus week-over-week revenue growth
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.service.GetStats(resolveToday(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch dashboard stats"})
	}

	return c.JSON(stats)
}

// GetSalesTrend returns the 7-day revenue chart data
func (h *DashboardHandler) GetSalesTrend(c *fiber.Ctx) error {
	trend, err := h.service.GetSalesTrend(resolveToday(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch sales trend"})
	}

	return c.JSON(fiber.Map{
		"period": len(trend),
		"data":   trend,
	})
}

// GetRecentActivity returns the activity feed
// Query params: limit (default 10)
func (h *DashboardHandler) GetRecentActivity(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil || limit <= 0 {
		limit = 10
	}

	entries, err := h.service.GetRecentActivity(limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch activity"})
	}

	return c.JSON(entries)
}
