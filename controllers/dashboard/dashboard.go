package dashboard

import (
	"fmt"

	"osg-portal/logger"
	"osg-portal/services/analytics"
	"osg-portal/services/cache"
	"osg-portal/types"
	"osg-portal/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// DashboardController serves the KPI, analytics and export endpoints
type DashboardController struct {
	DB     *gorm.DB
	Cache  *cache.ClaimCache
	Logger *logger.AsyncLogger
}

// NewDashboardController creates a new dashboard controller
func NewDashboardController(db *gorm.DB, claimCache *cache.ClaimCache, asyncLogger *logger.AsyncLogger) *DashboardController {
	return &DashboardController{
		DB:     db,
		Cache:  claimCache,
		Logger: asyncLogger,
	}
}

// Stats returns the dashboard KPI counters
func (dc *DashboardController) Stats(c *fiber.Ctx) error {
	claims, err := dc.Cache.Get(false)
	if err != nil {
		logger.Error("Failed to load claims for stats", err)
		return c.Status(fiber.StatusBadGateway).JSON(types.ApiResponse{
			Status:  fiber.StatusBadGateway,
			Message: "Failed to load claims",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Dashboard stats fetched successfully",
		Data:    analytics.Summarize(claims, utils.NowIST()),
	})
}

// AnalyticsData returns the flattened analytics rows plus the distributions
// the charts are drawn from
func (dc *DashboardController) AnalyticsData(c *fiber.Ctx) error {
	claims, err := dc.Cache.Get(false)
	if err != nil {
		logger.Error("Failed to load claims for analytics", err)
		return c.Status(fiber.StatusBadGateway).JSON(types.ApiResponse{
			Status:  fiber.StatusBadGateway,
			Message: "Failed to load claims",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Analytics data fetched successfully",
		Data: fiber.Map{
			"rows":               analytics.Rows(claims),
			"status_counts":      analytics.StatusCounts(claims),
			"branch_counts":      analytics.TopCounts(analytics.BranchCounts(claims), 15),
			"model_counts":       analytics.TopCounts(analytics.ModelCounts(claims), 10),
			"submission_trend":   analytics.SubmissionTrend(claims, 15, utils.NowIST()),
			"replacement_funnel": analytics.ReplacementFunnel(claims),
		},
	})
}

// Export streams the claim list as a CSV download
func (dc *DashboardController) Export(c *fiber.Ctx) error {
	claims, err := dc.Cache.Get(false)
	if err != nil {
		logger.Error("Failed to load claims for export", err)
		return c.Status(fiber.StatusBadGateway).JSON(types.ApiResponse{
			Status:  fiber.StatusBadGateway,
			Message: "Failed to load claims",
			Data:    nil,
		})
	}

	filename := fmt.Sprintf("OSG_Claims_Export_%s.csv", utils.TodayIST())
	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", "attachment; filename="+filename)
	return c.Send(analytics.ExportCSV(claims))
}

// Health reports service and database status
func (dc *DashboardController) Health(c *fiber.Ctx) error {
	dbStatus := "up"
	sqlDB, err := dc.DB.DB()
	if err != nil || sqlDB.Ping() != nil {
		dbStatus = "down"
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "OK",
		Data: fiber.Map{
			"database": dbStatus,
			"time":     utils.NowIST().Format("2006-01-02 15:04:05"),
		},
	})
}
