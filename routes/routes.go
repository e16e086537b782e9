package routes

import (
	"os"
	"strconv"
	"time"

	claimController "osg-portal/controllers/claim"
	customerController "osg-portal/controllers/customer"
	dashboardController "osg-portal/controllers/dashboard"
	sheetServices "osg-portal/httpServices/sheetsync"
	"osg-portal/logger"
	"osg-portal/middleware"
	"osg-portal/services/cache"
	"osg-portal/services/claimstore"
	"osg-portal/services/notifier"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	sheetClient := sheetServices.NewClient(os.Getenv("SHEET_SYNC_URL"))
	asyncLogger := logger.NewAsyncLogger(db)
	store := claimstore.NewGormStore(db)
	claimCache := cache.NewClaimCache(store, cacheTTLFromEnv())
	mailer := notifier.NewMailerFromEnv()

	claims := claimController.NewClaimController(store, claimCache, sheetClient, mailer, asyncLogger)
	customers := customerController.NewCustomerController(db, asyncLogger)
	dashboard := dashboardController.NewDashboardController(db, claimCache, asyncLogger)

	// Start the async logger processing goroutine
	go asyncLogger.ProcessLog()

	app.Get("/health", dashboard.Health)

	/*=============================================================================
	| Claim Routes
	===============================================================================*/
	api := app.Group("/api", middleware.RequestAudit(asyncLogger))

	api.Post("/claim/submit", claims.Submit)
	api.Get("/claims", claims.Index)
	api.Get("/claims/export", dashboard.Export)
	api.Get("/claim/:id", claims.Show)
	api.Post("/claim/:id/update", claims.Update)
	api.Post("/cache/clear", claims.ClearCache)

	/*=============================================================================
	| Customer Routes
	===============================================================================*/
	api.Post("/customer/lookup", customers.Lookup)
	api.Get("/branches", customers.ListBranches)

	/*=============================================================================
	| Dashboard Routes
	===============================================================================*/
	api.Get("/dashboard/stats", dashboard.Stats)
	api.Get("/analytics-data", dashboard.AnalyticsData)
}

// cacheTTLFromEnv reads CLAIMS_CACHE_TTL_SECONDS, zero means the default
func cacheTTLFromEnv() time.Duration {
	seconds, err := strconv.Atoi(os.Getenv("CLAIMS_CACHE_TTL_SECONDS"))
	if err != nil || seconds <= 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}
