package claim

import (
	"fmt"

	sheetServices "osg-portal/httpServices/sheetsync"
	"osg-portal/logger"
	claimModel "osg-portal/models/claim"
	"osg-portal/services/cache"
	"osg-portal/services/claimstore"
	"osg-portal/services/notifier"
	"osg-portal/types"
	claimTypes "osg-portal/types/claim"
	"osg-portal/utils"

	"github.com/gofiber/fiber/v2"
)

// ClaimController handles claim intake, listing and saves
type ClaimController struct {
	Store  claimstore.Store
	Cache  *cache.ClaimCache
	Sheet  *sheetServices.SheetClient
	Mailer *notifier.Mailer
	Logger *logger.AsyncLogger
}

// NewClaimController creates a new claim controller
func NewClaimController(store claimstore.Store, claimCache *cache.ClaimCache, sheet *sheetServices.SheetClient, mailer *notifier.Mailer, asyncLogger *logger.AsyncLogger) *ClaimController {
	return &ClaimController{
		Store:  store,
		Cache:  claimCache,
		Sheet:  sheet,
		Mailer: mailer,
		Logger: asyncLogger,
	}
}

// Submit registers a new intake. Every selected product becomes its own claim
// with status Submitted and today's IST date.
func (cc *ClaimController) Submit(c *fiber.Ctx) error {
	var req claimTypes.ClaimSubmitRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse submit request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Data:    nil,
		})
	}

	today := utils.TodayIST()
	created := make([]claimModel.Claim, 0, len(req.Products))
	for _, p := range req.Products {
		branch := p.Branch
		if branch == "" {
			branch = "Main Branch"
		}
		cl := claimModel.Claim{
			Status:        claimModel.StatusSubmitted.String(),
			SubmittedDate: today,
			CustomerName:  req.CustomerName,
			MobileNumber:  req.MobileNumber,
			Address:       req.Address,
			Product:       p.Product,
			Model:         p.Model,
			SerialNumber:  p.SerialNumber,
			InvoiceNumber: p.InvoiceNumber,
			OSID:          p.OSID,
			Branch:        branch,
			Issue:         p.Issue,
		}

		saved, err := cc.Store.Create(cl)
		if err != nil {
			logger.Error("Failed to create claim", err)
			return c.Status(fiber.StatusBadGateway).JSON(types.ApiResponse{
				Status:  fiber.StatusBadGateway,
				Message: "Failed to save claim. Your submission was not recorded, please retry.",
				Data:    nil,
			})
		}
		created = append(created, saved)
	}

	cc.Cache.Invalidate()
	cc.mirrorClaims(created)

	if cc.Mailer.Enabled() {
		batch := created
		go func() {
			if err := cc.Mailer.SendClaimSubmitted(batch); err != nil {
				logger.Error("Failed to send claim submission notification", err)
			}
		}()
	}

	claimIDs := make([]string, len(created))
	for i, cl := range created {
		claimIDs[i] = cl.ClaimID
	}

	logger.Success(fmt.Sprintf("Created %d claim(s) for %s", len(created), req.MobileNumber))
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Claim submitted successfully",
		Data: fiber.Map{
			"claim_ids": claimIDs,
			"claims":    created,
		},
	})
}

// Index returns the claim list, served from the cache unless ?refresh=true
func (cc *ClaimController) Index(c *fiber.Ctx) error {
	force := c.Query("refresh") == "true"

	claims, err := cc.Cache.Get(force)
	if err != nil {
		logger.Error("Failed to load claims", err)
		return c.Status(fiber.StatusBadGateway).JSON(types.ApiResponse{
			Status:  fiber.StatusBadGateway,
			Message: "Failed to load claims",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Claims fetched successfully",
		Data:    claims,
	})
}

// Show returns one claim together with its derived workspace plan
func (cc *ClaimController) Show(c *fiber.Ctx) error {
	claimID := c.Params("id")

	cl, err := cc.Store.Get(claimID)
	if err != nil {
		if err == claimstore.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Claim not found",
				Data:    nil,
			})
		}
		logger.Error("Failed to load claim", err)
		return c.Status(fiber.StatusBadGateway).JSON(types.ApiResponse{
			Status:  fiber.StatusBadGateway,
			Message: "Failed to load claim",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Claim fetched successfully",
		Data: fiber.Map{
			"claim":                cl,
			"view_mode":            claimModel.ViewModeFor(cl.Status, utils.TodayIST()),
			"replacement_stages":   claimModel.ReplacementStages(cl),
			"replacement_progress": claimModel.ReplacementProgress(cl),
			"pending_stage":        claimModel.FirstPendingStage(cl),
			"open":                 claimModel.IsOpen(cl),
		},
	})
}

// Update applies a partial save to a claim. Fields absent from the body keep
// their stored values; a miss on the claim ID creates the row.
func (cc *ClaimController) Update(c *fiber.Ctx) error {
	claimID := c.Params("id")

	var req claimTypes.ClaimUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse update request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Data:    nil,
		})
	}

	merged, err := cc.Store.Upsert(claimID, req)
	if err != nil {
		logger.Error("Failed to save claim "+claimID, err)
		return c.Status(fiber.StatusBadGateway).JSON(types.ApiResponse{
			Status:  fiber.StatusBadGateway,
			Message: "Failed to save claim. Your changes were not applied, please retry.",
			Data:    nil,
		})
	}

	cc.Cache.Invalidate()
	cc.mirrorClaims([]claimModel.Claim{merged})

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Claim updated successfully",
		Data:    merged,
	})
}

// ClearCache drops the cached claim list
func (cc *ClaimController) ClearCache(c *fiber.Ctx) error {
	cc.Cache.Invalidate()
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Cache cleared",
		Data:    nil,
	})
}

// mirrorClaims pushes saved rows to the sheet in the background. The DB row is
// already committed, so a failed push is logged and never fails the request.
func (cc *ClaimController) mirrorClaims(claims []claimModel.Claim) {
	if !cc.Sheet.Enabled() {
		return
	}
	go func() {
		for _, cl := range claims {
			if err := cc.Sheet.PushClaim(cl); err != nil {
				logger.Error("Failed to mirror claim "+cl.ClaimID+" to sheet", err)
			}
		}
	}()
}
