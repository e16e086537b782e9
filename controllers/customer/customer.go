package customer

import (
	"fmt"

	"osg-portal/logger"
	branchModel "osg-portal/models/branch"
	purchaseModel "osg-portal/models/purchase"
	"osg-portal/types"
	customerTypes "osg-portal/types/customer"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CustomerController serves the intake form: purchase lookup and branch list
type CustomerController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

// NewCustomerController creates a new customer controller
func NewCustomerController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *CustomerController {
	return &CustomerController{
		DB:     db,
		Logger: asyncLogger,
	}
}

// Lookup finds a customer's registered purchases by 10-digit mobile number.
// An unknown number is a normal outcome, not an error: intake continues with
// a blank form.
func (cc *CustomerController) Lookup(c *fiber.Ctx) error {
	var req customerTypes.LookupRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse lookup request body", err)
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

	var purchases []purchaseModel.Purchase
	if err := cc.DB.Where("mobile_number = ?", req.MobileNumber).Find(&purchases).Error; err != nil {
		logger.Error("Failed to query purchases", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	if len(purchases) == 0 {
		return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
			Status:  fiber.StatusOK,
			Message: "New customer",
			Data: fiber.Map{
				"found": false,
			},
		})
	}

	logger.Info(fmt.Sprintf("Found %d purchase(s) for %s", len(purchases), req.MobileNumber))
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Customer found",
		Data: fiber.Map{
			"found":         true,
			"customer_name": purchases[0].CustomerName,
			"products":      purchases,
		},
	})
}

// ListBranches returns the store branches for the intake dropdown
func (cc *CustomerController) ListBranches(c *fiber.Ctx) error {
	var branches []branchModel.Branch
	if err := cc.DB.Order("name ASC").Find(&branches).Error; err != nil {
		logger.Error("Failed to query branches", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Branches fetched successfully",
		Data:    branches,
	})
}
