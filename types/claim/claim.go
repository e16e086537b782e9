package claim

import (
	"fmt"
	"regexp"
	"strings"
)

var mobilePattern = regexp.MustCompile(`^[0-9]{10}$`)

// ProductLine is one product selected during intake; each line becomes its own claim.
type ProductLine struct {
	Product       string `json:"product"`
	Model         string `json:"model"`
	SerialNumber  string `json:"serial_number"`
	InvoiceNumber string `json:"invoice_number"`
	OSID          string `json:"osid"`
	Branch        string `json:"branch"`
	Issue         string `json:"issue"`
}

type ClaimSubmitRequest struct {
	CustomerName string        `json:"customer_name"`
	MobileNumber string        `json:"mobile_number"`
	Address      string        `json:"address"`
	Products     []ProductLine `json:"products"`
}

func (r ClaimSubmitRequest) Validate() error {
	if strings.TrimSpace(r.CustomerName) == "" {
		return fmt.Errorf("customer name is required")
	}
	if !mobilePattern.MatchString(r.MobileNumber) {
		return fmt.Errorf("mobile number must be exactly 10 digits")
	}
	if len(r.Products) == 0 {
		return fmt.Errorf("at least one product is required")
	}
	for i, p := range r.Products {
		if strings.TrimSpace(p.Product) == "" && strings.TrimSpace(p.Model) == "" {
			return fmt.Errorf("product %d: product or model is required", i+1)
		}
		if strings.TrimSpace(p.Issue) == "" {
			return fmt.Errorf("product %d: issue description is required", i+1)
		}
	}
	return nil
}

// ClaimUpdateRequest carries a partial save from the claim workspace.
// Nil fields were not touched on the form and must not change the stored value.
type ClaimUpdateRequest struct {
	Status           *string `json:"status"`
	SubmittedDate    *string `json:"submitted_date"`
	FollowUpDate     *string `json:"follow_up_date"`
	ClaimSettledDate *string `json:"claim_settled_date"`
	NewNote          *string `json:"new_note"`
	AssignedStaff    *string `json:"assigned_staff"`

	CustomerName  *string `json:"customer_name"`
	MobileNumber  *string `json:"mobile_number"`
	Address       *string `json:"address"`
	Product       *string `json:"product"`
	Model         *string `json:"model"`
	SerialNumber  *string `json:"serial_number"`
	InvoiceNumber *string `json:"invoice_number"`
	OSID          *string `json:"osid"`
	Branch        *string `json:"branch"`
	Issue         *string `json:"issue"`

	RepairFeedbackCompleted *bool `json:"repair_feedback_completed"`

	ReplacementConfirmation    *bool `json:"replacement_confirmation"`
	ReplacementOSGApproval     *bool `json:"replacement_osg_approval"`
	ReplacementMailStore       *bool `json:"replacement_mail_store"`
	ReplacementInvoiceGen      *bool `json:"replacement_invoice_gen"`
	ReplacementInvoiceSent     *bool `json:"replacement_invoice_sent"`
	ReplacementSettledAccounts *bool `json:"replacement_settled_accounts"`

	// The two completion checkboxes on the repair and replacement tracks.
	RepairComplete      *bool `json:"repair_complete"`
	ReplacementComplete *bool `json:"replacement_complete"`
}

func (r ClaimUpdateRequest) Validate() error {
	if r.MobileNumber != nil && *r.MobileNumber != "" && !mobilePattern.MatchString(*r.MobileNumber) {
		return fmt.Errorf("mobile number must be exactly 10 digits")
	}
	return nil
}
