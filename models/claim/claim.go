package claim

import (
	"time"
)

// Claim represents one product-service-guarantee claim. One claim per product,
// even when a customer submits several products in a single intake.
type Claim struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	ClaimID string `gorm:"type:varchar(30);not null;unique" json:"claim_id"`

	Status string `gorm:"type:varchar(100);not null;default:'Submitted'" json:"status"`

	// Date fields are stored as YYYY-MM-DD strings, matching the sheet columns.
	SubmittedDate    string `gorm:"type:varchar(30)" json:"submitted_date"`
	FollowUpDate     string `gorm:"type:varchar(30)" json:"follow_up_date"`
	ClaimSettledDate string `gorm:"type:varchar(30)" json:"claim_settled_date"`

	CustomerName  string `gorm:"type:varchar(255);not null" json:"customer_name"`
	MobileNumber  string `gorm:"type:varchar(20);not null" json:"mobile_number"`
	Address       string `gorm:"type:text" json:"address"`
	Product       string `gorm:"type:varchar(255)" json:"product"`
	Model         string `gorm:"type:varchar(255)" json:"model"`
	SerialNumber  string `gorm:"type:varchar(255)" json:"serial_number"`
	InvoiceNumber string `gorm:"type:varchar(255)" json:"invoice_number"`
	OSID          string `gorm:"type:varchar(255)" json:"osid"`
	Branch        string `gorm:"type:varchar(255)" json:"branch"`
	Issue         string `gorm:"type:text" json:"issue"`

	// FollowUpNotes is the append-only note history; Remarks holds the latest note.
	FollowUpNotes string `gorm:"type:text" json:"follow_up_notes"`
	Remarks       string `gorm:"type:text" json:"remarks"`

	AssignedStaff string `gorm:"type:varchar(255)" json:"assigned_staff"`

	RepairFeedbackCompleted bool `gorm:"not null;default:false" json:"repair_feedback_completed"`

	// Replacement workflow stages, in fixed process order.
	ReplacementConfirmation    bool `gorm:"not null;default:false" json:"replacement_confirmation"`
	ReplacementOSGApproval     bool `gorm:"not null;default:false" json:"replacement_osg_approval"`
	ReplacementMailStore       bool `gorm:"not null;default:false" json:"replacement_mail_store"`
	ReplacementInvoiceGen      bool `gorm:"not null;default:false" json:"replacement_invoice_gen"`
	ReplacementInvoiceSent     bool `gorm:"not null;default:false" json:"replacement_invoice_sent"`
	ReplacementSettledAccounts bool `gorm:"not null;default:false" json:"replacement_settled_accounts"`

	Complete bool `gorm:"not null;default:false" json:"complete"`

	LastUpdated time.Time `json:"last_updated"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName sets the table name for the Claim model
func (Claim) TableName() string {
	return "claims"
}
