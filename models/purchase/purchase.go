package purchase

import (
	"time"
)

// Purchase is one row of the customer purchase index. Intake looks customers
// up by mobile number and pre-fills the product lines from here.
type Purchase struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	CustomerName  string `gorm:"type:varchar(255);not null" json:"customer_name"`
	MobileNumber  string `gorm:"type:varchar(20);not null;index" json:"mobile_number"`
	Product       string `gorm:"type:varchar(255)" json:"product"`
	Model         string `gorm:"type:varchar(255)" json:"model"`
	SerialNumber  string `gorm:"type:varchar(255)" json:"serial_number"`
	InvoiceNumber string `gorm:"type:varchar(255)" json:"invoice_number"`
	OSID          string `gorm:"type:varchar(255)" json:"osid"`
	Branch        string `gorm:"type:varchar(255)" json:"branch"`
	PurchaseDate  string `gorm:"type:varchar(30)" json:"purchase_date"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName sets the table name for the Purchase model
func (Purchase) TableName() string {
	return "purchases"
}
