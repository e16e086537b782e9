package claim

import (
	"time"
)

// ClaimStatusEvent records the status written by each save of a claim
type ClaimStatusEvent struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// Foreign key for claim relationship
	ClaimRef uint  `gorm:"column:claim_ref;not null;index" json:"claim_ref"`
	Claim    Claim `gorm:"foreignKey:ClaimRef" json:"claim"`

	Status    string    `gorm:"type:varchar(100);not null" json:"status"`
	CreatedBy string    `gorm:"type:varchar(255)" json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName sets the table name for the ClaimStatusEvent model
func (ClaimStatusEvent) TableName() string {
	return "claim_status_events"
}
