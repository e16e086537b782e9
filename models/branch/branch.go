package branch

import (
	"time"
)

// Branch is one store of the retail chain, used by the intake form dropdown
type Branch struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	Code string `gorm:"type:varchar(50);not null;unique" json:"code"`
	Name string `gorm:"type:varchar(255);not null" json:"name"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName sets the table name for the Branch model
func (Branch) TableName() string {
	return "branches"
}
