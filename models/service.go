package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service represents a billable offering with a fixed unit price.
// Price is exact decimal with 2 fractional digits; order totals always read
// the current price, so editing it retroactively changes computed totals.
type Service struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Name      string          `gorm:"size:50;not null" json:"name"`
	Price     decimal.Decimal `gorm:"type:decimal(7,2);not null" json:"price"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// TableName specifies the table name for the Service model
func (Service) TableName() string {
	return "services"
}
