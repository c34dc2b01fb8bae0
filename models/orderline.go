package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderLine is one service item (with quantity) attached to an order.
// It cascades away with either its order or its service.
type OrderLine struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OrderID   uint      `gorm:"not null;index" json:"order_id"`
	Order     Order     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"-"`
	ServiceID uint      `gorm:"not null;index" json:"service_id"`
	Service   Service   `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE" json:"service"`
	Quantity  uint      `gorm:"not null;check:quantity > 0" json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for the OrderLine model
func (OrderLine) TableName() string {
	return "order_lines"
}

// Total is the line total: current service unit price times quantity,
// in exact decimal arithmetic. Requires Service to be preloaded.
func (l *OrderLine) Total() decimal.Decimal {
	return l.Service.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
