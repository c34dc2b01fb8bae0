package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderStatus is the workflow state of an order.
type OrderStatus string

const (
	StatusAccepted   OrderStatus = "accepted"
	StatusInProgress OrderStatus = "in_progress"
	StatusDone       OrderStatus = "done"
)

// Valid reports whether s is one of the three known statuses.
// Transitions between statuses are deliberately unconstrained: any staff
// member may set any status at any time.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusAccepted, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Order represents a customer's service request against one vehicle.
// Date is stamped once at insert and never modified. The placing user is
// optional and nulled when the user account is deleted.
type Order struct {
	ID             uint        `gorm:"primaryKey" json:"id"`
	VehicleID      uint        `gorm:"not null;index" json:"vehicle_id"`
	Vehicle        Vehicle     `gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE" json:"vehicle"`
	Date           time.Time   `gorm:"not null;<-:create" json:"date"`
	UserID         *uint       `gorm:"index" json:"user_id,omitempty"`
	User           *User       `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"user,omitempty"`
	ReturnDeadline *time.Time  `json:"return_deadline,omitempty"`
	Status         OrderStatus `gorm:"size:20;not null;default:'accepted'" json:"status"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`

	Lines   []OrderLine `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"lines,omitempty"`
	Reviews []Review    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`

	// Computed fields, populated before serialization (never persisted)
	TotalPrice decimal.Decimal `gorm:"-" json:"total_price"`
	Overdue    bool            `gorm:"-" json:"overdue"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// BeforeCreate stamps the creation date and default status.
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.Date.IsZero() {
		o.Date = time.Now()
	}
	if o.Status == "" {
		o.Status = StatusAccepted
	}
	return nil
}

// Total computes the order total as the sum of its line totals, in exact
// decimal arithmetic. An order with no lines totals zero. The result is a
// pure read-time derivation over the preloaded lines and their current
// service prices; nothing is cached or stored.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for i := range o.Lines {
		total = total.Add(o.Lines[i].Total())
	}
	return total
}

// IsOverdue reports whether the return deadline has passed at the given
// moment. Only calendar dates are compared; an order is overdue iff a
// deadline is set and today is strictly after it.
func (o *Order) IsOverdue(at time.Time) bool {
	if o.ReturnDeadline == nil {
		return false
	}
	y, m, d := at.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	dy, dm, dd := o.ReturnDeadline.Date()
	deadline := time.Date(dy, dm, dd, 0, 0, 0, 0, time.UTC)
	return today.After(deadline)
}

// Derive fills the computed TotalPrice and Overdue fields for serialization.
func (o *Order) Derive(at time.Time) {
	o.TotalPrice = o.Total()
	o.Overdue = o.IsOverdue(at)
}
