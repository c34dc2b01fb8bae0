package models

import (
	"time"

	"gorm.io/gorm"
)

// Client represents a customer who owns one or more vehicles
type Client struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FirstName string    `gorm:"size:20;not null" json:"first_name"`
	LastName  string    `gorm:"size:20;not null" json:"last_name"`
	Phone     string    `gorm:"size:9" json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Vehicles []Vehicle `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE" json:"vehicles,omitempty"`
}

// TableName specifies the table name for the Client model
func (Client) TableName() string {
	return "clients"
}

// ClientsByName is a query scope applying the default client ordering:
// last name first, then first name.
func ClientsByName(db *gorm.DB) *gorm.DB {
	return db.Order("last_name, first_name")
}
