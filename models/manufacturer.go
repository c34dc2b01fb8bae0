package models

import "time"

// Manufacturer represents a vehicle manufacturer (e.g. Toyota, BMW)
type Manufacturer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:20;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CarModels []CarModel `gorm:"foreignKey:ManufacturerID;constraint:OnDelete:SET NULL" json:"car_models,omitempty"`
}

// TableName specifies the table name for the Manufacturer model
func (Manufacturer) TableName() string {
	return "manufacturers"
}
