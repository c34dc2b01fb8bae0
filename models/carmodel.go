package models

import "time"

// CarModel represents a vehicle model belonging to a manufacturer.
// Deleting the manufacturer nulls the reference instead of deleting the model.
type CarModel struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	Name           string        `gorm:"size:20;not null" json:"name"`
	ManufacturerID *uint         `gorm:"index" json:"manufacturer_id,omitempty"`
	Manufacturer   *Manufacturer `gorm:"foreignKey:ManufacturerID;constraint:OnDelete:SET NULL" json:"manufacturer,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// TableName specifies the table name for the CarModel model
func (CarModel) TableName() string {
	return "car_models"
}
