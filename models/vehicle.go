package models

import "time"

// Vehicle represents a car registered with the shop. Registration number and
// VIN are globally unique. Deleting the owning client or the car model deletes
// the vehicle; deleting the vehicle cascades to its orders.
type Vehicle struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	RegistrationNo string    `gorm:"size:6;uniqueIndex;not null" json:"registration_no"`
	VIN            string    `gorm:"size:17;uniqueIndex;not null" json:"vin"`
	CoverImage     *string   `gorm:"size:255" json:"cover_image,omitempty"`
	Description    string    `gorm:"type:text" json:"description,omitempty"` // HTML, stored verbatim
	CarModelID     uint      `gorm:"not null;index" json:"car_model_id"`
	CarModel       CarModel  `gorm:"foreignKey:CarModelID;constraint:OnDelete:CASCADE" json:"car_model"`
	ClientID       uint      `gorm:"not null;index" json:"client_id"`
	Client         Client    `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE" json:"client"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Orders []Order `gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for the Vehicle model
func (Vehicle) TableName() string {
	return "vehicles"
}
