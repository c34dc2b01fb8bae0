package models

import "time"

// User represents an account that can log in, place orders and leave reviews
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:150;uniqueIndex;not null" json:"username"`
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"` // bcrypt hash, never exposed in JSON
	IsStaff   bool      `gorm:"not null;default:false" json:"is_staff"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Profile *Profile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"profile,omitempty"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}
