package models

import (
	"time"

	"gorm.io/gorm"
)

// DefaultProfilePicture is the placeholder served until a user uploads one.
const DefaultProfilePicture = "default.png"

// Profile holds per-user presentation data, exactly one per user.
// Every uploaded picture is resized to 150x150 in place after save.
type Profile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Picture   string    `gorm:"size:255;not null;default:'default.png'" json:"picture"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Profile model
func (Profile) TableName() string {
	return "profiles"
}

// BeforeSave falls back to the placeholder picture when none is set.
func (p *Profile) BeforeSave(tx *gorm.DB) error {
	if p.Picture == "" {
		p.Picture = DefaultProfilePicture
	}
	return nil
}
