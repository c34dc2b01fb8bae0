package models

import "time"

// Review is a customer comment attached to an order. The creation timestamp
// is stamped once at insert; the reviewing user is nulled if the account is
// deleted, while deleting the order removes the review.
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OrderID   uint      `gorm:"not null;index" json:"order_id"`
	Order     Order     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"-"`
	UserID    *uint     `gorm:"index" json:"user_id,omitempty"`
	User      *User     `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"user,omitempty"`
	Content   string    `gorm:"size:1000;not null" json:"content"`
	CreatedAt time.Time `gorm:"<-:create" json:"created_at"`
}

// TableName specifies the table name for the Review model
func (Review) TableName() string {
	return "reviews"
}
