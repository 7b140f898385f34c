package models

import "time"

// Review holds one review per (user, product); the composite unique index
// backs the duplicate check in the create handler.
type Review struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	UserID    string   `gorm:"uniqueIndex:idx_review_user_product;not null" json:"user_id"`
	ProductID uint     `gorm:"uniqueIndex:idx_review_user_product;not null" json:"product_id"`
	OrderID   *uint    `json:"order_id"` // links a verified purchase when present
	Rating    int      `gorm:"not null" json:"rating"`
	Title     string   `json:"title"`
	Comment   string   `json:"comment"`
	Images    []string `gorm:"serializer:json" json:"images"`

	User      User      `gorm:"foreignKey:UserID" json:"user"`
	CreatedAt time.Time `json:"created_at"`
}
