package models

import "time"

type WishlistItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	UserID    string          `gorm:"index;not null" json:"user_id"`
	ProductID uint            `gorm:"index;not null" json:"product_id"`
	VariantID *uint           `json:"variant_id"`
	Product   Product         `gorm:"foreignKey:ProductID" json:"product"`
	Variant   *ProductVariant `gorm:"foreignKey:VariantID" json:"variant,omitempty"`
	AddedAt   time.Time       `json:"added_at"`
}
