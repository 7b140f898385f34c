package models

import "time"

// CartItem is one cart line for a user. A (user, product, variant) triple
// maps to at most one line; adding the same pair again merges quantities.
type CartItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	UserID    string          `gorm:"index;not null" json:"user_id"`
	ProductID uint            `gorm:"index;not null" json:"product_id"`
	VariantID *uint           `json:"variant_id"`
	Product   Product         `gorm:"foreignKey:ProductID" json:"product"`
	Variant   *ProductVariant `gorm:"foreignKey:VariantID" json:"variant,omitempty"`
	Quantity  int             `gorm:"not null" json:"quantity"` // always in [1,10]
	Price     float64         `json:"price"`                    // snapshot captured at last write
	AddedAt   time.Time       `json:"added_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
