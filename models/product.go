package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID            uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string   `gorm:"not null" json:"name"`
	Slug          string   `gorm:"uniqueIndex;not null" json:"slug"`
	Description   string   `json:"description"`
	Price         float64  `gorm:"not null" json:"price"` // current/sale price
	OriginalPrice *float64 `json:"original_price"`        // pre-discount reference, nil when never discounted
	StockQuantity int      `json:"stock_quantity"`
	IsActive      bool     `gorm:"default:true" json:"is_active"`
	IsFeatured    bool     `gorm:"default:false" json:"is_featured"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"review_count"`
	SalesCount    int      `json:"sales_count"`
	Image         string   `json:"image"`

	BrandID    *uint            `gorm:"index" json:"brand_id"`
	Brand      *Brand           `gorm:"foreignKey:BrandID" json:"brand,omitempty"`
	CategoryID *uint            `gorm:"index" json:"category_id"`
	Category   *Category        `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Variants   []ProductVariant `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"variants,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// ProductVariant overrides price/stock for a shade or size of a product.
// Nil override fields fall back to the parent product.
type ProductVariant struct {
	ID            uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID     uint     `gorm:"index;not null" json:"product_id"`
	Name          string   `gorm:"not null" json:"name"`
	Price         *float64 `json:"price"`
	StockQuantity *int     `json:"stock_quantity"`
	Image         string   `json:"image"`
}

// UnitPrice returns the live price for a (product, variant) pair.
func (p *Product) UnitPrice(v *ProductVariant) float64 {
	if v != nil && v.Price != nil {
		return *v.Price
	}
	return p.Price
}

// AvailableStock returns the live stock for a (product, variant) pair.
func (p *Product) AvailableStock(v *ProductVariant) int {
	if v != nil && v.StockQuantity != nil {
		return *v.StockQuantity
	}
	return p.StockQuantity
}

// ReferencePrice is the pre-discount price used for the savings line.
func (p *Product) ReferencePrice(v *ProductVariant) float64 {
	if v != nil && v.Price != nil {
		return *v.Price
	}
	if p.OriginalPrice != nil {
		return *p.OriginalPrice
	}
	return p.Price
}
