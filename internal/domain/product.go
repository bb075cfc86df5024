package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sort orders accepted by the listing endpoint.
const (
	SortLatest    = "latest"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
)

// Stock filter values accepted by the listing endpoint.
const (
	StockAvailable = "available"
	StockOut       = "out"
)

// Image category constants.
const (
	ImageCategoryUser    = "UserImage"
	ImageCategoryProduct = "ProductImage"
)

// Product represents a product in the catalog.
type Product struct {
	ID        int64            `json:"id"`
	Name      string           `json:"name"`
	Category  string           `json:"category"`
	Gender    string           `json:"gender"`
	Price     decimal.Decimal  `json:"price"`
	OldPrice  *decimal.Decimal `json:"old_price,omitempty"`
	Sale      bool             `json:"sale"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// Image is a stored image. ProductID is nullable: an image may exist before
// it is attached to a product (user avatars share the same table).
type Image struct {
	ID        int64     `json:"id"`
	Filename  string    `json:"filename"`
	URL       string    `json:"url"`
	Category  string    `json:"category"`
	ProductID *int64    `json:"product_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Color is a color variant of a product with its own stock count.
type Color struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"product_id"`
	Name      string    `json:"name"`
	Hex       string    `json:"hex"`
	Stock     int       `json:"stock"`
	CreatedAt time.Time `json:"created_at"`
}

// Size is a size variant of a product. Label is free-form ("M", "100ml").
type Size struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"product_id"`
	Label     string    `json:"size"`
	Stock     int       `json:"stock"`
	CreatedAt time.Time `json:"created_at"`
}

// ProductDetail is a product with all of its attached collections. The
// slices are never nil: a product without variants carries empty slices.
type ProductDetail struct {
	Product
	Images []Image `json:"images"`
	Colors []Color `json:"colors"`
	Sizes  []Size  `json:"sizes"`
}

// ProductPage is one page of a listing query. TotalItems counts products
// matching the column-level predicates before any in-memory color/size
// refinement, so it may exceed len(Products) when those filters are active.
type ProductPage struct {
	CurrentPage int             `json:"current_page"`
	TotalPages  int             `json:"total_pages"`
	TotalItems  int             `json:"total_items"`
	Products    []ProductDetail `json:"products"`
}
