package repository

import (
	"context"

	"github.com/glowmart/catalog-service/internal/domain"
)

// ListingFilter is the canonical, fully-defaulted filter specification for a
// listing query. Build it with service.NormalizeListingQuery; all fields are
// assumed valid by the repository (page and limit are at least 1).
//
// Color and Size are not pushed down to the store: they are applied in
// memory after relation attachment (see service.CatalogService).
type ListingFilter struct {
	Page     int
	Limit    int
	Search   string
	Gender   string
	Category string
	Color    string
	Size     string
	Stock    string
	Sort     string
}

// Offset returns the row offset for the current page.
func (f ListingFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// ProductRepository defines persistence operations for products and their
// attached collections.
type ProductRepository interface {
	// CountProducts returns the number of products matching the filter's
	// column-level predicates (search, gender, category, stock).
	CountProducts(ctx context.Context, filter ListingFilter) (int, error)

	// ListProducts returns one page of products matching the same
	// predicates, ordered per filter.Sort.
	ListProducts(ctx context.Context, filter ListingFilter) ([]domain.Product, error)

	// GetByID retrieves a single product row.
	GetByID(ctx context.Context, id int64) (*domain.Product, error)

	Create(ctx context.Context, p *domain.Product) error
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id int64) error
}

// RelationRepository defines persistence operations for images, colors, and
// sizes. The bulk ...ForProducts methods return flat row sets; grouping by
// owning product happens in the service layer.
type RelationRepository interface {
	ImagesForProducts(ctx context.Context, productIDs []int64) ([]domain.Image, error)
	ColorsForProducts(ctx context.Context, productIDs []int64) ([]domain.Color, error)
	SizesForProducts(ctx context.Context, productIDs []int64) ([]domain.Size, error)

	AddImage(ctx context.Context, img *domain.Image) error
	UpdateImage(ctx context.Context, img *domain.Image) error
	DeleteImage(ctx context.Context, id int64) error

	AddColor(ctx context.Context, c *domain.Color) error
	UpdateColor(ctx context.Context, c *domain.Color) error
	DeleteColor(ctx context.Context, id int64) error

	AddSize(ctx context.Context, s *domain.Size) error
	UpdateSize(ctx context.Context, s *domain.Size) error
	DeleteSize(ctx context.Context, id int64) error
}

// AdminRepository defines persistence operations for admin accounts.
type AdminRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.Admin, error)
	Create(ctx context.Context, a *domain.Admin) error
}
