package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/glowmart/catalog-service/internal/domain"
	"github.com/glowmart/catalog-service/internal/event"
	"github.com/glowmart/catalog-service/internal/repository"
	apperrors "github.com/glowmart/catalog-service/pkg/errors"
)

// CatalogService implements the business logic for catalog operations.
type CatalogService struct {
	products  repository.ProductRepository
	relations repository.RelationRepository
	producer  *event.Producer
	logger    *slog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(
	products repository.ProductRepository,
	relations repository.RelationRepository,
	producer *event.Producer,
	logger *slog.Logger,
) *CatalogService {
	return &CatalogService{
		products:  products,
		relations: relations,
		producer:  producer,
		logger:    logger,
	}
}

// ListProducts returns one page of the catalog. Totals come from the
// column-level predicates; the color and size parameters only narrow the
// returned page after relations are attached, so TotalItems can exceed the
// number of products in the response.
func (s *CatalogService) ListProducts(ctx context.Context, filter repository.ListingFilter) (*domain.ProductPage, error) {
	total, err := s.products.CountProducts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}

	products, err := s.products.ListProducts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	if len(products) == 0 {
		return &domain.ProductPage{
			CurrentPage: filter.Page,
			TotalPages:  0,
			TotalItems:  0,
			Products:    []domain.ProductDetail{},
		}, nil
	}

	details, err := s.attachRelations(ctx, products)
	if err != nil {
		return nil, err
	}

	if filter.Color != "" {
		details = refineByColor(details, filter.Color)
	}
	if filter.Size != "" {
		details = refineBySize(details, filter.Size)
	}

	totalPages := (total + filter.Limit - 1) / filter.Limit

	return &domain.ProductPage{
		CurrentPage: filter.Page,
		TotalPages:  totalPages,
		TotalItems:  total,
		Products:    details,
	}, nil
}

// GetProductDetail retrieves one product with its images, colors, and sizes.
func (s *CatalogService) GetProductDetail(ctx context.Context, id int64) (*domain.ProductDetail, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product by id: %w", err)
	}

	details, err := s.attachRelations(ctx, []domain.Product{*product})
	if err != nil {
		return nil, err
	}

	return &details[0], nil
}

// attachRelations fetches images, colors, and sizes for the given products
// concurrently and joins them to their products, preserving product order.
func (s *CatalogService) attachRelations(ctx context.Context, products []domain.Product) ([]domain.ProductDetail, error) {
	ids := make([]int64, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}

	var (
		images []domain.Image
		colors []domain.Color
		sizes  []domain.Size
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		images, err = s.relations.ImagesForProducts(gctx, ids)
		return err
	})
	g.Go(func() error {
		var err error
		colors, err = s.relations.ColorsForProducts(gctx, ids)
		return err
	})
	g.Go(func() error {
		var err error
		sizes, err = s.relations.SizesForProducts(gctx, ids)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("attach relations: %w", err)
	}

	imagesByProduct := make(map[int64][]domain.Image)
	for _, img := range images {
		if img.ProductID == nil {
			continue
		}
		imagesByProduct[*img.ProductID] = append(imagesByProduct[*img.ProductID], img)
	}

	colorsByProduct := make(map[int64][]domain.Color)
	for _, c := range colors {
		colorsByProduct[c.ProductID] = append(colorsByProduct[c.ProductID], c)
	}

	sizesByProduct := make(map[int64][]domain.Size)
	for _, sz := range sizes {
		sizesByProduct[sz.ProductID] = append(sizesByProduct[sz.ProductID], sz)
	}

	details := make([]domain.ProductDetail, len(products))
	for i, p := range products {
		detail := domain.ProductDetail{
			Product: p,
			Images:  imagesByProduct[p.ID],
			Colors:  colorsByProduct[p.ID],
			Sizes:   sizesByProduct[p.ID],
		}
		if detail.Images == nil {
			detail.Images = []domain.Image{}
		}
		if detail.Colors == nil {
			detail.Colors = []domain.Color{}
		}
		if detail.Sizes == nil {
			detail.Sizes = []domain.Size{}
		}
		details[i] = detail
	}

	return details, nil
}

// CreateProductInput holds the parameters for creating a product.
type CreateProductInput struct {
	Name     string
	Category string
	Gender   string
	Price    decimal.Decimal
	OldPrice *decimal.Decimal
	Sale     bool
}

// UpdateProductInput holds the parameters for updating a product. Nil fields
// keep their current values.
type UpdateProductInput struct {
	Name     *string
	Category *string
	Gender   *string
	Price    *decimal.Decimal
	OldPrice *decimal.Decimal
	Sale     *bool
}

// CreateProduct creates a new product with the given input.
func (s *CatalogService) CreateProduct(ctx context.Context, input *CreateProductInput) (*domain.Product, error) {
	if input.Name == "" {
		return nil, apperrors.InvalidInput("product name is required")
	}
	if input.Price.IsNegative() {
		return nil, apperrors.InvalidInput("price must not be negative")
	}

	product := &domain.Product{
		Name:     input.Name,
		Category: input.Category,
		Gender:   input.Gender,
		Price:    input.Price,
		OldPrice: input.OldPrice,
		Sale:     input.Sale,
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	if err := s.producer.PublishProductCreated(ctx, product); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish product.created event",
			slog.Int64("product_id", product.ID),
			slog.String("error", err.Error()),
		)
		// Do not fail the operation if event publishing fails.
	}

	s.logger.InfoContext(ctx, "product created",
		slog.Int64("product_id", product.ID),
		slog.String("name", product.Name),
	)

	return product, nil
}

// UpdateProduct applies the non-nil input fields to an existing product.
func (s *CatalogService) UpdateProduct(ctx context.Context, id int64, input *UpdateProductInput) (*domain.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product by id: %w", err)
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, apperrors.InvalidInput("product name must not be empty")
		}
		product.Name = *input.Name
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.Gender != nil {
		product.Gender = *input.Gender
	}
	if input.Price != nil {
		if input.Price.IsNegative() {
			return nil, apperrors.InvalidInput("price must not be negative")
		}
		product.Price = *input.Price
	}
	if input.OldPrice != nil {
		product.OldPrice = input.OldPrice
	}
	if input.Sale != nil {
		product.Sale = *input.Sale
	}

	if err := s.products.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	if err := s.producer.PublishProductUpdated(ctx, product); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish product.updated event",
			slog.Int64("product_id", product.ID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "product updated", slog.Int64("product_id", product.ID))

	return product, nil
}

// DeleteProduct removes a product and its attached relations.
func (s *CatalogService) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	if err := s.producer.PublishProductDeleted(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish product.deleted event",
			slog.Int64("product_id", id),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "product deleted", slog.Int64("product_id", id))

	return nil
}

// ImagesForProduct returns the images attached to one product. The product
// must exist.
func (s *CatalogService) ImagesForProduct(ctx context.Context, productID int64) ([]domain.Image, error) {
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		return nil, fmt.Errorf("get product by id: %w", err)
	}
	images, err := s.relations.ImagesForProducts(ctx, []int64{productID})
	if err != nil {
		return nil, fmt.Errorf("list product images: %w", err)
	}
	return images, nil
}

// ColorsForProduct returns the color variants of one product. The product
// must exist.
func (s *CatalogService) ColorsForProduct(ctx context.Context, productID int64) ([]domain.Color, error) {
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		return nil, fmt.Errorf("get product by id: %w", err)
	}
	colors, err := s.relations.ColorsForProducts(ctx, []int64{productID})
	if err != nil {
		return nil, fmt.Errorf("list product colors: %w", err)
	}
	return colors, nil
}

// SizesForProduct returns the size variants of one product. The product must
// exist.
func (s *CatalogService) SizesForProduct(ctx context.Context, productID int64) ([]domain.Size, error) {
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		return nil, fmt.Errorf("get product by id: %w", err)
	}
	sizes, err := s.relations.SizesForProducts(ctx, []int64{productID})
	if err != nil {
		return nil, fmt.Errorf("list product sizes: %w", err)
	}
	return sizes, nil
}

// AddImage attaches a new image, optionally bound to a product.
func (s *CatalogService) AddImage(ctx context.Context, img *domain.Image) error {
	if img.Category != domain.ImageCategoryUser && img.Category != domain.ImageCategoryProduct {
		return apperrors.InvalidInput("image category must be UserImage or ProductImage")
	}
	if img.ProductID != nil {
		if _, err := s.products.GetByID(ctx, *img.ProductID); err != nil {
			return fmt.Errorf("get product by id: %w", err)
		}
	}
	if err := s.relations.AddImage(ctx, img); err != nil {
		return fmt.Errorf("add image: %w", err)
	}
	return nil
}

// UpdateImage modifies an existing image.
func (s *CatalogService) UpdateImage(ctx context.Context, img *domain.Image) error {
	if img.Category != domain.ImageCategoryUser && img.Category != domain.ImageCategoryProduct {
		return apperrors.InvalidInput("image category must be UserImage or ProductImage")
	}
	if err := s.relations.UpdateImage(ctx, img); err != nil {
		return fmt.Errorf("update image: %w", err)
	}
	return nil
}

// DeleteImage removes an image.
func (s *CatalogService) DeleteImage(ctx context.Context, id int64) error {
	if err := s.relations.DeleteImage(ctx, id); err != nil {
		return fmt.Errorf("delete image: %w", err)
	}
	return nil
}

// AddColor attaches a new color variant to a product.
func (s *CatalogService) AddColor(ctx context.Context, c *domain.Color) error {
	if c.Stock < 0 {
		return apperrors.InvalidInput("stock must not be negative")
	}
	if _, err := s.products.GetByID(ctx, c.ProductID); err != nil {
		return fmt.Errorf("get product by id: %w", err)
	}
	if err := s.relations.AddColor(ctx, c); err != nil {
		return fmt.Errorf("add color: %w", err)
	}
	return nil
}

// UpdateColor modifies an existing color variant.
func (s *CatalogService) UpdateColor(ctx context.Context, c *domain.Color) error {
	if c.Stock < 0 {
		return apperrors.InvalidInput("stock must not be negative")
	}
	if err := s.relations.UpdateColor(ctx, c); err != nil {
		return fmt.Errorf("update color: %w", err)
	}
	return nil
}

// DeleteColor removes a color variant.
func (s *CatalogService) DeleteColor(ctx context.Context, id int64) error {
	if err := s.relations.DeleteColor(ctx, id); err != nil {
		return fmt.Errorf("delete color: %w", err)
	}
	return nil
}

// AddSize attaches a new size variant to a product.
func (s *CatalogService) AddSize(ctx context.Context, sz *domain.Size) error {
	if sz.Stock < 0 {
		return apperrors.InvalidInput("stock must not be negative")
	}
	if _, err := s.products.GetByID(ctx, sz.ProductID); err != nil {
		return fmt.Errorf("get product by id: %w", err)
	}
	if err := s.relations.AddSize(ctx, sz); err != nil {
		return fmt.Errorf("add size: %w", err)
	}
	return nil
}

// UpdateSize modifies an existing size variant.
func (s *CatalogService) UpdateSize(ctx context.Context, sz *domain.Size) error {
	if sz.Stock < 0 {
		return apperrors.InvalidInput("stock must not be negative")
	}
	if err := s.relations.UpdateSize(ctx, sz); err != nil {
		return fmt.Errorf("update size: %w", err)
	}
	return nil
}

// DeleteSize removes a size variant.
func (s *CatalogService) DeleteSize(ctx context.Context, id int64) error {
	if err := s.relations.DeleteSize(ctx, id); err != nil {
		return fmt.Errorf("delete size: %w", err)
	}
	return nil
}
