package postgres

import (
	"context"
	"fmt"

	"github.com/glowmart/catalog-service/internal/domain"
	"github.com/glowmart/catalog-service/pkg/database"
	apperrors "github.com/glowmart/catalog-service/pkg/errors"
)

// RelationRepository implements repository.RelationRepository using
// PostgreSQL. The ForProducts methods fetch rows for a whole page of
// products in one round trip each.
type RelationRepository struct {
	db database.DB
}

// NewRelationRepository creates a new PostgreSQL-backed relation repository.
func NewRelationRepository(db database.DB) *RelationRepository {
	return &RelationRepository{db: db}
}

// ImagesForProducts returns all images attached to any of the given products.
func (r *RelationRepository) ImagesForProducts(ctx context.Context, productIDs []int64) ([]domain.Image, error) {
	query := `
		SELECT id, filename, url, category, product_id, created_at
		FROM product_images
		WHERE product_id = ANY($1)
		ORDER BY id`

	rows, err := r.db.Query(ctx, query, productIDs)
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}
	defer rows.Close()

	images := []domain.Image{}
	for rows.Next() {
		var img domain.Image
		if err := rows.Scan(&img.ID, &img.Filename, &img.URL, &img.Category, &img.ProductID, &img.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan image row: %w", err)
		}
		images = append(images, img)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate image rows: %w", err)
	}

	return images, nil
}

// ColorsForProducts returns all color variants of the given products.
func (r *RelationRepository) ColorsForProducts(ctx context.Context, productIDs []int64) ([]domain.Color, error) {
	query := `
		SELECT id, product_id, name, hex, stock, created_at
		FROM product_colors
		WHERE product_id = ANY($1)
		ORDER BY id`

	rows, err := r.db.Query(ctx, query, productIDs)
	if err != nil {
		return nil, fmt.Errorf("list colors: %w", err)
	}
	defer rows.Close()

	colors := []domain.Color{}
	for rows.Next() {
		var c domain.Color
		if err := rows.Scan(&c.ID, &c.ProductID, &c.Name, &c.Hex, &c.Stock, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan color row: %w", err)
		}
		colors = append(colors, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate color rows: %w", err)
	}

	return colors, nil
}

// SizesForProducts returns all size variants of the given products.
func (r *RelationRepository) SizesForProducts(ctx context.Context, productIDs []int64) ([]domain.Size, error) {
	query := `
		SELECT id, product_id, size, stock, created_at
		FROM product_sizes
		WHERE product_id = ANY($1)
		ORDER BY id`

	rows, err := r.db.Query(ctx, query, productIDs)
	if err != nil {
		return nil, fmt.Errorf("list sizes: %w", err)
	}
	defer rows.Close()

	sizes := []domain.Size{}
	for rows.Next() {
		var s domain.Size
		if err := rows.Scan(&s.ID, &s.ProductID, &s.Label, &s.Stock, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan size row: %w", err)
		}
		sizes = append(sizes, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate size rows: %w", err)
	}

	return sizes, nil
}

// AddImage inserts a new image and fills in its generated ID and timestamp.
func (r *RelationRepository) AddImage(ctx context.Context, img *domain.Image) error {
	query := `
		INSERT INTO product_images (filename, url, category, product_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := r.db.QueryRow(ctx, query, img.Filename, img.URL, img.Category, img.ProductID).
		Scan(&img.ID, &img.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert image: %w", err)
	}

	return nil
}

// UpdateImage modifies an existing image.
func (r *RelationRepository) UpdateImage(ctx context.Context, img *domain.Image) error {
	query := `
		UPDATE product_images
		SET filename = $1, url = $2, category = $3, product_id = $4
		WHERE id = $5`

	ct, err := r.db.Exec(ctx, query, img.Filename, img.URL, img.Category, img.ProductID, img.ID)
	if err != nil {
		return fmt.Errorf("update image: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("image", img.ID)
	}

	return nil
}

// DeleteImage removes an image.
func (r *RelationRepository) DeleteImage(ctx context.Context, id int64) error {
	ct, err := r.db.Exec(ctx, "DELETE FROM product_images WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete image: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("image", id)
	}

	return nil
}

// AddColor inserts a new color variant.
func (r *RelationRepository) AddColor(ctx context.Context, c *domain.Color) error {
	query := `
		INSERT INTO product_colors (product_id, name, hex, stock)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := r.db.QueryRow(ctx, query, c.ProductID, c.Name, c.Hex, c.Stock).
		Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert color: %w", err)
	}

	return nil
}

// UpdateColor modifies an existing color variant.
func (r *RelationRepository) UpdateColor(ctx context.Context, c *domain.Color) error {
	query := `
		UPDATE product_colors
		SET name = $1, hex = $2, stock = $3
		WHERE id = $4`

	ct, err := r.db.Exec(ctx, query, c.Name, c.Hex, c.Stock, c.ID)
	if err != nil {
		return fmt.Errorf("update color: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("color", c.ID)
	}

	return nil
}

// DeleteColor removes a color variant.
func (r *RelationRepository) DeleteColor(ctx context.Context, id int64) error {
	ct, err := r.db.Exec(ctx, "DELETE FROM product_colors WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete color: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("color", id)
	}

	return nil
}

// AddSize inserts a new size variant.
func (r *RelationRepository) AddSize(ctx context.Context, s *domain.Size) error {
	query := `
		INSERT INTO product_sizes (product_id, size, stock)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.db.QueryRow(ctx, query, s.ProductID, s.Label, s.Stock).
		Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert size: %w", err)
	}

	return nil
}

// UpdateSize modifies an existing size variant.
func (r *RelationRepository) UpdateSize(ctx context.Context, s *domain.Size) error {
	query := `
		UPDATE product_sizes
		SET size = $1, stock = $2
		WHERE id = $3`

	ct, err := r.db.Exec(ctx, query, s.Label, s.Stock, s.ID)
	if err != nil {
		return fmt.Errorf("update size: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("size", s.ID)
	}

	return nil
}

// DeleteSize removes a size variant.
func (r *RelationRepository) DeleteSize(ctx context.Context, id int64) error {
	ct, err := r.db.Exec(ctx, "DELETE FROM product_sizes WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete size: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("size", id)
	}

	return nil
}
