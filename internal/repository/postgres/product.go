package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/glowmart/catalog-service/internal/domain"
	"github.com/glowmart/catalog-service/internal/repository"
	"github.com/glowmart/catalog-service/pkg/database"
	apperrors "github.com/glowmart/catalog-service/pkg/errors"
)

const productColumns = "id, name, category, gender, price, old_price, sale, created_at, updated_at"

// Products have no stock column of their own; availability means at least
// one color or size variant has stock left.
const anyVariantInStock = `(EXISTS (SELECT 1 FROM product_colors pc WHERE pc.product_id = products.id AND pc.stock > 0)
		OR EXISTS (SELECT 1 FROM product_sizes ps WHERE ps.product_id = products.id AND ps.stock > 0))`

// ProductRepository implements repository.ProductRepository using PostgreSQL.
type ProductRepository struct {
	db database.DB
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(db database.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// listingConditions builds the WHERE clause shared by the count and page
// queries. Color and size are deliberately absent: they are refined in
// memory after relation attachment.
func listingConditions(filter repository.ListingFilter) (string, []any) {
	var (
		conditions []string
		args       []any
		argIndex   = 1
	)

	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR category ILIKE $%d)", argIndex, argIndex))
		args = append(args, "%"+filter.Search+"%")
		argIndex++
	}

	if filter.Gender != "" {
		conditions = append(conditions, fmt.Sprintf("gender = $%d", argIndex))
		args = append(args, filter.Gender)
		argIndex++
	}

	if filter.Category != "" {
		conditions = append(conditions, fmt.Sprintf("category = $%d", argIndex))
		args = append(args, filter.Category)
		argIndex++
	}

	switch filter.Stock {
	case domain.StockAvailable:
		conditions = append(conditions, anyVariantInStock)
	case domain.StockOut:
		conditions = append(conditions, "NOT "+anyVariantInStock)
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

// orderClause maps the filter's sort value to an ORDER BY clause. Unknown
// values fall through to the default ordering.
func orderClause(sort string) string {
	switch sort {
	case domain.SortPriceAsc:
		return "ORDER BY price ASC"
	case domain.SortPriceDesc:
		return "ORDER BY price DESC"
	default:
		return "ORDER BY created_at DESC"
	}
}

// CountProducts returns the number of products matching the filter's
// column-level predicates, before pagination.
func (r *ProductRepository) CountProducts(ctx context.Context, filter repository.ListingFilter) (int, error) {
	whereClause, args := listingConditions(filter)

	query := fmt.Sprintf("SELECT count(id) FROM products %s", whereClause)

	var count int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}

	return count, nil
}

// ListProducts returns one page of products matching the filter, ordered per
// filter.Sort.
func (r *ProductRepository) ListProducts(ctx context.Context, filter repository.ListingFilter) ([]domain.Product, error) {
	whereClause, args := listingConditions(filter)
	argIndex := len(args) + 1

	query := fmt.Sprintf(`
		SELECT %s
		FROM products
		%s
		%s
		LIMIT $%d OFFSET $%d`,
		productColumns, whereClause, orderClause(filter.Sort), argIndex, argIndex+1,
	)

	args = append(args, filter.Limit, filter.Offset())

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var p domain.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}

	return products, nil
}

// GetByID retrieves a product by its ID.
func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := fmt.Sprintf("SELECT %s FROM products WHERE id = $1", productColumns)

	var p domain.Product
	err := scanProduct(r.db.QueryRow(ctx, query, id), &p)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}

	return &p, nil
}

// Create inserts a new product and fills in its generated ID and timestamps.
func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) error {
	query := `
		INSERT INTO products (name, category, gender, price, old_price, sale)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		p.Name,
		p.Category,
		p.Gender,
		p.Price,
		p.OldPrice,
		p.Sale,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}

	return nil
}

// Update modifies an existing product.
func (r *ProductRepository) Update(ctx context.Context, p *domain.Product) error {
	p.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE products
		SET name = $1, category = $2, gender = $3, price = $4, old_price = $5, sale = $6, updated_at = $7
		WHERE id = $8`

	ct, err := r.db.Exec(ctx, query,
		p.Name,
		p.Category,
		p.Gender,
		p.Price,
		p.OldPrice,
		p.Sale,
		p.UpdatedAt,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("product", p.ID)
	}

	return nil
}

// Delete removes a product. Attached images, colors, and sizes are removed
// by the schema's ON DELETE CASCADE.
func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	ct, err := r.db.Exec(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("product", id)
	}

	return nil
}

// scanProduct scans one product row in productColumns order.
func scanProduct(row pgx.Row, p *domain.Product) error {
	return row.Scan(
		&p.ID,
		&p.Name,
		&p.Category,
		&p.Gender,
		&p.Price,
		&p.OldPrice,
		&p.Sale,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
}

// isUniqueViolation checks if the error is a PostgreSQL unique constraint violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "23505")
}
