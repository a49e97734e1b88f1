package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"

	"github.com/jmattila/webshop/internal/logger"
	"github.com/jmattila/webshop/models"
)

// productRepository is the PostgreSQL-backed implementation of
// [ProductRepository] for the "products" table.
type productRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProductRepository constructs a [ProductRepository] backed by the
// provided database connection and logger.
func NewProductRepository(db *DB, logger *logger.Logger) ProductRepository {
	logger.Debug().Msg("creating product repository")
	return &productRepository{
		db:     db,
		logger: logger,
	}
}

// CreateProduct persists a new catalog item with a server-assigned ID.
//
// Error handling:
//   - PostgreSQL unique_violation on the name column → [ErrProductAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *productRepository) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	log := logger.FromContext(ctx)

	product.ID = newID()
	row := r.db.QueryRowContext(ctx, createProduct, product.ID, product.Name, product.Price, product.Image, product.Description)

	var created models.Product
	if err := row.Scan(&created.ID, &created.Name, &created.Price, &created.Image, &created.Description); err != nil {
		log.Err(err).Str("func", "*productRepository.CreateProduct").Msg("error inserting product")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Product{}, ErrProductAlreadyExists
		}

		return models.Product{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindProductByID retrieves the product with the given ID.
// An empty result set maps to [ErrProductNotFound].
func (r *productRepository) FindProductByID(ctx context.Context, id string) (models.Product, error) {
	return r.scanProduct(ctx, findProductByID, id)
}

// FindAllProducts returns the whole catalog ordered by ID.
func (r *productRepository) FindAllProducts(ctx context.Context) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, findAllProducts)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.FindAllProducts").Msg("error querying products")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	products := make([]models.Product, 0)
	for rows.Next() {
		var product models.Product
		if err := rows.Scan(&product.ID, &product.Name, &product.Price, &product.Image, &product.Description); err != nil {
			log.Err(err).Str("func", "*productRepository.FindAllProducts").Msg("error scanning product row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		products = append(products, product)
	}

	return products, rows.Err()
}

// UpdateProduct overwrites the mutable columns of an existing product. The
// UPDATE is built with squirrel so the column set stays in one place, and the
// RETURNING clause hands back the updated record.
func (r *productRepository) UpdateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Update(product.TableName()).
		SetMap(map[string]any{
			"name":        product.Name,
			"price":       product.Price,
			"image":       product.Image,
			"description": product.Description,
		}).
		Where(sq.Eq{"id": product.ID}).
		Suffix("RETURNING id, name, price, image, description").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*productRepository.UpdateProduct").Msg("error building update query")
		return models.Product{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.scanProduct(ctx, query, args...)
}

// DeleteProduct removes the product and returns the deleted record.
func (r *productRepository) DeleteProduct(ctx context.Context, id string) (models.Product, error) {
	return r.scanProduct(ctx, deleteProduct, id)
}

// scanProduct runs a query expected to produce exactly one product row and
// scans it. [sql.ErrNoRows] is mapped to [ErrProductNotFound].
func (r *productRepository) scanProduct(ctx context.Context, query string, args ...any) (models.Product, error) {
	log := logger.FromContext(ctx)

	var product models.Product
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&product.ID, &product.Name, &product.Price, &product.Image, &product.Description); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Product{}, ErrProductNotFound
		}

		log.Err(err).Str("func", "*productRepository.scanProduct").Msg("error scanning product row")
		return models.Product{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return product, nil
}
