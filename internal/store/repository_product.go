package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/retailstack/store-api/internal/logger"
	"github.com/retailstack/store-api/models"
)

// productRepository is the SQL-backed implementation of [ProductRepository].
// It executes all product CRUD operations against the "products" table
// using the embedded [*DB] connection and squirrel-built queries.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields.
type productRepository struct {
	*DB
	logger *logger.Logger
}

// NewProductRepository constructs a [ProductRepository] backed by the
// provided database connection and logger.
func NewProductRepository(db *DB, logger *logger.Logger) ProductRepository {
	logger.Debug().Msg("creating product repository")
	return &productRepository{
		DB:     db,
		logger: logger,
	}
}

// GetAll retrieves every product currently in the store. Returns an empty
// slice when the table is empty.
func (r *productRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.Builder().
		Select("id", "name", "price").
		From("products").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "productRepository.GetAll").Msg("failed to execute products query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	products := make([]models.Product, 0, 16)
	for rows.Next() {
		var p models.Product
		if scanErr := rows.Scan(&p.ID, &p.Name, &p.Price); scanErr != nil {
			log.Err(scanErr).Str("func", "productRepository.GetAll").Msg("failed to scan product row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		products = append(products, p)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "productRepository.GetAll").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return products, nil
}

// GetByID retrieves a single product by identifier.
//
// Returns [ErrProductNotFound] when no row matches.
func (r *productRepository) GetByID(ctx context.Context, id int64) (models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.Builder().
		Select("id", "name", "price").
		From("products").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return models.Product{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var p models.Product
	row := r.DB.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&p.ID, &p.Name, &p.Price); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Product{}, ErrProductNotFound
		}
		log.Err(err).Str("func", "productRepository.GetByID").Int64("id", id).Msg("failed to scan product row")
		return models.Product{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return p, nil
}

// Create persists a new product record and returns it with its final
// identifier.
//
// When product.ID is zero the identifier is assigned by the database;
// otherwise the caller-supplied value is inserted as-is.
//
// Error handling:
//   - unique violation on the primary key → [ErrIDAlreadyExists].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *productRepository) Create(ctx context.Context, product models.Product) (models.Product, error) {
	log := logger.FromContext(ctx)

	builder := r.Builder().Insert("products").Suffix("RETURNING id")
	if product.ID > 0 {
		builder = builder.Columns("id", "name", "price").Values(product.ID, product.Name, product.Price)
	} else {
		builder = builder.Columns("name", "price").Values(product.Name, product.Price)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return models.Product{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&product.ID); err != nil {
		if isUniqueViolation(err) {
			return models.Product{}, ErrIDAlreadyExists
		}
		log.Err(err).Str("func", "productRepository.Create").Int64("id", product.ID).Msg("failed to insert product")
		return models.Product{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return product, nil
}

// Update overwrites the mutable fields (name, price) of an existing product.
//
// Returns [ErrProductNotFound] when no row with product.ID exists; the store
// is left untouched in that case.
func (r *productRepository) Update(ctx context.Context, product models.Product) error {
	log := logger.FromContext(ctx)

	query, args, err := r.Builder().
		Update("products").
		Set("name", product.Name).
		Set("price", product.Price).
		Where("id = ?", product.ID).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "productRepository.Update").Int64("id", product.ID).Msg("failed to update product")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrProductNotFound
	}

	return nil
}

// Delete removes a product by identifier.
//
// Returns [ErrProductNotFound] when no row matches, which makes deleting an
// absent identifier indistinguishable from deleting it a second time.
func (r *productRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.Builder().
		Delete("products").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "productRepository.Delete").Int64("id", id).Msg("failed to delete product")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrProductNotFound
	}

	return nil
}
