package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/retailstack/store-api/internal/logger"
	"github.com/retailstack/store-api/models"
)

// orderRepository is the SQL-backed implementation of [OrderRepository].
//
// Orders span two tables: the order row itself and its product associations
// in order_products. All writes that touch both run inside a single
// transaction so an order is either fully stored or not stored at all.
type orderRepository struct {
	*DB
	logger *logger.Logger
}

// NewOrderRepository constructs an [OrderRepository] backed by the provided
// database connection and logger.
func NewOrderRepository(db *DB, logger *logger.Logger) OrderRepository {
	logger.Debug().Msg("creating order repository")
	return &orderRepository{
		DB:     db,
		logger: logger,
	}
}

// GetAll retrieves every order together with its associated products.
// Returns an empty slice when no orders exist.
func (r *orderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.Builder().
		Select("id", "order_date", "user_id").
		From("orders").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "orderRepository.GetAll").Msg("failed to execute orders query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	orders := make([]models.Order, 0, 16)
	index := make(map[int64]int)
	for rows.Next() {
		var o models.Order
		if scanErr := rows.Scan(&o.ID, &o.OrderDate, &o.UserID); scanErr != nil {
			log.Err(scanErr).Str("func", "orderRepository.GetAll").Msg("failed to scan order row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		// orders without items serialize as an empty list, never null
		o.Products = []models.Product{}
		index[o.ID] = len(orders)
		orders = append(orders, o)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	if len(orders) == 0 {
		return orders, nil
	}

	if err := r.attachProducts(ctx, orders, index); err != nil {
		return nil, err
	}

	return orders, nil
}

// GetByID retrieves a single order and its associated products.
//
// Returns [ErrOrderNotFound] when no row matches.
func (r *orderRepository) GetByID(ctx context.Context, id int64) (models.Order, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.Builder().
		Select("id", "order_date", "user_id").
		From("orders").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return models.Order{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var o models.Order
	row := r.DB.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&o.ID, &o.OrderDate, &o.UserID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Order{}, ErrOrderNotFound
		}
		log.Err(err).Str("func", "orderRepository.GetByID").Int64("id", id).Msg("failed to scan order row")
		return models.Order{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	o.Products = []models.Product{}
	orders := []models.Order{o}
	if err := r.attachProducts(ctx, orders, map[int64]int{o.ID: 0}); err != nil {
		return models.Order{}, err
	}

	return orders[0], nil
}

// Create persists a new order and its product associations in a single
// transaction and returns the order with its final identifier.
//
// The owning user id is stored as given; the reference to the users table is
// deliberately not checked here.
//
// Error handling:
//   - unique violation on the primary key → [ErrIDAlreadyExists].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *orderRepository) Create(ctx context.Context, order models.Order) (models.Order, error) {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Order{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	builder := r.Builder().Insert("orders").Suffix("RETURNING id")
	if order.ID > 0 {
		builder = builder.Columns("id", "order_date", "user_id").Values(order.ID, order.OrderDate, order.UserID)
	} else {
		builder = builder.Columns("order_date", "user_id").Values(order.OrderDate, order.UserID)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return models.Order{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err := tx.QueryRowContext(ctx, query, args...).Scan(&order.ID); err != nil {
		if isUniqueViolation(err) {
			return models.Order{}, ErrIDAlreadyExists
		}
		log.Err(err).Str("func", "orderRepository.Create").Int64("id", order.ID).Msg("failed to insert order")
		return models.Order{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := r.insertAssociations(ctx, tx, order); err != nil {
		return models.Order{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.Order{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	if order.Products == nil {
		order.Products = []models.Product{}
	}

	return order, nil
}

// Update replaces the full field set of an existing order (date, owning
// user, product associations) inside a single transaction.
//
// Returns [ErrOrderNotFound] when no row with order.ID exists; nothing is
// written in that case.
func (r *orderRepository) Update(ctx context.Context, order models.Order) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	query, args, err := r.Builder().
		Update("orders").
		Set("order_date", order.OrderDate).
		Set("user_id", order.UserID).
		Where("id = ?", order.ID).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "orderRepository.Update").Int64("id", order.ID).Msg("failed to update order")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrOrderNotFound
	}

	// replace associations wholesale: full-record update semantics
	deleteQuery, deleteArgs, err := r.Builder().
		Delete("order_products").
		Where("order_id = ?", order.ID).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err := r.insertAssociations(ctx, tx, order); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// Delete removes an order and its order_products rows inside a single
// transaction. The join rows are deleted explicitly rather than left to the
// schema's ON DELETE CASCADE, which the sqlite driver does not enforce
// unless foreign keys are switched on per connection.
//
// Returns [ErrOrderNotFound] when no row matches; nothing is written in
// that case.
func (r *orderRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	query, args, err := r.Builder().
		Delete("orders").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "orderRepository.Delete").Int64("id", id).Msg("failed to delete order")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrOrderNotFound
	}

	deleteQuery, deleteArgs, err := r.Builder().
		Delete("order_products").
		Where("order_id = ?", id).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// insertAssociations writes one order_products row per associated product
// within the supplied transaction. A nil or empty product list is a no-op.
func (r *orderRepository) insertAssociations(ctx context.Context, tx *sql.Tx, order models.Order) error {
	if len(order.Products) == 0 {
		return nil
	}

	builder := r.Builder().Insert("order_products").Columns("order_id", "product_id")
	for _, p := range order.Products {
		builder = builder.Values(order.ID, p.ID)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// attachProducts loads the products associated with the given orders in one
// query and distributes them using the id → slice position index.
func (r *orderRepository) attachProducts(ctx context.Context, orders []models.Order, index map[int64]int) error {
	log := logger.FromContext(ctx)

	ids := make([]int64, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}

	query, args, err := r.Builder().
		Select("op.order_id", "p.id", "p.name", "p.price").
		From("order_products op").
		Join("products p ON p.id = op.product_id").
		Where(sq.Eq{"op.order_id": ids}).
		OrderBy("op.order_id", "p.id").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "orderRepository.attachProducts").Msg("failed to execute order products query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var orderID int64
		var p models.Product
		if scanErr := rows.Scan(&orderID, &p.ID, &p.Name, &p.Price); scanErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		if pos, ok := index[orderID]; ok {
			orders[pos].Products = append(orders[pos].Products, p)
		}
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return nil
}
