package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/retailstack/store-api/internal/logger"
	"github.com/retailstack/store-api/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
//
// Only the bcrypt hash of a credential ever reaches this layer; the
// password_hash column never stores plain text.
type userRepository struct {
	*DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		DB:     db,
		logger: logger,
	}
}

// GetAll retrieves every user account. Order back-references are not loaded
// on collection reads.
func (r *userRepository) GetAll(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.Builder().
		Select("id", "username", "password_hash").
		From("users").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "userRepository.GetAll").Msg("failed to execute users query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0, 16)
	for rows.Next() {
		var u models.User
		if scanErr := rows.Scan(&u.ID, &u.Username, &u.PasswordHash); scanErr != nil {
			log.Err(scanErr).Str("func", "userRepository.GetAll").Msg("failed to scan user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		users = append(users, u)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return users, nil
}

// GetByID retrieves a single user together with the identifiers and dates of
// the orders that reference it (the back-reference relation).
//
// Returns [ErrUserNotFound] when no row matches.
func (r *userRepository) GetByID(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.Builder().
		Select("id", "username", "password_hash").
		From("users").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var u models.User
	row := r.DB.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "userRepository.GetByID").Int64("id", id).Msg("failed to scan user row")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	orders, err := r.ordersForUser(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	u.Orders = orders

	return u, nil
}

// FindByUsername retrieves a user account by its unique username.
//
// Returns [ErrUserNotFound] when no row matches.
func (r *userRepository) FindByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.Builder().
		Select("id", "username", "password_hash").
		From("users").
		Where("username = ?", username).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var u models.User
	row := r.DB.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "userRepository.FindByUsername").Str("username", username).Msg("failed to scan user row")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return u, nil
}

// Create persists a new user account and returns it with its final
// identifier. When user.ID is zero the identifier is assigned by the
// database.
//
// Error handling:
//   - unique violation on username → [ErrUsernameAlreadyExists].
//   - unique violation on the primary key → [ErrIDAlreadyExists].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) Create(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	builder := r.Builder().Insert("users").Suffix("RETURNING id")
	if user.ID > 0 {
		builder = builder.Columns("id", "username", "password_hash").Values(user.ID, user.Username, user.PasswordHash)
	} else {
		builder = builder.Columns("username", "password_hash").Values(user.Username, user.PasswordHash)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&user.ID); err != nil {
		if isUniqueViolation(err) {
			if isUsernameViolation(err) {
				return models.User{}, ErrUsernameAlreadyExists
			}
			return models.User{}, ErrIDAlreadyExists
		}
		log.Err(err).Str("func", "userRepository.Create").Str("username", user.Username).Msg("failed to insert user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// Update overwrites username and password hash of an existing account.
//
// Returns [ErrUserNotFound] when no row with user.ID exists and
// [ErrUsernameAlreadyExists] when the new username collides with another
// account.
func (r *userRepository) Update(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	query, args, err := r.Builder().
		Update("users").
		Set("username", user.Username).
		Set("password_hash", user.PasswordHash).
		Where("id = ?", user.ID).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrUsernameAlreadyExists
		}
		log.Err(err).Str("func", "userRepository.Update").Int64("id", user.ID).Msg("failed to update user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// Delete removes a user account by identifier.
//
// Returns [ErrUserNotFound] when no row matches.
func (r *userRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.Builder().
		Delete("users").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "userRepository.Delete").Int64("id", id).Msg("failed to delete user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// ordersForUser loads the order rows referencing the given user. Product
// lists are left empty: the relation is a back-reference, not an aggregate.
func (r *userRepository) ordersForUser(ctx context.Context, userID int64) ([]models.Order, error) {
	query, args, err := r.Builder().
		Select("id", "order_date", "user_id").
		From("orders").
		Where("user_id = ?", userID).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var o models.Order
		if scanErr := rows.Scan(&o.ID, &o.OrderDate, &o.UserID); scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		orders = append(orders, o)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return orders, nil
}
