// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/chewsday/internal/logger"
	"github.com/MKhiriev/chewsday/models"
)

// userRepository is the relational implementation of [UserRepository],
// shared by PostgreSQL and SQLite. Queries are built with squirrel using the
// placeholder format of the underlying [DB].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Str("backend", string(db.backend)).Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts a new row into users.
//
// Error handling:
//   - unique violation on username or email → [ErrUserAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(r.db.builder(), user)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return ErrUserAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, "email", email)
}

func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	return r.findUser(ctx, "id", userID)
}

func (r *userRepository) findUser(ctx context.Context, column, value string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserQuery(r.db.builder(), column, value)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		user  models.User
		phone sql.NullString
	)
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&user.ID, &user.Username, &user.Email, &phone, &user.PasswordHash, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findUser").Str("by", column).Msg("error scanning user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if phone.Valid {
		user.Phone = &phone.String
	}

	return user, nil
}

func (r *userRepository) AddFavoriteDish(ctx context.Context, userID, dishID string) error {
	return r.addFavorite(ctx, favoriteDishes, userID, dishID)
}

func (r *userRepository) AddFavoriteRestaurant(ctx context.Context, userID, restaurantID string) error {
	return r.addFavorite(ctx, favoriteRestaurants, userID, restaurantID)
}

// addFavorite runs the add-if-absent insert. When no row was inserted the
// item was either already present or the user does not exist; a follow-up
// probe tells the two apart.
func (r *userRepository) addFavorite(ctx context.Context, set favoriteSet, userID, itemID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertFavoriteQuery(r.db.builder(), set, userID, itemID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.addFavorite").Str("table", set.table).Msg("error inserting favorite")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if inserted > 0 {
		return nil
	}

	return r.ensureUserExists(ctx, userID)
}

func (r *userRepository) GetFavorites(ctx context.Context, userID string) (models.Favorites, error) {
	if err := r.ensureUserExists(ctx, userID); err != nil {
		return models.Favorites{}, err
	}

	dishes, err := r.listFavorites(ctx, favoriteDishes, userID)
	if err != nil {
		return models.Favorites{}, err
	}

	restaurants, err := r.listFavorites(ctx, favoriteRestaurants, userID)
	if err != nil {
		return models.Favorites{}, err
	}

	return models.Favorites{Dishes: dishes, Restaurants: restaurants}, nil
}

func (r *userRepository) listFavorites(ctx context.Context, set favoriteSet, userID string) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectFavoritesQuery(r.db.builder(), set, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.listFavorites").Str("table", set.table).Msg("error selecting favorites")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]string, 0)
	for rows.Next() {
		var item string
		if err = rows.Scan(&item); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

// SetPhone updates the phone column.
//
// Error handling:
//   - unique violation on phone → [ErrPhoneAlreadyExists].
//   - no row updated → [ErrNoUserWasFound].
func (r *userRepository) SetPhone(ctx context.Context, userID, phone string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePhoneQuery(r.db.builder(), userID, phone)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrPhoneAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.SetPhone").Msg("error updating phone")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	updated, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if updated == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

func (r *userRepository) ensureUserExists(ctx context.Context, userID string) error {
	query, args, err := buildUserExistsQuery(r.db.builder(), userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var one int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNoUserWasFound
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
