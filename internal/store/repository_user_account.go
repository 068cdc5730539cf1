// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/models"
)

// userAccountRepository is the SQL implementation of [UserAccountRepository].
// It runs statements on conn, which is either the pool or an open
// transaction, and takes the placeholder format and error classifier from db.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured tracing of database interactions.
type userAccountRepository struct {
	db     *DB
	conn   DBTX
	logger *logger.Logger
}

// NewUserAccountRepository constructs a [UserAccountRepository] backed by the
// provided database connection and logger.
func NewUserAccountRepository(db *DB, logger *logger.Logger) UserAccountRepository {
	return newUserAccountRepository(db, db.DB, logger)
}

func newUserAccountRepository(db *DB, conn DBTX, logger *logger.Logger) *userAccountRepository {
	return &userAccountRepository{
		db:     db,
		conn:   conn,
		logger: logger,
	}
}

// CreateAccount inserts a new account row.
//
// Error handling:
//   - unique violation → [ErrAccountAlreadyExists] (callers check the
//     username first, in the same transaction, to report
//     [ErrUsernameAlreadyExists]).
//   - any other driver-level error → [ErrExecutingQuery].
func (r *userAccountRepository) CreateAccount(ctx context.Context, account models.UserAccount) (models.UserAccount, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserAccountQuery(r.db.builder, account)
	if err != nil {
		log.Err(err).Str("func", "userAccountRepository.CreateAccount").Msg("failed to build query")
		return models.UserAccount{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.conn.ExecContext(ctx, query, args...); err != nil {
		class := r.db.classify(err)
		log.Err(err).
			Str("func", "userAccountRepository.CreateAccount").
			Str("user_id", account.ID).
			Stringer("class", class).
			Msg("failed to insert user account")

		if class == UniqueViolation {
			return models.UserAccount{}, fmt.Errorf("%w: %w", ErrAccountAlreadyExists, err)
		}
		return models.UserAccount{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return account, nil
}

// FindByUsername returns the account with exactly this username.
// [ErrAccountNotFound] is returned when there is none.
func (r *userAccountRepository) FindByUsername(ctx context.Context, username string) (models.UserAccount, error) {
	return r.findOne(ctx, "userAccountRepository.FindByUsername", sq.Eq{"username": username})
}

// FindByID returns the account with the given id.
// [ErrAccountNotFound] is returned when there is none.
func (r *userAccountRepository) FindByID(ctx context.Context, id string) (models.UserAccount, error) {
	return r.findOne(ctx, "userAccountRepository.FindByID", sq.Eq{"id": id})
}

func (r *userAccountRepository) findOne(ctx context.Context, funcName string, where sq.Eq) (models.UserAccount, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserAccountQuery(r.db.builder, where)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build query")
		return models.UserAccount{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var account models.UserAccount
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&account.ID,
		&account.Username,
		&account.PasswordDigest,
		&account.Salt,
		&account.Role,
		&account.CreatedAt,
		&account.IsActive,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.UserAccount{}, ErrAccountNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to query user account")
		return models.UserAccount{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return account, nil
}

// UsernameExists reports whether any account, active or inactive, carries
// this username.
func (r *userAccountRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountUsernameQuery(r.db.builder, username)
	if err != nil {
		log.Err(err).Str("func", "userAccountRepository.UsernameExists").Msg("failed to build query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err = r.conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "userAccountRepository.UsernameExists").Msg("failed to count usernames")
		return false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return count > 0, nil
}

// SetActive flips the active flag. [ErrAccountNotFound] is returned when no
// row has the given id.
func (r *userAccountRepository) SetActive(ctx context.Context, id string, active bool) error {
	query, args, err := buildSetActiveQuery(r.db.builder, id, active)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execUpdate(ctx, "userAccountRepository.SetActive", id, query, args)
}

// UpdatePassword replaces digest and salt in one statement.
func (r *userAccountRepository) UpdatePassword(ctx context.Context, id, digest, salt string) error {
	query, args, err := buildUpdatePasswordQuery(r.db.builder, id, digest, salt)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execUpdate(ctx, "userAccountRepository.UpdatePassword", id, query, args)
}

func (r *userAccountRepository) execUpdate(ctx context.Context, funcName, id, query string, args []any) error {
	log := logger.FromContext(ctx)

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		class := r.db.classify(err)
		log.Err(err).Str("func", funcName).Str("user_id", id).Stringer("class", class).Msg("failed to update user account")
		if class == UniqueViolation {
			return fmt.Errorf("%w: %w", ErrAccountAlreadyExists, err)
		}
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Str("user_id", id).Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrAccountNotFound
	}

	return nil
}

// CountAccounts returns the number of stored accounts regardless of state.
func (r *userAccountRepository) CountAccounts(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountUserAccountsQuery(r.db.builder)
	if err != nil {
		log.Err(err).Str("func", "userAccountRepository.CountAccounts").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err = r.conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "userAccountRepository.CountAccounts").Msg("failed to count accounts")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return count, nil
}
