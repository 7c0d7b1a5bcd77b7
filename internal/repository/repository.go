package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -destination=mocks/mock.go -package=mock_repository github.com/campuslib/lending-service/internal/repository Repository

type Repository interface {
	SettingsRepository
	CatalogRepository
	LedgerRepository
	FineRepository
	ExtensionRepository
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	membersTableName    = `members`
	booksTableName      = `books`
	txTableName         = `transactions`
	finesTableName      = `fines`
	extensionsTableName = `extension_requests`
	settingsTableName   = `settings`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// uniqueViolation reports whether err is a Postgres unique-constraint
// violation, anywhere in the wrap chain.
func uniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

// inTx runs fn inside a database transaction, rolling back on error.
func (r *repository) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
