package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/campuslib/lending-service/internal/errs"
	"github.com/campuslib/lending-service/internal/model"
)

type LedgerRepository interface {
	CreateBorrow(ctx context.Context, memberUID, bookUID string, dueDate time.Time, maxOpenLoans int) (model.Transaction, error)
	ReturnTransaction(ctx context.Context, transactionUID string) (model.Transaction, error)
	ListOverdue(ctx context.Context, today time.Time) ([]model.Transaction, error)
	GetTransaction(ctx context.Context, transactionUID string) (model.Transaction, error)
	ListTransactionsByMember(ctx context.Context, memberUID string) ([]model.Transaction, error)
}

const transactionColumns = `id, transaction_uid, member_uid, book_uid, borrowed_at, due_date, returned_at`

// CreateBorrow is the atomic availability check-and-flip. The book row is
// locked for the duration of the transaction; the partial unique index on
// open transactions backs the same invariant structurally, so a concurrent
// borrow that slips past the flag check still fails.
func (r *repository) CreateBorrow(ctx context.Context, memberUID, bookUID string, dueDate time.Time, maxOpenLoans int) (model.Transaction, error) {
	var created model.Transaction
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		var available bool
		q := fmt.Sprintf(`select available from %s where book_uid = $1 for update`, booksTableName)
		if err := tx.QueryRowContext(ctx, q, bookUID).Scan(&available); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return errs.ErrNotFound
			}
			return err
		}
		if !available {
			return errs.ErrItemUnavailable
		}

		var openCount int
		q = fmt.Sprintf(`select count(*) from %s where member_uid = $1 and returned_at is null`, txTableName)
		if err := tx.QueryRowContext(ctx, q, memberUID).Scan(&openCount); err != nil {
			return err
		}
		if openCount >= maxOpenLoans {
			return errs.ErrLoanLimitReached
		}

		q, args, err := qb.Insert(txTableName).
			Columns("transaction_uid", "member_uid", "book_uid", "borrowed_at", "due_date").
			Values(uuid.New(), memberUID, bookUID, time.Now().UTC(), dueDate.Format(time.DateOnly)).
			Suffix("returning " + transactionColumns).
			ToSql()
		if err != nil {
			return err
		}
		if err := tx.GetContext(ctx, &created, q, args...); err != nil {
			if uniqueViolation(err) {
				return errs.ErrItemUnavailable
			}
			r.log.Error("CreateBorrow", zap.String("q", q), zap.Any("args", args))
			return err
		}

		q = fmt.Sprintf(`update %s set available = false where book_uid = $1`, booksTableName)
		_, err = tx.ExecContext(ctx, q, bookUID)
		return err
	})
	if err != nil {
		return model.Transaction{}, err
	}
	return created, nil
}

func (r *repository) ReturnTransaction(ctx context.Context, transactionUID string) (model.Transaction, error) {
	var returned model.Transaction
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		q := fmt.Sprintf(`update %s
	set returned_at = now()
	where transaction_uid = $1 and returned_at is null
	returning %s`, txTableName, transactionColumns)
		if err := tx.GetContext(ctx, &returned, q, transactionUID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				var exists bool
				q = fmt.Sprintf(`select exists(select 1 from %s where transaction_uid = $1)`, txTableName)
				if err := tx.QueryRowContext(ctx, q, transactionUID).Scan(&exists); err != nil {
					return err
				}
				if exists {
					return errs.ErrAlreadyReturned
				}
				return errs.ErrNotFound
			}
			return err
		}

		q = fmt.Sprintf(`update %s set available = true where book_uid = $1`, booksTableName)
		_, err := tx.ExecContext(ctx, q, returned.BookUID)
		return err
	})
	if err != nil {
		return model.Transaction{}, err
	}
	return returned, nil
}

// ListOverdue orders by due_date ascending so the longest-overdue loans are
// swept and notified first.
func (r *repository) ListOverdue(ctx context.Context, today time.Time) ([]model.Transaction, error) {
	q, args, err := qb.Select("id", "transaction_uid", "member_uid", "book_uid", "borrowed_at", "due_date", "returned_at").
		From(txTableName).
		Where(sq.Eq{"returned_at": nil}).
		Where(sq.Lt{"due_date": today.Format(time.DateOnly)}).
		OrderBy("due_date asc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.Transaction
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) GetTransaction(ctx context.Context, transactionUID string) (model.Transaction, error) {
	q, args, err := qb.Select("id", "transaction_uid", "member_uid", "book_uid", "borrowed_at", "due_date", "returned_at").
		From(txTableName).
		Where(sq.Eq{"transaction_uid": transactionUID}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Transaction{}, err
	}
	var t model.Transaction
	if err := r.db.GetContext(ctx, &t, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Transaction{}, errs.ErrNotFound
		}
		return model.Transaction{}, err
	}
	return t, nil
}

func (r *repository) ListTransactionsByMember(ctx context.Context, memberUID string) ([]model.Transaction, error) {
	q, args, err := qb.Select("id", "transaction_uid", "member_uid", "book_uid", "borrowed_at", "due_date", "returned_at").
		From(txTableName).
		Where(sq.Eq{"member_uid": memberUID}).
		OrderBy("borrowed_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.Transaction
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}
