package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/campuslib/lending-service/internal/model"
)

type FineRepository interface {
	ReconcileFine(ctx context.Context, transactionUID, memberUID string, amount decimal.Decimal) (model.FineOutcome, model.Fine, error)
	ListFinesByMember(ctx context.Context, memberUID string) ([]model.Fine, error)
	GetLatestFine(ctx context.Context, transactionUID string) (model.Fine, bool, error)
}

const fineColumns = `id, fine_uid, transaction_uid, member_uid, amount, paid, paid_at, created_at, updated_at`

// ReconcileFine upserts the computed amount against the latest fine of the
// transaction. The row lock serializes concurrent sweeps per transaction;
// the partial unique index on unpaid fines rules out double-creation even
// across the no-existing-fine path. Paid fines are never touched.
func (r *repository) ReconcileFine(ctx context.Context, transactionUID, memberUID string, amount decimal.Decimal) (model.FineOutcome, model.Fine, error) {
	var (
		outcome model.FineOutcome
		fine    model.Fine
	)
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		q := fmt.Sprintf(`select %s from %s
	where transaction_uid = $1
	order by created_at desc
	limit 1
	for update`, fineColumns, finesTableName)

		var latest model.Fine
		err := tx.GetContext(ctx, &latest, q, transactionUID)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			q, args, err := qb.Insert(finesTableName).
				Columns("fine_uid", "transaction_uid", "member_uid", "amount").
				Values(uuid.New(), transactionUID, memberUID, amount).
				Suffix("returning " + fineColumns).
				ToSql()
			if err != nil {
				return err
			}
			if err := tx.GetContext(ctx, &fine, q, args...); err != nil {
				return err
			}
			outcome = model.FineCreated
			return nil
		case err != nil:
			return err
		case latest.Paid:
			fine = latest
			outcome = model.FineSkipped
			return nil
		default:
			q = fmt.Sprintf(`update %s
	set amount = $2, updated_at = now()
	where id = $1
	returning %s`, finesTableName, fineColumns)
			if err := tx.GetContext(ctx, &fine, q, latest.ID, amount); err != nil {
				return err
			}
			outcome = model.FineUpdated
			return nil
		}
	})
	if err != nil {
		// two sweeps racing past the no-rows branch: the loser's insert hits
		// the unpaid-fine unique index, the winner's run notifies
		if uniqueViolation(err) {
			return model.FineSkipped, model.Fine{}, nil
		}
		return "", model.Fine{}, err
	}
	return outcome, fine, nil
}

func (r *repository) GetLatestFine(ctx context.Context, transactionUID string) (model.Fine, bool, error) {
	q, args, err := qb.Select("id", "fine_uid", "transaction_uid", "member_uid", "amount", "paid", "paid_at", "created_at", "updated_at").
		From(finesTableName).
		Where(sq.Eq{"transaction_uid": transactionUID}).
		OrderBy("created_at desc").
		Limit(1).
		ToSql()
	if err != nil {
		return model.Fine{}, false, err
	}
	var f model.Fine
	if err := r.db.GetContext(ctx, &f, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Fine{}, false, nil
		}
		return model.Fine{}, false, err
	}
	return f, true, nil
}

func (r *repository) ListFinesByMember(ctx context.Context, memberUID string) ([]model.Fine, error) {
	q, args, err := qb.Select("id", "fine_uid", "transaction_uid", "member_uid", "amount", "paid", "paid_at", "created_at", "updated_at").
		From(finesTableName).
		Where(sq.Eq{"member_uid": memberUID}).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.Fine
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}
