package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/campuslib/lending-service/internal/errs"
	"github.com/campuslib/lending-service/internal/model"
)

type ExtensionRepository interface {
	CreateExtensionRequest(ctx context.Context, transactionUID, memberUID string, days int) (model.ExtensionRequest, error)
	GetExtensionRequest(ctx context.Context, requestUID string) (model.ExtensionRequest, error)
	ListExtensionRequests(ctx context.Context, status model.ExtensionStatus) ([]model.ExtensionRequest, error)
	ProcessExtensionRequest(ctx context.Context, requestUID, actor string, approve bool) (model.ExtensionRequest, error)
}

const extensionColumns = `id, request_uid, transaction_uid, member_uid, days, status, processed_at, processed_by, created_at`

func (r *repository) CreateExtensionRequest(ctx context.Context, transactionUID, memberUID string, days int) (model.ExtensionRequest, error) {
	q, args, err := qb.Insert(extensionsTableName).
		Columns("request_uid", "transaction_uid", "member_uid", "days", "status").
		Values(uuid.New(), transactionUID, memberUID, days, model.ExtensionPending).
		Suffix("returning " + extensionColumns).
		ToSql()
	if err != nil {
		return model.ExtensionRequest{}, err
	}
	var req model.ExtensionRequest
	if err := r.db.GetContext(ctx, &req, q, args...); err != nil {
		if uniqueViolation(err) {
			return model.ExtensionRequest{}, errs.ErrPendingRequestExists
		}
		return model.ExtensionRequest{}, err
	}
	return req, nil
}

func (r *repository) GetExtensionRequest(ctx context.Context, requestUID string) (model.ExtensionRequest, error) {
	q, args, err := qb.Select("id", "request_uid", "transaction_uid", "member_uid", "days", "status", "processed_at", "processed_by", "created_at").
		From(extensionsTableName).
		Where(sq.Eq{"request_uid": requestUID}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.ExtensionRequest{}, err
	}
	var req model.ExtensionRequest
	if err := r.db.GetContext(ctx, &req, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ExtensionRequest{}, errs.ErrNotFound
		}
		return model.ExtensionRequest{}, err
	}
	return req, nil
}

func (r *repository) ListExtensionRequests(ctx context.Context, status model.ExtensionStatus) ([]model.ExtensionRequest, error) {
	q := qb.Select("id", "request_uid", "transaction_uid", "member_uid", "days", "status", "processed_at", "processed_by", "created_at").
		From(extensionsTableName).
		OrderBy("created_at asc")
	if status != "" {
		q = q.Where(sq.Eq{"status": status})
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.ExtensionRequest
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

// ProcessExtensionRequest performs the single conditional pending->terminal
// transition. Approval adds the requested days to the current due date in
// the same database transaction; a returned loan rolls everything back.
func (r *repository) ProcessExtensionRequest(ctx context.Context, requestUID, actor string, approve bool) (model.ExtensionRequest, error) {
	status := model.ExtensionRejected
	if approve {
		status = model.ExtensionApproved
	}
	var processed model.ExtensionRequest
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		q := fmt.Sprintf(`update %s
	set status = $2, processed_at = now(), processed_by = $3
	where request_uid = $1 and status = $4
	returning %s`, extensionsTableName, extensionColumns)
		if err := tx.GetContext(ctx, &processed, q, requestUID, status, actor, model.ExtensionPending); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				var exists bool
				q = fmt.Sprintf(`select exists(select 1 from %s where request_uid = $1)`, extensionsTableName)
				if err := tx.QueryRowContext(ctx, q, requestUID).Scan(&exists); err != nil {
					return err
				}
				if exists {
					return errs.ErrAlreadyProcessed
				}
				return errs.ErrNotFound
			}
			return err
		}
		if !approve {
			return nil
		}

		// extends from the current due date, not from today
		q = fmt.Sprintf(`update %s
	set due_date = due_date + $2
	where transaction_uid = $1 and returned_at is null`, txTableName)
		res, err := tx.ExecContext(ctx, q, processed.TransactionUID, processed.Days)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return errs.ErrTransactionNotOpen
		}
		return nil
	})
	if err != nil {
		return model.ExtensionRequest{}, err
	}
	return processed, nil
}
