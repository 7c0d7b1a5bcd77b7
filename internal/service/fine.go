package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/campuslib/lending-service/internal/model"
)

var defaultFinePerDay = decimal.RequireFromString("1.00")

// daysOverdue counts whole days past the due date, due-date exclusive: a
// transaction due today is not yet overdue.
func daysOverdue(tr model.Transaction, today time.Time) int {
	due := tr.DueDate.Truncate(24 * time.Hour)
	day := today.Truncate(24 * time.Hour)
	if !day.After(due) {
		return 0
	}
	return int(day.Sub(due) / (24 * time.Hour))
}

// CalculateFine returns the fine owed as of today: zero for returned or
// not-yet-overdue transactions, otherwise days overdue times the per-day
// rate, at 2-decimal precision.
func (s *Service) CalculateFine(ctx context.Context, tr model.Transaction) decimal.Decimal {
	if !tr.IsOpen() {
		return decimal.Zero
	}
	days := daysOverdue(tr, s.clock.Today())
	if days <= 0 {
		return decimal.Zero
	}
	perDay := s.GetSettingDecimal(ctx, model.SettingFinePerDay, defaultFinePerDay)
	return perDay.Mul(decimal.NewFromInt(int64(days))).Round(2)
}

// ApplyOrUpdateFine is the idempotent reconciliation step the sweep runs per
// overdue transaction. A non-positive amount is a no-op; otherwise the
// latest fine row is created or updated, and paid fines stay untouched.
func (s *Service) ApplyOrUpdateFine(ctx context.Context, tr model.Transaction) (model.FineOutcome, model.Fine, error) {
	amount := s.CalculateFine(ctx, tr)
	if amount.LessThanOrEqual(decimal.Zero) {
		return model.FineNone, model.Fine{}, nil
	}

	outcome, fine, err := s.repo.ReconcileFine(ctx, tr.TransactionUID, tr.MemberUID, amount)
	if err != nil {
		return "", model.Fine{}, err
	}
	s.log.Debug("fine reconciled",
		zap.String("transaction_uid", tr.TransactionUID),
		zap.String("outcome", string(outcome)),
		zap.String("amount", amount.StringFixed(2)))
	return outcome, fine, nil
}

func (s *Service) ListFinesByMember(ctx context.Context, memberUID string) ([]model.Fine, error) {
	return s.repo.ListFinesByMember(ctx, memberUID)
}

// ComputedFine exposes the current fine of a transaction for the reporting
// screens without writing anything. A paid fine reports its frozen amount,
// everything else reports the live computation.
func (s *Service) ComputedFine(ctx context.Context, transactionUID string) (decimal.Decimal, error) {
	tr, err := s.repo.GetTransaction(ctx, transactionUID)
	if err != nil {
		return decimal.Zero, err
	}
	latest, ok, err := s.repo.GetLatestFine(ctx, transactionUID)
	if err != nil {
		return decimal.Zero, err
	}
	if ok && latest.Paid {
		return latest.Amount, nil
	}
	return s.CalculateFine(ctx, tr), nil
}
