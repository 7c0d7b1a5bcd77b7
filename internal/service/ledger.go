package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/campuslib/lending-service/internal/model"
)

const (
	defaultLoanDurationDays  = 14
	defaultMaxBooksPerMember = 5
)

func (s *Service) Borrow(ctx context.Context, memberUID, bookUID string) (model.Transaction, error) {
	if _, err := s.repo.GetMember(ctx, memberUID); err != nil {
		return model.Transaction{}, err
	}

	loanDays := s.GetSettingInt(ctx, model.SettingLoanDurationDays, defaultLoanDurationDays)
	maxLoans := s.GetSettingInt(ctx, model.SettingMaxBooksPerMember, defaultMaxBooksPerMember)
	dueDate := s.clock.Today().AddDate(0, 0, loanDays)

	tr, err := s.repo.CreateBorrow(ctx, memberUID, bookUID, dueDate, maxLoans)
	if err != nil {
		return model.Transaction{}, err
	}
	s.log.Info("borrow",
		zap.String("transaction_uid", tr.TransactionUID),
		zap.String("member_uid", memberUID),
		zap.String("book_uid", bookUID),
		zap.Time("due_date", tr.DueDate))
	return tr, nil
}

// Return closes the transaction. From this point the transaction no longer
// appears in ListOverdue and its fine is frozen.
func (s *Service) Return(ctx context.Context, transactionUID string) (model.Transaction, error) {
	tr, err := s.repo.ReturnTransaction(ctx, transactionUID)
	if err != nil {
		return model.Transaction{}, err
	}
	s.log.Info("return",
		zap.String("transaction_uid", tr.TransactionUID),
		zap.String("book_uid", tr.BookUID))
	return tr, nil
}

func (s *Service) ListOverdue(ctx context.Context) ([]model.Transaction, error) {
	return s.repo.ListOverdue(ctx, s.clock.Today())
}

func (s *Service) GetTransaction(ctx context.Context, transactionUID string) (model.Transaction, error) {
	return s.repo.GetTransaction(ctx, transactionUID)
}

func (s *Service) ListTransactionsByMember(ctx context.Context, memberUID string) ([]model.Transaction, error) {
	return s.repo.ListTransactionsByMember(ctx, memberUID)
}
