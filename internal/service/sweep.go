package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/campuslib/lending-service/internal/model"
)

// Enqueuer publishes notification messages to the broker.
type Enqueuer interface {
	Enqueue(topic string, v any) error
}

// RunSweep walks all overdue open transactions in due-date order, reconciles
// each fine and enqueues a notification per created or updated fine. A
// failed dispatch or a failed reconciliation is logged and counted, never
// aborts the sweep. Repeated runs on the same day settle into pure Updated
// no-ops by the reconciliation idempotence.
func (s *Service) RunSweep(ctx context.Context) (model.SweepReport, error) {
	s.sweepMu.Lock()
	defer s.sweepMu.Unlock()

	overdue, err := s.repo.ListOverdue(ctx, s.clock.Today())
	if err != nil {
		return model.SweepReport{}, err
	}

	report := model.SweepReport{RanAt: s.clock.Now()}
	for _, tr := range overdue {
		outcome, fine, err := s.ApplyOrUpdateFine(ctx, tr)
		if err != nil {
			report.Failed++
			s.log.Error("sweep: fine reconcile",
				zap.String("transaction_uid", tr.TransactionUID), zap.Error(err))
			continue
		}
		switch outcome {
		case model.FineCreated:
			report.Created++
		case model.FineUpdated:
			report.Updated++
		case model.FineSkipped, model.FineNone:
			report.Skipped++
			continue
		}
		if s.notify(ctx, tr, fine) {
			report.Notified++
		} else {
			report.Failed++
		}
	}

	s.log.Info("sweep finished",
		zap.Int("created", report.Created),
		zap.Int("updated", report.Updated),
		zap.Int("skipped", report.Skipped),
		zap.Int("notified", report.Notified),
		zap.Int("failed", report.Failed))
	return report, nil
}

func (s *Service) notify(ctx context.Context, tr model.Transaction, fine model.Fine) bool {
	member, err := s.repo.GetMember(ctx, tr.MemberUID)
	if err != nil {
		s.log.Warn("sweep: member lookup", zap.String("member_uid", tr.MemberUID), zap.Error(err))
		return false
	}
	book, err := s.repo.GetBook(ctx, tr.BookUID)
	if err != nil {
		s.log.Warn("sweep: book lookup", zap.String("book_uid", tr.BookUID), zap.Error(err))
		return false
	}

	msg := model.FineNotification{
		TransactionUID: tr.TransactionUID,
		MemberUID:      member.MemberUID,
		Email:          member.Email,
		MemberName:     member.Name,
		BookTitle:      book.Title,
		Amount:         fine.Amount,
		DaysOverdue:    daysOverdue(tr, s.clock.Today()),
	}
	if err := s.cb.Call(func() error { return s.enqueuer.Enqueue(s.topic, msg) }); err != nil {
		s.log.Warn("sweep: notification dispatch",
			zap.String("transaction_uid", tr.TransactionUID), zap.Error(err))
		return false
	}
	return true
}
