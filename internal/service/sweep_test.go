package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campuslib/lending-service/internal/model"
	mock_repository "github.com/campuslib/lending-service/internal/repository/mocks"
	"github.com/campuslib/lending-service/internal/service"
)

type recordingEnqueuer struct {
	messages []model.FineNotification
	failFor  map[string]bool
}

func (e *recordingEnqueuer) Enqueue(_ string, v any) error {
	n := v.(model.FineNotification)
	if e.failFor[n.TransactionUID] {
		return errors.New("broker unreachable")
	}
	e.messages = append(e.messages, n)
	return nil
}

func TestService_RunSweep(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	repo := mock_repository.NewMockRepository(c)

	trCreated := model.Transaction{
		TransactionUID: "11111111-1111-4111-8111-111111111111",
		MemberUID:      testMemberUID,
		BookUID:        testBookUID,
		DueDate:        day(10),
	}
	trDispatchFails := model.Transaction{
		TransactionUID: "22222222-2222-4222-8222-222222222222",
		MemberUID:      testMemberUID,
		BookUID:        testBookUID,
		DueDate:        day(12),
	}
	trPaid := model.Transaction{
		TransactionUID: "33333333-3333-4333-8333-333333333333",
		MemberUID:      testMemberUID,
		BookUID:        testBookUID,
		DueDate:        day(13),
	}
	trReconcileFails := model.Transaction{
		TransactionUID: "44444444-4444-4444-8444-444444444444",
		MemberUID:      testMemberUID,
		BookUID:        testBookUID,
		DueDate:        day(14),
	}

	enq := &recordingEnqueuer{failFor: map[string]bool{trDispatchFails.TransactionUID: true}}
	svc := service.NewService(repo, enq, zap.NewExample().Named("test"),
		service.WithClock(&stubClock{today: day(20)}))

	repo.EXPECT().GetAllSettings(gomock.Any()).
		Return(settingsBundle("1.00"), nil).AnyTimes()
	// longest overdue first
	repo.EXPECT().ListOverdue(gomock.Any(), day(20)).
		Return([]model.Transaction{trCreated, trDispatchFails, trPaid, trReconcileFails}, nil)

	repo.EXPECT().
		ReconcileFine(gomock.Any(), trCreated.TransactionUID, testMemberUID, decEq{amount("10.00")}).
		Return(model.FineCreated, model.Fine{TransactionUID: trCreated.TransactionUID, Amount: amount("10.00")}, nil)
	repo.EXPECT().
		ReconcileFine(gomock.Any(), trDispatchFails.TransactionUID, testMemberUID, decEq{amount("8.00")}).
		Return(model.FineUpdated, model.Fine{TransactionUID: trDispatchFails.TransactionUID, Amount: amount("8.00")}, nil)
	repo.EXPECT().
		ReconcileFine(gomock.Any(), trPaid.TransactionUID, testMemberUID, decEq{amount("7.00")}).
		Return(model.FineSkipped, model.Fine{TransactionUID: trPaid.TransactionUID, Amount: amount("5.00"), Paid: true}, nil)
	repo.EXPECT().
		ReconcileFine(gomock.Any(), trReconcileFails.TransactionUID, testMemberUID, decEq{amount("6.00")}).
		Return(model.FineOutcome(""), model.Fine{}, errors.New("deadlock detected"))

	member := model.Member{MemberUID: testMemberUID, Name: "Ada", Email: "ada@example.edu"}
	book := model.Book{BookUID: testBookUID, Title: "The Go Programming Language"}
	repo.EXPECT().GetMember(gomock.Any(), testMemberUID).Return(member, nil).Times(2)
	repo.EXPECT().GetBook(gomock.Any(), testBookUID).Return(book, nil).Times(2)

	report, err := svc.RunSweep(context.Background())
	require.NoError(t, err)

	require.Equal(t, 1, report.Created)
	require.Equal(t, 1, report.Updated)
	require.Equal(t, 1, report.Skipped)
	require.Equal(t, 1, report.Notified)
	// one dispatch failure plus one reconcile failure, neither aborts the sweep
	require.Equal(t, 2, report.Failed)

	require.Len(t, enq.messages, 1)
	msg := enq.messages[0]
	require.Equal(t, trCreated.TransactionUID, msg.TransactionUID)
	require.Equal(t, "ada@example.edu", msg.Email)
	require.Equal(t, "The Go Programming Language", msg.BookTitle)
	require.Equal(t, 10, msg.DaysOverdue)
	require.True(t, msg.Amount.Equal(amount("10.00")))
}

func TestService_RunSweep_EmptyLedger(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	repo := mock_repository.NewMockRepository(c)
	svc := service.NewService(repo, &recordingEnqueuer{}, zap.NewExample().Named("test"),
		service.WithClock(&stubClock{today: day(5)}))

	repo.EXPECT().ListOverdue(gomock.Any(), day(5)).Return(nil, nil)

	report, err := svc.RunSweep(context.Background())
	require.NoError(t, err)
	require.Zero(t, report.Created)
	require.Zero(t, report.Updated)
	require.Zero(t, report.Notified)
}
