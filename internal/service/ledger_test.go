package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/campuslib/lending-service/internal/errs"
	"github.com/campuslib/lending-service/internal/model"
)

const testBookUID = "5b2e6f4a-6a7f-45b1-9f3e-2f3be13c6075"

func TestService_Borrow(t *testing.T) {
	t.Parallel()

	t.Run("due date is today plus the configured loan duration", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t, &stubClock{today: day(0)})
		repo.EXPECT().GetAllSettings(gomock.Any()).
			Return(settingsBundle("1.00"), nil).AnyTimes()
		gomock.InOrder(
			repo.EXPECT().GetMember(gomock.Any(), testMemberUID).
				Return(model.Member{MemberUID: testMemberUID}, nil),
			repo.EXPECT().CreateBorrow(gomock.Any(), testMemberUID, testBookUID, day(14), 5).
				Return(model.Transaction{
					TransactionUID: testTransactionUID,
					MemberUID:      testMemberUID,
					BookUID:        testBookUID,
					BorrowedAt:     day(0),
					DueDate:        day(14),
				}, nil),
		)

		tr, err := svc.Borrow(context.Background(), testMemberUID, testBookUID)
		require.NoError(t, err)
		require.Equal(t, day(14), tr.DueDate)
		require.True(t, tr.IsOpen())
	})

	t.Run("unknown member", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t, &stubClock{today: day(0)})
		repo.EXPECT().GetMember(gomock.Any(), testMemberUID).
			Return(model.Member{}, errs.ErrNotFound)

		_, err := svc.Borrow(context.Background(), testMemberUID, testBookUID)
		require.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("unavailable book", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t, &stubClock{today: day(0)})
		repo.EXPECT().GetAllSettings(gomock.Any()).
			Return(settingsBundle("1.00"), nil).AnyTimes()
		gomock.InOrder(
			repo.EXPECT().GetMember(gomock.Any(), testMemberUID).
				Return(model.Member{MemberUID: testMemberUID}, nil),
			repo.EXPECT().CreateBorrow(gomock.Any(), testMemberUID, testBookUID, day(14), 5).
				Return(model.Transaction{}, errs.ErrItemUnavailable),
		)

		_, err := svc.Borrow(context.Background(), testMemberUID, testBookUID)
		require.ErrorIs(t, err, errs.ErrItemUnavailable)
	})
}

func TestService_Return(t *testing.T) {
	t.Parallel()

	t.Run("already returned", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t, &stubClock{today: day(20)})
		repo.EXPECT().ReturnTransaction(gomock.Any(), testTransactionUID).
			Return(model.Transaction{}, errs.ErrAlreadyReturned)

		_, err := svc.Return(context.Background(), testTransactionUID)
		require.ErrorIs(t, err, errs.ErrAlreadyReturned)
	})

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t, &stubClock{today: day(20)})
		returnedAt := day(20)
		repo.EXPECT().ReturnTransaction(gomock.Any(), testTransactionUID).
			Return(model.Transaction{TransactionUID: testTransactionUID, ReturnedAt: &returnedAt}, nil)

		tr, err := svc.Return(context.Background(), testTransactionUID)
		require.NoError(t, err)
		require.False(t, tr.IsOpen())
	})
}
