package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/campuslib/lending-service/internal/errs"
	"github.com/campuslib/lending-service/internal/model"
)

const (
	testTransactionUID = "8a6439d3-f8b4-4b3a-b9e5-44d55839ee05"
	testMemberUID      = "e0a12045-9b8f-4b62-8c4c-649e5e681a31"
	testRequestUID     = "3f0c0f8d-2f49-4f0b-9a47-0f2ce17f10a2"
)

func TestService_RequestExtension(t *testing.T) {
	t.Parallel()

	t.Run("creates a pending request for an open transaction", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t, &stubClock{today: day(10)})
		open := model.Transaction{TransactionUID: testTransactionUID, MemberUID: testMemberUID, DueDate: day(14)}
		gomock.InOrder(
			repo.EXPECT().GetTransaction(gomock.Any(), testTransactionUID).Return(open, nil),
			repo.EXPECT().CreateExtensionRequest(gomock.Any(), testTransactionUID, testMemberUID, 5).
				Return(model.ExtensionRequest{
					RequestUID:     testRequestUID,
					TransactionUID: testTransactionUID,
					MemberUID:      testMemberUID,
					Days:           5,
					Status:         model.ExtensionPending,
				}, nil),
		)

		req, err := svc.RequestExtension(context.Background(), testTransactionUID, testMemberUID, 5)
		require.NoError(t, err)
		require.Equal(t, model.ExtensionPending, req.Status)
		require.Nil(t, req.ProcessedAt)
	})

	t.Run("rejects a returned transaction", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t, &stubClock{today: day(10)})
		returnedAt := day(9)
		repo.EXPECT().GetTransaction(gomock.Any(), testTransactionUID).
			Return(model.Transaction{TransactionUID: testTransactionUID, ReturnedAt: &returnedAt}, nil)

		_, err := svc.RequestExtension(context.Background(), testTransactionUID, testMemberUID, 5)
		require.ErrorIs(t, err, errs.ErrTransactionNotOpen)
	})

	t.Run("propagates the single-pending constraint", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t, &stubClock{today: day(10)})
		open := model.Transaction{TransactionUID: testTransactionUID, MemberUID: testMemberUID, DueDate: day(14)}
		gomock.InOrder(
			repo.EXPECT().GetTransaction(gomock.Any(), testTransactionUID).Return(open, nil),
			repo.EXPECT().CreateExtensionRequest(gomock.Any(), testTransactionUID, testMemberUID, 3).
				Return(model.ExtensionRequest{}, errs.ErrPendingRequestExists),
		)

		_, err := svc.RequestExtension(context.Background(), testTransactionUID, testMemberUID, 3)
		require.ErrorIs(t, err, errs.ErrPendingRequestExists)
	})
}

func TestService_ProcessExtension(t *testing.T) {
	t.Parallel()

	t.Run("approve", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t, &stubClock{today: day(20)})
		processedAt := day(20)
		actor := "librarian-1"
		repo.EXPECT().ProcessExtensionRequest(gomock.Any(), testRequestUID, actor, true).
			Return(model.ExtensionRequest{
				RequestUID:  testRequestUID,
				Status:      model.ExtensionApproved,
				ProcessedAt: &processedAt,
				ProcessedBy: &actor,
			}, nil)

		req, err := svc.ProcessExtension(context.Background(), testRequestUID, actor, model.DecisionApprove)
		require.NoError(t, err)
		require.Equal(t, model.ExtensionApproved, req.Status)
	})

	t.Run("reject", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t, &stubClock{today: day(20)})
		repo.EXPECT().ProcessExtensionRequest(gomock.Any(), testRequestUID, "librarian-1", false).
			Return(model.ExtensionRequest{RequestUID: testRequestUID, Status: model.ExtensionRejected}, nil)

		req, err := svc.ProcessExtension(context.Background(), testRequestUID, "librarian-1", model.DecisionReject)
		require.NoError(t, err)
		require.Equal(t, model.ExtensionRejected, req.Status)
	})

	t.Run("second processing is a conflict", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t, &stubClock{today: day(20)})
		repo.EXPECT().ProcessExtensionRequest(gomock.Any(), testRequestUID, "librarian-1", true).
			Return(model.ExtensionRequest{}, errs.ErrAlreadyProcessed)

		_, err := svc.ProcessExtension(context.Background(), testRequestUID, "librarian-1", model.DecisionApprove)
		require.ErrorIs(t, err, errs.ErrAlreadyProcessed)
	})
}
