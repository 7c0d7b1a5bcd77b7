package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/campuslib/lending-service/internal/errs"
	"github.com/campuslib/lending-service/internal/model"
)

// RequestExtension files a pending request for more days on an open
// transaction. The due date is untouched until a librarian approves.
func (s *Service) RequestExtension(ctx context.Context, transactionUID, memberUID string, days int) (model.ExtensionRequest, error) {
	tr, err := s.repo.GetTransaction(ctx, transactionUID)
	if err != nil {
		return model.ExtensionRequest{}, err
	}
	if !tr.IsOpen() {
		return model.ExtensionRequest{}, errs.ErrTransactionNotOpen
	}

	req, err := s.repo.CreateExtensionRequest(ctx, transactionUID, memberUID, days)
	if err != nil {
		return model.ExtensionRequest{}, err
	}
	s.log.Info("extension requested",
		zap.String("request_uid", req.RequestUID),
		zap.String("transaction_uid", transactionUID),
		zap.Int("days", days))
	return req, nil
}

// ProcessExtension drives the single pending->terminal transition. Approval
// pushes the due date forward from its current value.
func (s *Service) ProcessExtension(ctx context.Context, requestUID, actor string, decision model.Decision) (model.ExtensionRequest, error) {
	req, err := s.repo.ProcessExtensionRequest(ctx, requestUID, actor, decision == model.DecisionApprove)
	if err != nil {
		return model.ExtensionRequest{}, err
	}
	s.log.Info("extension processed",
		zap.String("request_uid", req.RequestUID),
		zap.String("status", string(req.Status)),
		zap.String("actor", actor))
	return req, nil
}

func (s *Service) ListExtensions(ctx context.Context, status model.ExtensionStatus) ([]model.ExtensionRequest, error) {
	return s.repo.ListExtensionRequests(ctx, status)
}
