package handler

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/campuslib/lending-service/internal/model"
	"github.com/campuslib/lending-service/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type LendingService interface {
	Borrow(ctx context.Context, memberUID, bookUID string) (model.Transaction, error)
	Return(ctx context.Context, transactionUID string) (model.Transaction, error)
	ListOverdue(ctx context.Context) ([]model.Transaction, error)
	GetTransaction(ctx context.Context, transactionUID string) (model.Transaction, error)
	ListTransactionsByMember(ctx context.Context, memberUID string) ([]model.Transaction, error)

	ComputedFine(ctx context.Context, transactionUID string) (decimal.Decimal, error)
	ListFinesByMember(ctx context.Context, memberUID string) ([]model.Fine, error)

	RequestExtension(ctx context.Context, transactionUID, memberUID string, days int) (model.ExtensionRequest, error)
	ProcessExtension(ctx context.Context, requestUID, actor string, decision model.Decision) (model.ExtensionRequest, error)
	ListExtensions(ctx context.Context, status model.ExtensionStatus) ([]model.ExtensionRequest, error)

	RunSweep(ctx context.Context) (model.SweepReport, error)

	ListSettings(ctx context.Context) ([]model.Setting, error)
	SetSetting(ctx context.Context, name, value string) error
	DeleteSetting(ctx context.Context, name string) error
}

var _ LendingService = (*service.Service)(nil)
