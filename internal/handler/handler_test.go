package handler_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campuslib/lending-service/internal/errs"
	"github.com/campuslib/lending-service/internal/handler"
	service_mocks "github.com/campuslib/lending-service/internal/handler/mocks"
	"github.com/campuslib/lending-service/internal/model"
	"github.com/campuslib/lending-service/pkg/auth"
	md "github.com/campuslib/lending-service/pkg/middleware"
	"github.com/campuslib/lending-service/pkg/validate"
)

const (
	memberUID      = "e0a12045-9b8f-4b62-8c4c-649e5e681a31"
	bookUID        = "5b2e6f4a-6a7f-45b1-9f3e-2f3be13c6075"
	transactionUID = "8a6439d3-f8b4-4b3a-b9e5-44d55839ee05"
	requestUID     = "3f0c0f8d-2f49-4f0b-9a47-0f2ce17f10a2"
)

func TestHandler_Borrow(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockLendingService)

	borrowedAt := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	dueDate := borrowedAt.AddDate(0, 0, 14)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			body: fmt.Sprintf(`{"memberUid":%q,"bookUid":%q}`, memberUID, bookUID),
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().
					Borrow(gomock.Any(), memberUID, bookUID).
					Return(model.Transaction{
						TransactionUID: transactionUID,
						MemberUID:      memberUID,
						BookUID:        bookUID,
						BorrowedAt:     borrowedAt,
						DueDate:        dueDate,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"transactionUid":"8a6439d3-f8b4-4b3a-b9e5-44d55839ee05","memberUid":"e0a12045-9b8f-4b62-8c4c-649e5e681a31","bookUid":"5b2e6f4a-6a7f-45b1-9f3e-2f3be13c6075","borrowedAt":"2026-03-01T00:00:00Z","dueDate":"2026-03-15T00:00:00Z"}`,
			},
			wantErr: false,
		},
		{
			name:         "err. invalid member uid",
			body:         fmt.Sprintf(`{"memberUid":"not-a-uuid","bookUid":%q}`, bookUID),
			mockBehavior: func(r *service_mocks.MockLendingService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
			wantErr: true,
		},
		{
			name: "err. book unavailable",
			body: fmt.Sprintf(`{"memberUid":%q,"bookUid":%q}`, memberUID, bookUID),
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().
					Borrow(gomock.Any(), memberUID, bookUID).
					Return(model.Transaction{}, errs.ErrItemUnavailable)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"book is not available"}`,
			},
			wantErr: true,
		},
		{
			name: "err. loan limit",
			body: fmt.Sprintf(`{"memberUid":%q,"bookUid":%q}`, memberUID, bookUID),
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().
					Borrow(gomock.Any(), memberUID, bookUID).
					Return(model.Transaction{}, errs.ErrLoanLimitReached)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"member loan limit reached"}`,
			},
			wantErr: true,
		},
		{
			name: "err. internal",
			body: fmt.Sprintf(`{"memberUid":%q,"bookUid":%q}`, memberUID, bookUID),
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().
					Borrow(gomock.Any(), memberUID, bookUID).
					Return(model.Transaction{}, errors.New("db internal"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockLendingService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/transactions", h.Borrow)

			r := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_Return(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockLendingService(c)
	h := handler.New(svc, zap.NewExample().Named("test"))

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	e.POST("/transactions/:transactionUid/return", h.Return)

	svc.EXPECT().
		Return(gomock.Any(), transactionUID).
		Return(model.Transaction{}, errs.ErrAlreadyReturned)

	r := httptest.NewRequest(http.MethodPost, "/transactions/"+transactionUID+"/return", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, `{"message":"transaction already returned"}`, strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_ProcessExtension(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
	}
	type mockBehavior func(r *service_mocks.MockLendingService)

	var tests = []struct {
		name         string
		role         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "librarian approves",
			role: "librarian",
			body: `{"decision":"APPROVE"}`,
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().
					ProcessExtension(gomock.Any(), requestUID, "kate", model.DecisionApprove).
					Return(model.ExtensionRequest{RequestUID: requestUID, Status: model.ExtensionApproved}, nil)
			},
			response: response{expectedCode: http.StatusOK},
		},
		{
			name:         "student is forbidden",
			role:         "student",
			body:         `{"decision":"APPROVE"}`,
			mockBehavior: func(r *service_mocks.MockLendingService) {},
			response:     response{expectedCode: http.StatusForbidden},
		},
		{
			name: "double processing conflicts",
			role: "admin",
			body: `{"decision":"REJECT"}`,
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().
					ProcessExtension(gomock.Any(), requestUID, "kate", model.DecisionReject).
					Return(model.ExtensionRequest{}, errs.ErrAlreadyProcessed)
			},
			response: response{expectedCode: http.StatusConflict},
		},
		{
			name:         "invalid decision",
			role:         "librarian",
			body:         `{"decision":"MAYBE"}`,
			mockBehavior: func(r *service_mocks.MockLendingService) {},
			response:     response{expectedCode: http.StatusBadRequest},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockLendingService(c)
			h := handler.New(svc, zap.NewExample().Named("test"))

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/extensions/:requestUid/process", h.ProcessExtension, md.AuthContext, md.RequireManager)

			r := httptest.NewRequest(http.MethodPost, "/extensions/"+requestUID+"/process", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			r.Header.Set(auth.XUserNameHeader, "kate")
			r.Header.Set(auth.XUserRoleHeader, tt.role)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
		})
	}
}

func TestHandler_RunSweep(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockLendingService(c)
	h := handler.New(svc, zap.NewExample().Named("test"))

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	e.POST("/sweep", h.RunSweep, md.AuthContext, md.RequireManager)

	svc.EXPECT().
		RunSweep(gomock.Any()).
		Return(model.SweepReport{Created: 2, Updated: 3, Skipped: 1, Notified: 5}, nil)

	r := httptest.NewRequest(http.MethodPost, "/sweep", http.NoBody)
	r.Header.Set(auth.XUserNameHeader, "kate")
	r.Header.Set(auth.XUserRoleHeader, "admin")
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"created":2`)
	require.Contains(t, w.Body.String(), `"notified":5`)
}

func TestHandler_GetTransaction_RequiresIdentity(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockLendingService(c)
	h := handler.New(svc, zap.NewExample().Named("test"))

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	e.GET("/transactions/:transactionUid", h.GetTransaction, md.AuthContext)

	r := httptest.NewRequest(http.MethodGet, "/transactions/"+transactionUID, http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}
