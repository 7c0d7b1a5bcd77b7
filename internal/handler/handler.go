package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/campuslib/lending-service/internal/errs"
	"github.com/campuslib/lending-service/internal/model"
	"github.com/campuslib/lending-service/pkg/auth"
	md "github.com/campuslib/lending-service/pkg/middleware"
	"github.com/campuslib/lending-service/pkg/validate"
)

type Handler struct {
	lendingSvc LendingService
	log        *zap.Logger
}

func New(lendingSvc LendingService, log *zap.Logger) *Handler {
	return &Handler{
		lendingSvc: lendingSvc,
		log:        log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
		md.AuthContext,
	)

	api.POST("/transactions", h.Borrow)
	api.POST("/transactions/:transactionUid/return", h.Return, md.RequireManager)
	api.GET("/transactions/overdue", h.ListOverdue, md.RequireManager)
	api.GET("/transactions/:transactionUid", h.GetTransaction)
	api.GET("/transactions/:transactionUid/fine", h.ComputedFine)

	api.GET("/members/:memberUid/transactions", h.ListMemberTransactions)
	api.GET("/members/:memberUid/fines", h.ListMemberFines)

	api.POST("/extensions", h.RequestExtension)
	api.POST("/extensions/:requestUid/process", h.ProcessExtension, md.RequireManager)
	api.GET("/extensions", h.ListExtensions, md.RequireManager)

	api.POST("/sweep", h.RunSweep, md.RequireManager)

	api.GET("/settings", h.ListSettings, md.RequireManager)
	api.PUT("/settings/:name", h.SetSetting, md.RequireManager)
	api.DELETE("/settings/:name", h.DeleteSetting, md.RequireManager)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// httpError maps the business-rule sentinels onto statuses; anything else
// is a genuine storage fault.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrItemUnavailable),
		errors.Is(err, errs.ErrAlreadyReturned),
		errors.Is(err, errs.ErrAlreadyProcessed),
		errors.Is(err, errs.ErrPendingRequestExists):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrTransactionNotOpen),
		errors.Is(err, errs.ErrLoanLimitReached):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

func (h *Handler) Borrow(c echo.Context) error {
	var req model.BorrowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	tr, err := h.lendingSvc.Borrow(c.Request().Context(), req.MemberUID, req.BookUID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, tr)
}

func (h *Handler) Return(c echo.Context) error {
	transactionUid := c.Param("transactionUid")
	if transactionUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "transactionUid is empty")
	}
	tr, err := h.lendingSvc.Return(c.Request().Context(), transactionUid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, tr)
}

func (h *Handler) ListOverdue(c echo.Context) error {
	items, err := h.lendingSvc.ListOverdue(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetTransaction(c echo.Context) error {
	tr, err := h.lendingSvc.GetTransaction(c.Request().Context(), c.Param("transactionUid"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, tr)
}

func (h *Handler) ComputedFine(c echo.Context) error {
	amount, err := h.lendingSvc.ComputedFine(c.Request().Context(), c.Param("transactionUid"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"amount": amount})
}

func (h *Handler) ListMemberTransactions(c echo.Context) error {
	items, err := h.lendingSvc.ListTransactionsByMember(c.Request().Context(), c.Param("memberUid"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) ListMemberFines(c echo.Context) error {
	items, err := h.lendingSvc.ListFinesByMember(c.Request().Context(), c.Param("memberUid"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) RequestExtension(c echo.Context) error {
	var req model.ExtensionRequestBody
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	ext, err := h.lendingSvc.RequestExtension(c.Request().Context(), req.TransactionUID, req.MemberUID, req.Days)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, ext)
}

func (h *Handler) ProcessExtension(c echo.Context) error {
	requestUid := c.Param("requestUid")
	if requestUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "requestUid is empty")
	}
	var req model.ProcessExtensionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	id, ok := auth.FromContext(c.Request().Context())
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "no identity")
	}
	ext, err := h.lendingSvc.ProcessExtension(c.Request().Context(), requestUid, id.UserName, req.Decision)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, ext)
}

func (h *Handler) ListExtensions(c echo.Context) error {
	status := model.ExtensionStatus(c.QueryParam("status"))
	switch status {
	case "", model.ExtensionPending, model.ExtensionApproved, model.ExtensionRejected:
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "status is invalid")
	}
	items, err := h.lendingSvc.ListExtensions(c.Request().Context(), status)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) RunSweep(c echo.Context) error {
	report, err := h.lendingSvc.RunSweep(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, report)
}

func (h *Handler) ListSettings(c echo.Context) error {
	items, err := h.lendingSvc.ListSettings(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) SetSetting(c echo.Context) error {
	name := c.Param("name")
	var req model.SetSettingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	if err := h.lendingSvc.SetSetting(c.Request().Context(), name, req.Value); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) DeleteSetting(c echo.Context) error {
	if err := h.lendingSvc.DeleteSetting(c.Request().Context(), c.Param("name")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
