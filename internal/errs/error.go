package errs

import (
	"errors"
)

var (
	ErrNotFound             = errors.New("not found")
	ErrItemUnavailable      = errors.New("book is not available")
	ErrAlreadyReturned      = errors.New("transaction already returned")
	ErrLoanLimitReached     = errors.New("member loan limit reached")
	ErrTransactionNotOpen   = errors.New("transaction is not open")
	ErrAlreadyProcessed     = errors.New("extension request already processed")
	ErrPendingRequestExists = errors.New("pending extension request already exists")
)
