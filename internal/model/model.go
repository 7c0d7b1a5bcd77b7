package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Member struct {
	ID        int       `json:"-" db:"id"`
	MemberUID string    `json:"memberUid" db:"member_uid"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Role      string    `json:"role" db:"role"`
	CreatedAt time.Time `json:"-" db:"created_at"`
}

type Book struct {
	ID        int       `json:"-" db:"id"`
	BookUID   string    `json:"bookUid" db:"book_uid"`
	ISBN      string    `json:"isbn" db:"isbn"`
	Title     string    `json:"title" db:"title"`
	Author    string    `json:"author" db:"author"`
	Available bool      `json:"available" db:"available"`
	CreatedAt time.Time `json:"-" db:"created_at"`
}

// Transaction is one borrow episode. It is open while returned_at is null
// and overdue while open with due_date strictly before the current date.
type Transaction struct {
	ID             int        `json:"-" db:"id"`
	TransactionUID string     `json:"transactionUid" db:"transaction_uid"`
	MemberUID      string     `json:"memberUid" db:"member_uid"`
	BookUID        string     `json:"bookUid" db:"book_uid"`
	BorrowedAt     time.Time  `json:"borrowedAt" db:"borrowed_at"`
	DueDate        time.Time  `json:"dueDate" db:"due_date"`
	ReturnedAt     *time.Time `json:"returnedAt,omitempty" db:"returned_at"`
}

func (t Transaction) IsOpen() bool {
	return t.ReturnedAt == nil
}

type Fine struct {
	ID             int             `json:"-" db:"id"`
	FineUID        string          `json:"fineUid" db:"fine_uid"`
	TransactionUID string          `json:"transactionUid" db:"transaction_uid"`
	MemberUID      string          `json:"memberUid" db:"member_uid"`
	Amount         decimal.Decimal `json:"amount" db:"amount"`
	Paid           bool            `json:"paid" db:"paid"`
	PaidAt         *time.Time      `json:"paidAt,omitempty" db:"paid_at"`
	CreatedAt      time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time       `json:"updatedAt" db:"updated_at"`
}

type ExtensionStatus string

const (
	ExtensionPending  ExtensionStatus = "PENDING"
	ExtensionApproved ExtensionStatus = "APPROVED"
	ExtensionRejected ExtensionStatus = "REJECTED"
)

type ExtensionRequest struct {
	ID             int             `json:"-" db:"id"`
	RequestUID     string          `json:"requestUid" db:"request_uid"`
	TransactionUID string          `json:"transactionUid" db:"transaction_uid"`
	MemberUID      string          `json:"memberUid" db:"member_uid"`
	Days           int             `json:"days" db:"days"`
	Status         ExtensionStatus `json:"status" db:"status"`
	ProcessedAt    *time.Time      `json:"processedAt,omitempty" db:"processed_at"`
	ProcessedBy    *string         `json:"processedBy,omitempty" db:"processed_by"`
	CreatedAt      time.Time       `json:"createdAt" db:"created_at"`
}

type Decision string

const (
	DecisionApprove Decision = "APPROVE"
	DecisionReject  Decision = "REJECT"
)

type Setting struct {
	Name      string    `json:"name" db:"name"`
	Value     string    `json:"value" db:"value"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Settings keys the core reads. Stored as text, parsed by the reader.
const (
	SettingLoanDurationDays  = "loan_duration_days"
	SettingMaxBooksPerMember = "max_books_per_member"
	SettingFinePerDay        = "overdue_fine_per_day"
)

// FineOutcome tells the sweep what ReconcileFine did with a transaction.
type FineOutcome string

const (
	FineCreated FineOutcome = "CREATED"
	FineUpdated FineOutcome = "UPDATED"
	FineSkipped FineOutcome = "SKIPPED"
	FineNone    FineOutcome = "NONE"
)

type SweepReport struct {
	Created  int       `json:"created"`
	Updated  int       `json:"updated"`
	Skipped  int       `json:"skipped"`
	Notified int       `json:"notified"`
	Failed   int       `json:"failed"`
	RanAt    time.Time `json:"ranAt"`
}

// FineNotification is the message enqueued per created/updated fine and
// consumed by the mailer.
type FineNotification struct {
	TransactionUID string          `json:"transactionUid"`
	MemberUID      string          `json:"memberUid"`
	Email          string          `json:"email"`
	MemberName     string          `json:"memberName"`
	BookTitle      string          `json:"bookTitle"`
	Amount         decimal.Decimal `json:"amount"`
	DaysOverdue    int             `json:"daysOverdue"`
}

type BorrowRequest struct {
	MemberUID string `json:"memberUid" validate:"required,uuid"`
	BookUID   string `json:"bookUid" validate:"required,uuid"`
}

type ExtensionRequestBody struct {
	TransactionUID string `json:"transactionUid" validate:"required,uuid"`
	MemberUID      string `json:"memberUid" validate:"required,uuid"`
	Days           int    `json:"days" validate:"required,gt=0,lte=90"`
}

type ProcessExtensionRequest struct {
	Decision Decision `json:"decision" validate:"required,oneof=APPROVE REJECT"`
}

type SetSettingRequest struct {
	Value string `json:"value" validate:"required"`
}
