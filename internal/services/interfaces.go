package services

import (
	"time"

	"quickspend/internal/analytics"
	"quickspend/internal/models"
	"quickspend/internal/pagination"
	"quickspend/internal/shorthand"
	"quickspend/internal/streak"
	"quickspend/internal/suggest"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
	StoreRefreshTokenHash(userID, tokenHash string) error
	GetRefreshTokenHash(userID string) (string, error)
}

// PaymentModeServicer defines the contract for payment-mode business logic.
type PaymentModeServicer interface {
	EnsureDefaults(userID string) error
	CreatePaymentMode(userID, name, shorthand, icon, color string) (*models.PaymentMode, error)
	GetUserPaymentModes(userID string) ([]models.PaymentMode, error)
	GetPaymentModeByID(userID, modeID string) (*models.PaymentMode, error)
	UpdatePaymentMode(userID, modeID, name, shorthand, icon, color string) (*models.PaymentMode, error)
	DeletePaymentMode(userID, modeID string) error
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	FromDate    *time.Time
	ToDate      *time.Time
	Type        *models.TransactionType
	Necessity   *models.Necessity
	PaymentMode *string
	MinAmount   *float64
	MaxAmount   *float64
	Search      *string
}

// TransactionUpdate holds optional fields for a partial transaction update.
// Nil fields are left unchanged.
type TransactionUpdate struct {
	Reason      *string
	Amount      *float64
	PaymentMode *string
	Type        *models.TransactionType
	Necessity   *models.Necessity
	Date        *time.Time
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	LogShorthand(userID, raw string, txType models.TransactionType, necessity *models.Necessity) (*models.Transaction, error)
	PreviewShorthand(userID, raw string) (shorthand.ParsedInput, error)
	CreateTransaction(userID string, txType models.TransactionType, reason string, amount float64, paymentMode string, necessity *models.Necessity, date time.Time) (*models.Transaction, error)
	GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(userID, transactionID string) (*models.Transaction, error)
	UpdateTransaction(userID, transactionID string, update TransactionUpdate) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID string) error
	ListForInsights(userID string) ([]models.Transaction, error)
	DataVersion(userID string) (string, error)
}

// InsightsServicer defines the contract for insights and autocomplete.
type InsightsServicer interface {
	Dashboard(userID string, period analytics.Period, now time.Time) (*analytics.Dashboard, error)
	Cards(userID string, period analytics.Period, now time.Time) ([]analytics.Card, error)
	Streaks(userID string, now time.Time) (*streak.Data, error)
	Suggestions(userID, query string, limit int) ([]suggest.Suggestion, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
