package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "quickspend/internal/errors"
	"quickspend/internal/models"
	"quickspend/internal/pagination"
	"quickspend/internal/shorthand"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db           *gorm.DB
	paymentModes PaymentModeServicer
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, paymentModes PaymentModeServicer) TransactionServicer {
	return &transactionService{
		db:           db,
		paymentModes: paymentModes,
	}
}

// LogShorthand parses a raw shorthand line against the user's payment modes
// and records the resulting transaction, dated now.
func (s *transactionService) LogShorthand(userID, raw string, txType models.TransactionType, necessity *models.Necessity) (*models.Transaction, error) {
	parsed, err := s.PreviewShorthand(userID, raw)
	if err != nil {
		return nil, err
	}
	if !parsed.IsValid || parsed.Amount == nil {
		return nil, apperrors.ErrUnparsableCommand
	}

	return s.CreateTransaction(userID, txType, parsed.Reason, *parsed.Amount, parsed.PaymentMode, necessity, time.Now())
}

// PreviewShorthand parses a raw shorthand line without persisting anything.
// Callers use it to echo the interpretation back to the user as they type.
func (s *transactionService) PreviewShorthand(userID, raw string) (shorthand.ParsedInput, error) {
	modes, err := s.paymentModes.GetUserPaymentModes(userID)
	if err != nil {
		return shorthand.ParsedInput{}, err
	}
	return shorthand.Parse(raw, modes), nil
}

// CreateTransaction records a fully specified transaction.
func (s *transactionService) CreateTransaction(
	userID string,
	txType models.TransactionType,
	reason string,
	amount float64,
	paymentMode string,
	necessity *models.Necessity,
	date time.Time,
) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	switch txType {
	case models.TransactionTypeExpense, models.TransactionTypeIncome, models.TransactionTypeSavings:
	default:
		return nil, apperrors.ErrInvalidTransactionType
	}
	if reason == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "reason is required")
	}
	if paymentMode == "" {
		paymentMode = shorthand.DefaultPaymentMode
	}
	if date.IsZero() {
		date = time.Now()
	}

	// Necessity only applies to expenses.
	if txType != models.TransactionTypeExpense {
		necessity = nil
	}

	transaction := &models.Transaction{
		UserID:      userID,
		Reason:      reason,
		Amount:      amount,
		PaymentMode: paymentMode,
		Type:        txType,
		Necessity:   necessity,
		Date:        date,
	}
	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transaction, nil
}

// GetUserTransactions retrieves a paginated, filtered list of the user's
// transactions, newest first.
func (s *transactionService) GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	base := s.db.Model(&models.Transaction{}).Where("user_id = ?", userID)
	base = applyTransactionFilters(base, filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := base.Scopes(pagination.Paginate(page)).
		Order("date DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

func applyTransactionFilters(q *gorm.DB, f TransactionFilter) *gorm.DB {
	if f.FromDate != nil {
		q = q.Where("date >= ?", *f.FromDate)
	}
	if f.ToDate != nil {
		q = q.Where("date <= ?", *f.ToDate)
	}
	if f.Type != nil {
		q = q.Where("type = ?", *f.Type)
	}
	if f.Necessity != nil {
		q = q.Where("necessity = ?", *f.Necessity)
	}
	if f.PaymentMode != nil {
		q = q.Where("LOWER(payment_mode) = LOWER(?)", *f.PaymentMode)
	}
	if f.MinAmount != nil {
		q = q.Where("amount >= ?", *f.MinAmount)
	}
	if f.MaxAmount != nil {
		q = q.Where("amount <= ?", *f.MaxAmount)
	}
	if f.Search != nil && *f.Search != "" {
		q = q.Where("LOWER(reason) LIKE ?", "%"+*f.Search+"%")
	}
	return q
}

// GetTransactionByID retrieves a transaction by ID for a specific user
func (s *transactionService) GetTransactionByID(userID, transactionID string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Where("id = ? AND user_id = ?", transactionID, userID).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// UpdateTransaction applies a partial update to a transaction.
func (s *transactionService) UpdateTransaction(userID, transactionID string, update TransactionUpdate) (*models.Transaction, error) {
	transaction, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return nil, err
	}

	if update.Reason != nil {
		if *update.Reason == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "reason cannot be empty")
		}
		transaction.Reason = *update.Reason
	}
	if update.Amount != nil {
		if *update.Amount <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
		}
		transaction.Amount = *update.Amount
	}
	if update.PaymentMode != nil && *update.PaymentMode != "" {
		transaction.PaymentMode = *update.PaymentMode
	}
	if update.Type != nil {
		switch *update.Type {
		case models.TransactionTypeExpense, models.TransactionTypeIncome, models.TransactionTypeSavings:
			transaction.Type = *update.Type
		default:
			return nil, apperrors.ErrInvalidTransactionType
		}
	}
	if update.Necessity != nil {
		transaction.Necessity = update.Necessity
	}
	if update.Date != nil && !update.Date.IsZero() {
		transaction.Date = *update.Date
	}
	if transaction.Type != models.TransactionTypeExpense {
		transaction.Necessity = nil
	}

	if err := s.db.Save(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transaction, nil
}

// DeleteTransaction soft-deletes a transaction owned by the user.
func (s *transactionService) DeleteTransaction(userID, transactionID string) error {
	transaction, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(transaction).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// ListForInsights loads the user's full transaction history, oldest first.
// The aggregation layer works on the whole history in memory.
func (s *transactionService) ListForInsights(userID string) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := s.db.Where("user_id = ?", userID).Order("date ASC").Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

// DataVersion returns a token that changes whenever the user's transaction
// set changes. Inserts and soft deletes move the live row count; updates
// move the newest updated_at, read across deleted rows too.
func (s *transactionService) DataVersion(userID string) (string, error) {
	var count int64
	if err := s.db.Model(&models.Transaction{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var exists int64
	if err := s.db.Model(&models.Transaction{}).
		Unscoped().
		Where("user_id = ?", userID).
		Count(&exists).Error; err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if exists == 0 {
		return "0:0", nil
	}

	// MAX(updated_at) loses the column's type affinity on the sqlite driver,
	// so read the newest row's timestamp through the column itself.
	var latest models.Transaction
	if err := s.db.Model(&models.Transaction{}).
		Unscoped().
		Where("user_id = ?", userID).
		Select("updated_at").
		Order("updated_at DESC").
		Take(&latest).Error; err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return fmt.Sprintf("%d:%d", count, latest.UpdatedAt.UnixNano()), nil
}
