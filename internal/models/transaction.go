package models

import "time"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeSavings TransactionType = "savings"
)

// Necessity classifies an expense as a need or a want. A nil necessity
// means the expense is uncategorized. Only meaningful for expenses.
type Necessity string

const (
	NecessityNeed Necessity = "need"
	NecessityWant Necessity = "want"
)

// Transaction represents a logged financial transaction. Reason and
// PaymentMode are display strings resolved at entry time; the shorthand
// parser fills them from the raw input line.
type Transaction struct {
	Base
	UserID      string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Reason      string          `gorm:"not null" json:"reason"`
	Amount      float64         `gorm:"not null" json:"amount"`
	PaymentMode string          `gorm:"not null" json:"payment_mode"`
	Type        TransactionType `gorm:"not null" json:"type"`
	Necessity   *Necessity      `json:"necessity,omitempty"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
}
