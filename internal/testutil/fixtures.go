package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"quickspend/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestPaymentMode creates a payment mode with the given name and shorthand.
func CreateTestPaymentMode(t *testing.T, db *gorm.DB, userID, name, shorthand string) *models.PaymentMode {
	t.Helper()

	mode := &models.PaymentMode{
		UserID:    userID,
		Name:      name,
		Shorthand: shorthand,
		Icon:      "wallet",
		Color:     "#4ade80",
	}
	if err := db.Create(mode).Error; err != nil {
		t.Fatalf("failed to create test payment mode: %v", err)
	}
	return mode
}

// CreateTestTransaction creates a transaction of the given type dated now.
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID string, txType models.TransactionType, amount float64) *models.Transaction {
	t.Helper()
	return CreateTestTransactionAt(t, db, userID, txType, amount, time.Now())
}

// CreateTestTransactionAt creates a transaction with an explicit date.
func CreateTestTransactionAt(t *testing.T, db *gorm.DB, userID string, txType models.TransactionType, amount float64, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:      userID,
		Reason:      fmt.Sprintf("Test Expense %d", nextID()),
		Amount:      amount,
		PaymentMode: "Cash",
		Type:        txType,
		Date:        date,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}
