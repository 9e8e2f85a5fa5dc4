package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "quickspend/internal/errors"
	"quickspend/internal/models"
	"quickspend/internal/pagination"
	"quickspend/internal/services"
	"quickspend/internal/shorthand"
)

func setupTransactionRouter(handler *TransactionHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.POST("/transactions/shorthand", handler.LogShorthand)
	auth.POST("/transactions/parse", handler.PreviewShorthand)
	auth.POST("/transactions", handler.CreateTransaction)
	auth.GET("/transactions", handler.GetTransactions)
	auth.GET("/transactions/:id", handler.GetTransactionByID)
	auth.PUT("/transactions/:id", handler.UpdateTransaction)
	auth.DELETE("/transactions/:id", handler.DeleteTransaction)
	return r
}

func TestTransactionHandler_LogShorthand(t *testing.T) {
	t.Run("returns 201 and defaults type to expense", func(t *testing.T) {
		var gotType models.TransactionType
		txSvc := &mockTransactionService{
			logShorthandFn: func(userID, raw string, txType models.TransactionType, _ *models.Necessity) (*models.Transaction, error) {
				gotType = txType
				return &models.Transaction{
					UserID:      userID,
					Reason:      "chai",
					Amount:      50,
					PaymentMode: "JazzCash",
					Type:        txType,
				}, nil
			},
		}
		handler := NewTransactionHandler(txSvc, &mockAuditService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions/shorthand", `{"text":"chai JC 50"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotType != models.TransactionTypeExpense {
			t.Errorf("expected default type expense, got %s", gotType)
		}
		result := parseJSON(t, rec)
		tx := result["transaction"].(map[string]interface{})
		if tx["reason"] != "chai" {
			t.Errorf("expected reason chai, got %v", tx["reason"])
		}
	})

	t.Run("returns 400 on unparsable line", func(t *testing.T) {
		txSvc := &mockTransactionService{
			logShorthandFn: func(_, _ string, _ models.TransactionType, _ *models.Necessity) (*models.Transaction, error) {
				return nil, apperrors.ErrUnparsableCommand
			},
		}
		handler := NewTransactionHandler(txSvc, &mockAuditService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions/shorthand", `{"text":"chai"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "UNPARSABLE_COMMAND")
	})

	t.Run("returns 400 on missing text", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{}, &mockAuditService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions/shorthand", `{}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on invalid necessity", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{}, &mockAuditService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions/shorthand",
			`{"text":"chai 50","necessity":"luxury"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestTransactionHandler_PreviewShorthand(t *testing.T) {
	amount := 150.0
	txSvc := &mockTransactionService{
		previewShorthandFn: func(_, raw string) (shorthand.ParsedInput, error) {
			return shorthand.ParsedInput{
				Reason:      "coffee",
				PaymentMode: "Cash",
				Amount:      &amount,
				IsValid:     true,
			}, nil
		},
	}
	handler := NewTransactionHandler(txSvc, &mockAuditService{})
	r := setupTransactionRouter(handler)

	rec := doRequest(r, "POST", "/transactions/parse", `{"text":"coffee 100+50"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	parsed := result["parsed"].(map[string]interface{})
	if parsed["amount"].(float64) != 150 {
		t.Errorf("expected amount 150, got %v", parsed["amount"])
	}
	if parsed["is_valid"] != true {
		t.Errorf("expected is_valid true, got %v", parsed["is_valid"])
	}
}

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		txSvc := &mockTransactionService{
			createTransactionFn: func(userID string, txType models.TransactionType, reason string, amount float64, paymentMode string, _ *models.Necessity, _ time.Time) (*models.Transaction, error) {
				return &models.Transaction{
					UserID:      userID,
					Reason:      reason,
					Amount:      amount,
					PaymentMode: paymentMode,
					Type:        txType,
				}, nil
			},
		}
		handler := NewTransactionHandler(txSvc, &mockAuditService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions",
			`{"type":"income","reason":"salary","amount":5000}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		tx := result["transaction"].(map[string]interface{})
		if tx["amount"].(float64) != 5000 {
			t.Errorf("expected amount 5000, got %v", tx["amount"])
		}
	})

	t.Run("returns 400 on invalid type", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{}, &mockAuditService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions",
			`{"type":"transfer","reason":"x","amount":10}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on bad date", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{}, &mockAuditService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions",
			`{"type":"expense","reason":"x","amount":10,"date":"yesterday"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestTransactionHandler_GetTransactions(t *testing.T) {
	t.Run("passes filters to the service", func(t *testing.T) {
		var gotFilter services.TransactionFilter
		txSvc := &mockTransactionService{
			getUserTransactionsFn: func(_ string, _ pagination.PageRequest, filter services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
				gotFilter = filter
				resp := pagination.NewPageResponse([]models.Transaction{}, 1, 20, 0)
				return &resp, nil
			},
		}
		handler := NewTransactionHandler(txSvc, &mockAuditService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "GET", "/transactions?type=expense&min_amount=10&search=Chai", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotFilter.Type == nil || *gotFilter.Type != models.TransactionTypeExpense {
			t.Errorf("expected type filter expense, got %v", gotFilter.Type)
		}
		if gotFilter.MinAmount == nil || *gotFilter.MinAmount != 10 {
			t.Errorf("expected min amount 10, got %v", gotFilter.MinAmount)
		}
		if gotFilter.Search == nil || *gotFilter.Search != "chai" {
			t.Errorf("expected lowercased search chai, got %v", gotFilter.Search)
		}
	})

	t.Run("returns 400 on invalid type filter", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{}, &mockAuditService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "GET", "/transactions?type=transfer", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on oversized page_size", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{}, &mockAuditService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "GET", "/transactions?page_size=500", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestTransactionHandler_GetTransactionByID(t *testing.T) {
	t.Run("returns 404 when missing", func(t *testing.T) {
		txSvc := &mockTransactionService{
			getTransactionByIDFn: func(_, _ string) (*models.Transaction, error) {
				return nil, apperrors.ErrTransactionNotFound
			},
		}
		handler := NewTransactionHandler(txSvc, &mockAuditService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "GET", "/transactions/some-id", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "TRANSACTION_NOT_FOUND")
	})
}

func TestTransactionHandler_DeleteTransaction(t *testing.T) {
	t.Run("returns 204 on success", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{}, &mockAuditService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "DELETE", "/transactions/some-id", "")

		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", rec.Code)
		}
	})
}
