package suggest

import (
	"testing"
	"time"

	"quickspend/internal/models"
)

func expense(id, reason, mode string, amount float64, date time.Time) models.Transaction {
	return models.Transaction{
		Base:        models.Base{ID: id},
		Reason:      reason,
		Amount:      amount,
		PaymentMode: mode,
		Type:        models.TransactionTypeExpense,
		Date:        date,
	}
}

func TestComplete(t *testing.T) {
	base := time.Date(2026, time.August, 1, 12, 0, 0, 0, time.UTC)

	t.Run("prefix_match_outranks_contains", func(t *testing.T) {
		txs := []models.Transaction{
			expense("1", "coffee", "Cash", 100, base),
			expense("2", "coffee shop", "Cash", 250, base.Add(time.Hour)),
			expense("3", "lunch", "Cash", 400, base.Add(2*time.Hour)),
		}

		got := Complete(txs, "cof", 0)
		if len(got) != 2 {
			t.Fatalf("expected 2 suggestions, got %d", len(got))
		}
		if got[0].Transaction.Reason != "coffee shop" && got[0].Transaction.Reason != "coffee" {
			t.Fatalf("unexpected top reason %q", got[0].Transaction.Reason)
		}
		if got[0].MatchScore <= 50 {
			t.Errorf("expected prefix score above 50, got %d", got[0].MatchScore)
		}
		// Both are prefix matches with the same score; recency order holds.
		if got[0].Transaction.ID != "2" {
			t.Errorf("expected most recent first on tie, got id %s", got[0].Transaction.ID)
		}
	})

	t.Run("shorter_query_scores_higher", func(t *testing.T) {
		txs := []models.Transaction{expense("1", "coffee", "Cash", 100, base)}

		short := Complete(txs, "co", 0)
		long := Complete(txs, "coff", 0)
		if len(short) != 1 || len(long) != 1 {
			t.Fatal("expected one suggestion for each query")
		}
		if short[0].MatchScore <= long[0].MatchScore {
			t.Errorf("expected shorter query to score higher: %d vs %d",
				short[0].MatchScore, long[0].MatchScore)
		}
	})

	t.Run("contains_scores_flat_50", func(t *testing.T) {
		txs := []models.Transaction{expense("1", "starbucks coffee", "Cash", 500, base)}

		got := Complete(txs, "coffee", 0)
		if len(got) != 1 {
			t.Fatalf("expected 1 suggestion, got %d", len(got))
		}
		if got[0].MatchScore != 50 {
			t.Errorf("expected score 50, got %d", got[0].MatchScore)
		}
	})

	t.Run("composite_match_scores_25", func(t *testing.T) {
		txs := []models.Transaction{expense("1", "groceries", "JazzCash", 1200, base)}

		got := Complete(txs, "jazz", 0)
		if len(got) != 1 {
			t.Fatalf("expected 1 suggestion, got %d", len(got))
		}
		if got[0].MatchScore != 25 {
			t.Errorf("expected score 25, got %d", got[0].MatchScore)
		}
	})

	t.Run("dedup_keeps_most_recent", func(t *testing.T) {
		txs := []models.Transaction{
			expense("old", "chai", "Cash", 50, base),
			expense("mid", "chai", "Cash", 50, base.Add(time.Hour)),
			expense("new", "chai", "Cash", 50, base.Add(2*time.Hour)),
		}

		got := Complete(txs, "ch", 0)
		if len(got) != 1 {
			t.Fatalf("expected 1 suggestion after dedup, got %d", len(got))
		}
		if got[0].Transaction.ID != "new" {
			t.Errorf("expected most recent id, got %s", got[0].Transaction.ID)
		}
	})

	t.Run("different_amounts_are_distinct", func(t *testing.T) {
		txs := []models.Transaction{
			expense("1", "chai", "Cash", 50, base),
			expense("2", "chai", "Cash", 60, base.Add(time.Hour)),
		}

		got := Complete(txs, "ch", 0)
		if len(got) != 2 {
			t.Fatalf("expected 2 suggestions, got %d", len(got))
		}
	})

	t.Run("excludes_non_expense", func(t *testing.T) {
		income := models.Transaction{
			Base:        models.Base{ID: "i"},
			Reason:      "salary",
			Amount:      5000,
			PaymentMode: "Cash",
			Type:        models.TransactionTypeIncome,
			Date:        base,
		}

		got := Complete([]models.Transaction{income}, "sal", 0)
		if len(got) != 0 {
			t.Errorf("expected no suggestions, got %d", len(got))
		}
	})

	t.Run("short_query_yields_nothing", func(t *testing.T) {
		txs := []models.Transaction{expense("1", "coffee", "Cash", 100, base)}

		for _, q := range []string{"", " ", "c", " c "} {
			if got := Complete(txs, q, 0); len(got) != 0 {
				t.Errorf("expected empty result for %q, got %d", q, len(got))
			}
		}
	})

	t.Run("truncates_to_limit", func(t *testing.T) {
		var txs []models.Transaction
		for i := 0; i < 10; i++ {
			txs = append(txs, expense(
				string(rune('a'+i)), "coffee run", "Cash", float64(100+i),
				base.Add(time.Duration(i)*time.Hour)))
		}

		got := Complete(txs, "coffee", 3)
		if len(got) != 3 {
			t.Errorf("expected 3 suggestions, got %d", len(got))
		}

		got = Complete(txs, "coffee", 0)
		if len(got) != DefaultLimit {
			t.Errorf("expected default limit %d, got %d", DefaultLimit, len(got))
		}
	})

	t.Run("text_reconstructs_command", func(t *testing.T) {
		txs := []models.Transaction{expense("1", "chai", "JazzCash", 50, base)}

		got := Complete(txs, "ch", 0)
		if len(got) != 1 {
			t.Fatal("expected 1 suggestion")
		}
		if got[0].Text != "chai JazzCash 50" {
			t.Errorf("expected %q, got %q", "chai JazzCash 50", got[0].Text)
		}
	})

	t.Run("skips_malformed_amounts", func(t *testing.T) {
		bad := expense("1", "chai", "Cash", -10, base)
		got := Complete([]models.Transaction{bad}, "ch", 0)
		if len(got) != 0 {
			t.Errorf("expected malformed record skipped, got %d", len(got))
		}
	})
}
