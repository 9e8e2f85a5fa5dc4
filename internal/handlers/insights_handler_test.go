package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"quickspend/internal/analytics"
	"quickspend/internal/models"
	"quickspend/internal/streak"
	"quickspend/internal/suggest"
)

func setupInsightsRouter(handler *InsightsHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.GET("/insights/dashboard", handler.GetDashboard)
	auth.GET("/insights/cards", handler.GetCards)
	auth.GET("/insights/streaks", handler.GetStreaks)
	auth.GET("/insights/suggestions", handler.GetSuggestions)
	return r
}

func TestInsightsHandler_GetDashboard(t *testing.T) {
	t.Run("defaults to this_month", func(t *testing.T) {
		var gotPeriod analytics.Period
		svc := &mockInsightsService{
			dashboardFn: func(_ string, period analytics.Period, _ time.Time) (*analytics.Dashboard, error) {
				gotPeriod = period
				return &analytics.Dashboard{PeriodTotal: 300}, nil
			},
		}
		r := setupInsightsRouter(NewInsightsHandler(svc))

		rec := doRequest(r, "GET", "/insights/dashboard", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotPeriod.Type != analytics.PeriodThisMonth {
			t.Errorf("expected default period this_month, got %s", gotPeriod.Type)
		}
		result := parseJSON(t, rec)
		d := result["dashboard"].(map[string]interface{})
		if d["period_total"].(float64) != 300 {
			t.Errorf("expected period total 300, got %v", d["period_total"])
		}
	})

	t.Run("returns 400 on unknown period", func(t *testing.T) {
		r := setupInsightsRouter(NewInsightsHandler(&mockInsightsService{}))

		rec := doRequest(r, "GET", "/insights/dashboard?period=fortnight", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_PERIOD")
	})

	t.Run("custom period requires start and end", func(t *testing.T) {
		r := setupInsightsRouter(NewInsightsHandler(&mockInsightsService{}))

		rec := doRequest(r, "GET", "/insights/dashboard?period=custom", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}

		rec = doRequest(r, "GET", "/insights/dashboard?period=custom&start=2026-08-01&end=2026-08-31", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 with valid dates, got %d: %s", rec.Code, rec.Body.String())
		}
	})
}

func TestInsightsHandler_GetCards(t *testing.T) {
	svc := &mockInsightsService{
		cardsFn: func(_ string, _ analytics.Period, _ time.Time) ([]analytics.Card, error) {
			return []analytics.Card{{ID: analytics.CardIDSpent, Kind: analytics.CardStat}}, nil
		},
	}
	r := setupInsightsRouter(NewInsightsHandler(svc))

	rec := doRequest(r, "GET", "/insights/cards", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	cards := result["cards"].([]interface{})
	if len(cards) != 1 {
		t.Fatalf("expected 1 card, got %d", len(cards))
	}
}

func TestInsightsHandler_GetStreaks(t *testing.T) {
	svc := &mockInsightsService{
		streaksFn: func(_ string, _ time.Time) (*streak.Data, error) {
			return &streak.Data{SpendingStreak: 3}, nil
		},
	}
	r := setupInsightsRouter(NewInsightsHandler(svc))

	rec := doRequest(r, "GET", "/insights/streaks", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	result := parseJSON(t, rec)
	streaks := result["streaks"].(map[string]interface{})
	if streaks["spending_streak"].(float64) != 3 {
		t.Errorf("expected spending streak 3, got %v", streaks["spending_streak"])
	}
}

func TestInsightsHandler_GetSuggestions(t *testing.T) {
	t.Run("passes query and limit", func(t *testing.T) {
		var gotQuery string
		var gotLimit int
		svc := &mockInsightsService{
			suggestionsFn: func(_, query string, limit int) ([]suggest.Suggestion, error) {
				gotQuery, gotLimit = query, limit
				return []suggest.Suggestion{{
					Transaction: models.Transaction{Reason: "chai"},
					MatchScore:  98,
					Text:        "chai JazzCash 50",
				}}, nil
			},
		}
		r := setupInsightsRouter(NewInsightsHandler(svc))

		rec := doRequest(r, "GET", "/insights/suggestions?q=ch&limit=3", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotQuery != "ch" || gotLimit != 3 {
			t.Errorf("expected (ch, 3), got (%s, %d)", gotQuery, gotLimit)
		}
	})

	t.Run("returns 400 on bad limit", func(t *testing.T) {
		r := setupInsightsRouter(NewInsightsHandler(&mockInsightsService{}))

		rec := doRequest(r, "GET", "/insights/suggestions?q=ch&limit=lots", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
