package services

import (
	"time"

	"quickspend/internal/analytics"
	"quickspend/internal/cache"
	"quickspend/internal/logger"
	"quickspend/internal/streak"
	"quickspend/internal/suggest"
)

// insightsService computes dashboards, streaks, and autocomplete suggestions
// over a user's transaction history. Dashboards are memoized in an LRU cache
// keyed by the user's data version, so a cache hit never serves stale numbers
// after a write.
type insightsService struct {
	transactions TransactionServicer
	dashboards   *cache.LRU[analytics.Dashboard]
}

// NewInsightsService creates a new InsightsServicer backed by an LRU cache
// of the given size and TTL.
func NewInsightsService(transactions TransactionServicer, cacheSize int, cacheTTL time.Duration) InsightsServicer {
	return &insightsService{
		transactions: transactions,
		dashboards:   cache.NewLRU[analytics.Dashboard](cacheSize, cacheTTL),
	}
}

// Dashboard returns the aggregated dashboard for a user and period.
func (s *insightsService) Dashboard(userID string, period analytics.Period, now time.Time) (*analytics.Dashboard, error) {
	key, ok := s.cacheKey(userID, period, now)
	if ok {
		if d, hit := s.dashboards.Get(key); hit {
			return &d, nil
		}
	}

	txs, err := s.transactions.ListForInsights(userID)
	if err != nil {
		return nil, err
	}

	d := analytics.Compute(txs, period, now)
	if ok {
		s.dashboards.Set(key, d)
	}
	return &d, nil
}

// Cards returns the dashboard rendered as an ordered card list.
func (s *insightsService) Cards(userID string, period analytics.Period, now time.Time) ([]analytics.Card, error) {
	d, err := s.Dashboard(userID, period, now)
	if err != nil {
		return nil, err
	}
	return analytics.Cards(*d), nil
}

// Streaks computes the user's current spending and no-spending streaks.
// Streaks are cheap to compute and day-sensitive, so they are not cached.
func (s *insightsService) Streaks(userID string, now time.Time) (*streak.Data, error) {
	txs, err := s.transactions.ListForInsights(userID)
	if err != nil {
		return nil, err
	}
	data := streak.Compute(txs, now)
	return &data, nil
}

// Suggestions returns autocomplete suggestions for a partial reason query.
func (s *insightsService) Suggestions(userID, query string, limit int) ([]suggest.Suggestion, error) {
	txs, err := s.transactions.ListForInsights(userID)
	if err != nil {
		return nil, err
	}
	return suggest.Complete(txs, query, limit), nil
}

// cacheKey derives the memoization key for a dashboard. The data version
// makes writes invalidate naturally; the day bucket keeps date-relative
// fields (weekly totals, daily series) from outliving the day they were
// computed on. A version probe failure disables caching for the call.
func (s *insightsService) cacheKey(userID string, period analytics.Period, now time.Time) (string, bool) {
	version, err := s.transactions.DataVersion(userID)
	if err != nil {
		logger.Get().Warnw("dashboard cache disabled for request", "error", err, "user_id", userID)
		return "", false
	}
	day := now.Format("2006-01-02")
	return userID + "|" + version + "|" + period.Key() + "|" + day, true
}
