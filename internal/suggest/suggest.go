// Package suggest ranks historical expense transactions against a partial
// reason string to power shorthand autocomplete.
package suggest

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"quickspend/internal/models"
)

// DefaultLimit bounds the number of suggestions when the caller passes no
// explicit limit.
const DefaultLimit = 5

// Scoring tiers. A prefix match on the reason scores scorePrefixBase minus
// the query length, so shorter exact-prefix queries rank higher.
const (
	scorePrefixBase = 100
	scoreContains   = 50
	scoreComposite  = 25
)

// Suggestion pairs a matched transaction with its score and the full
// shorthand command text ready for re-insertion into the input line.
type Suggestion struct {
	Transaction models.Transaction `json:"transaction"`
	MatchScore  int                `json:"match_score"`
	Text        string             `json:"text"`
}

// Complete returns an ordered, deduplicated, size-bounded list of
// suggestions for the given partial input. Only expense transactions are
// considered; queries shorter than two runes yield nothing. Candidates are
// ranked newest-first before scoring so that duplicates collapse to the most
// recent occurrence, then ordered by descending score with ties keeping the
// recency order.
func Complete(txs []models.Transaction, query string, limit int) []Suggestion {
	q := strings.ToLower(strings.TrimSpace(query))
	if utf8.RuneCountInString(q) < 2 {
		return nil
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	candidates := make([]models.Transaction, 0, len(txs))
	for _, t := range txs {
		if t.Type != models.TransactionTypeExpense {
			continue
		}
		if t.Amount <= 0 || math.IsNaN(t.Amount) || math.IsInf(t.Amount, 0) {
			continue
		}
		candidates = append(candidates, t)
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Date.After(candidates[j].Date)
	})

	seen := make(map[string]struct{}, len(candidates))
	var out []Suggestion
	for _, t := range candidates {
		reason := strings.ToLower(t.Reason)
		amountText := FormatAmount(t.Amount)
		composite := reason + " " + strings.ToLower(t.PaymentMode) + " " + amountText

		var score int
		switch {
		case strings.HasPrefix(reason, q):
			score = scorePrefixBase - utf8.RuneCountInString(q)
		case strings.Contains(reason, q):
			score = scoreContains
		case strings.Contains(composite, q):
			score = scoreComposite
		default:
			continue
		}

		key := reason + "|" + strings.ToLower(t.PaymentMode) + "|" + amountText
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		out = append(out, Suggestion{
			Transaction: t,
			MatchScore:  score,
			Text:        t.Reason + " " + t.PaymentMode + " " + amountText,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchScore > out[j].MatchScore
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// FormatAmount renders an amount the way a user would type it, without a
// trailing ".0" on whole values.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
