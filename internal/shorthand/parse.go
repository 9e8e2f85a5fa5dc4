package shorthand

import (
	"math"
	"strconv"
	"strings"

	"quickspend/internal/models"
)

// DefaultPaymentMode is assumed whenever no mode token is recognized.
const DefaultPaymentMode = "Cash"

// fallbackReason stands in when the remaining tokens leave no reason text.
const fallbackReason = "Unknown"

// ParsedInput is the transient result of parsing one raw command line. It is
// recomputed on every edit of the input and never persisted.
type ParsedInput struct {
	Reason      string   `json:"reason"`
	PaymentMode string   `json:"payment_mode"`
	Amount      *float64 `json:"amount"`
	IsValid     bool     `json:"is_valid"`
}

// Parse tokenizes a raw input line into reason, payment mode, and amount.
//
// The final token is the amount candidate; if it contains an arithmetic
// operator it is evaluated, otherwise it is parsed as a plain decimal with
// thousands separators stripped. With three or more tokens, the token before
// the amount is matched case-insensitively against each configured payment
// mode's shorthand and full name; on a match it is consumed as the mode
// indicator. Everything before that is the reason.
func Parse(raw string, modes []models.PaymentMode) ParsedInput {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ParsedInput{PaymentMode: DefaultPaymentMode}
	}

	tokens := strings.Fields(trimmed)
	if len(tokens) < 2 {
		// Preserve the partial text so the user can keep editing.
		return ParsedInput{Reason: trimmed, PaymentMode: DefaultPaymentMode}
	}

	amount, ok := parseAmountToken(tokens[len(tokens)-1])
	if !ok {
		return ParsedInput{Reason: trimmed, PaymentMode: DefaultPaymentMode}
	}

	mode := DefaultPaymentMode
	reasonTokens := tokens[:len(tokens)-1]
	if len(tokens) >= 3 {
		if name, matched := resolveMode(tokens[len(tokens)-2], modes); matched {
			mode = name
			reasonTokens = tokens[:len(tokens)-2]
		}
	}

	reason := strings.Join(reasonTokens, " ")
	if reason == "" {
		reason = fallbackReason
	}

	return ParsedInput{
		Reason:      reason,
		PaymentMode: mode,
		Amount:      &amount,
		IsValid:     reason != "" && amount > 0,
	}
}

// parseAmountToken interprets the final token of a command line. Tokens
// containing an operator go through the evaluator; anything else must parse
// as a positive decimal.
func parseAmountToken(tok string) (float64, bool) {
	if strings.ContainsAny(tok, "+-*/") {
		return Evaluate(tok)
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(tok, ",", ""), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	return v, true
}

// resolveMode matches a typed token against the configured payment modes.
// Matching is exact and case-insensitive on either field; there is no fuzzy
// matching here.
func resolveMode(tok string, modes []models.PaymentMode) (string, bool) {
	for _, m := range modes {
		if strings.EqualFold(tok, m.Shorthand) || strings.EqualFold(tok, m.Name) {
			return m.Name, true
		}
	}
	return "", false
}
