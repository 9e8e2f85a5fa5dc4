package analytics

import (
	"fmt"
)

// CardKind tags a dashboard display unit.
type CardKind string

const (
	CardStat    CardKind = "stat"
	CardChart   CardKind = "chart"
	CardInsight CardKind = "insight"
)

// Fixed enumeration of card identifiers. The set of cards never varies;
// cards with nothing to show carry zero values rather than disappearing.
const (
	CardIDSpent        = "spent"
	CardIDIncome       = "income"
	CardIDSavingsRate  = "savings_rate"
	CardIDAvgDaily     = "avg_daily"
	CardIDWeekly       = "weekly"
	CardIDMonthlyTrend = "monthly_trend"
	CardIDNecessity    = "necessity_split"
	CardIDTopCategory  = "top_category"
	CardIDBiggest      = "biggest_expense"
)

// Card is one analytics-derived display unit. Exactly one of the
// kind-specific payloads is populated, selected by Kind.
type Card struct {
	ID    string   `json:"id"`
	Kind  CardKind `json:"kind"`
	Title string   `json:"title"`

	// stat
	Value string   `json:"value,omitempty"`
	Delta *float64 `json:"delta,omitempty"`

	// chart
	Daily   []DailyPoint `json:"daily,omitempty"`
	Monthly []MonthPoint `json:"monthly,omitempty"`
	Pie     []PieSlice   `json:"pie,omitempty"`

	// insight
	Body string `json:"body,omitempty"`
}

// Cards renders a computed dashboard as the fixed card list consumed by the
// presentation layer.
func Cards(d Dashboard) []Card {
	spentDelta := d.PercentChange
	weekDelta := d.WeekChange

	cards := []Card{
		{ID: CardIDSpent, Kind: CardStat, Title: "Spent", Value: formatMoney(d.PeriodTotal), Delta: &spentDelta},
		{ID: CardIDIncome, Kind: CardStat, Title: "Income", Value: formatMoney(d.PeriodIncomeTotal)},
		{ID: CardIDSavingsRate, Kind: CardStat, Title: "Savings rate", Value: fmt.Sprintf("%.1f%%", d.SavingsRate)},
		{ID: CardIDAvgDaily, Kind: CardStat, Title: "Avg daily", Value: formatMoney(d.AvgDailySpending)},
		{ID: CardIDWeekly, Kind: CardChart, Title: "This week", Daily: d.DailyData, Delta: &weekDelta},
		{ID: CardIDMonthlyTrend, Kind: CardChart, Title: "6-month trend", Monthly: d.MonthlyTrend},
		{ID: CardIDNecessity, Kind: CardChart, Title: "Needs vs wants", Pie: d.PieData},
	}

	top := Card{ID: CardIDTopCategory, Kind: CardInsight, Title: "Most frequent"}
	if d.MostFrequentCategory != nil {
		top.Body = fmt.Sprintf("%s, %d times", d.MostFrequentCategory.Name, d.MostFrequentCategory.Count)
	}
	cards = append(cards, top)

	biggest := Card{ID: CardIDBiggest, Kind: CardInsight, Title: "Biggest expense"}
	if d.BiggestExpense != nil {
		biggest.Body = fmt.Sprintf("%s, %s", d.BiggestExpense.Reason, formatMoney(d.BiggestExpense.Amount))
	}
	cards = append(cards, biggest)

	return cards
}

func formatMoney(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
