package analytics

import (
	"math"
	"sort"
	"strings"
	"time"

	"quickspend/internal/models"
)

// Number of category rows reported in TopCategories.
const topCategoryCount = 5

// Display colors for the necessity pie buckets.
const (
	colorNeeds = "#4ade80"
	colorWants = "#fb923c"
	colorOther = "#94a3b8"
)

// CategoryTotal is an expense sum grouped by reason.
type CategoryTotal struct {
	Name  string  `json:"name"`
	Total float64 `json:"total"`
}

// CategoryCount pairs a reason with its transaction count.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// DayTotal is a calendar day with its summed expense.
type DayTotal struct {
	Date  time.Time `json:"date"`
	Total float64   `json:"total"`
}

// DailyPoint is one entry of the fixed last-7-days series.
type DailyPoint struct {
	Label   string    `json:"label"`
	Date    time.Time `json:"date"`
	Expense float64   `json:"expense"`
	Income  float64   `json:"income"`
}

// MonthPoint is one entry of the fixed last-6-months trend.
type MonthPoint struct {
	Label   string    `json:"label"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Income  float64   `json:"income"`
	Expense float64   `json:"expense"`
	Savings float64   `json:"savings"`
}

// ModeTotal is an expense sum grouped by payment-mode display name.
type ModeTotal struct {
	Mode  string  `json:"mode"`
	Total float64 `json:"total"`
}

// PieSlice is one necessity bucket with its display color.
type PieSlice struct {
	Name  string  `json:"name"`
	Total float64 `json:"total"`
	Color string  `json:"color"`
}

// Dashboard is the full set of derived aggregates for one period. It is
// recomputed per request and never persisted.
type Dashboard struct {
	PeriodTotal          float64             `json:"period_total"`
	PeriodIncomeTotal    float64             `json:"period_income_total"`
	SavingsThisPeriod    float64             `json:"savings_this_period"`
	SavingsRate          float64             `json:"savings_rate"`
	PercentChange        float64             `json:"percent_change"`
	ThisWeekTotal        float64             `json:"this_week_total"`
	WeekChange           float64             `json:"week_change"`
	AvgDailySpending     float64             `json:"avg_daily_spending"`
	AvgTransactionSize   float64             `json:"avg_transaction_size"`
	TopCategories        []CategoryTotal     `json:"top_categories"`
	MostFrequentCategory *CategoryCount      `json:"most_frequent_category,omitempty"`
	BiggestExpense       *models.Transaction `json:"biggest_expense,omitempty"`
	BestDay              *DayTotal           `json:"best_day,omitempty"`
	WorstDay             *DayTotal           `json:"worst_day,omitempty"`
	DailyData            []DailyPoint        `json:"daily_data"`
	MonthlyTrend         []MonthPoint        `json:"monthly_trend"`
	ByMode               []ModeTotal         `json:"by_mode"`
	PieData              []PieSlice          `json:"pie_data"`
	UniqueSpendingDays   int                 `json:"unique_spending_days"`
}

// Compute derives the full dashboard from the transaction collection. The
// daily and monthly series always come from the unfiltered set; everything
// else is scoped to the period. Malformed records (non-finite or
// non-positive amounts) are skipped rather than aborting the computation,
// and an empty collection degrades to zeros.
func Compute(txs []models.Transaction, period Period, now time.Time) Dashboard {
	loc := now.Location()

	valid := make([]models.Transaction, 0, len(txs))
	for _, t := range txs {
		if t.Amount <= 0 || math.IsNaN(t.Amount) || math.IsInf(t.Amount, 0) {
			continue
		}
		valid = append(valid, t)
	}
	// Defensive ordering: the storage collaborator makes no guarantee.
	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].Date.Before(valid[j].Date)
	})

	start, end, bounded := period.bounds(now)
	if !bounded {
		start, end = allTimeBounds(valid, now)
	}

	filtered := make([]models.Transaction, 0, len(valid))
	for _, t := range valid {
		if inRange(t.Date.In(loc), start, end) {
			filtered = append(filtered, t)
		}
	}

	d := Dashboard{
		TopCategories: []CategoryTotal{},
		DailyData:     make([]DailyPoint, 0, 7),
		MonthlyTrend:  make([]MonthPoint, 0, 6),
		ByMode:        []ModeTotal{},
	}

	expenseCount := 0
	for _, t := range filtered {
		switch t.Type {
		case models.TransactionTypeExpense:
			d.PeriodTotal += t.Amount
			expenseCount++
		case models.TransactionTypeIncome:
			d.PeriodIncomeTotal += t.Amount
		}
	}

	d.SavingsThisPeriod = d.PeriodIncomeTotal - d.PeriodTotal
	if d.PeriodIncomeTotal > 0 {
		d.SavingsRate = d.SavingsThisPeriod / d.PeriodIncomeTotal * 100
	}

	if prevStart, prevEnd, ok := period.previousBounds(now); ok {
		prevTotal := expenseTotalIn(valid, prevStart, prevEnd, loc)
		if prevTotal > 0 {
			d.PercentChange = (d.PeriodTotal - prevTotal) / prevTotal * 100
		}
	}

	// Week-over-week is always anchored at the current calendar week,
	// independent of the active period.
	thisWeek := weekStart(now)
	d.ThisWeekTotal = expenseTotalIn(valid, thisWeek, thisWeek.AddDate(0, 0, 7), loc)
	lastWeekTotal := expenseTotalIn(valid, thisWeek.AddDate(0, 0, -7), thisWeek, loc)
	if lastWeekTotal > 0 {
		d.WeekChange = (d.ThisWeekTotal - lastWeekTotal) / lastWeekTotal * 100
	}

	// Ongoing periods are averaged over the days elapsed so far, not the
	// full window.
	effectiveEnd := end
	if tomorrow := dayStart(now).AddDate(0, 0, 1); effectiveEnd.After(tomorrow) {
		effectiveEnd = tomorrow
	}
	if days := spanDays(start, effectiveEnd); days > 0 {
		d.AvgDailySpending = d.PeriodTotal / float64(days)
	}
	if expenseCount > 0 {
		d.AvgTransactionSize = d.PeriodTotal / float64(expenseCount)
	}

	d.TopCategories = topCategories(filtered)
	d.MostFrequentCategory = mostFrequentCategory(filtered)
	d.BiggestExpense = biggestExpense(filtered)
	d.BestDay, d.WorstDay = bestAndWorstDay(filtered, loc)
	d.DailyData = dailySeries(valid, now)
	d.MonthlyTrend = monthlyTrend(valid, now)
	d.ByMode = byMode(filtered)
	d.PieData = necessityPie(filtered)
	d.UniqueSpendingDays = uniqueSpendingDays(filtered, loc)

	return d
}

// allTimeBounds spans from the earliest valid transaction through today,
// collapsing to today alone when the collection is empty.
func allTimeBounds(sorted []models.Transaction, now time.Time) (time.Time, time.Time) {
	end := dayStart(now).AddDate(0, 0, 1)
	if len(sorted) == 0 {
		return dayStart(now), end
	}
	start := dayStart(sorted[0].Date.In(now.Location()))
	if start.After(end.AddDate(0, 0, -1)) {
		start = dayStart(now)
	}
	return start, end
}

func expenseTotalIn(txs []models.Transaction, start, end time.Time, loc *time.Location) float64 {
	var total float64
	for _, t := range txs {
		if t.Type == models.TransactionTypeExpense && inRange(t.Date.In(loc), start, end) {
			total += t.Amount
		}
	}
	return total
}

// spanDays counts calendar days between two day-start instants. Rounding
// absorbs daylight-saving transitions inside the span.
func spanDays(start, end time.Time) int {
	if !end.After(start) {
		return 0
	}
	return int(math.Round(end.Sub(start).Hours() / 24))
}

func topCategories(txs []models.Transaction) []CategoryTotal {
	totals := make(map[string]float64)
	display := make(map[string]string)
	for _, t := range txs {
		if t.Type != models.TransactionTypeExpense {
			continue
		}
		key := normalizeReason(t.Reason)
		totals[key] += t.Amount
		if _, seen := display[key]; !seen {
			display[key] = t.Reason
		}
	}

	out := make([]CategoryTotal, 0, len(totals))
	for key, total := range totals {
		out = append(out, CategoryTotal{Name: display[key], Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > topCategoryCount {
		out = out[:topCategoryCount]
	}
	return out
}

func mostFrequentCategory(txs []models.Transaction) *CategoryCount {
	counts := make(map[string]int)
	display := make(map[string]string)
	for _, t := range txs {
		if t.Type != models.TransactionTypeExpense {
			continue
		}
		key := normalizeReason(t.Reason)
		counts[key]++
		if _, seen := display[key]; !seen {
			display[key] = t.Reason
		}
	}
	if len(counts) == 0 {
		return nil
	}

	var bestKey string
	bestCount := -1
	for key, n := range counts {
		if n > bestCount || (n == bestCount && key < bestKey) {
			bestKey, bestCount = key, n
		}
	}
	return &CategoryCount{Name: display[bestKey], Count: bestCount}
}

func biggestExpense(txs []models.Transaction) *models.Transaction {
	var biggest *models.Transaction
	for i := range txs {
		t := &txs[i]
		if t.Type != models.TransactionTypeExpense {
			continue
		}
		if biggest == nil || t.Amount > biggest.Amount {
			biggest = t
		}
	}
	if biggest == nil {
		return nil
	}
	cp := *biggest
	return &cp
}

// bestAndWorstDay reports, among days in the period with at least one
// transaction, the day with the lowest and highest expense total.
func bestAndWorstDay(txs []models.Transaction, loc *time.Location) (*DayTotal, *DayTotal) {
	totals := make(map[time.Time]float64)
	for _, t := range txs {
		day := dayStart(t.Date.In(loc))
		if t.Type == models.TransactionTypeExpense {
			totals[day] += t.Amount
		} else if _, ok := totals[day]; !ok {
			totals[day] = 0
		}
	}
	if len(totals) == 0 {
		return nil, nil
	}

	days := make([]time.Time, 0, len(totals))
	for day := range totals {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	best := DayTotal{Date: days[0], Total: totals[days[0]]}
	worst := best
	for _, day := range days[1:] {
		total := totals[day]
		if total < best.Total {
			best = DayTotal{Date: day, Total: total}
		}
		if total > worst.Total {
			worst = DayTotal{Date: day, Total: total}
		}
	}
	return &best, &worst
}

// dailySeries is exactly the last seven calendar days, zero-filled,
// computed from the unfiltered collection.
func dailySeries(txs []models.Transaction, now time.Time) []DailyPoint {
	loc := now.Location()
	today := dayStart(now)

	points := make([]DailyPoint, 7)
	index := make(map[time.Time]int, 7)
	for i := 0; i < 7; i++ {
		day := today.AddDate(0, 0, i-6)
		points[i] = DailyPoint{Label: day.Format("Mon"), Date: day}
		index[day] = i
	}

	for _, t := range txs {
		i, ok := index[dayStart(t.Date.In(loc))]
		if !ok {
			continue
		}
		switch t.Type {
		case models.TransactionTypeExpense:
			points[i].Expense += t.Amount
		case models.TransactionTypeIncome:
			points[i].Income += t.Amount
		}
	}
	return points
}

// monthlyTrend is exactly the last six calendar months, zero-filled,
// computed from the unfiltered collection.
func monthlyTrend(txs []models.Transaction, now time.Time) []MonthPoint {
	loc := now.Location()
	currentMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)

	points := make([]MonthPoint, 6)
	index := make(map[time.Time]int, 6)
	for i := 0; i < 6; i++ {
		start := currentMonth.AddDate(0, i-5, 0)
		points[i] = MonthPoint{
			Label: start.Format("Jan"),
			Start: start,
			End:   start.AddDate(0, 1, -1),
		}
		index[start] = i
	}

	for _, t := range txs {
		dt := t.Date.In(loc)
		i, ok := index[time.Date(dt.Year(), dt.Month(), 1, 0, 0, 0, 0, loc)]
		if !ok {
			continue
		}
		switch t.Type {
		case models.TransactionTypeExpense:
			points[i].Expense += t.Amount
		case models.TransactionTypeIncome:
			points[i].Income += t.Amount
		}
	}
	for i := range points {
		points[i].Savings = points[i].Income - points[i].Expense
	}
	return points
}

func byMode(txs []models.Transaction) []ModeTotal {
	totals := make(map[string]float64)
	for _, t := range txs {
		if t.Type == models.TransactionTypeExpense {
			totals[t.PaymentMode] += t.Amount
		}
	}

	out := make([]ModeTotal, 0, len(totals))
	for mode, total := range totals {
		out = append(out, ModeTotal{Mode: mode, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Mode < out[j].Mode
	})
	return out
}

// necessityPie buckets expenses into Needs, Wants, and Other (uncategorized).
// All three slices are always present so chart colors stay stable.
func necessityPie(txs []models.Transaction) []PieSlice {
	slices := []PieSlice{
		{Name: "Needs", Color: colorNeeds},
		{Name: "Wants", Color: colorWants},
		{Name: "Other", Color: colorOther},
	}
	for _, t := range txs {
		if t.Type != models.TransactionTypeExpense {
			continue
		}
		switch {
		case t.Necessity != nil && *t.Necessity == models.NecessityNeed:
			slices[0].Total += t.Amount
		case t.Necessity != nil && *t.Necessity == models.NecessityWant:
			slices[1].Total += t.Amount
		default:
			slices[2].Total += t.Amount
		}
	}
	return slices
}

func uniqueSpendingDays(txs []models.Transaction, loc *time.Location) int {
	days := make(map[time.Time]struct{})
	for _, t := range txs {
		if t.Type == models.TransactionTypeExpense {
			days[dayStart(t.Date.In(loc))] = struct{}{}
		}
	}
	return len(days)
}

func normalizeReason(reason string) string {
	return strings.ToLower(strings.TrimSpace(reason))
}
