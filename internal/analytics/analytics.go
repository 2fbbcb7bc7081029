package analytics

import (
	"math"
	"sort"
	"time"

	"spendflow/internal/model"
)

// DefaultTopLimit is the number of categories TopCategories keeps when the
// caller passes a non-positive limit.
const DefaultTopLimit = 5

// FilterByWindow returns the transactions dated within the window.
func FilterByWindow(txns []model.Transaction, w Window) []model.Transaction {
	var out []model.Transaction
	for _, txn := range txns {
		if w.Contains(txn.Date) {
			out = append(out, txn)
		}
	}
	return out
}

// Totals holds per-type amount sums over a transaction sequence.
type Totals struct {
	Income      float64
	Expenses    float64
	Investments float64
	Savings     float64
	Transfers   float64
}

// TotalsByType sums amounts per transaction type. Non-finite amounts count
// as zero rather than poisoning the sum.
func TotalsByType(txns []model.Transaction) Totals {
	var totals Totals
	for _, txn := range txns {
		amount := txn.Amount
		if math.IsNaN(amount) || math.IsInf(amount, 0) {
			amount = 0
		}
		switch txn.Type {
		case model.TypeIncome:
			totals.Income += amount
		case model.TypeExpense:
			totals.Expenses += amount
		case model.TypeInvestment:
			totals.Investments += amount
		case model.TypeSavings:
			totals.Savings += amount
		case model.TypeTransfer:
			totals.Transfers += amount
		}
	}
	return totals
}

// Comparison contrasts expense totals for a window against the immediately
// preceding window of the same granularity.
type Comparison struct {
	Current       float64
	Previous      float64
	ChangePercent float64
	IsIncreasing  bool
}

// PeriodComparison computes the expense trend between the given window and
// the one before it. ChangePercent is defined as zero when the previous
// period had no expenses; the division-by-zero case is policy, not a fault.
func PeriodComparison(all []model.Transaction, w Window) Comparison {
	current := TotalsByType(FilterByWindow(all, w)).Expenses
	previous := TotalsByType(FilterByWindow(all, w.Previous())).Expenses

	changePercent := 0.0
	if previous != 0 {
		changePercent = (current - previous) / previous * 100
	}

	return Comparison{
		Current:       current,
		Previous:      previous,
		ChangePercent: changePercent,
		IsIncreasing:  current > previous,
	}
}

// CategoryShare is one entry of a ranked category breakdown.
type CategoryShare struct {
	Category string
	Amount   float64
	Percent  float64
}

// TopCategories ranks expense categories by total amount, descending,
// truncated to limit. Percent is each category's share of total expenses,
// zero when there are none. Ties break alphabetically so the ranking is
// independent of input order.
func TopCategories(txns []model.Transaction, limit int) []CategoryShare {
	if limit <= 0 {
		limit = DefaultTopLimit
	}

	sums := make(map[string]float64)
	total := 0.0
	for _, txn := range txns {
		if txn.Type != model.TypeExpense {
			continue
		}
		amount := txn.Amount
		if math.IsNaN(amount) || math.IsInf(amount, 0) {
			amount = 0
		}
		sums[txn.Category] += amount
		total += amount
	}

	ranked := make([]CategoryShare, 0, len(sums))
	for category, amount := range sums {
		share := CategoryShare{Category: category, Amount: amount}
		if total > 0 {
			share.Percent = amount / total * 100
		}
		ranked = append(ranked, share)
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Amount != ranked[j].Amount {
			return ranked[i].Amount > ranked[j].Amount
		}
		return ranked[i].Category < ranked[j].Category
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// Health status labels, one per score band.
const (
	StatusExcellent = "Excellent"
	StatusGood      = "Good"
	StatusFair      = "Fair"
	StatusPoor      = "Poor"
)

// Health summarizes savings-rate quality as a 0-100 score.
type Health struct {
	Status      string
	SavingsRate float64
	Score       int
}

// HealthScore derives the financial-health score from income and expense
// totals. SavingsRate is zero when income is zero; the score is a piecewise
// linear function of the rate: >=20% lands in 90-100, 10-20% in 70-80,
// 0-10% in 50-70, and negative rates fall from 50 toward the floor at 0.
func HealthScore(income, expenses float64) Health {
	rate := 0.0
	if income > 0 {
		rate = (income - expenses) / income * 100
	}

	var score float64
	var status string
	switch {
	case rate >= 20:
		score = math.Min(100, 90+(rate-20)*0.5)
		status = StatusExcellent
	case rate >= 10:
		score = 70 + (rate - 10)
		status = StatusGood
	case rate >= 0:
		score = 50 + rate*2
		status = StatusFair
	default:
		score = math.Max(0, 50+rate)
		status = StatusPoor
	}

	return Health{
		Score:       int(math.Round(score)),
		Status:      status,
		SavingsRate: rate,
	}
}

// Bucket is one sub-period of a time series: income and expense sums plus a
// chart-ready label.
type Bucket struct {
	Label   string
	Income  float64
	Expense float64
}

// NaturalBucketCount returns the bucket count that tiles the window exactly:
// 7 days for a week, the month's day count, or 12 months for a year.
func NaturalBucketCount(w Window) int {
	switch w.Granularity {
	case GranularityWeek:
		return 7
	case GranularityMonth:
		// Calendar arithmetic, not duration: months spanning a DST
		// transition are not a whole number of 24-hour days.
		return w.Start.AddDate(0, 1, -1).Day()
	case GranularityYear:
		return 12
	}
	return 0
}

// TimeSeries buckets the window into bucketCount sub-periods, summing income
// and expense per bucket. Sub-periods are days for week and month windows
// and months for year windows; boundaries are computed by calendar
// arithmetic so month and year edges stay exact. A bucketCount below the
// natural count is raised to it so the buckets always tile the whole
// window; counts above it pad the series with empty trailing buckets.
func TimeSeries(txns []model.Transaction, w Window, bucketCount int) []Bucket {
	if natural := NaturalBucketCount(w); bucketCount < natural {
		bucketCount = natural
	}
	if bucketCount <= 0 {
		return nil
	}

	starts := make([]time.Time, bucketCount+1)
	for i := 0; i <= bucketCount; i++ {
		if w.Granularity == GranularityYear {
			starts[i] = w.Start.AddDate(0, i, 0)
		} else {
			starts[i] = w.Start.AddDate(0, 0, i)
		}
	}

	buckets := make([]Bucket, bucketCount)
	for i := range buckets {
		buckets[i].Label = bucketLabel(starts[i], w.Granularity)
	}

	for _, txn := range txns {
		if !w.Contains(txn.Date) {
			continue
		}
		amount := txn.Amount
		if math.IsNaN(amount) || math.IsInf(amount, 0) {
			amount = 0
		}
		for i := 0; i < bucketCount; i++ {
			if txn.Date.Before(starts[i]) || !txn.Date.Before(starts[i+1]) {
				continue
			}
			switch txn.Type {
			case model.TypeIncome:
				buckets[i].Income += amount
			case model.TypeExpense:
				buckets[i].Expense += amount
			}
			break
		}
	}

	return buckets
}

// bucketLabel renders a chart label for a bucket start.
func bucketLabel(start time.Time, g Granularity) string {
	switch g {
	case GranularityWeek:
		return start.Format("Mon")
	case GranularityMonth:
		return start.Format("2")
	case GranularityYear:
		return start.Format("Jan")
	}
	return start.Format("2006-01-02")
}
