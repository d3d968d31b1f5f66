package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const summaryDateLayout = "2006-01-02 15:04:05"

// SummaryBucket aggregates count and amount for one slice of a summary.
type SummaryBucket struct {
	Count  int64           `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

// SummaryRow is one grouped row as produced by the persistence layer.
type SummaryRow struct {
	Status   ExpenseStatus
	Category ExpenseCategory
	Count    int64
	Amount   decimal.Decimal
}

// ExpenseSummary is a derived, non-persisted aggregate over a date range.
type ExpenseSummary struct {
	StartDate    time.Time                         `json:"startDate"`
	EndDate      time.Time                         `json:"endDate"`
	TotalAmount  decimal.Decimal                   `json:"totalAmount"`
	ExpenseCount int64                             `json:"expenseCount"`
	ByStatus     map[ExpenseStatus]SummaryBucket   `json:"byStatus"`
	ByCategory   map[ExpenseCategory]SummaryBucket `json:"byCategory"`
}

// NewExpenseSummary folds grouped rows into a summary for [start, end].
func NewExpenseSummary(start, end time.Time, rows []SummaryRow) ExpenseSummary {
	summary := ExpenseSummary{
		StartDate:   start,
		EndDate:     end,
		TotalAmount: decimal.Zero,
		ByStatus:    make(map[ExpenseStatus]SummaryBucket),
		ByCategory:  make(map[ExpenseCategory]SummaryBucket),
	}

	for _, row := range rows {
		summary.TotalAmount = summary.TotalAmount.Add(row.Amount)
		summary.ExpenseCount += row.Count

		s := summary.ByStatus[row.Status]
		s.Count += row.Count
		s.Amount = s.Amount.Add(row.Amount)
		summary.ByStatus[row.Status] = s

		c := summary.ByCategory[row.Category]
		c.Count += row.Count
		c.Amount = c.Amount.Add(row.Amount)
		summary.ByCategory[row.Category] = c
	}

	return summary
}

// SummaryDateRange renders the covered range for human-readable messages.
func (s ExpenseSummary) SummaryDateRange() string {
	return fmt.Sprintf("%s - %s", s.StartDate.Format(summaryDateLayout), s.EndDate.Format(summaryDateLayout))
}

// CurrentMonthRange returns 00:00:00 on the first day through 23:59:59 on the
// last day of the month containing now, in now's location.
func CurrentMonthRange(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastDay := start.AddDate(0, 1, -1)
	end := time.Date(lastDay.Year(), lastDay.Month(), lastDay.Day(), 23, 59, 59, 0, now.Location())
	return start, end
}
