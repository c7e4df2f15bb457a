package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/yurifrl/fintrack/pkg/models"
)

// unknownMonth buckets records whose date is not a usable YYYY-MM-DD value.
const unknownMonth = "----"

// Line holds the income and expense totals of one reporting bucket.
type Line struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// Net returns income minus expense.
func (l Line) Net() decimal.Decimal {
	return l.Income.Sub(l.Expense)
}

func (l *Line) add(r models.Record) {
	switch r.Category {
	case models.CategoryIncome:
		l.Income = l.Income.Add(r.Amount)
	case models.CategoryExpense:
		l.Expense = l.Expense.Add(r.Amount)
	}
}

// Month is one calendar month of ledger activity.
type Month struct {
	Key string // YYYY-MM
	Line
}

// Summary aggregates ledger records by calendar month.
type Summary struct {
	Months []Month
	Total  Line
}

// Build groups records into a monthly summary. Months come out in ascending
// order with the unknown bucket last.
func Build(records []models.Record) *Summary {
	buckets := make(map[string]*Line)
	summary := &Summary{}

	for _, r := range records {
		key := monthKey(r.Date)
		line, ok := buckets[key]
		if !ok {
			line = &Line{}
			buckets[key] = line
		}
		line.add(r)
		summary.Total.add(r)
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		if key != unknownMonth {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	if _, ok := buckets[unknownMonth]; ok {
		keys = append(keys, unknownMonth)
	}

	for _, key := range keys {
		summary.Months = append(summary.Months, Month{Key: key, Line: *buckets[key]})
	}
	return summary
}

func monthKey(date string) string {
	if !models.IsValidDate(date) {
		return unknownMonth
	}
	return date[:7]
}

// Render writes the summary as a markdown table. Amounts are shown in the
// given currency when it is known, as plain numbers otherwise.
func (s *Summary) Render(w io.Writer, currency string) {
	fmt.Fprintf(w, "# Сводка по месяцам\n\n")

	fmt.Fprintln(w, "| Месяц | Доход | Расход | Баланс |")
	fmt.Fprintln(w, "|:---|---:|---:|---:|")

	for _, m := range s.Months {
		fmt.Fprintf(w, "| %s | %s | %s | %s |\n",
			m.Key,
			display(m.Income, currency),
			display(m.Expense, currency),
			display(m.Net(), currency))
	}

	fmt.Fprintf(w, "| **Итого** | **%s** | **%s** | **%s** |\n",
		display(s.Total.Income, currency),
		display(s.Total.Expense, currency),
		display(s.Total.Net(), currency))
}

func display(amount decimal.Decimal, currency string) string {
	if m := models.NewMoney(amount, currency); m.String() != "" {
		return m.String()
	}
	return amount.String()
}
