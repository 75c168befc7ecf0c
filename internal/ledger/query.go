package ledger

import (
	"sort"
	"strings"

	"github.com/coincraft/backend/internal/models"
	"github.com/coincraft/backend/internal/types"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortField is the transaction attribute a query is ordered by.
type SortField string

const (
	SortFieldDate        SortField = "date"
	SortFieldAmount      SortField = "amount"
	SortFieldCategory    SortField = "category"
	SortFieldDescription SortField = "description"
	SortFieldType        SortField = "type"
)

// Valid reports whether the sort field is known.
func (f SortField) Valid() bool {
	switch f {
	case SortFieldDate, SortFieldAmount, SortFieldCategory, SortFieldDescription, SortFieldType:
		return true
	}

	return false
}

// SortDirection is the direction a query is ordered in.
type SortDirection string

const (
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

// Valid reports whether the sort direction is known.
func (d SortDirection) Valid() bool {
	return d == SortAscending || d == SortDescending
}

// PageSizes lists the allowed page sizes.
var PageSizes = []int{5, 10, 25, 50}

// DefaultPageSize is used when no page size is requested.
const DefaultPageSize = 10

// Filter describes a transaction query. The zero value selects everything,
// sorted by date descending, first page with the default page size.
type Filter struct {
	// Search matches case-insensitively against description or category.
	Search string

	// Type filters by transaction type. Empty and "all" match both types.
	Type string

	// Category filters by exact category. Empty and "all" match everything.
	Category string

	// DateFrom and DateTo bound the date, inclusively. Zero dates are ignored.
	DateFrom types.Date
	DateTo   types.Date

	// AmountMin and AmountMax bound the amount, inclusively. Nil is ignored.
	AmountMin *decimal.Decimal
	AmountMax *decimal.Decimal

	SortField     SortField
	SortDirection SortDirection

	// Page is 1-based. Requests beyond the last page yield an empty page,
	// clamping is the caller's concern.
	Page     int
	PageSize int
}

// Result is one page of a transaction query together with the aggregates of
// the whole filtered set.
type Result struct {
	Transactions []models.Transaction

	Total      int
	TotalPages int
	Page       int
	PageSize   int

	IncomeTotal  decimal.Decimal
	ExpenseTotal decimal.Decimal
	NetTotal     decimal.Decimal
}

// Query filters, sorts and paginates a transaction snapshot. It never fails,
// an empty result is a valid outcome.
//
// The sort is stable: transactions with equal sort keys keep their
// most-recent-first ledger order.
func Query(transactions []models.Transaction, filter Filter) Result {
	filter = filter.normalize()

	filtered := make([]models.Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		if filter.matches(transaction) {
			filtered = append(filtered, transaction)
		}
	}

	result := Result{
		Total:    len(filtered),
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}

	for _, transaction := range filtered {
		switch transaction.Type {
		case models.TransactionTypeIncome:
			result.IncomeTotal = result.IncomeTotal.Add(transaction.Amount)
		case models.TransactionTypeExpense:
			result.ExpenseTotal = result.ExpenseTotal.Add(transaction.Amount)
		}
	}
	result.NetTotal = result.IncomeTotal.Sub(result.ExpenseTotal)

	sortTransactions(filtered, filter.SortField, filter.SortDirection)

	result.TotalPages = (result.Total + filter.PageSize - 1) / filter.PageSize

	start := (filter.Page - 1) * filter.PageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + filter.PageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	result.Transactions = filtered[start:end]

	return result
}

// normalize fills in defaults for unset or invalid paging and sorting values.
func (f Filter) normalize() Filter {
	if !f.SortField.Valid() {
		f.SortField = SortFieldDate
	}

	if !f.SortDirection.Valid() {
		f.SortDirection = SortDescending
	}

	if f.Page < 1 {
		f.Page = 1
	}

	if !slices.Contains(PageSizes, f.PageSize) {
		f.PageSize = DefaultPageSize
	}

	return f
}

// matches reports whether a transaction passes all filter predicates.
func (f Filter) matches(transaction models.Transaction) bool {
	if f.Search != "" && !matchText(f.Search, transaction.Description) && !matchText(f.Search, transaction.Category) {
		return false
	}

	if f.Type != "" && f.Type != "all" && string(transaction.Type) != f.Type {
		return false
	}

	if f.Category != "" && f.Category != "all" && transaction.Category != f.Category {
		return false
	}

	if !f.DateFrom.IsZero() && transaction.Date.Before(f.DateFrom) {
		return false
	}

	if !f.DateTo.IsZero() && transaction.Date.After(f.DateTo) {
		return false
	}

	if f.AmountMin != nil && transaction.Amount.LessThan(*f.AmountMin) {
		return false
	}

	if f.AmountMax != nil && transaction.Amount.GreaterThan(*f.AmountMax) {
		return false
	}

	return true
}

// matchText matches term as a case-insensitive substring of value. A "*" in
// the term acts as a wildcard matching any run of characters, so "gro*ries"
// also matches "Groceries".
func matchText(term, value string) bool {
	return glob.Glob("*"+strings.ToLower(term)+"*", strings.ToLower(value))
}

func sortTransactions(transactions []models.Transaction, field SortField, direction SortDirection) {
	// Collators buffer internally and are not safe for concurrent use, so
	// each query gets its own.
	collator := collate.New(language.English, collate.IgnoreCase)

	compare := func(a, b models.Transaction) int {
		switch field {
		case SortFieldAmount:
			return a.Amount.Cmp(b.Amount)
		case SortFieldCategory:
			return collator.CompareString(a.Category, b.Category)
		case SortFieldDescription:
			return collator.CompareString(a.Description, b.Description)
		case SortFieldType:
			return collator.CompareString(string(a.Type), string(b.Type))
		default:
			return a.Date.Compare(b.Date)
		}
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		c := compare(transactions[i], transactions[j])
		if direction == SortDescending {
			return c > 0
		}

		return c < 0
	})
}
