package v1

import (
	"github.com/coincraft/backend/internal/ledger"
	"github.com/coincraft/backend/internal/models"
	"github.com/coincraft/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

type TransactionEditable struct {
	Type        models.TransactionType `json:"type" example:"expense" enums:"income,expense"`                                        // Whether the transaction adds to or subtracts from the balance
	Amount      decimal.Decimal        `json:"amount" example:"45" minimum:"0.00000001" maximum:"999999999999.99999999" default:"0"` // The amount of the transaction
	Category    string                 `json:"category" example:"Transportation" default:""`                                         // Category of the transaction
	Description string                 `json:"description" example:"Gas fill-up" default:""`                                         // Description of the transaction
	Date        types.Date             `json:"date" example:"2024-01-12"`                                                            // Date of the transaction. Defaults to the current date
}

// model returns the ledger resource for the API representation of the editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		Type:        editable.Type,
		Amount:      editable.Amount,
		Category:    editable.Category,
		Description: editable.Description,
		Date:        editable.Date,
	}
}

type Transaction struct {
	models.DefaultModel
	TransactionEditable
}

// newTransaction returns the API v1 representation of the resource
func newTransaction(model models.Transaction) Transaction {
	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			Type:        model.Type,
			Amount:      model.Amount,
			Category:    model.Category,
			Description: model.Description,
			Date:        model.Date,
		},
	}
}

type TransactionResponse struct {
	Error *string      `json:"error"` // The error, if any occurred
	Data  *Transaction `json:"data"`  // The resource
}

type TransactionTotals struct {
	Income  decimal.Decimal `json:"income" example:"4200"`  // Income total of the filtered set
	Expense decimal.Decimal `json:"expense" example:"1015"` // Expense total of the filtered set
	Net     decimal.Decimal `json:"net" example:"3185"`     // Income minus expenses of the filtered set
}

type TransactionListResponse struct {
	Data       []Transaction      `json:"data"`       // One page of matching transactions
	Error      *string            `json:"error"`      // The error, if any occurred
	Pagination *Pagination        `json:"pagination"` // Pagination information
	Totals     *TransactionTotals `json:"totals"`     // Aggregates over the whole filtered set
}

type TransactionQueryFilter struct {
	Search    string          `form:"search"`    // Search for this text in description and category
	Type      string          `form:"type"`      // Filter by type, one of "all", "income", "expense"
	Category  string          `form:"category"`  // Filter by exact category, "all" matches everything
	From      types.Date      `form:"from"`      // Transactions on or after this date
	Until     types.Date      `form:"until"`     // Transactions on or before this date
	AmountMin decimal.Decimal `form:"amountMin"` // Amount more than or equal to this
	AmountMax decimal.Decimal `form:"amountMax"` // Amount less than or equal to this
	Sort      string          `form:"sort"`      // Sort by, one of "date", "amount", "category", "description", "type". Defaults to "date"
	Direction string          `form:"direction"` // Sort direction, "asc" or "desc". Defaults to "desc"
	Page      int             `form:"page"`      // The page to return, starting at 1
	PageSize  int             `form:"pageSize"`  // Transactions per page, one of 5, 10, 25, 50. Defaults to 10
}

// query translates the API filter into a ledger query. setFields distinguishes
// parameters set to a zero value from absent ones.
func (f TransactionQueryFilter) query(setFields []string) (ledger.Filter, error) {
	if f.Sort != "" && !ledger.SortField(f.Sort).Valid() {
		return ledger.Filter{}, errSortFieldInvalid
	}

	if f.Direction != "" && !ledger.SortDirection(f.Direction).Valid() {
		return ledger.Filter{}, errSortDirectionInvalid
	}

	if slices.Contains(setFields, "PageSize") && !slices.Contains(ledger.PageSizes, f.PageSize) {
		return ledger.Filter{}, errPageSizeInvalid
	}

	filter := ledger.Filter{
		Search:        f.Search,
		Type:          f.Type,
		Category:      f.Category,
		DateFrom:      f.From,
		DateTo:        f.Until,
		SortField:     ledger.SortField(f.Sort),
		SortDirection: ledger.SortDirection(f.Direction),
		Page:          f.Page,
		PageSize:      f.PageSize,
	}

	if slices.Contains(setFields, "AmountMin") {
		min := f.AmountMin
		filter.AmountMin = &min
	}

	if slices.Contains(setFields, "AmountMax") {
		max := f.AmountMax
		filter.AmountMax = &max
	}

	return filter, nil
}
