package v1

import (
	"net/http"
	"time"

	"github.com/coincraft/backend/internal/httputil"
	"github.com/coincraft/backend/internal/ledger"
	"github.com/coincraft/backend/internal/models"
	"github.com/gin-gonic/gin"
)

func (co Controller) RegisterTransactionRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsTransactions)
		r.GET("", co.GetTransactions)
		r.POST("", co.CreateTransaction)
	}
	{
		r.OPTIONS("/export", OptionsTransactionExport)
		r.GET("/export", co.ExportTransactions)
	}
	{
		r.OPTIONS("/:id", OptionsTransactionDetail)
		r.DELETE("/:id", co.DeleteTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions [options]
func OptionsTransactions(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions/export [options]
func OptionsTransactionExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [options]
func OptionsTransactionDetail(c *gin.Context) {
	httputil.OptionsDelete(c)
}

// @Summary		Create transaction
// @Description	Creates a new transaction. For expense transactions, the budget with a matching category has its spent total incremented.
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		201			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/v1/transactions [post]
func (co Controller) CreateTransaction(c *gin.Context) {
	var editable TransactionEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	transaction, err := co.dashboard.Ledger.AddTransaction(editable.model())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	apiResource := newTransaction(transaction)
	c.JSON(http.StatusCreated, TransactionResponse{Data: &apiResource})
}

// @Summary		Get transactions
// @Description	Returns a filtered, sorted and paginated list of transactions together with the aggregates of the whole filtered set
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionListResponse
// @Failure		400	{object}	TransactionListResponse
// @Router			/v1/transactions [get]
// @Param			search		query	string	false	"Search for this text in description and category"
// @Param			type		query	string	false	"Filter by type, one of all, income, expense"
// @Param			category	query	string	false	"Filter by exact category"
// @Param			from		query	string	false	"Transactions on or after this date (YYYY-MM-DD)"
// @Param			until		query	string	false	"Transactions on or before this date (YYYY-MM-DD)"
// @Param			amountMin	query	string	false	"Amount more than or equal to this"
// @Param			amountMax	query	string	false	"Amount less than or equal to this"
// @Param			sort		query	string	false	"Sort by date, amount, category, description or type. Defaults to date"
// @Param			direction	query	string	false	"Sort direction asc or desc. Defaults to desc"
// @Param			page		query	int		false	"The page to return, starting at 1"
// @Param			pageSize	query	int		false	"Transactions per page, one of 5, 10, 25, 50. Defaults to 10"
func (co Controller) GetTransactions(c *gin.Context) {
	result, err := co.queryTransactions(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{Error: &e})
		return
	}

	data := make([]Transaction, 0, len(result.Transactions))
	for _, transaction := range result.Transactions {
		data = append(data, newTransaction(transaction))
	}

	c.JSON(http.StatusOK, TransactionListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:      len(data),
			Total:      result.Total,
			Page:       result.Page,
			PageSize:   result.PageSize,
			TotalPages: result.TotalPages,
		},
		Totals: &TransactionTotals{
			Income:  result.IncomeTotal,
			Expense: result.ExpenseTotal,
			Net:     result.NetTotal,
		},
	})
}

// @Summary		Export transactions
// @Description	Downloads the filtered transactions as a CSV file in the current sort order
// @Tags			Transactions
// @Produce		text/csv
// @Success		200	{string}	string
// @Failure		400	{object}	httpError
// @Router			/v1/transactions/export [get]
// @Param			search		query	string	false	"Search for this text in description and category"
// @Param			type		query	string	false	"Filter by type, one of all, income, expense"
// @Param			category	query	string	false	"Filter by exact category"
// @Param			from		query	string	false	"Transactions on or after this date (YYYY-MM-DD)"
// @Param			until		query	string	false	"Transactions on or before this date (YYYY-MM-DD)"
// @Param			sort		query	string	false	"Sort by date, amount, category, description or type. Defaults to date"
// @Param			direction	query	string	false	"Sort direction asc or desc. Defaults to desc"
func (co Controller) ExportTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := c.ShouldBind(&filter); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	query, err := filter.query(httputil.GetURLFields(c.Request.URL, filter))
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	// The export covers the whole filtered set, so walk all pages at the
	// largest page size and concatenate them.
	query.PageSize = ledger.PageSizes[len(ledger.PageSizes)-1]

	transactions := co.dashboard.Ledger.Transactions()

	var rows []models.Transaction
	for page := 1; ; page++ {
		query.Page = page
		result := ledger.Query(transactions, query)
		rows = append(rows, result.Transactions...)
		if page >= result.TotalPages {
			break
		}
	}

	c.Header("Content-Disposition", `attachment; filename="`+ledger.ExportFilename(time.Now())+`"`)
	c.Header("Content-Type", "text/csv")
	c.Status(http.StatusOK)

	if err := ledger.WriteCSV(c.Writer, rows); err != nil {
		_ = c.Error(err)
	}
}

// @Summary		Delete transaction
// @Description	Deletes a transaction. For expense transactions, the matching budget's spent total is decremented, floored at zero. Deleting an unknown ID is a no-op.
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [delete]
func (co Controller) DeleteTransaction(c *gin.Context) {
	var uri URIID
	err := httputil.BindURI(c, &uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	co.dashboard.Ledger.DeleteTransaction(uri.ID.UUID)
	c.JSON(http.StatusNoContent, nil)
}

// queryTransactions binds the query filter and runs it against the ledger.
// The requested page is clamped into the valid range so that deleting the
// last row of the last page never yields an empty page.
func (co Controller) queryTransactions(c *gin.Context) (ledger.Result, error) {
	var filter TransactionQueryFilter
	if err := c.ShouldBind(&filter); err != nil {
		return ledger.Result{}, err
	}

	query, err := filter.query(httputil.GetURLFields(c.Request.URL, filter))
	if err != nil {
		return ledger.Result{}, err
	}

	transactions := co.dashboard.Ledger.Transactions()

	result := ledger.Query(transactions, query)
	if result.TotalPages > 0 && result.Page > result.TotalPages {
		query.Page = result.TotalPages
		result = ledger.Query(transactions, query)
	}

	return result, nil
}
