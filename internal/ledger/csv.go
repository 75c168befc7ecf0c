package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/coincraft/backend/internal/models"
)

// csvHeader is the first row of every transaction export.
var csvHeader = []string{"Date", "Type", "Category", "Description", "Amount"}

// WriteCSV writes transactions as CSV in the order given, typically the
// current filter and sort order of a query result. Fields containing commas
// or quotes are quoted, amounts are written with full precision.
func WriteCSV(w io.Writer, transactions []models.Transaction) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return err
	}

	for _, transaction := range transactions {
		row := []string{
			transaction.Date.String(),
			string(transaction.Type),
			transaction.Category,
			transaction.Description,
			transaction.Amount.String(),
		}

		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// ExportFilename returns the download filename for an export started at the
// given time.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("transactions-%s.csv", now.Format("2006-01-02"))
}
