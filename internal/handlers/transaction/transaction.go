package transaction

import (
	"fmt"
	"time"

	"github.com/carson-networks/finance-server/internal/service"
)

// Transaction is the API response model for a transaction.
type Transaction struct {
	ID          int64   `json:"id" doc:"Transaction ID"`
	AccountID   int64   `json:"account_id" doc:"Owning account ID"`
	Amount      float64 `json:"amount" doc:"Signed amount, positive=inflow"`
	Description string  `json:"description" doc:"Free-form description"`
	Category    string  `json:"category" doc:"Free-form category"`
	Date        *string `json:"date" doc:"RFC3339 transaction date, null when unset"`
	CreatedAt   string  `json:"created_at" doc:"RFC3339 creation time"`
}

func transactionFromService(t service.Transaction) Transaction {
	var date *string
	if t.Date != nil {
		formatted := t.Date.Format(time.RFC3339)
		date = &formatted
	}
	return Transaction{
		ID:          t.ID,
		AccountID:   t.AccountID,
		Amount:      t.Amount.InexactFloat64(),
		Description: t.Description,
		Category:    t.Category,
		Date:        date,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
	}
}

// dateFormats are the accepted wire formats for transaction dates, tried in
// order.
var dateFormats = []string{time.RFC3339, "2006-01-02"}

func parseDate(raw string) (time.Time, error) {
	for _, format := range dateFormats {
		parsed, err := time.Parse(format, raw)
		if err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", raw)
}
