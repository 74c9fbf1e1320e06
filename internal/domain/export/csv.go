// Package export serializes ordered expense sequences into downloadable
// documents. Ordering is the caller's job; controllers pass newest-first.
package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/trackify/trackify-backend/internal/domain/models"
)

const csvHeader = "Date,Title,Category,Amount,Notes\n"

// CSV renders the expenses as delimited text. Title, Category and Notes are
// always quoted with embedded quotes doubled; Amount is a bare decimal with
// no symbols or separators. The exact field order and escaping are part of
// the download contract with existing clients.
func CSV(expenses []models.Expense) []byte {
	var buf bytes.Buffer
	buf.WriteString(csvHeader)

	for _, expense := range expenses {
		fmt.Fprintf(&buf, "%s,%s,%s,%s,%s\n",
			expense.Date.Format("2006-01-02"),
			quote(expense.Title),
			quote(expense.Category),
			decimal.NewFromFloat(expense.Amount).String(),
			quote(expense.Notes),
		)
	}

	return buf.Bytes()
}

// Filename builds the attachment name clients expect, e.g.
// trackify_expenses_2025-01-31.csv.
func Filename(ext string, now time.Time) string {
	return fmt.Sprintf("trackify_expenses_%s.%s", now.Format("2006-01-02"), ext)
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
