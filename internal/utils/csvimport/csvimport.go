package csvimport

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/crestbuild/ops_backend/internal/core/domain"
)

// Delimiter is the only separator the import format supports. Statement
// exports never quote fields, so rows are split literally rather than with
// encoding/csv, which would accept a different grammar.
const Delimiter = ","

// Parse converts raw statement text into transactions. The first line holds
// the column headers; blank lines are skipped. Malformed rows are not
// rejected, they just produce partial records. Only input without a usable
// header row fails the whole import.
func Parse(data string) ([]domain.Transaction, error) {
	lines := strings.Split(data, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return nil, fmt.Errorf("csv data has no header row")
	}

	rawHeaders := strings.Split(lines[0], Delimiter)
	headers := make([]string, len(rawHeaders))
	for i, h := range rawHeaders {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}

	var transactions []domain.Transaction
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		values := strings.Split(line, Delimiter)
		record := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(values) {
				record[header] = strings.TrimSpace(values[i])
			} else {
				record[header] = ""
			}
		}
		transactions = append(transactions, normalize(record))
	}

	return transactions, nil
}

// normalize maps heterogeneous statement columns onto the canonical
// transaction schema: payee becomes vendor, and exactly one of
// spent/received/amount determines the amount and transaction type. Rows
// carrying none of those columns keep an unset transaction type.
func normalize(record map[string]string) domain.Transaction {
	txn := domain.Transaction{
		Date:        record["date"],
		Vendor:      record["vendor"],
		Description: record["description"],
	}

	if payee := record["payee"]; payee != "" {
		txn.Vendor = payee
	}

	switch {
	case record["spent"] != "":
		txn.Amount = stripMoney(record["spent"])
		txn.TransactionType = domain.TransactionTypeCharge
	case record["received"] != "":
		txn.Amount = negate(stripMoney(record["received"]))
		txn.TransactionType = domain.TransactionTypeCredit
	case record["amount"] != "":
		txn.Amount = stripMoney(record["amount"])
		txn.TransactionType = domain.TransactionTypeCharge
	}

	return txn
}

// stripMoney removes the dollar sign and the first thousands separator.
func stripMoney(s string) string {
	s = strings.Replace(s, "$", "", 1)
	return strings.Replace(s, ",", "", 1)
}

// negate renders the numeric negation of s in its shortest form, so a
// received value of "5.00" becomes "-5". Unparseable values are passed
// through untouched rather than failing the row.
func negate(s string) string {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	return strconv.FormatFloat(-f, 'f', -1, 64)
}
