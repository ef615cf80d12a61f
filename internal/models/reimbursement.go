package models

import "github.com/shopspring/decimal"

// Reimbursement is the storage representation of a reimbursement row.
type Reimbursement struct {
	ID          int64           `json:"id"`
	Vendor      string          `json:"vendor"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	AuditFields
}
