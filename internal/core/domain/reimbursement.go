package domain

import "github.com/shopspring/decimal"

// Reimbursement represents an out-of-pocket expense owed back to someone.
type Reimbursement struct {
	ID          int64           `json:"id"`
	Vendor      string          `json:"vendor"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	AuditFields
}
