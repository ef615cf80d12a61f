package domain

import "github.com/shopspring/decimal"

// Project represents a construction project tracked by the business.
type Project struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Client      string           `json:"client,omitempty"`
	Status      string           `json:"status,omitempty"`
	StartDate   string           `json:"start_date,omitempty"`
	EndDate     string           `json:"end_date,omitempty"`
	BuildersFee *decimal.Decimal `json:"builders_fee,omitempty"` // percentage in [0,100]; nil when never set
	AuditFields
}
