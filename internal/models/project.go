package models

import "github.com/shopspring/decimal"

// Project is the storage representation of a project row. BuildersFee is
// nullable so "never set" survives a round trip.
type Project struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Client      string              `json:"client"`
	Status      string              `json:"status"`
	StartDate   string              `json:"start_date"`
	EndDate     string              `json:"end_date"`
	BuildersFee decimal.NullDecimal `json:"builders_fee"`
	AuditFields
}
