package models

import "time"

// Transaction is the storage representation of an imported statement row.
// Position is the row's ordinal within the imported set and is the key every
// match and tag refers to.
type Transaction struct {
	Position        int       `json:"position"`
	Date            string    `json:"date"`
	Vendor          string    `json:"vendor"`
	Amount          string    `json:"amount"`
	Description     string    `json:"description"`
	TransactionType string    `json:"transaction_type"`
	CreatedAt       time.Time `json:"created_at"`
}
