package models

import "time"

// ManualMatch is the storage representation of one filename to transaction
// position association.
type ManualMatch struct {
	Filename         string    `json:"filename"`
	TransactionIndex int       `json:"transaction_index"`
	CreatedAt        time.Time `json:"created_at"`
}

// TransactionTag is the storage representation of the tag list attached to
// one transaction position.
type TransactionTag struct {
	TransactionIndex int       `json:"transaction_index"`
	Tags             []string  `json:"tags"`
	CreatedAt        time.Time `json:"created_at"`
}
