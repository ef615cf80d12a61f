package domain

// TransactionType distinguishes money going out from money coming back.
type TransactionType string

const (
	TransactionTypeCharge TransactionType = "charge"
	TransactionTypeCredit TransactionType = "credit"
)

// ClearMatchIndex is the sentinel transaction index that removes an existing
// manual match instead of creating one.
const ClearMatchIndex = -1

// Transaction is a single imported credit-card statement row. Transactions
// have no stable identifier: they are addressed by their position in the
// currently imported set, and the whole set is replaced on every import.
type Transaction struct {
	Date            string          `json:"date"`
	Vendor          string          `json:"vendor"`
	Amount          string          `json:"amount"` // decimal as string, negative for credits
	Description     string          `json:"description"`
	TransactionType TransactionType `json:"transaction_type,omitempty"`

	// Cardholder is resolved from the description at read time and is
	// never persisted.
	Cardholder string `json:"cardholder,omitempty"`
}

// ManualMatches maps an uploaded document's filename to the position of the
// transaction it was matched against.
type ManualMatches map[string]int

// TransactionTags maps a transaction position to its ordered tag list.
type TransactionTags map[int][]string
