package mapping

import (
	"time"

	"github.com/crestbuild/ops_backend/internal/core/domain"
	"github.com/crestbuild/ops_backend/internal/models"
)

// ToModelTransactionSlice converts parsed transactions to storage rows,
// assigning each its position within the imported set.
func ToModelTransactionSlice(transactions []domain.Transaction, importedAt time.Time) []models.Transaction {
	res := make([]models.Transaction, len(transactions))
	for i, t := range transactions {
		res[i] = models.Transaction{
			Position:        i,
			Date:            t.Date,
			Vendor:          t.Vendor,
			Amount:          t.Amount,
			Description:     t.Description,
			TransactionType: string(t.TransactionType),
			CreatedAt:       importedAt,
		}
	}
	return res
}

// ToDomainTransactionSlice converts storage rows back to domain transactions.
// The cardholder field is left empty; it is a read-time decoration.
func ToDomainTransactionSlice(transactions []models.Transaction) []domain.Transaction {
	res := make([]domain.Transaction, len(transactions))
	for i, t := range transactions {
		res[i] = domain.Transaction{
			Date:            t.Date,
			Vendor:          t.Vendor,
			Amount:          t.Amount,
			Description:     t.Description,
			TransactionType: domain.TransactionType(t.TransactionType),
		}
	}
	return res
}
