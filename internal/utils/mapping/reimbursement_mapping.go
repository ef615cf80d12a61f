package mapping

import (
	"github.com/crestbuild/ops_backend/internal/core/domain"
	"github.com/crestbuild/ops_backend/internal/models"
)

// ToModelReimbursement converts a domain reimbursement to its storage representation.
func ToModelReimbursement(r domain.Reimbursement) models.Reimbursement {
	return models.Reimbursement{
		ID:          r.ID,
		Vendor:      r.Vendor,
		Amount:      r.Amount,
		Date:        r.Date,
		Description: r.Description,
		AuditFields: toModelAuditFields(r.AuditFields),
	}
}

// ToDomainReimbursement converts a storage reimbursement row back to the domain type.
func ToDomainReimbursement(r models.Reimbursement) domain.Reimbursement {
	return domain.Reimbursement{
		ID:          r.ID,
		Vendor:      r.Vendor,
		Amount:      r.Amount,
		Date:        r.Date,
		Description: r.Description,
		AuditFields: toDomainAuditFields(r.AuditFields),
	}
}

// ToDomainReimbursementSlice converts a slice of storage rows to domain reimbursements.
func ToDomainReimbursementSlice(reimbursements []models.Reimbursement) []domain.Reimbursement {
	res := make([]domain.Reimbursement, len(reimbursements))
	for i, r := range reimbursements {
		res[i] = ToDomainReimbursement(r)
	}
	return res
}
