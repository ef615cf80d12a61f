package mapping

import (
	"github.com/crestbuild/ops_backend/internal/core/domain"
	"github.com/crestbuild/ops_backend/internal/models"
)

// ToModelVendor converts a domain vendor to its storage representation.
func ToModelVendor(v domain.Vendor) models.Vendor {
	return models.Vendor{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		Contact:     v.Contact,
		Phone:       v.Phone,
		Email:       v.Email,
		Address:     v.Address,
		AuditFields: toModelAuditFields(v.AuditFields),
	}
}

// ToDomainVendor converts a storage vendor row back to the domain type.
func ToDomainVendor(v models.Vendor) domain.Vendor {
	return domain.Vendor{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		Contact:     v.Contact,
		Phone:       v.Phone,
		Email:       v.Email,
		Address:     v.Address,
		AuditFields: toDomainAuditFields(v.AuditFields),
	}
}

// ToDomainVendorSlice converts a slice of storage rows to domain vendors.
func ToDomainVendorSlice(vendors []models.Vendor) []domain.Vendor {
	res := make([]domain.Vendor, len(vendors))
	for i, v := range vendors {
		res[i] = ToDomainVendor(v)
	}
	return res
}
