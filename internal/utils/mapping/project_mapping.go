package mapping

import (
	"github.com/shopspring/decimal"

	"github.com/crestbuild/ops_backend/internal/core/domain"
	"github.com/crestbuild/ops_backend/internal/models"
)

// ToModelProject converts a domain project to its storage representation.
func ToModelProject(p domain.Project) models.Project {
	fee := decimal.NullDecimal{}
	if p.BuildersFee != nil {
		fee = decimal.NewNullDecimal(*p.BuildersFee)
	}
	return models.Project{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Client:      p.Client,
		Status:      p.Status,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		BuildersFee: fee,
		AuditFields: toModelAuditFields(p.AuditFields),
	}
}

// ToDomainProject converts a storage project row back to the domain type.
func ToDomainProject(p models.Project) domain.Project {
	var fee *decimal.Decimal
	if p.BuildersFee.Valid {
		f := p.BuildersFee.Decimal
		fee = &f
	}
	return domain.Project{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Client:      p.Client,
		Status:      p.Status,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		BuildersFee: fee,
		AuditFields: toDomainAuditFields(p.AuditFields),
	}
}

// ToDomainProjectSlice converts a slice of storage rows to domain projects.
func ToDomainProjectSlice(projects []models.Project) []domain.Project {
	res := make([]domain.Project, len(projects))
	for i, p := range projects {
		res[i] = ToDomainProject(p)
	}
	return res
}
