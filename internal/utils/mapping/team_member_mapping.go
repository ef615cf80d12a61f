package mapping

import (
	"github.com/crestbuild/ops_backend/internal/core/domain"
	"github.com/crestbuild/ops_backend/internal/models"
)

// ToModelTeamMember converts a domain team member to its storage representation.
func ToModelTeamMember(m domain.TeamMember) models.TeamMember {
	return models.TeamMember{
		ID:           m.ID,
		Name:         m.Name,
		CardLastFour: m.CardLastFour,
		Title:        m.Title,
		Department:   m.Department,
		Email:        m.Email,
		AuditFields:  toModelAuditFields(m.AuditFields),
	}
}

// ToDomainTeamMember converts a storage team member row back to the domain type.
func ToDomainTeamMember(m models.TeamMember) domain.TeamMember {
	return domain.TeamMember{
		ID:           m.ID,
		Name:         m.Name,
		CardLastFour: m.CardLastFour,
		Title:        m.Title,
		Department:   m.Department,
		Email:        m.Email,
		AuditFields:  toDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTeamMemberSlice converts a slice of storage rows to domain team members.
func ToDomainTeamMemberSlice(members []models.TeamMember) []domain.TeamMember {
	res := make([]domain.TeamMember, len(members))
	for i, m := range members {
		res[i] = ToDomainTeamMember(m)
	}
	return res
}
