package models

// TeamMember is the storage representation of a team member row.
type TeamMember struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	CardLastFour string `json:"card_last_four"`
	Title        string `json:"title"`
	Department   string `json:"department"`
	Email        string `json:"email"`
	AuditFields
}
