package domain

// TeamMember represents an employee, optionally associated with a company
// credit card by its trailing four digits.
type TeamMember struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	CardLastFour string `json:"card_last_four"`
	Title        string `json:"title,omitempty"`
	Department   string `json:"department,omitempty"`
	Email        string `json:"email,omitempty"`
	AuditFields
}
