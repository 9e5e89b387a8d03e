package models

// Stakeholder is a named contact owned by a customer. The list order on the
// customer is user-significant and preserved as stored.
type Stakeholder struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role,omitempty"`
	Email string `json:"email,omitempty"`
}

// Customer represents a tracked customer account
type Customer struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Stakeholders     []Stakeholder  `json:"stakeholders,omitempty"`
	PrimaryTechFocus TechnologyType `json:"primaryTechFocus,omitempty"`
	CreatedAt        string         `json:"createdAt,omitempty"`
	ModifiedAt       string         `json:"modifiedAt,omitempty"`
}
