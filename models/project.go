package models

import (
	"fmt"
	"regexp"
)

// Note is a journal-style entry on a project. Notes are append-only; the UI
// sorts them by timestamp for display.
type Note struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

// ProjectStatus uses Dataverse-style option set codes
type ProjectStatus int

const (
	StatusBacklog    ProjectStatus = 100000000
	StatusInProgress ProjectStatus = 100000001
	StatusBlocked    ProjectStatus = 100000002
	StatusDelayed    ProjectStatus = 100000003
	StatusCompleted  ProjectStatus = 100000004
)

var ProjectStatusLabels = map[ProjectStatus]string{
	StatusBacklog:    "Backlog",
	StatusInProgress: "In Progress",
	StatusBlocked:    "Blocked",
	StatusDelayed:    "Delayed",
	StatusCompleted:  "Completed",
}

// Project represents a tracked engagement. CustomerID is a weak reference to
// a customer record; only the id is ever persisted.
type Project struct {
	ID                 string         `json:"id"`
	Name               string         `json:"name"`
	Description        string         `json:"description,omitempty"`
	PrimaryStakeholder string         `json:"primaryStakeholder,omitempty"`
	Notes              []Note         `json:"notes,omitempty"`
	EstimatedDueDate   string         `json:"estimatedDueDate,omitempty"`
	PrimaryTechnology  TechnologyType `json:"primaryTechnology,omitempty"`
	Status             ProjectStatus  `json:"status,omitempty"`
	EstimatedUsage     string         `json:"estimatedUsage,omitempty"`
	HasIntent          bool           `json:"hasIntent,omitempty"`
	HasBuyIn           bool           `json:"hasBuyIn,omitempty"`
	CustomerID         string         `json:"customerId,omitempty"`
	CreatedAt          string         `json:"createdAt,omitempty"`
	ModifiedAt         string         `json:"modifiedAt,omitempty"`
}

// ProjectView is the read-side shape of a project: the persisted record plus
// the customer it references, attached for the client's convenience. It is
// never accepted as input to a write operation.
type ProjectView struct {
	Project
	Customer *Customer `json:"customer,omitempty"`
}

// CustomerRefField is the request field that carries a customer reference
// token on project create/update, e.g. "/customers(1718000000000)". The token
// is resolved to a plain customer id before the record is written and is
// never stored.
const CustomerRefField = "customerRef"

var customerRefPattern = regexp.MustCompile(`\(([^)]+)\)`)

// ParseCustomerRef extracts the customer id from a reference token. Returns
// "" when the token carries no id.
func ParseCustomerRef(token string) string {
	match := customerRefPattern.FindStringSubmatch(token)
	if match == nil {
		return ""
	}
	return match[1]
}

// CustomerRef builds the reference token for a customer id.
func CustomerRef(customerID string) string {
	return fmt.Sprintf("/customers(%s)", customerID)
}
