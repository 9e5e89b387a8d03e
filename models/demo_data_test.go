package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoCustomersAreWellFormed(t *testing.T) {
	customers := DemoCustomers()
	require.NotEmpty(t, customers)

	seen := map[string]bool{}
	for _, c := range customers {
		assert.NotEmpty(t, c.ID)
		assert.NotEmpty(t, c.Name)
		assert.False(t, seen[c.ID], "duplicate demo customer id %s", c.ID)
		seen[c.ID] = true
		for _, s := range c.Stakeholders {
			assert.NotEmpty(t, s.ID)
			assert.NotEmpty(t, s.Name)
		}
	}
}

func TestDemoProjectsReferenceDemoCustomers(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	customers := map[string]bool{}
	for _, c := range DemoCustomers() {
		customers[c.ID] = true
	}

	for _, p := range DemoProjects(now) {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Name)
		assert.True(t, customers[p.CustomerID], "project %s references unknown customer %s", p.ID, p.CustomerID)
		require.NotNil(t, p.Customer)
		assert.Equal(t, p.CustomerID, p.Customer.ID)

		due, err := time.Parse(time.RFC3339, p.EstimatedDueDate)
		require.NoError(t, err)
		assert.True(t, due.After(now), "demo due dates always land in the future")
	}
}

func TestDemoProjectsAreDeterministicForFixedClock(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, DemoProjects(now), DemoProjects(now))
}

func TestParseCustomerRef(t *testing.T) {
	assert.Equal(t, "42", ParseCustomerRef("/customers(42)"))
	assert.Equal(t, "1718000000000", ParseCustomerRef(CustomerRef("1718000000000")))
	assert.Empty(t, ParseCustomerRef("no token here"))
	assert.Empty(t, ParseCustomerRef(""))
}
