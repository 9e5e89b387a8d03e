package database

import (
	"time"

	"github.com/rpupo63/csa-tracker-backend/models"
)

// Demo stores serve the static dataset while demo mode is on. They expose
// the same read surface as the file-backed repos and nothing else; writes
// are refused upstream by the repos before any I/O happens.

type DemoCustomerStore struct{}

func (DemoCustomerStore) FindAll() []models.Customer {
	return models.DemoCustomers()
}

func (DemoCustomerStore) FindByID(id string) (*models.Customer, bool) {
	for _, customer := range models.DemoCustomers() {
		if customer.ID == id {
			return &customer, true
		}
	}
	return nil, false
}

type DemoProjectStore struct{}

func (DemoProjectStore) FindAll() []models.Project {
	views := models.DemoProjects(time.Now())
	projects := make([]models.Project, 0, len(views))
	for _, view := range views {
		projects = append(projects, view.Project)
	}
	return projects
}

func (DemoProjectStore) FindByID(id string) (*models.Project, bool) {
	for _, view := range models.DemoProjects(time.Now()) {
		if view.ID == id {
			project := view.Project
			return &project, true
		}
	}
	return nil, false
}
