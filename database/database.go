package database

import (
	"github.com/go-git/go-billy/v5"
	"github.com/rs/zerolog"

	"github.com/rpupo63/csa-tracker-backend/models"
	"github.com/rpupo63/csa-tracker-backend/settings"
)

// CustomerSource is the read surface shared by the file-backed repo and the
// demo dataset.
type CustomerSource interface {
	FindAll() []models.Customer
	FindByID(id string) (*models.Customer, bool)
}

// ProjectSource is the read surface shared by the file-backed repo and the
// demo dataset.
type ProjectSource interface {
	FindAll() []models.Project
	FindByID(id string) (*models.Project, bool)
}

type Database struct {
	customerRepo  *CustomerRepo
	projectRepo   *ProjectRepo
	demoCustomers DemoCustomerStore
	demoProjects  DemoProjectStore
	settings      *settings.Manager
}

// New initializes a new Database struct with each repository sharing one
// file store over the given filesystem.
func New(fs billy.Filesystem, manager *settings.Manager, logger zerolog.Logger) Database {
	store := NewFileStore(fs, logger)
	return Database{
		customerRepo: NewCustomerRepo(store, manager),
		projectRepo:  NewProjectRepo(store, manager),
		settings:     manager,
	}
}

// Accessor methods for each repository

func (d Database) CustomerRepo() *CustomerRepo {
	return d.customerRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

// Customers picks the read source for the current request: the demo
// dataset while demo mode is on, the file-backed repo otherwise.
func (d Database) Customers() CustomerSource {
	if d.settings.IsDemoMode() {
		return d.demoCustomers
	}
	return d.customerRepo
}

// Projects picks the read source for the current request.
func (d Database) Projects() ProjectSource {
	if d.settings.IsDemoMode() {
		return d.demoProjects
	}
	return d.projectRepo
}
