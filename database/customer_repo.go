package database

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/rpupo63/csa-tracker-backend/errs"
	"github.com/rpupo63/csa-tracker-backend/models"
	"github.com/rpupo63/csa-tracker-backend/settings"
)

// CustomerRepo stores one JSON file per customer under the active data
// directory. The directory is resolved through the settings manager on
// every call so a relocation takes effect immediately.
type CustomerRepo struct {
	store    *FileStore
	settings *settings.Manager
	collator *collate.Collator
}

func NewCustomerRepo(store *FileStore, manager *settings.Manager) *CustomerRepo {
	return &CustomerRepo{
		store:    store,
		settings: manager,
		collator: collate.New(language.English, collate.Loose),
	}
}

func (r *CustomerRepo) dir() string {
	return r.settings.CustomersDir()
}

// FindAll returns every readable customer record sorted by name,
// case-insensitively. Unreadable records are dropped from the result.
func (r *CustomerRepo) FindAll() []models.Customer {
	var customers []models.Customer
	for _, name := range r.store.List(r.dir()) {
		var customer models.Customer
		if r.store.Read(r.dir(), name, &customer) {
			customers = append(customers, customer)
		}
	}
	sort.SliceStable(customers, func(i, j int) bool {
		return r.collator.CompareString(customers[i].Name, customers[j].Name) < 0
	})
	return customers
}

// FindByID returns the customer and whether it exists.
func (r *CustomerRepo) FindByID(id string) (*models.Customer, bool) {
	var customer models.Customer
	if !r.store.Read(r.dir(), id+jsonExt, &customer) {
		return nil, false
	}
	return &customer, true
}

// Create assigns an id and timestamps and writes a new customer record.
func (r *CustomerRepo) Create(fields map[string]any) (*models.Customer, error) {
	if r.settings.IsDemoMode() {
		return nil, errs.NewDemoModeActive()
	}

	doc := make(map[string]any, len(fields)+3)
	for k, v := range fields {
		doc[k] = v
	}
	now := nowStamp()
	id := newRecordID(r.store, r.dir())
	doc["id"] = id
	doc["createdAt"] = now
	doc["modifiedAt"] = now
	assignListIDs(doc, "stakeholders")

	if err := r.store.Write(r.dir(), id+jsonExt, doc); err != nil {
		return nil, errs.NewStorageError("create", "customer", err)
	}
	return decodeRecord[models.Customer](doc)
}

// Update shallow-merges the incoming fields over the stored record and
// refreshes modifiedAt. The id and createdAt always keep their stored
// values.
func (r *CustomerRepo) Update(id string, fields map[string]any) (*models.Customer, error) {
	if r.settings.IsDemoMode() {
		return nil, errs.NewDemoModeActive()
	}

	doc := map[string]any{}
	if !r.store.Read(r.dir(), id+jsonExt, &doc) {
		return nil, errs.NewNotFound("customer")
	}
	createdAt := doc["createdAt"]
	for k, v := range fields {
		doc[k] = v
	}
	doc["id"] = id
	doc["createdAt"] = createdAt
	doc["modifiedAt"] = nowStamp()
	assignListIDs(doc, "stakeholders")

	if err := r.store.Write(r.dir(), id+jsonExt, doc); err != nil {
		return nil, errs.NewStorageError("update", "customer", err)
	}
	return decodeRecord[models.Customer](doc)
}

// Delete removes the customer record. Deleting an absent record succeeds.
// Projects referencing the customer keep their dangling id.
func (r *CustomerRepo) Delete(id string) error {
	if r.settings.IsDemoMode() {
		return errs.NewDemoModeActive()
	}
	if err := r.store.Delete(r.dir(), id+jsonExt); err != nil {
		return errs.NewStorageError("delete", "customer", err)
	}
	return nil
}
