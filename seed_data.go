//go:build ignore

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rpupo63/csa-tracker-backend/models"
)

// Seeds the default data directory with a couple of sample customers and
// projects, plus the built-in technology catalog. Run once on a fresh
// machine:
//
//	go run seed_data.go
func main() {
	fmt.Println("🌱 CSA Tracker Data Seeder")
	fmt.Println("--------------------------")

	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Printf("❌ Error resolving home directory: %v\n", err)
		os.Exit(1)
	}

	root := filepath.Join(home, "Library", "CloudStorage", "OneDrive-Microsoft", "CSA Tracker Database")
	customersDir := filepath.Join(root, "customers")
	projectsDir := filepath.Join(root, "projects")

	for _, dir := range []string{customersDir, projectsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Printf("❌ Error creating %s: %v\n", dir, err)
			os.Exit(1)
		}
	}

	now := time.Now().UTC().Format(time.RFC3339)

	customers := []models.Customer{
		{
			ID:   "1",
			Name: "Acme Corporation",
			Stakeholders: []models.Stakeholder{
				{ID: "1", Name: "John Smith", Role: "CEO", Email: "john@acme.com"},
				{ID: "2", Name: "Sarah Johnson", Role: "CTO", Email: "sarah@acme.com"},
				{ID: "3", Name: "Mike Davis", Role: "Project Manager", Email: "mike@acme.com"},
			},
			PrimaryTechFocus: models.TechPowerApps,
			CreatedAt:        now,
			ModifiedAt:       now,
		},
		{
			ID:   "2",
			Name: "TechStart Inc",
			Stakeholders: []models.Stakeholder{
				{ID: "4", Name: "Emily Chen", Role: "VP of Operations", Email: "emily@techstart.com"},
				{ID: "5", Name: "David Brown", Role: "IT Director", Email: "david@techstart.com"},
			},
			PrimaryTechFocus: models.TechM365Copilot,
			CreatedAt:        now,
			ModifiedAt:       now,
		},
	}

	for _, customer := range customers {
		if err := writeRecord(customersDir, customer.ID, customer); err != nil {
			fmt.Printf("❌ Error writing customer %s: %v\n", customer.Name, err)
			os.Exit(1)
		}
		fmt.Printf("✓ Created customer: %s\n", customer.Name)
	}

	projects := []models.Project{
		{
			ID:                 "1",
			Name:               "Employee Portal Modernization",
			PrimaryStakeholder: "Sarah Johnson",
			Description:        "Complete overhaul of internal employee portal using modern Power Apps",
			Notes: []models.Note{
				{ID: "1", Content: "Initial requirements gathering completed", Timestamp: "2024-01-05T00:00:00Z"},
				{ID: "2", Content: "Design mockups approved by stakeholders", Timestamp: "2024-01-15T00:00:00Z"},
				{ID: "3", Content: "Development 60% complete", Timestamp: "2024-02-01T00:00:00Z"},
			},
			EstimatedDueDate:  "2024-03-15",
			PrimaryTechnology: models.TechPowerApps,
			Status:            models.StatusInProgress,
			CustomerID:        "1",
			CreatedAt:         now,
			ModifiedAt:        now,
		},
		{
			ID:                 "2",
			Name:               "AI Assistant Implementation",
			PrimaryStakeholder: "Emily Chen",
			Description:        "Deploy M365 Copilot across organization with custom training",
			Notes: []models.Note{
				{ID: "4", Content: "Project kickoff scheduled for March", Timestamp: "2024-02-10T00:00:00Z"},
			},
			EstimatedDueDate:  "2024-06-30",
			PrimaryTechnology: models.TechM365Copilot,
			Status:            models.StatusBacklog,
			CustomerID:        "2",
			CreatedAt:         now,
			ModifiedAt:        now,
		},
		{
			ID:                 "3",
			Name:               "Dataverse Migration",
			PrimaryStakeholder: "Mike Davis",
			Description:        "Migrate legacy data systems to Dataverse",
			Notes: []models.Note{
				{ID: "5", Content: "Data mapping completed", Timestamp: "2023-11-15T00:00:00Z"},
				{ID: "6", Content: "Migration phase 1 completed successfully", Timestamp: "2023-12-01T00:00:00Z"},
				{ID: "7", Content: "All data migrated and validated", Timestamp: "2024-01-20T00:00:00Z"},
				{ID: "8", Content: "Project closed successfully", Timestamp: "2024-02-01T00:00:00Z"},
			},
			EstimatedDueDate:  "2024-02-01",
			PrimaryTechnology: models.TechDataverse,
			Status:            models.StatusCompleted,
			CustomerID:        "1",
			CreatedAt:         now,
			ModifiedAt:        now,
		},
	}

	for _, project := range projects {
		if err := writeRecord(projectsDir, project.ID, project); err != nil {
			fmt.Printf("❌ Error writing project %s: %v\n", project.Name, err)
			os.Exit(1)
		}
		fmt.Printf("✓ Created project: %s\n", project.Name)
	}

	// Write the built-in technology catalog unless one is already there
	techPath := filepath.Join(root, "technology-settings.json")
	if _, err := os.Stat(techPath); os.IsNotExist(err) {
		catalog := models.DefaultTechnologySettings()
		catalog.UpdatedAt = now
		data, err := json.MarshalIndent(catalog, "", "  ")
		if err != nil {
			fmt.Printf("❌ Error encoding technology catalog: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(techPath, data, 0o644); err != nil {
			fmt.Printf("❌ Error writing technology catalog: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("✓ Created technology catalog")
	}

	fmt.Println("\n✅ Sample data initialized successfully!")
	fmt.Printf("📁 Location: %s\n", root)
}

func writeRecord(dir, id string, record any) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, id+".json"), data, 0o644)
}
