package models

import "time"

// Demo-mode dataset. Reads are served from these values while demo mode is
// on; due dates are computed relative to the supplied clock so the
// dashboard's due-date buckets stay meaningful no matter when the data is
// viewed.

func daysFromNow(now time.Time, days int) string {
	return now.AddDate(0, 0, days).UTC().Format(time.RFC3339)
}

// DemoCustomers returns the static demo customer set.
func DemoCustomers() []Customer {
	return []Customer{
		{
			ID:   "demo-customer-1",
			Name: "Contoso Manufacturing",
			Stakeholders: []Stakeholder{
				{ID: "1", Name: "Sarah Chen", Role: "CTO", Email: "sarah.chen@contoso.com"},
				{ID: "2", Name: "Michael Rodriguez", Role: "VP of Digital Transformation", Email: "m.rodriguez@contoso.com"},
			},
			PrimaryTechFocus: TechM365Copilot,
			CreatedAt:        "2024-01-15T10:30:00Z",
			ModifiedAt:       "2024-10-20T14:45:00Z",
		},
		{
			ID:   "demo-customer-2",
			Name: "Fabrikam Healthcare",
			Stakeholders: []Stakeholder{
				{ID: "3", Name: "Dr. James Liu", Role: "Chief Information Officer", Email: "james.liu@fabrikam.health"},
				{ID: "4", Name: "Amanda Foster", Role: "IT Director", Email: "a.foster@fabrikam.health"},
			},
			PrimaryTechFocus: TechPowerApps,
			CreatedAt:        "2024-02-10T09:15:00Z",
			ModifiedAt:       "2024-10-18T11:20:00Z",
		},
		{
			ID:   "demo-customer-3",
			Name: "Adventure Works Retail",
			Stakeholders: []Stakeholder{
				{ID: "5", Name: "Emily Thompson", Role: "VP of Technology", Email: "emily.t@adventureworks.com"},
				{ID: "6", Name: "David Park", Role: "Solutions Architect", Email: "d.park@adventureworks.com"},
			},
			PrimaryTechFocus: TechCopilotStudio,
			CreatedAt:        "2024-01-05T13:00:00Z",
			ModifiedAt:       "2024-10-22T16:30:00Z",
		},
		{
			ID:   "demo-customer-4",
			Name: "Northwind Financial Services",
			Stakeholders: []Stakeholder{
				{ID: "7", Name: "Robert Chang", Role: "Chief Digital Officer", Email: "r.chang@northwind.com"},
				{ID: "8", Name: "Lisa Martinez", Role: "Head of Innovation", Email: "lisa.m@northwind.com"},
			},
			PrimaryTechFocus: TechPowerPlatformGov,
			CreatedAt:        "2024-03-12T08:45:00Z",
			ModifiedAt:       "2024-10-25T10:15:00Z",
		},
		{
			ID:   "demo-customer-5",
			Name: "Tailspin Logistics",
			Stakeholders: []Stakeholder{
				{ID: "9", Name: "Jennifer Wu", Role: "VP Operations", Email: "jwu@tailspin.com"},
			},
			PrimaryTechFocus: TechPowerAutomate,
			CreatedAt:        "2024-02-20T14:30:00Z",
			ModifiedAt:       "2024-10-19T09:45:00Z",
		},
		{
			ID:   "demo-customer-6",
			Name: "Woodgrove Bank",
			Stakeholders: []Stakeholder{
				{ID: "10", Name: "Marcus Johnson", Role: "CTO", Email: "marcus.j@woodgrove.bank"},
				{ID: "11", Name: "Priya Sharma", Role: "AI Program Manager", Email: "priya.s@woodgrove.bank"},
			},
			PrimaryTechFocus: TechM365Copilot,
			CreatedAt:        "2024-01-28T11:00:00Z",
			ModifiedAt:       "2024-10-24T13:20:00Z",
		},
		{
			ID:   "demo-customer-7",
			Name: "Proseware Insurance",
			Stakeholders: []Stakeholder{
				{ID: "12", Name: "Angela Morrison", Role: "VP of IT", Email: "a.morrison@proseware.com"},
			},
			PrimaryTechFocus: TechCopilotStudio,
			CreatedAt:        "2024-03-05T09:30:00Z",
			ModifiedAt:       "2024-10-21T15:45:00Z",
		},
		{
			ID:   "demo-customer-8",
			Name: "VanArsdel Energy",
			Stakeholders: []Stakeholder{
				{ID: "13", Name: "Thomas Anderson", Role: "Director of Digital Services", Email: "t.anderson@vanarsdel.energy"},
				{ID: "14", Name: "Maria Garcia", Role: "Chief Data Officer", Email: "m.garcia@vanarsdel.energy"},
			},
			PrimaryTechFocus: TechPowerPlatformGov,
			CreatedAt:        "2024-02-14T10:15:00Z",
			ModifiedAt:       "2024-10-23T11:30:00Z",
		},
		{
			ID:   "demo-customer-9",
			Name: "Litware Education",
			Stakeholders: []Stakeholder{
				{ID: "15", Name: "Dr. Karen White", Role: "CIO", Email: "k.white@litware.edu"},
			},
			PrimaryTechFocus: TechPowerApps,
			CreatedAt:        "2024-01-18T13:45:00Z",
			ModifiedAt:       "2024-10-20T16:00:00Z",
		},
		{
			ID:   "demo-customer-10",
			Name: "Fourth Coffee Hospitality",
			Stakeholders: []Stakeholder{
				{ID: "16", Name: "Daniel Kim", Role: "VP Technology", Email: "d.kim@fourthcoffee.com"},
				{ID: "17", Name: "Sophie Laurent", Role: "Digital Experience Lead", Email: "s.laurent@fourthcoffee.com"},
			},
			PrimaryTechFocus: TechPowerAutomate,
			CreatedAt:        "2024-02-28T15:20:00Z",
			ModifiedAt:       "2024-10-26T14:10:00Z",
		},
		{
			ID:   "demo-customer-11",
			Name: "Alpine Ski House",
			Stakeholders: []Stakeholder{
				{ID: "18", Name: "Erik Olsen", Role: "IT Manager", Email: "erik.o@alpineskihouse.com"},
			},
			PrimaryTechFocus: TechDataverse,
			CreatedAt:        "2024-03-08T12:00:00Z",
			ModifiedAt:       "2024-10-22T10:45:00Z",
		},
		{
			ID:   "demo-customer-12",
			Name: "Relecloud Technologies",
			Stakeholders: []Stakeholder{
				{ID: "19", Name: "Nina Patel", Role: "Chief Technology Officer", Email: "nina.p@relecloud.com"},
				{ID: "20", Name: "Alex Turner", Role: "Head of AI Strategy", Email: "a.turner@relecloud.com"},
			},
			PrimaryTechFocus: TechPowerPlatformGov,
			CreatedAt:        "2024-01-22T14:30:00Z",
			ModifiedAt:       "2024-10-27T09:15:00Z",
		},
	}
}

// DemoProjects returns the static demo project set with the referenced
// customer attached. Due dates fall into buckets (about a week out, a month
// out, two months out) relative to now.
func DemoProjects(now time.Time) []ProjectView {
	customers := DemoCustomers()
	byID := make(map[string]*Customer, len(customers))
	for i := range customers {
		byID[customers[i].ID] = &customers[i]
	}

	projects := []Project{
		// Due in about a week
		{
			ID:                 "demo-project-1",
			Name:               "M365 Copilot Pilot Expansion",
			PrimaryStakeholder: "Sarah Chen",
			Description:        "Expand M365 Copilot pilot from 50 to 500 users across finance and operations departments",
			Notes: []Note{
				{ID: "n1", Content: "Initial pilot showed 40% productivity gains", Timestamp: "2024-10-15T10:00:00Z"},
				{ID: "n2", Content: "Executive approval received for expansion", Timestamp: "2024-10-28T14:30:00Z"},
			},
			EstimatedDueDate:  daysFromNow(now, 7),
			PrimaryTechnology: TechM365Copilot,
			Status:            StatusInProgress,
			CustomerID:        "demo-customer-1",
			CreatedAt:         "2024-09-10T08:00:00Z",
			ModifiedAt:        "2024-10-29T15:45:00Z",
		},
		{
			ID:                 "demo-project-2",
			Name:               "Patient Portal Power App",
			PrimaryStakeholder: "Dr. James Liu",
			Description:        "Deploy patient-facing mobile app for appointment scheduling and medical records access",
			Notes: []Note{
				{ID: "n3", Content: "HIPAA compliance review completed", Timestamp: "2024-10-20T11:00:00Z"},
				{ID: "n4", Content: "Beta testing with 100 patients scheduled", Timestamp: "2024-10-25T09:15:00Z"},
			},
			EstimatedDueDate:  daysFromNow(now, 8),
			PrimaryTechnology: TechPowerApps,
			Status:            StatusInProgress,
			CustomerID:        "demo-customer-2",
			CreatedAt:         "2024-09-05T09:30:00Z",
			ModifiedAt:        "2024-10-26T12:15:00Z",
		},
		{
			ID:                 "demo-project-3",
			Name:               "Customer Service Copilot",
			PrimaryStakeholder: "Emily Thompson",
			Description:        "Implement AI-powered customer service agent using Copilot Studio integrated with existing CRM",
			Notes: []Note{
				{ID: "n5", Content: "Knowledge base with 500+ articles imported", Timestamp: "2024-10-12T13:00:00Z"},
				{ID: "n6", Content: "Conversation flows for top 20 inquiries designed", Timestamp: "2024-10-22T10:30:00Z"},
			},
			EstimatedDueDate:  daysFromNow(now, 6),
			PrimaryTechnology: TechCopilotStudio,
			Status:            StatusInProgress,
			CustomerID:        "demo-customer-3",
			CreatedAt:         "2024-09-01T10:00:00Z",
			ModifiedAt:        "2024-10-27T09:00:00Z",
		},
		{
			ID:                 "demo-project-4",
			Name:               "Azure AI Document Intelligence",
			PrimaryStakeholder: "Robert Chang",
			Description:        "Deploy Azure AI Foundry solution for automated loan document processing and risk assessment",
			Notes: []Note{
				{ID: "n7", Content: "Model trained on 10K historical loan applications", Timestamp: "2024-10-18T15:00:00Z"},
				{ID: "n8", Content: "Accuracy rate: 94% on validation set", Timestamp: "2024-10-24T11:45:00Z"},
			},
			EstimatedDueDate:  daysFromNow(now, 9),
			PrimaryTechnology: TechPowerPlatformGov,
			Status:            StatusBlocked,
			CustomerID:        "demo-customer-4",
			CreatedAt:         "2024-09-15T14:00:00Z",
			ModifiedAt:        "2024-10-25T16:00:00Z",
		},
		{
			ID:                 "demo-project-5",
			Name:               "Automated Invoice Processing",
			PrimaryStakeholder: "Jennifer Wu",
			Description:        "Power Automate workflows to process supplier invoices and integrate with SAP",
			Notes: []Note{
				{ID: "n9", Content: "Currently processing 200 invoices/day manually", Timestamp: "2024-10-10T08:30:00Z"},
			},
			EstimatedDueDate:  daysFromNow(now, 7),
			PrimaryTechnology: TechPowerAutomate,
			Status:            StatusInProgress,
			CustomerID:        "demo-customer-5",
			CreatedAt:         "2024-09-20T11:30:00Z",
			ModifiedAt:        "2024-10-28T14:20:00Z",
		},
		{
			ID:                 "demo-project-6",
			Name:               "Banking Operations Copilot",
			PrimaryStakeholder: "Marcus Johnson",
			Description:        "M365 Copilot deployment for 800 banking staff with focus on compliance and documentation",
			Notes: []Note{
				{ID: "n10", Content: "Security assessment completed successfully", Timestamp: "2024-10-14T10:00:00Z"},
				{ID: "n11", Content: "Regulatory approval from compliance team", Timestamp: "2024-10-21T16:30:00Z"},
			},
			EstimatedDueDate:  daysFromNow(now, 8),
			PrimaryTechnology: TechM365Copilot,
			Status:            StatusDelayed,
			CustomerID:        "demo-customer-6",
			CreatedAt:         "2024-09-08T09:00:00Z",
			ModifiedAt:        "2024-10-26T13:45:00Z",
		},

		// Due in about a month
		{
			ID:                 "demo-project-7",
			Name:               "Claims Processing Copilot Studio Bot",
			PrimaryStakeholder: "Angela Morrison",
			Description:        "Intelligent chatbot to guide customers through insurance claims submission process",
			Notes: []Note{
				{ID: "n12", Content: "User journey mapping completed with UX team", Timestamp: "2024-10-05T14:00:00Z"},
				{ID: "n13", Content: "Integration with claims system tested", Timestamp: "2024-10-19T11:20:00Z"},
			},
			EstimatedDueDate:  daysFromNow(now, 28),
			PrimaryTechnology: TechCopilotStudio,
			Status:            StatusInProgress,
			CustomerID:        "demo-customer-7",
			CreatedAt:         "2024-09-12T10:30:00Z",
			ModifiedAt:        "2024-10-23T15:00:00Z",
		},
		{
			ID:                 "demo-project-8",
			Name:               "Predictive Maintenance AI",
			PrimaryStakeholder: "Maria Garcia",
			Description:        "Azure AI Foundry solution to predict equipment failures in power generation facilities",
			Notes: []Note{
				{ID: "n14", Content: "IoT sensors deployed across 5 facilities", Timestamp: "2024-09-25T13:15:00Z"},
				{ID: "n15", Content: "Initial model shows 85% prediction accuracy", Timestamp: "2024-10-15T10:45:00Z"},
			},
			EstimatedDueDate:  daysFromNow(now, 32),
			PrimaryTechnology: TechPowerPlatformGov,
			Status:            StatusInProgress,
			CustomerID:        "demo-customer-8",
			CreatedAt:         "2024-08-20T11:00:00Z",
			ModifiedAt:        "2024-10-20T14:30:00Z",
		},
		{
			ID:                 "demo-project-9",
			Name:               "Student Services Portal",
			PrimaryStakeholder: "Dr. Karen White",
			Description:        "Unified Power Apps portal for enrollment, grades, and student support services",
			Notes: []Note{
				{ID: "n16", Content: "Requirements gathered from 500+ students", Timestamp: "2024-09-18T09:00:00Z"},
				{ID: "n17", Content: "Prototype approved by student council", Timestamp: "2024-10-10T15:30:00Z"},
			},
			EstimatedDueDate:  daysFromNow(now, 30),
			PrimaryTechnology: TechPowerApps,
			Status:            StatusBacklog,
			CustomerID:        "demo-customer-9",
			CreatedAt:         "2024-08-28T14:00:00Z",
			ModifiedAt:        "2024-10-18T12:00:00Z",
		},
		{
			ID:                 "demo-project-10",
			Name:               "Guest Experience Automation",
			PrimaryStakeholder: "Daniel Kim",
			Description:        "Power Automate workflows for guest check-in, room service, and feedback collection",
			Notes: []Note{
				{ID: "n18", Content: "Pilot at flagship hotel shows 60% faster check-in", Timestamp: "2024-10-08T16:00:00Z"},
			},
			EstimatedDueDate:  daysFromNow(now, 29),
			PrimaryTechnology: TechPowerAutomate,
			Status:            StatusInProgress,
			CustomerID:        "demo-customer-10",
			CreatedAt:         "2024-09-03T10:15:00Z",
			ModifiedAt:        "2024-10-22T11:45:00Z",
		},
		{
			ID:                 "demo-project-11",
			Name:               "Dataverse Customer 360",
			PrimaryStakeholder: "Erik Olsen",
			Description:        "Centralized Dataverse platform for unified customer data across retail and resort operations",
			Notes: []Note{
				{ID: "n19", Content: "Data model design approved by stakeholders", Timestamp: "2024-10-12T13:30:00Z"},
				{ID: "n20", Content: "Legacy system integration plan finalized", Timestamp: "2024-10-20T09:45:00Z"},
			},
			EstimatedDueDate:  daysFromNow(now, 31),
			PrimaryTechnology: TechDataverse,
			Status:            StatusBacklog,
			CustomerID:        "demo-customer-11",
			CreatedAt:         "2024-09-07T12:00:00Z",
			ModifiedAt:        "2024-10-24T10:20:00Z",
		},
		{
			ID:                 "demo-project-12",
			Name:               "Code Review AI Assistant",
			PrimaryStakeholder: "Nina Patel",
			Description:        "Azure AI Foundry solution to automate code review and suggest improvements for dev teams",
			Notes: []Note{
				{ID: "n21", Content: "Model trained on internal codebase standards", Timestamp: "2024-10-11T14:15:00Z"},
				{ID: "n22", Content: "Integration with GitHub completed", Timestamp: "2024-10-19T10:00:00Z"},
			},
			EstimatedDueDate:  daysFromNow(now, 33),
			PrimaryTechnology: TechPowerPlatformGov,
			Status:            StatusInProgress,
			CustomerID:        "demo-customer-12",
			CreatedAt:         "2024-08-30T15:00:00Z",
			ModifiedAt:        "2024-10-25T16:30:00Z",
		},
		{
			ID:                 "demo-project-13",
			Name:               "Supply Chain Visibility Platform",
			PrimaryStakeholder: "Michael Rodriguez",
			Description:        "Power Apps solution for real-time supply chain tracking and vendor management",
			Notes: []Note{
				{ID: "n23", Content: "Onboarded 50 key suppliers to platform", Timestamp: "2024-10-16T11:30:00Z"},
			},
			EstimatedDueDate:  daysFromNow(now, 30),
			PrimaryTechnology: TechPowerApps,
			Status:            StatusInProgress,
			CustomerID:        "demo-customer-1",
			CreatedAt:         "2024-09-10T13:45:00Z",
			ModifiedAt:        "2024-10-21T14:15:00Z",
		},

		// Due in about two months
		{
			ID:                 "demo-project-14",
			Name:               "Clinical Decision Support AI",
			PrimaryStakeholder: "Amanda Foster",
			Description:        "Azure AI Foundry solution to assist physicians with diagnosis recommendations based on patient data",
			Notes: []Note{
				{ID: "n24", Content: "Ethical review board approval received", Timestamp: "2024-10-01T09:00:00Z"},
				{ID: "n25", Content: "Initial dataset of 5,000 cases prepared", Timestamp: "2024-10-14T13:45:00Z"},
			},
			EstimatedDueDate:  daysFromNow(now, 62),
			PrimaryTechnology: TechPowerPlatformGov,
			Status:            StatusBacklog,
			CustomerID:        "demo-customer-2",
			CreatedAt:         "2024-08-15T10:00:00Z",
			ModifiedAt:        "2024-10-17T15:20:00Z",
		},
		{
			ID:                 "demo-project-15",
			Name:               "Omnichannel Retail Copilot",
			PrimaryStakeholder: "David Park",
			Description:        "Copilot Studio bot for unified customer support across web, mobile, and in-store channels",
			Notes: []Note{
				{ID: "n26", Content: "Channel integration architecture designed", Timestamp: "2024-09-22T14:00:00Z"},
				{ID: "n27", Content: "Product catalog sync tested successfully", Timestamp: "2024-10-09T11:15:00Z"},
			},
			EstimatedDueDate:  daysFromNow(now, 58),
			PrimaryTechnology: TechCopilotStudio,
			Status:            StatusBacklog,
			CustomerID:        "demo-customer-3",
			CreatedAt:         "2024-08-25T11:30:00Z",
			ModifiedAt:        "2024-10-16T09:45:00Z",
		},
		{
			ID:                 "demo-project-16",
			Name:               "Trading Desk M365 Copilot",
			PrimaryStakeholder: "Lisa Martinez",
			Description:        "Specialized M365 Copilot deployment for trading desk with market data integration",
			Notes: []Note{
				{ID: "n28", Content: "Compliance requirements documented", Timestamp: "2024-09-28T10:30:00Z"},
				{ID: "n29", Content: "Bloomberg data feed integration designed", Timestamp: "2024-10-13T15:00:00Z"},
			},
			EstimatedDueDate:  daysFromNow(now, 61),
			PrimaryTechnology: TechM365Copilot,
			Status:            StatusBacklog,
			CustomerID:        "demo-customer-4",
			CreatedAt:         "2024-08-18T09:15:00Z",
			ModifiedAt:        "2024-10-19T12:30:00Z",
		},
		{
			ID:                 "demo-project-17",
			Name:               "Fleet Management Power Platform",
			PrimaryStakeholder: "Jennifer Wu",
			Description:        "Comprehensive solution using Power Apps, Power Automate, and Dataverse for fleet operations",
			Notes: []Note{
				{ID: "n30", Content: "GPS tracking integration completed", Timestamp: "2024-10-04T14:45:00Z"},
				{ID: "n31", Content: "Maintenance scheduling workflows built", Timestamp: "2024-10-18T10:15:00Z"},
			},
			EstimatedDueDate:  daysFromNow(now, 59),
			PrimaryTechnology: TechDataverse,
			Status:            StatusInProgress,
			CustomerID:        "demo-customer-5",
			CreatedAt:         "2024-08-22T13:00:00Z",
			ModifiedAt:        "2024-10-23T11:00:00Z",
		},
		{
			ID:                 "demo-project-18",
			Name:               "Financial Advisory Copilot",
			PrimaryStakeholder: "Priya Sharma",
			Description:        "Copilot Studio solution to assist financial advisors with client portfolio recommendations",
			Notes: []Note{
				{ID: "n32", Content: "Risk assessment algorithms validated", Timestamp: "2024-10-07T09:30:00Z"},
			},
			EstimatedDueDate:  daysFromNow(now, 60),
			PrimaryTechnology: TechCopilotStudio,
			Status:            StatusBacklog,
			CustomerID:        "demo-customer-6",
			CreatedAt:         "2024-08-28T14:30:00Z",
			ModifiedAt:        "2024-10-15T16:45:00Z",
		},
		{
			ID:                 "demo-project-19",
			Name:               "HR Onboarding Automation",
			PrimaryStakeholder: "Angela Morrison",
			Description:        "End-to-end Power Automate solution for employee onboarding across 15 departments",
			Notes: []Note{
				{ID: "n33", Content: "Workflow reduces onboarding time from 2 weeks to 3 days", Timestamp: "2024-10-11T11:00:00Z"},
				{ID: "n34", Content: "Integration with HRIS and IT systems completed", Timestamp: "2024-10-20T14:20:00Z"},
			},
			EstimatedDueDate:  daysFromNow(now, 63),
			PrimaryTechnology: TechPowerAutomate,
			Status:            StatusInProgress,
			CustomerID:        "demo-customer-7",
			CreatedAt:         "2024-08-19T10:45:00Z",
			ModifiedAt:        "2024-10-24T13:15:00Z",
		},
		{
			ID:                 "demo-project-20",
			Name:               "DevOps Productivity Copilot",
			PrimaryStakeholder: "Alex Turner",
			Description:        "M365 Copilot customized for engineering teams with Azure DevOps and GitHub integration",
			Notes: []Note{
				{ID: "n35", Content: "Custom prompts for code documentation created", Timestamp: "2024-10-06T15:30:00Z"},
				{ID: "n36", Content: "Sprint planning assistant tested with pilot team", Timestamp: "2024-10-17T10:00:00Z"},
			},
			EstimatedDueDate:  daysFromNow(now, 58),
			PrimaryTechnology: TechM365Copilot,
			Status:            StatusCompleted,
			CustomerID:        "demo-customer-12",
			CreatedAt:         "2024-08-26T12:15:00Z",
			ModifiedAt:        "2024-10-22T09:30:00Z",
		},
	}

	views := make([]ProjectView, 0, len(projects))
	for _, p := range projects {
		views = append(views, ProjectView{Project: p, Customer: byID[p.CustomerID]})
	}
	return views
}
