package models

// TechnologyType uses Dataverse-style option set codes carried over from the
// original data model so exported records keep their meaning.
type TechnologyType int

const (
	// AI Business Solutions
	TechM365Copilot        TechnologyType = 100000000
	TechCopilotStudio      TechnologyType = 100000001
	TechAzureFoundry       TechnologyType = 100000002
	TechPowerApps          TechnologyType = 100000003
	TechPowerAutomate      TechnologyType = 100000004
	TechGovernance         TechnologyType = 100000005
	TechDataverse          TechnologyType = 100000006
	TechOther              TechnologyType = 100000007
	TechPowerBI            TechnologyType = 100000008
	TechPowerPages         TechnologyType = 100000009
	TechDynamicsSales      TechnologyType = 100000010
	TechDynamicsService    TechnologyType = 100000011
	TechDynamicsFinance    TechnologyType = 100000012
	TechDynamicsMarketing  TechnologyType = 100000013
	TechDynamicsField      TechnologyType = 100000014
	TechWindows11          TechnologyType = 100000015
	TechIntune             TechnologyType = 100000016
	TechWindows365         TechnologyType = 100000017
	TechAVD                TechnologyType = 100000018
	TechDefenderEndpoint   TechnologyType = 100000019
	TechPowerPlatformGov   TechnologyType = 100000038

	// Cloud & AI Platforms
	TechAzureVMs          TechnologyType = 100000020
	TechAzureVMware       TechnologyType = 100000021
	TechAzureArc          TechnologyType = 100000022
	TechAzureKubernetes   TechnologyType = 100000023
	TechAzureAppService   TechnologyType = 100000024
	TechAzureContainer    TechnologyType = 100000025
	TechAzureFunctions    TechnologyType = 100000026
	TechAzureSQL          TechnologyType = 100000027
	TechAzureCosmosDB     TechnologyType = 100000028
	TechMicrosoftFabric   TechnologyType = 100000029
	TechGitHub            TechnologyType = 100000030
	TechAzureDevOps       TechnologyType = 100000031

	// Security
	TechDefenderXDR      TechnologyType = 100000032
	TechSentinel         TechnologyType = 100000033
	TechPurview          TechnologyType = 100000034
	TechEntraID          TechnologyType = 100000035
	TechDefenderCloud    TechnologyType = 100000036
	TechSecurityCopilot  TechnologyType = 100000037
)

var TechnologyTypeLabels = map[TechnologyType]string{
	TechM365Copilot:       "M365 Copilot",
	TechCopilotStudio:     "Copilot Studio",
	TechPowerPlatformGov:  "Power Platform Governance",
	TechPowerApps:         "Power Apps",
	TechPowerAutomate:     "Power Automate",
	TechPowerBI:           "Power BI",
	TechPowerPages:        "Power Pages",
	TechDataverse:         "Dataverse",
	TechDynamicsSales:     "Dynamics 365 Sales",
	TechDynamicsService:   "Dynamics 365 Customer Service",
	TechDynamicsFinance:   "Dynamics 365 Finance",
	TechDynamicsMarketing: "Dynamics 365 Marketing",
	TechDynamicsField:     "Dynamics 365 Field Service",
	TechWindows11:         "Windows 11",
	TechIntune:            "Intune",
	TechWindows365:        "Windows 365",
	TechAVD:               "Azure Virtual Desktop",
	TechDefenderEndpoint:  "Defender for Endpoint",
	TechAzureVMs:          "Azure VMs",
	TechAzureVMware:       "Azure VMware Solution",
	TechAzureArc:          "Azure Arc",
	TechAzureKubernetes:   "Azure Kubernetes (AKS)",
	TechAzureAppService:   "Azure App Service",
	TechAzureContainer:    "Azure Container Apps",
	TechAzureFunctions:    "Azure Functions",
	TechAzureSQL:          "Azure SQL",
	TechAzureCosmosDB:     "Azure Cosmos DB",
	TechMicrosoftFabric:   "Microsoft Fabric",
	TechAzureFoundry:      "Azure AI Foundry",
	TechGitHub:            "GitHub",
	TechAzureDevOps:       "Azure DevOps",
	TechDefenderXDR:       "Defender XDR",
	TechSentinel:          "Sentinel",
	TechPurview:           "Purview",
	TechEntraID:           "Entra ID",
	TechDefenderCloud:     "Defender for Cloud",
	TechSecurityCopilot:   "Security Copilot",
	TechGovernance:        "Governance",
	TechOther:             "Other",
}

// Label returns the display label for a technology code, or "" when the code
// is not in the built-in catalog.
func (t TechnologyType) Label() string {
	return TechnologyTypeLabels[t]
}

// SolutionArea is an entry in the editable solution-area catalog.
type SolutionArea struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Technology is a catalog entry under a solution area.
type Technology struct {
	ID           TechnologyType `json:"id"`
	Label        string         `json:"label"`
	SolutionArea string         `json:"solutionArea"`
}

// TechnologySettings is the whole-document taxonomy persisted as
// technology-settings.json in the data directory. There is no partial-update
// path: callers read-modify-write the entire structure.
type TechnologySettings struct {
	SolutionAreas []SolutionArea          `json:"solutionAreas"`
	Technologies  map[string][]Technology `json:"technologies"`
	UpdatedAt     string                  `json:"updatedAt,omitempty"`
}

// EmptyTechnologySettings is what the taxonomy store returns when no
// document exists yet.
func EmptyTechnologySettings() TechnologySettings {
	return TechnologySettings{
		SolutionAreas: []SolutionArea{},
		Technologies:  map[string][]Technology{},
	}
}

// DefaultTechnologySettings is the built-in catalog used to seed a fresh
// installation.
func DefaultTechnologySettings() TechnologySettings {
	areas := []SolutionArea{
		{ID: "ai-business", Label: "AI Business Solutions"},
		{ID: "cloud-ai", Label: "Cloud & AI Platforms"},
		{ID: "security", Label: "Security"},
	}

	aiBusiness := []TechnologyType{
		TechM365Copilot, TechCopilotStudio, TechPowerPlatformGov, TechPowerApps,
		TechPowerAutomate, TechPowerBI, TechPowerPages, TechDataverse,
		TechDynamicsSales, TechDynamicsService, TechDynamicsFinance,
		TechDynamicsMarketing, TechDynamicsField, TechWindows11, TechIntune,
		TechWindows365, TechAVD, TechDefenderEndpoint,
	}
	cloudAI := []TechnologyType{
		TechAzureVMs, TechAzureVMware, TechAzureArc, TechAzureKubernetes,
		TechAzureAppService, TechAzureContainer, TechAzureFunctions,
		TechAzureSQL, TechAzureCosmosDB, TechMicrosoftFabric, TechAzureFoundry,
		TechGitHub, TechAzureDevOps, TechDefenderCloud,
	}
	security := []TechnologyType{
		TechDefenderXDR, TechSentinel, TechPurview, TechEntraID,
		TechDefenderCloud, TechSecurityCopilot,
	}

	technologies := map[string][]Technology{
		"ai-business": techList("ai-business", aiBusiness),
		"cloud-ai":    techList("cloud-ai", cloudAI),
		"security":    techList("security", security),
	}

	return TechnologySettings{SolutionAreas: areas, Technologies: technologies}
}

func techList(area string, codes []TechnologyType) []Technology {
	list := make([]Technology, 0, len(codes))
	for _, code := range codes {
		list = append(list, Technology{ID: code, Label: code.Label(), SolutionArea: area})
	}
	return list
}
