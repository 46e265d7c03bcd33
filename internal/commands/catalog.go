package commands

import "github.com/tyemirov/ptree/internal/types"

// DefaultCatalog returns the key directories and documentation files of the project.
func DefaultCatalog() types.Catalog {
	return types.Catalog{
		KeyDirectories: []types.CatalogEntry{
			{Path: "backend/src/models", Description: "Database schemas"},
			{Path: "backend/src/services", Description: "Business logic"},
			{Path: "backend/src/controllers", Description: "API controllers"},
			{Path: "backend/src/routes", Description: "API routes"},
			{Path: "backend/src/bot", Description: "Telegram Bot"},
			{Path: "webapp/src/pages", Description: "App screens"},
			{Path: "webapp/src/store", Description: "State management"},
			{Path: "webapp/src/api", Description: "API client"},
			{Path: "docs/", Description: "Documentation"},
		},
		DocumentationFiles: []types.CatalogEntry{
			{Path: "README.md", Description: "Main project documentation"},
			{Path: "QUICKSTART.md", Description: "Quick start guide"},
			{Path: "PROJECT_SUMMARY.md", Description: "Project summary"},
			{Path: "docs/API.md", Description: "API documentation"},
			{Path: "docs/GAME_MECHANICS.md", Description: "Game mechanics details"},
			{Path: "docs/ARCHITECTURE.md", Description: "System architecture"},
			{Path: "docs/DEPLOYMENT.md", Description: "Deployment guide"},
			{Path: "docs/UX_FLOW.md", Description: "User experience flow"},
			{Path: "docs/RECOMMENDATIONS.md", Description: "Future recommendations"},
		},
	}
}
