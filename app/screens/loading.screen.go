package screens

import (
	"github.com/Guerrilla-Interactive/nextgen-ignore/app"
	"github.com/Guerrilla-Interactive/nextgen-ignore/app/screens/shared"
	"github.com/charmbracelet/lipgloss"
)

// ViewScreenLoading shows a spinner while the catalog is fetched.
func ViewScreenLoading(m app.Model, spin string) string {
	header := shared.ProjectHeader(m.OutputPath)
	body := spin + " Fetching template catalog..."
	return app.DocStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", shared.Footer("q quit")))
}
