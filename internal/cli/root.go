// Package cli wires the cobra command tree over the service layer.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/avermeer/lectio/internal/api"
	"github.com/avermeer/lectio/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Plans      service.PlanService
	Applies    service.ApplyService
	Recommends service.RecommendationService
	Metrics    service.MetricsService
	Catalog    service.CatalogService

	// Handler backs the serve command.
	Handler *api.Handler
	// Addr is the default HTTP listen address.
	Addr string
	// UserID identifies the tenant acting through the CLI.
	UserID string

	// IsInteractive reports whether stdin is attached to a terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "lectio" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "lectio",
		Short: "Study planner and recommendation engine",
	}

	root.PersistentFlags().StringVar(&app.UserID, "user", app.UserID, "User ID to act as")

	root.AddCommand(
		newPlanCmd(app),
		newRecommendCmd(app),
		newMetricsCmd(app),
		newTaskCmd(app),
		newTopicCmd(app),
		newEventCmd(app),
		newServeCmd(app),
	)

	return root
}
