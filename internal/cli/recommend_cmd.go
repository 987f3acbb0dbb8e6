package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avermeer/lectio/internal/cli/formatter"
)

func newRecommendCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "recommend",
		Short: "Show study recommendations from recent performance",
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := app.Recommends.Derive(context.Background(), app.UserID)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatRecommendations(recs))
			return nil
		},
	}
}
