package commands

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/lcfriends/lcfriends/internal/dashboard"
	"github.com/lcfriends/lcfriends/internal/notify"
	"github.com/lcfriends/lcfriends/internal/render"
)

var showCmd = &cobra.Command{
	Use:   "show <username>",
	Short: "Show a friend's activity dashboard",
	Long: `Show a friend's activity dashboard: profile, solved-problem counts
by difficulty, recent accepted submissions, and past contest results.

The four data sources are fetched concurrently; if any of them fails,
no partial dashboard is shown.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	username := args[0]

	env, cleanup, err := setupEnv(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	target := render.NewTerminal(os.Stdout)
	notifier := notify.New(render.PrinterSink{})
	controller := dashboard.New(env.store, env.aggregator, target, notifier, nil)

	return controller.Select(ctx, username)
}
