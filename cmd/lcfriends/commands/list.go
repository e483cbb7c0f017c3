package commands

import (
	"context"
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/lcfriends/lcfriends/internal/printer"
	"github.com/lcfriends/lcfriends/internal/render"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracked friends",
	Long: `List tracked friends in the order they were added.

Use --json for machine-readable output.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	env, cleanup, err := setupEnv(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	list, err := env.store.Load(ctx)
	if err != nil {
		return printer.Error("Failed to load friend list", err.Error(), nil)
	}

	if listJSON {
		encoder := json.NewEncoder(os.Stdout)
		return encoder.Encode(list)
	}

	render.NewTerminal(os.Stdout).RenderFriendList(list, "")
	return nil
}
