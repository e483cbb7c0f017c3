package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lcfriends/lcfriends/internal/printer"
)

var removeYes bool

var removeCmd = &cobra.Command{
	Use:     "remove <username>",
	Aliases: []string{"rm"},
	Short:   "Stop tracking a LeetCode user",
	Long: `Stop tracking a LeetCode user.

Asks for confirmation unless --yes is given. Removing a username that
is not tracked is a no-op.`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func init() {
	removeCmd.Flags().BoolVarP(&removeYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	username := args[0]

	env, cleanup, err := setupEnv(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	if !removeYes {
		prompt := fmt.Sprintf("Are you sure you want to remove %s from your friends list?", username)
		if !confirmPrompt(os.Stdin, prompt) {
			printer.Info("Aborted.\n")
			return nil
		}
	}

	list, err := env.store.Remove(ctx, username)
	if err != nil {
		return printer.Error("Failed to remove friend", err.Error(), nil)
	}

	printer.Success("%s has been removed from your friends list. (%d tracked)\n", username, len(list))
	return nil
}
