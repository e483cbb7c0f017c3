package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/lcfriends/lcfriends/internal/friends"
	"github.com/lcfriends/lcfriends/internal/printer"
)

var addCmd = &cobra.Command{
	Use:   "add <username>",
	Short: "Track a LeetCode user",
	Long: `Track a LeetCode user as a friend.

The username is verified against LeetCode before it is added; unknown
usernames are rejected. The friend list keeps insertion order and
never contains duplicates.

Examples:
  lcfriends add alice
  lcfriends add --config work.yml alice`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	username := args[0]

	env, cleanup, err := setupEnv(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	printer.Step("Checking %s on LeetCode...\n", username)
	list, err := env.store.Add(ctx, username)
	switch {
	case errors.Is(err, friends.ErrAlreadyTracked):
		printer.Warning("Friend already added!\n")
		return nil
	case errors.Is(err, friends.ErrNotFound):
		return printer.Error(
			"User not found",
			"User \""+username+"\" does not exist on LeetCode.",
			[]string{"Check the spelling of the username"},
		)
	case errors.Is(err, friends.ErrRemoteUnavailable):
		return printer.Error(
			"Could not verify user",
			err.Error(),
			[]string{"Check your network connection and try again"},
		)
	case err != nil:
		return printer.Error("Failed to add friend", err.Error(), nil)
	}

	printer.Success("%s added to your friends list! (%d tracked)\n", username, len(list))
	return nil
}
