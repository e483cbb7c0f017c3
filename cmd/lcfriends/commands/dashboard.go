package commands

import (
	"bufio"
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lcfriends/lcfriends/internal/dashboard"
	"github.com/lcfriends/lcfriends/internal/notify"
	"github.com/lcfriends/lcfriends/internal/printer"
	"github.com/lcfriends/lcfriends/internal/render"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Interactive friend dashboard",
	Long: `Open an interactive dashboard session.

Commands inside the session:
  add <username>    track a new friend
  open <username>   show a friend's details
  rm <username>     stop tracking a friend (asks for confirmation)
  list              re-print the friend list
  close             dismiss the detail panel
  quit              leave the session`,
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	env, cleanup, err := setupEnv(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	scanner := bufio.NewScanner(os.Stdin)

	// Confirmation shares the session's input stream.
	confirm := func(prompt string) bool {
		printer.Printf("%s [y/N]: ", prompt)
		if !scanner.Scan() {
			return false
		}
		answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
		return answer == "y" || answer == "yes"
	}

	target := render.NewTerminal(os.Stdout)
	notifier := notify.New(render.PrinterSink{})
	controller := dashboard.New(env.store, env.aggregator, target, notifier, confirm)

	if err := controller.Start(ctx); err != nil {
		return printer.Error("Failed to load friend list", err.Error(), nil)
	}

	printer.Info("Type 'help' for commands, 'quit' to leave.\n")
	for {
		printer.Printf("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		command, arg := fields[0], ""
		if len(fields) > 1 {
			arg = fields[1]
		}

		switch command {
		case "add":
			if arg == "" {
				printer.Warning("Usage: add <username>\n")
				continue
			}
			controller.AddFriend(ctx, arg)
		case "open":
			if arg == "" {
				printer.Warning("Usage: open <username>\n")
				continue
			}
			// The error already reached the screen as an inline message.
			_ = controller.Select(ctx, arg)
		case "rm", "remove":
			if arg == "" {
				printer.Warning("Usage: rm <username>\n")
				continue
			}
			controller.RemoveFriend(ctx, arg)
		case "list":
			target.RenderFriendList(controller.Friends(), controller.Selected())
		case "close":
			controller.Close()
		case "help":
			printer.Info("Commands: add <u>, open <u>, rm <u>, list, close, quit\n")
		case "quit", "exit":
			return nil
		default:
			printer.Warning("Unknown command %q. Type 'help' for commands.\n", command)
		}
	}
}
