package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lcfriends/lcfriends/internal/config"
)

var (
	version string
	commit  string
	date    string
)

var configPath string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lcfriends",
	Short: "lcfriends - track your friends' LeetCode activity",
	Long: `lcfriends tracks other LeetCode users ("friends") and shows a
per-friend dashboard of solved problems, recent accepted submissions,
and contest history, aggregated live from the LeetCode GraphQL API.

The friend list is persisted in Redis. Configuration is read from
~/.lcfriends.yml (override with --config).`,
	SilenceErrors: true,
	SilenceUsage:  true,
	Version:       version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "Path to the configuration file")
}
