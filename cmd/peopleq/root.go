package main

import (
	"github.com/spf13/cobra"
)

// rootOptions holds global flags for all commands.
type rootOptions struct {
	ConfigFile string
	LogLevel   string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "peopleq",
		Short:         "Query the people record store",
		Long:          "Run deferred queries (get, list, single, names) against an in-memory people record store.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "path to a config file")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "warn", "log level (trace|debug|info|warn|error)")

	cmd.AddCommand(newGetCommand(opts))
	cmd.AddCommand(newListCommand(opts))
	cmd.AddCommand(newSingleCommand(opts))
	cmd.AddCommand(newNamesCommand(opts))
	cmd.AddCommand(newVersionCommand())

	return cmd
}

// withSession runs fn with a session that is closed afterwards.
func withSession(cmd *cobra.Command, opts *rootOptions, fn func(*session) error) error {
	s, err := newSession(cmd, opts)
	if err != nil {
		return err
	}
	defer s.close(cmd.Context())
	return fn(s)
}
