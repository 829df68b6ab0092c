package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kbukum/peoplequery/errors"
	"github.com/kbukum/peoplequery/query"
	"github.com/kbukum/peoplequery/record"
	"github.com/kbukum/peoplequery/version"
)

func newGetCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Look up one record by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withSession(cmd, opts, func(s *session) error {
				rec, ok, err := s.repo.GetByID(id).Block(cmd.Context())
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintf(cmd.OutOrStdout(), "record %d not found\n", id)
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), rec)
				return nil
			})
		},
	}
}

func newListCommand(opts *rootOptions) *cobra.Command {
	var firstName string
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List records in store order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if limit < 0 {
				return errors.InvalidInput("limit", "must not be negative")
			}
			return withSession(cmd, opts, func(s *session) error {
				q := s.repo.FindAll()
				if firstName != "" {
					q = q.Filter(byFirstName(firstName))
				}
				if limit > 0 {
					q = q.Take(limit)
				}

				var failed error
				q.Subscribe(cmd.Context(),
					func(r record.Record) { fmt.Fprintln(cmd.OutOrStdout(), r) },
					func(err error) { failed = err },
				)
				return failed
			})
		},
	}

	cmd.Flags().StringVar(&firstName, "first-name", "", "only records with this first name")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of records (0 for all)")
	return cmd
}

func newSingleCommand(opts *rootOptions) *cobra.Command {
	var firstName string
	var id int

	cmd := &cobra.Command{
		Use:   "single",
		Short: "Find the one record matching a condition",
		Long: `Find the one record matching --first-name or --id.

Fails when no record or more than one record matches.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var pred func(record.Record) bool
			var desc string
			if cmd.Flags().Changed("id") {
				pred = func(r record.Record) bool { return r.ID == id }
				desc = "id " + strconv.Itoa(id)
			} else {
				pred = byFirstName(firstName)
				desc = "first name " + strconv.Quote(firstName)
			}

			return withSession(cmd, opts, func(s *session) error {
				var failed error
				s.repo.FindAll().Filter(pred).Single().Subscribe(cmd.Context(),
					func(r record.Record) { fmt.Fprintln(cmd.OutOrStdout(), r) },
					func(err error) { failed = err },
				)
				switch {
				case query.IsNoElements(failed):
					return fmt.Errorf("no record with %s: %w", desc, failed)
				case query.IsTooManyElements(failed):
					return fmt.Errorf("more than one record with %s: %w", desc, failed)
				default:
					return failed
				}
			})
		},
	}

	cmd.Flags().StringVar(&firstName, "first-name", "", "match on first name")
	cmd.Flags().IntVar(&id, "id", 0, "match on id")
	cmd.MarkFlagsMutuallyExclusive("first-name", "id")
	cmd.MarkFlagsOneRequired("first-name", "id")
	return cmd
}

func newNamesCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "names",
		Short: "Print all first names in store order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, opts, func(s *session) error {
				names := query.MapMany(s.repo.FindAll(), func(r record.Record) (string, error) {
					return r.FirstName, nil
				})
				all, _, err := names.Collect().Block(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(all, ", "))
				return nil
			})
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), serviceName, version.Get())
		},
	}
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.InvalidInput("id", fmt.Sprintf("%q is not a number", s))
	}
	return id, nil
}

func byFirstName(name string) func(record.Record) bool {
	return func(r record.Record) bool { return r.FirstName == name }
}
