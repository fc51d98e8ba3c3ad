package commands

import (
	"fmt"
	"strconv"

	"github.com/SscSPs/myerp_ledger/internal/platform/config"
	"github.com/spf13/cobra"
)

func newSequenceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sequence",
		Short: "Inspect or override journal reference counters",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get <journal> <year>",
		Short: "Print the last sequence value of a journal for a year",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := parseYear(args[1])
			if err != nil {
				return err
			}
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			a, err := buildApp(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			value, err := a.services.Reference.GetSequenceValue(cmd.Context(), args[0], year)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <journal> <year> <value>",
		Short: "Override the last sequence value of a journal for a year",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := parseYear(args[1])
			if err != nil {
				return err
			}
			value, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid sequence value %q: %w", args[2], err)
			}
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			a, err := buildApp(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.services.Reference.UpsertSequenceValue(cmd.Context(), args[0], year, value); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s/%d set to %d\n", args[0], year, value)
			return nil
		},
	})

	return cmd
}

func parseYear(s string) (int, error) {
	year, err := strconv.Atoi(s)
	if err != nil || year < 1 || year > 9999 {
		return 0, fmt.Errorf("invalid year %q", s)
	}
	return year, nil
}
