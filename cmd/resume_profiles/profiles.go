package main

import (
	"fmt"

	"github.com/jonathan/resume-profiles/internal/observability"
	"github.com/jonathan/resume-profiles/internal/profile"
	"github.com/spf13/cobra"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles [name...]",
	Short: "Show the filter configuration of each profile",
	Long:  "Prints the job tags, skill fields, project tags, publication rule, and section order of the named profiles, or of every known profile when no name is given.",
	RunE:  runProfiles,
}

func init() {
	rootCmd.AddCommand(profilesCmd)
}

func runProfiles(cmd *cobra.Command, args []string) error {
	names := args
	if len(names) == 0 {
		names = profile.Names()
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	for _, name := range names {
		printer.PrintProfile(name, profile.Resolve(name))
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Known profiles: %v\n", profile.Names())
	return nil
}
