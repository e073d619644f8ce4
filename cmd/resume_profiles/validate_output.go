package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/resume-profiles/internal/schemas"
	"github.com/spf13/cobra"
)

var validateOutputCmd = &cobra.Command{
	Use:   "validate-output",
	Short: "Validate a generated combined document against the schema",
	Long: `Checks a combined tailored resume for the required sections, known section names,
and the project cap. Accepts tmp_resume_data.yml or a .json document exported with
"runs show --section resume_data --out".`,
	RunE:  runValidateOutput,
}

var validateOutputFile string

func init() {
	validateOutputCmd.Flags().StringVarP(&validateOutputFile, "in", "i", "", "Path to combined YAML or JSON file (required)")

	if err := validateOutputCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(validateOutputCmd)
}

func runValidateOutput(cmd *cobra.Command, _ []string) error {
	if _, err := os.Stat(validateOutputFile); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", validateOutputFile)
	}

	if err := schemas.ValidateTailoredResumeFile(validateOutputFile); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("validation failed: %w", err)
		}
		return fmt.Errorf("failed to validate %s: %w", validateOutputFile, err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Valid: %s\n", validateOutputFile)
	return nil
}
