// Package main provides the entry point for the resume profile generator CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_profiles",
	Short: "Profile-tailored resume data generator",
	Long:  "resume_profiles filters master resume YAML data into a profile-specific subset (research, aerospace, datascience, default) for the document template to render.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
