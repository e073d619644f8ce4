// Package main implements the resume_profiles CLI tool.
package main

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/jonathan/resume-profiles/internal/config"
	"github.com/jonathan/resume-profiles/internal/db"
	"github.com/jonathan/resume-profiles/internal/masterdata"
	"github.com/jonathan/resume-profiles/internal/observability"
	"github.com/jonathan/resume-profiles/internal/output"
	"github.com/jonathan/resume-profiles/internal/profile"
	"github.com/jonathan/resume-profiles/internal/schemas"
	"github.com/jonathan/resume-profiles/internal/tailoring"
	"github.com/jonathan/resume-profiles/internal/types"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write profile-filtered resume data for the document template",
	Long: `Loads the master resume YAML files, filters them for the active profile, and writes
tmp_resume_data.yml plus one tmp_<section>.yml per section.

The profile comes from --profile, then the QUARTO_PROFILE environment variable, then the
config file, and finally "default". Unknown profiles fall back to "default".`,
	RunE: runGenerateCmd,
}

var (
	generateConfigPath     string
	generateDataDir        string
	generateOutputDir      string
	generateProfile        string
	generateDatabaseURL    string
	generateVerbose        bool
	generateSkipValidation bool
)

func init() {
	generateCmd.Flags().StringVar(&generateConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	generateCmd.Flags().StringVarP(&generateDataDir, "data-dir", "d", "", "Directory containing the master YAML files (default \"_data\")")
	generateCmd.Flags().StringVarP(&generateOutputDir, "out", "o", "", "Directory for generated files (defaults to the data directory)")
	generateCmd.Flags().StringVarP(&generateProfile, "profile", "p", "", "Profile to generate (defaults to QUARTO_PROFILE env var)")
	generateCmd.Flags().StringVar(&generateDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	generateCmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Print detailed summaries")
	generateCmd.Flags().BoolVar(&generateSkipValidation, "skip-validation", false, "Skip schema validation of the generated data")

	rootCmd.AddCommand(generateCmd)
}

func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveGenerateConfig(cmd)
	if err != nil {
		return err
	}
	return generate(context.Background(), cfg, cmd.OutOrStdout())
}

// resolveGenerateConfig layers flags over the environment, the config file, and defaults
func resolveGenerateConfig(cmd *cobra.Command) (config.Config, error) {
	var fileCfg config.Config
	if generateConfigPath != "" {
		loadedCfg, err := config.LoadConfig(generateConfigPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		fileCfg = *loadedCfg
	}

	// Only override if the flag was explicitly set
	var cfg config.Config
	if cmd.Flags().Changed("data-dir") {
		cfg.DataDir = generateDataDir
	}
	if cmd.Flags().Changed("out") {
		cfg.OutputDir = generateOutputDir
	}
	if cmd.Flags().Changed("profile") {
		cfg.Profile = generateProfile
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = generateDatabaseURL
	}
	cfg.Verbose = fileCfg.Verbose
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = generateVerbose
	}
	cfg.SkipValidation = fileCfg.SkipValidation
	if cmd.Flags().Changed("skip-validation") {
		cfg.SkipValidation = generateSkipValidation
	}

	cfg = cfg.MergeWithDefaults(config.FromEnv())
	cfg = cfg.MergeWithDefaults(fileCfg)
	cfg = cfg.MergeWithDefaults(config.Defaults())

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// generate runs one tailoring pass for cfg and reports progress to out
func generate(ctx context.Context, cfg config.Config, out io.Writer) error {
	requested := cfg.Profile
	resolved := profile.Resolve(requested)

	_, _ = fmt.Fprintf(out, "Generating resume data for profile: %s\n", requested)
	if !profile.IsKnown(requested) {
		log.Printf("unknown profile %q, using %q configuration", requested, resolved.Name)
	}

	master, err := masterdata.Load(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("failed to load master data: %w", err)
	}

	resume := tailoring.Assemble(master, resolved)

	if !cfg.SkipValidation {
		if err := schemas.ValidateTailoredResume(resume); err != nil {
			return fmt.Errorf("generated data failed schema validation: %w", err)
		}
	}

	written, err := output.Write(cfg.ResolvedOutputDir(), resume)
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if cfg.DatabaseURL != "" {
		runID, err := persistRun(ctx, cfg, requested, resolved.Name, resume)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, "Saved run: %s\n", runID)
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(out)
		printer.PrintProfile(requested, resolved)
		printer.PrintSectionCounts(master, resume)
		printer.PrintWrittenFiles(written)
	}

	_, _ = fmt.Fprintf(out, "Generated filtered resume data at: %s\n", written[0])
	return nil
}

// persistRun records the run and stores every generated section
func persistRun(ctx context.Context, cfg config.Config, requested, resolved string, resume *types.TailoredResume) (string, error) {
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return "", err
	}
	defer database.Close()

	if err := database.Migrate(ctx); err != nil {
		return "", err
	}

	runID, err := database.CreateRun(ctx, requested, resolved, cfg.DataDir)
	if err != nil {
		return "", err
	}

	if err := database.SaveTailoredResume(ctx, runID, resume); err != nil {
		if completeErr := database.CompleteRun(ctx, runID, db.StatusFailed); completeErr != nil {
			log.Printf("failed to mark run %s as failed: %v", runID, completeErr)
		}
		return "", err
	}

	if err := database.CompleteRun(ctx, runID, db.StatusCompleted); err != nil {
		return "", err
	}
	return runID.String(), nil
}
