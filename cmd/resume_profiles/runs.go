package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jonathan/resume-profiles/internal/config"
	"github.com/jonathan/resume-profiles/internal/db"
	"github.com/spf13/cobra"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Inspect tailoring runs stored in PostgreSQL",
	Long:  "Lists, shows, and deletes the runs that generate recorded with --db-url or DATABASE_URL.",
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the most recent runs",
	Args:  cobra.NoArgs,
	RunE:  runRunsList,
}

var runsShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show a run and its stored sections",
	Long: `Prints the run and the names of its stored sections. With --section the stored
JSON of that section is printed instead, or written to --out. A combined document
written this way can be checked with validate-output.`,
	Args: cobra.ExactArgs(1),
	RunE: runRunsShow,
}

var runsDeleteCmd = &cobra.Command{
	Use:   "delete <run-id>",
	Short: "Delete a run and its stored sections",
	Args:  cobra.ExactArgs(1),
	RunE:  runRunsDelete,
}

var (
	runsDatabaseURL string
	runsLimit       int
	runsSection     string
	runsOutput      string
)

func init() {
	runsCmd.PersistentFlags().StringVar(&runsDatabaseURL, "db-url", "", "PostgreSQL connection URL (defaults to DATABASE_URL env var)")

	runsListCmd.Flags().IntVarP(&runsLimit, "limit", "n", 20, "Maximum number of runs to list")

	runsShowCmd.Flags().StringVarP(&runsSection, "section", "s", "", "Section to print (resume_data for the combined document)")
	runsShowCmd.Flags().StringVarP(&runsOutput, "out", "o", "", "Write the section JSON to this file instead of stdout")

	runsCmd.AddCommand(runsListCmd, runsShowCmd, runsDeleteCmd)
	rootCmd.AddCommand(runsCmd)
}

// openRunsDatabase connects using --db-url, falling back to DATABASE_URL
func openRunsDatabase(ctx context.Context) (*db.DB, error) {
	databaseURL := runsDatabaseURL
	if databaseURL == "" {
		databaseURL = config.FromEnv().DatabaseURL
	}
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable or --db-url flag is required")
	}
	return db.Connect(ctx, databaseURL)
}

func parseRunID(arg string) (uuid.UUID, error) {
	id, err := uuid.Parse(arg)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid run id %q: %w", arg, err)
	}
	return id, nil
}

func runRunsList(cmd *cobra.Command, _ []string) error {
	if runsLimit <= 0 {
		return fmt.Errorf("--limit must be positive, got %d", runsLimit)
	}

	ctx := context.Background()
	database, err := openRunsDatabase(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	return listRuns(ctx, database, runsLimit, cmd.OutOrStdout())
}

func runRunsShow(cmd *cobra.Command, args []string) error {
	runID, err := parseRunID(args[0])
	if err != nil {
		return err
	}

	ctx := context.Background()
	database, err := openRunsDatabase(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	return showRun(ctx, database, runID, runsSection, runsOutput, cmd.OutOrStdout())
}

func runRunsDelete(cmd *cobra.Command, args []string) error {
	runID, err := parseRunID(args[0])
	if err != nil {
		return err
	}

	ctx := context.Background()
	database, err := openRunsDatabase(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	return deleteRun(ctx, database, runID, cmd.OutOrStdout())
}

func listRuns(ctx context.Context, database *db.DB, limit int, out io.Writer) error {
	runs, err := database.ListRuns(ctx, limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		_, _ = fmt.Fprintln(out, "No runs recorded")
		return nil
	}

	for _, run := range runs {
		_, _ = fmt.Fprintf(out, "%s  %-11s  %-9s  %s\n",
			run.ID, run.Profile, run.Status, run.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}

func showRun(ctx context.Context, database *db.DB, runID uuid.UUID, section, outPath string, out io.Writer) error {
	run, err := database.GetRun(ctx, runID)
	if err != nil {
		return err
	}
	if run == nil {
		return fmt.Errorf("run not found: %s", runID)
	}

	if section != "" {
		return showArtifact(ctx, database, runID, section, outPath, out)
	}

	sections, err := database.ListArtifactSections(ctx, runID)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, "Run:       %s\n", run.ID)
	if run.RequestedProfile != run.Profile {
		_, _ = fmt.Fprintf(out, "Profile:   %s (requested %q)\n", run.Profile, run.RequestedProfile)
	} else {
		_, _ = fmt.Fprintf(out, "Profile:   %s\n", run.Profile)
	}
	_, _ = fmt.Fprintf(out, "Data dir:  %s\n", run.DataDir)
	_, _ = fmt.Fprintf(out, "Status:    %s\n", run.Status)
	_, _ = fmt.Fprintf(out, "Created:   %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))
	if run.CompletedAt != nil {
		_, _ = fmt.Fprintf(out, "Completed: %s\n", run.CompletedAt.Format("2006-01-02 15:04:05"))
	}
	_, _ = fmt.Fprintf(out, "Sections:  %v\n", sections)
	return nil
}

func showArtifact(ctx context.Context, database *db.DB, runID uuid.UUID, section, outPath string, out io.Writer) error {
	content, err := database.GetArtifact(ctx, runID, section)
	if err != nil {
		return err
	}
	if content == nil {
		return fmt.Errorf("section %q not stored for run %s", section, runID)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, content, "", "  "); err != nil {
		return fmt.Errorf("failed to format section %s: %w", section, err)
	}
	pretty.WriteByte('\n')

	if outPath == "" {
		_, err := out.Write(pretty.Bytes())
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(outPath, pretty.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	_, _ = fmt.Fprintf(out, "Wrote %s to %s\n", section, outPath)
	return nil
}

func deleteRun(ctx context.Context, database *db.DB, runID uuid.UUID, out io.Writer) error {
	run, err := database.GetRun(ctx, runID)
	if err != nil {
		return err
	}
	if run == nil {
		return fmt.Errorf("run not found: %s", runID)
	}

	if err := database.DeleteRun(ctx, runID); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "Deleted run: %s\n", runID)
	return nil
}
