// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-profiles/internal/profile"
	"github.com/jonathan/resume-profiles/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs the resolved profile configuration.
// requested is the identifier that was asked for before fallback.
func (p *Printer) PrintProfile(requested string, cfg profile.Config) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Profile:       %s\n", cfg.Name))
	if requested != cfg.Name {
		sb.WriteString(fmt.Sprintf("Requested:     %q (unknown, using default)\n", requested))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Job tags:      %s\n", cfg.JobTags))
	sb.WriteString(fmt.Sprintf("Skill fields:  %s\n", cfg.SkillFields))
	sb.WriteString(fmt.Sprintf("Project tags:  %s\n", cfg.ProjectTags))
	sb.WriteString(fmt.Sprintf("Publications:  %s\n", cfg.Publications))
	sb.WriteString(fmt.Sprintf("Section order: %s", strings.Join(cfg.SectionOrder, " > ")))

	p.printBox("RESOLVED PROFILE", sb.String())
}

// PrintSectionCounts outputs how much of each master section survived filtering.
func (p *Printer) PrintSectionCounts(master *types.MasterData, resume *types.TailoredResume) {
	if master == nil || resume == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Jobs:          %d of %d (%d of %d achievements)\n",
		len(resume.Experience.Jobs), len(master.Experience.Jobs),
		countAchievements(resume.Experience.Jobs), countAchievements(master.Experience.Jobs)))
	sb.WriteString(fmt.Sprintf("Skill sets:    %d of %d (%d of %d skills)\n",
		len(resume.Skills.SkillSets), len(master.Skills.SkillSets),
		countSkills(resume.Skills.SkillSets), countSkills(master.Skills.SkillSets)))
	sb.WriteString(fmt.Sprintf("Projects:      %d of %d\n",
		len(resume.Projects.Projects), len(master.Projects.Projects)))
	sb.WriteString(fmt.Sprintf("Publications:  %d of %d\n",
		len(resume.Publications.Publications), len(master.Publications.Publications)))

	if len(resume.Projects.Projects) > 0 {
		sb.WriteString("\nProjects kept:\n")
		count := min(len(resume.Projects.Projects), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", resume.Projects.Projects[i].Name))
		}
	}

	p.printBox("TAILORED SECTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintWrittenFiles outputs the base names of the files written for this run.
func (p *Printer) PrintWrittenFiles(paths []string) {
	if len(paths) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Directory: %s\n\n", filepath.Dir(paths[0])))
	for _, path := range paths {
		sb.WriteString(fmt.Sprintf("  • %s\n", filepath.Base(path)))
	}

	p.printBox("OUTPUT FILES", strings.TrimSuffix(sb.String(), "\n"))
}

// truncate shortens line to at most width runes, marking the cut with "..."
func truncate(line string, width int) string {
	runes := []rune(line)
	if len(runes) <= width {
		return line
	}
	return string(runes[:width-3]) + "..."
}

func countAchievements(jobs []types.Job) int {
	total := 0
	for _, job := range jobs {
		total += len(job.Achievements)
	}
	return total
}

func countSkills(sets []types.SkillSet) int {
	total := 0
	for _, set := range sets {
		total += len(set.Skills)
	}
	return total
}
