package filter

import (
	"github.com/jonathan/resume-profiles/internal/types"
)

// MaxProjects is the maximum number of projects kept for any profile
const MaxProjects = 5

// Tagged is implemented by records that carry a tag list
type Tagged interface {
	TagList() []string
}

// ByTags keeps the items whose tags intersect the selector, preserving order.
// With an All selector the input slice is returned as is.
func ByTags[T Tagged](items []T, sel Selector) []T {
	if sel.IsAll() {
		return items
	}

	kept := make([]T, 0, len(items))
	for _, item := range items {
		if sel.Matches(item.TagList()) {
			kept = append(kept, item)
		}
	}
	return kept
}

// Achievements filters the achievements of every job. Jobs left without any
// achievement are dropped. The input jobs are not modified.
func Achievements(jobs []types.Job, sel Selector) []types.Job {
	filtered := make([]types.Job, 0, len(jobs))
	for _, job := range jobs {
		achievements := ByTags(job.Achievements, sel)
		if len(achievements) == 0 {
			continue
		}
		job.Achievements = achievements
		filtered = append(filtered, job)
	}
	return filtered
}

// SkillSets keeps the skills whose field labels intersect the selector.
// Skill sets left without any skill are dropped.
func SkillSets(sets []types.SkillSet, sel Selector) []types.SkillSet {
	filtered := make([]types.SkillSet, 0, len(sets))
	for _, set := range sets {
		skills := ByTags(set.Skills, sel)
		if len(skills) == 0 {
			continue
		}
		set.Skills = skills
		filtered = append(filtered, set)
	}
	return filtered
}

// Projects filters projects by tag and keeps at most MaxProjects of them.
// The cap applies even when the selector is All.
func Projects(projects []types.Project, sel Selector) []types.Project {
	kept := ByTags(projects, sel)
	n := min(len(kept), MaxProjects)

	capped := make([]types.Project, n)
	copy(capped, kept[:n])
	return capped
}
