// Package profile maps profile identifiers to their fixed filter configuration.
package profile

import (
	"slices"
	"sort"

	"github.com/jonathan/resume-profiles/internal/filter"
	"github.com/jonathan/resume-profiles/internal/types"
)

// Known profile names
const (
	Research    = "research"
	Aerospace   = "aerospace"
	DataScience = "datascience"
	Default     = "default"
)

// Config is the filter configuration for one profile
type Config struct {
	Name         string
	JobTags      filter.Selector
	SkillFields  filter.Selector
	ProjectTags  filter.Selector
	SectionOrder []string
	Publications PublicationRule
}

// profiles is built once and never modified. Resolve hands out copies.
var profiles = map[string]Config{
	Research: {
		Name:        Research,
		JobTags:     filter.Tags("research", "academic", "teaching", "publication"),
		SkillFields: filter.Tags("research", "data-science", "mathematics", "optimization"),
		ProjectTags: filter.Tags("research", "open-source", "algorithms", "mathematics"),
		SectionOrder: []string{
			types.SectionEducation,
			types.SectionPublications,
			types.SectionExperience,
			types.SectionProjects,
			types.SectionSkills,
		},
	},
	Aerospace: {
		Name:        Aerospace,
		JobTags:     filter.Tags("aerospace", "nasa", "mission-planning", "optics", "simulation"),
		SkillFields: filter.Tags("aerospace", "simulation", "engineering", "optics"),
		ProjectTags: filter.Tags("aerospace", "simulation", "optics", "nasa"),
		SectionOrder: []string{
			types.SectionExperience,
			types.SectionEducation,
			types.SectionProjects,
			types.SectionSkills,
			types.SectionPublications,
		},
	},
	DataScience: {
		Name:        DataScience,
		JobTags:     filter.Tags("data-science", "machine-learning", "python", "software-development", "optimization"),
		SkillFields: filter.Tags("data-science", "machine-learning", "database", "python"),
		ProjectTags: filter.Tags("data-science", "data-visualization", "python", "jax", "optimization"),
		SectionOrder: []string{
			types.SectionExperience,
			types.SectionEducation,
			types.SectionProjects,
			types.SectionSkills,
		},
	},
	Default: {
		Name:        Default,
		JobTags:     filter.All(),
		SkillFields: filter.All(),
		ProjectTags: filter.All(),
		SectionOrder: []string{
			types.SectionExperience,
			types.SectionEducation,
			types.SectionProjects,
			types.SectionPublications,
			types.SectionSkills,
		},
	},
}

// Resolve returns the configuration for name, falling back to the default
// profile when name is unknown or empty. It never fails.
func Resolve(name string) Config {
	cfg, ok := profiles[name]
	if !ok {
		cfg = profiles[Default]
	}
	cfg.SectionOrder = slices.Clone(cfg.SectionOrder)
	cfg.Publications = PublicationRuleFor(cfg.Name)
	return cfg
}

// IsKnown reports whether name has its own configuration
func IsKnown(name string) bool {
	_, ok := profiles[name]
	return ok
}

// Names returns the known profile names in sorted order
func Names() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
