// Package types provides type definitions for the resume master data and the
// profile-tailored output produced from it.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"gopkg.in/yaml.v3"
)

// MasterData holds the six master resume sections as loaded from disk.
// Personal and Education hold whatever YAML the files contain; the loader
// stores them as *yaml.Node so they re-encode in source order.
type MasterData struct {
	Personal     any
	Experience   Experience
	Education    any
	Skills       Skills
	Projects     Projects
	Publications Publications
}

// Experience is the experience section: a list of jobs plus any extra keys
type Experience struct {
	Jobs  []Job          `yaml:"jobs"`
	Extra map[string]any `yaml:",inline"`

	source *yaml.Node
}

type plainExperience Experience

// UnmarshalYAML decodes the section and keeps its source node
func (e *Experience) UnmarshalYAML(node *yaml.Node) error {
	var plain plainExperience
	if err := node.Decode(&plain); err != nil {
		return err
	}
	*e = Experience(plain)
	e.source = node
	return nil
}

// MarshalYAML emits the source keys in file order with the current jobs
func (e Experience) MarshalYAML() (any, error) {
	if e.source == nil {
		return plainExperience(e), nil
	}
	return withList(e.source, "jobs", e.Jobs, len(e.Jobs), true)
}

// Job represents a single position with tagged achievements
type Job struct {
	Title        string         `yaml:"title,omitempty"`
	Company      string         `yaml:"company,omitempty"`
	Location     string         `yaml:"location,omitempty"`
	StartDate    string         `yaml:"start_date,omitempty"`
	EndDate      string         `yaml:"end_date,omitempty"`
	Tags         []string       `yaml:"tags,omitempty"`
	Achievements []Achievement  `yaml:"achievements,omitempty"`
	Extra        map[string]any `yaml:",inline"`

	source *yaml.Node
}

type plainJob Job

// UnmarshalYAML decodes the job and keeps its source node
func (j *Job) UnmarshalYAML(node *yaml.Node) error {
	var plain plainJob
	if err := node.Decode(&plain); err != nil {
		return err
	}
	*j = Job(plain)
	j.source = node
	return nil
}

// MarshalYAML emits the source keys in file order with the current achievements
func (j Job) MarshalYAML() (any, error) {
	if j.source == nil {
		return plainJob(j), nil
	}
	return withList(j.source, "achievements", j.Achievements, len(j.Achievements), false)
}

// Achievement is one bullet under a job. A missing tags key is an empty tag set.
type Achievement struct {
	Description string         `yaml:"description,omitempty"`
	Tags        []string       `yaml:"tags,omitempty"`
	Extra       map[string]any `yaml:",inline"`

	source *yaml.Node
}

type plainAchievement Achievement

// UnmarshalYAML decodes the achievement and keeps its source node
func (a *Achievement) UnmarshalYAML(node *yaml.Node) error {
	var plain plainAchievement
	if err := node.Decode(&plain); err != nil {
		return err
	}
	*a = Achievement(plain)
	a.source = node
	return nil
}

// MarshalYAML emits the source node unchanged when there is one
func (a Achievement) MarshalYAML() (any, error) {
	if a.source != nil {
		return a.source, nil
	}
	return plainAchievement(a), nil
}

// TagList returns the achievement's tags
func (a Achievement) TagList() []string {
	return a.Tags
}

// Skills is the skills section: a list of skill sets plus any extra keys
type Skills struct {
	SkillSets []SkillSet     `yaml:"skill_sets"`
	Extra     map[string]any `yaml:",inline"`

	source *yaml.Node
}

type plainSkills Skills

// UnmarshalYAML decodes the section and keeps its source node
func (s *Skills) UnmarshalYAML(node *yaml.Node) error {
	var plain plainSkills
	if err := node.Decode(&plain); err != nil {
		return err
	}
	*s = Skills(plain)
	s.source = node
	return nil
}

// MarshalYAML emits the source keys in file order with the current skill sets
func (s Skills) MarshalYAML() (any, error) {
	if s.source == nil {
		return plainSkills(s), nil
	}
	return withList(s.source, "skill_sets", s.SkillSets, len(s.SkillSets), true)
}

// SkillSet groups related skills under a heading
type SkillSet struct {
	Name   string         `yaml:"name,omitempty"`
	Skills []Skill        `yaml:"skills,omitempty"`
	Extra  map[string]any `yaml:",inline"`

	source *yaml.Node
}

type plainSkillSet SkillSet

// UnmarshalYAML decodes the skill set and keeps its source node
func (s *SkillSet) UnmarshalYAML(node *yaml.Node) error {
	var plain plainSkillSet
	if err := node.Decode(&plain); err != nil {
		return err
	}
	*s = SkillSet(plain)
	s.source = node
	return nil
}

// MarshalYAML emits the source keys in file order with the current skills
func (s SkillSet) MarshalYAML() (any, error) {
	if s.source == nil {
		return plainSkillSet(s), nil
	}
	return withList(s.source, "skills", s.Skills, len(s.Skills), false)
}

// Skill is a single skill. Field plays the role of tags for filtering.
type Skill struct {
	Name  string         `yaml:"name,omitempty"`
	Level string         `yaml:"level,omitempty"`
	Field []string       `yaml:"field,omitempty"`
	Extra map[string]any `yaml:",inline"`

	source *yaml.Node
}

type plainSkill Skill

// UnmarshalYAML decodes the skill and keeps its source node
func (s *Skill) UnmarshalYAML(node *yaml.Node) error {
	var plain plainSkill
	if err := node.Decode(&plain); err != nil {
		return err
	}
	*s = Skill(plain)
	s.source = node
	return nil
}

// MarshalYAML emits the source node unchanged when there is one
func (s Skill) MarshalYAML() (any, error) {
	if s.source != nil {
		return s.source, nil
	}
	return plainSkill(s), nil
}

// TagList returns the skill's field labels
func (s Skill) TagList() []string {
	return s.Field
}

// Projects is the projects section
type Projects struct {
	Projects []Project      `yaml:"projects"`
	Extra    map[string]any `yaml:",inline"`

	source *yaml.Node
}

type plainProjects Projects

// UnmarshalYAML decodes the section and keeps its source node
func (p *Projects) UnmarshalYAML(node *yaml.Node) error {
	var plain plainProjects
	if err := node.Decode(&plain); err != nil {
		return err
	}
	*p = Projects(plain)
	p.source = node
	return nil
}

// MarshalYAML emits the source keys in file order with the current projects
func (p Projects) MarshalYAML() (any, error) {
	if p.source == nil {
		return plainProjects(p), nil
	}
	return withList(p.source, "projects", p.Projects, len(p.Projects), true)
}

// Project represents a top-level project entry
type Project struct {
	Name        string         `yaml:"name,omitempty"`
	Description string         `yaml:"description,omitempty"`
	URL         string         `yaml:"url,omitempty"`
	Tags        []string       `yaml:"tags,omitempty"`
	Extra       map[string]any `yaml:",inline"`

	source *yaml.Node
}

type plainProject Project

// UnmarshalYAML decodes the project and keeps its source node
func (p *Project) UnmarshalYAML(node *yaml.Node) error {
	var plain plainProject
	if err := node.Decode(&plain); err != nil {
		return err
	}
	*p = Project(plain)
	p.source = node
	return nil
}

// MarshalYAML emits the source node unchanged when there is one
func (p Project) MarshalYAML() (any, error) {
	if p.source != nil {
		return p.source, nil
	}
	return plainProject(p), nil
}

// TagList returns the project's tags
func (p Project) TagList() []string {
	return p.Tags
}

// Publications is the publications section
type Publications struct {
	Publications []Publication  `yaml:"publications"`
	Extra        map[string]any `yaml:",inline"`

	source *yaml.Node
}

type plainPublications Publications

// UnmarshalYAML decodes the section and keeps its source node
func (p *Publications) UnmarshalYAML(node *yaml.Node) error {
	var plain plainPublications
	if err := node.Decode(&plain); err != nil {
		return err
	}
	*p = Publications(plain)
	p.source = node
	return nil
}

// MarshalYAML emits the source keys in file order with the current publications
func (p Publications) MarshalYAML() (any, error) {
	if p.source == nil {
		return plainPublications(p), nil
	}
	return withList(p.source, "publications", p.Publications, len(p.Publications), true)
}

// Publication is an opaque publication record. Entries may be mappings or
// plain scalars; Title is the title key of a mapping or the scalar itself.
type Publication struct {
	Title string         `yaml:"title,omitempty"`
	Extra map[string]any `yaml:",inline"`

	source *yaml.Node
}

type plainPublication Publication

// UnmarshalYAML accepts any YAML value and keeps its source node
func (p *Publication) UnmarshalYAML(node *yaml.Node) error {
	*p = Publication{source: node}
	switch node.Kind {
	case yaml.MappingNode:
		var plain plainPublication
		if err := node.Decode(&plain); err == nil {
			*p = Publication(plain)
			p.source = node
		}
	case yaml.ScalarNode:
		p.Title = node.Value
	}
	return nil
}

// MarshalYAML emits the source node unchanged when there is one
func (p Publication) MarshalYAML() (any, error) {
	if p.source != nil {
		return p.source, nil
	}
	return plainPublication(p), nil
}
