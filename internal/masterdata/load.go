// Package masterdata loads the master resume sections from a data directory.
package masterdata

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-profiles/internal/types"
)

// File names of the master data sections
const (
	PersonalFile     = "personal.yml"
	ExperienceFile   = "experience.yml"
	EducationFile    = "education.yml"
	SkillsFile       = "skills.yml"
	ProjectsFile     = "projects.yml"
	PublicationsFile = "publications.yml"
)

// Load reads all six master data files from dir.
// Any missing, empty, or malformed file is an error.
func Load(dir string) (*types.MasterData, error) {
	var data types.MasterData

	files := []struct {
		name   string
		decode func([]byte) error
	}{
		{PersonalFile, passthrough(&data.Personal)},
		{ExperienceFile, typed(&data.Experience)},
		{EducationFile, passthrough(&data.Education)},
		{SkillsFile, typed(&data.Skills)},
		{ProjectsFile, typed(&data.Projects)},
		{PublicationsFile, typed(&data.Publications)},
	}

	for _, f := range files {
		if err := loadFile(filepath.Join(dir, f.name), f.decode); err != nil {
			return nil, err
		}
	}

	return &data, nil
}

// typed decodes a file into a section struct
func typed(into any) func([]byte) error {
	return func(content []byte) error {
		return types.DecodeSource(content, into)
	}
}

// passthrough keeps a file as a YAML node so it re-encodes unchanged
func passthrough(into *any) func([]byte) error {
	return func(content []byte) error {
		node, err := types.DecodePassthrough(content)
		if err != nil {
			return err
		}
		*into = node
		return nil
	}
}

func loadFile(path string, decode func([]byte) error) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return &LoadError{
			File:    path,
			Message: "failed to read file",
			Cause:   err,
		}
	}

	if len(bytes.TrimSpace(content)) == 0 {
		return &LoadError{
			File:    path,
			Message: "file is empty",
		}
	}

	if err := decode(content); err != nil {
		return &LoadError{
			File:    path,
			Message: "failed to unmarshal YAML",
			Cause:   err,
		}
	}

	return nil
}
