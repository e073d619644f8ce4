// Package output writes a tailored resume to YAML files for the document renderer.
package output

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-profiles/internal/types"
	"gopkg.in/yaml.v3"
)

// CombinedFile is the file name of the combined tailored document
const CombinedFile = "tmp_resume_data.yml"

// SectionFile returns the file name of a standalone section
func SectionFile(key string) string {
	return "tmp_" + key + ".yml"
}

// Write stores the combined document and one file per section in dir.
// It returns the written paths, combined file first.
func Write(dir string, resume *types.TailoredResume) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, &WriteError{Path: dir, Message: "failed to create output directory", Cause: err}
	}

	combined := filepath.Join(dir, CombinedFile)
	if err := writeYAML(combined, resume); err != nil {
		return nil, err
	}
	written := []string{combined}

	for _, section := range resume.Sections() {
		path := filepath.Join(dir, SectionFile(section.Key))
		if err := writeYAML(path, section.Value); err != nil {
			return written, err
		}
		written = append(written, path)
	}

	return written, nil
}

// Encode renders v as block-style YAML with two-space indentation
func Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeYAML(path string, v any) error {
	content, err := Encode(v)
	if err != nil {
		return &WriteError{Path: path, Message: "failed to encode YAML", Cause: err}
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return &WriteError{Path: path, Message: "failed to write file", Cause: err}
	}
	return nil
}
