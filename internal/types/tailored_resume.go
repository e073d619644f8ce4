package types

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Section keys used in the tailored output and in section_order
const (
	SectionPersonal     = "personal"
	SectionEducation    = "education"
	SectionExperience   = "experience"
	SectionSkills       = "skills"
	SectionProjects     = "projects"
	SectionPublications = "publications"
	SectionOrderKey     = "section_order"
)

// SectionKeys lists the standalone section keys in emission order
var SectionKeys = []string{
	SectionPersonal,
	SectionEducation,
	SectionExperience,
	SectionSkills,
	SectionProjects,
	SectionPublications,
}

// TailoredResume is the filtered output for one profile.
// Field order matches the key order of the combined document.
type TailoredResume struct {
	Personal     any          `yaml:"personal"`
	Education    any          `yaml:"education"`
	SectionOrder []string     `yaml:"section_order"`
	Experience   Experience   `yaml:"experience"`
	Skills       Skills       `yaml:"skills"`
	Projects     Projects     `yaml:"projects"`
	Publications Publications `yaml:"publications"`
}

// Section is one standalone section of a tailored resume
type Section struct {
	Key   string
	Value any
}

// Sections returns every section except section_order, in SectionKeys order
func (r *TailoredResume) Sections() []Section {
	sections := make([]Section, 0, len(SectionKeys))
	for _, key := range SectionKeys {
		value, _ := r.Section(key)
		sections = append(sections, Section{Key: key, Value: value})
	}
	return sections
}

// Section returns the section stored under key
func (r *TailoredResume) Section(key string) (any, bool) {
	switch key {
	case SectionPersonal:
		return r.Personal, true
	case SectionEducation:
		return r.Education, true
	case SectionExperience:
		return r.Experience, true
	case SectionSkills:
		return r.Skills, true
	case SectionProjects:
		return r.Projects, true
	case SectionPublications:
		return r.Publications, true
	default:
		return nil, false
	}
}

// ToDocument converts v into plain maps and slices using its YAML field names.
// The result is suitable for JSON encoding and schema validation.
func ToDocument(v any) (any, error) {
	raw, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}

	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %w", err)
	}
	return stringKeys(doc), nil
}

// stringKeys rewrites mappings with non-string keys, such as years, into
// map[string]any so the tree can be JSON encoded
func stringKeys(v any) any {
	switch val := v.(type) {
	case map[string]any:
		for k, item := range val {
			val[k] = stringKeys(item)
		}
		return val
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[fmt.Sprint(k)] = stringKeys(item)
		}
		return out
	case []any:
		for i, item := range val {
			val[i] = stringKeys(item)
		}
		return val
	default:
		return v
	}
}

// MarshalJSONDocument encodes v as JSON keyed by its YAML field names
func MarshalJSONDocument(v any) ([]byte, error) {
	doc, err := ToDocument(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}
