package schemas

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonathan/resume-profiles/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validResume() *types.TailoredResume {
	return &types.TailoredResume{
		Personal:     map[string]any{"name": "Ada Example"},
		Education:    []any{"PhD"},
		SectionOrder: []string{"experience", "education", "projects", "skills"},
		Experience: types.Experience{Jobs: []types.Job{
			{Title: "Engineer", Achievements: []types.Achievement{{Description: "x", Tags: []string{"python"}}}},
		}},
		Skills:       types.Skills{SkillSets: []types.SkillSet{}},
		Projects:     types.Projects{Projects: []types.Project{{Name: "p"}}},
		Publications: types.Publications{Publications: []types.Publication{}},
	}
}

func fieldNames(err error) string {
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		return ""
	}
	names := make([]string, 0, len(validationErr.Errors))
	for _, fe := range validationErr.Errors {
		names = append(names, fe.Field)
	}
	return strings.Join(names, ",")
}

func TestValidateTailoredResume_Valid(t *testing.T) {
	assert.NoError(t, ValidateTailoredResume(validResume()))
}

func TestValidateTailoredResume_NullPersonalAllowed(t *testing.T) {
	resume := validResume()
	resume.Personal = nil

	assert.NoError(t, ValidateTailoredResume(resume))
}

func TestValidateTailoredResume_TooManyProjects(t *testing.T) {
	resume := validResume()
	for i := 0; i < 6; i++ {
		resume.Projects.Projects = append(resume.Projects.Projects, types.Project{Name: fmt.Sprintf("extra-%d", i)})
	}

	err := ValidateTailoredResume(resume)
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr), "error should be ValidationError type")
	assert.Contains(t, fieldNames(err), "projects.projects")
}

func TestValidateTailoredResume_UnknownSection(t *testing.T) {
	resume := validResume()
	resume.SectionOrder = []string{"experience", "hobbies"}

	err := ValidateTailoredResume(resume)
	require.Error(t, err)
	assert.Contains(t, fieldNames(err), "section_order")
}

func TestValidateTailoredResume_DuplicateSection(t *testing.T) {
	resume := validResume()
	resume.SectionOrder = []string{"experience", "experience"}

	err := ValidateTailoredResume(resume)
	require.Error(t, err)
	assert.Contains(t, fieldNames(err), "section_order")
}

func TestValidateDocument_MissingKeys(t *testing.T) {
	doc := map[string]any{
		"personal":      map[string]any{},
		"section_order": []any{},
	}

	err := ValidateDocument(mustReadSchema(t), doc)
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.GreaterOrEqual(t, len(validationErr.Errors), 5)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidateDocument_WrongTagType(t *testing.T) {
	doc := map[string]any{
		"personal":      nil,
		"education":     nil,
		"section_order": []any{},
		"experience":    map[string]any{"jobs": []any{}},
		"skills":        map[string]any{"skill_sets": []any{}},
		"projects": map[string]any{"projects": []any{
			map[string]any{"name": "p", "tags": "python"},
		}},
		"publications": map[string]any{"publications": []any{}},
	}

	err := ValidateDocument(mustReadSchema(t), doc)
	require.Error(t, err)
	assert.Contains(t, fieldNames(err), "tags")
}

func TestValidateDocument_BadSchema(t *testing.T) {
	err := ValidateDocument("{ not a schema", map[string]any{})
	require.Error(t, err)

	var loadErr *SchemaLoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Contains(t, loadErr.Error(), "failed to load schema")
}

func TestValidateJSONString(t *testing.T) {
	schema := `{"type": "object", "required": ["name"], "properties": {"name": {"type": "string"}}}`

	assert.NoError(t, ValidateJSONString(schema, `{"name": "x"}`))

	err := ValidateJSONString(schema, `{"name": 3}`)
	require.Error(t, err)
	assert.Contains(t, fieldNames(err), "name")
}

func TestValidateTailoredResumeFile(t *testing.T) {
	dir := t.TempDir()

	valid := filepath.Join(dir, "valid.yml")
	require.NoError(t, os.WriteFile(valid, []byte(`personal:
  name: Ada
education: null
section_order: [experience, skills]
experience:
  jobs: []
skills:
  skill_sets: []
projects:
  projects: []
publications:
  publications: []
`), 0644))
	assert.NoError(t, ValidateTailoredResumeFile(valid))

	invalid := filepath.Join(dir, "invalid.yml")
	require.NoError(t, os.WriteFile(invalid, []byte("personal: {}\n"), 0644))
	assert.Error(t, ValidateTailoredResumeFile(invalid))

	assert.Error(t, ValidateTailoredResumeFile(filepath.Join(dir, "missing.yml")))
}

func TestValidateTailoredResumeFile_JSON(t *testing.T) {
	dir := t.TempDir()

	valid := filepath.Join(dir, "resume_data.json")
	require.NoError(t, os.WriteFile(valid, []byte(`{
		"personal": {"name": "Ada"},
		"education": null,
		"section_order": ["experience"],
		"experience": {"jobs": []},
		"skills": {"skill_sets": []},
		"projects": {"projects": []},
		"publications": {"publications": ["Paper A"]}
	}`), 0644))
	assert.NoError(t, ValidateTailoredResumeFile(valid))

	invalid := filepath.Join(dir, "bad.JSON")
	require.NoError(t, os.WriteFile(invalid, []byte(`{"personal": {}, "section_order": ["cover_letter"]}`), 0644))
	err := ValidateTailoredResumeFile(invalid)
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
}

func TestValidateTailoredResumeFile_IntegerKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tmp_resume_data.yml")
	require.NoError(t, os.WriteFile(path, []byte(`personal: {name: Ada}
education:
  honors:
    2019: Dean's list
section_order: []
experience: {jobs: []}
skills: {skill_sets: []}
projects: {projects: []}
publications: {publications: []}
`), 0644))

	assert.NoError(t, ValidateTailoredResumeFile(path))
}

func TestValidationError_Format(t *testing.T) {
	err := &ValidationError{Errors: []FieldError{
		{Field: "projects.projects", Message: "Array must have at most 5 items"},
	}}
	assert.Equal(t, "validation failed:\n  1. projects.projects: Array must have at most 5 items\n", err.Error())
}

func mustReadSchema(t *testing.T) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join("..", "..", "schemas", "tailored_resume.schema.json"))
	require.NoError(t, err)
	return string(content)
}
