package output

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonathan/resume-profiles/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleResume() *types.TailoredResume {
	return &types.TailoredResume{
		Personal:     map[string]any{"name": "Ada Example"},
		Education:    map[string]any{"degrees": []any{"PhD"}},
		SectionOrder: []string{"experience", "education", "projects", "skills"},
		Experience: types.Experience{Jobs: []types.Job{
			{
				Title: "Data Scientist",
				Achievements: []types.Achievement{
					{Description: "Forecast demand", Tags: []string{"python"}},
				},
				Extra: map[string]any{"remote": true},
			},
		}},
		Skills:       types.Skills{SkillSets: []types.SkillSet{}},
		Projects:     types.Projects{Projects: []types.Project{{Name: "jax-notebooks", Tags: []string{"jax"}}}},
		Publications: types.Publications{Publications: []types.Publication{}},
	}
}

func TestWrite_CreatesCombinedAndSectionFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	written, err := Write(dir, sampleResume())
	require.NoError(t, err)

	expected := []string{
		CombinedFile,
		"tmp_personal.yml",
		"tmp_education.yml",
		"tmp_experience.yml",
		"tmp_skills.yml",
		"tmp_projects.yml",
		"tmp_publications.yml",
	}
	require.Len(t, written, len(expected))
	for i, name := range expected {
		assert.Equal(t, filepath.Join(dir, name), written[i])
		_, err := os.Stat(written[i])
		assert.NoError(t, err, "%s should exist", name)
	}

	_, err = os.Stat(filepath.Join(dir, "tmp_section_order.yml"))
	assert.True(t, os.IsNotExist(err), "section_order has no standalone file")
}

func TestWrite_CombinedKeyOrder(t *testing.T) {
	dir := t.TempDir()
	_, err := Write(dir, sampleResume())
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(dir, CombinedFile))
	require.NoError(t, err)

	var root yaml.Node
	require.NoError(t, yaml.Unmarshal(content, &root))
	require.Len(t, root.Content, 1)
	mapping := root.Content[0]

	keys := make([]string, 0, len(mapping.Content)/2)
	for i := 0; i < len(mapping.Content); i += 2 {
		keys = append(keys, mapping.Content[i].Value)
	}
	assert.Equal(t, []string{"personal", "education", "section_order", "experience", "skills", "projects", "publications"}, keys)
}

func TestWrite_SectionShapes(t *testing.T) {
	dir := t.TempDir()
	_, err := Write(dir, sampleResume())
	require.NoError(t, err)

	var pubs map[string]any
	content, err := os.ReadFile(filepath.Join(dir, "tmp_publications.yml"))
	require.NoError(t, err)
	require.NoError(t, yaml.Unmarshal(content, &pubs))
	assert.Equal(t, map[string]any{"publications": []any{}}, pubs)

	var experience types.Experience
	content, err = os.ReadFile(filepath.Join(dir, "tmp_experience.yml"))
	require.NoError(t, err)
	require.NoError(t, yaml.Unmarshal(content, &experience))
	require.Len(t, experience.Jobs, 1)
	assert.Equal(t, "Data Scientist", experience.Jobs[0].Title)
	assert.Equal(t, true, experience.Jobs[0].Extra["remote"])

	content, err = os.ReadFile(filepath.Join(dir, "tmp_skills.yml"))
	require.NoError(t, err)
	assert.Equal(t, "skill_sets: []\n", string(content))
}

func topLevelKeys(t *testing.T, path string) []string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var root yaml.Node
	require.NoError(t, yaml.Unmarshal(content, &root))
	require.Len(t, root.Content, 1)
	mapping := root.Content[0]

	keys := make([]string, 0, len(mapping.Content)/2)
	for i := 0; i < len(mapping.Content); i += 2 {
		keys = append(keys, mapping.Content[i].Value)
	}
	return keys
}

func TestWrite_KeepsSourceKeyOrder(t *testing.T) {
	personal, err := types.DecodePassthrough([]byte("name: Ada\nemail: ada@example.com\nphone: 555-0100\naddress: Main St\n"))
	require.NoError(t, err)

	var experience types.Experience
	require.NoError(t, yaml.Unmarshal([]byte(`heading: Work
jobs:
  - title: Data Scientist
    remote: true
    company: Retail Co
`), &experience))

	resume := sampleResume()
	resume.Personal = personal
	resume.Experience = experience

	dir := t.TempDir()
	_, err = Write(dir, resume)
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "email", "phone", "address"}, topLevelKeys(t, filepath.Join(dir, "tmp_personal.yml")))
	assert.Equal(t, []string{"heading", "jobs"}, topLevelKeys(t, filepath.Join(dir, "tmp_experience.yml")))

	content, err := os.ReadFile(filepath.Join(dir, "tmp_experience.yml"))
	require.NoError(t, err)
	text := string(content)
	title := strings.Index(text, "title:")
	remote := strings.Index(text, "remote:")
	company := strings.Index(text, "company:")
	assert.True(t, title < remote && remote < company, "job keys out of order:\n%s", text)
}

func TestEncode_BlockStyle(t *testing.T) {
	content, err := Encode(sampleResume().Projects)
	require.NoError(t, err)

	text := string(content)
	assert.True(t, strings.HasPrefix(text, "projects:\n"), "got:\n%s", text)
	assert.Contains(t, text, "- name: jax-notebooks\n")
	assert.NotContains(t, text, "{", "mappings should use block style")
	assert.NotContains(t, text, "\t")
}

func TestWrite_DirectoryIsAFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	_, err := Write(file, sampleResume())
	require.Error(t, err)

	var writeErr *WriteError
	require.True(t, errors.As(err, &writeErr))
	assert.Contains(t, writeErr.Error(), "failed to create output directory")
}
