package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunProfiles_All(t *testing.T) {
	var buf bytes.Buffer
	profilesCmd.SetOut(&buf)
	t.Cleanup(func() { profilesCmd.SetOut(nil) })

	require.NoError(t, runProfiles(profilesCmd, nil))

	output := buf.String()
	assert.Contains(t, output, "Profile:       research")
	assert.Contains(t, output, "Profile:       aerospace")
	assert.Contains(t, output, "Profile:       datascience")
	assert.Contains(t, output, "Profile:       default")
	assert.Contains(t, output, "Known profiles: [aerospace datascience default research]")
}

func TestRunProfiles_Named(t *testing.T) {
	var buf bytes.Buffer
	profilesCmd.SetOut(&buf)
	t.Cleanup(func() { profilesCmd.SetOut(nil) })

	require.NoError(t, runProfiles(profilesCmd, []string{"unknown"}))

	output := buf.String()
	assert.Contains(t, output, "Profile:       default")
	assert.Contains(t, output, "using default")
	assert.NotContains(t, output, "Profile:       research")
}
