package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONCmd_Use(t *testing.T) {
	assert.Equal(t, "json", jsonCmd.Use)
}

func TestJSONCmd_WritesResume(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"json"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "JSON resume written to docs/resume.json")
}

func TestJSONCmd_PropagatesGenerateError(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	resumeBuilder = &mockResumeBuilder{err: errors.New("disk full")}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"json"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
