package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletionCommand(t *testing.T) {
	for _, shell := range completionShells {
		t.Run(shell, func(t *testing.T) {
			out, _, err := execute(t, "completion", shell)
			require.NoError(t, err)
			assert.Contains(t, out, "depscan")
		})
	}
}

func TestCompletionCommandRejectsUnknownShell(t *testing.T) {
	_, _, err := execute(t, "completion", "tcsh")
	assert.Error(t, err)
}

func TestFormatFlagCompletion(t *testing.T) {
	out, _, err := execute(t, "__complete", "--format", "")
	require.NoError(t, err)
	for _, f := range []string{"text", "json", "yaml"} {
		assert.Contains(t, out, f)
	}
}

func TestEcosystemFlagCompletion(t *testing.T) {
	out, _, err := execute(t, "__complete", "--ecosystem", "")
	require.NoError(t, err)
	assert.Contains(t, out, "npm")
	assert.Contains(t, out, "pypi")
}
