package executor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/govalet/internal/ports"
)

func TestRun_CapturesStdout(t *testing.T) {
	runner := NewShellRunner("", nil)

	out := runner.Run("echo hello", ports.RunOptions{})

	assert.Equal(t, "hello\n", out)
}

func TestRun_FailureInvokesCallback(t *testing.T) {
	runner := NewShellRunner("", nil)

	var gotCode int
	var gotStderr string
	out := runner.Run("echo partial; echo oops >&2; exit 3", ports.RunOptions{
		OnFailure: func(exitCode int, errorOutput string) {
			gotCode = exitCode
			gotStderr = errorOutput
		},
	})

	assert.Equal(t, 3, gotCode)
	assert.Equal(t, "oops\n", gotStderr)
	// Stdout captured before the failure still comes back.
	assert.Equal(t, "partial\n", out)
}

func TestRun_SuccessSkipsCallback(t *testing.T) {
	runner := NewShellRunner("", nil)

	called := false
	runner.Run("true", ports.RunOptions{
		OnFailure: func(int, string) { called = true },
	})

	require.False(t, called)
}

func TestRun_MissingShellReportsSyntheticExitCode(t *testing.T) {
	runner := NewShellRunner("/nonexistent/shell", nil)

	gotCode := 0
	runner.Run("echo hello", ports.RunOptions{
		OnFailure: func(exitCode int, _ string) { gotCode = exitCode },
	})

	assert.Equal(t, -1, gotCode)
}
