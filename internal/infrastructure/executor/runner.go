package executor

import (
	"bytes"
	"os"
	"os/exec"

	"github.com/doeshing/govalet/internal/ports"
)

// ShellRunner runs commands on the host shell, blocking until they exit.
type ShellRunner struct {
	shell string
	log   ports.Logger
}

// NewShellRunner builds a new runner, shell defaults to /bin/sh.
func NewShellRunner(shell string, log ports.Logger) *ShellRunner {
	if shell == "" {
		shell = "/bin/sh"
	}
	return &ShellRunner{shell: shell, log: log}
}

// Run implements ports.CommandRunner. The command's captured stdout is
// returned regardless of outcome; on failure the OnFailure callback (when
// set) receives the exit code and captured stderr.
func (r *ShellRunner) Run(command string, opts ports.RunOptions) string {
	if opts.Sudo && os.Geteuid() != 0 {
		command = "sudo " + command
	}

	c := exec.Command(r.shell, "-c", command)
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	err := c.Run()
	if err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		if opts.OnFailure != nil {
			opts.OnFailure(exitCode, stderr.String())
		} else if r.log != nil {
			r.log.Warn("command failed", map[string]interface{}{
				"command":   command,
				"exit_code": exitCode,
				"stderr":    stderr.String(),
			})
		}
	}
	return stdout.String()
}

var _ ports.CommandRunner = (*ShellRunner)(nil)
