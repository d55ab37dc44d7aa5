package media

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// ScriptRunner executes an external command and returns its combined
// output. It exists so tests can substitute a recorder for os/exec.
type ScriptRunner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// ExecRunner runs commands through os/exec.
type ExecRunner struct{}

// Run executes the command and returns its trimmed combined output.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.CombinedOutput()
	text := strings.TrimSpace(string(out))
	if err != nil {
		return text, fmt.Errorf("%s failed: %w (%s)", name, err, text)
	}
	return text, nil
}
