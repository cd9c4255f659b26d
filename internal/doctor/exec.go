package doctor

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"time"
)

// probeTimeout bounds every external invocation. A probe that blocks longer
// is treated as a soft failure, not an error.
const probeTimeout = 5 * time.Second

// runCmd executes a command and returns stdout and stderr separately.
func runCmd(ctx context.Context, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	// Avoid opening pagers or interactive prompts
	cmd.Env = append(os.Environ(), "NO_COLOR=1")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		return "", "", ctx.Err()
	}
	return stdout.String(), stderr.String(), err
}

// probe runs name with args under the engine timeout.
func probe(name string, args ...string) (string, string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()
	return runCmd(ctx, name, args...)
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
