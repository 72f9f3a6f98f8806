// Package shell provides a subprocess executor for fetch scripts.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"go.trai.ch/vat/internal/core/domain"
	"go.trai.ch/vat/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// stderrExcerptLen caps the stderr text attached to errors.
const stderrExcerptLen = 512

// Executor implements ports.CommandExecutor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Execute runs the command and returns its trimmed stdout.
//
// Both output streams are drained concurrently from the moment the process starts, so a child
// filling one pipe never blocks on the other. Reads finish before the exit status is consulted.
// When the timeout expires or ctx is canceled the whole process group is killed and reaped.
func (e *Executor) Execute(ctx context.Context, cmd domain.Command) (string, error) {
	if len(cmd.Args) == 0 {
		return "", zerr.Wrap(domain.ErrEmptyCommand, "cannot execute")
	}

	env := resolveEnvironment(os.Environ(), cmd.Env)

	name := cmd.Args[0]
	executable := name
	if !filepath.IsAbs(name) && !strings.Contains(name, string(filepath.Separator)) {
		if lp, err := lookPath(name, env); err == nil {
			executable = lp
		}
	}

	c := exec.Command(executable, cmd.Args[1:]...) //nolint:gosec // fetch scripts are user provided
	c.Args[0] = name
	c.Dir = cmd.Dir
	c.Env = env
	setProcessGroup(c)

	stdoutPipe, err := c.StdoutPipe()
	if err != nil {
		return "", ioError(err, "failed to open stdout", cmd)
	}
	stderrPipe, err := c.StderrPipe()
	if err != nil {
		return "", ioError(err, "failed to open stderr", cmd)
	}

	e.logger.Debug(fmt.Sprintf("exec %s (dir %s)", strings.Join(cmd.Args, " "), cmd.Dir))

	if err := c.Start(); err != nil {
		return "", ioError(err, "failed to start command", cmd)
	}

	var stdout, stderr bytes.Buffer
	var readers errgroup.Group
	readers.Go(func() error {
		_, err := io.Copy(&stdout, stdoutPipe)
		return err
	})
	readers.Go(func() error {
		_, err := io.Copy(&stderr, stderrPipe)
		return err
	})

	readDone := make(chan error, 1)
	go func() {
		readDone <- readers.Wait()
	}()

	var deadline <-chan time.Time
	if cmd.Timeout > 0 {
		timer := time.NewTimer(cmd.Timeout)
		defer timer.Stop()
		deadline = timer.C
	}

	var readErr error
	select {
	case readErr = <-readDone:
	case <-deadline:
		e.abort(c, readDone)
		return "", timeoutError(cmd)
	case <-ctx.Done():
		e.abort(c, readDone)
		return "", zerr.Wrap(ctx.Err(), "command canceled")
	}

	// Both pipes are at EOF; the child may still be running.
	waitDone := make(chan error, 1)
	go func() {
		waitDone <- c.Wait()
	}()

	var waitErr error
	select {
	case waitErr = <-waitDone:
	case <-deadline:
		_ = killProcessGroup(c)
		<-waitDone
		return "", timeoutError(cmd)
	case <-ctx.Done():
		_ = killProcessGroup(c)
		<-waitDone
		return "", zerr.Wrap(ctx.Err(), "command canceled")
	}

	return classify(cmd, stdout.String(), stderr.String(), readErr, waitErr)
}

// abort kills the process group, reaps the child and waits for the readers to stop.
// Wait closes the parent ends of the pipes, which releases readers still blocked on
// descendants that left the group.
func (e *Executor) abort(c *exec.Cmd, readDone <-chan error) {
	if err := killProcessGroup(c); err != nil {
		e.logger.Debug(fmt.Sprintf("kill process group %d: %v", c.Process.Pid, err))
	}
	_ = c.Wait()
	<-readDone
}

func classify(cmd domain.Command, stdout, stderr string, readErr, waitErr error) (string, error) {
	if readErr != nil {
		return "", ioError(readErr, "failed to read command output", cmd)
	}

	if stderr != "" {
		err := zerr.With(zerr.Wrap(domain.ErrOutputInStderr, "command failed"), "stderr", excerpt(stderr))
		return "", withCommand(err, cmd)
	}

	out := strings.TrimSpace(stdout)
	if out == "" {
		return "", withCommand(zerr.Wrap(domain.ErrEmptyStdout, "command failed"), cmd)
	}

	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			err := zerr.With(zerr.Wrap(domain.ErrNonzeroStatus, "command failed"), "exit_code", exitErr.ExitCode())
			return "", withCommand(err, cmd)
		}
		return "", ioError(waitErr, "failed to wait for command", cmd)
	}

	return out, nil
}

func timeoutError(cmd domain.Command) error {
	err := zerr.With(zerr.Wrap(domain.ErrTimeout, "command killed"), "timeout", cmd.Timeout.String())
	return withCommand(err, cmd)
}

func ioError(cause error, msg string, cmd domain.Command) error {
	return withCommand(zerr.Wrap(errors.Join(domain.ErrCommandIO, cause), msg), cmd)
}

func withCommand(err error, cmd domain.Command) error {
	return zerr.With(err, "command", strings.Join(cmd.Args, " "))
}

func excerpt(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > stderrExcerptLen {
		return s[:stderrExcerptLen] + "..."
	}
	return s
}

// resolveEnvironment overlays the command environment on the process environment.
// The result is sorted by key.
func resolveEnvironment(sysEnv []string, overlay map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(overlay))
	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			envMap[k] = v
		}
	}
	for k, v := range overlay {
		envMap[k] = v
	}

	keys := make([]string, 0, len(envMap))
	for k := range envMap {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	result := make([]string, 0, len(keys))
	for _, k := range keys {
		result = append(result, k+"="+envMap[k])
	}
	return result
}

// lookPath searches for an executable in the directories named by the PATH entry of env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if after, ok := strings.CutPrefix(e, "PATH="); ok {
			path = after
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
