package ffmpeg

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"
)

// Executor abstracts command execution for testability.
type Executor interface {
	Run(ctx context.Context, binary string, args []string, onLine func(string)) error
}

// Option configures the runner.
type Option func(*Runner)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(r *Runner) {
		if exec != nil {
			r.exec = exec
		}
	}
}

// Runner launches ffmpeg merges and reports their progress.
type Runner struct {
	binary string
	exec   Executor
}

// NewRunner constructs a runner for the given ffmpeg binary.
func NewRunner(binary string, opts ...Option) (*Runner, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("ffmpeg binary required")
	}
	runner := &Runner{
		binary: binary,
		exec:   commandExecutor{},
	}
	for _, opt := range opts {
		opt(runner)
	}
	return runner, nil
}

// Merge executes an ffmpeg invocation built by BuildMergeArgs, forwarding a
// progress update for every diagnostic line carrying a time= marker. It
// blocks until the process exits. On a nonzero exit the captured diagnostic
// text becomes part of the returned error; a missing binary surfaces as
// exec.ErrNotFound so callers can abort the whole run.
func (r *Runner) Merge(ctx context.Context, args []string, totalSeconds float64, onProgress func(ProgressUpdate)) error {
	if _, err := exec.LookPath(r.binary); err != nil {
		return fmt.Errorf("launch %s: %w", r.binary, err)
	}

	var diagnostics strings.Builder
	err := r.exec.Run(ctx, r.binary, args, func(line string) {
		diagnostics.WriteString(line)
		diagnostics.WriteByte('\n')
		if onProgress == nil {
			return
		}
		if elapsed, marker, ok := parseElapsed(line); ok {
			onProgress(progressFor(elapsed, marker, totalSeconds))
		}
	})
	if err != nil {
		detail := strings.TrimSpace(diagnostics.String())
		if detail == "" {
			return fmt.Errorf("ffmpeg: %w", err)
		}
		return fmt.Errorf("ffmpeg: %w\n%s", err, detail)
	}
	return nil
}

// splitProgressLines is a bufio.SplitFunc that accepts bare carriage returns
// as line terminators. ffmpeg rewrites its stats line in place during an
// encode, so progress updates arrive separated by \r and only the final line
// carries a \n; the stock ScanLines would hold the whole stream until EOF.
func splitProgressLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		advance := i + 1
		if data[i] == '\r' && advance < len(data) && data[advance] == '\n' {
			advance++
		}
		return advance, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, binary string, args []string, onLine func(string)) error {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("stderr pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start command: %w", err)
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	var scanErr error
	var once sync.Once

	// Both pipes feed one callback; serialize so line handlers stay simple.
	scan := func(r io.Reader) {
		defer wg.Done()
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		scanner.Split(splitProgressLines)
		for scanner.Scan() {
			if onLine != nil {
				mu.Lock()
				onLine(scanner.Text())
				mu.Unlock()
			}
		}
		if err := scanner.Err(); err != nil {
			once.Do(func() {
				scanErr = err
			})
		}
	}

	wg.Add(2)
	go scan(stdout)
	go scan(stderr)

	wg.Wait()
	if scanErr != nil {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
		return fmt.Errorf("scan output: %w", scanErr)
	}

	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("wait command: %w", err)
	}
	return nil
}
