// internal/packer/exec.go
//
// Adapter that runs the compaction engine as a subprocess. The source
// text goes to the engine's stdin; the engine answers with one
// JSON-encoded method per stdout line. Lines are decoded as they
// arrive, so a slow engine streams methods into the selector instead
// of buffering its whole output.

package packer

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Candidates can be large; allow single lines well past the bufio default.
const maxMethodLine = 16 * 1024 * 1024

// ExecEngine invokes an external compaction command.
type ExecEngine struct {
	Command string
	Args    []string

	// Stderr receives the engine's diagnostics. Defaults to os.Stderr.
	Stderr io.Writer
}

// Pack starts the engine process and returns a lazy iterator over the
// methods it emits. The process is reaped when the iterator is drained
// or hits an error.
func (e *ExecEngine) Pack(ctx context.Context, source string, _ Options) (MethodIterator, error) {
	if strings.TrimSpace(e.Command) == "" {
		return nil, fmt.Errorf("packer: engine command is not configured")
	}
	cmd := exec.CommandContext(ctx, e.Command, e.Args...)
	cmd.Stdin = strings.NewReader(source)
	if e.Stderr != nil {
		cmd.Stderr = e.Stderr
	} else {
		cmd.Stderr = os.Stderr
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("packer: engine stdout: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("packer: start engine %s: %w", e.Command, err)
	}
	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), maxMethodLine)
	return &execIterator{cmd: cmd, scanner: scanner}, nil
}

type execIterator struct {
	cmd     *exec.Cmd
	scanner *bufio.Scanner
	done    bool
}

func (it *execIterator) Next() (Method, bool, error) {
	if it.done {
		return Method{}, false, nil
	}
	for it.scanner.Scan() {
		line := bytes.TrimSpace(it.scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var m Method
		if err := json.Unmarshal(line, &m); err != nil {
			it.done = true
			it.abort()
			return Method{}, false, fmt.Errorf("packer: decode method: %w", err)
		}
		return m, true, nil
	}
	it.done = true
	if err := it.scanner.Err(); err != nil {
		it.abort()
		return Method{}, false, fmt.Errorf("packer: read engine output: %w", err)
	}
	if err := it.cmd.Wait(); err != nil {
		return Method{}, false, fmt.Errorf("packer: engine: %w", err)
	}
	return Method{}, false, nil
}

// abort reaps an engine that is being dropped mid-stream. The process
// may still be writing, and Wait on a StdoutPipe must not run before
// reads finish, so the engine is killed first to unblock it.
func (it *execIterator) abort() {
	if it.cmd.Process != nil {
		_ = it.cmd.Process.Kill()
	}
	_ = it.cmd.Wait()
}
