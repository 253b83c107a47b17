// Package engine adapts an external program to the bootstrap's engine
// initializer contract.
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/Dhanuzh/feurboot/internal/bootstrap"
)

// ErrNoCommand means no engine command is configured.
var ErrNoCommand = errors.New("no engine command configured")

// Command brings the application up as an external process.
// InitializeEngine resolves and prepares the program; RunApp runs it in the
// foreground with the given stdio and waits for it to exit.
type Command struct {
	Argv []string
	Dir  string
	Env  []string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// BeforeRun is called right before the process starts, e.g. to hand the
	// terminal over from the splash screen.
	BeforeRun func()
}

// InitializeEngine implements bootstrap.EngineInitializer.
func (c *Command) InitializeEngine(ctx context.Context) (bootstrap.AppRunner, error) {
	if len(c.Argv) == 0 || c.Argv[0] == "" {
		return nil, ErrNoCommand
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := exec.LookPath(c.Argv[0])
	if err != nil {
		return nil, fmt.Errorf("resolve engine %q: %w", c.Argv[0], err)
	}
	if c.Dir != "" {
		info, err := os.Stat(c.Dir)
		if err != nil {
			return nil, fmt.Errorf("engine working directory: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("engine working directory %s is not a directory", c.Dir)
		}
	}
	return &process{cmd: c, path: path}, nil
}

type process struct {
	cmd  *Command
	path string
}

// RunApp implements bootstrap.AppRunner.
func (p *process) RunApp(ctx context.Context) error {
	c := p.cmd
	cmd := exec.CommandContext(ctx, p.path, c.Argv[1:]...)
	cmd.Dir = c.Dir
	if len(c.Env) > 0 {
		cmd.Env = append(os.Environ(), c.Env...)
	}
	cmd.Stdin = orReader(c.Stdin, os.Stdin)
	cmd.Stdout = orWriter(c.Stdout, os.Stdout)
	cmd.Stderr = orWriter(c.Stderr, os.Stderr)

	if c.BeforeRun != nil {
		c.BeforeRun()
	}
	return cmd.Run()
}

func orReader(r, def io.Reader) io.Reader {
	if r == nil {
		return def
	}
	return r
}

func orWriter(w, def io.Writer) io.Writer {
	if w == nil {
		return def
	}
	return w
}
