package gcloud

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	kerrors "github.com/PolarWolf314/gkms/internal/errors"
	logger "github.com/PolarWolf314/gkms/internal/logging"
	"github.com/PolarWolf314/gkms/internal/ui"
)

// Client sequences gcloud calls for one invocation.
//
// Mutating commands go through Exec, which echoes the command line and
// skips execution in dry-run mode. Read-only queries always run.
type Client struct {
	Runner Runner
	Out    io.Writer
	Logger logger.Logger
	DryRun bool

	// Progress, when set, is called before a read-only query and the
	// returned function after it finishes.
	Progress func(msg string) (done func())

	planned []Command
	// pending is the project a dry-run switch would have activated.
	pending string
}

// NewClient returns a Client printing to os.Stdout.
func NewClient(runner Runner, log logger.Logger, dryRun bool) *Client {
	return &Client{
		Runner: runner,
		Out:    os.Stdout,
		Logger: log,
		DryRun: dryRun,
	}
}

func (c *Client) out() io.Writer {
	if c.Out != nil {
		return c.Out
	}
	return os.Stdout
}

// Planned returns every command passed to Exec, executed or not.
func (c *Client) Planned() []Command {
	return append([]Command(nil), c.planned...)
}

// Say prints an informational line to the command output.
func (c *Client) Say(format string, args ...any) {
	fmt.Fprintf(c.out(), format+"\n", args...)
}

// Exec prints cmd and runs it unless the client is in dry-run mode.
func (c *Client) Exec(ctx context.Context, cmd Command) error {
	c.planned = append(c.planned, cmd)
	line := ui.CommandLine(cmd.String())
	if c.DryRun {
		line += " " + ui.Muted.Sprint("dry-run")
	}
	fmt.Fprintln(c.out(), line)
	if c.DryRun {
		return nil
	}
	return c.Runner.Run(ctx, cmd)
}

// Query runs a read-only command and returns its trimmed stdout. After a
// dry-run project switch the query is scoped to that project with --project,
// since the active project was never changed.
func (c *Client) Query(ctx context.Context, msg string, cmd Command) (string, error) {
	if c.pending != "" && !cmd.IsConfig() {
		cmd = cmd.With("--project", c.pending)
	}
	c.Logger.Debugf("Querying: %s", cmd)
	if c.Progress != nil {
		done := c.Progress(msg)
		defer done()
	}
	out, err := c.Runner.Output(ctx, cmd)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// CurrentProject returns the active gcloud project, or "" when unset.
func (c *Client) CurrentProject(ctx context.Context) (string, error) {
	return c.Query(ctx, "Reading active gcloud project...", GetProject())
}

// WithProject runs fn with project active. When project is set and differs
// from the active project, it switches first and always switches back after
// fn returns, including when fn fails. A failed revert is joined to fn's error.
func (c *Client) WithProject(ctx context.Context, project string, fn func(context.Context) error) (err error) {
	if project == "" {
		return fn(ctx)
	}

	current, err := c.CurrentProject(ctx)
	if err != nil {
		return fmt.Errorf("%w: reading active project: %w", kerrors.ErrProjectSwitchFailed, err)
	}
	if current == project {
		c.Logger.Debugf("Project %s already active", project)
		return fn(ctx)
	}

	c.Say("Switch project from %s to %s", displayProject(current), ui.Value.Sprint(project))
	if err := c.Exec(ctx, SetProject(project)); err != nil {
		return fmt.Errorf("%w: %w", kerrors.ErrProjectSwitchFailed, err)
	}
	if c.DryRun {
		previous := c.pending
		c.pending = project
		defer func() { c.pending = previous }()
	}

	defer func() {
		c.Say("Reverse project from %s to %s", ui.Value.Sprint(project), displayProject(current))
		restore := SetProject(current)
		if current == "" {
			restore = UnsetProject()
		}
		if rerr := c.Exec(ctx, restore); rerr != nil {
			err = errors.Join(err, fmt.Errorf("%w: restoring %s: %w", kerrors.ErrProjectSwitchFailed, displayProject(current), rerr))
		}
	}()

	return fn(ctx)
}

func displayProject(p string) string {
	if p == "" {
		return ui.Muted.Sprint("unset")
	}
	return ui.Value.Sprint(p)
}
