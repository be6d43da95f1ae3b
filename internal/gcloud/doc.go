// Package gcloud runs the gcloud CLI.
//
// Command values describe one invocation. A Runner executes them; Exec is
// the os/exec implementation and tests substitute a recording fake. A
// failing process is reported as *ExitError, carrying the exit code and the
// captured stderr. NotFound inspects that stderr for gcloud's NOT_FOUND
// marker.
//
// Client layers the invocation discipline on top of a Runner: it echoes
// mutating commands before running them, supports dry-run, and implements
// the scoped project switch:
//
//	err := client.WithProject(ctx, "my-project", func(ctx context.Context) error {
//	    return client.Exec(ctx, gcloud.KMS("encrypt", "--key", "k"))
//	})
//
// The active project is restored on every exit path of the callback.
package gcloud
