package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/PolarWolf314/gkms/internal/audit"
	"github.com/PolarWolf314/gkms/internal/ui"
	"github.com/spf13/cobra"
)

type logFlags struct {
	limit     int
	operation string
	json      bool
}

func newLogCmd() *cobra.Command {
	var flags logFlags
	c := &cobra.Command{
		Use:   "log",
		Short: "View the audit log",
		Long: `Displays the operations gkms has run, oldest first.

Examples:
  gkms log                   # View full log
  gkms log -n 10             # Last 10 entries
  gkms log --op create       # Only key creations
  gkms log --json            # JSON output`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLog(cmd.OutOrStdout(), flags)
		},
	}
	c.Flags().IntVarP(&flags.limit, "number", "n", 0, "limit number of entries shown")
	c.Flags().StringVar(&flags.operation, "op", "", "filter by operation (encrypt, decrypt or create)")
	c.Flags().BoolVar(&flags.json, "json", false, "output as JSON array")
	return c
}

func runLog(out io.Writer, flags logFlags) error {
	Logger.Infof("Starting log command")
	Logger.Debugf("Reading audit log from %s", audit.LogPath())

	entries, err := audit.ReadEntries()
	if err != nil {
		return Logger.ErrorfAndReturn("Failed to read audit log: %v", err)
	}
	total := len(entries)
	entries = audit.Filter(entries, flags.operation, flags.limit)
	Logger.Debugf("Showing %d of %d entries", len(entries), total)

	if len(entries) == 0 {
		if total == 0 {
			fmt.Fprintln(out, ui.Note("No audit log entries found."))
		} else {
			fmt.Fprintln(out, ui.Note("No audit log entries found matching the filters."))
		}
		return nil
	}

	if flags.json {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal entries to JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	for _, e := range entries {
		fmt.Fprintf(out, "%-27s  %-12s  %-8s  %s\n", e.Timestamp, e.User, e.Operation, formatDetails(e))
	}
	return nil
}

// formatDetails summarises what an entry touched.
func formatDetails(e audit.Entry) string {
	var parts []string
	if e.Project != "" {
		parts = append(parts, "project="+e.Project)
	}
	if e.Keyring != "" {
		parts = append(parts, "keyring="+e.Keyring)
	}
	if e.Key != "" {
		parts = append(parts, "key="+e.Key)
	}
	for _, f := range e.Files {
		if f != "" {
			parts = append(parts, f)
		}
	}
	line := strings.Join(parts, " ")
	if e.DryRun {
		line += " " + ui.Muted.Sprint("dry-run")
	}
	if e.Error != "" {
		line += " " + ui.Error.Sprint("failed: "+e.Error)
	}
	return line
}
