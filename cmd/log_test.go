package cmd

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/PolarWolf314/gkms/internal/audit"
)

func seedAuditLog(t *testing.T) {
	t.Helper()
	for _, e := range []audit.Entry{
		{Timestamp: "2026-01-01T10:00:00.000000Z", Operation: "create", Keyring: "ring", Key: "key"},
		{Timestamp: "2026-01-02T10:00:00.000000Z", Operation: "encrypt", Key: "key", Files: []string{"a.txt", "a.txt.enc"}},
		{Timestamp: "2026-01-03T10:00:00.000000Z", Operation: "decrypt", Key: "key", Files: []string{"a.txt", "a.txt.enc"}, DryRun: true},
		{Timestamp: "2026-01-04T10:00:00.000000Z", Operation: "encrypt", Key: "key", Files: []string{"b.txt", "b.txt.enc"}, Error: "exit status 2"},
	} {
		audit.Log(e)
	}
}

func TestLogEmpty(t *testing.T) {
	setupTestEnvironment(t)

	stdout, _, err := runCLI(t, "log")
	if err != nil {
		t.Fatalf("log failed: %v", err)
	}
	if !strings.Contains(stdout, "No audit log entries found.") {
		t.Errorf("Expected empty log message, got: %s", stdout)
	}
}

func TestLogShowsEntries(t *testing.T) {
	setupTestEnvironment(t)
	seedAuditLog(t)

	stdout, _, err := runCLI(t, "log")
	if err != nil {
		t.Fatalf("log failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	if len(lines) != 4 {
		t.Fatalf("Expected 4 lines, got %d: %s", len(lines), stdout)
	}
	if !strings.Contains(lines[0], "keyring=ring key=key") {
		t.Errorf("Unexpected first line: %s", lines[0])
	}
	if !strings.Contains(lines[2], "(dry-run)") {
		t.Errorf("Expected dry-run marker, got: %s", lines[2])
	}
	if !strings.Contains(lines[3], "failed: exit status 2") {
		t.Errorf("Expected failure marker, got: %s", lines[3])
	}
}

func TestLogFilters(t *testing.T) {
	setupTestEnvironment(t)
	seedAuditLog(t)

	stdout, _, err := runCLI(t, "log", "--op", "encrypt", "-n", "1", "--json")
	if err != nil {
		t.Fatalf("log failed: %v", err)
	}

	var entries []audit.Entry
	if err := json.Unmarshal([]byte(stdout), &entries); err != nil {
		t.Fatalf("Expected JSON output, got %q: %v", stdout, err)
	}
	if len(entries) != 1 || entries[0].Files[0] != "b.txt" {
		t.Errorf("Unexpected entries: %+v", entries)
	}
}

func TestLogNoMatches(t *testing.T) {
	setupTestEnvironment(t)
	seedAuditLog(t)

	stdout, _, err := runCLI(t, "log", "--op", "rotate")
	if err != nil {
		t.Fatalf("log failed: %v", err)
	}
	if !strings.Contains(stdout, "matching the filters") {
		t.Errorf("Expected no-match message, got: %s", stdout)
	}
}
