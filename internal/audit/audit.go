package audit

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/PolarWolf314/gkms/internal/configs"
	"github.com/PolarWolf314/gkms/internal/utils"

	"github.com/google/uuid"
)

const (
	timestampLayout = "2006-01-02T15:04:05.000000Z"
	// maxLineSize bounds a single entry; long command lists stay well below it.
	maxLineSize = 1 << 20
)

// Entry represents a single audit log entry.
type Entry struct {
	Timestamp string `json:"ts"` // RFC3339 with microseconds.
	ID        string `json:"id"` // Invocation UUID.
	User      string `json:"user,omitempty"`
	Host      string `json:"host,omitempty"`
	Operation string `json:"op"`

	Project  string   `json:"project,omitempty"`
	Location string   `json:"location,omitempty"`
	Keyring  string   `json:"keyring,omitempty"`
	Key      string   `json:"key,omitempty"`
	Files    []string `json:"files,omitempty"`    // For encrypt/decrypt.
	Commands []string `json:"commands,omitempty"` // gcloud command lines, in order.
	DryRun   bool     `json:"dry_run,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// NewEntry returns an entry for op with invocation id, user and host set.
func NewEntry(op string) Entry {
	entry := Entry{
		ID:        uuid.NewString(),
		Operation: op,
		User:      configs.UserGkmsSettings.Username,
	}
	if host, err := utils.GetHostname(); err == nil {
		entry.Host = host
	}
	return entry
}

// LogPath returns the path to the audit log file.
func LogPath() string {
	return filepath.Join(configs.UserGkmsSettings.UserDataPath, "audit.jsonl")
}

// Log appends an entry to the audit log, filling in the timestamp and id
// when unset. Errors are swallowed so auditing never fails an operation.
func Log(entry Entry) {
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format(timestampLayout)
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	logPath := LogPath()
	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return
	}
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	// Encode terminates each entry with a newline.
	_ = json.NewEncoder(f).Encode(entry)
}

// ReadEntries returns every entry in the audit log, oldest first. A missing
// log yields no entries.
func ReadEntries() ([]Entry, error) {
	f, err := os.Open(LogPath())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseEntries(f)
}

// ParseEntries decodes JSON Lines from r. Blank and malformed lines are skipped.
func ParseEntries(r io.Reader) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var entry Entry
		if json.Unmarshal(line, &entry) != nil {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, scanner.Err()
}

// Filter returns the entries matching op (all when empty), keeping only the
// last limit of them when limit is positive.
func Filter(entries []Entry, op string, limit int) []Entry {
	var out []Entry
	for _, e := range entries {
		if op == "" || e.Operation == op {
			out = append(out, e)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out
}
