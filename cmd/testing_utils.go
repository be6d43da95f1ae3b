package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/PolarWolf314/gkms/internal/configs"
	"github.com/PolarWolf314/gkms/internal/gcloud"
	logger "github.com/PolarWolf314/gkms/internal/logging"
	"github.com/spf13/cobra"
)

// testEnv is an isolated gkms installation for one test.
type testEnv struct {
	dir    string
	runner *gcloud.FakeRunner
	// environ is what the commands see as the process environment.
	environ []string
}

// setupTestEnvironment moves into a temporary working directory, points the
// user config and audit log at temporary directories and replaces gcloud
// with a recording fake.
func setupTestEnvironment(t *testing.T) *testEnv {
	t.Helper()

	tempDir := t.TempDir()
	tempUserDir := t.TempDir()

	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}

	originalUserSettings := configs.UserGkmsSettings
	configs.UserGkmsSettings = &configs.UserSettings{
		UserConfigsPath: filepath.Join(tempUserDir, "config"),
		UserDataPath:    filepath.Join(tempUserDir, "data"),
		Username:        "testuser",
	}

	env := &testEnv{
		dir:    tempDir,
		runner: &gcloud.FakeRunner{},
	}

	ResetGlobalState()
	lookPath = func(binary string) (string, error) {
		return "/usr/bin/" + binary, nil
	}
	newRunner = func(binary string) gcloud.Runner {
		return env.runner
	}
	environ = func() []string {
		return env.environ
	}

	t.Cleanup(func() {
		if err := os.Chdir(originalWd); err != nil {
			t.Fatalf("Failed to change to original directory: %v", err)
		}
		configs.UserGkmsSettings = originalUserSettings
		ResetGlobalState()
	})

	return env
}

// captureLogs installs a debug Logger writing to the returned buffer, for
// tests that call a command's run function without going through cobra.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogger(logger.Logger{Debug: true, Out: &buf, Err: &buf})
	return &buf
}

// activeProject makes the fake report project as the active gcloud project
// and succeed on every other call.
func (e *testEnv) activeProject(project string) {
	e.runner.Respond = func(cmd gcloud.Command) (string, error) {
		if cmd.String() == gcloud.GetProject().String() {
			return project + "\n", nil
		}
		return "", nil
	}
}

// writeFile creates name under the working directory.
func (e *testEnv) writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(e.dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

// newTestCLI builds a fresh root command with every gkms subcommand.
func newTestCLI(stdout, stderr *bytes.Buffer) *cobra.Command {
	root := &cobra.Command{
		Use:           "gkms",
		Version:       "test",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	Register(root)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root
}

// runCLI executes gkms with args and returns stdout, stderr and the error.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newTestCLI(&stdout, &stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
