package cmd

import (
	"errors"
	"strings"
	"testing"

	"github.com/PolarWolf314/gkms/internal/audit"
	kerrors "github.com/PolarWolf314/gkms/internal/errors"
	"github.com/PolarWolf314/gkms/internal/gcloud"
)

// keyringResponse makes describe fail with stderr, or succeed when stderr is empty.
func keyringResponse(stderr string) func(cmd gcloud.Command) (string, error) {
	return func(cmd gcloud.Command) (string, error) {
		if strings.HasPrefix(cmd.String(), "gcloud kms keyrings describe") && stderr != "" {
			return "", &gcloud.ExitError{Args: cmd.Args, Code: 1, Stderr: stderr}
		}
		return "", nil
	}
}

func TestCreateKeyringAndKey(t *testing.T) {
	env := setupTestEnvironment(t)
	env.runner.Respond = keyringResponse("ERROR: (gcloud.kms.keyrings.describe) NOT_FOUND: KeyRing projects/p/locations/global/keyRings/ring not found.")

	stdout, _, err := runCLI(t, "create", "ring", "key", "-l", "global")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	assertCalls(t, env.runner,
		"gcloud kms keyrings describe ring --location global",
		"gcloud kms keyrings create ring --location global",
		"gcloud kms keys create key --location global --keyring ring --purpose encryption")
	if !strings.Contains(stdout, "Creating 'ring' keyring...") {
		t.Errorf("Expected keyring creation message, got: %s", stdout)
	}
	if !strings.Contains(stdout, "Created key 'key' in keyring 'ring'") {
		t.Errorf("Expected success message, got: %s", stdout)
	}
}

func TestCreateExistingKeyring(t *testing.T) {
	env := setupTestEnvironment(t)
	env.environ = []string{"KMS_LOCATION=global", "KMS_KEYRING=ring", "KMS_KEY=key"}

	if _, _, err := runCLI(t, "create"); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	assertCalls(t, env.runner,
		"gcloud kms keyrings describe ring --location global",
		"gcloud kms keys create key --location global --keyring ring --purpose encryption")
}

func TestCreateProbeFailureAborts(t *testing.T) {
	env := setupTestEnvironment(t)
	env.runner.Respond = keyringResponse("ERROR: PERMISSION_DENIED")

	_, _, err := runCLI(t, "create", "ring", "key", "-l", "global")
	if !errors.Is(err, kerrors.ErrKeyringProbeFailed) {
		t.Fatalf("Expected ErrKeyringProbeFailed, got %v", err)
	}
	if n := env.runner.Count("gcloud kms keyrings create"); n != 0 {
		t.Errorf("Expected no keyring creation, got %d", n)
	}
	if n := env.runner.Count("gcloud kms keys create"); n != 0 {
		t.Errorf("Expected no key creation, got %d", n)
	}
}

func TestCreateOptionPassThrough(t *testing.T) {
	env := setupTestEnvironment(t)
	env.environ = []string{"KMS_PURPOSE=asymmetric-signing"}

	_, _, err := runCLI(t, "create", "-r", "ring", "-k", "key", "-l", "global",
		"-b", "team=infra", "-t", "2030-01-01T00:00:00Z", "--rotation-period", "90d")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	assertCalls(t, env.runner,
		"gcloud kms keyrings describe ring --location global",
		"gcloud kms keys create key --location global --keyring ring --purpose asymmetric-signing --labels team=infra --next-rotation-time 2030-01-01T00:00:00Z --rotation-period 90d")
}

func TestCreatePositionalArgumentsOverrideEnvironment(t *testing.T) {
	env := setupTestEnvironment(t)
	env.environ = []string{"KMS_KEYRING=env-ring", "KMS_KEY=env-key"}

	if _, _, err := runCLI(t, "create", "arg-ring", "arg-key"); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	assertCalls(t, env.runner,
		"gcloud kms keyrings describe arg-ring",
		"gcloud kms keys create arg-key --keyring arg-ring --purpose encryption")
}

func TestCreateWithProjectSwitch(t *testing.T) {
	env := setupTestEnvironment(t)
	env.runner.Respond = func(cmd gcloud.Command) (string, error) {
		if cmd.String() == gcloud.GetProject().String() {
			return "\n", nil
		}
		return keyringResponse("NOT_FOUND")(cmd)
	}

	if _, _, err := runCLI(t, "create", "-P", "work", "ring", "key"); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	assertCalls(t, env.runner,
		"gcloud config get-value project",
		"gcloud config set project work",
		"gcloud kms keyrings describe ring",
		"gcloud kms keyrings create ring",
		"gcloud kms keys create key --keyring ring --purpose encryption",
		"gcloud config unset project")
}

func TestCreateDryRun(t *testing.T) {
	env := setupTestEnvironment(t)
	env.runner.Respond = keyringResponse("NOT_FOUND")

	stdout, _, err := runCLI(t, "create", "--dry-run", "ring", "key")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	assertCalls(t, env.runner, "gcloud kms keyrings describe ring")
	if !strings.Contains(stdout, "gcloud kms keyrings create ring") {
		t.Errorf("Expected planned keyring creation, got: %s", stdout)
	}
	if !strings.Contains(stdout, "gcloud kms keys create key") {
		t.Errorf("Expected planned key creation, got: %s", stdout)
	}

	entries, err := audit.ReadEntries()
	if err != nil {
		t.Fatalf("Failed to read audit log: %v", err)
	}
	if len(entries) != 1 || !entries[0].DryRun || len(entries[0].Commands) != 2 {
		t.Errorf("Unexpected audit entries: %+v", entries)
	}
}

func TestCreateRequiresKeyringAndKey(t *testing.T) {
	env := setupTestEnvironment(t)

	_, _, err := runCLI(t, "create", "ring")
	if !errors.Is(err, kerrors.ErrMissingOption) {
		t.Fatalf("Expected ErrMissingOption, got %v", err)
	}
	assertCalls(t, env.runner)
}
