package configs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	kerrors "github.com/PolarWolf314/gkms/internal/errors"
)

// withTempConfigDir points the user config at a temporary directory.
func withTempConfigDir(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()
	oldPath := UserGkmsSettings.UserConfigsPath
	UserGkmsSettings.UserConfigsPath = tempDir
	t.Cleanup(func() {
		UserGkmsSettings.UserConfigsPath = oldPath
	})
	return tempDir
}

func TestLoadUserConfigNonExistent(t *testing.T) {
	withTempConfigDir(t)

	config, err := LoadUserConfig()
	if err != nil {
		t.Fatalf("LoadUserConfig failed: %v", err)
	}

	if config.Defaults.Prefix != "KMS" {
		t.Errorf("Expected default prefix KMS, got %q", config.Defaults.Prefix)
	}
	if config.Defaults.Gcloud != "gcloud" {
		t.Errorf("Expected default gcloud binary, got %q", config.Defaults.Gcloud)
	}
	if config.Defaults.Extension != "enc" {
		t.Errorf("Expected default extension enc, got %q", config.Defaults.Extension)
	}
	if !config.Audit.Enabled {
		t.Error("Expected audit to be enabled by default")
	}
}

func TestSaveAndLoadUserConfig(t *testing.T) {
	withTempConfigDir(t)

	config := &UserConfig{
		Defaults: Defaults{Prefix: "GCLOUD_KMS", Gcloud: "/opt/gcloud/bin/gcloud", Extension: "kms"},
		Audit:    AuditConfig{Enabled: false},
	}
	if err := SaveUserConfig(config); err != nil {
		t.Fatalf("SaveUserConfig failed: %v", err)
	}

	loaded, err := LoadUserConfig()
	if err != nil {
		t.Fatalf("LoadUserConfig failed: %v", err)
	}
	if *loaded != *config {
		t.Errorf("Expected %+v, got %+v", *config, *loaded)
	}
}

func TestLoadUserConfigPartialFileKeepsDefaults(t *testing.T) {
	tempDir := withTempConfigDir(t)

	content := "[defaults]\nprefix = \"GCLOUD_KMS\"\n"
	if err := os.WriteFile(filepath.Join(tempDir, "config.toml"), []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	config, err := LoadUserConfig()
	if err != nil {
		t.Fatalf("LoadUserConfig failed: %v", err)
	}
	if config.Defaults.Prefix != "GCLOUD_KMS" {
		t.Errorf("Expected prefix GCLOUD_KMS, got %q", config.Defaults.Prefix)
	}
	if config.Defaults.Extension != "enc" {
		t.Errorf("Expected default extension to survive, got %q", config.Defaults.Extension)
	}
	if !config.Audit.Enabled {
		t.Error("Expected audit default to survive")
	}
}

func TestLoadUserConfigMalformed(t *testing.T) {
	tempDir := withTempConfigDir(t)

	if err := os.WriteFile(filepath.Join(tempDir, "config.toml"), []byte("[defaults\nprefix ="), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	_, err := LoadUserConfig()
	if !errors.Is(err, kerrors.ErrInvalidUserConfig) {
		t.Fatalf("Expected ErrInvalidUserConfig, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  UserConfig
		wantErr bool
	}{
		{"Defaults", *DefaultUserConfig(), false},
		{"EmptyPrefix", UserConfig{Defaults: Defaults{Extension: "enc"}}, false},
		{"PrefixWithDash", UserConfig{Defaults: Defaults{Prefix: "MY-KMS"}}, true},
		{"ExtensionWithDot", UserConfig{Defaults: Defaults{Prefix: "KMS", Extension: ".enc"}}, true},
		{"ExtensionWithSlash", UserConfig{Defaults: Defaults{Prefix: "KMS", Extension: "a/b"}}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.config.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestLoadUserConfigUnknownKey(t *testing.T) {
	tempDir := withTempConfigDir(t)

	content := "[defaults]\nprefx = \"APP\"\n"
	if err := os.WriteFile(filepath.Join(tempDir, "config.toml"), []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	_, err := LoadUserConfig()
	if !errors.Is(err, kerrors.ErrInvalidUserConfig) {
		t.Fatalf("Expected ErrInvalidUserConfig, got %v", err)
	}
	if !strings.Contains(err.Error(), "defaults.prefx") {
		t.Errorf("Expected the unknown key in the error, got %v", err)
	}
}

func TestSaveUserConfigLeavesNoTempFiles(t *testing.T) {
	tempDir := withTempConfigDir(t)

	if err := SaveUserConfig(DefaultUserConfig()); err != nil {
		t.Fatalf("SaveUserConfig failed: %v", err)
	}

	entries, err := os.ReadDir(tempDir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "config.toml" {
		t.Errorf("Expected only config.toml, got %v", entries)
	}
}
