package configs

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	kerrors "github.com/PolarWolf314/gkms/internal/errors"
	"github.com/PolarWolf314/gkms/internal/gcloud"
	"github.com/PolarWolf314/gkms/internal/options"
)

type UserConfig struct {
	Defaults Defaults    `toml:"defaults" json:"defaults"`
	Audit    AuditConfig `toml:"audit" json:"audit"`
}

// Defaults apply when neither a flag nor the environment provide a value.
type Defaults struct {
	// Prefix of the environment variables, e.g. KMS.
	Prefix string `toml:"prefix" json:"prefix"`
	// Gcloud is the gcloud executable name or path.
	Gcloud string `toml:"gcloud" json:"gcloud"`
	// Extension of ciphertext files, without the leading dot.
	Extension string `toml:"extension" json:"extension"`
}

type AuditConfig struct {
	Enabled bool `toml:"enabled" json:"enabled"`
}

var prefixPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// DefaultUserConfig returns the configuration used when no file exists.
func DefaultUserConfig() *UserConfig {
	return &UserConfig{
		Defaults: Defaults{
			Prefix:    options.DefaultPrefix,
			Gcloud:    gcloud.DefaultBinary,
			Extension: "enc",
		},
		Audit: AuditConfig{Enabled: true},
	}
}

// Validate checks the configured values.
func (c *UserConfig) Validate() error {
	if c.Defaults.Prefix != "" && !prefixPattern.MatchString(c.Defaults.Prefix) {
		return fmt.Errorf("%w: invalid prefix %q", kerrors.ErrInvalidUserConfig, c.Defaults.Prefix)
	}
	if strings.HasPrefix(c.Defaults.Extension, ".") || strings.ContainsRune(c.Defaults.Extension, '/') {
		return fmt.Errorf("%w: extension %q must not contain a dot prefix or a path separator", kerrors.ErrInvalidUserConfig, c.Defaults.Extension)
	}
	return nil
}

// LoadUserConfig loads the user configuration, returning defaults when the
// file does not exist.
func LoadUserConfig() (*UserConfig, error) {
	configPath := UserConfigPath()
	config := DefaultUserConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	unknown, err := LoadTOML(configPath, config)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", kerrors.ErrInvalidUserConfig, configPath, err)
	}
	if len(unknown) > 0 {
		return nil, fmt.Errorf("%w: %s: unknown keys %s", kerrors.ErrInvalidUserConfig, configPath, strings.Join(unknown, ", "))
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// SaveUserConfig writes the user configuration.
func SaveUserConfig(config *UserConfig) error {
	if err := config.Validate(); err != nil {
		return err
	}
	if err := SaveTOML(UserConfigPath(), config); err != nil {
		return fmt.Errorf("failed to save user config: %w", err)
	}
	return nil
}
