package configs

import (
	"os"
	"path/filepath"

	"github.com/PolarWolf314/gkms/internal/utils"
)

type UserSettings struct {
	UserConfigsPath string
	UserDataPath    string
	Username        string
}

var UserGkmsSettings *UserSettings

func init() {
	configDir, err := utils.ConfigDir()
	if err != nil {
		configDir = filepath.Join(os.TempDir(), "gkms")
	}

	dataDir, err := utils.DataDir()
	if err != nil {
		dataDir = filepath.Join(os.TempDir(), "gkms")
	}

	// A missing username only degrades the audit log, never the command.
	username, _ := utils.GetUsername()

	UserGkmsSettings = &UserSettings{
		UserConfigsPath: configDir,
		UserDataPath:    dataDir,
		Username:        username,
	}
}

// UserConfigPath returns the path of the user config file.
func UserConfigPath() string {
	return filepath.Join(UserGkmsSettings.UserConfigsPath, "config.toml")
}
