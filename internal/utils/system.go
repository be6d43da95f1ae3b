package utils

import (
	"errors"
	"os"
	"os/user"
)

// GetUsername returns the login name recorded in the audit log. It falls back
// to $USER and $USERNAME when the user database is unavailable, as in some
// containers.
func GetUsername() (string, error) {
	u, err := user.Current()
	if err == nil && u.Username != "" {
		return u.Username, nil
	}
	for _, key := range []string{"USER", "USERNAME"} {
		if name := os.Getenv(key); name != "" {
			return name, nil
		}
	}
	if err == nil {
		err = errors.New("current user has no name")
	}
	return "", err
}

// GetHostname returns the machine name recorded in the audit log.
func GetHostname() (string, error) {
	return os.Hostname()
}
