package errors

import "errors"

// Preflight errors indicate the tool cannot run at all.
var (
	// ErrGcloudNotFound indicates the gcloud binary is not on PATH.
	ErrGcloudNotFound = errors.New("gcloud command not found")
)

// External call errors indicate gcloud reported a failure.
var (
	// ErrKeyringProbeFailed indicates `gcloud kms keyrings describe` failed
	// for a reason other than the keyring not existing.
	ErrKeyringProbeFailed = errors.New("failed to describe keyring")

	// ErrProjectSwitchFailed indicates the active gcloud project could not be
	// changed or restored.
	ErrProjectSwitchFailed = errors.New("failed to switch gcloud project")
)

// Configuration errors indicate problems with flags, env files or the user config.
var (
	// ErrInvalidEnvFile indicates a .kms file could not be parsed.
	ErrInvalidEnvFile = errors.New("invalid env file")

	// ErrEnvFileNotFound indicates an explicitly requested env file does not exist.
	ErrEnvFileNotFound = errors.New("env file not found")

	// ErrInvalidUserConfig indicates the user configuration is malformed.
	ErrInvalidUserConfig = errors.New("user configuration is invalid")

	// ErrMissingOption indicates an option required by the operation has no value.
	ErrMissingOption = errors.New("required option is missing")
)
