package envfile

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	kerrors "github.com/PolarWolf314/gkms/internal/errors"
	"github.com/PolarWolf314/gkms/internal/utils"

	"github.com/joho/godotenv"
)

// FileName is the dotenv file gkms looks for.
const FileName = ".kms"

// Environment is the resolved set of environment variables for one invocation.
type Environment struct {
	values map[string]string
	source string
}

// New builds an Environment from dotenv values and KEY=VALUE process pairs.
// Process pairs win over file values.
func New(fileValues map[string]string, environ []string) *Environment {
	values := make(map[string]string, len(fileValues)+len(environ))
	for k, v := range fileValues {
		values[k] = v
	}
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		values[k] = v
	}
	return &Environment{values: values}
}

// LookupEnv returns the value of key.
func (e *Environment) LookupEnv(key string) (string, bool) {
	v, ok := e.values[key]
	return v, ok
}

// Source returns the path of the loaded dotenv file, or "" if none was read.
func (e *Environment) Source() string {
	return e.source
}

// Locate picks the dotenv file for an invocation:
// the explicit path if given, else a .kms next to target if it exists,
// else .kms in the working directory, which may not exist.
func Locate(target, explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if target != "" {
		sibling, err := utils.SiblingPath(target, FileName)
		if err != nil {
			return "", err
		}
		if utils.FileExists(sibling) {
			return sibling, nil
		}
	}
	return FileName, nil
}

// Load locates and reads the dotenv file and merges it under environ.
//
// A missing sibling or working-directory file is not an error. A missing
// explicit file yields a usable Environment built from environ alone,
// together with an error wrapping ErrEnvFileNotFound, so callers may warn
// and carry on.
func Load(target, explicit string, environ []string) (*Environment, error) {
	path, err := Locate(target, explicit)
	if err != nil {
		return nil, err
	}

	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			env := New(nil, environ)
			if explicit != "" {
				return env, fmt.Errorf("%w: %s", kerrors.ErrEnvFileNotFound, path)
			}
			return env, nil
		}
		return nil, fmt.Errorf("%w: %s: %v", kerrors.ErrInvalidEnvFile, path, err)
	}

	env := New(values, environ)
	env.source = path
	return env, nil
}
