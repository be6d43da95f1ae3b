package gcloud

import (
	"strings"
)

// DefaultBinary is the gcloud executable looked up on PATH.
const DefaultBinary = "gcloud"

// Command is a gcloud invocation. Args exclude the binary itself.
type Command struct {
	Args []string
}

// New returns a Command for the given gcloud arguments.
func New(args ...string) Command {
	return Command{Args: args}
}

// KMS returns a `gcloud kms ...` Command.
func KMS(args ...string) Command {
	return Command{Args: append([]string{"kms"}, args...)}
}

// GetProject reads the active project.
func GetProject() Command {
	return New("config", "get-value", "project")
}

// SetProject changes the active project.
func SetProject(project string) Command {
	return New("config", "set", "project", project)
}

// UnsetProject clears the active project.
func UnsetProject() Command {
	return New("config", "unset", "project")
}

// With returns a copy of c with args appended.
func (c Command) With(args ...string) Command {
	out := make([]string, 0, len(c.Args)+len(args))
	out = append(out, c.Args...)
	return Command{Args: append(out, args...)}
}

// IsConfig reports whether c is a `gcloud config ...` command.
func (c Command) IsConfig() bool {
	return len(c.Args) > 0 && c.Args[0] == "config"
}

// String renders the command the way a user would type it.
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, DefaultBinary)
	for _, a := range c.Args {
		parts = append(parts, quote(a))
	}
	return strings.Join(parts, " ")
}

func quote(arg string) string {
	if arg == "" {
		return "''"
	}
	if !strings.ContainsAny(arg, " \t\n'\"\\$`;&|<>*?()[]{}!#~") {
		return arg
	}
	return "'" + strings.ReplaceAll(arg, "'", `'\''`) + "'"
}
