package gcloud

import (
	"context"
	"strings"
)

// FakeRunner records commands instead of running them.
type FakeRunner struct {
	Calls []Command

	// Respond, when set, decides the outcome of each call.
	Respond func(cmd Command) (stdout string, err error)
}

func (f *FakeRunner) Run(ctx context.Context, cmd Command) error {
	_, err := f.call(cmd)
	return err
}

func (f *FakeRunner) Output(ctx context.Context, cmd Command) (string, error) {
	return f.call(cmd)
}

func (f *FakeRunner) call(cmd Command) (string, error) {
	f.Calls = append(f.Calls, cmd)
	if f.Respond == nil {
		return "", nil
	}
	return f.Respond(cmd)
}

// Lines returns the recorded calls rendered as command lines.
func (f *FakeRunner) Lines() []string {
	lines := make([]string, len(f.Calls))
	for i, c := range f.Calls {
		lines[i] = c.String()
	}
	return lines
}

// Count returns how many recorded calls start with prefix.
func (f *FakeRunner) Count(prefix string) int {
	n := 0
	for _, line := range f.Lines() {
		if strings.HasPrefix(line, prefix) {
			n++
		}
	}
	return n
}
