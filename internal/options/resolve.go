package options

import (
	"github.com/spf13/pflag"
)

// FlagSource yields flag values that were explicitly supplied on the command line.
type FlagSource interface {
	Lookup(n Name) (string, bool)
}

// EnvSource yields environment variable values.
type EnvSource interface {
	LookupEnv(key string) (string, bool)
}

// FromFlagSet adapts a pflag.FlagSet. Only string flags marked Changed are
// reported, so unset flags and same-named flags of another type, such as a
// boolean tool-version flag, resolve as absent.
func FromFlagSet(fs *pflag.FlagSet) FlagSource {
	return flagSetSource{fs: fs}
}

type flagSetSource struct {
	fs *pflag.FlagSet
}

func (s flagSetSource) Lookup(n Name) (string, bool) {
	if s.fs == nil {
		return "", false
	}
	f := s.fs.Lookup(string(n))
	if f == nil || !f.Changed || f.Value.Type() != "string" {
		return "", false
	}
	return f.Value.String(), true
}

// Flags is a FlagSource where every entry counts as explicitly supplied.
type Flags map[Name]string

func (f Flags) Lookup(n Name) (string, bool) {
	v, ok := f[n]
	return v, ok
}

// Env is an EnvSource backed by a map.
type Env map[string]string

func (e Env) LookupEnv(key string) (string, bool) {
	v, ok := e[key]
	return v, ok
}

// Resolve builds a Set from flags and env. For each vocabulary name the
// explicitly supplied flag wins, then the prefixed environment variable.
// Empty values count as absent at every tier.
func Resolve(flags FlagSource, env EnvSource, prefix string) Set {
	s := NewSet()
	for _, n := range Vocabulary {
		if flags != nil {
			if v, ok := flags.Lookup(n); ok && v != "" {
				s.Put(n, v)
				continue
			}
		}
		if env != nil {
			if v, ok := env.LookupEnv(EnvName(prefix, n)); ok && v != "" {
				s.Put(n, v)
			}
		}
	}
	return s
}
